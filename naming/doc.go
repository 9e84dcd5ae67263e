// Package naming provides the display-name transformation strategies applied
// to canonical enum identifiers.
//
// Key pieces:
//   - StrategyEnum: the closed set of recognized strategies
//   - Snake: lower_snake_case conversion with CamelCase word splitting
//   - ParseStrategy: resolves a strategy from its name
//
// Every strategy is a total, deterministic, pure string function; none of
// them can fail for a syntactically valid identifier.
package naming
