package registry

import "enum-registry/naming"

// Decl declares one enum member. The discovery side (generated code or an
// explicit literal list) supplies a finished, ordered []Decl to New; the
// slice position becomes the entry's ordinal.
type Decl struct {
	// ID is the canonical identifier, as declared by the source enumeration.
	ID string
	// Name, when non-empty, is used verbatim as the display name; strategies
	// are ignored for this entry.
	Name string
	// Strategy, when set, stacks on top of the enum-wide strategy for this
	// entry. The zero value means "enum-wide strategy only".
	Strategy naming.StrategyEnum
}

// displayName resolves the final display name for the declaration.
func (d Decl) displayName(enumWide naming.StrategyEnum) string {
	if d.Name != "" {
		return d.Name
	}

	name := enumWide.Apply(d.ID)
	if d.Strategy != 0 {
		// Per-entry strategies transform the enum-wide result, so Snakecase
		// enum-wide plus an Uppercase entry yields UPPER_SNAKE_CASE.
		name = d.Strategy.Apply(name)
	}

	return name
}

// Option configures enum construction.
type Option func(*options)

type options struct {
	strategy naming.StrategyEnum
}

// WithStrategy selects the enum-wide naming strategy applied to every entry
// without an explicit name. Defaults to identity.
func WithStrategy(s naming.StrategyEnum) Option {
	return func(o *options) { o.strategy = s }
}
