// Package registry implements the enum registry engine: an immutable,
// index-backed collection of every entry of one closed enumeration, with
// exact and case-insensitive name lookup and stable declaration ordering.
//
// An Enum is built exactly once from an ordered declaration list, typically
// emitted by generated code or written as a literal, and is safe for
// concurrent lock-free reads afterwards:
//
//	var Greetings = registry.MustNew("Greeting", []registry.Decl{
//	    {ID: "Hello"},
//	    {ID: "GoodBye"},
//	}, registry.WithStrategy(naming.StrategySnakecase))
//
// Display names resolve per entry: an explicit Decl.Name is used verbatim;
// otherwise the enum-wide strategy applies, with an optional per-entry
// strategy stacked on top of its result.
package registry
