package registry

import (
	"errors"
	"fmt"
	"strings"
)

// Enum is the immutable registry of every entry of one closed enumeration.
// New is the only mutation point; a constructed Enum is safe for concurrent
// reads from any number of goroutines without synchronization.
type Enum struct {
	name    string
	entries []*Entry
	byName  map[string]*Entry
	byFold  map[string]*Entry
}

// New builds an Enum named name from decls, in declaration order.
//
// Construction fails with a *DuplicateNameError when two declarations
// resolve to the same display name, and with ordinary errors for an empty
// name, an empty declaration list, an empty identifier, or an unrecognized
// strategy. No partially built Enum is ever returned.
func New(name string, decls []Decl, opts ...Option) (*Enum, error) {
	var o options
	for _, fn := range opts {
		fn(&o)
	}

	if name == "" {
		return nil, errors.New("registry: enum name is required")
	}

	if len(decls) == 0 {
		return nil, ErrNoEntries
	}

	if o.strategy != 0 && !o.strategy.IsValid() {
		return nil, fmt.Errorf("registry: %s: invalid naming strategy %v", name, o.strategy)
	}

	e := &Enum{
		name:    name,
		entries: make([]*Entry, 0, len(decls)),
		byName:  make(map[string]*Entry, len(decls)),
		byFold:  make(map[string]*Entry, len(decls)),
	}

	for i, d := range decls {
		if d.ID == "" {
			return nil, fmt.Errorf("registry: %s: entry %d has an empty identifier", name, i)
		}

		if d.Strategy != 0 && !d.Strategy.IsValid() {
			return nil, fmt.Errorf("registry: %s: entry %d has an invalid naming strategy %v", name, i, d.Strategy)
		}

		display := d.displayName(o.strategy)
		if prev, exists := e.byName[display]; exists {
			return nil, &DuplicateNameError{Name: display, First: prev.ordinal, Second: i}
		}

		entry := &Entry{owner: e, id: d.ID, name: display, ordinal: i}
		e.entries = append(e.entries, entry)
		e.byName[display] = entry

		// First-declared entry wins when two names collide after folding;
		// later case variants stay reachable by exact lookup only.
		folded := strings.ToLower(display)
		if _, exists := e.byFold[folded]; !exists {
			e.byFold[folded] = entry
		}
	}

	return e, nil
}

// MustNew is New, panicking on error. Useful for package-level declarations.
func MustNew(name string, decls []Decl, opts ...Option) *Enum {
	e, err := New(name, decls, opts...)
	if err != nil {
		panic(err)
	}

	return e
}
