package registry

import "strings"

// Name returns the enum's own display name, used in diagnostics.
func (e *Enum) Name() string { return e.name }

// Len returns the number of entries.
func (e *Enum) Len() int { return len(e.entries) }

// Values returns every entry in declaration order. The returned slice is a
// fresh copy; callers may reorder it freely.
func (e *Enum) Values() []*Entry {
	out := make([]*Entry, len(e.entries))
	copy(out, e.entries)

	return out
}

// Names returns every display name in declaration order.
func (e *Enum) Names() []string {
	out := make([]string, len(e.entries))
	for i, entry := range e.entries {
		out[i] = entry.name
	}

	return out
}

// Lookup returns the entry whose display name matches name exactly.
func (e *Enum) Lookup(name string) (*Entry, bool) {
	entry, ok := e.byName[name]
	return entry, ok
}

// ByName returns the entry whose display name matches name exactly, or a
// *NotFoundError carrying every known name.
func (e *Enum) ByName(name string) (*Entry, error) {
	entry, ok := e.byName[name]
	if !ok {
		return nil, e.notFound(name)
	}

	return entry, nil
}

// LookupFold returns the entry matching name case-insensitively. When two
// display names differ only by case, the first-declared entry is the one
// reachable here.
func (e *Enum) LookupFold(name string) (*Entry, bool) {
	entry, ok := e.byFold[strings.ToLower(name)]
	return entry, ok
}

// ByNameFold returns the entry matching name case-insensitively, or a
// *NotFoundError carrying every known name.
func (e *Enum) ByNameFold(name string) (*Entry, error) {
	entry, ok := e.byFold[strings.ToLower(name)]
	if !ok {
		return nil, e.notFound(name)
	}

	return entry, nil
}

// Has reports whether an entry with the exact display name exists.
func (e *Enum) Has(name string) bool {
	_, ok := e.byName[name]
	return ok
}

// IndexOf returns the ordinal of entry. Nil entries and entries constructed
// by a different Enum are rejected with ErrForeignEntry instead of returning
// a misleading ordinal.
func (e *Enum) IndexOf(entry *Entry) (int, error) {
	if entry == nil || entry.owner != e {
		return 0, ErrForeignEntry
	}

	return entry.ordinal, nil
}

func (e *Enum) notFound(name string) *NotFoundError {
	return &NotFoundError{Enum: e.name, Name: name, Known: e.Names()}
}
