package registry

// Entry is a single member of a constructed Enum: the canonical identifier,
// the resolved display name, and a stable zero-based ordinal.
//
// Entries are created by New and handed out by pointer; every lookup of the
// same member returns the same *Entry, so entries compare with ==.
type Entry struct {
	owner   *Enum
	id      string
	name    string
	ordinal int
}

// ID returns the canonical identifier the entry was declared with.
func (e *Entry) ID() string { return e.id }

// Name returns the resolved display name used for lookups.
func (e *Entry) Name() string { return e.name }

// Ordinal returns the zero-based declaration-order position.
func (e *Entry) Ordinal() int { return e.ordinal }

// String returns the display name.
func (e *Entry) String() string { return e.name }
