package registry

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound indicates a lookup for a name no entry carries.
	ErrNotFound = errors.New("registry: name not found")
	// ErrDuplicateName indicates two declarations resolved to the same display name.
	ErrDuplicateName = errors.New("registry: duplicate display name")
	// ErrForeignEntry indicates an entry constructed by a different enum.
	ErrForeignEntry = errors.New("registry: entry belongs to a different enum")
	// ErrNoEntries indicates construction from an empty declaration list.
	ErrNoEntries = errors.New("registry: enum needs at least one entry")
)

// DuplicateNameError reports a construction-time display-name collision.
type DuplicateNameError struct {
	Name   string // the colliding display name
	First  int    // ordinal of the entry that claimed the name
	Second int    // ordinal of the conflicting declaration
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("registry: duplicate display name %q (entries %d and %d)", e.Name, e.First, e.Second)
}

// Is lets errors.Is match against ErrDuplicateName.
func (e *DuplicateNameError) Is(target error) bool { return target == ErrDuplicateName }

// NotFoundError reports a query for a name no entry carries. Known holds
// every display name of the enum in declaration order, so callers can render
// the full membership in diagnostics.
type NotFoundError struct {
	Enum  string
	Name  string
	Known []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%q is not a member of %s (%s)", e.Name, e.Enum, strings.Join(e.Known, ", "))
}

// Is lets errors.Is match against ErrNotFound.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }
