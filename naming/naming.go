package naming

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=StrategyEnum -trimprefix=Strategy -output=strategyenum_string.go

type StrategyEnum int

const (
	_ StrategyEnum = iota // skip zero value, use it as the unset/default marker

	StrategyIdentity
	StrategySnakecase
	StrategyUppercase
	StrategyLowercase

	// StrategyTotal is a constant that represents the total number of strategies defined
	StrategyTotal = int(iota)
)

// IsValid reports whether s is one of the recognized strategies.
func (s StrategyEnum) IsValid() bool {
	return StrategyIdentity <= s && int(s) < StrategyTotal
}

// Apply transforms a canonical identifier into its display name.
// The unset zero value and out-of-range values apply as identity, which
// keeps Apply total over every identifier.
func (s StrategyEnum) Apply(id string) string {
	switch s {
	default:
		return Identity(id)
	case StrategySnakecase:
		return Snake(id)
	case StrategyUppercase:
		return Upper(id)
	case StrategyLowercase:
		return Lower(id)
	}
}

// Identity returns id unchanged.
func Identity(id string) string { return id }

// Upper returns id with every letter upper-cased.
func Upper(id string) string { return strings.ToUpper(id) }

// Lower returns id with every letter lower-cased.
func Lower(id string) string { return strings.ToLower(id) }

// ParseStrategy resolves a strategy from its name, case-insensitively.
func ParseStrategy(name string) (StrategyEnum, error) {
	for s := StrategyIdentity; int(s) < StrategyTotal; s++ {
		if strings.EqualFold(name, s.String()) {
			return s, nil
		}
	}

	return 0, fmt.Errorf("naming: %q is not a recognized strategy", name)
}
