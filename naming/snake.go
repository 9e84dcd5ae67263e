package naming

import (
	"strings"
	"unicode"
)

// Snake converts a canonical identifier to lower_snake_case.
//
// Words split at lower-to-upper boundaries ("GoodBye" -> good_bye), at the
// end of acronym runs ("XMLParser" -> xml_parser), and at letter-to-digit
// boundaries ("Utf8" -> utf_8). Existing underscores delimit words, which
// makes the conversion idempotent: Snake(Snake(s)) == Snake(s).
func Snake(id string) string {
	words := splitWords(id)
	if len(words) == 0 {
		// Identifiers made purely of underscores have no words to join.
		return strings.ToLower(id)
	}

	return strings.ToLower(strings.Join(words, "_"))
}

// splitWords splits an identifier into its words, preserving their order and
// original casing. Underscores separate words and are consumed.
func splitWords(id string) []string {
	if id == "" {
		return nil
	}

	var words []string

	var current strings.Builder

	runes := []rune(id)
	for i, r := range runes {
		if r == '_' {
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}

			continue
		}

		if i > 0 && current.Len() > 0 && startsWord(runes, i) {
			words = append(words, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		words = append(words, current.String())
	}

	return words
}

// startsWord reports whether a new word begins at position i.
func startsWord(runes []rune, i int) bool {
	r := runes[i]
	prev := runes[i-1]

	// Transition into uppercase: "GoodBye" splits before 'B'.
	if unicode.IsUpper(r) && !unicode.IsUpper(prev) && prev != '_' {
		return true
	}

	// End of an acronym run: "XMLParser" splits before 'P'.
	if unicode.IsUpper(r) && unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
		return true
	}

	// Letter-to-digit boundary: "Utf8" splits before '8'.
	if unicode.IsDigit(r) && unicode.IsLetter(prev) {
		return true
	}

	return false
}
