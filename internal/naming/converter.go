package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Converter converts names using an acronym table and an override table.
// It is immutable and safe for concurrent use.
type Converter struct {
	acronyms map[string]string
	special  map[string]string
}

// NewConverter creates a Converter. Table keys are matched case-insensitively;
// values are used verbatim. Both tables are copied.
func NewConverter(acronyms, specialCases map[string]string) *Converter {
	return &Converter{
		acronyms: lowerKeys(acronyms),
		special:  lowerKeys(specialCases),
	}
}

func lowerKeys(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[strings.ToLower(k)] = v
	}

	return out
}

var defaultConverter = NewConverter(defaultAcronyms, defaultSpecialCases)

// Default returns the Converter built on the built-in tables.
func Default() *Converter {
	return defaultConverter
}

// ToExternal converts a snake_case name into the schema's PascalCase.
//
// Examples:
//   - "quota_ce" -> "QuotaCE" (override table)
//   - "alfa_pc" -> "AlfaPC"
//   - "codice_id" -> "CodiceID" (acronym table)
//   - "id_sito" -> "IdSito" (the first fragment is never an acronym)
//   - "data_inizio" -> "DataInizio"
func (c *Converter) ToExternal(name string) string {
	if out, ok := c.special[strings.ToLower(name)]; ok {
		return out
	}

	fragments := strings.Split(name, "_")

	var b strings.Builder

	b.Grow(len(name))
	b.WriteString(titleCase(fragments[0]))

	for _, frag := range fragments[1:] {
		if acr, ok := c.acronyms[strings.ToLower(frag)]; ok {
			b.WriteString(acr)
			continue
		}

		b.WriteString(titleCase(frag))
	}

	return b.String()
}

// titleCase upper-cases the first rune of s and lower-cases the rest.
func titleCase(s string) string {
	if s == "" {
		return s
	}

	r, size := utf8.DecodeRuneInString(s)

	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// ToInternal converts a PascalCase or camelCase name into snake_case.
//
// A separator is inserted before an upper-case letter that follows a lower-case
// letter or a digit, and before the last letter of an upper-case run when a
// lower-case letter follows it:
//   - "QuotaCE" -> "quota_ce"
//   - "NumPortantiAttivabili" -> "num_portanti_attivabili"
//   - "GPSPosition" -> "gps_position"
//   - "FPR" -> "fpr"
func (c *Converter) ToInternal(name string) string {
	runes := []rune(name)

	var b strings.Builder

	b.Grow(len(name) + 4)

	for i, r := range runes {
		if i > 0 && startsWord(runes, i) {
			b.WriteByte('_')
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// startsWord reports whether a new word starts at position i.
func startsWord(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) || prev == '_' {
		return false
	}

	// Transition from lowercase or digit to uppercase
	// e.g., "quotaCE" -> split before 'C'
	if unicode.IsLower(prev) || unicode.IsDigit(prev) {
		return true
	}

	// End of acronym: uppercase run followed by a lowercase letter
	// e.g., "GPSPosition" -> "GPS" + "Position", split before 'P'
	hasNextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

	return unicode.IsUpper(prev) && hasNextLower
}

// ToExternal converts name with the default tables.
func ToExternal(name string) string {
	return defaultConverter.ToExternal(name)
}

// ToInternal converts name with the default tables.
func ToInternal(name string) string {
	return defaultConverter.ToInternal(name)
}
