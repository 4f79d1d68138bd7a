package schedule

import (
	"regexp"
	"strings"
)

var (
	// Bullets and other punctuation ahead of the name field.
	leadingJunkRe = regexp.MustCompile(`^[^A-Z0-9]+`)
	// Numeric department/location code plus separator, e.g. "024 - ".
	departmentCodeRe = regexp.MustCompile(`^\d+\s*-\s*`)
)

// Normalize uppercases a name and collapses internal whitespace. Query-side
// selections go through the same normalization as extraction output so that
// roster lookups succeed.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToUpper(s)), " ")
}

// trimToSurname keeps only the surname or keyword plus trailing initials when
// a name field ends in one or two single-letter tokens; department and role
// words ahead of the person identifier are dropped. Known precision limit:
// legitimately short names and multi-part surnames can lose leading parts.
func trimToSurname(tokens []string) []string {
	initials := 0
	for i := len(tokens) - 1; i >= 0 && initials < 2; i-- {
		if !isInitial(tokens[i]) {
			break
		}
		initials++
	}
	if initials == 0 {
		return tokens
	}
	keep := initials + 1
	if len(tokens) <= keep {
		return tokens
	}
	return tokens[len(tokens)-keep:]
}

func isInitial(tok string) bool {
	return len(tok) == 1 && tok[0] >= 'A' && tok[0] <= 'Z'
}

func lastWordFallback(raw string) []string {
	fields := strings.Fields(Normalize(raw))
	if len(fields) == 0 {
		return nil
	}
	last := strings.Trim(fields[len(fields)-1], `-+*.,:;#|`)
	if last == "" {
		return nil
	}
	return []string{last}
}
