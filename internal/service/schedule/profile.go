package schedule

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shiftlens/overlap-backend-go/internal/domain/schedule"
)

// ShiftToken is a start/end clock-time pair found on a line, e.g.
// "9:00PM"-"6:00AM".
type ShiftToken struct {
	Start string
	End   string
}

// Profile is a document-format strategy: how one schedule layout spells its
// date headers, shift tokens, and employee names. A profile is selected once
// per document; the extraction fold itself is shared across profiles.
type Profile interface {
	Name() string
	// MatchDate reports the header date if the line is a date header.
	MatchDate(line string) (time.Time, bool)
	// FindShift locates the first shift token on the line and returns the raw
	// text preceding it. Later tokens on the same line are meal or skill
	// annotations, not additional shifts.
	FindShift(line string) (ShiftToken, string, bool)
	// CleanName normalizes the raw name field. An empty result means the
	// field is not a person and the line must be discarded.
	CleanName(raw string) string
}

const (
	dateLayout = "Monday, January 2, 2006"

	weekdayPattern = `(?:Monday|Tuesday|Wednesday|Thursday|Friday|Saturday|Sunday)`
	datePattern    = weekdayPattern + `,\s+[A-Za-z]+\s+\d{1,2},\s+\d{4}`
)

var (
	// The first shift token on a line; "+" markers wrap continuation
	// fragments in some layouts and carry no data.
	shiftTokenRe = regexp.MustCompile(`\+?(\d{1,2}:\d{2}[AP]M)-(\d{1,2}:\d{2}[AP]M)\+?`)

	// Retail exports embed the date header in noisier lines, sometimes
	// behind a literal label.
	retailDateRe = regexp.MustCompile(`(` + datePattern + `)`)
	// Plain exports print the header alone on its own line.
	plainDateRe = regexp.MustCompile(`^(` + datePattern + `)$`)
)

// regexProfile implements Profile from a pattern set plus name-cleaning
// options, so layout variants differ only in configuration.
type regexProfile struct {
	name              string
	dateRe            *regexp.Regexp
	shiftRe           *regexp.Regexp
	stripCodes        bool // leading bullets and numeric department codes
	trimToSurname     bool // trailing-initials heuristic
	nonPerson         map[string]bool
	nonPersonPrefixes []string
}

func (p *regexProfile) Name() string { return p.name }

func (p *regexProfile) MatchDate(line string) (time.Time, bool) {
	m := p.dateRe.FindStringSubmatch(line)
	if m == nil {
		return time.Time{}, false
	}
	// Unrecognized month or weekday spellings fail here and the line falls
	// through to shift-token detection instead.
	d, err := time.Parse(dateLayout, strings.Join(strings.Fields(m[1]), " "))
	if err != nil {
		return time.Time{}, false
	}
	return d.UTC(), true
}

func (p *regexProfile) FindShift(line string) (ShiftToken, string, bool) {
	loc := p.shiftRe.FindStringSubmatchIndex(line)
	if loc == nil {
		return ShiftToken{}, "", false
	}
	token := ShiftToken{
		Start: line[loc[2]:loc[3]],
		End:   line[loc[4]:loc[5]],
	}
	return token, line[:loc[0]], true
}

func (p *regexProfile) CleanName(raw string) string {
	name := Normalize(raw)
	if p.stripCodes {
		name = leadingJunkRe.ReplaceAllString(name, "")
		name = departmentCodeRe.ReplaceAllString(name, "")
	}
	tokens := strings.Fields(name)
	if len(tokens) == 0 {
		// Malformed name field: degrade to the last word of the raw field
		// rather than dropping into an error path.
		tokens = lastWordFallback(raw)
		if len(tokens) == 0 {
			return ""
		}
	}
	if p.trimToSurname {
		tokens = trimToSurname(tokens)
	}
	name = strings.Join(tokens, " ")
	if p.nonPerson[name] {
		return ""
	}
	for _, prefix := range p.nonPersonPrefixes {
		if name == prefix || strings.HasPrefix(name, prefix+" ") {
			return ""
		}
	}
	return name
}

// DefaultProfileName is used when no PARSE_PROFILE is configured.
const DefaultProfileName = "retail"

var profiles = map[string]*regexProfile{
	"retail": {
		name:          "retail",
		dateRe:        retailDateRe,
		shiftRe:       shiftTokenRe,
		stripCodes:    true,
		trimToSurname: true,
		nonPerson: map[string]bool{
			"NAME":        true,
			"ASSOCIATE":   true,
			"SPECIALIST":  true,
			"LEAD":        true,
			"RECOVERY":    true,
			"COVERAGE":    true,
			"TOTAL":       true,
			"TOTAL HOURS": true,
		},
		nonPersonPrefixes: []string{"PAGE", "TOTAL", "QUERY", "REPORT"},
	},
	"plain": {
		name:    "plain",
		dateRe:  plainDateRe,
		shiftRe: shiftTokenRe,
		nonPerson: map[string]bool{
			"NAME":       true,
			"ASSOCIATE":  true,
			"SPECIALIST": true,
			"LEAD":       true,
			"RECOVERY":   true,
			"COVERAGE":   true,
		},
	},
}

// ProfileByName resolves a configured profile name.
func ProfileByName(name string) (Profile, error) {
	if name == "" {
		name = DefaultProfileName
	}
	p, ok := profiles[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", schedule.ErrUnknownProfile, name)
	}
	return p, nil
}

// ProfileNames lists the registered profiles, for config validation messages.
func ProfileNames() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	return names
}
