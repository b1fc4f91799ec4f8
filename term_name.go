package termname

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidTermName is returned (wrapped) for every input that is not a term name
var ErrInvalidTermName = errors.New("invalid term name")

// TermName is the canonical form of an academic term
// WS2024 or SS2025 for a single year, WS2024/25 for a term spanning two years
type TermName string

// whitespace inside a term is the same set strings.TrimSpace removes around it
const termSpace = `[\s\v\x{85}\p{Z}]*`

var termPattern = regexp.MustCompile(`(?i)^(ws|winter|ss|summer)` + termSpace + `(\d{2}|\d{4})(?:` + termSpace + `/` + termSpace + `(\d{2}|\d{4}))?$`)

// ParseTermName accepts "Winter 2024", "ws24", "WS 2024 / 2025" etc. and
// returns the canonical TermName
func ParseTermName(s string) (TermName, error) {
	t, ok := parse(s)
	if !ok {
		return "", fmt.Errorf("%w %q", ErrInvalidTermName, s)
	}
	return t, nil
}

// MustParseTermName is like ParseTermName but panics if s is not a valid term name
func MustParseTermName(s string) TermName {
	t, err := ParseTermName(s)
	if err != nil {
		panic(err)
	}
	return t
}

func IsValidTermName(s string) bool {
	_, ok := parse(s)
	return ok
}

func parse(s string) (TermName, bool) {
	m := termPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return "", false
	}
	season, ok := seasonFromToken(m[1])
	if !ok {
		return "", false
	}

	// two digit years are always in the 2000s
	year := m[2]
	if len(year) == 2 {
		year = "20" + year
	}
	start, err := strconv.Atoi(year)
	if err != nil {
		return "", false
	}
	if m[3] == "" {
		return TermName(season.String() + year), true
	}

	end := m[3]
	if len(end) == 4 {
		end = end[2:]
	}
	// 2099 is followed by "00", never "100"
	if end != fmt.Sprintf("%02d", (start+1)%100) {
		return "", false
	}
	return TermName(season.String() + year + "/" + end), true
}

func (t TermName) String() string { return string(t) }

func (t TermName) IsZero() bool { return t == "" }

// IsRange is true for terms spanning two calendar years (WS2024/25)
func (t TermName) IsRange() bool {
	return strings.Contains(string(t), "/")
}

// Season returns the season of the term; Winter for the zero value
func (t TermName) Season() Season {
	if strings.HasPrefix(string(t), Summer.String()) {
		return Summer
	}
	return Winter
}

// StartYear returns the (first) calendar year of the term
func (t TermName) StartYear() int {
	if len(t) < 6 {
		return 0
	}
	year, _ := strconv.Atoi(string(t[2:6]))
	return year
}

// EndYear returns the second calendar year of a range term as four digits
// (WS2099/00 ends in 2100) or 0 for single year terms
func (t TermName) EndYear() int {
	if !t.IsRange() {
		return 0
	}
	return t.StartYear() + 1
}
