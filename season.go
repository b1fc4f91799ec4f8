package termname

import "strings"

type Season int

const (
	Winter Season = iota
	Summer
)

// String returns the canonical prefix used in a TermName
func (s Season) String() string {
	switch s {
	case Winter:
		return "WS"
	case Summer:
		return "SS"
	}
	return ""
}

// Name returns the English name of the season
func (s Season) Name() string {
	switch s {
	case Winter:
		return "Winter"
	case Summer:
		return "Summer"
	}
	return ""
}

func seasonFromToken(tok string) (Season, bool) {
	switch strings.ToLower(tok) {
	case "ws", "winter":
		return Winter, true
	case "ss", "summer":
		return Summer, true
	}
	return 0, false
}
