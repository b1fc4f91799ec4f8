package termname

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gosimple/slug"
)

var slugPattern = regexp.MustCompile(`^(ws|ss)[0-9]{4}(-[0-9]{2})?$`)

// Slug returns a URL safe form of the term name (ws2024-25)
func (t TermName) Slug() string {
	return slug.Make(string(t))
}

// ParseSlug is the inverse of Slug. Only slugs as Slug produces them are accepted.
func ParseSlug(s string) (TermName, error) {
	if !slugPattern.MatchString(s) {
		return "", fmt.Errorf("%w %q", ErrInvalidTermName, s)
	}
	t, ok := parse(strings.Replace(s, "-", "/", 1))
	if !ok {
		return "", fmt.Errorf("%w %q", ErrInvalidTermName, s)
	}
	return t, nil
}
