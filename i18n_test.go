package termname

import (
	"testing"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestDisplay(t *testing.T) {
	type testCase struct {
		have   TermName
		lang   string
		expect string
	}
	tests := []testCase{
		{"WS2024/25", "en", "Winter 2024/25"},
		{"SS2025", "en", "Summer 2025"},
		{"WS2099/00", "en", "Winter 2099/00"},
		{"WS2024/25", "de", "Wintersemester 2024/25"},
		{"SS2025", "de-DE,de;q=0.9,en;q=0.8", "Sommersemester 2025"},
		{"WS2024", "fr", "Winter 2024"},
		{"", "de", ""},
	}
	for _, tc := range tests {
		t.Run(tc.lang+"/"+string(tc.have), func(t *testing.T) {
			got := tc.have.Display(NewPrinter(tc.lang))
			if got != tc.expect {
				t.Errorf("%q.Display(%s) = %q, want %q", tc.have, tc.lang, got, tc.expect)
			}
		})
	}
	if got := TermName("SS2025").Display(nil); got != "Summer 2025" {
		t.Errorf("Display(nil) = %q", got)
	}
}

func TestDisplayCatalogIsPrivate(t *testing.T) {
	p := message.NewPrinter(language.German)
	if got := p.Sprintf("Winter %s", "2024"); got != "Winter 2024" {
		t.Errorf("default catalog translated %q", got)
	}
}

func TestNewPrinterKeepsPrefs(t *testing.T) {
	prefs := make([]string, 1, 2)
	prefs[0] = "de"
	p := NewPrinter(prefs...)
	if got := prefs[:2][1]; got != "" {
		t.Errorf("NewPrinter wrote %q past the end of prefs", got)
	}
	if got := TermName("SS2025").Display(p); got != "Sommersemester 2025" {
		t.Errorf("Display = %q", got)
	}
}
