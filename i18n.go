package termname

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

var displayMessages = map[language.Tag]map[string]string{
	language.English: {
		"Winter %s":    "Winter %s",
		"Winter %s/%s": "Winter %s/%s",
		"Summer %s":    "Summer %s",
		"Summer %s/%s": "Summer %s/%s",
	},
	language.German: {
		"Winter %s":    "Wintersemester %s",
		"Winter %s/%s": "Wintersemester %s/%s",
		"Summer %s":    "Sommersemester %s",
		"Summer %s/%s": "Sommersemester %s/%s",
	},
}

var matcher = language.NewMatcher([]language.Tag{language.English, language.German})

// display strings are kept out of message.DefaultCatalog
var displayCatalog = catalog.NewBuilder()

func init() {
	for tag, msgs := range displayMessages {
		for key, msg := range msgs {
			if err := displayCatalog.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}
}

// NewPrinter picks the best display language for the given preferences
// which may be language tags or Accept-Language header values
func NewPrinter(prefs ...string) *message.Printer {
	prefs = append(prefs[:len(prefs):len(prefs)], "en")
	tag, _ := language.MatchStrings(matcher, prefs...)
	return message.NewPrinter(tag, message.Catalog(displayCatalog))
}

// Display returns a human readable name (e.g. "Winter 2024/25").
// A nil printer displays in English. Printers must come from NewPrinter.
func (t TermName) Display(p *message.Printer) string {
	if len(t) < 6 {
		return ""
	}
	if p == nil {
		p = message.NewPrinter(language.English, message.Catalog(displayCatalog))
	}
	// years are passed as strings; the printer groups digits of numbers ("2.024")
	year, suffix, _ := strings.Cut(string(t[2:]), "/")
	key := t.Season().Name() + " %s"
	if suffix == "" {
		return p.Sprintf(key, year)
	}
	return p.Sprintf(key+"/%s", year, suffix)
}
