// termname prints the canonical form of each term name given as an argument
// or read line by line from stdin
//
//	$ echo "Winter 2024/2025" | termname
//	WS2024/25
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jehiah/termname"
)

type formatter func(termname.TermName) string

func newFormatter(slug bool, lang string) formatter {
	switch {
	case slug:
		return termname.TermName.Slug
	case lang != "":
		p := termname.NewPrinter(lang)
		return func(t termname.TermName) string { return t.Display(p) }
	}
	return termname.TermName.String
}

type stats struct {
	Lines, Invalid int
}

func run(in io.Reader, out io.Writer, format formatter) (stats, error) {
	var s stats
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		s.Lines++
		t, err := termname.ParseTermName(line)
		if err != nil {
			s.Invalid++
			log.Printf("line %d: %s", s.Lines, err)
			continue
		}
		fmt.Fprintln(out, format(t))
	}
	return s, scanner.Err()
}

func main() {
	slug := flag.Bool("slug", false, "print URL slugs instead of canonical names")
	lang := flag.String("lang", os.Getenv("TERMNAME_LANG"), "print display names in this language (en, de)")
	verbose := flag.Bool("v", false, "log a summary")
	flag.Parse()
	log.SetFlags(0)

	var in io.Reader = os.Stdin
	if flag.NArg() > 0 {
		in = strings.NewReader(strings.Join(flag.Args(), "\n"))
	}

	s, err := run(in, os.Stdout, newFormatter(*slug, *lang))
	if err != nil {
		log.Fatalf("reading input: %s", err)
	}
	if *verbose {
		log.Printf("%s term names, %s invalid", humanize.Comma(int64(s.Lines)), humanize.Comma(int64(s.Invalid)))
	}
	if s.Invalid > 0 {
		os.Exit(1)
	}
}
