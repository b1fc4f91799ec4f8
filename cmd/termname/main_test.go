package main

import (
	"io"
	"log"
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	log.SetOutput(io.Discard)
	type testCase struct {
		name    string
		format  formatter
		expect  string
		invalid int
	}
	in := "Winter 2024/2025\n\nss25\nTerm To Delete\nWS2099/2100\n"
	tests := []testCase{
		{"canonical", newFormatter(false, ""), "WS2024/25\nSS2025\nWS2099/00\n", 1},
		{"slug", newFormatter(true, ""), "ws2024-25\nss2025\nws2099-00\n", 1},
		{"de", newFormatter(false, "de"), "Wintersemester 2024/25\nSommersemester 2025\nWintersemester 2099/00\n", 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out strings.Builder
			s, err := run(strings.NewReader(in), &out, tc.format)
			if err != nil {
				t.Fatal(err)
			}
			if got := out.String(); got != tc.expect {
				t.Errorf("got %q, want %q", got, tc.expect)
			}
			if s.Lines != 4 || s.Invalid != tc.invalid {
				t.Errorf("stats = %+v", s)
			}
		})
	}
}
