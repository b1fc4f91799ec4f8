package termname

import (
	"fmt"
	"html/template"
)

// templateTerm canonicalizes a template argument; TermName, fmt.Stringer and
// string values are accepted, anything else is the zero value
func templateTerm(v interface{}) TermName {
	var s string
	switch v := v.(type) {
	case TermName:
		s = string(v)
	case string:
		s = v
	case fmt.Stringer:
		s = v.String()
	default:
		return ""
	}
	t, _ := parse(s)
	return t
}

func templateTermName(v interface{}) string {
	return string(templateTerm(v))
}

func templateSlug(v interface{}) string {
	return templateTerm(v).Slug()
}

func templateDisplay(v interface{}, lang ...string) string {
	return templateTerm(v).Display(NewPrinter(lang...))
}

// FuncMap exposes term helpers for templates. Invalid input renders as ""
//
//	{{ TermName .Term }} {{ TermSlug .Term }} {{ TermDisplay .Term "de" }}
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"TermName":    templateTermName,
		"TermSlug":    templateSlug,
		"TermDisplay": templateDisplay,
	}
}
