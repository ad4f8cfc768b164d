// Package views turns stored records into view models and renders them
// with the embedded templates. View model builders are pure: the same
// input always yields the same output.
package views

import (
	"embed"
	"errors"
	"html/template"
	"io/fs"
	"strings"
	"unicode"
	"unicode/utf8"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"capitalize": Capitalize,
		"title":      CategoryTitle,
		"join":       strings.Join,
		"imageSrc":   imageSrc,
		"dict":       dict,
	}).ParseFS(templateFS, "templates/*.html")
}

// Static is the embedded asset tree served under /static.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Capitalize upper-cases the first letter: "in-progress" becomes
// "In-progress".
func Capitalize(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[n:]
}

// CategoryTitle turns a category slug into a heading: the first hyphen
// becomes a space and each word is capitalised.
func CategoryTitle(slug string) string {
	s := []rune(strings.Replace(slug, "-", " ", 1))
	prevWord := false
	for i, r := range s {
		isWord := unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
		if isWord && !prevWord {
			s[i] = unicode.ToUpper(r)
		}
		prevWord = isWord
	}
	return string(s)
}

// imageSrc lets uploaded data:image URIs through the template URL filter.
// Anything else is escaped as usual.
func imageSrc(src string) any {
	if strings.HasPrefix(src, "data:image/") {
		return template.URL(src)
	}
	return src
}

// dict builds a map from alternating keys and values so a partial can take
// more than one argument.
func dict(pairs ...any) (map[string]any, error) {
	if len(pairs)%2 != 0 {
		return nil, errors.New("dict needs key/value pairs")
	}
	m := make(map[string]any, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, errors.New("dict keys must be strings")
		}
		m[key] = pairs[i+1]
	}
	return m, nil
}
