// Package slugify turns titles into URL-safe slugs, transliterating
// Cyrillic with the same table the notes have always been keyed by.
package slugify

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	ampRegex      = regexp.MustCompile(`&amp;|&`)
	nonWordRegex  = regexp.MustCompile(`[^a-z0-9_\s-]+`)
	separatorRuns = regexp.MustCompile(`[-\s]+`)
)

// Make lowercases s, transliterates it and joins its words with hyphens.
// Letters without a transliteration are dropped, and only surrounding
// whitespace is stripped, so "-Draft-" stays "-draft-".
//
//	Make("Заголовок")            == "zagolovok"
//	Make("Измененный заголовок") == "izmenennyij-zagolovok"
func Make(s string) string {
	out := strings.ToLower(s)
	out = ampRegex.ReplaceAllString(out, " and ")
	out = Translify(out)
	out = nonWordRegex.ReplaceAllString(out, "")
	out = strings.TrimSpace(out)
	return separatorRuns.ReplaceAllString(out, "-")
}

// Truncate cuts s to at most n runes.
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// Translify replaces every rune with a known transliteration and leaves
// the others untouched.
func Translify(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, ch := range s {
		if repl, ok := table[ch]; ok {
			b.WriteString(repl)
			continue
		}
		b.WriteRune(ch)
	}
	return b.String()
}
