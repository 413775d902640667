// Package slug derives URL-safe identifiers from titles.
package slug

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)
	validSlug       = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
)

// Make lowercases title, folds accented letters to ASCII and replaces every run
// of other characters with a single hyphen. Make(Make(s)) == Make(s).
func Make(title string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), title)
	if err != nil {
		folded = title
	}
	s := nonAlphanumeric.ReplaceAllString(strings.ToLower(folded), "-")
	return strings.Trim(s, "-")
}

// Valid reports whether s is already in slug form
func Valid(s string) bool {
	return validSlug.MatchString(s)
}

// Unique returns base, or base-2, base-3, ... whichever is first reported free by exists
func Unique(base string, exists func(candidate string) (bool, error)) (string, error) {
	candidate := base
	for n := 2; ; n++ {
		taken, err := exists(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, n)
	}
}
