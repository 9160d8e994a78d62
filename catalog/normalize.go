package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lower-cases a string and strips diacritical marks so that
// accent-insensitive comparisons hold ("Ébène" and "ebene" normalize to
// the same value). It is idempotent and never fails; empty input yields
// the empty string. Every identity comparison in the catalog goes
// through here: supplier-name joins, category and country matching,
// search.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	out, _, err := transform.String(stripAccents, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}
