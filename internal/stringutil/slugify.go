package stringutil

import (
	"regexp"
	"strings"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

var transliterations = strings.NewReplacer("ä", "ae", "ö", "oe", "ü", "ue", "ß", "ss")

// Slugify converts a string to a file-name friendly slug.
// German umlauts are transliterated (ü -> ue), every other run of
// non-alphanumeric characters becomes one hyphen, and leading/trailing
// hyphens are trimmed.
func Slugify(name string) string {
	s := strings.ToLower(name)
	s = transliterations.Replace(s)
	s = nonAlphanumeric.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	return s
}
