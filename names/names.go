package names

import (
	"regexp"
	"strings"
)

// qualifier tokens are stripped as whole words only, so spellings like
// "constant_buffer" stay untouched.
var qualifierRE = regexp.MustCompile(`\b(?:const|volatile)\s+`)

// CAPIName strips const/volatile qualifiers from a raw C spelling. The
// result is the identifier used on the low level ctypes-like surface,
// which keeps the exact C names apart from qualifiers.
func CAPIName(spelling string) string {
	return qualifierRE.ReplaceAllString(spelling, "")
}

// PyName derives the high level surface identifier from a low level one by
// removing the first matching API prefix.
func PyName(name string, trimPrefixes []string) string {
	return RemovePrefixedName(name, trimPrefixes)
}

// RemovePrefixedName removes the first prefix in trimPrefixes that name
// starts with. Names without a matching prefix come back unchanged.
func RemovePrefixedName(name string, trimPrefixes []string) string {
	for _, prefix := range trimPrefixes {
		if strings.HasPrefix(name, prefix) {
			return strings.TrimPrefix(name, prefix)
		}
	}
	return name
}
