package glob

import (
	"strings"
)

// NormalizeSeparators rewrites every backslash onto the canonical
// separator, so Windows-style patterns and paths compile and match the
// same as their slash forms.
func NormalizeSeparators(s string) string {
	return strings.ReplaceAll(s, "\\", string(Separator))
}

// NormalizePattern anchors a raw pattern so that matching reduces to
// "match the whole pattern against the whole path":
//
//   - a pattern starting with `**` gets a leading separator
//   - any other pattern not starting with a separator is taken to mean
//     "anywhere, at any depth" and gets a leading "/**/"
//   - a pattern ending with a separator means "this directory and
//     everything below it" and gets a trailing "**"
//
// An empty pattern is left empty. The function is idempotent on its own
// output.
func NormalizePattern(pattern string) string {
	if pattern == "" {
		return ""
	}

	if pattern[0] != Separator {
		if strings.HasPrefix(pattern, "**") {
			pattern = string(Separator) + pattern
		} else {
			pattern = string(Separator) + "**" + string(Separator) + pattern
		}
	}

	if pattern[len(pattern)-1] == Separator {
		pattern += "**"
	}

	return pattern
}

// Normalize prepares a raw pattern and subject path for Compile and Match.
func Normalize(pattern, path string) (string, string) {
	return NormalizePattern(NormalizeSeparators(pattern)), NormalizeSeparators(path)
}
