// Package glob matches filesystem-style paths against glob patterns
// (`*`, `**`, `?`) by compiling the pattern into a small state machine
// and running a backtracking traversal over it.
package glob

import (
	"io/ioutil"
	"log"
	"os"
)

type Options struct {
	/**
	 * Debug to stderr
	 */
	Debug bool
}

/**
* MatchString - match a path against the pattern and options
 */
func MatchString(path string, pattern string, options Options) (bool, error) {
	normalizedPattern, normalizedPath := Normalize(pattern, path)

	m := Compile(normalizedPattern)

	if options.Debug {
		m.log = log.New(os.Stderr, "glob:", 0)
	} else {
		m.log = log.New(ioutil.Discard, "", 0)
	}

	return m.Match(normalizedPath)
}

/**
* Match - match a list of paths against the pattern and options, returning
* the ones that hit
 */
func Match(list []string, pattern string, options Options) ([]string, error) {
	normalizedPattern := NormalizePattern(NormalizeSeparators(pattern))
	m := Compile(normalizedPattern)

	result := []string{}
	for _, item := range list {
		hit, err := m.Match(NormalizeSeparators(item))
		if err != nil {
			return nil, err
		}
		if hit {
			result = append(result, item)
		}
	}

	return result, nil
}
