package glob_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/patmatch/patmatch/pkg/glob"
)

func TestMatchProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	// Kept short on purpose: the matcher has no memoization, so failing
	// searches over star-heavy patterns grow exponentially with subject
	// length.
	absPath := gen.RegexMatch(`(/[a-z0-9]{1,4}){1,2}`)
	rawPattern := gen.RegexMatch(`[a-z*?/]{0,8}`)

	properties.Property("matching is deterministic", prop.ForAll(
		func(path string, pattern string) bool {
			first, err1 := glob.MatchString(path, pattern, glob.Options{})
			second, err2 := glob.MatchString(path, pattern, glob.Options{})

			return first == second && (err1 == nil) == (err2 == nil)
		},
		absPath,
		rawPattern,
	))

	properties.Property("normalization is idempotent", prop.ForAll(
		func(pattern string) bool {
			once := glob.NormalizePattern(pattern)
			return glob.NormalizePattern(once) == once
		},
		rawPattern,
	))

	properties.Property("a literal path matches itself", prop.ForAll(
		func(path string) bool {
			hit, err := glob.MatchString(path, path, glob.Options{})
			return err == nil && hit
		},
		absPath,
	))

	properties.Property("** matches every absolute path", prop.ForAll(
		func(path string) bool {
			hit, err := glob.MatchString(path, "**", glob.Options{})
			return err == nil && hit
		},
		absPath,
	))

	properties.Property("a compiled machine never errors on valid patterns", prop.ForAll(
		func(path string, pattern string) bool {
			_, err := glob.MatchString(path, pattern, glob.Options{})
			return err == nil
		},
		absPath,
		rawPattern,
	))

	properties.TestingRun(t)
}
