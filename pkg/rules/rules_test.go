package rules_test

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/patmatch/patmatch/pkg/rules"
	"github.com/stretchr/testify/assert"
)

func writeRuleFile(t *testing.T, content string) string {
	t.Helper()

	name := filepath.Join(t.TempDir(), "rules.json")
	if err := ioutil.WriteFile(name, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	return name
}

func TestLoadAndMatch(t *testing.T) {
	name := writeRuleFile(t, `{
		"rules": [
			{"pattern": "/build/"},
			{"pattern": "*.log"}
		]
	}`)

	rs, err := rules.Load(name)
	assert.Nil(t, err, "Error is non-nil")
	assert.Equal(t, 2, rs.Len())

	for path, expect := range map[string]bool{
		"/build/out/app":    true,
		"/src/main.go":      false,
		"/var/log/app.log":  true,
		"/var/log/app.logs": false,
	} {
		hit, err := rs.Match(path)
		assert.Nil(t, err, "Error is non-nil")
		assert.Equal(t, expect, hit, "path %q", path)
	}
}

func TestLastMatchWinsWithNegate(t *testing.T) {
	rs := rules.New([]rules.Rule{
		{Pattern: "/vendor/"},
		{Pattern: "*.go", Negate: true},
	})

	hit, err := rs.Match("/vendor/lib/lib.c")
	assert.Nil(t, err, "Error is non-nil")
	assert.True(t, hit)

	// The later negated *.go rule overrides the vendor rule.
	hit, err = rs.Match("/vendor/lib/lib.go")
	assert.Nil(t, err, "Error is non-nil")
	assert.False(t, hit)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := rules.Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.NotNil(t, err, "Error is nil")
}

func TestLoadBadJSON(t *testing.T) {
	name := writeRuleFile(t, `{"rules": [`)

	_, err := rules.Load(name)
	assert.NotNil(t, err, "Error is nil")
}

func TestLoadRejectsEmptyPattern(t *testing.T) {
	name := writeRuleFile(t, `{"rules": [{"pattern": ""}]}`)

	_, err := rules.Load(name)
	assert.NotNil(t, err, "Error is nil")
}

func TestLoadRejectsEmptyRuleList(t *testing.T) {
	name := writeRuleFile(t, `{"rules": []}`)

	_, err := rules.Load(name)
	assert.NotNil(t, err, "Error is nil")
}
