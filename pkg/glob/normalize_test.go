package glob

import (
	"testing"
)

func TestNormalizePattern(t *testing.T) {
	type patternTest = struct {
		in     string
		expect string
	}

	tests := []patternTest{
		{"", ""},
		{"/a/b", "/a/b"},
		{"foo", "/**/foo"},
		{"*.txt", "/**/*.txt"},
		{"**foo", "/**foo"},
		{"**/foo", "/**/foo"},
		{"/a/b/", "/a/b/**"},
		{"a/", "/**/a/**"},
		{"/", "/**"},
	}

	for _, item := range tests {
		if got := NormalizePattern(item.in); got != item.expect {
			t.Errorf("NormalizePattern(%q) = %q, want %q", item.in, got, item.expect)
		}
		// Applying the rules a second time must change nothing.
		if got := NormalizePattern(item.expect); got != item.expect {
			t.Errorf("NormalizePattern(%q) = %q, not idempotent", item.expect, got)
		}
	}
}

func TestNormalizeSeparators(t *testing.T) {
	type sepTest = struct {
		in     string
		expect string
	}

	tests := []sepTest{
		{"", ""},
		{"a/b", "a/b"},
		{"a\\b", "a/b"},
		{"\\a\\b\\", "/a/b/"},
		{"mixed/and\\matched", "mixed/and/matched"},
	}

	for _, item := range tests {
		if got := NormalizeSeparators(item.in); got != item.expect {
			t.Errorf("NormalizeSeparators(%q) = %q, want %q", item.in, got, item.expect)
		}
	}
}
