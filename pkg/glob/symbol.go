package glob

import (
	"github.com/pkg/errors"
)

const (
	// Separator is the canonical path separator. NormalizeSeparators
	// rewrites everything else onto it before compilation.
	Separator = '/'

	// endOfInput is the virtual character one past the last byte of the
	// subject path. It never appears inside a real path.
	endOfInput = byte(0)
)

// SymbolKind enumerates what a single edge accepts. The declaration order
// doubles as the priority order used when a node's edges are tried during
// matching: most specific first.
type SymbolKind int

const (
	// Literal accepts exactly one character.
	Literal SymbolKind = iota
	// EndOfInput accepts only the virtual terminator past the final character.
	EndOfInput
	// AnySegment accepts any character except the separator and the
	// terminator. Used for `?` and for the character a `*` repeats on.
	AnySegment
	// Any accepts every character, separator and terminator included.
	// Used for `**`, which has to cross segment boundaries.
	Any
)

// ErrBadSymbol is returned when an edge carries a symbol kind outside the
// known set. It can only come from a defect in the compiler, never from
// any pattern a caller can supply.
var ErrBadSymbol = errors.New("glob: unknown symbol kind")

// Symbol describes the single input character an edge accepts.
type Symbol struct {
	Kind SymbolKind
	Char byte
}

// Matches reports whether the symbol accepts c.
func (s Symbol) Matches(c byte) (bool, error) {
	switch s.Kind {
	case Literal:
		return c == s.Char, nil
	case EndOfInput:
		return c == endOfInput, nil
	case AnySegment:
		return c != Separator && c != endOfInput, nil
	case Any:
		return true, nil
	}

	return false, errors.Wrapf(ErrBadSymbol, "kind %d", s.Kind)
}
