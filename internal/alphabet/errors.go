package alphabet

import (
	"errors"
	"fmt"
)

// ErrInvalidSymbol matches every *InvalidSymbolError under errors.Is.
var ErrInvalidSymbol = errors.New("invalid symbol")

// InvalidSymbolError is returned when a character has no mapping in the
// alphabet being decoded. Position is the byte offset of the character.
type InvalidSymbolError struct {
	Kind     Kind
	Position int
	Found    rune
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("invalid %s symbol %q at position %d", e.Kind, e.Found, e.Position)
}

func (e *InvalidSymbolError) Is(target error) bool {
	return target == ErrInvalidSymbol
}

func (e *InvalidSymbolError) IsSequenceError() {}
