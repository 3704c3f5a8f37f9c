// Package distance compares sequences of the same alphabet.
package distance

import (
	"errors"
	"fmt"

	"github.com/aria-lang/biolib-go/internal/alphabet"
	"github.com/aria-lang/biolib-go/internal/sequence"
)

// ErrLengthMismatch matches every *LengthMismatchError under errors.Is.
var ErrLengthMismatch = errors.New("length mismatch")

// LengthMismatchError is returned when sequences that must be aligned
// position by position have different lengths.
type LengthMismatchError struct {
	Left  int
	Right int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("sequences must have the same length: %d and %d provided", e.Left, e.Right)
}

func (e *LengthMismatchError) Is(target error) bool {
	return target == ErrLengthMismatch
}

func (e *LengthMismatchError) IsSequenceError() {}

// Hamming counts the positions at which a and b differ. The sequences must
// have equal length; they are never truncated to the shorter one.
func Hamming[S alphabet.Symbol](a, b sequence.Sequence[S]) (int, error) {
	if a.Len() != b.Len() {
		return 0, &LengthMismatchError{Left: a.Len(), Right: b.Len()}
	}

	distance := 0
	for k := 0; k < a.Len(); k++ {
		if a.At(k) != b.At(k) {
			distance++
		}
	}
	return distance, nil
}
