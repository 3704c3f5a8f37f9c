// Package palindrome finds reverse-complement palindromes in DNA: windows
// that read the same as their own reverse complement, such as GAATTC.
//
// Only even window lengths between MinLength and MaxLength are tested. An
// odd window can never match because its middle base would have to be its
// own complement, and no DNA base is.
package palindrome

import (
	"fmt"
	"strings"

	"github.com/aria-lang/biolib-go/internal/sequence"
)

const (
	// MinLength is the shortest window tested.
	MinLength = 4
	// MaxLength is the longest window tested.
	MaxLength = 12

	lengthStep = 2
)

// Match locates one palindrome. Start is 1-based.
type Match struct {
	Start  int `json:"start"`
	Length int `json:"length"`
}

// String renders the match as "start length".
func (m Match) String() string {
	return fmt.Sprintf("%d %d", m.Start, m.Length)
}

// Format renders matches one per line.
func Format(matches []Match) string {
	var sb strings.Builder
	for _, m := range matches {
		sb.WriteString(m.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// IsReversePalindrome reports whether s equals its own reverse complement.
func IsReversePalindrome(s sequence.DNA) bool {
	return s.Equal(sequence.ReverseComplement(s))
}

// Find returns every palindrome in s ordered by start position, then by
// length. Sequences shorter than MinLength yield no matches.
func Find(s sequence.DNA) []Match {
	return scanRange(s, 0, startCount(s))
}

// startCount is the number of start positions a window of MinLength fits at.
func startCount(s sequence.DNA) int {
	if s.Len() < MinLength {
		return 0
	}
	return s.Len() - MinLength + 1
}

// scanRange tests every window starting in [from, to). Windows that would
// run past the end of s are skipped, never padded or wrapped.
func scanRange(s sequence.DNA, from, to int) []Match {
	matches := make([]Match, 0)
	n := s.Len()
	for i := from; i < to; i++ {
		for length := MinLength; length <= MaxLength; length += lengthStep {
			if i+length > n {
				continue
			}
			if isPalindromeAt(s, i, length) {
				matches = append(matches, Match{Start: i + 1, Length: length})
			}
		}
	}
	return matches
}

// isPalindromeAt compares the window [i, i+length) against its reverse
// complement in place, without materialising either.
func isPalindromeAt(s sequence.DNA, i, length int) bool {
	for k := 0; k < length/2; k++ {
		if s.At(i+k) != s.At(i+length-1-k).Complement() {
			return false
		}
	}
	return true
}
