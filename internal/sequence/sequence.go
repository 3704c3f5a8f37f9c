// Package sequence provides immutable typed biological sequences and the
// elementary transforms over them.
//
// A Sequence holds symbols of exactly one alphabet. The only ways to obtain
// one are decoding text, which rejects characters outside the alphabet, or
// applying a transform to an existing Sequence. Transforms always return a
// new Sequence; nothing is mutated in place.
package sequence

import (
	"fmt"

	"github.com/aria-lang/biolib-go/internal/alphabet"
)

// Sequence is an ordered list of symbols from one alphabet.
type Sequence[S alphabet.Symbol] struct {
	symbols []S
}

// Concrete sequence types.
type (
	DNA     = Sequence[alphabet.DnaBase]
	RNA     = Sequence[alphabet.RnaBase]
	Protein = Sequence[alphabet.AminoAcid]
)

// New builds a sequence from symbols. The slice is copied.
func New[S alphabet.Symbol](symbols ...S) Sequence[S] {
	return Sequence[S]{symbols: append([]S(nil), symbols...)}
}

// Decode parses text in the alphabet of S.
func Decode[S alphabet.Symbol](text string) (Sequence[S], error) {
	symbols, err := alphabet.Of[S]().Decode(text)
	if err != nil {
		return Sequence[S]{}, err
	}
	return Sequence[S]{symbols: symbols}, nil
}

// ParseDNA decodes a DNA sequence.
func ParseDNA(text string) (DNA, error) {
	return Decode[alphabet.DnaBase](text)
}

// ParseRNA decodes an RNA sequence.
func ParseRNA(text string) (RNA, error) {
	return Decode[alphabet.RnaBase](text)
}

// ParseProtein decodes an amino-acid sequence.
func ParseProtein(text string) (Protein, error) {
	return Decode[alphabet.AminoAcid](text)
}

// Kind reports the alphabet of the sequence.
func (s Sequence[S]) Kind() alphabet.Kind {
	var zero S
	return zero.Kind()
}

// Len returns the number of symbols.
func (s Sequence[S]) Len() int {
	return len(s.symbols)
}

// At returns the symbol at index i. It panics if i is out of range, like a
// slice index.
func (s Sequence[S]) At(i int) S {
	return s.symbols[i]
}

// Symbols returns a copy of the symbols.
func (s Sequence[S]) Symbols() []S {
	return append([]S(nil), s.symbols...)
}

// Subsequence returns the symbols in [start, end). The result shares storage
// with s, which is safe because neither can be modified.
func (s Sequence[S]) Subsequence(start, end int) (Sequence[S], error) {
	if start < 0 {
		return Sequence[S]{}, fmt.Errorf("start index must be non-negative")
	}
	if end < start {
		return Sequence[S]{}, fmt.Errorf("end must not precede start")
	}
	if end > len(s.symbols) {
		return Sequence[S]{}, fmt.Errorf("end must not exceed sequence length")
	}
	return Sequence[S]{symbols: s.symbols[start:end:end]}, nil
}

// Equal reports whether both sequences hold the same symbols in order.
func (s Sequence[S]) Equal(other Sequence[S]) bool {
	if len(s.symbols) != len(other.symbols) {
		return false
	}
	for i := range s.symbols {
		if s.symbols[i] != other.symbols[i] {
			return false
		}
	}
	return true
}

// String encodes the sequence back to its one-letter text.
func (s Sequence[S]) String() string {
	return alphabet.Of[S]().Encode(s.symbols)
}

// Reverse returns the symbols in reverse order.
func Reverse[S alphabet.Symbol](s Sequence[S]) Sequence[S] {
	n := len(s.symbols)
	out := make([]S, n)
	for i, b := range s.symbols {
		out[n-1-i] = b
	}
	return Sequence[S]{symbols: out}
}

// Complement replaces every base with its pairing partner.
func Complement[N alphabet.Nucleotide[N]](s Sequence[N]) Sequence[N] {
	out := make([]N, len(s.symbols))
	for i, b := range s.symbols {
		out[i] = b.Complement()
	}
	return Sequence[N]{symbols: out}
}

// ReverseComplement returns the complement of s read in reverse order.
// Applying it twice yields s again.
func ReverseComplement[N alphabet.Nucleotide[N]](s Sequence[N]) Sequence[N] {
	n := len(s.symbols)
	out := make([]N, n)
	for i, b := range s.symbols {
		out[n-1-i] = b.Complement()
	}
	return Sequence[N]{symbols: out}
}

// Transcribe converts DNA to RNA (T -> U).
func Transcribe(s DNA) RNA {
	out := make([]alphabet.RnaBase, len(s.symbols))
	for i, b := range s.symbols {
		out[i] = b.Transcribe()
	}
	return RNA{symbols: out}
}

// ReverseTranscribe converts RNA back to DNA (U -> T).
func ReverseTranscribe(s RNA) DNA {
	out := make([]alphabet.DnaBase, len(s.symbols))
	for i, b := range s.symbols {
		out[i] = b.ReverseTranscribe()
	}
	return DNA{symbols: out}
}

// GCContent returns the proportion of G and C bases, or 0 for an empty
// sequence.
func GCContent[N alphabet.Nucleotide[N]](s Sequence[N]) float64 {
	if len(s.symbols) == 0 {
		return 0.0
	}

	table := alphabet.Of[N]()
	gcCount := 0
	for _, b := range s.symbols {
		if l := table.Letter(b); l == 'G' || l == 'C' {
			gcCount++
		}
	}

	return float64(gcCount) / float64(len(s.symbols))
}
