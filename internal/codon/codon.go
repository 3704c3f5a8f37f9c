// Package codon translates RNA into protein using the standard genetic code.
//
// An RNA sequence is partitioned into consecutive, non-overlapping triplets
// (codons) and each codon is looked up in a fixed 64-entry table. Three
// codons (UAA, UAG, UGA) yield Stop; the other 61 map onto the 20 standard
// residues.
package codon

import (
	"errors"
	"fmt"

	"github.com/aria-lang/biolib-go/internal/alphabet"
	"github.com/aria-lang/biolib-go/internal/sequence"
)

// Size is the number of bases in a codon.
const Size = 3

// ErrIncompleteCodon matches every *IncompleteCodonError under errors.Is.
var ErrIncompleteCodon = errors.New("incomplete codon")

// IncompleteCodonError is returned when a sequence cannot be partitioned
// into whole codons.
type IncompleteCodonError struct {
	Length int
}

func (e *IncompleteCodonError) Error() string {
	return fmt.Sprintf("sequence length %d is not a multiple of %d (%d trailing bases)",
		e.Length, Size, e.Length%Size)
}

func (e *IncompleteCodonError) Is(target error) bool {
	return target == ErrIncompleteCodon
}

func (e *IncompleteCodonError) IsSequenceError() {}

// Codon is a triplet of RNA bases.
type Codon struct {
	First  alphabet.RnaBase
	Second alphabet.RnaBase
	Third  alphabet.RnaBase
}

// Parse decodes a three-letter RNA codon such as "AUG".
func Parse(text string) (Codon, error) {
	if len(text) != Size {
		return Codon{}, &IncompleteCodonError{Length: len(text)}
	}
	bases, err := alphabet.RNA.Decode(text)
	if err != nil {
		return Codon{}, err
	}
	return Codon{First: bases[0], Second: bases[1], Third: bases[2]}, nil
}

// Index maps the codon onto 0..63, with the first base most significant.
func (c Codon) Index() int {
	return int(c.First)*16 + int(c.Second)*4 + int(c.Third)
}

// FromIndex is the inverse of Index.
func FromIndex(i int) Codon {
	return Codon{
		First:  alphabet.RnaBase(i / 16 % 4),
		Second: alphabet.RnaBase(i / 4 % 4),
		Third:  alphabet.RnaBase(i % 4),
	}
}

func (c Codon) String() string {
	return c.First.String() + c.Second.String() + c.Third.String()
}

// Codons partitions s into consecutive codons in their original order. A
// trailing partial codon is an error, never silently dropped.
func Codons(s sequence.RNA) ([]Codon, error) {
	if s.Len()%Size != 0 {
		return nil, &IncompleteCodonError{Length: s.Len()}
	}

	out := make([]Codon, 0, s.Len()/Size)
	for i := 0; i < s.Len(); i += Size {
		out = append(out, Codon{First: s.At(i), Second: s.At(i + 1), Third: s.At(i + 2)})
	}
	return out, nil
}

// Translate converts RNA to protein, one amino acid per codon. Stop codons
// are emitted as alphabet.Stop; translation does not halt at them.
func Translate(s sequence.RNA) (sequence.Protein, error) {
	codons, err := Codons(s)
	if err != nil {
		return sequence.Protein{}, err
	}

	residues := make([]alphabet.AminoAcid, len(codons))
	for i, c := range codons {
		residues[i] = Lookup(c)
	}
	return sequence.New(residues...), nil
}

// TranslateDNA transcribes s and translates the result.
func TranslateDNA(s sequence.DNA) (sequence.Protein, error) {
	return Translate(sequence.Transcribe(s))
}
