// Package biolib provides a high-level API over the biolib sequence
// algebra: decoding text into typed DNA, RNA and protein sequences and
// transforming them.
//
// Example usage:
//
//	dna, err := biolib.ParseDNA("GATGGAACTTGACTACGTAAATT")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	rna := biolib.Transcribe(dna)
//	fmt.Println(rna) // GAUGGAACUUGACUACGUAAAUU
//
//	for _, m := range biolib.FindReversePalindromes(dna) {
//	    fmt.Println(m)
//	}
package biolib

import (
	"fmt"

	"github.com/aria-lang/biolib-go/internal/alphabet"
	"github.com/aria-lang/biolib-go/internal/codon"
	"github.com/aria-lang/biolib-go/internal/distance"
	"github.com/aria-lang/biolib-go/internal/loader"
	"github.com/aria-lang/biolib-go/internal/mendel"
	"github.com/aria-lang/biolib-go/internal/palindrome"
	"github.com/aria-lang/biolib-go/internal/sequence"
)

// Re-export types for convenience
type (
	Kind       = alphabet.Kind
	DnaBase    = alphabet.DnaBase
	RnaBase    = alphabet.RnaBase
	AminoAcid  = alphabet.AminoAcid
	DNA        = sequence.DNA
	RNA        = sequence.RNA
	Protein    = sequence.Protein
	Codon      = codon.Codon
	Match      = palindrome.Match
	Scanner    = palindrome.Scanner
	Population = mendel.Population
	Record     = loader.Record

	InvalidSymbolError   = alphabet.InvalidSymbolError
	IncompleteCodonError = codon.IncompleteCodonError
	LengthMismatchError  = distance.LengthMismatchError
	SequenceError        = sequence.SequenceError
)

// Constants
const (
	KindDNA     = alphabet.KindDNA
	KindRNA     = alphabet.KindRNA
	KindProtein = alphabet.KindProtein

	MinPalindromeLength = palindrome.MinLength
	MaxPalindromeLength = palindrome.MaxLength
)

// Sentinel errors for errors.Is.
var (
	ErrInvalidSymbol   = alphabet.ErrInvalidSymbol
	ErrIncompleteCodon = codon.ErrIncompleteCodon
	ErrLengthMismatch  = distance.ErrLengthMismatch
)

// ParseKind maps "dna", "rna" or "protein" to a Kind.
func ParseKind(name string) (Kind, error) {
	return alphabet.ParseKind(name)
}

// Validate checks text against the alphabet named by kind.
func Validate(kind Kind, text string) error {
	return alphabet.Validate(kind, text)
}

// ParseDNA decodes a DNA sequence.
func ParseDNA(text string) (DNA, error) {
	return sequence.ParseDNA(text)
}

// ParseRNA decodes an RNA sequence.
func ParseRNA(text string) (RNA, error) {
	return sequence.ParseRNA(text)
}

// ParseProtein decodes an amino-acid sequence.
func ParseProtein(text string) (Protein, error) {
	return sequence.ParseProtein(text)
}

// ComplementBase returns the pairing partner of a DNA base.
func ComplementBase(b DnaBase) DnaBase {
	return b.Complement()
}

// Complement complements every base of a DNA sequence.
func Complement(s DNA) DNA {
	return sequence.Complement(s)
}

// ReverseComplement returns the reverse complement of a DNA sequence.
func ReverseComplement(s DNA) DNA {
	return sequence.ReverseComplement(s)
}

// ReverseComplementRNA returns the reverse complement of an RNA sequence.
func ReverseComplementRNA(s RNA) RNA {
	return sequence.ReverseComplement(s)
}

// Transcribe converts DNA to RNA.
func Transcribe(s DNA) RNA {
	return sequence.Transcribe(s)
}

// Translate converts RNA to protein.
func Translate(s RNA) (Protein, error) {
	return codon.Translate(s)
}

// FindReversePalindromes scans DNA serially.
func FindReversePalindromes(s DNA) []Match {
	return palindrome.Find(s)
}

// NewScanner returns a parallel palindrome scanner.
func NewScanner(opts ...palindrome.Option) *Scanner {
	return palindrome.NewScanner(opts...)
}

// FindReversePalindromesText decodes raw DNA text and scans it.
func FindReversePalindromesText(text string) ([]Match, error) {
	s, err := sequence.ParseDNA(text)
	if err != nil {
		return nil, err
	}
	return palindrome.Find(s), nil
}

// HammingDistance counts mismatched positions between two DNA sequences.
func HammingDistance(a, b DNA) (int, error) {
	return distance.Hamming(a, b)
}

// BaseCounts returns the A, C, G and T counts of a DNA sequence.
func BaseCounts(s DNA) sequence.Counts[DnaBase] {
	return sequence.BaseCounts(s)
}

// DominantProbability applies Mendel's first law to a population.
func DominantProbability(p Population) (float64, error) {
	return mendel.DominantProbability(p)
}

// ReadSequence loads one sequence (flat text or first FASTA record).
func ReadSequence(path string) (string, error) {
	return loader.ReadSequence(path)
}

// ReadSequences loads every sequence of a file.
func ReadSequences(path string) ([]string, error) {
	return loader.ReadSequences(path)
}

// Version returns the biolib version.
func Version() string {
	return "1.0.0"
}

// Info returns information about biolib.
func Info() string {
	return fmt.Sprintf(`biolib v%s - Biological Sequence Algebra

Features:
  - DNA/RNA/protein alphabets with bijective encode/decode
  - Complement, reverse complement and transcription
  - Codon translation with the standard genetic code
  - Reverse-complement palindrome scanning (serial and parallel)
  - Hamming distance
  - Mendel's first law probabilities
  - Flat text and FASTA loading
`, Version())
}
