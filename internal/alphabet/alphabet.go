// Package alphabet provides the closed symbol sets used throughout biolib
// and the static tables that map them to and from one-letter codes.
//
// Three alphabets are supported: DNA bases (A, C, G, T), RNA bases
// (A, C, G, U) and amino acids (the 20 standard residues plus '|' for a stop
// codon). Each table is a bijection between letters and symbols. Tables are
// checked when the package is initialised, so a malformed table never
// reaches a caller.
package alphabet

import (
	"fmt"
	"strings"
)

// Kind tags one of the supported alphabets.
type Kind int

const (
	// KindDNA is the nucleic-acid DNA alphabet (A, C, G, T).
	KindDNA Kind = iota
	// KindRNA is the nucleic-acid RNA alphabet (A, C, G, U).
	KindRNA
	// KindProtein is the amino-acid alphabet.
	KindProtein
)

func (k Kind) String() string {
	switch k {
	case KindDNA:
		return "DNA"
	case KindRNA:
		return "RNA"
	case KindProtein:
		return "Protein"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps a case-insensitive alphabet name to its Kind.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dna":
		return KindDNA, nil
	case "rna":
		return KindRNA, nil
	case "protein", "aa", "amino":
		return KindProtein, nil
	default:
		return 0, fmt.Errorf("unknown alphabet %q", name)
	}
}

// Symbol is satisfied by the three symbol enumerations.
type Symbol interface {
	DnaBase | RnaBase | AminoAcid
	Kind() Kind
	String() string
}

// Nucleotide is satisfied by the symbol types that have a base-pairing
// partner. N is the symbol type itself.
type Nucleotide[N any] interface {
	Symbol
	DnaBase | RnaBase
	Complement() N
}

// Alphabet is a static bidirectional table between the symbols of one
// enumeration and their one-letter codes. The letter at index i encodes the
// symbol with value i.
type Alphabet[S Symbol] struct {
	kind    Kind
	letters string
	index   [256]int16
}

var (
	// DNA decodes and encodes DNA bases.
	DNA = mustAlphabet[DnaBase](KindDNA, "ACGT", int(dnaBaseCount))
	// RNA decodes and encodes RNA bases.
	RNA = mustAlphabet[RnaBase](KindRNA, "ACGU", int(rnaBaseCount))
	// Protein decodes and encodes amino acids; '|' is the stop marker.
	Protein = mustAlphabet[AminoAcid](KindProtein, "ARNDCQEGHILKMFPSTWYV|", int(aminoAcidCount))
)

// mustAlphabet builds a table and panics unless letters has exactly one
// distinct letter per enumerated symbol.
func mustAlphabet[S Symbol](kind Kind, letters string, size int) *Alphabet[S] {
	if len(letters) != size {
		panic(fmt.Sprintf("alphabet %s: %d letters for %d symbols", kind, len(letters), size))
	}

	a := &Alphabet[S]{kind: kind, letters: letters}
	for i := range a.index {
		a.index[i] = -1
	}
	for i := 0; i < len(letters); i++ {
		c := letters[i]
		if a.index[c] != -1 {
			panic(fmt.Sprintf("alphabet %s: letter %q listed twice", kind, c))
		}
		a.index[c] = int16(i)
	}
	return a
}

// Of returns the alphabet table for the symbol type S.
func Of[S Symbol]() *Alphabet[S] {
	var zero S
	switch any(zero).(type) {
	case DnaBase:
		return any(DNA).(*Alphabet[S])
	case RnaBase:
		return any(RNA).(*Alphabet[S])
	default:
		return any(Protein).(*Alphabet[S])
	}
}

// Kind reports which alphabet this table encodes.
func (a *Alphabet[S]) Kind() Kind {
	return a.kind
}

// Len returns the number of symbols in the alphabet.
func (a *Alphabet[S]) Len() int {
	return len(a.letters)
}

// Letters returns every letter of the alphabet in symbol order.
func (a *Alphabet[S]) Letters() string {
	return a.letters
}

// Symbols returns every symbol of the alphabet in enumeration order.
func (a *Alphabet[S]) Symbols() []S {
	out := make([]S, len(a.letters))
	for i := range out {
		out[i] = S(i)
	}
	return out
}

// Letter returns the one-letter code of s.
func (a *Alphabet[S]) Letter(s S) byte {
	return a.letters[int(s)]
}

// Symbol returns the symbol encoded by c, if any.
func (a *Alphabet[S]) Symbol(c byte) (S, bool) {
	i := a.index[c]
	if i < 0 {
		return 0, false
	}
	return S(i), true
}

// Decode maps every character of text to its symbol. Lookup is case
// sensitive; the first character without a mapping aborts decoding with an
// *InvalidSymbolError and no partial result.
func (a *Alphabet[S]) Decode(text string) ([]S, error) {
	out := make([]S, 0, len(text))
	for pos, r := range text {
		if r > 0xFF {
			return nil, &InvalidSymbolError{Kind: a.kind, Position: pos, Found: r}
		}
		s, ok := a.Symbol(byte(r))
		if !ok {
			return nil, &InvalidSymbolError{Kind: a.kind, Position: pos, Found: r}
		}
		out = append(out, s)
	}
	return out, nil
}

// Encode is the inverse of Decode.
func (a *Alphabet[S]) Encode(symbols []S) string {
	var sb strings.Builder
	sb.Grow(len(symbols))
	for _, s := range symbols {
		sb.WriteByte(a.Letter(s))
	}
	return sb.String()
}

// Validate reports whether text decodes cleanly in the alphabet named by
// kind, without keeping the decoded symbols.
func Validate(kind Kind, text string) error {
	var err error
	switch kind {
	case KindDNA:
		_, err = DNA.Decode(text)
	case KindRNA:
		_, err = RNA.Decode(text)
	case KindProtein:
		_, err = Protein.Decode(text)
	default:
		err = fmt.Errorf("unknown alphabet %s", kind)
	}
	return err
}
