package codon

import (
	"fmt"

	"github.com/aria-lang/biolib-go/internal/alphabet"
)

// standardCode is the standard genetic code, one entry per codon. It is
// reproduced verbatim rather than derived; init checks that all 64 codons
// are present exactly once.
var standardCode = map[string]alphabet.AminoAcid{
	"UUU": alphabet.Phe, "UUC": alphabet.Phe, "UUA": alphabet.Leu, "UUG": alphabet.Leu,
	"UCU": alphabet.Ser, "UCC": alphabet.Ser, "UCA": alphabet.Ser, "UCG": alphabet.Ser,
	"UAU": alphabet.Tyr, "UAC": alphabet.Tyr, "UAA": alphabet.Stop, "UAG": alphabet.Stop,
	"UGU": alphabet.Cys, "UGC": alphabet.Cys, "UGA": alphabet.Stop, "UGG": alphabet.Trp,

	"CUU": alphabet.Leu, "CUC": alphabet.Leu, "CUA": alphabet.Leu, "CUG": alphabet.Leu,
	"CCU": alphabet.Pro, "CCC": alphabet.Pro, "CCA": alphabet.Pro, "CCG": alphabet.Pro,
	"CAU": alphabet.His, "CAC": alphabet.His, "CAA": alphabet.Gln, "CAG": alphabet.Gln,
	"CGU": alphabet.Arg, "CGC": alphabet.Arg, "CGA": alphabet.Arg, "CGG": alphabet.Arg,

	"AUU": alphabet.Ile, "AUC": alphabet.Ile, "AUA": alphabet.Ile, "AUG": alphabet.Met,
	"ACU": alphabet.Thr, "ACC": alphabet.Thr, "ACA": alphabet.Thr, "ACG": alphabet.Thr,
	"AAU": alphabet.Asn, "AAC": alphabet.Asn, "AAA": alphabet.Lys, "AAG": alphabet.Lys,
	"AGU": alphabet.Ser, "AGC": alphabet.Ser, "AGA": alphabet.Arg, "AGG": alphabet.Arg,

	"GUU": alphabet.Val, "GUC": alphabet.Val, "GUA": alphabet.Val, "GUG": alphabet.Val,
	"GCU": alphabet.Ala, "GCC": alphabet.Ala, "GCA": alphabet.Ala, "GCG": alphabet.Ala,
	"GAU": alphabet.Asp, "GAC": alphabet.Asp, "GAA": alphabet.Glu, "GAG": alphabet.Glu,
	"GGU": alphabet.Gly, "GGC": alphabet.Gly, "GGA": alphabet.Gly, "GGG": alphabet.Gly,
}

// TableSize is the number of distinct codons (4^3).
const TableSize = 64

var (
	table    [TableSize]alphabet.AminoAcid
	synonyms [alphabet.Stop + 1][]Codon
)

func init() {
	if len(standardCode) != TableSize {
		panic(fmt.Sprintf("codon: genetic code has %d entries, want %d", len(standardCode), TableSize))
	}

	var filled [TableSize]bool
	for text, aa := range standardCode {
		c, err := Parse(text)
		if err != nil {
			panic(fmt.Sprintf("codon: bad table key %q: %v", text, err))
		}
		table[c.Index()] = aa
		filled[c.Index()] = true
	}
	for i, ok := range filled {
		if !ok {
			panic(fmt.Sprintf("codon: %s missing from genetic code", FromIndex(i)))
		}
	}

	for i := 0; i < TableSize; i++ {
		c := FromIndex(i)
		aa := table[i]
		synonyms[aa] = append(synonyms[aa], c)
	}
}

// Lookup returns the amino acid (or Stop) encoded by c.
func Lookup(c Codon) alphabet.AminoAcid {
	return table[c.Index()]
}

// Synonymous returns every codon encoding aa, in index order.
func Synonymous(aa alphabet.AminoAcid) []Codon {
	if int(aa) >= len(synonyms) {
		return nil
	}
	return append([]Codon(nil), synonyms[aa]...)
}

// StopCodons returns the codons that terminate translation.
func StopCodons() []Codon {
	return Synonymous(alphabet.Stop)
}
