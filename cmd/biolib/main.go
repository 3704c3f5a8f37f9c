// Command biolib runs the biolib sequence transforms from the command line.
//
// Each subcommand reads its input from --file (flat text or FASTA) or from a
// positional argument, and prints its answer to stdout:
//
//	biolib dna   <seq>          base counts (A C G T)
//	biolib rna   <seq>          transcription
//	biolib revc  <seq>          reverse complement
//	biolib prot  <seq>          translation
//	biolib hamm  <seq1> <seq2>  Hamming distance
//	biolib revp  <seq>          reverse-complement palindromes
//	biolib iprb  <k> <m> <n>    dominant phenotype probability
//	biolib decode <seq>         validate against an alphabet
//	biolib stats <seq...>       summarize a sequence set
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
