package sequence

import (
	"strconv"
	"strings"

	"github.com/aria-lang/biolib-go/internal/alphabet"
)

// Count pairs a symbol with the number of times it occurs.
type Count[S alphabet.Symbol] struct {
	Symbol S
	N      int
}

// Counts holds one Count per symbol of the alphabet, in alphabet order,
// including symbols that never occur.
type Counts[S alphabet.Symbol] []Count[S]

// BaseCounts tallies every symbol of s.
func BaseCounts[S alphabet.Symbol](s Sequence[S]) Counts[S] {
	table := alphabet.Of[S]()
	counts := make(Counts[S], table.Len())
	for i, sym := range table.Symbols() {
		counts[i].Symbol = sym
	}
	for _, sym := range s.symbols {
		counts[int(sym)].N++
	}
	return counts
}

// Of returns the count for sym.
func (c Counts[S]) Of(sym S) int {
	if int(sym) >= len(c) {
		return 0
	}
	return c[int(sym)].N
}

// Total returns the sum of all counts, which equals the sequence length.
func (c Counts[S]) Total() int {
	total := 0
	for _, n := range c {
		total += n.N
	}
	return total
}

// String renders the counts space separated in alphabet order, e.g.
// "20 12 17 21" for DNA.
func (c Counts[S]) String() string {
	parts := make([]string, len(c))
	for i, n := range c {
		parts[i] = strconv.Itoa(n.N)
	}
	return strings.Join(parts, " ")
}
