// Package stats summarizes collections of DNA sequences.
package stats

import (
	"errors"
	"fmt"
	"slices"

	"github.com/aria-lang/biolib-go/internal/alphabet"
	"github.com/aria-lang/biolib-go/internal/sequence"
)

// ErrEmptySet is returned when summarizing no sequences.
var ErrEmptySet = errors.New("sequence set is empty")

// Profile describes a single DNA sequence.
type Profile struct {
	Length    int     `json:"length"`
	GCContent float64 `json:"gc_content"`
	A         int     `json:"a"`
	C         int     `json:"c"`
	G         int     `json:"g"`
	T         int     `json:"t"`
}

// ProfileOf computes the profile of s.
func ProfileOf(s sequence.DNA) Profile {
	counts := sequence.BaseCounts(s)
	return Profile{
		Length:    s.Len(),
		GCContent: sequence.GCContent(s),
		A:         counts.Of(alphabet.DnaA),
		C:         counts.Of(alphabet.DnaC),
		G:         counts.Of(alphabet.DnaG),
		T:         counts.Of(alphabet.DnaT),
	}
}

// ATContent returns the fraction of A and T bases, or 0 for an empty
// sequence.
func (p Profile) ATContent() float64 {
	if p.Length == 0 {
		return 0
	}
	return float64(p.A+p.T) / float64(p.Length)
}

// Summary aggregates a set of sequences.
type Summary struct {
	Count         int     `json:"count"`
	TotalBases    int     `json:"total_bases"`
	MinLength     int     `json:"min_length"`
	MaxLength     int     `json:"max_length"`
	MeanLength    float64 `json:"mean_length"`
	MedianLength  int     `json:"median_length"`
	MeanGCContent float64 `json:"mean_gc_content"`
	N50           int     `json:"n50"`
	// Richest is the 0-based index of the sequence with the highest GC
	// content. Ties go to the earliest sequence.
	Richest int `json:"richest"`
}

// Summarize computes a Summary over seqs.
func Summarize(seqs []sequence.DNA) (*Summary, error) {
	if len(seqs) == 0 {
		return nil, ErrEmptySet
	}

	sum := &Summary{Count: len(seqs)}
	lengths := make([]int, len(seqs))
	bestGC, gcSum := -1.0, 0.0

	for i, s := range seqs {
		lengths[i] = s.Len()
		sum.TotalBases += s.Len()

		gc := sequence.GCContent(s)
		gcSum += gc
		if gc > bestGC {
			bestGC, sum.Richest = gc, i
		}
	}

	slices.Sort(lengths)
	sum.MinLength = lengths[0]
	sum.MaxLength = lengths[len(lengths)-1]
	sum.MeanLength = float64(sum.TotalBases) / float64(sum.Count)
	sum.MeanGCContent = gcSum / float64(sum.Count)

	mid := len(lengths) / 2
	if len(lengths)%2 == 0 {
		sum.MedianLength = (lengths[mid-1] + lengths[mid]) / 2
	} else {
		sum.MedianLength = lengths[mid]
	}

	sum.N50 = n50(lengths, sum.TotalBases)
	return sum, nil
}

// n50 returns the length L such that sequences of length >= L hold at least
// half of all bases. sorted must be ascending.
func n50(sorted []int, total int) int {
	running := 0
	for i := len(sorted) - 1; i >= 0; i-- {
		running += sorted[i]
		if 2*running >= total {
			return sorted[i]
		}
	}
	return 0
}

func (s *Summary) String() string {
	return fmt.Sprintf(`count: %d
total bases: %d
length range: %d - %d
mean length: %.1f
median length: %d
mean GC: %.2f%%
N50: %d
highest GC: #%d
`, s.Count, s.TotalBases, s.MinLength, s.MaxLength,
		s.MeanLength, s.MedianLength, s.MeanGCContent*100, s.N50, s.Richest+1)
}
