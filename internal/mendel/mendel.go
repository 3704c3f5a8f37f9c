// Package mendel computes offspring phenotype probabilities under Mendel's
// first law for a single gene with one dominant and one recessive allele.
package mendel

import "fmt"

// Population counts organisms by genotype.
type Population struct {
	HomozygousDominant  int `json:"homozygous_dominant"`
	Heterozygous        int `json:"heterozygous"`
	HomozygousRecessive int `json:"homozygous_recessive"`
}

// Size returns the number of organisms.
func (p Population) Size() int {
	return p.HomozygousDominant + p.Heterozygous + p.HomozygousRecessive
}

// Validate rejects negative counts and populations too small to mate.
func (p Population) Validate() error {
	if p.HomozygousDominant < 0 || p.Heterozygous < 0 || p.HomozygousRecessive < 0 {
		return fmt.Errorf("genotype counts must be non-negative")
	}
	if p.Size() < 2 {
		return fmt.Errorf("population must have at least two organisms, got %d", p.Size())
	}
	return nil
}

// DominantProbability returns the probability that two organisms drawn at
// random (without replacement) produce offspring showing the dominant
// phenotype.
func DominantProbability(p Population) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}

	k := float64(p.HomozygousDominant)
	m := float64(p.Heterozygous)
	n := float64(p.HomozygousRecessive)
	total := k + m + n

	// Unordered pairs of parents.
	pairs := total * (total - 1) / 2

	// Any pair with a homozygous dominant parent always shows the trait.
	withDominant := k*(k-1)/2 + k*(total-k)
	// Two heterozygous parents: 3/4 of offspring carry a dominant allele.
	hetHet := m * (m - 1) / 2 * 3 / 4
	// Heterozygous with homozygous recessive: 1/2.
	hetRec := m * n / 2

	return (withDominant + hetHet + hetRec) / pairs, nil
}
