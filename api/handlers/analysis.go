package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/aria-lang/biolib-go/internal/codon"
	"github.com/aria-lang/biolib-go/internal/distance"
	"github.com/aria-lang/biolib-go/internal/mendel"
	"github.com/aria-lang/biolib-go/internal/palindrome"
	"github.com/aria-lang/biolib-go/internal/sequence"
	"github.com/aria-lang/biolib-go/internal/stats"
)

// TranslateResponse represents the response for translation.
type TranslateResponse struct {
	Protein string `json:"protein"`
	Length  int    `json:"length"`
}

// Translate handles RNA to protein requests. With "alphabet": "dna" the
// sequence is transcribed first.
func (h *Handler) Translate(w http.ResponseWriter, r *http.Request) {
	var req SequenceRequest
	if !h.decodeRequest(w, r, &req) {
		return
	}

	var (
		protein sequence.Protein
		err     error
	)
	if strings.EqualFold(req.Alphabet, "dna") {
		var dna sequence.DNA
		if dna, err = sequence.ParseDNA(req.Sequence); err == nil {
			protein, err = codon.TranslateDNA(dna)
		}
	} else {
		var rna sequence.RNA
		if rna, err = sequence.ParseRNA(req.Sequence); err == nil {
			protein, err = codon.Translate(rna)
		}
	}
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, TranslateResponse{Protein: protein.String(), Length: protein.Len()})
}

// PalindromesResponse lists reverse-complement palindromes.
type PalindromesResponse struct {
	Count   int                `json:"count"`
	Matches []palindrome.Match `json:"matches"`
}

// Palindromes handles reverse palindrome scans over DNA.
func (h *Handler) Palindromes(w http.ResponseWriter, r *http.Request) {
	var req SequenceRequest
	if !h.decodeRequest(w, r, &req) {
		return
	}

	dna, err := sequence.ParseDNA(req.Sequence)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	matches := h.scanner.Scan(dna)
	writeJSON(w, http.StatusOK, PalindromesResponse{Count: len(matches), Matches: matches})
}

// HammingRequest carries two DNA sequences.
type HammingRequest struct {
	Sequence1 string `json:"sequence1"`
	Sequence2 string `json:"sequence2"`
}

// HammingResponse represents the response for Hamming distance.
type HammingResponse struct {
	Distance int `json:"distance"`
}

// Hamming handles Hamming distance requests.
func (h *Handler) Hamming(w http.ResponseWriter, r *http.Request) {
	var req HammingRequest
	if !h.decodeRequest(w, r, &req) {
		return
	}

	a, err := sequence.ParseDNA(req.Sequence1)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	b, err := sequence.ParseDNA(req.Sequence2)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	d, err := distance.Hamming(a, b)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, HammingResponse{Distance: d})
}

// DominantResponse represents the Mendel's first law result.
type DominantResponse struct {
	Probability float64 `json:"probability"`
}

// Dominant handles dominant phenotype probability requests.
func (h *Handler) Dominant(w http.ResponseWriter, r *http.Request) {
	var req mendel.Population
	if !h.decodeRequest(w, r, &req) {
		return
	}

	p, err := mendel.DominantProbability(req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, DominantResponse{Probability: p})
}

// StatsRequest carries a set of DNA sequences.
type StatsRequest struct {
	Sequences []string `json:"sequences"`
}

// StatsResponse holds per-sequence profiles and their summary.
type StatsResponse struct {
	Summary  *stats.Summary  `json:"summary"`
	Profiles []stats.Profile `json:"profiles"`
}

// Stats handles sequence set summaries.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	var req StatsRequest
	if !h.decodeRequest(w, r, &req) {
		return
	}

	seqs := make([]sequence.DNA, len(req.Sequences))
	profiles := make([]stats.Profile, len(req.Sequences))
	for i, text := range req.Sequences {
		dna, err := sequence.ParseDNA(text)
		if err != nil {
			h.writeError(w, r, fmt.Errorf("sequence %d: %w", i+1, err))
			return
		}
		seqs[i] = dna
		profiles[i] = stats.ProfileOf(dna)
	}

	summary, err := stats.Summarize(seqs)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, StatsResponse{Summary: summary, Profiles: profiles})
}
