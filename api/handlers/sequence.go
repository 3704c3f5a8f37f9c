package handlers

import (
	"errors"
	"net/http"

	"github.com/aria-lang/biolib-go/internal/alphabet"
	"github.com/aria-lang/biolib-go/internal/sequence"
)

var errProteinComplement = errors.New("complement is only defined for DNA and RNA")

// SequenceRequest represents a request with a sequence.
type SequenceRequest struct {
	Sequence string `json:"sequence"`
	// Alphabet is "dna" (default), "rna" or "protein" where accepted.
	Alphabet string `json:"alphabet,omitempty"`
}

func (req SequenceRequest) kind() (alphabet.Kind, error) {
	if req.Alphabet == "" {
		return alphabet.KindDNA, nil
	}
	return alphabet.ParseKind(req.Alphabet)
}

// DecodeResponse reports a successful decode.
type DecodeResponse struct {
	Alphabet string `json:"alphabet"`
	Length   int    `json:"length"`
	Sequence string `json:"sequence"`
}

// Decode validates a sequence against its alphabet.
func (h *Handler) Decode(w http.ResponseWriter, r *http.Request) {
	var req SequenceRequest
	if !h.decodeRequest(w, r, &req) {
		return
	}

	kind, err := req.kind()
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := alphabet.Validate(kind, req.Sequence); err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, DecodeResponse{
		Alphabet: kind.String(),
		Length:   len(req.Sequence),
		Sequence: req.Sequence,
	})
}

// ComplementResponse represents the response for complement.
type ComplementResponse struct {
	Complement string `json:"complement"`
}

// Complement handles complement requests for DNA or RNA.
func (h *Handler) Complement(w http.ResponseWriter, r *http.Request) {
	h.nucleotideTransform(w, r, func(kind alphabet.Kind, text string) (any, error) {
		if kind == alphabet.KindRNA {
			s, err := sequence.ParseRNA(text)
			if err != nil {
				return nil, err
			}
			return ComplementResponse{Complement: sequence.Complement(s).String()}, nil
		}
		s, err := sequence.ParseDNA(text)
		if err != nil {
			return nil, err
		}
		return ComplementResponse{Complement: sequence.Complement(s).String()}, nil
	})
}

// ReverseComplementResponse represents the response for reverse complement.
type ReverseComplementResponse struct {
	ReverseComplement string `json:"reverse_complement"`
}

// ReverseComplement handles reverse complement requests for DNA or RNA.
func (h *Handler) ReverseComplement(w http.ResponseWriter, r *http.Request) {
	h.nucleotideTransform(w, r, func(kind alphabet.Kind, text string) (any, error) {
		if kind == alphabet.KindRNA {
			s, err := sequence.ParseRNA(text)
			if err != nil {
				return nil, err
			}
			return ReverseComplementResponse{ReverseComplement: sequence.ReverseComplement(s).String()}, nil
		}
		s, err := sequence.ParseDNA(text)
		if err != nil {
			return nil, err
		}
		return ReverseComplementResponse{ReverseComplement: sequence.ReverseComplement(s).String()}, nil
	})
}

func (h *Handler) nucleotideTransform(w http.ResponseWriter, r *http.Request, fn func(alphabet.Kind, string) (any, error)) {
	var req SequenceRequest
	if !h.decodeRequest(w, r, &req) {
		return
	}

	kind, err := req.kind()
	if err == nil && kind == alphabet.KindProtein {
		err = errProteinComplement
	}
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp, err := fn(kind, req.Sequence)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// TranscribeResponse represents the response for transcription.
type TranscribeResponse struct {
	RNA string `json:"rna"`
}

// Transcribe handles DNA to RNA transcription requests.
func (h *Handler) Transcribe(w http.ResponseWriter, r *http.Request) {
	var req SequenceRequest
	if !h.decodeRequest(w, r, &req) {
		return
	}

	dna, err := sequence.ParseDNA(req.Sequence)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, TranscribeResponse{RNA: sequence.Transcribe(dna).String()})
}

// CountsResponse maps each symbol letter to its count.
type CountsResponse struct {
	Length int            `json:"length"`
	Counts map[string]int `json:"counts"`
}

// Counts handles symbol count requests for any alphabet.
func (h *Handler) Counts(w http.ResponseWriter, r *http.Request) {
	var req SequenceRequest
	if !h.decodeRequest(w, r, &req) {
		return
	}

	kind, err := req.kind()
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var resp CountsResponse
	switch kind {
	case alphabet.KindRNA:
		resp, err = countsOf(sequence.ParseRNA, req.Sequence)
	case alphabet.KindProtein:
		resp, err = countsOf(sequence.ParseProtein, req.Sequence)
	default:
		resp, err = countsOf(sequence.ParseDNA, req.Sequence)
	}
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func countsOf[S alphabet.Symbol](parse func(string) (sequence.Sequence[S], error), text string) (CountsResponse, error) {
	s, err := parse(text)
	if err != nil {
		return CountsResponse{}, err
	}

	counts := sequence.BaseCounts(s)
	resp := CountsResponse{Length: s.Len(), Counts: make(map[string]int, len(counts))}
	for _, c := range counts {
		resp.Counts[c.Symbol.String()] = c.N
	}
	return resp, nil
}
