// Package handlers provides HTTP handlers for the biolib API.
//
// Every endpoint accepts and returns JSON. Input validation failures are
// reported as {"error": ..., "kind": ...} with status 400, or 422 when the
// input decoded but violates a transform's precondition.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/aria-lang/biolib-go/internal/alphabet"
	"github.com/aria-lang/biolib-go/internal/codon"
	"github.com/aria-lang/biolib-go/internal/distance"
	"github.com/aria-lang/biolib-go/internal/palindrome"
)

// Handler carries the dependencies shared by the endpoints.
type Handler struct {
	scanner *palindrome.Scanner
	logger  *zap.Logger
}

// New returns a Handler. A nil scanner falls back to the default Scanner;
// a nil logger disables logging.
func New(scanner *palindrome.Scanner, logger *zap.Logger) *Handler {
	if scanner == nil {
		scanner = palindrome.NewScanner()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{scanner: scanner, logger: logger}
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error    string `json:"error"`
	Kind     string `json:"kind,omitempty"`
	Position *int   `json:"position,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (h *Handler) decodeRequest(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Kind: "BadRequest"})
		return false
	}
	return true
}

// writeError maps engine errors to statuses.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	resp := ErrorResponse{Error: err.Error()}
	status := http.StatusBadRequest

	var symErr *alphabet.InvalidSymbolError
	switch {
	case errors.As(err, &symErr):
		resp.Kind = "InvalidSymbol"
		pos := symErr.Position
		resp.Position = &pos
	case errors.Is(err, codon.ErrIncompleteCodon):
		resp.Kind = "IncompleteCodon"
		status = http.StatusUnprocessableEntity
	case errors.Is(err, distance.ErrLengthMismatch):
		resp.Kind = "LengthMismatch"
		status = http.StatusUnprocessableEntity
	}

	h.logger.Debug("request rejected",
		zap.String("path", r.URL.Path),
		zap.String("kind", resp.Kind),
		zap.Error(err))
	writeJSON(w, status, resp)
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
