package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/aria-lang/biolib-go/internal/palindrome"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	h := New(palindrome.NewScanner(palindrome.WithWorkers(2), palindrome.WithBatchSize(5)), zaptest.NewLogger(t))
	r := chi.NewRouter()
	h.Mount(r)
	return r
}

func post(t *testing.T, router http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	newRouter(t).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestDecode(t *testing.T) {
	router := newRouter(t)

	rec := post(t, router, "/api/sequence/decode", `{"sequence": "MAMA|", "alphabet": "protein"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[DecodeResponse](t, rec)
	assert.Equal(t, "Protein", resp.Alphabet)
	assert.Equal(t, 5, resp.Length)

	rec = post(t, router, "/api/sequence/decode", `{"sequence": "ACGU"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	errResp := decodeBody[ErrorResponse](t, rec)
	assert.Equal(t, "InvalidSymbol", errResp.Kind)
	require.NotNil(t, errResp.Position)
	assert.Equal(t, 3, *errResp.Position)

	rec = post(t, router, "/api/sequence/decode", `{"sequence": "ACGT", "alphabet": "iupac"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestComplementEndpoints(t *testing.T) {
	router := newRouter(t)

	rec := post(t, router, "/api/sequence/complement", `{"sequence": "ATGC"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "TACG", decodeBody[ComplementResponse](t, rec).Complement)

	rec = post(t, router, "/api/sequence/reverse-complement", `{"sequence": "AAAACCCGGT"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ACCGGGTTTT", decodeBody[ReverseComplementResponse](t, rec).ReverseComplement)

	rec = post(t, router, "/api/sequence/reverse-complement", `{"sequence": "AAAACCCGGU", "alphabet": "rna"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ACCGGGUUUU", decodeBody[ReverseComplementResponse](t, rec).ReverseComplement)

	rec = post(t, router, "/api/sequence/complement", `{"sequence": "MAMA", "alphabet": "protein"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTranscribe(t *testing.T) {
	rec := post(t, newRouter(t), "/api/sequence/transcribe", `{"sequence": "GATGGAACTTGACTACGTAAATT"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "GAUGGAACUUGACUACGUAAAUU", decodeBody[TranscribeResponse](t, rec).RNA)
}

func TestCounts(t *testing.T) {
	rec := post(t, newRouter(t), "/api/sequence/counts",
		`{"sequence": "AGCTTTTCATTCTGACTGCAACGGGCAATATGTCTCTGTGTGGATTAAAAAAAGAGTGTCTGATAGCAGC"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody[CountsResponse](t, rec)
	assert.Equal(t, map[string]int{"A": 20, "C": 12, "G": 17, "T": 21}, resp.Counts)
	assert.Equal(t, 70, resp.Length)
}

func TestTranslate(t *testing.T) {
	router := newRouter(t)

	rec := post(t, router, "/api/protein/translate",
		`{"sequence": "AUGGCCAUGGCGCCCAGAACUGAGAUCAAUAGUACCCGUAUUAACGGGUGA"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[TranslateResponse](t, rec)
	assert.Equal(t, "MAMAPRTEINSTRING|", resp.Protein)
	assert.Equal(t, 17, resp.Length)

	rec = post(t, router, "/api/protein/translate", `{"sequence": "ATGTGA", "alphabet": "dna"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "M|", decodeBody[TranslateResponse](t, rec).Protein)

	rec = post(t, router, "/api/protein/translate", `{"sequence": "AUGU"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "IncompleteCodon", decodeBody[ErrorResponse](t, rec).Kind)
}

func TestPalindromes(t *testing.T) {
	router := newRouter(t)

	rec := post(t, router, "/api/palindromes", `{"sequence": "TCAATGCATGCGGGTCTATATGCAT"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[PalindromesResponse](t, rec)
	assert.Equal(t, 8, resp.Count)
	assert.Equal(t, []palindrome.Match{
		{Start: 4, Length: 6}, {Start: 5, Length: 4}, {Start: 6, Length: 6}, {Start: 7, Length: 4},
		{Start: 17, Length: 4}, {Start: 18, Length: 4}, {Start: 20, Length: 6}, {Start: 21, Length: 4},
	}, resp.Matches)

	rec = post(t, router, "/api/palindromes", `{"sequence": "ACG"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"matches":[]`)
}

func TestHamming(t *testing.T) {
	router := newRouter(t)

	rec := post(t, router, "/api/distance/hamming",
		`{"sequence1": "GAGCCTACTAACGGGAT", "sequence2": "CATCGTAATGACGGCCT"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 7, decodeBody[HammingResponse](t, rec).Distance)

	rec = post(t, router, "/api/distance/hamming", `{"sequence1": "GAG", "sequence2": "CATC"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "LengthMismatch", decodeBody[ErrorResponse](t, rec).Kind)
}

func TestDominant(t *testing.T) {
	router := newRouter(t)

	rec := post(t, router, "/api/mendel/dominant",
		`{"homozygous_dominant": 2, "heterozygous": 2, "homozygous_recessive": 2}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.InDelta(t, 0.78333, decodeBody[DominantResponse](t, rec).Probability, 0.00001)

	rec = post(t, router, "/api/mendel/dominant", `{"homozygous_dominant": 1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStats(t *testing.T) {
	router := newRouter(t)

	rec := post(t, router, "/api/sequence/stats", `{"sequences": ["ATAT", "GCGCGC", "ATGCATGCAT"]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[StatsResponse](t, rec)
	require.Len(t, resp.Profiles, 3)
	assert.Equal(t, 20, resp.Summary.TotalBases)
	assert.Equal(t, 10, resp.Summary.N50)
	assert.Equal(t, 1, resp.Summary.Richest)
	assert.Equal(t, 2, resp.Profiles[0].A)

	rec = post(t, router, "/api/sequence/stats", `{"sequences": ["ACGT", "ACGU"]}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	errResp := decodeBody[ErrorResponse](t, rec)
	assert.Equal(t, "InvalidSymbol", errResp.Kind)
	require.NotNil(t, errResp.Position)
	assert.Equal(t, 3, *errResp.Position)

	rec = post(t, router, "/api/sequence/stats", `{"sequences": []}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInvalidBody(t *testing.T) {
	rec := post(t, newRouter(t), "/api/sequence/transcribe", `{not json`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid request body", decodeBody[ErrorResponse](t, rec).Error)
}
