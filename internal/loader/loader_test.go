package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadText(t *testing.T) {
	path := writeFile(t, "rosalind_rna.txt", "  gatggaacttgactacgtaaatt\n\n")

	got, err := ReadText(path)
	require.NoError(t, err)
	assert.Equal(t, "GATGGAACTTGACTACGTAAATT", got)
}

func TestReadTextMissingFile(t *testing.T) {
	_, err := ReadText(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadLines(t *testing.T) {
	path := writeFile(t, "rosalind_hamm.txt", "GAGCCTACTAACGGGAT\n\ncatcgtaatgacggcct\n")

	lines, err := ReadLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"GAGCCTACTAACGGGAT", "CATCGTAATGACGGCCT"}, lines)
}

func TestParseFASTA(t *testing.T) {
	input := `>Rosalind_24 example record
TCAATGCATG
cgggtctatatgcat

>second
ACGT
`
	records, err := ParseFASTA(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Rosalind_24", records[0].ID)
	assert.Equal(t, "example record", records[0].Description)
	assert.Equal(t, "TCAATGCATGCGGGTCTATATGCAT", records[0].Text)

	assert.Equal(t, "second", records[1].ID)
	assert.Empty(t, records[1].Description)
	assert.Equal(t, "ACGT", records[1].Text)
}

func TestParseFASTAEmptyRecord(t *testing.T) {
	records, err := ParseFASTA(strings.NewReader(">empty\n>full\nAC\n"))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Empty(t, records[0].Text)
	assert.Equal(t, "AC", records[1].Text)
}

func TestParseFASTADataBeforeHeader(t *testing.T) {
	_, err := ParseFASTA(strings.NewReader("ACGT\n>late\nACGT\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}

func TestReadSequence(t *testing.T) {
	flat := writeFile(t, "flat.txt", "acgt\n")
	got, err := ReadSequence(flat)
	require.NoError(t, err)
	assert.Equal(t, "ACGT", got)

	fasta := writeFile(t, "revp.fasta", ">Rosalind_24\nTCAATGCATG\nCGGGTCTATATGCAT\n>other\nAAAA\n")
	got, err = ReadSequence(fasta)
	require.NoError(t, err)
	assert.Equal(t, "TCAATGCATGCGGGTCTATATGCAT", got)
}

func TestReadSequences(t *testing.T) {
	fasta := writeFile(t, "hamm.fasta", ">a\nGAG\n>b\nCAT\n")
	got, err := ReadSequences(fasta)
	require.NoError(t, err)
	assert.Equal(t, []string{"GAG", "CAT"}, got)

	flat := writeFile(t, "hamm.txt", "GAG\nCAT\n")
	got, err = ReadSequences(flat)
	require.NoError(t, err)
	assert.Equal(t, []string{"GAG", "CAT"}, got)
}
