package survey

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/edustat/postlasso/frame"
)

func TestResultsPath(t *testing.T) {
	require.Equal(t, filepath.Join("out", "print_knowledge.csv"), ResultsPath("out", PrintKnowledge))
	require.Equal(t, filepath.Join("out", "oral_language.csv"), ResultsPath("out", OralLanguage))
}

func TestWriteResults_DropsBounds(t *testing.T) {
	dir := t.TempDir()

	tbl, err := frame.NewTable(
		[]string{"home_books", "child_age", "home_books_trunc_lower", "home_books_trunc_upper"},
		[][]float64{{2, 0, 1.6, 2.4}},
	)
	require.NoError(t, err)

	require.NoError(t, WriteResults(dir, PrintKnowledge, tbl))

	raw, err := os.ReadFile(ResultsPath(dir, PrintKnowledge))
	require.NoError(t, err)
	require.Equal(t, "home_books,child_age\n2,0\n", string(raw))
}

func TestWriteResults_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "results")

	tbl, err := frame.NewTable([]string{"home_books"}, [][]float64{{1.25}})
	require.NoError(t, err)

	require.NoError(t, WriteResults(dir, OralLanguage, tbl))
	require.FileExists(t, ResultsPath(dir, OralLanguage))
}

func TestReadResults_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	tbl, err := frame.NewTable(
		[]string{"home_books", "child_age", "child_age_trunc_lower", "child_age_trunc_upper"},
		[][]float64{{0, 1.5, 1.1, 1.9}},
	)
	require.NoError(t, err)
	require.NoError(t, WriteResults(dir, PrintMotivation, tbl))

	got, err := ReadResults(dir, PrintMotivation)
	require.NoError(t, err)
	require.Equal(t, []string{"home_books", "child_age"}, got.Names())
	require.Equal(t, 1, got.NumRows())
	require.Equal(t, []float64{0, 1.5}, got.Row(0))
}

func TestReadResults_DropsBookkeeping(t *testing.T) {
	dir := t.TempDir()
	path := ResultsPath(dir, LiteracyResources)

	content := "Unnamed: 0,home_books\n0,2.5\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	got, err := ReadResults(dir, LiteracyResources)
	require.NoError(t, err)
	require.Equal(t, []string{"home_books"}, got.Names())
	require.Equal(t, []float64{2.5}, got.Row(0))
}

func TestReadResults_Missing(t *testing.T) {
	_, err := ReadResults(t.TempDir(), PrintKnowledge)
	require.Error(t, err)
}
