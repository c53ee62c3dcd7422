package survey

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/edustat/postlasso/errs"
)

const extractCSV = `Unnamed: 0,home_books,tv_hours,child_age,home_books_x_child_age_interaction,print_knowledge,literacy_resources,oral_language,print_motivation
0,10,2,4,40,1.5,2.5,3.5,4.5
1,20,1,5,100,1.6,2.6,3.6,4.6
2,30,3,6,180,1.7,2.7,3.7,4.7
`

func writeExtract(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "survey.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestCSVProvider_PullData(t *testing.T) {
	provider := NewCSVProvider(writeExtract(t, extractCSV))

	X, y, err := provider.PullData(PrintKnowledge)
	require.NoError(t, err)

	// Predictors keep file order; responses and the index column are
	// stripped.
	require.Equal(t, []string{
		"home_books",
		"tv_hours",
		"child_age",
		"home_books_x_child_age_interaction",
	}, X.Names())
	require.Equal(t, 3, X.Rows())
	require.Equal(t, []float64{10, 20, 30}, X.Col(0))
	require.Equal(t, []float64{1.5, 1.6, 1.7}, []float64(y))
}

func TestCSVProvider_SchemaStableAcrossResponses(t *testing.T) {
	provider := NewCSVProvider(writeExtract(t, extractCSV))

	X1, y1, err := provider.PullData(PrintKnowledge)
	require.NoError(t, err)
	X2, y2, err := provider.PullData(OralLanguage)
	require.NoError(t, err)

	require.Equal(t, X1.Names(), X2.Names())
	require.NotEqual(t, y1, y2)
	require.Equal(t, []float64{3.5, 3.6, 3.7}, []float64(y2))
}

func TestCSVProvider_ReadsOnce(t *testing.T) {
	path := writeExtract(t, extractCSV)
	provider := NewCSVProvider(path)

	_, _, err := provider.PullData(PrintKnowledge)
	require.NoError(t, err)

	// The extract is cached after the first pull, so clobbering the file
	// must not affect later pulls.
	require.NoError(t, os.WriteFile(path, []byte("not,a\nvalid,extract\n"), 0o644))

	X, _, err := provider.PullData(PrintMotivation)
	require.NoError(t, err)
	require.Equal(t, 4, X.Cols())
}

func TestCSVProvider_MissingResponseColumn(t *testing.T) {
	content := `home_books,print_knowledge
10,1.5
20,1.6
`
	provider := NewCSVProvider(writeExtract(t, content))

	_, _, err := provider.PullData(OralLanguage)
	require.ErrorIs(t, err, errs.ErrInvalidInput)
	require.ErrorContains(t, err, "oral_language")
}

func TestCSVProvider_NoObservations(t *testing.T) {
	content := "home_books,print_knowledge,literacy_resources,oral_language,print_motivation\n"
	provider := NewCSVProvider(writeExtract(t, content))

	_, _, err := provider.PullData(PrintKnowledge)
	require.ErrorIs(t, err, errs.ErrInvalidInput)
	require.ErrorContains(t, err, "no observations")
}

func TestCSVProvider_MissingFile(t *testing.T) {
	provider := NewCSVProvider(filepath.Join(t.TempDir(), "absent.csv"))

	_, _, err := provider.PullData(PrintKnowledge)
	require.Error(t, err)
}

func TestCSVProvider_MalformedCell(t *testing.T) {
	content := `home_books,print_knowledge
ten,1.5
`
	provider := NewCSVProvider(writeExtract(t, content))

	_, _, err := provider.PullData(PrintKnowledge)
	require.ErrorIs(t, err, errs.ErrInvalidInput)
	require.ErrorContains(t, err, "ten")
}
