package frame

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/edustat/postlasso/errs"
)

func TestNewTable(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		tbl, err := NewTable([]string{"a", "b"}, [][]float64{{1, 2}, {3, 4}})
		require.NoError(t, err)
		require.Equal(t, 2, tbl.NumRows())
		require.Equal(t, []float64{3, 4}, tbl.Row(1))
	})

	t.Run("empty rows are fine", func(t *testing.T) {
		tbl, err := NewTable([]string{"a"}, nil)
		require.NoError(t, err)
		require.Equal(t, 0, tbl.NumRows())
	})

	t.Run("no columns", func(t *testing.T) {
		_, err := NewTable(nil, nil)
		require.ErrorIs(t, err, errs.ErrInvalidInput)
	})

	t.Run("duplicate name", func(t *testing.T) {
		_, err := NewTable([]string{"a", "a"}, nil)
		require.ErrorIs(t, err, errs.ErrInvalidInput)
	})

	t.Run("ragged row", func(t *testing.T) {
		_, err := NewTable([]string{"a", "b"}, [][]float64{{1}})
		require.ErrorIs(t, err, errs.ErrInvalidInput)
	})
}

func TestTable_Col(t *testing.T) {
	tbl, err := NewTable([]string{"a", "b"}, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)

	col, ok := tbl.Col("b")
	require.True(t, ok)
	require.Equal(t, []float64{2, 4, 6}, col)

	_, ok = tbl.Col("absent")
	require.False(t, ok)
}

func TestTable_Drop(t *testing.T) {
	tbl, err := NewTable(
		[]string{"Unnamed: 0", "home_books", "home_books_trunc_lower", "home_books_trunc_upper"},
		[][]float64{{0, 1.5, 1.1, 1.9}},
	)
	require.NoError(t, err)

	t.Run("bookkeeping", func(t *testing.T) {
		out := tbl.Drop(BookkeepingMarker)
		require.Equal(t, []string{"home_books", "home_books_trunc_lower", "home_books_trunc_upper"}, out.Names())
		require.Equal(t, []float64{1.5, 1.1, 1.9}, out.Row(0))
	})

	t.Run("truncation", func(t *testing.T) {
		out := tbl.Drop(TruncationMarker)
		require.Equal(t, []string{"Unnamed: 0", "home_books"}, out.Names())
		require.Equal(t, []float64{0, 1.5}, out.Row(0))
	})

	t.Run("no match returns receiver", func(t *testing.T) {
		out := tbl.Drop("nothing_matches_this")
		require.Same(t, tbl, out)
	})

	t.Run("source unchanged", func(t *testing.T) {
		tbl.Drop(TruncationMarker)
		require.Len(t, tbl.Names(), 4)
		require.Equal(t, []float64{0, 1.5, 1.1, 1.9}, tbl.Row(0))
	})
}

func TestTable_CSVRoundTrip(t *testing.T) {
	tbl, err := NewTable(
		[]string{"home_books", "child_age", "seed"},
		[][]float64{
			{1.5, -0.25, 0},
			{0, 3.75e-9, 1},
			{123456, 0.1, 2},
		},
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tbl.WriteCSV(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	require.Equal(t, "home_books,child_age,seed", lines[0])

	back, err := ReadCSV(&buf)
	require.NoError(t, err)
	require.Equal(t, tbl.Names(), back.Names())
	require.Equal(t, tbl.NumRows(), back.NumRows())
	for i := 0; i < tbl.NumRows(); i++ {
		require.Equal(t, tbl.Row(i), back.Row(i))
	}
}

func TestReadCSV(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		_, err := ReadCSV(strings.NewReader(""))
		require.ErrorIs(t, err, errs.ErrInvalidInput)
	})

	t.Run("header only", func(t *testing.T) {
		tbl, err := ReadCSV(strings.NewReader("a,b\n"))
		require.NoError(t, err)
		require.Equal(t, 0, tbl.NumRows())
	})

	t.Run("non-numeric cell", func(t *testing.T) {
		_, err := ReadCSV(strings.NewReader("a,b\n1,oops\n"))
		require.ErrorIs(t, err, errs.ErrInvalidInput)
		require.Contains(t, err.Error(), "oops")
	})

	t.Run("ragged row", func(t *testing.T) {
		_, err := ReadCSV(strings.NewReader("a,b\n1,2\n3\n"))
		require.ErrorIs(t, err, errs.ErrInvalidInput)
	})

	t.Run("whitespace tolerated", func(t *testing.T) {
		tbl, err := ReadCSV(strings.NewReader("a,b\n 1 , 2.5 \n"))
		require.NoError(t, err)
		require.Equal(t, []float64{1, 2.5}, tbl.Row(0))
	})
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{0, "0"},
		{3, "3"},
		{-2.25, "-2.25"},
		{0.5, "0.5"},
		{123456, "123456"},
		{1e6, "1e+06"},
		{3.75e-9, "3.75e-09"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			require.Equal(t, tt.expected, FormatFloat(tt.value))
		})
	}
}
