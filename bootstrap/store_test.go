package bootstrap

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/edustat/postlasso/codec"
	"github.com/edustat/postlasso/errs"
	"github.com/edustat/postlasso/survey"
)

func seededStore(t *testing.T) (*CacheStore, *Cache) {
	t.Helper()

	store := NewCacheStore(t.TempDir())

	cache := NewCache(cacheNames)
	require.NoError(t, cache.Append(boundRecord(t, 0, 1.5, -0.25, 0)))
	require.NoError(t, cache.Append(boundRecord(t, 1, 2.5, 0.75, 3.75e-9)))

	return store, cache
}

func writeCachePath(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestCacheStore_Paths(t *testing.T) {
	store := NewCacheStore("results")

	require.Equal(t,
		filepath.Join("results", "bootstrap", "print_knowledge_bootstrap_coeffs.csv"),
		store.CachePath(survey.PrintKnowledge))
	require.Equal(t,
		filepath.Join("results", "old", "oral_language_bootstrap_coeffs.csv"),
		store.LegacyPath(survey.OralLanguage))
}

func TestCacheStore_LoadMissing(t *testing.T) {
	store := NewCacheStore(t.TempDir())

	cache, err := store.Load(survey.PrintKnowledge, cacheNames)
	require.NoError(t, err)
	require.Equal(t, 0, cache.Len())
	require.Equal(t, cacheNames, cache.Names())
}

func TestCacheStore_PersistLoadRoundTrip(t *testing.T) {
	store, cache := seededStore(t)

	require.NoError(t, store.Persist(survey.PrintKnowledge, cache))

	got, err := store.Load(survey.PrintKnowledge, cacheNames)
	require.NoError(t, err)
	require.Equal(t, 2, got.Len())

	rec0, ok := got.Get(0)
	require.True(t, ok)
	require.Equal(t, []float64{1.5, -0.25, 0}, rec0.Values())

	rec1, ok := got.Get(1)
	require.True(t, ok)
	require.Equal(t, []float64{2.5, 0.75, 3.75e-9}, rec1.Values())

	// Insertion order survives the round trip.
	require.Equal(t, 0, got.Records()[0].Seed())
	require.Equal(t, 1, got.Records()[1].Seed())
}

func TestCacheStore_PersistLeavesNoTempFiles(t *testing.T) {
	store, cache := seededStore(t)

	require.NoError(t, store.Persist(survey.PrintKnowledge, cache))
	require.NoError(t, store.Persist(survey.PrintKnowledge, cache))

	entries, err := os.ReadDir(filepath.Dir(store.CachePath(survey.PrintKnowledge)))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.False(t, strings.Contains(entries[0].Name(), ".tmp-"))
}

func TestCacheStore_LoadLegacy(t *testing.T) {
	store := NewCacheStore(t.TempDir())

	content := "home_books,child_age,home_books_x_child_age_interaction,seed\n99.5,-3.25,7,1\n"
	writeCachePath(t, store.LegacyPath(survey.PrintKnowledge), content)

	legacy, err := store.LoadLegacy(survey.PrintKnowledge, cacheNames)
	require.NoError(t, err)
	require.Equal(t, 1, legacy.Len())

	rec, ok := legacy.Get(1)
	require.True(t, ok)
	require.Equal(t, []float64{99.5, -3.25, 7}, rec.Values())
}

func TestCacheStore_LoadSeedColumnAnywhere(t *testing.T) {
	store := NewCacheStore(t.TempDir())

	// The seed column need not be last.
	content := "seed,home_books,child_age,home_books_x_child_age_interaction\n3,1.5,2.5,3.5\n"
	writeCachePath(t, store.CachePath(survey.PrintKnowledge), content)

	cache, err := store.Load(survey.PrintKnowledge, cacheNames)
	require.NoError(t, err)

	rec, ok := cache.Get(3)
	require.True(t, ok)
	require.Equal(t, []float64{1.5, 2.5, 3.5}, rec.Values())
}

func TestCacheStore_LoadCorruption(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			"renamed predictor",
			"home_books,tv_hours,home_books_x_child_age_interaction,seed\n1,2,3,0\n",
		},
		{
			"reordered predictors",
			"child_age,home_books,home_books_x_child_age_interaction,seed\n1,2,3,0\n",
		},
		{
			"missing seed column",
			"home_books,child_age,home_books_x_child_age_interaction\n1,2,3\n",
		},
		{
			"duplicate seed",
			"home_books,child_age,home_books_x_child_age_interaction,seed\n1,2,3,1\n4,5,6,1\n",
		},
		{
			"fractional seed",
			"home_books,child_age,home_books_x_child_age_interaction,seed\n1,2,3,0.5\n",
		},
		{
			"negative seed",
			"home_books,child_age,home_books_x_child_age_interaction,seed\n1,2,3,-1\n",
		},
		{
			"non-numeric cell",
			"home_books,child_age,home_books_x_child_age_interaction,seed\noops,2,3,0\n",
		},
		{
			"ragged row",
			"home_books,child_age,home_books_x_child_age_interaction,seed\n1,2,3\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewCacheStore(t.TempDir())
			writeCachePath(t, store.CachePath(survey.PrintKnowledge), tt.content)

			_, err := store.Load(survey.PrintKnowledge, cacheNames)
			require.ErrorIs(t, err, errs.ErrCacheCorruption)
		})
	}
}

func TestCacheStore_LoadGarbageArchive(t *testing.T) {
	store := NewCacheStore(t.TempDir())

	path := store.CachePath(survey.PrintKnowledge) + codec.TypeZstd.Ext()
	writeCachePath(t, path, "definitely not a zstd frame")

	_, err := store.Load(survey.PrintKnowledge, cacheNames)
	require.ErrorIs(t, err, errs.ErrCacheCorruption)
}

func TestCacheStore_PlainWinsOverArchive(t *testing.T) {
	store, cache := seededStore(t)
	require.NoError(t, store.Persist(survey.PrintKnowledge, cache))

	// A stale or even corrupt archive next to the plain file is ignored.
	path := store.CachePath(survey.PrintKnowledge) + codec.TypeZstd.Ext()
	writeCachePath(t, path, "stale garbage")

	got, err := store.Load(survey.PrintKnowledge, cacheNames)
	require.NoError(t, err)
	require.Equal(t, 2, got.Len())
}

func TestCacheStore_ArchiveRoundTrip(t *testing.T) {
	store, cache := seededStore(t)
	require.NoError(t, store.Persist(survey.PrintKnowledge, cache))

	stats, err := store.Archive(survey.PrintKnowledge, codec.TypeS2)
	require.NoError(t, err)
	require.Positive(t, stats.OriginalSize)
	require.Positive(t, stats.ArchivedSize)
	require.Equal(t, codec.TypeS2, stats.Codec)

	plain := store.CachePath(survey.PrintKnowledge)
	require.NoFileExists(t, plain)
	require.FileExists(t, plain+codec.TypeS2.Ext())

	got, err := store.Load(survey.PrintKnowledge, cacheNames)
	require.NoError(t, err)
	require.Equal(t, 2, got.Len())

	rec, ok := got.Get(1)
	require.True(t, ok)
	require.Equal(t, []float64{2.5, 0.75, 3.75e-9}, rec.Values())
}

func TestCacheStore_ArchiveTypeNoneIsNoOp(t *testing.T) {
	store, cache := seededStore(t)
	require.NoError(t, store.Persist(survey.PrintKnowledge, cache))

	stats, err := store.Archive(survey.PrintKnowledge, codec.TypeNone)
	require.NoError(t, err)
	require.Zero(t, stats.OriginalSize)
	require.FileExists(t, store.CachePath(survey.PrintKnowledge))
}

func TestCacheStore_ArchiveAlreadyArchived(t *testing.T) {
	store, cache := seededStore(t)
	require.NoError(t, store.Persist(survey.PrintKnowledge, cache))

	_, err := store.Archive(survey.PrintKnowledge, codec.TypeGzip)
	require.NoError(t, err)

	// A second call finds only the archive and leaves it alone.
	stats, err := store.Archive(survey.PrintKnowledge, codec.TypeGzip)
	require.NoError(t, err)
	require.Zero(t, stats.OriginalSize)
	require.FileExists(t, store.CachePath(survey.PrintKnowledge)+codec.TypeGzip.Ext())
}

func TestCacheStore_ArchiveMissingCache(t *testing.T) {
	store := NewCacheStore(t.TempDir())

	_, err := store.Archive(survey.PrintKnowledge, codec.TypeS2)
	require.Error(t, err)
}
