package bootstrap

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/edustat/postlasso/codec"
	"github.com/edustat/postlasso/errs"
	"github.com/edustat/postlasso/frame"
	"github.com/edustat/postlasso/internal/hash"
	"github.com/edustat/postlasso/survey"
)

// CacheStore owns the on-disk layout of the coefficient caches: the live
// cache under <results>/bootstrap/, the read-only legacy cache under
// <results>/old/, and optional compressed archives of either.
//
// Persistence is write-to-temp plus atomic rename, so a process killed
// mid-write leaves the previous cache intact and no partial rows are ever
// observable.
type CacheStore struct {
	resultsDir string
}

// archiveSniffOrder fixes the lookup order for archived cache files.
var archiveSniffOrder = []codec.Type{codec.TypeZstd, codec.TypeLZ4, codec.TypeS2, codec.TypeGzip}

// NewCacheStore creates a store rooted at the results directory.
func NewCacheStore(resultsDir string) *CacheStore {
	return &CacheStore{resultsDir: resultsDir}
}

// CachePath returns the live cache file for the response, in its
// uncompressed form.
func (s *CacheStore) CachePath(resp survey.Response) string {
	return filepath.Join(s.resultsDir, "bootstrap", resp.String()+"_bootstrap_coeffs.csv")
}

// LegacyPath returns the read-only legacy cache file for the response.
func (s *CacheStore) LegacyPath(resp survey.Response) string {
	return filepath.Join(s.resultsDir, "old", resp.String()+"_bootstrap_coeffs.csv")
}

// Load reads the live cache, or returns an empty one when none exists.
// names is the live predictor schema; a stored cache that disagrees fails
// with ErrCacheCorruption.
func (s *CacheStore) Load(resp survey.Response, names []string) (*Cache, error) {
	return s.load(s.CachePath(resp), names)
}

// LoadLegacy reads the legacy cache, or returns an empty one when none
// exists. The legacy file is never written.
func (s *CacheStore) LoadLegacy(resp survey.Response, names []string) (*Cache, error) {
	return s.load(s.LegacyPath(resp), names)
}

// Persist durably replaces the live cache file with the cache's current
// contents.
func (s *CacheStore) Persist(resp survey.Response, c *Cache) error {
	path := s.CachePath(resp)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	tbl, err := c.table()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := tbl.WriteCSV(&buf); err != nil {
		return err
	}

	return writeFileAtomic(path, buf.Bytes())
}

// Archive compresses the live cache in place: the archive lands next to
// the plain file with the codec's extension, then the plain file is
// removed. An existing archive is overwritten. TypeNone is a no-op.
func (s *CacheStore) Archive(resp survey.Response, t codec.Type) (codec.ArchiveStats, error) {
	stats := codec.ArchiveStats{Codec: t}
	if t == codec.TypeNone {
		return stats, nil
	}

	path := s.CachePath(resp)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		// Nothing to compress when the cache already lives in an archive.
		if _, statErr := os.Stat(path + t.Ext()); statErr == nil {
			return stats, nil
		}

		return stats, fmt.Errorf("archive cache: %w", err)
	}
	if err != nil {
		return stats, fmt.Errorf("archive cache: %w", err)
	}

	c, err := codec.Get(t)
	if err != nil {
		return stats, err
	}
	packed, err := c.Compress(data)
	if err != nil {
		return stats, fmt.Errorf("archive cache: %w", err)
	}

	stats.OriginalSize = int64(len(data))
	stats.ArchivedSize = int64(len(packed))

	if err := writeFileAtomic(path+t.Ext(), packed); err != nil {
		return stats, err
	}
	if err := os.Remove(path); err != nil {
		return stats, fmt.Errorf("remove archived original: %w", err)
	}

	return stats, nil
}

func (s *CacheStore) load(path string, names []string) (*Cache, error) {
	data, found, err := readMaybeArchived(path)
	if err != nil {
		return nil, err
	}

	cache := NewCache(names)
	if !found {
		return cache, nil
	}

	tbl, err := frame.ReadCSV(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errs.ErrCacheCorruption, path, err)
	}
	tbl = tbl.Drop(frame.BookkeepingMarker)

	cols := tbl.Names()
	seedAt := slices.Index(cols, SeedColumn)
	if seedAt < 0 {
		return nil, fmt.Errorf("%w: %s: missing %q column", errs.ErrCacheCorruption, path, SeedColumn)
	}

	stored := slices.Delete(slices.Clone(cols), seedAt, seedAt+1)
	if storedFP, liveFP := hash.Schema(stored), hash.Schema(names); storedFP != liveFP {
		return nil, fmt.Errorf("%w: %s: schema fingerprint 0x%016x does not match live predictors 0x%016x",
			errs.ErrCacheCorruption, path, storedFP, liveFP)
	}

	for i := 0; i < tbl.NumRows(); i++ {
		row := tbl.Row(i)

		seedVal := row[seedAt]
		seed := int(seedVal)
		if float64(seed) != seedVal || seed < 0 {
			return nil, fmt.Errorf("%w: %s: row %d has invalid seed %v", errs.ErrCacheCorruption, path, i, seedVal)
		}
		if cache.Has(seed) {
			return nil, fmt.Errorf("%w: %s: duplicate seed %d", errs.ErrCacheCorruption, path, seed)
		}

		values := make([]float64, 0, len(row)-1)
		values = append(values, row[:seedAt]...)
		values = append(values, row[seedAt+1:]...)

		rec, err := frame.NewRecord(names, values)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: row %d: %v", errs.ErrCacheCorruption, path, i, err)
		}
		if err := cache.Append(rec.WithSeed(seed)); err != nil {
			return nil, fmt.Errorf("%w: %s: row %d: %v", errs.ErrCacheCorruption, path, i, err)
		}
	}

	return cache, nil
}

// readMaybeArchived reads path, or failing that an archived sibling
// (path plus a codec extension), decompressing by extension. The plain
// file wins when both exist.
func readMaybeArchived(path string) ([]byte, bool, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		return data, true, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, false, err
	}

	for _, t := range archiveSniffOrder {
		packed, err := os.ReadFile(path + t.Ext())
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, false, err
		}

		c, err := codec.Get(t)
		if err != nil {
			return nil, false, err
		}
		raw, err := c.Decompress(packed)
		if err != nil {
			return nil, false, fmt.Errorf("%w: %s: %v", errs.ErrCacheCorruption, path+t.Ext(), err)
		}

		return raw, true, nil
	}

	return nil, false, nil
}

// writeFileAtomic writes data to a temp file in the target directory,
// fsyncs it, and renames it over path.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}

	return nil
}
