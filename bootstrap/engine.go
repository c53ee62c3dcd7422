package bootstrap

import (
	"fmt"
	"math/rand"

	"github.com/edustat/postlasso/codec"
	"github.com/edustat/postlasso/errs"
	"github.com/edustat/postlasso/frame"
	"github.com/edustat/postlasso/internal/options"
	"github.com/edustat/postlasso/regress"
	"github.com/edustat/postlasso/survey"
)

// Engine drives the bootstrap loop: one resample, selection and refit per
// seed, with every finished record persisted before the next seed starts.
// Seeds run strictly in increasing order, one at a time.
type Engine struct {
	cfg   EngineConfig
	rng   *rand.Rand
	store *CacheStore
}

// NewEngine creates an engine over the given cache store.
func NewEngine(store *CacheStore, opts ...EngineOption) (*Engine, error) {
	if store == nil {
		return nil, fmt.Errorf("%w: nil cache store", errs.ErrInvalidInput)
	}

	cfg := defaultEngineConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	return &Engine{
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(cfg.BaseSeed)),
		store: store,
	}, nil
}

// Run ensures a coefficient record exists for every seed in [0, samples),
// resuming from whatever the on-disk cache already holds. Seeds found in
// the legacy cache are migrated verbatim, without a fit. The cache file
// is rewritten durably after every new record, so interrupting the loop
// never loses a completed seed, and a failure on one seed leaves all
// earlier seeds intact.
//
// The regularization strengths are searched once per call, on the full
// unresampled data, and only when at least one seed actually needs a fit;
// a fully cached run performs no numerical work at all.
func (e *Engine) Run(resp survey.Response, X *frame.Matrix, y frame.Vector) error {
	if X == nil || X.Cols() == 0 {
		return fmt.Errorf("%w: design matrix has no columns", errs.ErrInvalidInput)
	}
	if X.Rows() != len(y) {
		return fmt.Errorf("%w: %d design rows for %d response values", errs.ErrInvalidInput, X.Rows(), len(y))
	}

	log := e.cfg.Logger.With("response", resp.String())
	names := X.Names()

	cache, err := e.store.Load(resp, names)
	if err != nil {
		return err
	}
	legacy, err := e.store.LoadLegacy(resp, names)
	if err != nil {
		return err
	}
	if cache.Len() > 0 {
		log.Info("resuming bootstrap cache", "cached", cache.Len(), "samples", e.cfg.Samples)
	}

	var pen regress.Penalty
	havePen := false

	for b := 0; b < e.cfg.Samples; b++ {
		if cache.Has(b) {
			log.Debug("seed already cached", "seed", b)
			continue
		}

		var rec *frame.Record
		if legacyRec, ok := legacy.Get(b); ok {
			rec = legacyRec
			log.Info("seed migrated from legacy cache", "seed", b)
		} else {
			if !havePen {
				pen, err = regress.Search(X, y,
					regress.WithGridSize(e.cfg.GridSize),
					regress.WithLogger(log))
				if err != nil {
					return err
				}
				havePen = true
				log.Info("selected regularization strengths",
					"interaction", pen.Interaction, "main", pen.Main)
			}

			idx := e.resample(b, X.Rows())
			Xb, err := X.TakeRows(idx)
			if err != nil {
				return err
			}
			yb, err := y.TakeRows(idx)
			if err != nil {
				return err
			}

			fit, err := regress.SelectRefit(Xb, yb, pen)
			if err != nil {
				return fmt.Errorf("seed %d: %w", b, err)
			}

			unbound, err := frame.NewRecord(names, fit.Coefficients)
			if err != nil {
				return err
			}
			rec = unbound.WithSeed(b)
			log.Info("seed computed", "seed", b, "selected", len(fit.Selected))
		}

		if err := cache.Append(rec); err != nil {
			return err
		}
		if err := e.store.Persist(resp, cache); err != nil {
			return err
		}
	}

	if e.cfg.Archive != codec.TypeNone && cache.Len() >= e.cfg.Samples {
		stats, err := e.store.Archive(resp, e.cfg.Archive)
		if err != nil {
			return err
		}
		if stats.OriginalSize > 0 {
			log.Info("archived bootstrap cache",
				"codec", stats.Codec.String(),
				"original_bytes", stats.OriginalSize,
				"archived_bytes", stats.ArchivedSize,
				"savings_pct", stats.SpaceSavings())
		}
	}

	return nil
}

// resample reseeds the shared generator with the bootstrap seed, then
// draws n row indices uniformly with replacement. Reseeding per seed
// makes each seed's draw independent of the resume position.
func (e *Engine) resample(seed, n int) []int {
	e.rng.Seed(int64(seed))

	idx := make([]int, n)
	for i := range idx {
		idx[i] = e.rng.Intn(n)
	}

	return idx
}
