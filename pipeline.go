package postlasso

import (
	"fmt"
	"log/slog"

	"github.com/edustat/postlasso/bootstrap"
	"github.com/edustat/postlasso/errs"
	"github.com/edustat/postlasso/frame"
	"github.com/edustat/postlasso/internal/options"
	"github.com/edustat/postlasso/regress"
	"github.com/edustat/postlasso/survey"
)

// Pipeline drives the per-response workflow: optional full-data refit
// with results persistence, results readback otherwise, then optionally
// the bootstrap cache engine. Responses are processed sequentially; a
// failure on one response stops the run without touching the persisted
// state of the others.
type Pipeline struct {
	cfg      Config
	provider survey.DataProvider
	fitter   regress.SelectiveFitter
	store    *bootstrap.CacheStore
	engine   *bootstrap.Engine
	logger   *slog.Logger
}

// PipelineOption is a functional option for NewPipeline.
type PipelineOption = options.Option[*Pipeline]

// WithDataProvider replaces the CSV-backed data provider.
func WithDataProvider(p survey.DataProvider) PipelineOption {
	return options.New(func(pl *Pipeline) error {
		if p == nil {
			return fmt.Errorf("%w: nil data provider", errs.ErrInvalidInput)
		}
		pl.provider = p

		return nil
	})
}

// WithSelectiveFitter replaces the built-in refit fitter.
func WithSelectiveFitter(f regress.SelectiveFitter) PipelineOption {
	return options.New(func(pl *Pipeline) error {
		if f == nil {
			return fmt.Errorf("%w: nil selective fitter", errs.ErrInvalidInput)
		}
		pl.fitter = f

		return nil
	})
}

// WithLogger routes the pipeline's logging.
func WithLogger(logger *slog.Logger) PipelineOption {
	return options.New(func(pl *Pipeline) error {
		if logger == nil {
			return fmt.Errorf("%w: nil logger", errs.ErrInvalidInput)
		}
		pl.logger = logger

		return nil
	})
}

// NewPipeline validates cfg and assembles the pipeline with default
// collaborators for anything the options leave unset.
func NewPipeline(cfg Config, opts ...PipelineOption) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p := &Pipeline{cfg: cfg, logger: slog.Default()}
	if err := options.Apply(p, opts...); err != nil {
		return nil, err
	}

	if p.provider == nil {
		p.provider = survey.NewCSVProvider(cfg.DataPath)
	}
	if p.fitter == nil {
		p.fitter = regress.NewRefitFitter()
	}
	p.store = bootstrap.NewCacheStore(cfg.ResultsDir)

	engine, err := bootstrap.NewEngine(p.store,
		bootstrap.WithSamples(cfg.Samples),
		bootstrap.WithBaseSeed(cfg.BaseSeed),
		bootstrap.WithGridSize(cfg.GridSize),
		bootstrap.WithArchive(cfg.archiveType()),
		bootstrap.WithLogger(p.logger))
	if err != nil {
		return nil, err
	}
	p.engine = engine

	return p, nil
}

// Run processes every response the configured selector resolves to.
func (p *Pipeline) Run() error {
	responses, err := survey.Resolve(p.cfg.Response)
	if err != nil {
		return err
	}

	for _, resp := range responses {
		if err := p.runResponse(resp); err != nil {
			return fmt.Errorf("response %s: %w", resp, err)
		}
	}

	return nil
}

func (p *Pipeline) runResponse(resp survey.Response) error {
	log := p.logger.With("response", resp.String())

	X, y, err := p.provider.PullData(resp)
	if err != nil {
		return err
	}
	log.Info("pulled data", "rows", X.Rows(), "predictors", X.Cols())

	if p.cfg.Refit {
		if err := p.refit(resp, X, y, log); err != nil {
			return err
		}
	} else {
		if err := p.readBack(resp, log); err != nil {
			return err
		}
	}

	if p.cfg.Bootstrap {
		if err := p.engine.Run(resp, X, y); err != nil {
			return err
		}
	}

	return nil
}

// refit recomputes the full-data coefficient table and persists it with
// the truncation diagnostics stripped.
func (p *Pipeline) refit(resp survey.Response, X *frame.Matrix, y frame.Vector, log *slog.Logger) error {
	pen, err := regress.Search(X, y,
		regress.WithGridSize(p.cfg.GridSize),
		regress.WithLogger(log))
	if err != nil {
		return err
	}
	log.Info("selected regularization strengths",
		"interaction", pen.Interaction, "main", pen.Main)

	tbl, err := p.fitter.FitTable(X, y, pen)
	if err != nil {
		return err
	}

	if err := survey.WriteResults(p.cfg.ResultsDir, resp, tbl); err != nil {
		return err
	}
	log.Info("wrote results table", "path", survey.ResultsPath(p.cfg.ResultsDir, resp))

	return nil
}

// readBack loads the previously materialized results table and logs a
// digest of it.
func (p *Pipeline) readBack(resp survey.Response, log *slog.Logger) error {
	tbl, err := survey.ReadResults(p.cfg.ResultsDir, resp)
	if err != nil {
		return fmt.Errorf("no materialized results (rerun with refit enabled): %w", err)
	}

	nonzero := 0
	if tbl.NumRows() > 0 {
		for _, v := range tbl.Row(0) {
			if v != 0 {
				nonzero++
			}
		}
	}
	log.Info("loaded results table",
		"path", survey.ResultsPath(p.cfg.ResultsDir, resp),
		"predictors", len(tbl.Names()),
		"nonzero", nonzero)

	return nil
}
