package evaluate

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/geodes/blueprint"
	"github.com/katalvlaran/geodes/geode"
)

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithWorkers bounds the number of concurrent searches. n ≤ 0 means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(e *Evaluator) {
		e.workers = n
	}
}

// WithLogger sets the logger. Panics on nil; use zap.NewNop to silence.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("evaluate: WithLogger(nil)")
	}
	return func(e *Evaluator) {
		e.logger = l
	}
}

// WithSearchOptions appends options passed to every geode.Search call.
func WithSearchOptions(opts ...geode.Option) Option {
	return func(e *Evaluator) {
		e.searchOpts = append(e.searchOpts, opts...)
	}
}

// Evaluator fans searches out over blueprints. It is safe for concurrent use.
type Evaluator struct {
	workers    int
	logger     *zap.Logger
	searchOpts []geode.Option
}

// New returns an Evaluator with GOMAXPROCS workers and a no-op logger.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{logger: zap.NewNop()}
	for _, fn := range opts {
		fn(e)
	}
	if e.workers <= 0 {
		e.workers = runtime.GOMAXPROCS(0)
	}

	return e
}

// Workers reports the concurrency limit.
func (e *Evaluator) Workers() int { return e.workers }

// Run searches every blueprint at the given horizon. Outcomes are returned in
// input order. All blueprints are validated before any search starts; the
// first invalid one is reported with its ordinal.
func (e *Evaluator) Run(ctx context.Context, bps []blueprint.Blueprint, horizon int) ([]Outcome, error) {
	if len(bps) == 0 {
		return nil, ErrNoBlueprints
	}
	if horizon < 0 {
		return nil, geode.ErrNegativeHorizon
	}
	if horizon > geode.MaxHorizon {
		return nil, fmt.Errorf("%w: %d > %d", geode.ErrHorizonTooLarge, horizon, geode.MaxHorizon)
	}
	for i := range bps {
		if err := bps[i].Validate(); err != nil {
			return nil, fmt.Errorf("blueprint #%d (id %d): %w", i+1, bps[i].ID, err)
		}
	}

	out := make([]Outcome, len(bps))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i := range bps {
		i := i // per-iteration copy; go directive is 1.21
		g.Go(func() error {
			return e.searchOne(gctx, bps[i], i+1, horizon, &out[i])
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// searchOne runs a single search and fills slot.
func (e *Evaluator) searchOne(ctx context.Context, bp blueprint.Blueprint, ordinal, horizon int, slot *Outcome) error {
	opts := make([]geode.Option, 0, len(e.searchOpts)+1)
	opts = append(opts, e.searchOpts...)
	opts = append(opts, geode.WithContext(ctx))

	res, err := geode.Search(bp, horizon, opts...)
	if err != nil {
		return fmt.Errorf("blueprint #%d (id %d): %w", ordinal, bp.ID, err)
	}

	*slot = Outcome{
		Ordinal: ordinal,
		ID:      bp.ID,
		Geodes:  res.Geodes,
		Quality: ordinal * res.Geodes,
		Nodes:   res.Nodes,
		Elapsed: res.Elapsed,
	}
	e.logger.Debug("blueprint searched",
		zap.Int("ordinal", ordinal),
		zap.Int("id", bp.ID),
		zap.Int("horizon", horizon),
		zap.String("policy", res.Policy),
		zap.Int("geodes", res.Geodes),
		zap.Int64("nodes", res.Nodes),
		zap.Int64("pruned", res.Pruned),
		zap.Duration("elapsed", res.Elapsed),
	)

	return nil
}

// QualitySum is QualitySumAt with QualityHorizon.
func (e *Evaluator) QualitySum(ctx context.Context, bps []blueprint.Blueprint) (Report, error) {
	return e.QualitySumAt(ctx, bps, QualityHorizon)
}

// QualitySumAt returns Σ ordinal·maxGeodes over all blueprints.
func (e *Evaluator) QualitySumAt(ctx context.Context, bps []blueprint.Blueprint, horizon int) (Report, error) {
	outcomes, err := e.Run(ctx, bps, horizon)
	if err != nil {
		return Report{}, err
	}

	sum, err := QualityOf(outcomes)
	if err != nil {
		return Report{}, err
	}
	e.logger.Info("quality sum",
		zap.Int("blueprints", len(outcomes)),
		zap.Int("horizon", horizon),
		zap.Int("result", sum),
	)

	return Report{Mode: "quality", Horizon: horizon, Result: sum, Outcomes: outcomes}, nil
}

// TopProduct is TopProductAt with ProductHorizon and ProductCount.
func (e *Evaluator) TopProduct(ctx context.Context, bps []blueprint.Blueprint) (Report, error) {
	return e.TopProductAt(ctx, bps, ProductHorizon, ProductCount)
}

// TopProductAt returns Π maxGeodes over the first n blueprints (all of them
// if fewer than n are given).
func (e *Evaluator) TopProductAt(ctx context.Context, bps []blueprint.Blueprint, horizon, n int) (Report, error) {
	if n <= 0 {
		return Report{}, ErrInvalidCount
	}
	if len(bps) > n {
		bps = bps[:n]
	}
	outcomes, err := e.Run(ctx, bps, horizon)
	if err != nil {
		return Report{}, err
	}

	product, err := ProductOf(outcomes)
	if err != nil {
		return Report{}, err
	}
	e.logger.Info("top product",
		zap.Int("blueprints", len(outcomes)),
		zap.Int("horizon", horizon),
		zap.Int("result", product),
	)

	return Report{Mode: "product", Horizon: horizon, Result: product, Outcomes: outcomes}, nil
}

// QualityOf returns the sum of the outcomes' quality levels, or ErrOverflow.
func QualityOf(outcomes []Outcome) (int, error) {
	sum := 0
	for _, o := range outcomes {
		if o.Quality > math.MaxInt-sum {
			return 0, fmt.Errorf("%w: quality sum at blueprint #%d", ErrOverflow, o.Ordinal)
		}
		sum += o.Quality
	}

	return sum, nil
}

// ProductOf returns the product of the outcomes' geode counts, or ErrOverflow.
// Counts are never negative.
func ProductOf(outcomes []Outcome) (int, error) {
	product := 1
	for _, o := range outcomes {
		if o.Geodes != 0 && product > math.MaxInt/o.Geodes {
			return 0, fmt.Errorf("%w: product at blueprint #%d", ErrOverflow, o.Ordinal)
		}
		product *= o.Geodes
	}

	return product, nil
}
