package geode

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/geodes/blueprint"
)

// Search returns the best geode count reachable from Initial() within
// horizon minutes under the given options.
//
// Errors: see the package documentation.
func Search(bp blueprint.Blueprint, horizon int, opts ...Option) (Result, error) {
	so := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&so)
	}

	return SearchFrom(bp, Initial(), horizon, so)
}

// SearchFrom runs the search from an arbitrary snapshot with explicit options.
// A nil Policy or Ctx falls back to the defaults.
func SearchFrom(bp blueprint.Blueprint, root Resources, horizon int, so SearchOptions) (Result, error) {
	if horizon < 0 {
		return Result{}, ErrNegativeHorizon
	}
	if horizon > MaxHorizon {
		return Result{}, fmt.Errorf("%w: %d > %d", ErrHorizonTooLarge, horizon, MaxHorizon)
	}
	if err := bp.Validate(); err != nil {
		return Result{}, err
	}
	if !root.Valid() {
		return Result{}, ErrInvariantViolation
	}
	if so.Policy == nil {
		so.Policy = PriorityOrder{}
	}
	if so.Ctx == nil {
		so.Ctx = context.Background()
	}
	so.Caps &= DefaultCaps

	start := time.Now()
	e := newSearchEngine(bp, so)
	if err := e.run(root, horizon); err != nil {
		return Result{}, err
	}

	return Result{
		Geodes:  e.best,
		Nodes:   e.nodes,
		Pruned:  e.pruned,
		Elapsed: time.Since(start),
		Policy:  so.Policy.Name(),
	}, nil
}

// MaxGeodes runs Search with default options and returns only the count.
func MaxGeodes(bp blueprint.Blueprint, horizon int) (int, error) {
	res, err := Search(bp, horizon)
	if err != nil {
		return 0, err
	}

	return res.Geodes, nil
}
