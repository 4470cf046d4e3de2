package geode

import (
	"context"
	"time"
)

// Option configures a Search call.
type Option func(*SearchOptions)

// SearchOptions holds the knobs of a single search.
type SearchOptions struct {
	// Ctx cancels the search; checked every 4096 nodes.
	Ctx context.Context

	// Policy picks the branches expanded at each node.
	Policy BranchPolicy

	// Bound selects the pruning bound.
	Bound BoundAlgo

	// Caps lists the bot kinds whose count is capped (subset of
	// BuildOre, BuildClay, BuildObsidian).
	Caps ActionSet

	// TimeLimit is a soft wall-clock budget; zero means none.
	TimeLimit time.Duration

	// CheckInvariants validates every snapshot taken off the work-list.
	CheckInvariants bool
}

// DefaultOptions returns:
//   - Background context
//   - PriorityOrder policy
//   - OptimisticBound
//   - DefaultCaps (ore, clay, obsidian)
//   - no time limit, no invariant checks
func DefaultOptions() SearchOptions {
	return SearchOptions{
		Ctx:             context.Background(),
		Policy:          PriorityOrder{},
		Bound:           OptimisticBound,
		Caps:            DefaultCaps,
		TimeLimit:       0,
		CheckInvariants: false,
	}
}

// WithContext sets the cancellation context. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *SearchOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithPolicy sets the branch policy. Panics on nil.
func WithPolicy(p BranchPolicy) Option {
	if p == nil {
		panic("geode: WithPolicy(nil)")
	}
	return func(o *SearchOptions) {
		o.Policy = p
	}
}

// WithBound sets the bound algorithm.
func WithBound(b BoundAlgo) Option {
	return func(o *SearchOptions) {
		o.Bound = b
	}
}

// WithCaps replaces the set of capped bot kinds. Idle and BuildGeode are
// ignored; geode bots are never capped.
func WithCaps(caps ActionSet) Option {
	return func(o *SearchOptions) {
		o.Caps = caps & DefaultCaps
	}
}

// WithTimeLimit sets a soft wall-clock budget. Panics on a negative duration.
func WithTimeLimit(d time.Duration) Option {
	if d < 0 {
		panic("geode: WithTimeLimit(d<0)")
	}
	return func(o *SearchOptions) {
		o.TimeLimit = d
	}
}

// WithInvariantChecks enables per-node snapshot validation.
func WithInvariantChecks() Option {
	return func(o *SearchOptions) {
		o.CheckInvariants = true
	}
}
