package geode

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/geodes/blueprint"
)

// maxStackPrealloc caps the initial work-list capacity; deeper searches grow it.
const maxStackPrealloc = 1 << 12

// frame is one pending node: an owned snapshot, the minutes left, and the
// builds its parent deferred by idling.
type frame struct {
	r        Resources
	t        int
	deferred ActionSet
}

// searchEngine holds the search data and policies for one blueprint.
type searchEngine struct {
	// Configuration / policy
	bp              blueprint.Blueprint
	policy          BranchPolicy
	caps            ActionSet
	useBound        bool
	checkInvariants bool

	// Cancellation and time budget
	ctx         context.Context
	useDeadline bool
	deadline    time.Time
	steps       int // sparse check counter

	// Work-list; the top of the stack is explored next.
	stack []frame

	// Incumbent and counters
	best   int
	nodes  int64
	pruned int64
}

func newSearchEngine(bp blueprint.Blueprint, opts SearchOptions) *searchEngine {
	e := &searchEngine{
		bp:              bp,
		policy:          opts.Policy,
		caps:            opts.Caps,
		useBound:        opts.Bound != NoBound,
		checkInvariants: opts.CheckInvariants,
		ctx:             opts.Ctx,
	}
	if opts.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(opts.TimeLimit)
	}

	return e
}

// interrupted performs a rare cancellation/deadline test (every 4096 nodes).
func (e *searchEngine) interrupted() error {
	e.steps++
	if e.steps&4095 != 0 {
		return nil
	}
	if err := e.ctx.Err(); err != nil {
		return err
	}
	if e.useDeadline && time.Now().After(e.deadline) {
		return ErrTimeLimit
	}

	return nil
}

// upperBound is the geode count reached if a geode bot were added every
// remaining minute: current stock, the current fleet's output, and
// 0+1+...+(t-1) from the new bots.
func upperBound(f frame) int {
	return f.r.Geode + f.r.GeodeBots*f.t + f.t*(f.t-1)/2
}

// run explores the tree rooted at (root, t) and leaves the optimum in e.best.
func (e *searchEngine) run(root Resources, t int) error {
	if err := e.ctx.Err(); err != nil {
		return err
	}
	e.stack = make([]frame, 0, min(5*t+1, maxStackPrealloc))
	e.stack = append(e.stack, frame{r: root, t: t})

	var (
		f        frame
		top      int
		floor    int
		legal    ActionSet
		branches ActionSet
		err      error
	)
	for len(e.stack) > 0 {
		top = len(e.stack) - 1
		f = e.stack[top]
		e.stack = e.stack[:top]
		e.nodes++

		if err = e.interrupted(); err != nil {
			return err
		}
		if e.checkInvariants && !f.r.Valid() {
			return fmt.Errorf("%w: %+v with %d minutes left", ErrInvariantViolation, f.r, f.t)
		}

		// Idling to the end is always a legal completion of this node.
		floor = f.r.Geode + f.r.GeodeBots*f.t
		if floor > e.best {
			e.best = floor
		}
		if f.t == 0 {
			continue
		}
		if e.useBound && upperBound(f) <= e.best {
			e.pruned++
			continue
		}

		legal = f.r.Legal(e.bp, e.caps)
		branches = e.policy.Branches(legal, f.deferred) & legal
		e.expand(f, legal, branches)
	}

	return nil
}

// expand pushes one child per branch. Geode is pushed last so it is popped
// first, which tightens the incumbent early.
func (e *searchEngine) expand(f frame, legal, branches ActionSet) {
	var (
		a     Action
		child Resources
		ok    bool
		next  frame
	)
	for a = Idle; a <= BuildGeode; a++ {
		if !branches.Has(a) {
			continue
		}
		child, ok = f.r.Step(e.bp, a)
		if !ok {
			continue
		}
		next = frame{r: child, t: f.t - 1}
		if a == Idle {
			next.deferred = legal.Without(Idle)
		}
		e.stack = append(e.stack, next)
	}
}
