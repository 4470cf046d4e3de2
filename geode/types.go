package geode

import (
	"errors"
	"strings"
	"time"
)

var (
	// ErrNegativeHorizon is returned when the horizon is below zero.
	ErrNegativeHorizon = errors.New("geode: negative horizon")

	// ErrHorizonTooLarge is returned when the horizon exceeds MaxHorizon.
	ErrHorizonTooLarge = errors.New("geode: horizon too large")

	// ErrTimeLimit is returned when a positive time budget is exceeded.
	ErrTimeLimit = errors.New("geode: time limit exceeded")

	// ErrInvariantViolation is returned when invariant checks find a snapshot
	// with a negative stock or bot count.
	ErrInvariantViolation = errors.New("geode: invariant violation")

	// ErrUnknownPolicy is returned by PolicyByName for an unrecognized name.
	ErrUnknownPolicy = errors.New("geode: unknown branch policy")

	// ErrUnknownBound is returned by BoundByName for an unrecognized name.
	ErrUnknownBound = errors.New("geode: unknown bound algorithm")
)

// MaxHorizon is the largest accepted horizon. Bounds on geode counts grow
// with the square of the horizon and must stay within a 32-bit int.
const MaxHorizon = 1 << 15

// Action is a single per-minute decision.
type Action uint8

const (
	Idle          Action = iota // Idle builds nothing.
	BuildOre                    // BuildOre builds an ore bot.
	BuildClay                   // BuildClay builds a clay bot.
	BuildObsidian               // BuildObsidian builds an obsidian bot.
	BuildGeode                  // BuildGeode builds a geode bot.
)

var actionNames = [...]string{"idle", "ore", "clay", "obsidian", "geode"}

// String returns the lower-case action name.
func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}

	return "unknown"
}

// ActionSet is a bit set of actions.
type ActionSet uint8

// Actions builds a set from the given actions.
func Actions(as ...Action) ActionSet {
	var s ActionSet
	for _, a := range as {
		s |= 1 << a
	}

	return s
}

// Has reports whether a is in the set.
func (s ActionSet) Has(a Action) bool { return s&(1<<a) != 0 }

// With returns the set plus a.
func (s ActionSet) With(a Action) ActionSet { return s | 1<<a }

// Without returns the set minus a.
func (s ActionSet) Without(a Action) ActionSet { return s &^ (1 << a) }

// String lists the members, e.g. "{idle,ore}".
func (s ActionSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for a := Idle; a <= BuildGeode; a++ {
		if !s.Has(a) {
			continue
		}
		if !first {
			b.WriteByte(',')
		}
		b.WriteString(a.String())
		first = false
	}
	b.WriteByte('}')

	return b.String()
}

// DefaultCaps caps ore, clay and obsidian bots; geode bots are never capped.
var DefaultCaps = Actions(BuildOre, BuildClay, BuildObsidian)

// BoundAlgo selects the pruning bound applied at every node.
type BoundAlgo int

const (
	// OptimisticBound assumes a new geode bot every remaining minute.
	OptimisticBound BoundAlgo = iota

	// NoBound disables bound pruning (testing and auditing only).
	NoBound
)

// BoundByName maps "optimistic" / "none" (empty means optimistic) to a BoundAlgo.
func BoundByName(name string) (BoundAlgo, error) {
	switch strings.ToLower(name) {
	case "", "optimistic":
		return OptimisticBound, nil
	case "none":
		return NoBound, nil
	default:
		return 0, ErrUnknownBound
	}
}

// Result is the outcome of one search.
type Result struct {
	// Geodes is the best geode count found.
	Geodes int

	// Nodes is the number of frames taken off the work-list.
	Nodes int64

	// Pruned is the number of frames discarded by the bound.
	Pruned int64

	// Elapsed is the wall-clock time spent searching.
	Elapsed time.Duration

	// Policy is the name of the branch policy used.
	Policy string
}
