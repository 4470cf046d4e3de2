package geode

import "strings"

// BranchPolicy chooses which legal actions a node expands.
//
// legal always contains Idle plus every build the snapshot can afford under
// the active caps. deferred holds the builds the parent could afford but
// passed on by idling; policies may use it to skip dominated branches.
// The engine intersects the returned set with legal, so a policy can never
// cause an unaffordable build.
type BranchPolicy interface {
	Name() string
	Branches(legal, deferred ActionSet) ActionSet
}

// PriorityOrder expands at most one accumulator build, the first legal one
// of geode, obsidian and clay, alongside an ore-bot build (when legal) and
// idling.
//
// It assumes that when the best accumulator bot can be built, building it
// dominates building a different accumulator bot at the same node. That is
// not proven; use ExhaustiveBranch to audit results.
type PriorityOrder struct{}

// Name implements BranchPolicy.
func (PriorityOrder) Name() string { return "priority" }

// Branches implements BranchPolicy.
func (PriorityOrder) Branches(legal, _ ActionSet) ActionSet {
	out := Actions(Idle)
	switch {
	case legal.Has(BuildGeode):
		out = out.With(BuildGeode)
	case legal.Has(BuildObsidian):
		out = out.With(BuildObsidian)
	case legal.Has(BuildClay):
		out = out.With(BuildClay)
	}
	if legal.Has(BuildOre) {
		out = out.With(BuildOre)
	}

	return out
}

// ExhaustiveBranch expands every legal build and idling. A build that the
// parent could already afford and deferred by idling is not tried again,
// since building it one minute earlier is never worse. The result is the
// exact optimum under the active caps.
type ExhaustiveBranch struct{}

// Name implements BranchPolicy.
func (ExhaustiveBranch) Name() string { return "exhaustive" }

// Branches implements BranchPolicy.
func (ExhaustiveBranch) Branches(legal, deferred ActionSet) ActionSet {
	return (legal &^ deferred).With(Idle)
}

// PolicyByName maps "priority" / "exhaustive" (empty means priority) to a policy.
func PolicyByName(name string) (BranchPolicy, error) {
	switch strings.ToLower(name) {
	case "", "priority":
		return PriorityOrder{}, nil
	case "exhaustive":
		return ExhaustiveBranch{}, nil
	default:
		return nil, ErrUnknownPolicy
	}
}
