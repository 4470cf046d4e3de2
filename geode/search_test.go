// Package geode_test validates the geode search.
// Focus:
//  1. Known optima for the two reference blueprints.
//  2. Properties: zero horizon, monotonicity, idempotence.
//  3. Safety of caps and of the optimistic bound.
//  4. PriorityOrder never beats ExhaustiveBranch.
//  5. Sentinels for bad input, oversized horizons, cancellation and time budgets.
package geode_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geodes/blueprint"
	"github.com/katalvlaran/geodes/geode"
)

func TestSearch_ReferenceBlueprints(t *testing.T) {
	cases := []struct {
		name string
		bp   blueprint.Blueprint
		want int
	}{
		{"A", scenarioA(t), 9},
		{"B", scenarioB(t), 12},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := geode.MaxGeodes(tc.bp, horizonQuality)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)

			res, err := geode.Search(tc.bp, horizonQuality, geode.WithPolicy(geode.ExhaustiveBranch{}))
			require.NoError(t, err)
			require.Equal(t, tc.want, res.Geodes)
			require.Equal(t, "exhaustive", res.Policy)
			require.Positive(t, res.Nodes)
		})
	}
}

func TestSearch_ExhaustiveLongHorizon(t *testing.T) {
	if testing.Short() {
		t.Skip("long horizon skipped in -short mode")
	}
	cases := []struct {
		bp   blueprint.Blueprint
		want int
	}{
		{scenarioA(t), 56},
		{scenarioB(t), 62},
	}
	for _, tc := range cases {
		res, err := geode.Search(tc.bp, horizonProduct, geode.WithPolicy(geode.ExhaustiveBranch{}))
		require.NoError(t, err)
		require.Equal(t, tc.want, res.Geodes, "blueprint %d", tc.bp.ID)

		heur, err := geode.Search(tc.bp, horizonProduct)
		require.NoError(t, err)
		require.LessOrEqual(t, heur.Geodes, res.Geodes, "blueprint %d", tc.bp.ID)
	}

	// PriorityOrder's accumulator rule misses the optimum of A at 32 minutes.
	got, err := geode.MaxGeodes(scenarioA(t), horizonProduct)
	require.NoError(t, err)
	require.Equal(t, 54, got)
}

func TestSearch_ZeroHorizon(t *testing.T) {
	for _, bp := range []blueprint.Blueprint{scenarioA(t), scenarioB(t), cheap(t)} {
		got, err := geode.MaxGeodes(bp, 0)
		require.NoError(t, err)
		require.Zero(t, got)
	}
}

func TestSearch_MonotoneInHorizon(t *testing.T) {
	for _, bp := range []blueprint.Blueprint{scenarioA(t), scenarioB(t), cheap(t)} {
		prev := 0
		for h := 0; h <= horizonQuality; h++ {
			got, err := geode.MaxGeodes(bp, h)
			require.NoError(t, err)
			require.GreaterOrEqual(t, got, prev, "blueprint %d horizon %d", bp.ID, h)
			prev = got
		}
	}
}

func TestSearch_Idempotent(t *testing.T) {
	bp := scenarioB(t)
	first, err := geode.Search(bp, 20)
	require.NoError(t, err)
	second, err := geode.Search(bp, 20)
	require.NoError(t, err)
	require.Equal(t, first.Geodes, second.Geodes)
	require.Equal(t, first.Nodes, second.Nodes, "search order is deterministic")
}

func TestSearch_CapsAreSafe(t *testing.T) {
	cases := []struct {
		bp  blueprint.Blueprint
		max int
	}{
		{scenarioA(t), horizonSmall},
		{scenarioB(t), horizonSmall},
		{cheap(t), 8},
	}
	for _, tc := range cases {
		for h := 0; h <= tc.max; h++ {
			capped, err := geode.Search(tc.bp, h, geode.WithPolicy(geode.ExhaustiveBranch{}))
			require.NoError(t, err)
			uncapped, err := geode.Search(tc.bp, h,
				geode.WithPolicy(geode.ExhaustiveBranch{}),
				geode.WithCaps(0))
			require.NoError(t, err)
			require.Equal(t, uncapped.Geodes, capped.Geodes, "blueprint %d horizon %d", tc.bp.ID, h)

			// Lifting a single cap never lowers the optimum either.
			partial, err := geode.Search(tc.bp, h,
				geode.WithPolicy(geode.ExhaustiveBranch{}),
				geode.WithCaps(geode.Actions(geode.BuildOre, geode.BuildObsidian)))
			require.NoError(t, err)
			require.Equal(t, capped.Geodes, partial.Geodes, "blueprint %d horizon %d", tc.bp.ID, h)
		}
	}
}

func TestSearch_BoundDoesNotChangeOptimum(t *testing.T) {
	for _, bp := range []blueprint.Blueprint{scenarioA(t), scenarioB(t), cheap(t)} {
		for h := 0; h <= 12; h++ {
			bounded, err := geode.Search(bp, h)
			require.NoError(t, err)
			plain, err := geode.Search(bp, h, geode.WithBound(geode.NoBound))
			require.NoError(t, err)
			require.Equal(t, plain.Geodes, bounded.Geodes, "blueprint %d horizon %d", bp.ID, h)
			require.LessOrEqual(t, bounded.Nodes, plain.Nodes)
		}
	}
}

func TestSearch_PriorityNeverBeatsExhaustive(t *testing.T) {
	for _, bp := range []blueprint.Blueprint{scenarioA(t), scenarioB(t), cheap(t)} {
		for _, h := range []int{5, 10, 15, 20} {
			heur, err := geode.Search(bp, h)
			require.NoError(t, err)
			exact, err := geode.Search(bp, h, geode.WithPolicy(geode.ExhaustiveBranch{}))
			require.NoError(t, err)
			require.LessOrEqual(t, heur.Geodes, exact.Geodes, "blueprint %d horizon %d", bp.ID, h)
		}
	}
}

func TestSearch_CheapBlueprint(t *testing.T) {
	bp := cheap(t)
	// Ore arrives at the end of minute 1, so the earliest chain is clay in
	// minute 2, obsidian in minute 4 (clay is stocked by then), geode bot in
	// minute 6, and the first geode at the end of minute 7.
	for h, want := range map[int]int{1: 0, 4: 0, 6: 0, 7: 1} {
		res, err := geode.Search(bp, h, geode.WithPolicy(geode.ExhaustiveBranch{}))
		require.NoError(t, err)
		require.Equal(t, want, res.Geodes, "horizon %d", h)
	}
}

func TestSearch_FreeBlueprintLongHorizon(t *testing.T) {
	for _, h := range []int{1, 2, 100, 3000} {
		res, err := geode.Search(free(t), h, geode.WithPolicy(geode.ExhaustiveBranch{}))
		require.NoError(t, err)
		require.Equal(t, h*(h-1)/2, res.Geodes, "horizon %d", h)
	}
}

func TestSearch_InvariantChecks(t *testing.T) {
	res, err := geode.Search(scenarioA(t), 16, geode.WithInvariantChecks())
	require.NoError(t, err)
	require.GreaterOrEqual(t, res.Geodes, 0)

	_, err = geode.SearchFrom(scenarioA(t), geode.Resources{Ore: -1, OreBots: 1}, 5, geode.DefaultOptions())
	require.ErrorIs(t, err, geode.ErrInvariantViolation)
}

func TestSearch_Errors(t *testing.T) {
	_, err := geode.Search(scenarioA(t), -1)
	require.ErrorIs(t, err, geode.ErrNegativeHorizon)

	for _, h := range []int{geode.MaxHorizon + 1, math.MaxInt / 2, math.MaxInt} {
		require.NotPanics(t, func() {
			_, err = geode.Search(scenarioA(t), h)
		})
		require.ErrorIs(t, err, geode.ErrHorizonTooLarge, "horizon %d", h)
	}

	bad := scenarioA(t)
	bad.GeodeBot.Obsidian = -3
	_, err = geode.MaxGeodes(bad, 10)
	require.ErrorIs(t, err, blueprint.ErrMalformedBlueprint)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = geode.Search(scenarioA(t), horizonQuality, geode.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestSearch_TimeLimit(t *testing.T) {
	// Exhaustive, uncapped and unbounded over 40 minutes cannot finish in 1ms.
	_, err := geode.Search(cheap(t), 40,
		geode.WithPolicy(geode.ExhaustiveBranch{}),
		geode.WithCaps(0),
		geode.WithBound(geode.NoBound),
		geode.WithTimeLimit(time.Millisecond))
	require.ErrorIs(t, err, geode.ErrTimeLimit)
}

func TestOptions_PanicOnMeaninglessInput(t *testing.T) {
	require.Panics(t, func() { geode.WithPolicy(nil) })
	require.Panics(t, func() { geode.WithTimeLimit(-time.Second) })
}

func TestSearchFrom_NilPolicyAndContextFallBack(t *testing.T) {
	res, err := geode.SearchFrom(scenarioA(t), geode.Initial(), horizonQuality, geode.SearchOptions{Caps: geode.DefaultCaps})
	require.NoError(t, err)
	require.Equal(t, 9, res.Geodes)
	require.Equal(t, "priority", res.Policy)
}
