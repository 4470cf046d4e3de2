// Package geode_test holds the shared fixtures for the search tests.
package geode_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geodes/blueprint"
)

const (
	// horizonQuality is the horizon used by the weighted-sum mode.
	horizonQuality = 24

	// horizonProduct is the horizon used by the product mode.
	horizonProduct = 32

	// horizonSmall keeps uncapped / unbounded runs cheap.
	horizonSmall = 10
)

// mustBP builds a blueprint or fails the test.
func mustBP(t testing.TB, id, ore, clay, obsOre, obsClay, geoOre, geoObs int) blueprint.Blueprint {
	t.Helper()
	bp, err := blueprint.New(id, ore, clay, obsOre, obsClay, geoOre, geoObs)
	require.NoError(t, err)

	return bp
}

// scenarioA: optimum 9 at horizon 24.
func scenarioA(t testing.TB) blueprint.Blueprint { return mustBP(t, 1, 4, 2, 3, 14, 2, 7) }

// scenarioB: optimum 12 at horizon 24.
func scenarioB(t testing.TB) blueprint.Blueprint { return mustBP(t, 2, 2, 3, 3, 8, 3, 12) }

// cheap makes every bot cost a single unit, so geodes appear within minutes.
func cheap(t testing.TB) blueprint.Blueprint { return mustBP(t, 3, 1, 1, 1, 1, 1, 1) }

// free costs nothing, so a geode bot can be built every minute and the
// optimum at horizon h is h(h-1)/2.
func free(t testing.TB) blueprint.Blueprint { return mustBP(t, 4, 0, 0, 0, 0, 0, 0) }
