package geode_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geodes/geode"
)

func TestInitial(t *testing.T) {
	require.Equal(t, geode.Resources{OreBots: 1}, geode.Initial())
}

func TestStep_NewBotProducesNextMinute(t *testing.T) {
	bp := scenarioA(t)
	r := geode.Resources{Ore: 2, OreBots: 1}

	next, ok := r.Step(bp, geode.BuildClay)
	require.True(t, ok)
	// Paid 2 ore, the single ore bot produced 1, the clay bot has not produced yet.
	require.Equal(t, geode.Resources{Ore: 1, OreBots: 1, ClayBots: 1}, next)

	next, ok = next.Step(bp, geode.Idle)
	require.True(t, ok)
	require.Equal(t, geode.Resources{Ore: 2, Clay: 1, OreBots: 1, ClayBots: 1}, next)

	// The parent snapshot is untouched.
	require.Equal(t, geode.Resources{Ore: 2, OreBots: 1}, r)
}

func TestStep_DeductsCompositeCosts(t *testing.T) {
	bp := scenarioA(t)
	r := geode.Resources{Ore: 5, Clay: 14, Obsidian: 7, OreBots: 1, ClayBots: 2, ObsidianBots: 3}

	obs, ok := r.Step(bp, geode.BuildObsidian)
	require.True(t, ok)
	require.Equal(t, geode.Resources{Ore: 3, Clay: 2, Obsidian: 10, OreBots: 1, ClayBots: 2, ObsidianBots: 4}, obs)

	geo, ok := r.Step(bp, geode.BuildGeode)
	require.True(t, ok)
	require.Equal(t, geode.Resources{Ore: 4, Clay: 16, Obsidian: 3, OreBots: 1, ClayBots: 2, ObsidianBots: 3, GeodeBots: 1}, geo)
}

func TestStep_RejectsUnaffordable(t *testing.T) {
	bp := scenarioA(t)
	r := geode.Initial()
	for _, a := range []geode.Action{geode.BuildOre, geode.BuildClay, geode.BuildObsidian, geode.BuildGeode} {
		next, ok := r.Step(bp, a)
		require.False(t, ok, a.String())
		require.Equal(t, r, next)
	}
}

func TestLegal_AppliesCaps(t *testing.T) {
	bp := scenarioA(t) // ore cap 3, clay cap 14, obsidian cap 7
	rich := geode.Resources{Ore: 100, Clay: 100, Obsidian: 100}

	all := geode.Actions(geode.Idle, geode.BuildOre, geode.BuildClay, geode.BuildObsidian, geode.BuildGeode)
	require.Equal(t, all, rich.Legal(bp, geode.DefaultCaps))

	capped := rich
	capped.OreBots, capped.ClayBots, capped.ObsidianBots = 3, 14, 7
	require.Equal(t, geode.Actions(geode.Idle, geode.BuildGeode), capped.Legal(bp, geode.DefaultCaps))
	require.Equal(t, all, capped.Legal(bp, 0), "no caps")
	require.Equal(t, all.Without(geode.BuildClay), capped.Legal(bp, geode.Actions(geode.BuildClay)))
}

func TestValid(t *testing.T) {
	require.True(t, geode.Initial().Valid())
	require.False(t, geode.Resources{Ore: -1}.Valid())
	require.False(t, geode.Resources{GeodeBots: -1}.Valid())
}

func TestActionSet_String(t *testing.T) {
	require.Equal(t, "{idle,obsidian}", geode.Actions(geode.Idle, geode.BuildObsidian).String())
	require.Equal(t, "{}", geode.ActionSet(0).String())
}
