package geode

import "github.com/katalvlaran/geodes/blueprint"

// Resources is one search-tree snapshot: resource stocks and bot counts.
// It is a plain value; every child frame owns its own copy.
type Resources struct {
	Ore, Clay, Obsidian, Geode                 int
	OreBots, ClayBots, ObsidianBots, GeodeBots int
}

// Initial is the starting snapshot: one ore bot and nothing else.
func Initial() Resources {
	return Resources{OreBots: 1}
}

// produce applies one minute of production by the current fleet.
func (r *Resources) produce() {
	r.Ore += r.OreBots
	r.Clay += r.ClayBots
	r.Obsidian += r.ObsidianBots
	r.Geode += r.GeodeBots
}

// Affordable returns the builds r can pay for, plus Idle. Caps are not applied.
func (r Resources) Affordable(bp blueprint.Blueprint) ActionSet {
	s := Actions(Idle)
	if r.Ore >= bp.OreBot {
		s = s.With(BuildOre)
	}
	if r.Ore >= bp.ClayBot {
		s = s.With(BuildClay)
	}
	if r.Ore >= bp.ObsidianBot.Ore && r.Clay >= bp.ObsidianBot.Clay {
		s = s.With(BuildObsidian)
	}
	if r.Ore >= bp.GeodeBot.Ore && r.Obsidian >= bp.GeodeBot.Obsidian {
		s = s.With(BuildGeode)
	}

	return s
}

// Legal returns the affordable builds whose bot count is still below its cap,
// for every kind in caps, plus Idle.
//
//	ore bots      < bp.MaxOreSpend()
//	clay bots     < bp.ObsidianBot.Clay
//	obsidian bots < bp.GeodeBot.Obsidian
func (r Resources) Legal(bp blueprint.Blueprint, caps ActionSet) ActionSet {
	s := r.Affordable(bp)
	if caps.Has(BuildOre) && r.OreBots >= bp.MaxOreSpend() {
		s = s.Without(BuildOre)
	}
	if caps.Has(BuildClay) && r.ClayBots >= bp.ObsidianBot.Clay {
		s = s.Without(BuildClay)
	}
	if caps.Has(BuildObsidian) && r.ObsidianBots >= bp.GeodeBot.Obsidian {
		s = s.Without(BuildObsidian)
	}

	return s
}

// Step applies action a for one minute and returns the child snapshot:
// pay the cost, let the existing fleet produce, then add the new bot.
// It reports false, and returns r unchanged, if a is not affordable.
func (r Resources) Step(bp blueprint.Blueprint, a Action) (Resources, bool) {
	if !r.Affordable(bp).Has(a) {
		return r, false
	}

	next := r
	switch a {
	case BuildOre:
		next.Ore -= bp.OreBot
	case BuildClay:
		next.Ore -= bp.ClayBot
	case BuildObsidian:
		next.Ore -= bp.ObsidianBot.Ore
		next.Clay -= bp.ObsidianBot.Clay
	case BuildGeode:
		next.Ore -= bp.GeodeBot.Ore
		next.Obsidian -= bp.GeodeBot.Obsidian
	}
	next.produce()
	switch a {
	case BuildOre:
		next.OreBots++
	case BuildClay:
		next.ClayBots++
	case BuildObsidian:
		next.ObsidianBots++
	case BuildGeode:
		next.GeodeBots++
	}

	return next, true
}

// Valid reports whether no stock or bot count is negative.
func (r Resources) Valid() bool {
	return r.Ore >= 0 && r.Clay >= 0 && r.Obsidian >= 0 && r.Geode >= 0 &&
		r.OreBots >= 0 && r.ClayBots >= 0 && r.ObsidianBots >= 0 && r.GeodeBots >= 0
}
