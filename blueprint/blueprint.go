package blueprint

import "fmt"

// New builds a Blueprint from the six cost quantities, in input order.
// It returns ErrMalformedBlueprint (wrapping ErrNegativeCost) if any quantity is negative.
func New(id int, oreBot, clayBot, obsidianOre, obsidianClay, geodeOre, geodeObsidian Quantity) (Blueprint, error) {
	bp := Blueprint{
		ID:          id,
		OreBot:      oreBot,
		ClayBot:     clayBot,
		ObsidianBot: ObsidianCost{Ore: obsidianOre, Clay: obsidianClay},
		GeodeBot:    GeodeCost{Ore: geodeOre, Obsidian: geodeObsidian},
	}
	if err := bp.Validate(); err != nil {
		return Blueprint{}, err
	}

	return bp, nil
}

// Validate reports whether every cost is non-negative.
//
// Complexity: O(1).
func (b Blueprint) Validate() error {
	fields := [...]struct {
		name string
		q    Quantity
	}{
		{"ore bot ore", b.OreBot},
		{"clay bot ore", b.ClayBot},
		{"obsidian bot ore", b.ObsidianBot.Ore},
		{"obsidian bot clay", b.ObsidianBot.Clay},
		{"geode bot ore", b.GeodeBot.Ore},
		{"geode bot obsidian", b.GeodeBot.Obsidian},
	}
	for _, f := range fields {
		if f.q < 0 {
			return fmt.Errorf("%w: %w: %s = %d", ErrMalformedBlueprint, ErrNegativeCost, f.name, f.q)
		}
	}

	return nil
}

// MaxOreSpend is the most ore any single non-ore build consumes.
// Producing more ore per minute than this is never useful, since only one
// bot can be built per minute.
func (b Blueprint) MaxOreSpend() Quantity {
	return max(b.ClayBot, b.ObsidianBot.Ore, b.GeodeBot.Ore)
}

// String renders the blueprint in the text input format.
func (b Blueprint) String() string {
	return fmt.Sprintf(
		"Blueprint %d: Each ore robot costs %d ore. Each clay robot costs %d ore. "+
			"Each obsidian robot costs %d ore and %d clay. Each geode robot costs %d ore and %d obsidian.",
		b.ID, b.OreBot, b.ClayBot,
		b.ObsidianBot.Ore, b.ObsidianBot.Clay,
		b.GeodeBot.Ore, b.GeodeBot.Obsidian,
	)
}
