package blueprint

import "errors"

var (
	// ErrMalformedBlueprint indicates a missing cost group or a quantity that
	// is not a valid integer.
	ErrMalformedBlueprint = errors.New("blueprint: malformed blueprint")

	// ErrNegativeCost indicates a cost quantity below zero.
	ErrNegativeCost = errors.New("blueprint: negative cost")

	// ErrEmptyInput indicates that no blueprint record was found in the input.
	ErrEmptyInput = errors.New("blueprint: no blueprints in input")
)

// Quantity is an amount of a single resource kind.
type Quantity = int

// ObsidianCost is the price of one obsidian bot.
type ObsidianCost struct {
	Ore  Quantity
	Clay Quantity
}

// GeodeCost is the price of one geode bot.
type GeodeCost struct {
	Ore      Quantity
	Obsidian Quantity
}

// Blueprint is a read-only cost table for the four bot kinds.
// Ore and clay bots are paid in ore only.
type Blueprint struct {
	// ID is the number the input assigned to this blueprint.
	ID int

	// OreBot is the ore price of one ore bot.
	OreBot Quantity

	// ClayBot is the ore price of one clay bot.
	ClayBot Quantity

	// ObsidianBot is the ore+clay price of one obsidian bot.
	ObsidianBot ObsidianCost

	// GeodeBot is the ore+obsidian price of one geode bot.
	GeodeBot GeodeCost
}
