// Package blueprint describes the immutable cost tables that drive the geode
// search: what an ore, clay, obsidian and geode bot cost in raw resources.
//
// What:
//
//   - Blueprint holds the four cost groups plus the blueprint's own ID.
//   - New and Validate enforce the only invariant: every cost is a non-negative integer.
//   - ParseLine / ParseText read the puzzle text format
//     ("Blueprint 1: Each ore robot costs 4 ore. ...").
//   - ParseJSON reads the same data from a JSON array via gjson.
//   - Load dispatches on the file extension (or the first byte) of an input file.
//
// Why:
//
//   - A Blueprint is shared by reference across parallel searches; it has no
//     mutating methods, so no synchronization is needed.
//   - Parse errors surface before any search starts and never affect other
//     blueprints in the same input.
//
// Errors:
//
//   - ErrMalformedBlueprint: a cost group is missing or a quantity is not an integer.
//   - ErrNegativeCost:       a quantity is negative (also matches ErrMalformedBlueprint).
//   - ErrEmptyInput:         the input holds no blueprint records at all.
package blueprint
