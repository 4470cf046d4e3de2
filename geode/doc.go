// Package geode finds the largest number of geodes a blueprint can crack
// within a fixed horizon of minutes.
//
// Model:
//
//   - Four resources (ore, clay, obsidian, geode) and one bot kind per resource.
//   - The search starts with a single ore bot and nothing else.
//   - Each minute at most one bot is built. Its cost is paid first, then every
//     existing bot produces one unit, then the new bot joins the fleet (it
//     produces from the next minute on).
//
// Search:
//
//   - Depth-first branch-and-bound over an explicit work-list of owned
//     (Resources, minutes left) frames; no recursion, so deep horizons do not
//     grow the goroutine stack.
//   - Bot-count caps: ore bots ≤ blueprint.MaxOreSpend, clay bots ≤ obsidian
//     bot clay cost, obsidian bots ≤ geode bot obsidian cost. Geode bots are
//     never capped. Caps can be lifted per kind with WithCaps.
//   - BranchPolicy decides which legal builds are expanded:
//     PriorityOrder (default) expands only the best accumulator build
//     (geode > obsidian > clay) plus an ore bot and idling. This is a heuristic.
//     ExhaustiveBranch expands every legal build and is exact.
//   - OptimisticBound (default) prunes a node when even one new geode bot per
//     remaining minute could not beat the incumbent. It never changes the answer.
//
// Complexity:
//
//   - Worst case O(5^t) nodes for ExhaustiveBranch, O(3^t) for PriorityOrder;
//     caps and the bound keep practical horizons (24–32) tractable.
//   - Memory: O(t) frames on the work-list.
//
// Errors:
//
//   - blueprint.ErrMalformedBlueprint  if the blueprint fails validation.
//   - ErrNegativeHorizon               if the horizon is below zero.
//   - ErrTimeLimit                     if a positive WithTimeLimit budget runs out.
//   - ErrInvariantViolation            if WithInvariantChecks catches a negative stock.
//   - context errors                   if the WithContext context is done.
package geode
