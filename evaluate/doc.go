// Package evaluate runs one geode search per blueprint in parallel and
// folds the per-blueprint maxima.
//
// Modes:
//
//   - QualitySum: Σ ordinal·maxGeodes over all blueprints at horizon 24,
//     where ordinal is the 1-based position in the input.
//   - TopProduct: Π maxGeodes over the first three blueprints at horizon 32.
//
// Searches share nothing but their read-only blueprint. Each task writes only
// its own result slot, so the ordinal ↔ result mapping holds regardless of the
// order in which tasks finish. The first failing search cancels the rest.
package evaluate
