// Package geodes computes how many geodes a fleet of bots can crack within a
// fixed number of minutes, given blueprints that price each bot kind in raw
// resources.
//
// Layout:
//
//	blueprint/           — immutable cost tables; text and JSON parsers
//	geode/               — branch-and-bound search over minutes (the engine)
//	evaluate/            — parallel per-blueprint fan-out; weighted-sum and product folds
//	config/              — YAML settings and zap logger construction
//	cmd/geodes/          — cobra CLI: quality, product, solve
//	cmd/geodes-lambda/   — AWS Lambda function URL handler (-tags lambda)
//
// Quick start:
//
//	bp, _ := blueprint.New(1, 4, 2, 3, 14, 2, 7)
//	n, _ := geode.MaxGeodes(bp, 24) // 9
//
// The default branch policy is a heuristic. Pass
// geode.WithPolicy(geode.ExhaustiveBranch{}) to audit a result exactly.
package geodes
