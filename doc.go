// Package crucible is the root of a small constrained-shortest-path toolkit:
// given a grid of heat-loss digits, find the cheapest route from the top-left
// to the bottom-right cell for a crucible that may never reverse and must keep
// every straight run within a mode's [MinRun, MaxRun] bounds.
//
// 🚀 What's inside?
//
//	gridgraph/          — immutable weighted grid, digit parser, bounds checks
//	crucible/           — Dijkstra over (position, direction, run) states,
//	                      dominance ledger, basic & ultra modes, witness paths
//	internal/config/    — YAML configuration (modes, solve defaults, storage)
//	internal/storage/   — SQLite history of solved grids
//	internal/render/    — lipgloss overlay of a route on its grid
//	cmd/crucible/       — cobra CLI: solve, modes, history
//
// ✨ Quick start
//
//	gg, _ := gridgraph.ParseDigits(strings.NewReader("2413\n3215\n3255"))
//	cost, err := crucible.ShortestConstrainedPath(gg, crucible.Basic)
//
// or from a shell:
//
//	crucible solve --show-path input.txt
//
// The library packages never log and hold no package-level mutable state, so
// independent searches over one grid may run concurrently.
package crucible
