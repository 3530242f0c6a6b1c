// Package sim is a self-contained reference implementation of the
// engine contract.
//
// It decodes a JSON resource pool, lays the map out as a grid of typed
// nodes, and resolves battles with deterministic arithmetic; the only
// randomness is the seeded deck shuffle, so a fixed (pool, seed) pair
// always replays identically. It exists for local play and scenario
// tests; production hosts bind the real Spore Warriors engine instead.
package sim
