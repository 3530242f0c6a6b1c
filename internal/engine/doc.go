// Package engine defines the contract between the session host and the
// Spore Warriors game-logic engine.
//
// The engine owns movement resolution, combat resolution, resource-pool
// decoding, and the serialization of its own values. The host treats
// every engine payload as opaque JSON and only sequences calls; the
// interfaces here are the full surface it is allowed to touch.
package engine
