package engine

import "encoding/json"

// Engine constructs games and standalone battles from host-supplied
// payloads. Implementations must be deterministic for a fixed
// (resourcePool, seed) pair.
type Engine interface {
	// NewGame decodes the resource pool and builds a game whose internal
	// randomness is seeded with seed.
	NewGame(resourcePool []byte, seed uint64) (Game, error)

	// NewBattle builds a battle directly from serialized warrior, deck,
	// and enemy values, bypassing map traversal.
	NewBattle(rawWarrior, rawDeck, rawEnemies []byte) (Battle, error)
}

// Game is the root session object: it owns the map, an optional potion,
// and the controller the engine threads through movement and battle
// resolution.
type Game interface {
	// Potion returns the game's consumable potion, or nil when absent.
	Potion() json.RawMessage

	// Map returns the game's traversal surface.
	Map() Map

	// Controller returns the engine-owned coordination object. The host
	// never inspects it, only passes it back into engine calls.
	Controller() Controller

	// NewSession materializes a warrior/deck pair for playerID at the
	// given point, consuming rawPotion when non-nil.
	NewSession(playerID uint16, at Point, rawPotion []byte) (WarriorContext, WarriorDeckContext, error)
}

// Map resolves traversal for the current warrior.
type Map interface {
	// Profile returns the serialized map projection.
	Profile() json.RawMessage

	// PeekUpcomingMovement previews the outcome of moving to at without
	// committing it. A nil node means no preview applies.
	PeekUpcomingMovement(warrior WarriorContext, at Point) (json.RawMessage, error)

	// MoveTo commits a movement, mutating warrior, deck, and map state
	// through the controller. Selections disambiguate encounter choices
	// in engine-defined order.
	MoveTo(warrior WarriorContext, deck WarriorDeckContext, at Point, selections []int, ctrl Controller) (MoveResult, error)
}

// WarriorContext is the player's combat-facing state.
type WarriorContext interface {
	Profile() json.RawMessage
}

// WarriorDeckContext is the player's card deck, paired 1:1 with its
// WarriorContext.
type WarriorDeckContext interface {
	Profile() json.RawMessage
}

// Controller is opaque to the host.
type Controller any

// Battle is an active PVE combat instance. It owns its own copies of
// the warrior and deck for the duration of the fight.
type Battle interface {
	// Start runs the battle's opening phase.
	Start(ctrl Controller) (BattleReport, error)

	// Run advances the battle by exactly the given operations.
	Run(operations []IterationInput, ctrl Controller) (BattleReport, error)

	// PeekTarget reports whether the selection is currently a legal
	// target. Pure query.
	PeekTarget(selection Selection) (bool, error)

	// Destroy decomposes the battle back into the (possibly mutated)
	// warrior and deck, plus the engine's discard payload.
	Destroy() (WarriorContext, WarriorDeckContext, json.RawMessage, error)
}
