package domain

import "github.com/btckoguebike/spore-warriors-host/internal/engine"

// Phase identifies the session lifecycle phase.
type Phase string

const (
	// PhaseIdle means no warrior pair and no battle exist.
	PhaseIdle Phase = "idle"
	// PhaseMap means a warrior/deck pair is traversing the map.
	PhaseMap Phase = "map"
	// PhaseBattle means a battle owns the warrior/deck pair.
	PhaseBattle Phase = "battle"
)

// Variant is the tagged session phase. The only implementations are
// Idle, MapPhase, and BattlePhase; the unexported method seals the set.
type Variant interface {
	Phase() Phase
	sealed()
}

// Idle is the phase before a session is created and after none remains.
type Idle struct{}

// Phase implements Variant.
func (Idle) Phase() Phase { return PhaseIdle }

func (Idle) sealed() {}

// MapPhase holds the warrior/deck pair. The pair is created together by
// session creation and leaves together when a battle takes ownership.
type MapPhase struct {
	Warrior engine.WarriorContext
	Deck    engine.WarriorDeckContext
}

// Phase implements Variant.
func (MapPhase) Phase() Phase { return PhaseMap }

func (MapPhase) sealed() {}

// BattlePhase holds the live battle. While it is active the warrior and
// deck live inside the battle and are only reachable again through its
// destruction.
type BattlePhase struct {
	Battle engine.Battle
}

// Phase implements Variant.
func (BattlePhase) Phase() Phase { return PhaseBattle }

func (BattlePhase) sealed() {}
