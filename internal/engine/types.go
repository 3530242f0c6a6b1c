package engine

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Point addresses a map node.
type Point struct {
	X uint8 `json:"x"`
	Y uint8 `json:"y"`
}

// MoveKind is the closed set of movement outcomes.
type MoveKind string

const (
	// MoveKindMoved is a plain position change.
	MoveKindMoved MoveKind = "moved"
	// MoveKindTreasure means the node yielded loot.
	MoveKindTreasure MoveKind = "treasure"
	// MoveKindFight means the node triggered a battle.
	MoveKindFight MoveKind = "fight"
	// MoveKindComplete means the warrior reached the map's terminal node.
	MoveKindComplete MoveKind = "complete"
)

// MoveResult is the committed outcome of a map movement. Battle is set
// only when Kind is MoveKindFight.
type MoveResult struct {
	Kind   MoveKind        `json:"kind"`
	Detail json.RawMessage `json:"detail,omitempty"`
	Battle Battle          `json:"-"`
}

// Outcome is the engine's verdict after a battle step.
type Outcome string

const (
	// OutcomeContinue means the battle is still running.
	OutcomeContinue Outcome = "continue"
	// OutcomeVictory means every enemy is defeated.
	OutcomeVictory Outcome = "victory"
	// OutcomeDefeat means the warrior fell.
	OutcomeDefeat Outcome = "defeat"
)

// BattleReport pairs an outcome with the fully materialized log entries
// produced by a single Start or Run call. Logs are never replayed; each
// call reports only its own effects.
type BattleReport struct {
	Outcome Outcome           `json:"outcome"`
	Logs    []json.RawMessage `json:"logs"`
}

// Selection identifies cards chosen for a battle step. Exactly one of
// Card or Cards must be set.
type Selection struct {
	Card  *int  `json:"card,omitempty"`
	Cards []int `json:"cards,omitempty"`
}

// Validate checks the one-of constraint.
func (s Selection) Validate() error {
	if s.Card == nil && len(s.Cards) == 0 {
		return errors.New("selection requires a card or cards")
	}
	if s.Card != nil && len(s.Cards) > 0 {
		return errors.New("selection allows only one of card or cards")
	}
	return nil
}

// DecodeSelection parses a host-supplied selection payload.
func DecodeSelection(raw []byte) (Selection, error) {
	var sel Selection
	if err := json.Unmarshal(raw, &sel); err != nil {
		return Selection{}, fmt.Errorf("decode selection: %w", err)
	}
	if err := sel.Validate(); err != nil {
		return Selection{}, err
	}
	return sel, nil
}

// IterationKind is the closed set of player-driven battle inputs.
type IterationKind string

const (
	IterationHandCardUse       IterationKind = "hand_card_use"
	IterationItemUse           IterationKind = "item_use"
	IterationSpecialCardUse    IterationKind = "special_card_use"
	IterationPendingCardSelect IterationKind = "pending_card_select"
	IterationEnemyTurn         IterationKind = "enemy_turn"
)

// IterationInput is one player-chosen battle step.
type IterationInput struct {
	Kind      IterationKind `json:"kind"`
	Selection *Selection    `json:"selection,omitempty"`
	Target    *int          `json:"target,omitempty"`
}

// Validate rejects unknown kinds and malformed selections.
func (in IterationInput) Validate() error {
	switch in.Kind {
	case IterationHandCardUse, IterationItemUse, IterationSpecialCardUse, IterationPendingCardSelect:
		if in.Selection == nil {
			return fmt.Errorf("iteration %q requires a selection", in.Kind)
		}
		return in.Selection.Validate()
	case IterationEnemyTurn:
		if in.Selection != nil {
			return fmt.Errorf("iteration %q takes no selection", in.Kind)
		}
		return nil
	default:
		return fmt.Errorf("unknown iteration kind %q", in.Kind)
	}
}

// DecodeIterationInputs parses an ordered sequence of iteration inputs.
func DecodeIterationInputs(raw []byte) ([]IterationInput, error) {
	var ops []IterationInput
	if err := json.Unmarshal(raw, &ops); err != nil {
		return nil, fmt.Errorf("decode iteration inputs: %w", err)
	}
	for i, op := range ops {
		if err := op.Validate(); err != nil {
			return nil, fmt.Errorf("iteration input %d: %w", i, err)
		}
	}
	return ops, nil
}
