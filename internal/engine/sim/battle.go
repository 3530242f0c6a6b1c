package sim

import (
	"encoding/json"
	"fmt"

	"github.com/btckoguebike/spore-warriors-host/internal/engine"
)

const openingHandSize = 3

// Battle is an active simulation fight. It takes ownership of the
// warrior and deck until Destroy hands them back.
type Battle struct {
	warrior *Warrior
	deck    *Deck
	enemies []enemyState

	drawPile []cardSpec
	hand     []cardSpec
	discard  []cardSpec

	started bool
	outcome engine.Outcome
}

type enemyState struct {
	Spec enemySpec `json:"spec"`
	HP   int       `json:"hp"`
}

func newBattle(warrior *Warrior, deck *Deck, enemies []enemySpec) *Battle {
	states := make([]enemyState, 0, len(enemies))
	for _, spec := range enemies {
		states = append(states, enemyState{Spec: spec, HP: spec.HP})
	}

	drawPile := make([]cardSpec, len(deck.Cards))
	copy(drawPile, deck.Cards)

	return &Battle{
		warrior:  warrior,
		deck:     deck,
		enemies:  states,
		drawPile: drawPile,
		outcome:  engine.OutcomeContinue,
	}
}

// Start runs the opening phase: the warrior draws the opening hand.
func (b *Battle) Start(ctrl engine.Controller) (engine.BattleReport, error) {
	if _, ok := ctrl.(*Controller); !ok {
		return engine.BattleReport{}, fmt.Errorf("controller does not belong to the simulation engine")
	}
	if b.started {
		return engine.BattleReport{}, fmt.Errorf("battle has already started")
	}
	b.started = true

	var logs []json.RawMessage
	logs = append(logs, logEntry("battle_started", map[string]any{
		"warrior_hp": b.warrior.HP,
		"enemies":    len(b.enemies),
	}))
	logs = append(logs, b.draw(openingHandSize)...)

	if len(b.enemies) == 0 {
		b.outcome = engine.OutcomeVictory
		logs = append(logs, logEntry("battle_won", nil))
	}
	return engine.BattleReport{Outcome: b.outcome, Logs: logs}, nil
}

// Run advances the battle by exactly the given operations.
func (b *Battle) Run(operations []engine.IterationInput, ctrl engine.Controller) (engine.BattleReport, error) {
	if _, ok := ctrl.(*Controller); !ok {
		return engine.BattleReport{}, fmt.Errorf("controller does not belong to the simulation engine")
	}
	if !b.started {
		return engine.BattleReport{}, fmt.Errorf("battle has not started")
	}
	if b.outcome != engine.OutcomeContinue {
		return engine.BattleReport{}, fmt.Errorf("battle has already finished")
	}

	var logs []json.RawMessage
	for _, op := range operations {
		entries, err := b.apply(op)
		logs = append(logs, entries...)
		if err != nil {
			return engine.BattleReport{}, err
		}
		if b.outcome != engine.OutcomeContinue {
			break
		}
	}
	return engine.BattleReport{Outcome: b.outcome, Logs: logs}, nil
}

func (b *Battle) apply(op engine.IterationInput) ([]json.RawMessage, error) {
	switch op.Kind {
	case engine.IterationHandCardUse:
		return b.playCard(op)
	case engine.IterationEnemyTurn:
		return b.enemyTurn(), nil
	default:
		return nil, fmt.Errorf("iteration %q is not available in this battle", op.Kind)
	}
}

func (b *Battle) playCard(op engine.IterationInput) ([]json.RawMessage, error) {
	if op.Selection == nil || op.Selection.Card == nil {
		return nil, fmt.Errorf("hand card use requires a single card selection")
	}
	idx := *op.Selection.Card
	if idx < 0 || idx >= len(b.hand) {
		return nil, fmt.Errorf("hand card %d is out of range", idx)
	}

	target := 0
	if op.Target != nil {
		target = *op.Target
	}
	if target < 0 || target >= len(b.enemies) {
		return nil, fmt.Errorf("enemy target %d is out of range", target)
	}
	if b.enemies[target].HP <= 0 {
		return nil, fmt.Errorf("enemy target %d is already defeated", target)
	}

	card := b.hand[idx]
	b.hand = append(b.hand[:idx], b.hand[idx+1:]...)
	b.discard = append(b.discard, card)

	damage := card.Attack + b.warrior.Attack
	b.enemies[target].HP -= damage

	logs := []json.RawMessage{logEntry("card_played", map[string]any{
		"card":     card.Name,
		"damage":   damage,
		"enemy":    target,
		"enemy_hp": b.enemies[target].HP,
	})}

	if b.defeated() {
		b.outcome = engine.OutcomeVictory
		logs = append(logs, logEntry("battle_won", nil))
	}
	return logs, nil
}

func (b *Battle) enemyTurn() []json.RawMessage {
	var logs []json.RawMessage
	for i, enemy := range b.enemies {
		if enemy.HP <= 0 {
			continue
		}
		damage := enemy.Spec.Attack - b.warrior.Defense
		if damage < 1 {
			damage = 1
		}
		b.warrior.HP -= damage
		logs = append(logs, logEntry("enemy_attacked", map[string]any{
			"enemy":      i,
			"damage":     damage,
			"warrior_hp": b.warrior.HP,
		}))
		if b.warrior.HP <= 0 {
			b.outcome = engine.OutcomeDefeat
			logs = append(logs, logEntry("battle_lost", nil))
			return logs
		}
	}
	logs = append(logs, b.draw(1)...)
	return logs
}

// draw moves cards from the draw pile to the hand, reshuffling nothing:
// the pile order was fixed by the seeded shuffle at session creation.
func (b *Battle) draw(n int) []json.RawMessage {
	var logs []json.RawMessage
	for i := 0; i < n && len(b.drawPile) > 0; i++ {
		card := b.drawPile[0]
		b.drawPile = b.drawPile[1:]
		b.hand = append(b.hand, card)
		logs = append(logs, logEntry("card_drawn", map[string]any{"card": card.Name}))
	}
	return logs
}

// PeekTarget reports whether the selection addresses cards currently in
// hand. Pure query.
func (b *Battle) PeekTarget(selection engine.Selection) (bool, error) {
	if !b.started || b.outcome != engine.OutcomeContinue {
		return false, nil
	}
	if selection.Card != nil {
		return *selection.Card >= 0 && *selection.Card < len(b.hand), nil
	}
	for _, idx := range selection.Cards {
		if idx < 0 || idx >= len(b.hand) {
			return false, nil
		}
	}
	return true, nil
}

// Destroy decomposes the battle back into the mutated warrior and deck.
// Cards played during the fight return to the deck.
func (b *Battle) Destroy() (engine.WarriorContext, engine.WarriorDeckContext, json.RawMessage, error) {
	cards := make([]cardSpec, 0, len(b.hand)+len(b.drawPile)+len(b.discard))
	cards = append(cards, b.hand...)
	cards = append(cards, b.drawPile...)
	cards = append(cards, b.discard...)
	b.deck.Cards = cards

	discard, _ := json.Marshal(map[string]any{
		"outcome": b.outcome,
		"enemies": b.enemies,
	})
	return b.warrior, b.deck, discard, nil
}

func (b *Battle) defeated() bool {
	for _, enemy := range b.enemies {
		if enemy.HP > 0 {
			return false
		}
	}
	return true
}

func logEntry(event string, fields map[string]any) json.RawMessage {
	entry := map[string]any{"event": event}
	for k, v := range fields {
		entry[k] = v
	}
	raw, _ := json.Marshal(entry)
	return raw
}
