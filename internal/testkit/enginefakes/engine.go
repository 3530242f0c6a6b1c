// Package enginefakes provides lightweight in-memory engine fakes for
// orchestrator tests.
package enginefakes

import (
	"encoding/json"

	"github.com/btckoguebike/spore-warriors-host/internal/engine"
)

// Engine is a scripted engine fake. Unset funcs fall back to returning
// the embedded fixtures.
type Engine struct {
	NewGameFunc   func(resourcePool []byte, seed uint64) (engine.Game, error)
	NewBattleFunc func(rawWarrior, rawDeck, rawEnemies []byte) (engine.Battle, error)

	GameFake   *Game
	BattleFake *Battle

	NewGameCalls   int
	NewBattleCalls int
}

// NewEngine constructs an engine fake with a fully wired default game.
func NewEngine() *Engine {
	return &Engine{GameFake: NewGame(), BattleFake: NewBattle()}
}

func (e *Engine) NewGame(resourcePool []byte, seed uint64) (engine.Game, error) {
	e.NewGameCalls++
	if e.NewGameFunc != nil {
		return e.NewGameFunc(resourcePool, seed)
	}
	return e.GameFake, nil
}

func (e *Engine) NewBattle(rawWarrior, rawDeck, rawEnemies []byte) (engine.Battle, error) {
	e.NewBattleCalls++
	if e.NewBattleFunc != nil {
		return e.NewBattleFunc(rawWarrior, rawDeck, rawEnemies)
	}
	return e.BattleFake, nil
}

// Game is a scripted game fake.
type Game struct {
	PotionValue    json.RawMessage
	MapFake        *Map
	ControllerFake engine.Controller
	NewSessionFunc func(playerID uint16, at engine.Point, rawPotion []byte) (engine.WarriorContext, engine.WarriorDeckContext, error)

	NewSessionCalls int
}

// NewGame constructs a game fake whose sessions yield fresh warrior and
// deck fakes.
func NewGame() *Game {
	return &Game{MapFake: &Map{}, ControllerFake: struct{}{}}
}

func (g *Game) Potion() json.RawMessage { return g.PotionValue }

func (g *Game) Map() engine.Map { return g.MapFake }

func (g *Game) Controller() engine.Controller { return g.ControllerFake }

func (g *Game) NewSession(playerID uint16, at engine.Point, rawPotion []byte) (engine.WarriorContext, engine.WarriorDeckContext, error) {
	g.NewSessionCalls++
	if g.NewSessionFunc != nil {
		return g.NewSessionFunc(playerID, at, rawPotion)
	}
	return &Warrior{}, &Deck{}, nil
}

// Map is a scripted map fake.
type Map struct {
	ProfileValue json.RawMessage
	PeekFunc     func(warrior engine.WarriorContext, at engine.Point) (json.RawMessage, error)
	MoveToFunc   func(warrior engine.WarriorContext, deck engine.WarriorDeckContext, at engine.Point, selections []int, ctrl engine.Controller) (engine.MoveResult, error)

	MoveToCalls int
}

func (m *Map) Profile() json.RawMessage { return m.ProfileValue }

func (m *Map) PeekUpcomingMovement(warrior engine.WarriorContext, at engine.Point) (json.RawMessage, error) {
	if m.PeekFunc != nil {
		return m.PeekFunc(warrior, at)
	}
	return nil, nil
}

func (m *Map) MoveTo(warrior engine.WarriorContext, deck engine.WarriorDeckContext, at engine.Point, selections []int, ctrl engine.Controller) (engine.MoveResult, error) {
	m.MoveToCalls++
	if m.MoveToFunc != nil {
		return m.MoveToFunc(warrior, deck, at, selections, ctrl)
	}
	return engine.MoveResult{Kind: engine.MoveKindMoved}, nil
}

// Warrior is a warrior context fake.
type Warrior struct {
	ProfileValue json.RawMessage
}

func (w *Warrior) Profile() json.RawMessage { return w.ProfileValue }

// Deck is a deck context fake.
type Deck struct {
	ProfileValue json.RawMessage
}

func (d *Deck) Profile() json.RawMessage { return d.ProfileValue }

// Battle is a scripted battle fake. Destroy returns the configured
// warrior and deck, minting fresh fakes when none were set.
type Battle struct {
	StartFunc      func(ctrl engine.Controller) (engine.BattleReport, error)
	RunFunc        func(operations []engine.IterationInput, ctrl engine.Controller) (engine.BattleReport, error)
	PeekTargetFunc func(selection engine.Selection) (bool, error)
	DestroyFunc    func() (engine.WarriorContext, engine.WarriorDeckContext, json.RawMessage, error)

	WarriorFake *Warrior
	DeckFake    *Deck

	StartCalls   int
	RunCalls     int
	DestroyCalls int
}

// NewBattle constructs a battle fake with fresh warrior and deck fakes.
func NewBattle() *Battle {
	return &Battle{WarriorFake: &Warrior{}, DeckFake: &Deck{}}
}

func (b *Battle) Start(ctrl engine.Controller) (engine.BattleReport, error) {
	b.StartCalls++
	if b.StartFunc != nil {
		return b.StartFunc(ctrl)
	}
	return engine.BattleReport{Outcome: engine.OutcomeContinue}, nil
}

func (b *Battle) Run(operations []engine.IterationInput, ctrl engine.Controller) (engine.BattleReport, error) {
	b.RunCalls++
	if b.RunFunc != nil {
		return b.RunFunc(operations, ctrl)
	}
	return engine.BattleReport{Outcome: engine.OutcomeContinue}, nil
}

func (b *Battle) PeekTarget(selection engine.Selection) (bool, error) {
	if b.PeekTargetFunc != nil {
		return b.PeekTargetFunc(selection)
	}
	return true, nil
}

func (b *Battle) Destroy() (engine.WarriorContext, engine.WarriorDeckContext, json.RawMessage, error) {
	b.DestroyCalls++
	if b.DestroyFunc != nil {
		return b.DestroyFunc()
	}
	if b.WarriorFake == nil {
		b.WarriorFake = &Warrior{}
	}
	if b.DeckFake == nil {
		b.DeckFake = &Deck{}
	}
	return b.WarriorFake, b.DeckFake, nil, nil
}
