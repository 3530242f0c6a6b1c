package sim

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/btckoguebike/spore-warriors-host/internal/engine"
)

// testPool is a 3x3 grid with one of each node kind reachable from the
// start at (0,0).
const testPool = `{
	"potion": {"hp": 4},
	"warriors": [{"id": 1, "hp": 10, "attack": 2, "defense": 1, "deck": [1, 1, 1]}],
	"cards": [
		{"id": 1, "name": "strike", "attack": 3, "block": 0},
		{"id": 2, "name": "cleave", "attack": 5, "block": 0}
	],
	"enemies": [{"id": 1, "name": "slime", "hp": 8, "attack": 3}],
	"map": {
		"width": 3,
		"height": 3,
		"nodes": [
			{"x": 0, "y": 0, "kind": "start"},
			{"x": 1, "y": 0, "kind": "blank"},
			{"x": 2, "y": 0, "kind": "treasure", "loot": [2]},
			{"x": 0, "y": 1, "kind": "enemy", "enemies": [1]},
			{"x": 1, "y": 1, "kind": "exit"}
		]
	}
}`

func newTestGame(t *testing.T, seed uint64) engine.Game {
	t.Helper()
	game, err := New().NewGame([]byte(testPool), seed)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return game
}

func newTestSession(t *testing.T, game engine.Game) (engine.WarriorContext, engine.WarriorDeckContext) {
	t.Helper()
	warrior, deck, err := game.NewSession(1, engine.Point{X: 0, Y: 0}, nil)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return warrior, deck
}

func TestNewGameRejectsBadPool(t *testing.T) {
	tests := []struct {
		name string
		pool string
	}{
		{name: "malformed json", pool: `{"warriors":`},
		{name: "no warriors", pool: `{"warriors":[],"map":{"width":1,"height":1,"nodes":[{"x":0,"y":0,"kind":"start"}]}}`},
		{name: "no nodes", pool: `{"warriors":[{"id":1,"hp":5}],"map":{"width":1,"height":1,"nodes":[]}}`},
		{name: "node off grid", pool: `{"warriors":[{"id":1,"hp":5}],"map":{"width":1,"height":1,"nodes":[{"x":1,"y":0,"kind":"start"}]}}`},
		{name: "unknown node kind", pool: `{"warriors":[{"id":1,"hp":5}],"map":{"width":1,"height":1,"nodes":[{"x":0,"y":0,"kind":"portal"}]}}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New().NewGame([]byte(tc.pool), 1); err == nil {
				t.Fatal("NewGame succeeded, want error")
			}
		})
	}
}

func TestPotion(t *testing.T) {
	game := newTestGame(t, 1)
	var potion struct {
		HP int `json:"hp"`
	}
	if err := json.Unmarshal(game.Potion(), &potion); err != nil {
		t.Fatalf("unmarshal potion: %v", err)
	}
	if potion.HP != 4 {
		t.Fatalf("potion hp = %d, want 4", potion.HP)
	}
}

func TestNewSessionValidation(t *testing.T) {
	game := newTestGame(t, 1)

	if _, _, err := game.NewSession(99, engine.Point{}, nil); err == nil {
		t.Fatal("unknown warrior id should fail")
	}
	if _, _, err := game.NewSession(1, engine.Point{X: 1, Y: 0}, nil); err == nil {
		t.Fatal("non-start node should fail")
	}
	if _, _, err := game.NewSession(1, engine.Point{X: 2, Y: 2}, nil); err == nil {
		t.Fatal("point off the node list should fail")
	}
}

func TestNewSessionAppliesPotion(t *testing.T) {
	game := newTestGame(t, 1)

	warrior, _, err := game.NewSession(1, engine.Point{}, []byte(`{"hp":4}`))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	var profile struct {
		MaxHP int `json:"max_hp"`
		HP    int `json:"hp"`
	}
	if err := json.Unmarshal(warrior.Profile(), &profile); err != nil {
		t.Fatalf("unmarshal warrior profile: %v", err)
	}
	if profile.HP != 14 || profile.MaxHP != 14 {
		t.Fatalf("hp = %d/%d, want 14/14", profile.HP, profile.MaxHP)
	}
}

func TestMoveToBlankAndExit(t *testing.T) {
	game := newTestGame(t, 1)
	warrior, deck := newTestSession(t, game)

	result, err := game.Map().MoveTo(warrior, deck, engine.Point{X: 1, Y: 0}, nil, game.Controller())
	if err != nil {
		t.Fatalf("MoveTo blank: %v", err)
	}
	if result.Kind != engine.MoveKindMoved {
		t.Fatalf("kind = %s, want %s", result.Kind, engine.MoveKindMoved)
	}

	result, err = game.Map().MoveTo(warrior, deck, engine.Point{X: 1, Y: 1}, nil, game.Controller())
	if err != nil {
		t.Fatalf("MoveTo exit: %v", err)
	}
	if result.Kind != engine.MoveKindComplete {
		t.Fatalf("kind = %s, want %s", result.Kind, engine.MoveKindComplete)
	}
}

func TestMoveToRejectsUnreachable(t *testing.T) {
	game := newTestGame(t, 1)
	warrior, deck := newTestSession(t, game)

	if _, err := game.Map().MoveTo(warrior, deck, engine.Point{X: 2, Y: 0}, nil, game.Controller()); err == nil {
		t.Fatal("two-step move should fail")
	}
}

func TestMoveToTreasure(t *testing.T) {
	game := newTestGame(t, 1)
	warrior, deck := newTestSession(t, game)

	// start -> blank -> treasure
	if _, err := game.Map().MoveTo(warrior, deck, engine.Point{X: 1, Y: 0}, nil, game.Controller()); err != nil {
		t.Fatalf("MoveTo blank: %v", err)
	}
	result, err := game.Map().MoveTo(warrior, deck, engine.Point{X: 2, Y: 0}, []int{0}, game.Controller())
	if err != nil {
		t.Fatalf("MoveTo treasure: %v", err)
	}
	if result.Kind != engine.MoveKindTreasure {
		t.Fatalf("kind = %s, want %s", result.Kind, engine.MoveKindTreasure)
	}

	var profile struct {
		Cards []struct {
			ID int `json:"id"`
		} `json:"cards"`
	}
	if err := json.Unmarshal(deck.Profile(), &profile); err != nil {
		t.Fatalf("unmarshal deck profile: %v", err)
	}
	if len(profile.Cards) != 4 {
		t.Fatalf("deck has %d cards, want 4", len(profile.Cards))
	}
	if profile.Cards[3].ID != 2 {
		t.Fatalf("looted card id = %d, want 2", profile.Cards[3].ID)
	}

	// Out-of-range loot selection fails before mutating anything.
	if _, err := game.Map().MoveTo(warrior, deck, engine.Point{X: 2, Y: 0}, []int{5}, game.Controller()); err == nil {
		t.Fatal("out-of-range loot selection should fail")
	}
}

func TestPeekUpcomingMovement(t *testing.T) {
	game := newTestGame(t, 1)
	warrior, _ := newTestSession(t, game)

	node, err := game.Map().PeekUpcomingMovement(warrior, engine.Point{X: 0, Y: 1})
	if err != nil {
		t.Fatalf("PeekUpcomingMovement: %v", err)
	}
	var preview struct {
		Kind    string `json:"kind"`
		Enemies int    `json:"enemies"`
	}
	if err := json.Unmarshal(node, &preview); err != nil {
		t.Fatalf("unmarshal preview: %v", err)
	}
	if preview.Kind != nodeKindEnemy || preview.Enemies != 1 {
		t.Fatalf("preview = %+v", preview)
	}

	// Unreachable and off-map points carry no preview.
	node, err = game.Map().PeekUpcomingMovement(warrior, engine.Point{X: 2, Y: 2})
	if err != nil {
		t.Fatalf("PeekUpcomingMovement unreachable: %v", err)
	}
	if node != nil {
		t.Fatalf("preview = %s, want nil", node)
	}
}

func startFight(t *testing.T, game engine.Game) engine.Battle {
	t.Helper()
	warrior, deck := newTestSession(t, game)
	result, err := game.Map().MoveTo(warrior, deck, engine.Point{X: 0, Y: 1}, nil, game.Controller())
	if err != nil {
		t.Fatalf("MoveTo enemy: %v", err)
	}
	if result.Kind != engine.MoveKindFight {
		t.Fatalf("kind = %s, want %s", result.Kind, engine.MoveKindFight)
	}
	if result.Battle == nil {
		t.Fatal("fight result carries no battle")
	}
	return result.Battle
}

func TestBattleFlow(t *testing.T) {
	game := newTestGame(t, 1)
	battle := startFight(t, game)
	ctrl := game.Controller()

	report, err := battle.Start(ctrl)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if report.Outcome != engine.OutcomeContinue {
		t.Fatalf("outcome after start = %s", report.Outcome)
	}
	// battle_started plus three opening draws.
	if len(report.Logs) != 4 {
		t.Fatalf("start produced %d log entries, want 4", len(report.Logs))
	}

	if _, err := battle.Start(ctrl); err == nil {
		t.Fatal("second Start should fail")
	}

	legal, err := battle.PeekTarget(engine.Selection{Card: intp(0)})
	if err != nil {
		t.Fatalf("PeekTarget: %v", err)
	}
	if !legal {
		t.Fatal("hand card 0 should be a legal target")
	}
	legal, err = battle.PeekTarget(engine.Selection{Card: intp(9)})
	if err != nil {
		t.Fatalf("PeekTarget: %v", err)
	}
	if legal {
		t.Fatal("hand card 9 should not be a legal target")
	}

	// Strike (3) + warrior attack (2) = 5 against the 8 HP slime, then
	// the slime hits back for 3 - 1 defense = 2.
	report, err = battle.Run([]engine.IterationInput{
		{Kind: engine.IterationHandCardUse, Selection: &engine.Selection{Card: intp(0)}, Target: intp(0)},
		{Kind: engine.IterationEnemyTurn},
	}, ctrl)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Outcome != engine.OutcomeContinue {
		t.Fatalf("outcome = %s, want %s", report.Outcome, engine.OutcomeContinue)
	}

	// A second strike finishes the slime.
	report, err = battle.Run([]engine.IterationInput{
		{Kind: engine.IterationHandCardUse, Selection: &engine.Selection{Card: intp(0)}, Target: intp(0)},
	}, ctrl)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Outcome != engine.OutcomeVictory {
		t.Fatalf("outcome = %s, want %s", report.Outcome, engine.OutcomeVictory)
	}

	// A finished battle refuses further iterations.
	if _, err := battle.Run([]engine.IterationInput{{Kind: engine.IterationEnemyTurn}}, ctrl); err == nil {
		t.Fatal("Run after victory should fail")
	}

	warrior, deck, _, err := battle.Destroy()
	if err != nil {
		t.Fatalf("Destroy: %v", err)
	}

	var wp struct {
		HP int `json:"hp"`
	}
	if err := json.Unmarshal(warrior.Profile(), &wp); err != nil {
		t.Fatalf("unmarshal warrior profile: %v", err)
	}
	if wp.HP != 8 {
		t.Fatalf("warrior hp = %d, want 8", wp.HP)
	}

	// Played cards return to the deck on decomposition.
	var dp struct {
		Cards []json.RawMessage `json:"cards"`
	}
	if err := json.Unmarshal(deck.Profile(), &dp); err != nil {
		t.Fatalf("unmarshal deck profile: %v", err)
	}
	if len(dp.Cards) != 3 {
		t.Fatalf("deck has %d cards after battle, want 3", len(dp.Cards))
	}
}

func TestBattleRejectsUnsupportedIterations(t *testing.T) {
	game := newTestGame(t, 1)
	battle := startFight(t, game)
	ctrl := game.Controller()

	if _, err := battle.Run(nil, ctrl); err == nil {
		t.Fatal("Run before Start should fail")
	}
	if _, err := battle.Start(ctrl); err != nil {
		t.Fatalf("Start: %v", err)
	}

	ops := []engine.IterationInput{{Kind: engine.IterationItemUse, Selection: &engine.Selection{Card: intp(0)}}}
	if _, err := battle.Run(ops, ctrl); err == nil {
		t.Fatal("item use is not supported by the simulation")
	}

	ops = []engine.IterationInput{{Kind: engine.IterationHandCardUse, Selection: &engine.Selection{Card: intp(0)}, Target: intp(7)}}
	if _, err := battle.Run(ops, ctrl); err == nil {
		t.Fatal("out-of-range target should fail")
	}
}

func TestStandaloneBattleValidation(t *testing.T) {
	eng := New()

	warrior := `{"id":1,"max_hp":10,"hp":10,"attack":2,"defense":1}`
	deck := `{"cards":[{"id":1,"name":"strike","attack":3}]}`
	enemies := `[{"id":1,"name":"slime","hp":4,"attack":2}]`

	if _, err := eng.NewBattle([]byte(warrior), []byte(deck), []byte(enemies)); err != nil {
		t.Fatalf("NewBattle: %v", err)
	}
	if _, err := eng.NewBattle([]byte(`{"hp":0}`), []byte(deck), []byte(enemies)); err == nil {
		t.Fatal("warrior without hit points should fail")
	}
	if _, err := eng.NewBattle([]byte(warrior), []byte(deck), []byte(`[]`)); err == nil {
		t.Fatal("battle without enemies should fail")
	}
	if _, err := eng.NewBattle([]byte(warrior), []byte(`{`), []byte(enemies)); err == nil {
		t.Fatal("malformed deck should fail")
	}
}

// TestDeterminism replays the same pool and seed twice and expects
// byte-identical projections and battle logs.
func TestDeterminism(t *testing.T) {
	run := func() ([]byte, []byte) {
		game := newTestGame(t, 42)
		battle := startFight(t, game)
		ctrl := game.Controller()

		report, err := battle.Start(ctrl)
		if err != nil {
			t.Fatalf("Start: %v", err)
		}
		report2, err := battle.Run([]engine.IterationInput{{Kind: engine.IterationEnemyTurn}}, ctrl)
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
		logs, _ := json.Marshal(append(report.Logs, report2.Logs...))

		warrior, _, _, err := battle.Destroy()
		if err != nil {
			t.Fatalf("Destroy: %v", err)
		}
		return logs, warrior.Profile()
	}

	logsA, warriorA := run()
	logsB, warriorB := run()

	if !bytes.Equal(logsA, logsB) {
		t.Fatalf("battle logs diverged:\n%s\n%s", logsA, logsB)
	}
	if !bytes.Equal(warriorA, warriorB) {
		t.Fatalf("warrior profiles diverged:\n%s\n%s", warriorA, warriorB)
	}
}

func intp(v int) *int { return &v }
