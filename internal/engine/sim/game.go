package sim

import (
	"encoding/json"
	"fmt"
	"math/rand"

	"github.com/btckoguebike/spore-warriors-host/internal/engine"
)

// Engine implements the engine contract with the built-in simulation.
type Engine struct{}

// New returns the simulation engine.
func New() *Engine {
	return &Engine{}
}

// NewGame decodes the resource pool and seeds the game's randomness.
func (*Engine) NewGame(resourcePool []byte, seed uint64) (engine.Game, error) {
	pool, err := decodePool(resourcePool)
	if err != nil {
		return nil, err
	}

	game := &Game{
		pool: pool,
		ctrl: &Controller{rng: rand.New(rand.NewSource(int64(seed)))},
	}
	game.gameMap = &Map{game: game}
	return game, nil
}

// NewBattle builds a standalone battle from serialized warrior, deck,
// and enemy values.
func (*Engine) NewBattle(rawWarrior, rawDeck, rawEnemies []byte) (engine.Battle, error) {
	var warrior Warrior
	if err := json.Unmarshal(rawWarrior, &warrior); err != nil {
		return nil, fmt.Errorf("decode warrior: %w", err)
	}
	if warrior.HP <= 0 {
		return nil, fmt.Errorf("warrior has no hit points")
	}

	var deck Deck
	if err := json.Unmarshal(rawDeck, &deck); err != nil {
		return nil, fmt.Errorf("decode warrior deck: %w", err)
	}

	var enemies []enemySpec
	if err := json.Unmarshal(rawEnemies, &enemies); err != nil {
		return nil, fmt.Errorf("decode enemies: %w", err)
	}
	if len(enemies) == 0 {
		return nil, fmt.Errorf("battle requires at least one enemy")
	}

	return newBattle(&warrior, &deck, enemies), nil
}

// Game is the root simulation session object.
type Game struct {
	pool    resourcePool
	ctrl    *Controller
	gameMap *Map
}

// Potion returns the pool's potion payload, or nil when absent.
func (g *Game) Potion() json.RawMessage {
	return g.pool.Potion
}

// Map returns the traversal surface.
func (g *Game) Map() engine.Map {
	return g.gameMap
}

// Controller returns the engine-owned coordination object.
func (g *Game) Controller() engine.Controller {
	return g.ctrl
}

// NewSession materializes the warrior and a seeded-shuffle deck for
// playerID at the given starting point.
func (g *Game) NewSession(playerID uint16, at engine.Point, rawPotion []byte) (engine.WarriorContext, engine.WarriorDeckContext, error) {
	spec, err := g.pool.warrior(playerID)
	if err != nil {
		return nil, nil, err
	}

	node, ok := g.pool.Map.node(at)
	if !ok {
		return nil, nil, fmt.Errorf("point (%d,%d) is not on the map", at.X, at.Y)
	}
	if node.Kind != nodeKindStart {
		return nil, nil, fmt.Errorf("point (%d,%d) is not a starting node", at.X, at.Y)
	}

	warrior := &Warrior{
		ID:       spec.ID,
		MaxHP:    spec.HP,
		HP:       spec.HP,
		Attack:   spec.Attack,
		Defense:  spec.Defense,
		Position: at,
	}

	if len(rawPotion) > 0 {
		var potion struct {
			HP int `json:"hp"`
		}
		if err := json.Unmarshal(rawPotion, &potion); err != nil {
			return nil, nil, fmt.Errorf("decode potion: %w", err)
		}
		warrior.MaxHP += potion.HP
		warrior.HP += potion.HP
	}

	cards := make([]cardSpec, 0, len(spec.Deck))
	for _, id := range spec.Deck {
		card, err := g.pool.card(id)
		if err != nil {
			return nil, nil, err
		}
		cards = append(cards, card)
	}
	g.ctrl.rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})

	return warrior, &Deck{Cards: cards}, nil
}

// Controller sequences simulation effects across movement and battle
// calls. It owns the game's only randomness source.
type Controller struct {
	rng  *rand.Rand
	turn int
}

// Warrior is the simulation's combat-facing player state.
type Warrior struct {
	ID       uint16       `json:"id"`
	MaxHP    int          `json:"max_hp"`
	HP       int          `json:"hp"`
	Attack   int          `json:"attack"`
	Defense  int          `json:"defense"`
	Position engine.Point `json:"position"`
}

// Profile returns the serialized warrior projection.
func (w *Warrior) Profile() json.RawMessage {
	raw, err := json.Marshal(w)
	if err != nil {
		return nil
	}
	return raw
}

// Deck is the warrior's card pile.
type Deck struct {
	Cards []cardSpec `json:"cards"`
}

// Profile returns the serialized deck projection.
func (d *Deck) Profile() json.RawMessage {
	raw, err := json.Marshal(d)
	if err != nil {
		return nil
	}
	return raw
}

// Map resolves traversal over the pool's node grid.
type Map struct {
	game *Game
}

// Profile returns the serialized map projection.
func (m *Map) Profile() json.RawMessage {
	raw, err := json.Marshal(m.game.pool.Map)
	if err != nil {
		return nil
	}
	return raw
}

// PeekUpcomingMovement previews the node at the given point without
// committing anything. Unreachable points yield no preview.
func (m *Map) PeekUpcomingMovement(warrior engine.WarriorContext, at engine.Point) (json.RawMessage, error) {
	w, err := simWarrior(warrior)
	if err != nil {
		return nil, err
	}
	if !reachable(w.Position, at) {
		return nil, nil
	}
	node, ok := m.game.pool.Map.node(at)
	if !ok {
		return nil, nil
	}

	preview := struct {
		X       uint8  `json:"x"`
		Y       uint8  `json:"y"`
		Kind    string `json:"kind"`
		Enemies int    `json:"enemies,omitempty"`
	}{X: node.X, Y: node.Y, Kind: node.Kind, Enemies: len(node.Enemies)}
	return json.Marshal(preview)
}

// MoveTo commits a movement and resolves the destination node.
func (m *Map) MoveTo(warrior engine.WarriorContext, deck engine.WarriorDeckContext, at engine.Point, selections []int, ctrl engine.Controller) (engine.MoveResult, error) {
	w, err := simWarrior(warrior)
	if err != nil {
		return engine.MoveResult{}, err
	}
	d, ok := deck.(*Deck)
	if !ok {
		return engine.MoveResult{}, fmt.Errorf("deck context does not belong to the simulation engine")
	}
	c, ok := ctrl.(*Controller)
	if !ok {
		return engine.MoveResult{}, fmt.Errorf("controller does not belong to the simulation engine")
	}

	if !reachable(w.Position, at) {
		return engine.MoveResult{}, fmt.Errorf("point (%d,%d) is not reachable from (%d,%d)",
			at.X, at.Y, w.Position.X, w.Position.Y)
	}
	node, ok := m.game.pool.Map.node(at)
	if !ok {
		return engine.MoveResult{}, fmt.Errorf("point (%d,%d) is not on the map", at.X, at.Y)
	}

	w.Position = at
	c.turn++

	switch node.Kind {
	case nodeKindStart, nodeKindBlank:
		detail, _ := json.Marshal(map[string]any{"x": at.X, "y": at.Y})
		return engine.MoveResult{Kind: engine.MoveKindMoved, Detail: detail}, nil

	case nodeKindTreasure:
		return m.resolveTreasure(node, d, selections)

	case nodeKindEnemy:
		enemies := make([]enemySpec, 0, len(node.Enemies))
		for _, id := range node.Enemies {
			spec, err := m.game.pool.enemy(id)
			if err != nil {
				return engine.MoveResult{}, err
			}
			enemies = append(enemies, spec)
		}
		detail, _ := json.Marshal(map[string]any{"enemies": len(enemies)})
		return engine.MoveResult{
			Kind:   engine.MoveKindFight,
			Detail: detail,
			Battle: newBattle(w, d, enemies),
		}, nil

	case nodeKindExit:
		detail, _ := json.Marshal(map[string]any{"turns": c.turn})
		return engine.MoveResult{Kind: engine.MoveKindComplete, Detail: detail}, nil
	}

	return engine.MoveResult{}, fmt.Errorf("map node (%d,%d) has unknown kind %q", at.X, at.Y, node.Kind)
}

// resolveTreasure adds the selected loot card to the deck. Selections
// index into the node's loot list; with no selection the first card is
// taken.
func (m *Map) resolveTreasure(node nodeSpec, deck *Deck, selections []int) (engine.MoveResult, error) {
	if len(node.Loot) == 0 {
		detail, _ := json.Marshal(map[string]any{"cards": []int{}})
		return engine.MoveResult{Kind: engine.MoveKindTreasure, Detail: detail}, nil
	}

	pick := 0
	if len(selections) > 0 {
		pick = selections[0]
	}
	if pick < 0 || pick >= len(node.Loot) {
		return engine.MoveResult{}, fmt.Errorf("loot selection %d is out of range", pick)
	}

	card, err := m.game.pool.card(node.Loot[pick])
	if err != nil {
		return engine.MoveResult{}, err
	}
	deck.Cards = append(deck.Cards, card)

	detail, _ := json.Marshal(map[string]any{"cards": []int{card.ID}})
	return engine.MoveResult{Kind: engine.MoveKindTreasure, Detail: detail}, nil
}

func simWarrior(warrior engine.WarriorContext) (*Warrior, error) {
	w, ok := warrior.(*Warrior)
	if !ok {
		return nil, fmt.Errorf("warrior context does not belong to the simulation engine")
	}
	return w, nil
}

// reachable allows staying put or stepping to an orthogonal neighbor.
func reachable(from, to engine.Point) bool {
	dx := int(from.X) - int(to.X)
	dy := int(from.Y) - int(to.Y)
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx+dy <= 1
}
