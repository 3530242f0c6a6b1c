package sim

import (
	"encoding/json"
	"fmt"

	"github.com/btckoguebike/spore-warriors-host/internal/engine"
)

// resourcePool is the decoded form of the serialized pool the host
// hands to NewGame.
type resourcePool struct {
	Potion   json.RawMessage `json:"potion,omitempty"`
	Warriors []warriorSpec   `json:"warriors"`
	Cards    []cardSpec      `json:"cards"`
	Enemies  []enemySpec     `json:"enemies"`
	Map      mapSpec         `json:"map"`
}

type warriorSpec struct {
	ID      uint16 `json:"id"`
	HP      int    `json:"hp"`
	Attack  int    `json:"attack"`
	Defense int    `json:"defense"`
	Deck    []int  `json:"deck"`
}

type cardSpec struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Attack int    `json:"attack"`
	Block  int    `json:"block"`
}

type enemySpec struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	HP     int    `json:"hp"`
	Attack int    `json:"attack"`
}

type mapSpec struct {
	Width  uint8      `json:"width"`
	Height uint8      `json:"height"`
	Nodes  []nodeSpec `json:"nodes"`
}

// Node kinds understood by the simulation map.
const (
	nodeKindStart    = "start"
	nodeKindBlank    = "blank"
	nodeKindTreasure = "treasure"
	nodeKindEnemy    = "enemy"
	nodeKindExit     = "exit"
)

type nodeSpec struct {
	X       uint8  `json:"x"`
	Y       uint8  `json:"y"`
	Kind    string `json:"kind"`
	Enemies []int  `json:"enemies,omitempty"`
	Loot    []int  `json:"loot,omitempty"`
}

func decodePool(raw []byte) (resourcePool, error) {
	var pool resourcePool
	if err := json.Unmarshal(raw, &pool); err != nil {
		return resourcePool{}, fmt.Errorf("decode resource pool: %w", err)
	}
	if len(pool.Warriors) == 0 {
		return resourcePool{}, fmt.Errorf("resource pool has no warriors")
	}
	if len(pool.Map.Nodes) == 0 {
		return resourcePool{}, fmt.Errorf("resource pool has no map nodes")
	}
	for _, node := range pool.Map.Nodes {
		if node.X >= pool.Map.Width || node.Y >= pool.Map.Height {
			return resourcePool{}, fmt.Errorf("map node (%d,%d) is outside the %dx%d grid",
				node.X, node.Y, pool.Map.Width, pool.Map.Height)
		}
		switch node.Kind {
		case nodeKindStart, nodeKindBlank, nodeKindTreasure, nodeKindEnemy, nodeKindExit:
		default:
			return resourcePool{}, fmt.Errorf("map node (%d,%d) has unknown kind %q", node.X, node.Y, node.Kind)
		}
	}
	return pool, nil
}

func (p resourcePool) card(id int) (cardSpec, error) {
	for _, c := range p.Cards {
		if c.ID == id {
			return c, nil
		}
	}
	return cardSpec{}, fmt.Errorf("card %d not found in resource pool", id)
}

func (p resourcePool) enemy(id int) (enemySpec, error) {
	for _, e := range p.Enemies {
		if e.ID == id {
			return e, nil
		}
	}
	return enemySpec{}, fmt.Errorf("enemy %d not found in resource pool", id)
}

func (p resourcePool) warrior(id uint16) (warriorSpec, error) {
	for _, w := range p.Warriors {
		if w.ID == id {
			return w, nil
		}
	}
	return warriorSpec{}, fmt.Errorf("warrior %d not found in resource pool", id)
}

func (m mapSpec) node(at engine.Point) (nodeSpec, bool) {
	for _, node := range m.Nodes {
		if node.X == at.X && node.Y == at.Y {
			return node, true
		}
	}
	return nodeSpec{}, false
}
