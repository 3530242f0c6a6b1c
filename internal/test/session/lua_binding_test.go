//go:build scenario

package session

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/Shopify/go-lua"
)

const scenarioTypeName = "scenario"

// Scenario is an ordered script of host operations with inline
// expectations, loaded from a Lua file.
type Scenario struct {
	Name  string
	Steps []Step
}

// Step is one scripted host operation.
type Step struct {
	Kind string
	Args map[string]any
}

func loadScenarioFromFile(path string) (*Scenario, error) {
	state := lua.NewState()
	lua.OpenLibraries(state)

	registerScenarioType(state)
	registerScenarioConstructor(state)

	if err := lua.LoadFile(state, path, ""); err != nil {
		return nil, fmt.Errorf("load lua: %w", err)
	}
	if err := state.ProtectedCall(0, 1, 0); err != nil {
		return nil, fmt.Errorf("run lua: %w", err)
	}

	if state.TypeOf(-1) != lua.TypeUserData {
		state.Pop(1)
		return nil, fmt.Errorf("scenario script must return Scenario")
	}
	ud := state.ToUserData(-1)
	state.Pop(1)
	scenario, ok := ud.(*Scenario)
	if !ok || scenario == nil {
		return nil, fmt.Errorf("scenario script returned invalid Scenario")
	}
	if strings.TrimSpace(scenario.Name) == "" {
		scenario.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return scenario, nil
}

func registerScenarioType(state *lua.State) {
	lua.NewMetaTable(state, scenarioTypeName)
	state.NewTable()
	lua.SetFunctions(state, scenarioMethods, 0)
	state.SetField(-2, "__index")
	state.Pop(1)
}

func registerScenarioConstructor(state *lua.State) {
	state.NewTable()
	lua.SetFunctions(state, scenarioConstructor, 0)
	state.SetGlobal("Scenario")
}

var scenarioConstructor = []lua.RegistryFunction{
	{Name: "new", Function: scenarioNew},
}

func scenarioNew(state *lua.State) int {
	name := lua.OptString(state, 1, "")
	scenario := &Scenario{Name: name}
	state.PushUserData(scenario)
	lua.SetMetaTableNamed(state, scenarioTypeName)
	return 1
}

var scenarioMethods = []lua.RegistryFunction{
	{Name: "create_game", Function: tableStep("create_game")},
	{Name: "get_potion", Function: plainStep("get_potion")},
	{Name: "create_session", Function: tableStep("create_session")},
	{Name: "map_profile", Function: plainStep("map_profile")},
	{Name: "warrior_profile", Function: plainStep("warrior_profile")},
	{Name: "deck_profile", Function: plainStep("deck_profile")},
	{Name: "peek_movement", Function: tableStep("peek_movement")},
	{Name: "move", Function: tableStep("move")},
	{Name: "battle_pve", Function: plainStep("battle_pve")},
	{Name: "standalone_battle", Function: tableStep("standalone_battle")},
	{Name: "battle_start", Function: plainStep("battle_start")},
	{Name: "battle_iterate", Function: tableStep("battle_iterate")},
	{Name: "battle_peek_target", Function: tableStep("battle_peek_target")},
	{Name: "battle_destroy", Function: plainStep("battle_destroy")},
	{Name: "expect_phase", Function: stringStep("expect_phase", "phase")},
	{Name: "expect_kind", Function: stringStep("expect_kind", "kind")},
	{Name: "expect_outcome", Function: stringStep("expect_outcome", "outcome")},
}

// tableStep builds a method that records the step with its table
// argument. An optional expect_error key marks the step as expected to
// fail with that code.
func tableStep(kind string) lua.Function {
	return func(state *lua.State) int {
		scenario := checkScenario(state)
		data := optionalTable(state, 2)
		appendStep(scenario, kind, data)
		return 0
	}
}

// plainStep builds a method that records an argument-free step. The
// single optional string argument is an expected error code.
func plainStep(kind string) lua.Function {
	return func(state *lua.State) int {
		scenario := checkScenario(state)
		data := map[string]any{}
		if code := lua.OptString(state, 2, ""); code != "" {
			data["expect_error"] = code
		}
		appendStep(scenario, kind, data)
		return 0
	}
}

// stringStep builds a method that records its string argument under key.
func stringStep(kind, key string) lua.Function {
	return func(state *lua.State) int {
		scenario := checkScenario(state)
		value := lua.CheckString(state, 2)
		appendStep(scenario, kind, map[string]any{key: value})
		return 0
	}
}

func checkScenario(state *lua.State) *Scenario {
	ud := lua.CheckUserData(state, 1, scenarioTypeName)
	if scenario, ok := ud.(*Scenario); ok && scenario != nil {
		return scenario
	}
	lua.ArgumentError(state, 1, "scenario expected")
	return nil
}

func appendStep(scenario *Scenario, kind string, data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}
	scenario.Steps = append(scenario.Steps, Step{Kind: kind, Args: data})
}

func optionalTable(state *lua.State, index int) map[string]any {
	if state.IsNoneOrNil(index) || state.TypeOf(index) != lua.TypeTable {
		return map[string]any{}
	}
	return tableToMap(state, index)
}

func tableToMap(state *lua.State, index int) map[string]any {
	output := map[string]any{}
	if state.TypeOf(index) != lua.TypeTable {
		return output
	}

	index = state.AbsIndex(index)
	state.PushNil()
	for state.Next(index) {
		if state.TypeOf(-2) == lua.TypeString {
			key, _ := state.ToString(-2)
			output[key] = luaToGo(state, -1)
		}
		state.Pop(1)
	}
	return output
}

func luaToGo(state *lua.State, index int) any {
	switch state.TypeOf(index) {
	case lua.TypeString:
		value, _ := state.ToString(index)
		return value
	case lua.TypeNumber:
		value, _ := state.ToNumber(index)
		return normalizeNumber(value)
	case lua.TypeBoolean:
		return state.ToBoolean(index)
	case lua.TypeTable:
		return tableToGo(state, index)
	default:
		return nil
	}
}

func tableToGo(state *lua.State, index int) any {
	if state.TypeOf(index) != lua.TypeTable {
		return nil
	}

	index = state.AbsIndex(index)
	isArray := true
	maxIndex := 0
	count := 0
	state.PushNil()
	for state.Next(index) {
		if isArray {
			if state.TypeOf(-2) != lua.TypeNumber {
				isArray = false
			} else if idx, ok := state.ToInteger(-2); ok && idx > 0 {
				count++
				if idx > maxIndex {
					maxIndex = idx
				}
			} else {
				isArray = false
			}
		}
		state.Pop(1)
	}

	if isArray && count > 0 && maxIndex == count {
		result := make([]any, 0, maxIndex)
		for i := 1; i <= maxIndex; i++ {
			state.RawGetInt(index, i)
			result = append(result, luaToGo(state, -1))
			state.Pop(1)
		}
		return result
	}

	return tableToMap(state, index)
}

func normalizeNumber(value float64) any {
	if math.Mod(value, 1) == 0 {
		return int(value)
	}
	return value
}
