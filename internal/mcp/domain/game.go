package domain

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/btckoguebike/spore-warriors-host/internal/engine"
	"github.com/btckoguebike/spore-warriors-host/internal/random"
	"github.com/btckoguebike/spore-warriors-host/internal/session/service"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// GameCreateInput represents the MCP tool input for creating the game.
type GameCreateInput struct {
	ResourcePool string `json:"resource_pool" jsonschema:"base64-encoded resource pool"`
	Seed         uint64 `json:"seed,omitempty" jsonschema:"seed for the engine's internal randomness; omit or pass 0 to let the host mint one"`
}

// GameCreateResult represents the MCP tool output for creating the game.
type GameCreateResult struct {
	Phase string `json:"phase" jsonschema:"session phase after the call"`
	Seed  uint64 `json:"seed" jsonschema:"seed the game was created with, for reproducing runs"`
}

// GameCreateTool defines the MCP tool schema for creating the game.
func GameCreateTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "game_create",
		Description: "Creates the process-wide game from a resource pool and seed. Fails if a game already exists.",
	}
}

// GameCreateHandler executes a game creation request.
func GameCreateHandler(orch *service.Orchestrator, locale string) mcp.ToolHandlerFor[GameCreateInput, GameCreateResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GameCreateInput) (*mcp.CallToolResult, GameCreateResult, error) {
		invocationID, err := NewInvocationID()
		if err != nil {
			return nil, GameCreateResult{}, fmt.Errorf("generate invocation id: %w", err)
		}

		pool, err := base64.StdEncoding.DecodeString(input.ResourcePool)
		if err != nil {
			return nil, GameCreateResult{}, fmt.Errorf("decode resource pool: %w", err)
		}

		seed := input.Seed
		if seed == 0 {
			seed, err = random.NewSeed()
			if err != nil {
				return nil, GameCreateResult{}, fmt.Errorf("generate seed: %w", err)
			}
		}

		if err := orch.CreateGame(ctx, pool, seed); err != nil {
			return nil, GameCreateResult{}, HandleToolError("game create", err, locale)
		}

		result := GameCreateResult{Phase: string(orch.Phase()), Seed: seed}
		return CallToolResultWithMetadata(invocationID), result, nil
	}
}

// GamePotionInput represents the MCP tool input for reading the potion.
type GamePotionInput struct{}

// GamePotionResult represents the MCP tool output for reading the potion.
type GamePotionResult struct {
	Potion string `json:"potion,omitempty" jsonschema:"JSON-encoded potion value, empty when the game has none"`
}

// GamePotionTool defines the MCP tool schema for reading the potion.
func GamePotionTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "game_potion",
		Description: "Reads the game's optional potion. Fails when no game exists.",
	}
}

// GamePotionHandler executes a potion read request.
func GamePotionHandler(orch *service.Orchestrator, locale string) mcp.ToolHandlerFor[GamePotionInput, GamePotionResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ GamePotionInput) (*mcp.CallToolResult, GamePotionResult, error) {
		invocationID, err := NewInvocationID()
		if err != nil {
			return nil, GamePotionResult{}, fmt.Errorf("generate invocation id: %w", err)
		}

		potion, err := orch.Potion(ctx)
		if err != nil {
			return nil, GamePotionResult{}, HandleToolError("game potion", err, locale)
		}

		result := GamePotionResult{Potion: string(potion)}
		return CallToolResultWithMetadata(invocationID), result, nil
	}
}

// SessionCreateInput represents the MCP tool input for creating a map
// session.
type SessionCreateInput struct {
	PlayerID uint16 `json:"player_id" jsonschema:"warrior definition identifier"`
	X        uint8  `json:"x" jsonschema:"starting point x coordinate"`
	Y        uint8  `json:"y" jsonschema:"starting point y coordinate"`
	Potion   string `json:"potion,omitempty" jsonschema:"optional base64-encoded potion to consume"`
}

// SessionCreateResult represents the MCP tool output for creating a map
// session.
type SessionCreateResult struct {
	Phase string `json:"phase" jsonschema:"session phase after the call"`
}

// SessionCreateTool defines the MCP tool schema for creating a map session.
func SessionCreateTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "session_create",
		Description: "Materializes the warrior and deck for a player at a starting point. Fails when a session or battle is already active.",
	}
}

// SessionCreateHandler executes a session creation request.
func SessionCreateHandler(orch *service.Orchestrator, locale string) mcp.ToolHandlerFor[SessionCreateInput, SessionCreateResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SessionCreateInput) (*mcp.CallToolResult, SessionCreateResult, error) {
		invocationID, err := NewInvocationID()
		if err != nil {
			return nil, SessionCreateResult{}, fmt.Errorf("generate invocation id: %w", err)
		}

		var potion []byte
		if input.Potion != "" {
			potion, err = base64.StdEncoding.DecodeString(input.Potion)
			if err != nil {
				return nil, SessionCreateResult{}, fmt.Errorf("decode potion: %w", err)
			}
		}

		at := engine.Point{X: input.X, Y: input.Y}
		if err := orch.CreateSession(ctx, input.PlayerID, at, potion); err != nil {
			return nil, SessionCreateResult{}, HandleToolError("session create", err, locale)
		}

		result := SessionCreateResult{Phase: string(orch.Phase())}
		return CallToolResultWithMetadata(invocationID), result, nil
	}
}
