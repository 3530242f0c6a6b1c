package domain

import (
	"context"
	"fmt"

	"github.com/btckoguebike/spore-warriors-host/internal/engine"
	"github.com/btckoguebike/spore-warriors-host/internal/session/service"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// MapProfileInput represents the MCP tool input for the map projection.
type MapProfileInput struct{}

// MapProfileResult represents the MCP tool output for the map projection.
type MapProfileResult struct {
	Profile string `json:"profile" jsonschema:"JSON-encoded map projection"`
}

// MapProfileTool defines the MCP tool schema for the map projection.
func MapProfileTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "map_profile",
		Description: "Reads the serialized map projection. Fails when no game exists.",
	}
}

// MapProfileHandler executes a map projection request.
func MapProfileHandler(orch *service.Orchestrator, locale string) mcp.ToolHandlerFor[MapProfileInput, MapProfileResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ MapProfileInput) (*mcp.CallToolResult, MapProfileResult, error) {
		invocationID, err := NewInvocationID()
		if err != nil {
			return nil, MapProfileResult{}, fmt.Errorf("generate invocation id: %w", err)
		}

		profile, err := orch.MapProfile(ctx)
		if err != nil {
			return nil, MapProfileResult{}, HandleToolError("map profile", err, locale)
		}

		result := MapProfileResult{Profile: string(profile)}
		return CallToolResultWithMetadata(invocationID), result, nil
	}
}

// WarriorProfileInput represents the MCP tool input for the warrior
// projection.
type WarriorProfileInput struct{}

// WarriorProfileResult represents the MCP tool output for the warrior
// projection.
type WarriorProfileResult struct {
	Profile string `json:"profile" jsonschema:"JSON-encoded warrior projection"`
}

// WarriorProfileTool defines the MCP tool schema for the warrior projection.
func WarriorProfileTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "warrior_profile",
		Description: "Reads the serialized warrior projection. Fails outside the map phase.",
	}
}

// WarriorProfileHandler executes a warrior projection request.
func WarriorProfileHandler(orch *service.Orchestrator, locale string) mcp.ToolHandlerFor[WarriorProfileInput, WarriorProfileResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ WarriorProfileInput) (*mcp.CallToolResult, WarriorProfileResult, error) {
		invocationID, err := NewInvocationID()
		if err != nil {
			return nil, WarriorProfileResult{}, fmt.Errorf("generate invocation id: %w", err)
		}

		profile, err := orch.WarriorProfile(ctx)
		if err != nil {
			return nil, WarriorProfileResult{}, HandleToolError("warrior profile", err, locale)
		}

		result := WarriorProfileResult{Profile: string(profile)}
		return CallToolResultWithMetadata(invocationID), result, nil
	}
}

// WarriorDeckProfileInput represents the MCP tool input for the deck
// projection.
type WarriorDeckProfileInput struct{}

// WarriorDeckProfileResult represents the MCP tool output for the deck
// projection.
type WarriorDeckProfileResult struct {
	Profile string `json:"profile" jsonschema:"JSON-encoded warrior deck projection"`
}

// WarriorDeckProfileTool defines the MCP tool schema for the deck projection.
func WarriorDeckProfileTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "warrior_deck_profile",
		Description: "Reads the serialized warrior deck projection. Fails outside the map phase.",
	}
}

// WarriorDeckProfileHandler executes a deck projection request.
func WarriorDeckProfileHandler(orch *service.Orchestrator, locale string) mcp.ToolHandlerFor[WarriorDeckProfileInput, WarriorDeckProfileResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ WarriorDeckProfileInput) (*mcp.CallToolResult, WarriorDeckProfileResult, error) {
		invocationID, err := NewInvocationID()
		if err != nil {
			return nil, WarriorDeckProfileResult{}, fmt.Errorf("generate invocation id: %w", err)
		}

		profile, err := orch.WarriorDeckProfile(ctx)
		if err != nil {
			return nil, WarriorDeckProfileResult{}, HandleToolError("warrior deck profile", err, locale)
		}

		result := WarriorDeckProfileResult{Profile: string(profile)}
		return CallToolResultWithMetadata(invocationID), result, nil
	}
}

// MovementPeekInput represents the MCP tool input for previewing a
// movement.
type MovementPeekInput struct {
	X uint8 `json:"x" jsonschema:"target point x coordinate"`
	Y uint8 `json:"y" jsonschema:"target point y coordinate"`
}

// MovementPeekResult represents the MCP tool output for previewing a
// movement.
type MovementPeekResult struct {
	Applies bool   `json:"applies" jsonschema:"whether a preview applies at the point"`
	Node    string `json:"node,omitempty" jsonschema:"JSON-encoded movement node when a preview applies"`
}

// MovementPeekTool defines the MCP tool schema for previewing a movement.
func MovementPeekTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "movement_peek",
		Description: "Previews the movement outcome at a point without committing it.",
	}
}

// MovementPeekHandler executes a movement preview request.
func MovementPeekHandler(orch *service.Orchestrator, locale string) mcp.ToolHandlerFor[MovementPeekInput, MovementPeekResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input MovementPeekInput) (*mcp.CallToolResult, MovementPeekResult, error) {
		invocationID, err := NewInvocationID()
		if err != nil {
			return nil, MovementPeekResult{}, fmt.Errorf("generate invocation id: %w", err)
		}

		node, err := orch.PeekMovement(ctx, engine.Point{X: input.X, Y: input.Y})
		if err != nil {
			return nil, MovementPeekResult{}, HandleToolError("movement peek", err, locale)
		}

		result := MovementPeekResult{Applies: node != nil, Node: string(node)}
		return CallToolResultWithMetadata(invocationID), result, nil
	}
}

// PlayerMoveInput represents the MCP tool input for committing a
// movement.
type PlayerMoveInput struct {
	X          uint8 `json:"x" jsonschema:"target point x coordinate"`
	Y          uint8 `json:"y" jsonschema:"target point y coordinate"`
	Selections []int `json:"selections,omitempty" jsonschema:"ordered indices disambiguating encounter choices"`
}

// PlayerMoveResult represents the MCP tool output for committing a
// movement.
type PlayerMoveResult struct {
	Kind   string `json:"kind" jsonschema:"movement outcome: moved, treasure, fight, or complete"`
	Detail string `json:"detail,omitempty" jsonschema:"JSON-encoded outcome detail"`
	Phase  string `json:"phase" jsonschema:"session phase after the call"`
}

// PlayerMoveTool defines the MCP tool schema for committing a movement.
func PlayerMoveTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "player_move",
		Description: "Commits a movement for the current warrior. A fight outcome transitions the session into battle phase.",
	}
}

// PlayerMoveHandler executes a movement request.
func PlayerMoveHandler(orch *service.Orchestrator, locale string) mcp.ToolHandlerFor[PlayerMoveInput, PlayerMoveResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input PlayerMoveInput) (*mcp.CallToolResult, PlayerMoveResult, error) {
		invocationID, err := NewInvocationID()
		if err != nil {
			return nil, PlayerMoveResult{}, fmt.Errorf("generate invocation id: %w", err)
		}

		moveResult, err := orch.MovePlayer(ctx, engine.Point{X: input.X, Y: input.Y}, input.Selections)
		if err != nil {
			return nil, PlayerMoveResult{}, HandleToolError("player move", err, locale)
		}

		result := PlayerMoveResult{
			Kind:   string(moveResult.Kind),
			Detail: string(moveResult.Detail),
			Phase:  string(orch.Phase()),
		}
		return CallToolResultWithMetadata(invocationID), result, nil
	}
}
