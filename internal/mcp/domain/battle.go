package domain

import (
	"context"
	"fmt"

	"github.com/btckoguebike/spore-warriors-host/internal/session/service"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// BattlePVEInput represents the MCP tool input for binding to the live
// battle.
type BattlePVEInput struct{}

// BattlePVEResult represents the MCP tool output for binding to the
// live battle.
type BattlePVEResult struct {
	Phase string `json:"phase" jsonschema:"session phase after the call"`
}

// BattlePVETool defines the MCP tool schema for binding to the live battle.
func BattlePVETool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "battle_pve",
		Description: "Binds to the battle triggered from the map. Never constructs one; fails when no battle is live.",
	}
}

// BattlePVEHandler executes a battle binding request.
func BattlePVEHandler(orch *service.Orchestrator, locale string) mcp.ToolHandlerFor[BattlePVEInput, BattlePVEResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ BattlePVEInput) (*mcp.CallToolResult, BattlePVEResult, error) {
		invocationID, err := NewInvocationID()
		if err != nil {
			return nil, BattlePVEResult{}, fmt.Errorf("generate invocation id: %w", err)
		}

		if _, err := orch.PVEBattle(ctx); err != nil {
			return nil, BattlePVEResult{}, HandleToolError("battle pve", err, locale)
		}

		result := BattlePVEResult{Phase: string(orch.Phase())}
		return CallToolResultWithMetadata(invocationID), result, nil
	}
}

// BattleStandaloneCreateInput represents the MCP tool input for
// creating a standalone battle.
type BattleStandaloneCreateInput struct {
	Warrior string `json:"warrior" jsonschema:"JSON-encoded warrior value"`
	Deck    string `json:"deck" jsonschema:"JSON-encoded warrior deck value"`
	Enemies string `json:"enemies" jsonschema:"JSON-encoded array of enemy values"`
}

// BattleStandaloneCreateResult represents the MCP tool output for
// creating a standalone battle.
type BattleStandaloneCreateResult struct {
	Phase string `json:"phase" jsonschema:"session phase after the call"`
}

// BattleStandaloneCreateTool defines the MCP tool schema for creating a
// standalone battle.
func BattleStandaloneCreateTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "battle_standalone_create",
		Description: "Constructs a battle directly from warrior, deck, and enemy values, bypassing map traversal.",
	}
}

// BattleStandaloneCreateHandler executes a standalone battle creation
// request.
func BattleStandaloneCreateHandler(orch *service.Orchestrator, locale string) mcp.ToolHandlerFor[BattleStandaloneCreateInput, BattleStandaloneCreateResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input BattleStandaloneCreateInput) (*mcp.CallToolResult, BattleStandaloneCreateResult, error) {
		invocationID, err := NewInvocationID()
		if err != nil {
			return nil, BattleStandaloneCreateResult{}, fmt.Errorf("generate invocation id: %w", err)
		}

		_, err = orch.CreateStandaloneBattle(ctx, []byte(input.Warrior), []byte(input.Deck), []byte(input.Enemies))
		if err != nil {
			return nil, BattleStandaloneCreateResult{}, HandleToolError("battle standalone create", err, locale)
		}

		result := BattleStandaloneCreateResult{Phase: string(orch.Phase())}
		return CallToolResultWithMetadata(invocationID), result, nil
	}
}

// BattleStartInput represents the MCP tool input for starting a battle.
type BattleStartInput struct{}

// BattleStartResult represents the MCP tool output for starting a battle.
type BattleStartResult struct {
	Outcome string   `json:"outcome" jsonschema:"battle outcome: continue, victory, or defeat"`
	Logs    []string `json:"logs" jsonschema:"JSON-encoded log entries produced by this call"`
}

// BattleStartTool defines the MCP tool schema for starting a battle.
func BattleStartTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "battle_start",
		Description: "Runs the live battle's opening phase and returns the outcome with its log entries.",
	}
}

// BattleStartHandler executes a battle start request.
func BattleStartHandler(orch *service.Orchestrator, locale string) mcp.ToolHandlerFor[BattleStartInput, BattleStartResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ BattleStartInput) (*mcp.CallToolResult, BattleStartResult, error) {
		invocationID, err := NewInvocationID()
		if err != nil {
			return nil, BattleStartResult{}, fmt.Errorf("generate invocation id: %w", err)
		}

		report, err := orch.StartBattle(ctx)
		if err != nil {
			return nil, BattleStartResult{}, HandleToolError("battle start", err, locale)
		}

		return CallToolResultWithMetadata(invocationID), battleReportResult(report), nil
	}
}

// BattleIterateInput represents the MCP tool input for advancing a
// battle.
type BattleIterateInput struct {
	Operations string `json:"operations" jsonschema:"JSON-encoded array of iteration inputs"`
}

// BattleIterateTool defines the MCP tool schema for advancing a battle.
func BattleIterateTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "battle_iterate",
		Description: "Advances the live battle by exactly the supplied ordered iteration inputs.",
	}
}

// BattleIterateHandler executes a battle iteration request.
func BattleIterateHandler(orch *service.Orchestrator, locale string) mcp.ToolHandlerFor[BattleIterateInput, BattleStartResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input BattleIterateInput) (*mcp.CallToolResult, BattleStartResult, error) {
		invocationID, err := NewInvocationID()
		if err != nil {
			return nil, BattleStartResult{}, fmt.Errorf("generate invocation id: %w", err)
		}

		report, err := orch.IterateBattle(ctx, []byte(input.Operations))
		if err != nil {
			return nil, BattleStartResult{}, HandleToolError("battle iterate", err, locale)
		}

		return CallToolResultWithMetadata(invocationID), battleReportResult(report), nil
	}
}

// BattlePeekTargetInput represents the MCP tool input for checking a
// target selection.
type BattlePeekTargetInput struct {
	Selection string `json:"selection" jsonschema:"JSON-encoded card selection"`
}

// BattlePeekTargetResult represents the MCP tool output for checking a
// target selection.
type BattlePeekTargetResult struct {
	Legal bool `json:"legal" jsonschema:"whether the selection is currently a legal target"`
}

// BattlePeekTargetTool defines the MCP tool schema for checking a
// target selection.
func BattlePeekTargetTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "battle_peek_target",
		Description: "Checks whether a card selection is currently a legal target. Pure query.",
	}
}

// BattlePeekTargetHandler executes a target check request.
func BattlePeekTargetHandler(orch *service.Orchestrator, locale string) mcp.ToolHandlerFor[BattlePeekTargetInput, BattlePeekTargetResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input BattlePeekTargetInput) (*mcp.CallToolResult, BattlePeekTargetResult, error) {
		invocationID, err := NewInvocationID()
		if err != nil {
			return nil, BattlePeekTargetResult{}, fmt.Errorf("generate invocation id: %w", err)
		}

		legal, err := orch.PeekBattleTarget(ctx, []byte(input.Selection))
		if err != nil {
			return nil, BattlePeekTargetResult{}, HandleToolError("battle peek target", err, locale)
		}

		result := BattlePeekTargetResult{Legal: legal}
		return CallToolResultWithMetadata(invocationID), result, nil
	}
}

// BattleDestroyInput represents the MCP tool input for destroying the
// battle.
type BattleDestroyInput struct{}

// BattleDestroyResult represents the MCP tool output for destroying the
// battle.
type BattleDestroyResult struct {
	Phase string `json:"phase" jsonschema:"session phase after the call"`
}

// BattleDestroyTool defines the MCP tool schema for destroying the battle.
func BattleDestroyTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "battle_destroy",
		Description: "Destroys the live battle and returns the warrior and deck to the map phase.",
	}
}

// BattleDestroyHandler executes a battle destruction request.
func BattleDestroyHandler(orch *service.Orchestrator, locale string) mcp.ToolHandlerFor[BattleDestroyInput, BattleDestroyResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ BattleDestroyInput) (*mcp.CallToolResult, BattleDestroyResult, error) {
		invocationID, err := NewInvocationID()
		if err != nil {
			return nil, BattleDestroyResult{}, fmt.Errorf("generate invocation id: %w", err)
		}

		if err := orch.DestroyBattle(ctx); err != nil {
			return nil, BattleDestroyResult{}, HandleToolError("battle destroy", err, locale)
		}

		result := BattleDestroyResult{Phase: string(orch.Phase())}
		return CallToolResultWithMetadata(invocationID), result, nil
	}
}
