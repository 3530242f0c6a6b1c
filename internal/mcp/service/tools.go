package service

import (
	"github.com/btckoguebike/spore-warriors-host/internal/mcp/domain"
	"github.com/btckoguebike/spore-warriors-host/internal/session/service"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerSessionTools(mcpServer *mcp.Server, orch *service.Orchestrator, locale string) {
	mcp.AddTool(mcpServer, domain.GameCreateTool(), domain.GameCreateHandler(orch, locale))
	mcp.AddTool(mcpServer, domain.GamePotionTool(), domain.GamePotionHandler(orch, locale))
	mcp.AddTool(mcpServer, domain.SessionCreateTool(), domain.SessionCreateHandler(orch, locale))
	mcp.AddTool(mcpServer, domain.MapProfileTool(), domain.MapProfileHandler(orch, locale))
	mcp.AddTool(mcpServer, domain.WarriorProfileTool(), domain.WarriorProfileHandler(orch, locale))
	mcp.AddTool(mcpServer, domain.WarriorDeckProfileTool(), domain.WarriorDeckProfileHandler(orch, locale))
	mcp.AddTool(mcpServer, domain.MovementPeekTool(), domain.MovementPeekHandler(orch, locale))
	mcp.AddTool(mcpServer, domain.PlayerMoveTool(), domain.PlayerMoveHandler(orch, locale))
}

func registerBattleTools(mcpServer *mcp.Server, orch *service.Orchestrator, locale string) {
	mcp.AddTool(mcpServer, domain.BattlePVETool(), domain.BattlePVEHandler(orch, locale))
	mcp.AddTool(mcpServer, domain.BattleStandaloneCreateTool(), domain.BattleStandaloneCreateHandler(orch, locale))
	mcp.AddTool(mcpServer, domain.BattleStartTool(), domain.BattleStartHandler(orch, locale))
	mcp.AddTool(mcpServer, domain.BattleIterateTool(), domain.BattleIterateHandler(orch, locale))
	mcp.AddTool(mcpServer, domain.BattlePeekTargetTool(), domain.BattlePeekTargetHandler(orch, locale))
	mcp.AddTool(mcpServer, domain.BattleDestroyTool(), domain.BattleDestroyHandler(orch, locale))
}
