package service

import (
	"context"

	"github.com/btckoguebike/spore-warriors-host/internal/engine"
)

// BattleHandle references the live battle through its orchestrator. It
// carries no state of its own: every call revalidates that a battle is
// still installed, so a handle held across DestroyBattle simply fails
// with NO_BATTLE.
type BattleHandle struct {
	orchestrator *Orchestrator
}

// Start runs the battle's opening phase.
func (h *BattleHandle) Start(ctx context.Context) (engine.BattleReport, error) {
	return h.orchestrator.StartBattle(ctx)
}

// Iterate advances the battle by the decoded operations.
func (h *BattleHandle) Iterate(ctx context.Context, rawOperations []byte) (engine.BattleReport, error) {
	return h.orchestrator.IterateBattle(ctx, rawOperations)
}

// PeekTarget reports whether the decoded selection is a legal target.
func (h *BattleHandle) PeekTarget(ctx context.Context, rawSelection []byte) (bool, error) {
	return h.orchestrator.PeekBattleTarget(ctx, rawSelection)
}

// Destroy tears the battle down and returns the warrior pair to the
// map phase.
func (h *BattleHandle) Destroy(ctx context.Context) error {
	return h.orchestrator.DestroyBattle(ctx)
}
