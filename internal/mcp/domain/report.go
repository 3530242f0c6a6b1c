package domain

import "github.com/btckoguebike/spore-warriors-host/internal/engine"

// battleReportResult flattens an engine battle report into the shared
// tool output shape used by battle_start and battle_iterate.
func battleReportResult(report engine.BattleReport) BattleStartResult {
	logs := make([]string, 0, len(report.Logs))
	for _, entry := range report.Logs {
		logs = append(logs, string(entry))
	}
	return BattleStartResult{Outcome: string(report.Outcome), Logs: logs}
}
