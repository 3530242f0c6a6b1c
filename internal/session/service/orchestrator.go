package service

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/btckoguebike/spore-warriors-host/internal/engine"
	"github.com/btckoguebike/spore-warriors-host/internal/platform/errors"
	"github.com/btckoguebike/spore-warriors-host/internal/session/domain"
	"go.opentelemetry.io/otel"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "session"

// Orchestrator owns the authoritative session state. Construct one per
// process (or per test) with New; all operations serialize on its lock.
type Orchestrator struct {
	engine engine.Engine
	tracer trace.Tracer

	mu    sync.Mutex
	game  engine.Game
	state domain.Variant
}

// New creates an Orchestrator backed by the given engine.
func New(eng engine.Engine) *Orchestrator {
	return &Orchestrator{
		engine: eng,
		tracer: otel.Tracer(tracerName),
		state:  domain.Idle{},
	}
}

// Phase reports the current session phase. Read-only, for host status
// surfaces and tests.
func (o *Orchestrator) Phase() domain.Phase {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state.Phase()
}

// CreateGame constructs the game from a serialized resource pool and a
// seed. The game singleton is created at most once per process.
func (o *Orchestrator) CreateGame(ctx context.Context, resourcePool []byte, seed uint64) error {
	_, span := o.tracer.Start(ctx, "session.create_game")
	defer span.End()

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.engine == nil {
		return record(span, errors.New(errors.CodeEngineFailure, "engine is not configured"))
	}
	if o.game != nil {
		return record(span, errors.WithMetadata(errors.CodeAlreadyInitialized,
			"game instance has already been initialized",
			map[string]string{"entity": "game"}))
	}

	game, err := o.engine.NewGame(resourcePool, seed)
	if err != nil {
		return record(span, errors.Wrap(errors.CodeEngineFailure, err.Error(), err))
	}

	o.game = game
	return nil
}

// Potion returns the game's potion payload, or nil when the game
// carries none.
func (o *Orchestrator) Potion(ctx context.Context) (json.RawMessage, error) {
	_, span := o.tracer.Start(ctx, "session.get_potion")
	defer span.End()

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.game == nil {
		return nil, record(span, errUninitializedGame())
	}
	return o.game.Potion(), nil
}

// CreateSession materializes the warrior/deck pair for playerID at the
// given starting point. An empty rawPotion means no potion is consumed.
func (o *Orchestrator) CreateSession(ctx context.Context, playerID uint16, at engine.Point, rawPotion []byte) error {
	_, span := o.tracer.Start(ctx, "session.create_session")
	defer span.End()

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.game == nil {
		return record(span, errUninitializedGame())
	}
	switch o.state.(type) {
	case domain.MapPhase:
		return record(span, errors.WithMetadata(errors.CodeConflict,
			"warrior or deck have already been initialized",
			map[string]string{"entity": "warrior"}))
	case domain.BattlePhase:
		return record(span, errors.New(errors.CodeConflict, "battle in progress"))
	}

	if len(rawPotion) == 0 {
		rawPotion = nil
	}
	warrior, deck, err := o.game.NewSession(playerID, at, rawPotion)
	if err != nil {
		return record(span, errors.Wrap(errors.CodeEngineFailure, err.Error(), err))
	}

	// Single assignment installs both or neither.
	o.state = domain.MapPhase{Warrior: warrior, Deck: deck}
	return nil
}

// MapProfile returns the serialized map projection.
func (o *Orchestrator) MapProfile(ctx context.Context) (json.RawMessage, error) {
	_, span := o.tracer.Start(ctx, "session.get_map_profile")
	defer span.End()

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.game == nil {
		return nil, record(span, errUninitializedGame())
	}
	return o.game.Map().Profile(), nil
}

// WarriorProfile returns the serialized warrior projection. The warrior
// is absent during a battle; the projection is only readable in map
// phase.
func (o *Orchestrator) WarriorProfile(ctx context.Context) (json.RawMessage, error) {
	_, span := o.tracer.Start(ctx, "session.get_warrior_profile")
	defer span.End()

	o.mu.Lock()
	defer o.mu.Unlock()

	st, err := o.mapPhase()
	if err != nil {
		return nil, record(span, err)
	}
	return st.Warrior.Profile(), nil
}

// WarriorDeckProfile returns the serialized deck projection.
func (o *Orchestrator) WarriorDeckProfile(ctx context.Context) (json.RawMessage, error) {
	_, span := o.tracer.Start(ctx, "session.get_warrior_deck_profile")
	defer span.End()

	o.mu.Lock()
	defer o.mu.Unlock()

	st, err := o.mapPhase()
	if err != nil {
		return nil, record(span, err)
	}
	return st.Deck.Profile(), nil
}

// PeekMovement previews the movement outcome at the given point without
// committing it. A nil node means no preview applies.
func (o *Orchestrator) PeekMovement(ctx context.Context, at engine.Point) (json.RawMessage, error) {
	_, span := o.tracer.Start(ctx, "session.peek_movement")
	defer span.End()

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.game == nil {
		return nil, record(span, errUninitializedGame())
	}
	st, perr := o.mapPhase()
	if perr != nil {
		return nil, record(span, perr)
	}

	node, err := o.game.Map().PeekUpcomingMovement(st.Warrior, at)
	if err != nil {
		return nil, record(span, errors.Wrap(errors.CodeEngineFailure, err.Error(), err))
	}
	return node, nil
}

// MovePlayer commits a movement for the current warrior. A fight
// outcome moves the warrior/deck pair into the new battle and
// transitions the session to battle phase; the returned result never
// exposes the battle itself.
func (o *Orchestrator) MovePlayer(ctx context.Context, at engine.Point, selections []int) (engine.MoveResult, error) {
	_, span := o.tracer.Start(ctx, "session.move_player")
	defer span.End()

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.game == nil {
		return engine.MoveResult{}, record(span, errUninitializedGame())
	}

	var st domain.MapPhase
	switch v := o.state.(type) {
	case domain.BattlePhase:
		return engine.MoveResult{}, record(span, errors.New(errors.CodeConflict,
			"battle already triggered from map"))
	case domain.Idle:
		return engine.MoveResult{}, record(span, errUninitializedWarrior())
	case domain.MapPhase:
		st = v
	}

	result, err := o.game.Map().MoveTo(st.Warrior, st.Deck, at, selections, o.game.Controller())
	if err != nil {
		return engine.MoveResult{}, record(span, errors.Wrap(errors.CodeEngineFailure, err.Error(), err))
	}

	if result.Kind == engine.MoveKindFight {
		if result.Battle == nil {
			return engine.MoveResult{}, record(span, errors.New(errors.CodeEngineFailure,
				"fight outcome carried no battle"))
		}
		o.state = domain.BattlePhase{Battle: result.Battle}
		result.Battle = nil
	}
	return result, nil
}

// PVEBattle returns a handle to the battle triggered from the map. It
// never constructs a battle.
func (o *Orchestrator) PVEBattle(ctx context.Context) (*BattleHandle, error) {
	_, span := o.tracer.Start(ctx, "session.create_pve_battle")
	defer span.End()

	o.mu.Lock()
	defer o.mu.Unlock()

	if _, ok := o.state.(domain.BattlePhase); !ok {
		return nil, record(span, errNoBattle())
	}
	return &BattleHandle{orchestrator: o}, nil
}

// CreateStandaloneBattle constructs a battle directly from serialized
// warrior, deck, and enemy values, bypassing map traversal. It is only
// legal while the session is idle: a live battle or an active map
// session would strand state when the battle is destroyed.
func (o *Orchestrator) CreateStandaloneBattle(ctx context.Context, rawWarrior, rawDeck, rawEnemies []byte) (*BattleHandle, error) {
	_, span := o.tracer.Start(ctx, "session.create_standalone_battle")
	defer span.End()

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.game == nil {
		return nil, record(span, errUninitializedGame())
	}
	switch o.state.(type) {
	case domain.BattlePhase:
		return nil, record(span, errors.New(errors.CodeConflict, "battle already triggered"))
	case domain.MapPhase:
		return nil, record(span, errors.New(errors.CodeConflict,
			"map session is active; destroy it before a standalone battle"))
	}

	battle, err := o.engine.NewBattle(rawWarrior, rawDeck, rawEnemies)
	if err != nil {
		return nil, record(span, errors.Wrap(errors.CodeEngineFailure, err.Error(), err))
	}

	o.state = domain.BattlePhase{Battle: battle}
	return &BattleHandle{orchestrator: o}, nil
}

// StartBattle runs the battle's opening phase and returns the outcome
// with the log entries produced by this call.
func (o *Orchestrator) StartBattle(ctx context.Context) (engine.BattleReport, error) {
	_, span := o.tracer.Start(ctx, "battle.start")
	defer span.End()

	o.mu.Lock()
	defer o.mu.Unlock()

	st, perr := o.battlePhase()
	if perr != nil {
		return engine.BattleReport{}, record(span, perr)
	}

	report, err := st.Battle.Start(o.game.Controller())
	if err != nil {
		return engine.BattleReport{}, record(span, errors.Wrap(errors.CodeEngineFailure, err.Error(), err))
	}
	return report, nil
}

// IterateBattle advances the battle by exactly the decoded operations.
func (o *Orchestrator) IterateBattle(ctx context.Context, rawOperations []byte) (engine.BattleReport, error) {
	_, span := o.tracer.Start(ctx, "battle.iterate")
	defer span.End()

	o.mu.Lock()
	defer o.mu.Unlock()

	st, perr := o.battlePhase()
	if perr != nil {
		return engine.BattleReport{}, record(span, perr)
	}

	operations, err := engine.DecodeIterationInputs(rawOperations)
	if err != nil {
		return engine.BattleReport{}, record(span, errors.Wrap(errors.CodeInvalidInput,
			"unknown iteration input", err))
	}

	report, err := st.Battle.Run(operations, o.game.Controller())
	if err != nil {
		return engine.BattleReport{}, record(span, errors.Wrap(errors.CodeEngineFailure, err.Error(), err))
	}
	return report, nil
}

// PeekBattleTarget reports whether the decoded selection is currently a
// legal target. Pure query.
func (o *Orchestrator) PeekBattleTarget(ctx context.Context, rawSelection []byte) (bool, error) {
	_, span := o.tracer.Start(ctx, "battle.peek_target")
	defer span.End()

	o.mu.Lock()
	defer o.mu.Unlock()

	st, perr := o.battlePhase()
	if perr != nil {
		return false, record(span, perr)
	}

	selection, err := engine.DecodeSelection(rawSelection)
	if err != nil {
		return false, record(span, errors.Wrap(errors.CodeInvalidInput,
			"unknown card selection", err))
	}

	legal, err := st.Battle.PeekTarget(selection)
	if err != nil {
		return false, record(span, errors.Wrap(errors.CodeEngineFailure, err.Error(), err))
	}
	return legal, nil
}

// DestroyBattle decomposes the battle and returns the (possibly
// mutated) warrior/deck pair to the map phase. The engine's discard
// payload is dropped, matching the previous host.
func (o *Orchestrator) DestroyBattle(ctx context.Context) error {
	_, span := o.tracer.Start(ctx, "battle.destroy")
	defer span.End()

	o.mu.Lock()
	defer o.mu.Unlock()

	st, perr := o.battlePhase()
	if perr != nil {
		return record(span, perr)
	}

	warrior, deck, _, err := st.Battle.Destroy()
	if err != nil {
		// The battle stays live; a failed decomposition must not lose
		// the warrior pair.
		return record(span, errors.Wrap(errors.CodeEngineFailure, err.Error(), err))
	}

	o.state = domain.MapPhase{Warrior: warrior, Deck: deck}
	return nil
}

// mapPhase returns the current map phase state or the uninitialized
// error matching the missing entity. Callers hold the lock.
func (o *Orchestrator) mapPhase() (domain.MapPhase, *errors.Error) {
	st, ok := o.state.(domain.MapPhase)
	if !ok {
		return domain.MapPhase{}, errUninitializedWarrior()
	}
	return st, nil
}

// battlePhase returns the current battle phase state. Callers hold the
// lock.
func (o *Orchestrator) battlePhase() (domain.BattlePhase, *errors.Error) {
	st, ok := o.state.(domain.BattlePhase)
	if !ok {
		return domain.BattlePhase{}, errNoBattle()
	}
	return st, nil
}

func errUninitializedGame() *errors.Error {
	return errors.WithMetadata(errors.CodeUninitialized,
		"game instance not initialized",
		map[string]string{"entity": "game"})
}

func errUninitializedWarrior() *errors.Error {
	return errors.WithMetadata(errors.CodeUninitialized,
		"warrior context not initialized",
		map[string]string{"entity": "warrior"})
}

func errNoBattle() *errors.Error {
	return errors.New(errors.CodeNoBattle, "no battle triggered")
}

// record marks the span with the failure before returning it.
func record(span trace.Span, err *errors.Error) error {
	span.RecordError(err)
	span.SetStatus(otelcodes.Error, string(err.Code))
	return err
}
