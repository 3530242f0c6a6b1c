// Package service implements the session orchestrator.
//
// The orchestrator owns the single authoritative in-memory session and
// sequences every host operation under one composite lock, so the
// game-logic engine is only ever invoked with consistent, well-ordered
// inputs. It validates every precondition before mutating state and
// maps failures onto the host error taxonomy.
package service
