package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// CodeUninitialized means an operation required session state that
	// has not been created yet (game, warrior, deck).
	CodeUninitialized Code = "UNINITIALIZED"

	// CodeAlreadyInitialized means an operation tried to create a
	// singleton that already exists.
	CodeAlreadyInitialized Code = "ALREADY_INITIALIZED"

	// CodeConflict means the session phase disallows the operation,
	// e.g. starting a second battle or a second map session.
	CodeConflict Code = "CONFLICT"

	// CodeNoBattle means a battle-scoped operation ran with no live battle.
	CodeNoBattle Code = "NO_BATTLE"

	// CodeInvalidInput means a host-supplied payload failed to decode.
	CodeInvalidInput Code = "INVALID_INPUT"

	// CodeEngineFailure means the game-logic engine reported a
	// domain-level failure; its message is propagated verbatim.
	CodeEngineFailure Code = "ENGINE_FAILURE"

	// CodeLockFailure is reserved for internal synchronization failures.
	// The previous host surfaced mutex poisoning under this code; Go
	// locks cannot poison, so it is kept only for host compatibility.
	CodeLockFailure Code = "LOCK_FAILURE"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	case CodeInvalidInput:
		return codes.InvalidArgument
	case CodeUninitialized, CodeConflict, CodeNoBattle:
		return codes.FailedPrecondition
	case CodeAlreadyInitialized:
		return codes.AlreadyExists
	case CodeEngineFailure, CodeLockFailure:
		return codes.Internal
	default:
		return codes.Internal
	}
}
