// Package domain defines the MCP tool schemas and handlers for the
// session orchestrator's operation surface.
//
// Binary payloads (the resource pool, a serialized potion) cross the
// boundary base64-encoded; engine-owned values (profiles, logs, battle
// inputs) cross as JSON-encoded strings, since their schema belongs to
// the engine, not to this host.
package domain
