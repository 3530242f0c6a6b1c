package domain

import (
	"github.com/btckoguebike/spore-warriors-host/internal/id"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// InvocationIDKey is the result metadata key carrying the invocation
// identifier for a tool call.
const InvocationIDKey = "x-invocation-id"

// NewInvocationID generates an invocation identifier for a tool call.
func NewInvocationID() (string, error) {
	return id.NewID()
}

// CallToolResultWithMetadata builds a tool result with correlation metadata.
func CallToolResultWithMetadata(invocationID string) *mcp.CallToolResult {
	result := &mcp.CallToolResult{}
	if invocationID != "" {
		result.Meta = map[string]any{InvocationIDKey: invocationID}
	}
	return result
}
