package domain

import (
	"fmt"

	"github.com/btckoguebike/spore-warriors-host/internal/platform/errors"
)

// HandleToolError converts a domain error into the tool failure shown
// to MCP clients, carrying the localized status message.
func HandleToolError(op string, err error, locale string) error {
	return fmt.Errorf("%s failed: %w", op, errors.HandleError(err, locale))
}
