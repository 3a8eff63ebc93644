package id

import (
	"strings"

	"github.com/google/uuid"
)

// NewID32 returns exactly 32 hex characters (no separators/prefixes).
// Used as the X-Request-Id for every inbound request.
func NewID32() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
