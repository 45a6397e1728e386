package cheqprint_utils

import (
	"github.com/google/uuid"
)

// NewRequestID returns a UUIDv4 sent as X-Request-ID so a probe can be traced on the API side.
func NewRequestID() string {
	return uuid.New().String()
}
