package idgen

import "github.com/google/uuid"

// RequestPrefix tags the X-Request-ID header sent with every gateway call.
const RequestPrefix = "req-"

// New returns prefix followed by a random (version 4) uuid.
func New(prefix string) string {
	return prefix + uuid.NewString()
}
