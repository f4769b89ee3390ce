package state

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

var (
	sessionID = uuid.NewString()
	sequence  uint64
)

// nextID returns a command ID unique across sessions. The sequence suffix
// keeps IDs from one session ordered by creation.
func nextID() string {
	n := atomic.AddUint64(&sequence, 1)
	return fmt.Sprintf("%s-%d", sessionID[:8], n)
}

// SessionID identifies this process in logs and exported metadata.
func SessionID() string {
	return sessionID
}
