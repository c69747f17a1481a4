// Package id generates run identifiers used to correlate the log lines of a
// single processing run.
package id

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	mu      sync.Mutex
	entropy = ulid.Monotonic(rand.Reader, 0)
)

// New returns a time-sortable ULID string. Ids generated within the same
// millisecond stay lexicographically ordered.
func New() string {
	mu.Lock()
	defer mu.Unlock()

	return ulid.MustNew(ulid.Timestamp(time.Now().UTC()), entropy).String()
}
