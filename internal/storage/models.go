package storage

import "time"

// Snapshot is one stored record. Revision counts writes to the key.
type Snapshot struct {
	Key       string
	Data      []byte
	Revision  int64
	UpdatedAt time.Time
}
