package engine

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// querySeq is an atomic counter giving every query a process-local sequence number
var querySeq uint64

// query is the tracing context of one engine call
type query struct {
	ID    string    // Unique query identifier
	Seq   uint64    // Monotonic sequence number
	Op    Op        // Entry point being served
	Start time.Time // When the query began
}

func newQuery(op Op) *query {
	return &query{
		ID:    uuid.New().String(),
		Seq:   atomic.AddUint64(&querySeq, 1),
		Op:    op,
		Start: time.Now(),
	}
}

func (q *query) elapsed() time.Duration {
	return time.Since(q.Start)
}
