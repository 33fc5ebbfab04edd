package engine

import "time"

// EventType represents the lifecycle phases of a query
type EventType string

const (
	EventQueryStart EventType = "query_start"
	EventQueryEnd   EventType = "query_end"
)

// Op names the engine entry point that produced an event
type Op string

const (
	OpUniqueValues Op = "unique_values"
	OpLigands      Op = "ligands"
	OpSummarize    Op = "summarize"
)

// Event represents a lifecycle event in query execution
type Event struct {
	Type      EventType     // Type of event
	QueryID   string        // Query ID for tracing
	Seq       uint64        // Process-local query sequence number
	Op        Op            // Entry point
	Timestamp time.Time     // When the event occurred
	Duration  time.Duration // Elapsed time, set on EventQueryEnd
	Rows      int           // Rows returned, set on EventQueryEnd
	Data      interface{}   // Op-specific data (criteria, ligand, group count)
}

// Observer interface for event subscribers.
// OnEvent may be called from many goroutines at once.
type Observer interface {
	OnEvent(event Event)
}
