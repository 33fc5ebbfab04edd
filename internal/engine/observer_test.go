package engine

import (
	"sync"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/leengari/kidb/internal/testutil"
)

// MockObserver is a test observer that records events
type MockObserver struct {
	mu     sync.Mutex
	Events []Event
}

func (m *MockObserver) OnEvent(event Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Events = append(m.Events, event)
}

func TestAddObserver(t *testing.T) {
	eng := New(testutil.CreateCaffeineTable())
	observer := &MockObserver{}

	eng.AddObserver(observer)

	assert.Equal(t, len(eng.observers), 1)
}

func TestRemoveObserver(t *testing.T) {
	eng := New(testutil.CreateCaffeineTable())
	observer := &MockObserver{}

	eng.AddObserver(observer)
	eng.RemoveObserver(observer)

	assert.Equal(t, len(eng.observers), 0)
}

func TestNotifyWithNoObservers(t *testing.T) {
	eng := New(testutil.CreateCaffeineTable())

	// Should not panic
	eng.notify(Event{Type: EventQueryStart, QueryID: "test-query"})
}

func TestNotifyWithMultipleObservers(t *testing.T) {
	observer1 := &MockObserver{}
	observer2 := &MockObserver{}
	eng := New(testutil.CreateCaffeineTable(), observer1, observer2)

	eng.notify(Event{Type: EventQueryStart, QueryID: "test-query", Op: OpSummarize})

	assert.Equal(t, len(observer1.Events), 1)
	assert.Equal(t, len(observer2.Events), 1)
	assert.Equal(t, observer1.Events[0].Type, EventQueryStart)
	assert.Equal(t, observer2.Events[0].Op, OpSummarize)
}

func TestEventTimestamp(t *testing.T) {
	observer := &MockObserver{}
	eng := New(testutil.CreateCaffeineTable(), observer)

	eng.notify(Event{Type: EventQueryStart, QueryID: "test-query"})

	assert.Assert(t, !observer.Events[0].Timestamp.IsZero(), "expected timestamp to be set")
}

func TestQueryLifecycleEvents(t *testing.T) {
	observer := &MockObserver{}
	eng := New(testutil.CreateCaffeineTable(), observer)

	eng.Summarize("Caffeine", nil, 0)
	eng.Ligands(nil, 0)

	assert.Equal(t, len(observer.Events), 4)

	start, end := observer.Events[0], observer.Events[1]
	assert.Equal(t, start.Type, EventQueryStart)
	assert.Equal(t, end.Type, EventQueryEnd)
	assert.Equal(t, start.QueryID, end.QueryID)
	assert.Equal(t, end.Op, OpSummarize)
	assert.Equal(t, end.Rows, 4)

	next := observer.Events[2]
	assert.Assert(t, next.QueryID != start.QueryID, "query IDs must be unique")
	assert.Assert(t, next.Seq > start.Seq, "sequence numbers must increase")
	assert.Equal(t, observer.Events[3].Rows, 2)
}
