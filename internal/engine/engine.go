package engine

import (
	"sync"
	"time"

	"github.com/leengari/kidb/internal/domain/data"
	"github.com/leengari/kidb/internal/domain/schema"
	"github.com/leengari/kidb/internal/query/aggregate"
	"github.com/leengari/kidb/internal/query/filter"
)

// Engine is the query entry point over one loaded Ki table.
// It is constructed once at startup and passed to every query layer;
// all query methods are safe for concurrent use.
type Engine struct {
	table *schema.Table

	mu        sync.RWMutex
	observers []Observer // Observers for lifecycle events
}

// New creates a new Engine instance
func New(table *schema.Table, observers ...Observer) *Engine {
	return &Engine{
		table:     table,
		observers: append(make([]Observer, 0, len(observers)), observers...),
	}
}

// Table returns the source table
func (e *Engine) Table() *schema.Table {
	return e.table
}

// ListUniqueValues returns the distinct values of a field among the rows
// matching criteria, in first-occurrence order
func (e *Engine) ListUniqueValues(field data.Field, criteria filter.Criteria) []string {
	q := e.begin(OpUniqueValues, map[string]interface{}{
		"field":    field,
		"criteria": criteria,
	})

	values := e.table.Filter(criteria).UniqueValues(field)

	e.end(q, len(values), nil)
	return values
}

// Ligands lists unique ligand names matching criteria. When maxLen is
// positive, names longer than maxLen characters are left out.
func (e *Engine) Ligands(criteria filter.Criteria, maxLen int) []string {
	q := e.begin(OpLigands, map[string]interface{}{
		"criteria": criteria,
		"max_len":  maxLen,
	})

	all := e.table.Filter(criteria).UniqueValues(data.FieldLigand)
	ligands := make([]string, 0, len(all))
	for _, name := range all {
		if maxLen <= 0 || len(name) <= maxLen {
			ligands = append(ligands, name)
		}
	}

	e.end(q, len(ligands), nil)
	return ligands
}

// Summarize computes per-receptor Ki statistics for a ligand over the rows
// matching criteria. A zero deviation disables outlier exclusion.
func (e *Engine) Summarize(ligand string, criteria filter.Criteria, deviation float64) aggregate.Result {
	q := e.begin(OpSummarize, map[string]interface{}{
		"ligand":    ligand,
		"criteria":  criteria,
		"deviation": deviation,
	})

	result := aggregate.Summarize(e.table.Filter(criteria), ligand, deviation)

	e.end(q, result.Sources.Len(), map[string]interface{}{
		"groups": len(result.Statistics),
	})
	return result
}

// AddObserver registers an observer to receive lifecycle events
func (e *Engine) AddObserver(observer Observer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.observers = append(e.observers, observer)
}

// RemoveObserver unregisters an observer
func (e *Engine) RemoveObserver(observer Observer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, o := range e.observers {
		if o == observer {
			e.observers = append(e.observers[:i:i], e.observers[i+1:]...)
			return
		}
	}
}

func (e *Engine) begin(op Op, payload interface{}) *query {
	q := newQuery(op)
	e.notify(Event{
		Type:    EventQueryStart,
		QueryID: q.ID,
		Seq:     q.Seq,
		Op:      op,
		Data:    payload,
	})
	return q
}

func (e *Engine) end(q *query, rows int, payload interface{}) {
	e.notify(Event{
		Type:     EventQueryEnd,
		QueryID:  q.ID,
		Seq:      q.Seq,
		Op:       q.Op,
		Duration: q.elapsed(),
		Rows:     rows,
		Data:     payload,
	})
}

// notify sends an event to all registered observers
func (e *Engine) notify(event Event) {
	event.Timestamp = time.Now()

	e.mu.RLock()
	observers := e.observers
	e.mu.RUnlock()

	for _, observer := range observers {
		observer.OnEvent(event)
	}
}
