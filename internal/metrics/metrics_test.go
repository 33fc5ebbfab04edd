package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"gotest.tools/v3/assert"

	"github.com/leengari/kidb/internal/engine"
	"github.com/leengari/kidb/internal/testutil"
)

func TestOnEvent_CountsQueryEnds(t *testing.T) {
	m := New()
	eng := engine.New(testutil.CreateCaffeineTable(), m)

	eng.Summarize("Caffeine", nil, 0)
	eng.Summarize("Caffeine", nil, 1)
	eng.Ligands(nil, 0)

	assert.Equal(t, promtest.ToFloat64(m.QueriesTotal.WithLabelValues(string(engine.OpSummarize))), 2.0)
	assert.Equal(t, promtest.ToFloat64(m.QueriesTotal.WithLabelValues(string(engine.OpLigands))), 1.0)
	assert.Equal(t, promtest.CollectAndCount(m.QueryDuration), 2)
}

func TestObserveRequest(t *testing.T) {
	m := New()

	m.ObserveRequest(http.MethodGet, "/v1/ki/:ligand", http.StatusOK, 3*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "", http.StatusNotFound, time.Millisecond)

	assert.Equal(t, promtest.ToFloat64(m.RequestTotal.WithLabelValues("GET", "/v1/ki/:ligand", "200")), 1.0)
	assert.Equal(t, promtest.ToFloat64(m.RequestTotal.WithLabelValues("GET", "unmatched", "404")), 1.0)
}

func TestHandler_Exposition(t *testing.T) {
	m := New()
	m.SetTableRows(42)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, rec.Code, http.StatusOK)
	assert.Assert(t, strings.Contains(rec.Body.String(), "kidb_table_rows 42"))
}

func TestNew_IndependentRegistries(t *testing.T) {
	// two instances must not collide on registration
	a, b := New(), New()
	a.SetTableRows(1)
	b.SetTableRows(2)

	assert.Equal(t, promtest.ToFloat64(a.TableRows), 1.0)
	assert.Equal(t, promtest.ToFloat64(b.TableRows), 2.0)
}
