package api

import (
	"encoding/json"

	"github.com/leengari/kidb/internal/domain/data"
	"github.com/leengari/kidb/internal/query/aggregate"
)

// MissingMarker replaces absent numbers in responses
const MissingMarker = "NaN"

// Number is a nullable float that encodes a missing value as MissingMarker
type Number data.NullFloat

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return json.Marshal(MissingMarker)
	}
	return json.Marshal(n.Float64)
}

// StatsJSON is one receptor entry of a ki response
type StatsJSON struct {
	Median Number `json:"median"`
	Mean   Number `json:"mean"`
	Std    Number `json:"std"`
	Count  int    `json:"count"`
}

// SourceJSON is one source row of a ki response
type SourceJSON struct {
	Receptor  string `json:"receptor"`
	Unigene   string `json:"unigene"`
	Ligand    string `json:"ligand"`
	CAS       string `json:"cas"`
	NSC       string `json:"nsc"`
	RefLigand string `json:"ref_ligand"`
	Species   string `json:"species"`
	Source    string `json:"source"`
	KiOp      string `json:"ki_op"`
	Ki        Number `json:"ki"`
	Reference string `json:"reference"`
	Link      string `json:"link"`
}

// KiResponse is the body of GET /v1/ki/{ligand}: statistics keyed by
// receptor, and the rows they were computed from
type KiResponse struct {
	Ki      map[string]StatsJSON `json:"ki"`
	Sources []SourceJSON         `json:"sources"`
}

// NewKiResponse converts an aggregation result to its wire form
func NewKiResponse(result aggregate.Result) KiResponse {
	resp := KiResponse{
		Ki:      make(map[string]StatsJSON, len(result.Statistics)),
		Sources: make([]SourceJSON, 0, result.Sources.Len()),
	}

	for _, s := range result.Statistics {
		resp.Ki[s.Receptor] = StatsJSON{
			Median: Number(s.Median),
			Mean:   Number(s.Mean),
			Std:    Number(s.StandardDeviation),
			Count:  s.Count,
		}
	}

	for _, r := range result.Sources.Rows() {
		resp.Sources = append(resp.Sources, SourceJSON{
			Receptor:  r.Receptor,
			Unigene:   r.Unigene,
			Ligand:    r.Ligand,
			CAS:       r.CAS,
			NSC:       r.NSC,
			RefLigand: r.RefLigand,
			Species:   r.Species,
			Source:    r.Source,
			KiOp:      r.KiOp,
			Ki:        Number(r.Ki),
			Reference: r.Reference,
			Link:      r.Link,
		})
	}

	return resp
}
