package testutil

import (
	"github.com/leengari/kidb/internal/domain/data"
	"github.com/leengari/kidb/internal/domain/schema"
)

// Ki builds an exact ("=") measurement row
func Ki(ligand, receptor string, ki float64) data.Record {
	return data.Record{
		Receptor: receptor,
		Ligand:   ligand,
		Species:  "human",
		Source:   "PDSP",
		KiOp:     "=",
		Ki:       data.Float(ki),
	}
}

// Bound builds a row reported with a comparison qualifier such as ">"
func Bound(ligand, receptor, op string, ki float64) data.Record {
	r := Ki(ligand, receptor, ki)
	r.KiOp = op
	return r
}

// Missing builds an exact row with no Ki value
func Missing(ligand, receptor string) data.Record {
	r := Ki(ligand, receptor, 0)
	r.Ki = data.Null()
	return r
}

// CreateCaffeineTable holds four A2A measurements for Caffeine, one of them
// far above the others, plus unrelated rows that must never be aggregated
func CreateCaffeineTable() *schema.Table {
	return schema.NewTable("ki", []data.Record{
		Ki("Caffeine", "A2A", 10.0),
		Ki("Caffeine", "A2A", 10.5),
		Ki("Caffeine", "A2A", 11.0),
		Ki("Caffeine", "A2A", 100.0),
		Bound("Caffeine", "A2A", ">", 10000),
		Ki("Theophylline", "A2A", 1700),
	})
}

// CreateReceptorTable creates a table spanning several ligands, receptors
// and species for filter tests
func CreateReceptorTable() *schema.Table {
	rat := Ki("Caffeine", "A1", 29000)
	rat.Species = "rat"

	return schema.NewTable("ki", []data.Record{
		Ki("Caffeine", "A2B", 13000),
		Ki("Caffeine", "A1", 12000),
		rat,
		Ki("Caffeine", "A2A", 2400),
		Ki("Theophylline", "A2A", 1700),
		Ki("Theophylline", "A2B", 9000),
		Bound("Theophylline", "A3", ">", 100000),
		Ki("Istradefylline", "A2A", 2.2),
		Missing("Istradefylline", "A1"),
		Ki("Adenosine", "A1", 73),
	})
}

// CaffeineCSV mirrors the published data file layout, including the leading
// space in the ligand header, an unused column and blank ki Note cells
const CaffeineCSV = `Name,Unigene, Ligand Name,CAS,NSC,Hotligand,species,source,ki Note,ki Val,Reference,Link,Extra
A2A,Hs.197029,Caffeine,58-08-2,5036,[3H]ZM241385,human,PDSP,,10.0,Ref A,http://example.org/1,x
A2A,Hs.197029,Caffeine,58-08-2,5036,[3H]ZM241385,human,PDSP,=,10.5,Ref B,http://example.org/2,x
A2A,Hs.197029,Caffeine,58-08-2,5036,[3H]ZM241385,human,PDSP,,11.0,Ref C,http://example.org/3,x
A2A,Hs.197029,Caffeine,58-08-2,5036,[3H]ZM241385,human,PDSP,,100.0,Ref D,http://example.org/4,x
A1,,Caffeine,58-08-2,,,rat,PDSP,>,10000,Ref E,,x
A1,,Caffeine,58-08-2,,,rat,PDSP,,,Ref F,,x
`
