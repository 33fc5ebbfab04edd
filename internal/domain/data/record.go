package data

// DefaultKiOp is used when a source row carries no comparison qualifier
const DefaultKiOp = "="

// Record represents a single Ki measurement row.
// Every string field defaults to ""; Ki is the only nullable field.
type Record struct {
	Receptor  string    `json:"receptor"`
	Unigene   string    `json:"unigene"`
	Ligand    string    `json:"ligand"`
	CAS       string    `json:"cas"`
	NSC       string    `json:"nsc"`
	RefLigand string    `json:"ref_ligand"`
	Species   string    `json:"species"`
	Source    string    `json:"source"`
	KiOp      string    `json:"ki_op"`
	Ki        NullFloat `json:"ki"`
	Reference string    `json:"reference"`
	Link      string    `json:"link"`
}

// NewRecord builds a record from raw cell values keyed by field,
// applying the schema defaults. Unknown keys are ignored.
func NewRecord(cells map[Field]string) Record {
	r := Record{
		Receptor:  cells[FieldReceptor],
		Unigene:   cells[FieldUnigene],
		Ligand:    cells[FieldLigand],
		CAS:       cells[FieldCAS],
		NSC:       cells[FieldNSC],
		RefLigand: cells[FieldRefLigand],
		Species:   cells[FieldSpecies],
		Source:    cells[FieldSource],
		KiOp:      cells[FieldKiOp],
		Ki:        ParseNullFloat(cells[FieldKi]),
		Reference: cells[FieldReference],
		Link:      cells[FieldLink],
	}
	if r.KiOp == "" {
		r.KiOp = DefaultKiOp
	}
	return r
}

// Value returns the text value of a field. A missing Ki yields "" and
// reports false; every string field is always present.
func (r Record) Value(f Field) (string, bool) {
	switch f {
	case FieldReceptor:
		return r.Receptor, true
	case FieldUnigene:
		return r.Unigene, true
	case FieldLigand:
		return r.Ligand, true
	case FieldCAS:
		return r.CAS, true
	case FieldNSC:
		return r.NSC, true
	case FieldRefLigand:
		return r.RefLigand, true
	case FieldSpecies:
		return r.Species, true
	case FieldSource:
		return r.Source, true
	case FieldKiOp:
		return r.KiOp, true
	case FieldKi:
		return r.Ki.String(), r.Ki.Valid
	case FieldReference:
		return r.Reference, true
	case FieldLink:
		return r.Link, true
	}
	return "", false
}
