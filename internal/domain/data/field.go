package data

import (
	"github.com/leengari/kidb/internal/domain/errors"
)

// Field names one column of the fixed Ki record schema
type Field string

const (
	FieldReceptor  Field = "receptor"
	FieldUnigene   Field = "unigene"
	FieldLigand    Field = "ligand"
	FieldCAS       Field = "cas"
	FieldNSC       Field = "nsc"
	FieldRefLigand Field = "ref_ligand"
	FieldSpecies   Field = "species"
	FieldSource    Field = "source"
	FieldKiOp      Field = "ki_op"
	FieldKi        Field = "ki"
	FieldReference Field = "reference"
	FieldLink      Field = "link"
)

// fields lists the schema in canonical (source file) order
var fields = []Field{
	FieldReceptor,
	FieldUnigene,
	FieldLigand,
	FieldCAS,
	FieldNSC,
	FieldRefLigand,
	FieldSpecies,
	FieldSource,
	FieldKiOp,
	FieldKi,
	FieldReference,
	FieldLink,
}

// Fields returns every schema field in canonical order.
// The returned slice is a copy and may be modified by the caller.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// ParseField validates a column name against the schema
func ParseField(name string) (Field, error) {
	for _, f := range fields {
		if string(f) == name {
			return f, nil
		}
	}
	return "", &errors.UnknownFieldError{Name: name}
}

// Valid reports whether f belongs to the schema
func (f Field) Valid() bool {
	_, err := ParseField(string(f))
	return err == nil
}

func (f Field) String() string {
	return string(f)
}
