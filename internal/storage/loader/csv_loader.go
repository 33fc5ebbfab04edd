package loader

import (
	"encoding/csv"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/leengari/kidb/internal/domain/data"
	domainerrors "github.com/leengari/kidb/internal/domain/errors"
	"github.com/leengari/kidb/internal/domain/schema"
)

// Headers maps source column headers to schema fields, in source order.
// Headers are matched after trimming surrounding whitespace, so the
// " Ligand Name" column of the published data file resolves to "Ligand Name".
var Headers = []struct {
	Name  string
	Field data.Field
}{
	{"Name", data.FieldReceptor},
	{"Unigene", data.FieldUnigene},
	{"Ligand Name", data.FieldLigand},
	{"CAS", data.FieldCAS},
	{"NSC", data.FieldNSC},
	{"Hotligand", data.FieldRefLigand},
	{"species", data.FieldSpecies},
	{"source", data.FieldSource},
	{"ki Note", data.FieldKiOp},
	{"ki Val", data.FieldKi},
	{"Reference", data.FieldReference},
	{"Link", data.FieldLink},
}

// LoadFile reads a CSV table from disk
func LoadFile(path string, logger *slog.Logger) (*schema.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, domainerrors.NewUnreadable(path, err)
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	table, err := load(f, name, path)
	if err != nil {
		return nil, err
	}

	logger.Info("table loaded",
		slog.String("table", table.Name),
		slog.String("path", path),
		slog.Int("rows", table.Len()),
	)

	return table, nil
}

// Load reads a CSV table from r. Columns outside the known header set are
// ignored; a missing known header is a *errors.LoadError.
func Load(r io.Reader, name string) (*schema.Table, error) {
	return load(r, name, "")
}

func load(r io.Reader, name, path string) (*schema.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, &domainerrors.LoadError{Path: path, Reason: "source is empty"}
		}
		return nil, domainerrors.NewUnreadable(path, err)
	}

	mapping, err := mapHeader(header, path)
	if err != nil {
		return nil, err
	}

	var rows []data.Record
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, domainerrors.NewUnreadable(path, err)
		}

		cells := make(map[data.Field]string, len(mapping))
		for col, field := range mapping {
			if col < len(record) {
				cells[field] = record[col]
			}
		}
		rows = append(rows, data.NewRecord(cells))
	}

	return schema.NewTable(name, rows), nil
}

// mapHeader resolves the column index of every known field
func mapHeader(header []string, path string) (map[int]data.Field, error) {
	positions := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := positions[h]; !dup {
			positions[h] = i
		}
	}

	mapping := make(map[int]data.Field, len(Headers))
	var missing []string
	for _, h := range Headers {
		col, ok := positions[h.Name]
		if !ok {
			missing = append(missing, h.Name)
			continue
		}
		mapping[col] = h.Field
	}

	if len(missing) > 0 {
		return nil, domainerrors.NewMissingColumns(path, missing)
	}
	return mapping, nil
}
