// Package keyjoin correlates two delimited association tables on a shared
// key column, emitting the concatenated rows for every match.
package keyjoin

import (
	"encoding/csv"
	"io"

	"github.com/carbocation/pfx"
)

// Spec describes how two tables are keyed. Column positions are 0-based.
// Rows with fewer fields than the minimum for their table are skipped rather
// than indexed or probed, which also guarantees the key column is in range.
type Spec struct {
	KeyColA    int
	MinFieldsA int
	KeyColB    int
	MinFieldsB int
	Delimiter  rune
}

// BuildIndex reads table A once and maps each key to its full row. When the
// same key appears on multiple rows, the row read last wins.
func BuildIndex(a io.Reader, spec Spec) (map[string][]string, error) {
	r := newReader(a, spec.Delimiter)

	index := make(map[string][]string)
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, pfx.Err(err)
		}

		if len(row) < spec.MinFieldsA {
			continue
		}

		index[row[spec.KeyColA]] = row
	}

	return index, nil
}

// Join indexes table A, then probes it with each row of table B in order.
// Every B row whose key is present in A is written as rowA ++ rowB; B rows
// with no match are expected and dropped without comment. Returns the number
// of merged rows written.
func Join(a, b io.Reader, w io.Writer, spec Spec) (int, error) {
	index, err := BuildIndex(a, spec)
	if err != nil {
		return 0, err
	}

	out := csv.NewWriter(w)
	out.Comma = spec.Delimiter

	matched := 0
	r := newReader(b, spec.Delimiter)
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return matched, pfx.Err(err)
		}

		if len(row) < spec.MinFieldsB {
			continue
		}

		rowA, ok := index[row[spec.KeyColB]]
		if !ok {
			continue
		}

		merged := make([]string, 0, len(rowA)+len(row))
		merged = append(merged, rowA...)
		merged = append(merged, row...)

		if err := out.Write(merged); err != nil {
			return matched, pfx.Err(err)
		}
		matched++
	}

	out.Flush()

	return matched, pfx.Err(out.Error())
}

func newReader(r io.Reader, delim rune) *csv.Reader {
	c := csv.NewReader(r)
	c.Comma = delim
	c.FieldsPerRecord = -1
	c.LazyQuotes = true

	return c
}
