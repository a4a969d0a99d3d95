// Package mrformat reshapes a joined GWAS association table into the
// exposure and outcome input tables consumed by two-sample MR tooling.
package mrformat

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"

	"github.com/gwaskit/mrprep"
)

// ReadTable parses a tab-delimited table with a header line, returning the
// header and body rows separately.
func ReadTable(r io.Reader) ([]string, [][]string, error) {
	c := csv.NewReader(r)
	c.Comma = '\t'
	c.FieldsPerRecord = -1
	c.LazyQuotes = true

	rows, err := c.ReadAll()
	if err != nil {
		return nil, nil, pfx.Err(err)
	}
	if len(rows) == 0 {
		return nil, nil, pfx.Err(fmt.Errorf("input table is empty"))
	}

	return rows[0], rows[1:], nil
}

// Exposure builds the exposure table rows. Returns a row-level error naming
// the offending line when a row is too short for the layout.
func Exposure(rows [][]string) ([]*ExposureRecord, error) {
	need := maxColumn(exposureSourceColumns, colExposureLabel) + 1

	out := make([]*ExposureRecord, 0, len(rows))
	for i, row := range rows {
		if len(row) < need {
			return nil, pfx.Err(fmt.Errorf("line %d: %d columns, but the exposure layout requires at least %d", i+2, len(row), need))
		}

		c := exposureSourceColumns
		out = append(out, &ExposureRecord{
			Chr:          row[c[0]],
			Pos:          row[c[1]],
			Beta:         row[c[2]],
			SE:           row[c[3]],
			PVal:         row[c[4]],
			SNP:          row[c[5]],
			EffectAllele: row[c[6]],
			OtherAllele:  row[c[7]],
			ID:           exposureDataset,
			Exposure:     row[colExposureLabel],
			EAF:          exposureEAF,
			MRKeep:       "TRUE",
			PValOrigin:   exposurePValOrigin,
			DataSource:   exposureDataset,
		})
	}

	return out, nil
}

// Outcome builds the outcome table rows.
func Outcome(rows [][]string) ([]*OutcomeRecord, error) {
	need := maxColumn(outcomeSourceColumns) + 1

	out := make([]*OutcomeRecord, 0, len(rows))
	for i, row := range rows {
		if len(row) < need {
			return nil, pfx.Err(fmt.Errorf("line %d: %d columns, but the outcome layout requires at least %d", i+2, len(row), need))
		}

		c := outcomeSourceColumns
		out = append(out, &OutcomeRecord{
			Chr:          row[c[0]],
			Pos:          row[c[1]],
			Beta:         row[c[2]],
			SE:           row[c[3]],
			PVal:         row[c[4]],
			SNP:          row[c[5]],
			EffectAllele: row[c[6]],
			OtherAllele:  row[c[7]],
			EAF:          row[c[8]],
			Outcome:      outcomeTrait,
			ID:           outcomeDataset,
			MRKeep:       "TRUE",
		})
	}

	return out, nil
}

// Process reads the joined table at inputPath and writes
// <outputPrefix>.outcome.txt and <outputPrefix>.exposure.txt.
func Process(inputPath, outputPrefix string) error {
	f, err := mrprep.Open(inputPath)
	if err != nil {
		return err
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return pfx.Err(err)
	}

	if delim := mrprep.DetermineDelimiter(bytes.NewReader(content)); delim != '\t' {
		log.Printf("Input %s looks %q-delimited rather than tab-delimited; parsing as tab regardless", inputPath, delim)
	}

	_, rows, err := ReadTable(bytes.NewReader(content))
	if err != nil {
		return err
	}

	outcome, err := Outcome(rows)
	if err != nil {
		return err
	}
	if err := writeRecords(outputPrefix+".outcome.txt", &outcome); err != nil {
		return err
	}

	exposure, err := Exposure(rows)
	if err != nil {
		return err
	}

	return writeRecords(outputPrefix+".exposure.txt", &exposure)
}

func writeRecords(path string, records interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return pfx.Err(err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = '\t'

	return pfx.Err(gocsv.MarshalCSV(records, gocsv.NewSafeCSVWriter(w)))
}
