package mrformat

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// syntheticRow returns a row whose field at column i is v<i>, wide enough
// for every layout column.
func syntheticRow(width int) []string {
	row := make([]string, width)
	for i := range row {
		row[i] = fmt.Sprintf("v%d", i)
	}

	return row
}

func TestOutcomeColumnMapping(t *testing.T) {
	rows := [][]string{syntheticRow(35)}

	out, err := Outcome(rows)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 record, got %d", len(out))
	}

	r := out[0]
	if r.Chr != "v24" || r.Pos != "v25" || r.Beta != "v32" || r.SE != "v33" ||
		r.PVal != "v30" || r.SNP != "v28" || r.EffectAllele != "v27" ||
		r.OtherAllele != "v26" || r.EAF != "v34" {
		t.Errorf("column mapping mismatch: %+v", r)
	}
	if r.Outcome != "PE" || r.ID != "finngen_R11_O15_PREECLAMPS" || r.MRKeep != "TRUE" {
		t.Errorf("constant fields mismatch: %+v", r)
	}
}

func TestExposureColumnMapping(t *testing.T) {
	rows := [][]string{syntheticRow(35)}

	out, err := Exposure(rows)
	if err != nil {
		t.Fatal(err)
	}

	r := out[0]
	if r.Chr != "v0" || r.Pos != "v3" || r.Beta != "v18" || r.SE != "v19" ||
		r.PVal != "v21" || r.SNP != "v2" || r.EffectAllele != "v17" ||
		r.OtherAllele != "v16" {
		t.Errorf("column mapping mismatch: %+v", r)
	}
	if r.Exposure != "v12" {
		t.Errorf("exposure label should come from column 12, got %q", r.Exposure)
	}
	if r.ID != "MiBioGen" || r.EAF != "NA" || r.MRKeep != "TRUE" ||
		r.PValOrigin != "inferred" || r.DataSource != "MiBioGen" {
		t.Errorf("constant fields mismatch: %+v", r)
	}
}

func TestShortRowIsARowLevelError(t *testing.T) {
	rows := [][]string{syntheticRow(35), syntheticRow(20)}

	if _, err := Outcome(rows); err == nil {
		t.Error("expected an error for a row too short for the outcome layout")
	} else if !strings.Contains(err.Error(), "line 3") {
		t.Errorf("error should name the offending line: %v", err)
	}
}

func TestProcessWritesBothTables(t *testing.T) {
	dir := t.TempDir()

	header := strings.Join(syntheticRow(35), "\t")
	body := strings.Join(syntheticRow(35), "\t")
	input := filepath.Join(dir, "joined.txt")
	if err := os.WriteFile(input, []byte(header+"\n"+body+"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	prefix := filepath.Join(dir, "pe_mibiogen")
	if err := Process(input, prefix); err != nil {
		t.Fatal(err)
	}

	outcome, err := os.ReadFile(prefix + ".outcome.txt")
	if err != nil {
		t.Fatal(err)
	}
	outcomeLines := strings.Split(strings.TrimSuffix(string(outcome), "\n"), "\n")
	if len(outcomeLines) != 2 {
		t.Fatalf("expected header plus 1 row, got %d lines", len(outcomeLines))
	}
	wantOutcomeHeader := "chr.outcome\tpos.outcome\tbeta.outcome\tse.outcome\tpval.outcome\tSNP\teffect_allele.outcome\tother_allele.outcome\teaf.outcome\toutcome\tid.outcome\tmr_keep.outcome"
	if outcomeLines[0] != wantOutcomeHeader {
		t.Errorf("outcome header mismatch:\ngot  %q\nwant %q", outcomeLines[0], wantOutcomeHeader)
	}

	exposure, err := os.ReadFile(prefix + ".exposure.txt")
	if err != nil {
		t.Fatal(err)
	}
	exposureLines := strings.Split(strings.TrimSuffix(string(exposure), "\n"), "\n")
	wantExposureHeader := "chr.exposure\tpos.exposure\tbeta.exposure\tse.exposure\tpval.exposure\tSNP\teffect_allele.exposure\tother_allele.exposure\tid.exposure\texposure\teaf.exposure\tmr_keep.exposure\tpval_origin.exposure\tdata_source.exposure"
	if exposureLines[0] != wantExposureHeader {
		t.Errorf("exposure header mismatch:\ngot  %q\nwant %q", exposureLines[0], wantExposureHeader)
	}
	if !strings.HasPrefix(exposureLines[1], "v0\tv3\tv18\tv19\tv21\tv2\tv17\tv16\tMiBioGen\tv12\tNA\tTRUE\tinferred\tMiBioGen") {
		t.Errorf("exposure row mismatch: %q", exposureLines[1])
	}
}
