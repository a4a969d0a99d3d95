// Package sigfilter reduces GWAS result files to their suggestively
// significant rows and merges the reduced files under a single header.
package sigfilter

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/montanaflynn/stats"
	"github.com/sirupsen/logrus"
)

const (
	// PThreshold is the suggestive-significance cutoff: only rows with a
	// p-value strictly below this survive filtering.
	PThreshold = 1e-5

	// MinFields is the smallest column count a result line may have.
	MinFields = 10

	// ColPValue is the 0-based p-value column within a result line.
	ColPValue = 9
)

// FilterFile copies the header of inputPath and every body line whose
// p-value passes PThreshold to outputPath. Body lines are split on
// whitespace runs but written back verbatim. Short and unparseable lines are
// skipped with a warning; rows merely failing the threshold are the expected
// case and pass without comment. Returns the number of rows written,
// counting the header.
func FilterFile(inputPath, outputPath string, lg logrus.FieldLogger) (int, error) {
	if _, err := os.Stat(inputPath); err != nil {
		return 0, pfx.Err(err)
	}
	if _, err := os.Stat(filepath.Dir(outputPath)); err != nil {
		return 0, pfx.Err(fmt.Errorf("output directory %s does not exist", filepath.Dir(outputPath)))
	}

	in, err := os.Open(inputPath)
	if err != nil {
		return 0, pfx.Err(err)
	}
	defer in.Close()

	out, err := os.Create(outputPath)
	if err != nil {
		return 0, pfx.Err(err)
	}
	defer out.Close()

	w := bufio.NewWriter(out)

	rowsWritten := 0
	var kept []float64

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		if lineNumber == 1 {
			if line != "" {
				fmt.Fprintln(w, line)
				rowsWritten++
			}
			continue
		}

		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) < MinFields {
			lg.Warnf("Skipping line %d in %s: fewer than %d columns", lineNumber, inputPath, MinFields)
			continue
		}

		p, err := strconv.ParseFloat(parts[ColPValue], 64)
		if err != nil {
			lg.Warnf("Skipping line %d in %s: cannot parse '%s' as a p-value", lineNumber, inputPath, parts[ColPValue])
			continue
		}

		if p < PThreshold {
			fmt.Fprintln(w, line)
			rowsWritten++
			kept = append(kept, p)
		}
	}
	if err := scanner.Err(); err != nil {
		return rowsWritten, pfx.Err(err)
	}

	if err := w.Flush(); err != nil {
		return rowsWritten, pfx.Err(err)
	}

	lg.Infof("Finished processing %s: %d rows written to %s", inputPath, rowsWritten, outputPath)
	if len(kept) > 0 {
		min, _ := stats.Min(kept)
		median, _ := stats.Median(kept)
		lg.Infof("Kept %d associations from %s (min p %.3g, median p %.3g)", len(kept), inputPath, min, median)
	}

	return rowsWritten, nil
}

// FilteredName places the filtered counterpart of path beside it, inserting
// _filtered before the extension (.txt when path has none).
func FilteredName(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if ext == "" {
		ext = ".txt"
	}

	return filepath.Join(filepath.Dir(path), stem+"_filtered"+ext)
}

// ProcessList reads one input path per line from listPath and filters each
// existing file, returning the filtered output paths in list order. Missing
// inputs and per-file failures are logged and skipped; they never abort the
// batch.
func ProcessList(listPath string, lg logrus.FieldLogger) ([]string, error) {
	f, err := os.Open(listPath)
	if err != nil {
		return nil, pfx.Err(fmt.Errorf("file paths list %s: %w", listPath, err))
	}
	defer f.Close()

	var filtered []string

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		path := strings.TrimSpace(scanner.Text())
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); err != nil {
			lg.Errorf("Input file %s not found, skipping", path)
			continue
		}

		outputPath := FilteredName(path)
		lg.Infof("Processing %s -> %s", path, outputPath)

		if _, err := FilterFile(path, outputPath, lg); err != nil {
			lg.Errorf("Error processing file %s: %v", path, err)
		}
		filtered = append(filtered, outputPath)
	}
	if err := scanner.Err(); err != nil {
		return filtered, pfx.Err(err)
	}

	return filtered, nil
}

// MergeFiltered concatenates the body lines of every file in files, in
// order, under a single header taken from the first non-empty file. Headers
// of later files are dropped. Files that are missing or empty are skipped.
func MergeFiltered(files []string, outputPath string, lg logrus.FieldLogger) error {
	out, err := os.Create(outputPath)
	if err != nil {
		return pfx.Err(err)
	}
	defer out.Close()

	headerWritten := false
	for _, file := range files {
		content, err := os.ReadFile(file)
		if os.IsNotExist(err) {
			lg.Debugf("Skipping missing filtered file %s", file)
			continue
		} else if err != nil {
			return pfx.Err(err)
		}

		if len(content) == 0 {
			continue
		}

		header := content
		var body []byte
		if i := bytes.IndexByte(content, '\n'); i >= 0 {
			header = content[:i+1]
			body = content[i+1:]
		}

		if !headerWritten {
			if _, err := out.Write(header); err != nil {
				return pfx.Err(err)
			}
			headerWritten = true
		}

		if _, err := out.Write(body); err != nil {
			return pfx.Err(err)
		}
	}

	lg.Infof("Merged %d filtered files into %s", len(files), outputPath)

	return nil
}
