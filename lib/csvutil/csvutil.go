package csvutil

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// utf8bom is prepended to every file written so Korean player names
// round-trip through spreadsheet tools that sniff the encoding.
var utf8bom = []byte{0xEF, 0xBB, 0xBF}

// WriteFile writes a header row and data rows as UTF-8 CSV with a
// leading byte order mark.
func WriteFile(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	buffered := bufio.NewWriter(f)
	if _, err := buffered.Write(utf8bom); err != nil {
		return err
	}

	w := csv.NewWriter(buffered)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return buffered.Flush()
}

// ReadFile reads a CSV file produced by WriteFile (or any CSV with or
// without a byte order mark) and returns the header and data rows.
func ReadFile(path string) (header []string, rows [][]string, err error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	text := strings.TrimPrefix(string(contents), string(utf8bom))
	r := csv.NewReader(strings.NewReader(text))
	all, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(all) == 0 {
		return nil, nil, nil
	}
	return all[0], all[1:], nil
}

// CoerceFloat parses a numeric cell, mapping empty, "-" or otherwise
// unparseable text to NaN so missing values flow through later math
// instead of raising.
func CoerceFloat(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// CoerceInt parses a counting-stat cell; anything unparseable counts
// as zero.
func CoerceInt(s string) int {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}

// FormatFloat renders a derived value for CSV output. NaN becomes the
// empty cell CoerceFloat maps back to NaN.
func FormatFloat(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
