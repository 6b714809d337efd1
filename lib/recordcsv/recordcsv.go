// Package recordcsv maps player season records to and from the flat
// CSV files shared between the collector and the analysis stages.
package recordcsv

import (
	"fmt"

	"github.com/Hawk-Jo/baseball-analysis/lib/csvutil"
	"github.com/Hawk-Jo/baseball-analysis/lib/stats"
)

var HitterHeader = []string{
	"season", "name", "team",
	"AVG", "G", "PA", "AB", "R", "H", "2B", "3B", "HR", "TB", "RBI",
}

var PitcherHeader = []string{
	"season", "name", "team",
	"ERA", "G", "W", "L", "SV", "HLD", "WPCT",
	"IP", "H", "HR", "BB", "HBP", "SO", "R", "ER", "WHIP",
}

func hitterRow(r stats.HitterSeasonRecord) []string {
	return []string{
		fmt.Sprint(r.Season), r.Name, r.Team,
		csvutil.FormatFloat(r.AVG),
		fmt.Sprint(r.G), fmt.Sprint(r.PA), fmt.Sprint(r.AB), fmt.Sprint(r.R),
		fmt.Sprint(r.H), fmt.Sprint(r.Doubles), fmt.Sprint(r.Triples),
		fmt.Sprint(r.HR), fmt.Sprint(r.TB), fmt.Sprint(r.RBI),
	}
}

func pitcherRow(r stats.PitcherSeasonRecord) []string {
	return []string{
		fmt.Sprint(r.Season), r.Name, r.Team,
		csvutil.FormatFloat(r.ERA),
		fmt.Sprint(r.G), fmt.Sprint(r.W), fmt.Sprint(r.L),
		fmt.Sprint(r.SV), fmt.Sprint(r.HLD),
		csvutil.FormatFloat(r.WPCT),
		csvutil.FormatFloat(r.IP),
		fmt.Sprint(r.H), fmt.Sprint(r.HR), fmt.Sprint(r.BB), fmt.Sprint(r.HBP),
		fmt.Sprint(r.SO), fmt.Sprint(r.R), fmt.Sprint(r.ER),
		csvutil.FormatFloat(r.WHIP),
	}
}

// WriteHitters writes hitter records to path as BOM-prefixed CSV.
func WriteHitters(path string, records []stats.HitterSeasonRecord) error {
	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = hitterRow(r)
	}
	return csvutil.WriteFile(path, HitterHeader, rows)
}

// WritePitchers writes pitcher records to path as BOM-prefixed CSV.
func WritePitchers(path string, records []stats.PitcherSeasonRecord) error {
	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = pitcherRow(r)
	}
	return csvutil.WriteFile(path, PitcherHeader, rows)
}

func columnIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}
	return idx
}

func cell(row []string, idx map[string]int, name string) string {
	i, ok := idx[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

// ReadHitters reads hitter records written by WriteHitters. Column
// order is resolved by header name so hand-edited files still load.
func ReadHitters(path string) ([]stats.HitterSeasonRecord, error) {
	header, rows, err := csvutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	idx := columnIndex(header)

	records := make([]stats.HitterSeasonRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, stats.HitterSeasonRecord{
			Season:  csvutil.CoerceInt(cell(row, idx, "season")),
			Name:    cell(row, idx, "name"),
			Team:    cell(row, idx, "team"),
			AVG:     csvutil.CoerceFloat(cell(row, idx, "AVG")),
			G:       csvutil.CoerceInt(cell(row, idx, "G")),
			PA:      csvutil.CoerceInt(cell(row, idx, "PA")),
			AB:      csvutil.CoerceInt(cell(row, idx, "AB")),
			R:       csvutil.CoerceInt(cell(row, idx, "R")),
			H:       csvutil.CoerceInt(cell(row, idx, "H")),
			Doubles: csvutil.CoerceInt(cell(row, idx, "2B")),
			Triples: csvutil.CoerceInt(cell(row, idx, "3B")),
			HR:      csvutil.CoerceInt(cell(row, idx, "HR")),
			TB:      csvutil.CoerceInt(cell(row, idx, "TB")),
			RBI:     csvutil.CoerceInt(cell(row, idx, "RBI")),
		})
	}
	return records, nil
}

// ReadPitchers reads pitcher records written by WritePitchers.
func ReadPitchers(path string) ([]stats.PitcherSeasonRecord, error) {
	header, rows, err := csvutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	idx := columnIndex(header)

	records := make([]stats.PitcherSeasonRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, stats.PitcherSeasonRecord{
			Season: csvutil.CoerceInt(cell(row, idx, "season")),
			Name:   cell(row, idx, "name"),
			Team:   cell(row, idx, "team"),
			ERA:    csvutil.CoerceFloat(cell(row, idx, "ERA")),
			G:      csvutil.CoerceInt(cell(row, idx, "G")),
			W:      csvutil.CoerceInt(cell(row, idx, "W")),
			L:      csvutil.CoerceInt(cell(row, idx, "L")),
			SV:     csvutil.CoerceInt(cell(row, idx, "SV")),
			HLD:    csvutil.CoerceInt(cell(row, idx, "HLD")),
			WPCT:   csvutil.CoerceFloat(cell(row, idx, "WPCT")),
			IP:     csvutil.CoerceFloat(cell(row, idx, "IP")),
			H:      csvutil.CoerceInt(cell(row, idx, "H")),
			HR:     csvutil.CoerceInt(cell(row, idx, "HR")),
			BB:     csvutil.CoerceInt(cell(row, idx, "BB")),
			HBP:    csvutil.CoerceInt(cell(row, idx, "HBP")),
			SO:     csvutil.CoerceInt(cell(row, idx, "SO")),
			R:      csvutil.CoerceInt(cell(row, idx, "R")),
			ER:     csvutil.CoerceInt(cell(row, idx, "ER")),
			WHIP:   csvutil.CoerceFloat(cell(row, idx, "WHIP")),
		})
	}
	return records, nil
}
