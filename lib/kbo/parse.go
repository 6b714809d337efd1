package kbo

import (
	"math"

	"github.com/Hawk-Jo/baseball-analysis/lib/csvutil"
	"github.com/Hawk-Jo/baseball-analysis/lib/htmlutil"
	"github.com/Hawk-Jo/baseball-analysis/lib/stats"

	"github.com/PuerkitoBio/goquery"
)

// cell counts below which a row cannot be a player line (header rows,
// "no results" rows and the like)
const (
	minHitterCells  = 14
	minPitcherCells = 18
)

// parseHitterRows extracts hitter records from the record table of one
// page. Cell layout: rank, name, team, AVG, G, PA, AB, R, H, 2B, 3B,
// HR, TB, RBI, ... (trailing columns ignored).
func parseHitterRows(doc *goquery.Document, season int) []stats.HitterSeasonRecord {
	var records []stats.HitterSeasonRecord

	doc.Find("table tbody tr").Each(func(_ int, row *goquery.Selection) {
		texts := htmlutil.CellTexts(row.Find("td"))
		if len(texts) < minHitterCells {
			return
		}

		records = append(records, stats.HitterSeasonRecord{
			Season:  season,
			Name:    texts[1],
			Team:    texts[2],
			AVG:     csvutil.CoerceFloat(texts[3]),
			G:       csvutil.CoerceInt(texts[4]),
			PA:      csvutil.CoerceInt(texts[5]),
			AB:      csvutil.CoerceInt(texts[6]),
			R:       csvutil.CoerceInt(texts[7]),
			H:       csvutil.CoerceInt(texts[8]),
			Doubles: csvutil.CoerceInt(texts[9]),
			Triples: csvutil.CoerceInt(texts[10]),
			HR:      csvutil.CoerceInt(texts[11]),
			TB:      csvutil.CoerceInt(texts[12]),
			RBI:     csvutil.CoerceInt(texts[13]),
		})
	})

	return records
}

// parsePitcherRows extracts pitcher records from the record table of
// one page. Cell layout: rank, name, team, ERA, G, W, L, SV, HLD,
// WPCT, IP, H, HR, BB, HBP, SO, R, ER, WHIP.
func parsePitcherRows(doc *goquery.Document, season int) []stats.PitcherSeasonRecord {
	var records []stats.PitcherSeasonRecord

	doc.Find("table tbody tr").Each(func(_ int, row *goquery.Selection) {
		texts := htmlutil.CellTexts(row.Find("td"))
		if len(texts) < minPitcherCells {
			return
		}

		r := stats.PitcherSeasonRecord{
			Season: season,
			WHIP:   math.NaN(),
			Name:   texts[1],
			Team:   texts[2],
			ERA:    csvutil.CoerceFloat(texts[3]),
			G:      csvutil.CoerceInt(texts[4]),
			W:      csvutil.CoerceInt(texts[5]),
			L:      csvutil.CoerceInt(texts[6]),
			SV:     csvutil.CoerceInt(texts[7]),
			HLD:    csvutil.CoerceInt(texts[8]),
			WPCT:   csvutil.CoerceFloat(texts[9]),
			IP:     stats.ParseInnings(texts[10]),
			H:      csvutil.CoerceInt(texts[11]),
			HR:     csvutil.CoerceInt(texts[12]),
			BB:     csvutil.CoerceInt(texts[13]),
			HBP:    csvutil.CoerceInt(texts[14]),
			SO:     csvutil.CoerceInt(texts[15]),
			R:      csvutil.CoerceInt(texts[16]),
			ER:     csvutil.CoerceInt(texts[17]),
		}
		if len(texts) > 18 {
			r.WHIP = csvutil.CoerceFloat(texts[18])
		}
		records = append(records, r)
	})

	return records
}

func filterHittersByTeam(records []stats.HitterSeasonRecord, team string) []stats.HitterSeasonRecord {
	filtered := records[:0]
	for _, r := range records {
		if r.Team == team {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func filterPitchersByTeam(records []stats.PitcherSeasonRecord, team string) []stats.PitcherSeasonRecord {
	filtered := records[:0]
	for _, r := range records {
		if r.Team == team {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
