package stats

import (
	"sort"

	"github.com/antzucaro/matchr"
)

// SeasonDelta is the change in one metric for a player who qualified
// in both compared seasons.
type SeasonDelta struct {
	Name   string
	Before float64
	After  float64
	Delta  float64
}

// CompareSeasons joins two per-season metric tables on player name and
// returns the deltas (after - before) sorted ascending. A player
// missing from either table is silently excluded. Name equality is the
// sole join key; two different players sharing a name would merge
// incorrectly, a limitation inherited from the source data (see
// NearMissNames for the advisory check).
func CompareSeasons(before, after map[string]float64) []SeasonDelta {
	var deltas []SeasonDelta
	for name, prev := range before {
		next, ok := after[name]
		if !ok {
			continue
		}
		deltas = append(deltas, SeasonDelta{
			Name:   name,
			Before: prev,
			After:  next,
			Delta:  next - prev,
		})
	}

	sort.Slice(deltas, func(i, j int) bool {
		if deltas[i].Delta != deltas[j].Delta {
			return deltas[i].Delta < deltas[j].Delta
		}
		return deltas[i].Name < deltas[j].Name
	})
	return deltas
}

// MostImproved returns the entry with the largest delta. ok is false
// for an empty comparison.
func MostImproved(deltas []SeasonDelta) (SeasonDelta, bool) {
	if len(deltas) == 0 {
		return SeasonDelta{}, false
	}
	return deltas[len(deltas)-1], true
}

// MostDeclined returns the entry with the smallest delta. ok is false
// for an empty comparison.
func MostDeclined(deltas []SeasonDelta) (SeasonDelta, bool) {
	if len(deltas) == 0 {
		return SeasonDelta{}, false
	}
	return deltas[0], true
}

// NameWarning flags a pair of names from opposite seasons that are
// suspiciously similar but not equal, so an operator can spot a
// spelling drift that the exact-name join would treat as two players.
type NameWarning struct {
	Before     string
	After      string
	Similarity float64
}

// NearMissNames compares the unmatched names of two seasons with
// Jaro-Winkler similarity and reports pairs at or above threshold.
// This is advisory only, it never changes the join.
func NearMissNames(before, after []string, threshold float64) []NameWarning {
	seen := make(map[string]struct{}, len(before))
	for _, name := range before {
		seen[name] = struct{}{}
	}

	var warnings []NameWarning
	for _, b := range before {
		for _, a := range after {
			if a == b {
				continue
			}
			if _, exact := seen[a]; exact {
				// present in both seasons, the join already handles it
				continue
			}
			similarity := matchr.JaroWinkler(b, a, false)
			if similarity >= threshold {
				warnings = append(warnings, NameWarning{
					Before:     b,
					After:      a,
					Similarity: similarity,
				})
			}
		}
	}

	sort.Slice(warnings, func(i, j int) bool {
		return warnings[i].Similarity > warnings[j].Similarity
	})
	return warnings
}
