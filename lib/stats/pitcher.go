package stats

import "math"

// PitcherSeasonRecord is one pitcher's counting line for a single
// season. IP is already parsed from thirds notation (see ParseInnings).
// ERA, WPCT and WHIP come precomputed from the site; only ERA is used
// by the derivations, the rest are carried through for reporting.
type PitcherSeasonRecord struct {
	Name   string
	Team   string
	Season int

	G   int
	W   int
	L   int
	SV  int
	HLD int
	IP  float64
	H   int
	HR  int
	BB  int
	HBP int
	SO  int
	R   int
	ER  int

	ERA  float64
	WPCT float64
	WHIP float64
}

// Qualified reports whether the record crosses the minimum
// innings-pitched threshold. The cutoff is inclusive.
func (r PitcherSeasonRecord) Qualified(minIP float64) bool {
	return r.IP >= minIP
}

// Role is a starter/reliever classification.
type Role string

const (
	RoleStarter  Role = "starter"
	RoleReliever Role = "reliever"
)

// ClassifyRole applies the fixed decision rule:
//
//  1. any save or hold -> reliever
//  2. otherwise, G > 0 and at least 4 innings per game -> starter
//  3. otherwise -> reliever
//
// Rule 1 short-circuits rule 2: a pitcher with saves is a reliever no
// matter how many innings per game he averages.
func ClassifyRole(r PitcherSeasonRecord) Role {
	if r.SV >= 1 || r.HLD >= 1 {
		return RoleReliever
	}
	if r.G > 0 && r.IP/float64(r.G) >= 4.0 {
		return RoleStarter
	}
	return RoleReliever
}

// DefaultFIPConstant is the league-context normalizer for FIP,
// approximated from the league average ERA. It is era-specific and
// belongs in configuration, not in the data.
const DefaultFIPConstant = 3.20

// PitcherMetrics holds the rate stats derived from a season record.
// Fields whose denominator is zero come out as NaN; in particular KBB
// with BB=0 is NaN, which keeps it distinguishable from a real ratio
// of zero.
type PitcherMetrics struct {
	Role       Role
	K9         float64
	BB9        float64
	KBB        float64
	FIP        float64
	ERAFIPDiff float64
	IPPerGame  float64
}

// DerivePitcherMetrics computes K9, BB9, K/BB, FIP, the ERA-FIP
// differential and innings per game for one record. A positive
// ERA-FIP differential means actual results were worse than the
// skill-implied ones. The input is not mutated.
func DerivePitcherMetrics(r PitcherSeasonRecord, fipConstant float64) PitcherMetrics {
	m := PitcherMetrics{
		Role:       ClassifyRole(r),
		K9:         math.NaN(),
		BB9:        math.NaN(),
		KBB:        math.NaN(),
		FIP:        math.NaN(),
		ERAFIPDiff: math.NaN(),
		IPPerGame:  math.NaN(),
	}

	if r.IP > 0 {
		m.K9 = float64(r.SO) / r.IP * 9
		m.BB9 = float64(r.BB) / r.IP * 9
		m.FIP = (13*float64(r.HR)+3*float64(r.BB+r.HBP)-2*float64(r.SO))/r.IP + fipConstant
		m.ERAFIPDiff = r.ERA - m.FIP
	}
	if r.BB > 0 {
		m.KBB = float64(r.SO) / float64(r.BB)
	}
	if r.G > 0 {
		m.IPPerGame = r.IP / float64(r.G)
	}

	return m
}

// DerivedPitcher pairs a season record with its derived metrics.
type DerivedPitcher struct {
	PitcherSeasonRecord
	PitcherMetrics
}

// DerivePitchers derives metrics for every record, preserving order.
func DerivePitchers(records []PitcherSeasonRecord, fipConstant float64) []DerivedPitcher {
	out := make([]DerivedPitcher, len(records))
	for i, r := range records {
		out[i] = DerivedPitcher{
			PitcherSeasonRecord: r,
			PitcherMetrics:      DerivePitcherMetrics(r, fipConstant),
		}
	}
	return out
}
