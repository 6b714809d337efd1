package stats

import "math"

// HitterSeasonRecord is one player's counting line for a single season,
// as collected from the record site. Counting stats are whole numbers,
// AVG comes precomputed from the site.
type HitterSeasonRecord struct {
	Name   string
	Team   string
	Season int

	G       int
	PA      int
	AB      int
	R       int
	H       int
	Doubles int
	Triples int
	HR      int
	TB      int
	RBI     int

	AVG float64
}

// Qualified reports whether the record crosses the minimum
// plate-appearance threshold. The cutoff is inclusive.
func (r HitterSeasonRecord) Qualified(minPA int) bool {
	return r.PA >= minPA
}

// HitterMetrics holds the rate stats derived from a season record.
// Fields whose denominator is zero come out as NaN.
type HitterMetrics struct {
	OBP float64
	SLG float64
	OPS float64
	// Singles is H - 2B - 3B - HR. It can be negative when the
	// upstream counts are inconsistent; that is a data-quality
	// signal and is left to flow into wOBA untouched.
	Singles int
	WOBA    float64
	ISO     float64
}

// linear weights for the wOBA approximation. the walk/HBP term is
// omitted because the site's basic table does not carry those counts.
const (
	wobaSingle = 0.89
	wobaDouble = 1.27
	wobaTriple = 1.62
	wobaHomer  = 2.10
)

// DeriveHitterMetrics computes OBP, SLG, OPS, wOBA and ISO for one
// record. OBP substitutes (PA - AB) for walks+HBP+sacrifices since raw
// walk counts are not collected. The input is not mutated.
func DeriveHitterMetrics(r HitterSeasonRecord) HitterMetrics {
	m := HitterMetrics{
		OBP:  math.NaN(),
		SLG:  math.NaN(),
		OPS:  math.NaN(),
		WOBA: math.NaN(),
		ISO:  math.NaN(),
	}

	m.Singles = r.H - r.Doubles - r.Triples - r.HR

	if r.PA > 0 {
		m.OBP = (float64(r.H) + float64(r.PA-r.AB)) / float64(r.PA)
		m.WOBA = (wobaSingle*float64(m.Singles) +
			wobaDouble*float64(r.Doubles) +
			wobaTriple*float64(r.Triples) +
			wobaHomer*float64(r.HR)) / float64(r.PA)
	}
	if r.AB > 0 {
		m.SLG = float64(r.TB) / float64(r.AB)
		m.ISO = m.SLG - r.AVG
	}

	// NaN + anything is NaN, so a missing OBP or SLG propagates.
	m.OPS = m.OBP + m.SLG

	return m
}

// DerivedHitter pairs a season record with its derived metrics.
type DerivedHitter struct {
	HitterSeasonRecord
	HitterMetrics
}

// DeriveHitters derives metrics for every record, preserving order.
func DeriveHitters(records []HitterSeasonRecord) []DerivedHitter {
	out := make([]DerivedHitter, len(records))
	for i, r := range records {
		out[i] = DerivedHitter{
			HitterSeasonRecord: r,
			HitterMetrics:      DeriveHitterMetrics(r),
		}
	}
	return out
}
