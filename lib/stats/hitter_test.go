package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeriveHitterMetrics(t *testing.T) {
	r := HitterSeasonRecord{
		Name:    "최정",
		Team:    "SSG",
		Season:  2024,
		G:       129,
		PA:      550,
		AB:      468,
		R:       93,
		H:       136,
		Doubles: 21,
		Triples: 0,
		HR:      37,
		TB:      268,
		RBI:     107,
		AVG:     0.291,
	}

	m := DeriveHitterMetrics(r)

	require.InDelta(t, (136.0+(550.0-468.0))/550.0, m.OBP, 1e-9)
	require.InDelta(t, 268.0/468.0, m.SLG, 1e-9)
	require.InDelta(t, m.OBP+m.SLG, m.OPS, 1e-9)
	require.Equal(t, 136-21-0-37, m.Singles)
	require.InDelta(t, (0.89*78+1.27*21+1.62*0+2.10*37)/550.0, m.WOBA, 1e-9)
	require.InDelta(t, m.SLG-r.AVG, m.ISO, 1e-9)

	// derivation must not touch the input
	require.Equal(t, 550, r.PA)
	require.Equal(t, 0.291, r.AVG)
}

func TestDeriveHitterMetricsSinglesSumsToHits(t *testing.T) {
	r := HitterSeasonRecord{
		PA: 400, AB: 360, H: 100, Doubles: 20, Triples: 3, HR: 12, TB: 162, AVG: 0.278,
	}
	m := DeriveHitterMetrics(r)
	require.Equal(t, r.H, m.Singles+r.Doubles+r.Triples+r.HR)
}

func TestDeriveHitterMetricsInconsistentCounts(t *testing.T) {
	// extra-base hits exceed total hits: bad upstream data should
	// surface as a negative singles count, not a panic
	r := HitterSeasonRecord{
		PA: 250, AB: 230, H: 10, Doubles: 8, Triples: 2, HR: 5, TB: 40, AVG: 0.043,
	}
	m := DeriveHitterMetrics(r)
	require.Equal(t, -5, m.Singles)
	require.False(t, math.IsNaN(m.WOBA))
}

func TestDeriveHitterMetricsZeroDenominators(t *testing.T) {
	m := DeriveHitterMetrics(HitterSeasonRecord{PA: 0, AB: 0})
	require.True(t, math.IsNaN(m.OBP))
	require.True(t, math.IsNaN(m.SLG))
	require.True(t, math.IsNaN(m.OPS))
	require.True(t, math.IsNaN(m.WOBA))
	require.True(t, math.IsNaN(m.ISO))

	// PA set but no at-bats: on-base side defined, slugging side missing
	m = DeriveHitterMetrics(HitterSeasonRecord{PA: 12, AB: 0, H: 0})
	require.False(t, math.IsNaN(m.OBP))
	require.True(t, math.IsNaN(m.SLG))
	require.True(t, math.IsNaN(m.OPS))
}

func TestHitterQualified(t *testing.T) {
	require.False(t, HitterSeasonRecord{PA: 199}.Qualified(200))
	require.True(t, HitterSeasonRecord{PA: 200}.Qualified(200))
	require.True(t, HitterSeasonRecord{PA: 201}.Qualified(200))
}
