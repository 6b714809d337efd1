package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyRole(t *testing.T) {
	testCases := []struct {
		name     string
		record   PitcherSeasonRecord
		expected Role
	}{
		{
			// saves force reliever even though IP/G is moot
			name:     "closer",
			record:   PitcherSeasonRecord{SV: 5, HLD: 0, G: 50, IP: 50},
			expected: RoleReliever,
		},
		{
			name:     "setup man",
			record:   PitcherSeasonRecord{SV: 0, HLD: 12, G: 60, IP: 55},
			expected: RoleReliever,
		},
		{
			name:     "workhorse starter",
			record:   PitcherSeasonRecord{G: 20, IP: 120},
			expected: RoleStarter,
		},
		{
			name:     "long reliever",
			record:   PitcherSeasonRecord{G: 20, IP: 40},
			expected: RoleReliever,
		},
		{
			// save + starter workload: rule 1 must win
			name:     "saving starter",
			record:   PitcherSeasonRecord{SV: 1, G: 20, IP: 100},
			expected: RoleReliever,
		},
		{
			name:     "exactly four innings per game",
			record:   PitcherSeasonRecord{G: 10, IP: 40},
			expected: RoleStarter,
		},
		{
			name:     "no games",
			record:   PitcherSeasonRecord{G: 0, IP: 0},
			expected: RoleReliever,
		},
	}

	for _, test := range testCases {
		got := ClassifyRole(test.record)
		if got != test.expected {
			t.Fatalf("%s: got %q, expected %q", test.name, got, test.expected)
		}
	}
}

func TestDerivePitcherMetrics(t *testing.T) {
	r := PitcherSeasonRecord{
		Name:   "김광현",
		Team:   "SSG",
		Season: 2024,
		G:      31,
		W:      12,
		L:      5,
		IP:     160.33,
		H:      150,
		HR:     15,
		BB:     50,
		HBP:    6,
		SO:     154,
		R:      80,
		ER:     75,
		ERA:    4.21,
	}

	m := DerivePitcherMetrics(r, DefaultFIPConstant)

	require.Equal(t, RoleStarter, m.Role)
	require.InDelta(t, 154.0/160.33*9, m.K9, 1e-9)
	require.InDelta(t, 50.0/160.33*9, m.BB9, 1e-9)
	require.InDelta(t, 154.0/50.0, m.KBB, 1e-9)
	require.InDelta(t, (13*15.0+3*(50.0+6.0)-2*154.0)/160.33+3.20, m.FIP, 1e-9)
	require.InDelta(t, r.ERA-m.FIP, m.ERAFIPDiff, 1e-9)
	require.InDelta(t, 160.33/31.0, m.IPPerGame, 1e-9)
}

func TestDerivePitcherMetricsFIPConstant(t *testing.T) {
	r := PitcherSeasonRecord{G: 20, IP: 100, HR: 10, BB: 30, HBP: 2, SO: 90, ERA: 4.00}
	low := DerivePitcherMetrics(r, 3.00)
	high := DerivePitcherMetrics(r, 3.50)
	require.InDelta(t, 0.5, high.FIP-low.FIP, 1e-9)
}

func TestDerivePitcherMetricsUndefinedKBB(t *testing.T) {
	// BB=0 must yield a tagged missing value...
	m := DerivePitcherMetrics(PitcherSeasonRecord{G: 10, IP: 20, SO: 18, BB: 0}, DefaultFIPConstant)
	require.True(t, math.IsNaN(m.KBB))

	// ...distinguishable from a true ratio of zero
	m = DerivePitcherMetrics(PitcherSeasonRecord{G: 10, IP: 20, SO: 0, BB: 7}, DefaultFIPConstant)
	require.Equal(t, 0.0, m.KBB)
}

func TestDerivePitcherMetricsZeroDenominators(t *testing.T) {
	m := DerivePitcherMetrics(PitcherSeasonRecord{G: 0, IP: 0, SO: 5, BB: 2}, DefaultFIPConstant)
	require.True(t, math.IsNaN(m.K9))
	require.True(t, math.IsNaN(m.BB9))
	require.True(t, math.IsNaN(m.FIP))
	require.True(t, math.IsNaN(m.ERAFIPDiff))
	require.True(t, math.IsNaN(m.IPPerGame))
	require.InDelta(t, 2.5, m.KBB, 1e-9)
}

func TestPitcherQualified(t *testing.T) {
	require.False(t, PitcherSeasonRecord{IP: 14.67}.Qualified(15))
	require.True(t, PitcherSeasonRecord{IP: 15}.Qualified(15))
	require.True(t, PitcherSeasonRecord{IP: 15.33}.Qualified(15))
}
