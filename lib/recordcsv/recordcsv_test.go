package recordcsv

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/Hawk-Jo/baseball-analysis/lib/stats"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func TestHitterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hitters.csv")

	records := []stats.HitterSeasonRecord{
		{
			Season: 2024, Name: "최정", Team: "SSG",
			AVG: 0.291, G: 129, PA: 550, AB: 468, R: 93, H: 136,
			Doubles: 21, Triples: 0, HR: 37, TB: 268, RBI: 107,
		},
		{
			Season: 2025, Name: "박성한", Team: "SSG",
			AVG: 0.301, G: 140, PA: 602, AB: 533, R: 78, H: 160,
			Doubles: 25, Triples: 4, HR: 12, TB: 229, RBI: 67,
		},
	}

	require.NoError(t, WriteHitters(path, records))

	got, err := ReadHitters(path)
	require.NoError(t, err)

	if diff := cmp.Diff(records, got); diff != "" {
		t.Fatal(diff)
	}
}

func TestPitcherRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pitchers.csv")

	records := []stats.PitcherSeasonRecord{
		{
			Season: 2024, Name: "김광현", Team: "SSG",
			ERA: 4.21, G: 31, W: 12, L: 5, WPCT: 0.706,
			IP: 160.33, H: 150, HR: 15, BB: 50, HBP: 6, SO: 154,
			R: 80, ER: 75, WHIP: 1.25,
		},
	}

	require.NoError(t, WritePitchers(path, records))

	got, err := ReadPitchers(path)
	require.NoError(t, err)

	if diff := cmp.Diff(records, got, cmpopts.EquateNaNs()); diff != "" {
		t.Fatal(diff)
	}
}

func TestMissingRateStatReadsAsNaN(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pitchers.csv")

	records := []stats.PitcherSeasonRecord{
		{Season: 2024, Name: "신인", Team: "SSG", ERA: math.NaN(), IP: 3.33, G: 2},
	}
	require.NoError(t, WritePitchers(path, records))

	got, err := ReadPitchers(path)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.True(t, math.IsNaN(got[0].ERA))
	require.Equal(t, 3.33, got[0].IP)
}
