package stats

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func TestCompareSeasons(t *testing.T) {
	before := map[string]float64{"김성현": 0.750}
	after := map[string]float64{"김성현": 0.820, "박성한": 0.900}

	deltas := CompareSeasons(before, after)

	diff := cmp.Diff(
		[]SeasonDelta{
			{Name: "김성현", Before: 0.750, After: 0.820, Delta: 0.070},
		},
		deltas,
		cmpopts.EquateApprox(0, 1e-9),
	)
	if diff != "" {
		t.Fatal(diff)
	}
}

func TestCompareSeasonsOrdering(t *testing.T) {
	before := map[string]float64{"a": 1.0, "b": 2.0, "c": 3.0}
	after := map[string]float64{"a": 1.5, "b": 1.0, "c": 3.0}

	deltas := CompareSeasons(before, after)
	require.Len(t, deltas, 3)
	require.Equal(t, "b", deltas[0].Name)
	require.Equal(t, "c", deltas[1].Name)
	require.Equal(t, "a", deltas[2].Name)

	improved, ok := MostImproved(deltas)
	require.True(t, ok)
	require.Equal(t, "a", improved.Name)

	declined, ok := MostDeclined(deltas)
	require.True(t, ok)
	require.Equal(t, "b", declined.Name)
}

func TestCompareSeasonsEmptyIntersection(t *testing.T) {
	deltas := CompareSeasons(
		map[string]float64{"x": 1},
		map[string]float64{"y": 2},
	)
	require.Empty(t, deltas)

	_, ok := MostImproved(deltas)
	require.False(t, ok)
	_, ok = MostDeclined(deltas)
	require.False(t, ok)
}

func TestCompareSeasonsDoesNotMutateInputs(t *testing.T) {
	before := map[string]float64{"kim": 0.7}
	after := map[string]float64{"kim": 0.8}
	CompareSeasons(before, after)
	require.Equal(t, map[string]float64{"kim": 0.7}, before)
	require.Equal(t, map[string]float64{"kim": 0.8}, after)
}

func TestNearMissNames(t *testing.T) {
	warnings := NearMissNames(
		[]string{"martinez", "kim"},
		[]string{"martines", "park"},
		0.9,
	)
	require.Len(t, warnings, 1)
	require.Equal(t, "martinez", warnings[0].Before)
	require.Equal(t, "martines", warnings[0].After)
	require.GreaterOrEqual(t, warnings[0].Similarity, 0.9)
}

func TestNearMissNamesSkipsExactMatches(t *testing.T) {
	// a name present in both seasons is handled by the join and
	// must not be reported against itself or near neighbors
	warnings := NearMissNames(
		[]string{"kim", "lee"},
		[]string{"kim", "lee"},
		0.8,
	)
	require.Empty(t, warnings)
}
