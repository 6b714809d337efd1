package collector

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/Hawk-Jo/baseball-analysis/lib/recordcsv"
	"github.com/Hawk-Jo/baseball-analysis/lib/stats"
	"github.com/Hawk-Jo/baseball-analysis/lib/telemetry"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

type fakeSource struct {
	hitters  map[int][]stats.HitterSeasonRecord
	pitchers map[int][]stats.PitcherSeasonRecord
}

func (f fakeSource) FetchHitters(ctx context.Context, season int, team string) ([]stats.HitterSeasonRecord, error) {
	records, ok := f.hitters[season]
	if !ok {
		return nil, fmt.Errorf("no fixture for season %d", season)
	}
	return records, nil
}

func (f fakeSource) FetchPitchers(ctx context.Context, season int, team string) ([]stats.PitcherSeasonRecord, error) {
	records, ok := f.pitchers[season]
	if !ok {
		return nil, fmt.Errorf("no fixture for season %d", season)
	}
	return records, nil
}

func setupStore(t *testing.T) *Store {
	sqlite, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { sqlite.Close() })

	store, err := NewStore(sqlite)
	require.NoError(t, err)
	return &store
}

func TestCollectHitters(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:collector")
	defer cleanup()

	dataDir := t.TempDir()
	store := setupStore(t)

	source := fakeSource{
		hitters: map[int][]stats.HitterSeasonRecord{
			2024: {
				{Season: 2024, Name: "최정", Team: "SSG", PA: 550, AB: 468, H: 136, TB: 268, AVG: 0.291},
				{Season: 2024, Name: "백업", Team: "SSG", PA: 199, AB: 180, H: 40, TB: 52, AVG: 0.222},
			},
			2025: {
				{Season: 2025, Name: "최정", Team: "SSG", PA: 510, AB: 440, H: 130, TB: 240, AVG: 0.295},
				{Season: 2025, Name: "신인", Team: "SSG", PA: 200, AB: 185, H: 50, TB: 70, AVG: 0.270},
			},
		},
	}

	svc := NewService(source, store, Options{
		Seasons: []int{2024, 2025},
		Team:    "SSG",
		MinPA:   200,
		MinIP:   15,
		DataDir: dataDir,
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	result, err := svc.CollectHitters(ctx)
	require.NoError(t, err)

	require.Len(t, result.All, 4)
	// PA=199 misses the cutoff, PA=200 makes it
	require.Len(t, result.Qualified, 3)
	for _, r := range result.Qualified {
		require.GreaterOrEqual(t, r.PA, 200)
	}
	require.NotEmpty(t, result.RunID)

	// every output file must exist and round-trip
	for _, name := range []string{
		"ssg_hitters_2024_raw.csv",
		"ssg_hitters_2025_raw.csv",
		"ssg_hitters_all.csv",
		"ssg_hitters_qualified.csv",
	} {
		_, err := recordcsv.ReadHitters(filepath.Join(dataDir, name))
		require.NoError(t, err, name)
	}

	qualified, err := recordcsv.ReadHitters(svc.QualifiedPath("hitters"))
	require.NoError(t, err)
	require.Len(t, qualified, 3)

	runs, err := store.ListRuns(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	require.Equal(t, "hitters", runs[0].Domain)
	require.Equal(t, 4, runs[0].RecordCount)
}

func TestCollectPitchers(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:collector")
	defer cleanup()

	dataDir := t.TempDir()

	source := fakeSource{
		pitchers: map[int][]stats.PitcherSeasonRecord{
			2024: {
				{Season: 2024, Name: "김광현", Team: "SSG", G: 31, IP: 160.33, ERA: 4.21, SO: 154, BB: 50},
				{Season: 2024, Name: "한계투수", Team: "SSG", G: 12, IP: 14.67, ERA: 6.00},
			},
			2025: {
				{Season: 2025, Name: "김광현", Team: "SSG", G: 28, IP: 150, ERA: 3.80, SO: 140, BB: 45},
				{Season: 2025, Name: "경계투수", Team: "SSG", G: 10, IP: 15, ERA: 4.50},
			},
		},
	}

	svc := NewService(source, nil, Options{
		Seasons: []int{2024, 2025},
		Team:    "SSG",
		MinPA:   200,
		MinIP:   15,
		DataDir: dataDir,
	})

	ctx := context.Background()
	result, err := svc.CollectPitchers(ctx)
	require.NoError(t, err)

	require.Len(t, result.All, 4)
	// IP=14.67 misses the cutoff, IP=15 exactly makes it
	require.Len(t, result.Qualified, 3)
	// no store wired: archiving skipped without error
	require.Empty(t, result.RunID)

	qualified, err := recordcsv.ReadPitchers(svc.QualifiedPath("pitchers"))
	require.NoError(t, err)
	require.Len(t, qualified, 3)
}

func TestCollectHittersFetchFailure(t *testing.T) {
	svc := NewService(fakeSource{}, nil, Options{
		Seasons: []int{2024},
		Team:    "SSG",
		MinPA:   200,
		DataDir: t.TempDir(),
	})

	_, err := svc.CollectHitters(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "season 2024")
}
