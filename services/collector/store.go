package collector

import (
	"context"
	"database/sql"
	"math"
	"time"

	"github.com/Hawk-Jo/baseball-analysis/lib/stats"
	"github.com/Hawk-Jo/baseball-analysis/lib/timezone"
	"github.com/Hawk-Jo/baseball-analysis/services/collector/db"

	"github.com/mazen160/go-random"

	_ "modernc.org/sqlite"
)

// Store archives every collection run in sqlite, so the raw output of
// old runs survives the CSVs being overwritten by newer ones. The flat
// files remain the authoritative input of the analysis stage; the
// archive is for retrospection.
type Store struct {
	db *sql.DB
}

func NewStore(database *sql.DB) (Store, error) {
	_, err := database.Exec(db.Schema)
	if err != nil {
		return Store{}, err
	}
	return Store{db: database}, nil
}

// nullFloat maps NaN onto NULL so missing rate stats stay missing in
// the archive instead of turning into zeros.
func nullFloat(v float64) sql.NullFloat64 {
	if math.IsNaN(v) {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: v, Valid: true}
}

type RunInfo struct {
	ID          string
	Domain      string
	Team        string
	StartedAt   time.Time
	RecordCount int
}

func (s Store) createRun(ctx context.Context, tx *sql.Tx, domain, team string, count int) (string, error) {
	id, err := random.String(12)
	if err != nil {
		return "", err
	}
	_, err = tx.ExecContext(
		ctx,
		`INSERT INTO collection_runs (id, domain, team, started_at, record_count)
		 VALUES (?, ?, ?, ?, ?)`,
		id, domain, team, timezone.Now().Unix(), count,
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

// ArchiveHitters stores one hitter collection run and returns its id.
func (s Store) ArchiveHitters(ctx context.Context, team string, records []stats.HitterSeasonRecord) (string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	id, err := s.createRun(ctx, tx, "hitters", team, len(records))
	if err != nil {
		return "", err
	}

	for _, r := range records {
		_, err := tx.ExecContext(
			ctx,
			`INSERT INTO hitter_records
			 (run_id, season, name, team, g, pa, ab, r, h, doubles, triples, hr, tb, rbi, avg)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			id, r.Season, r.Name, r.Team,
			r.G, r.PA, r.AB, r.R, r.H, r.Doubles, r.Triples, r.HR, r.TB, r.RBI,
			nullFloat(r.AVG),
		)
		if err != nil {
			return "", err
		}
	}
	return id, tx.Commit()
}

// ArchivePitchers stores one pitcher collection run and returns its id.
func (s Store) ArchivePitchers(ctx context.Context, team string, records []stats.PitcherSeasonRecord) (string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	id, err := s.createRun(ctx, tx, "pitchers", team, len(records))
	if err != nil {
		return "", err
	}

	for _, r := range records {
		_, err := tx.ExecContext(
			ctx,
			`INSERT INTO pitcher_records
			 (run_id, season, name, team, g, w, l, sv, hld, ip, h, hr, bb, hbp, so, r, er, era, wpct, whip)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			id, r.Season, r.Name, r.Team,
			r.G, r.W, r.L, r.SV, r.HLD, r.IP,
			r.H, r.HR, r.BB, r.HBP, r.SO, r.R, r.ER,
			nullFloat(r.ERA), nullFloat(r.WPCT), nullFloat(r.WHIP),
		)
		if err != nil {
			return "", err
		}
	}
	return id, tx.Commit()
}

// ListRuns returns all archived runs, newest first.
func (s Store) ListRuns(ctx context.Context) ([]RunInfo, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, domain, team, started_at, record_count
		 FROM collection_runs ORDER BY started_at DESC, id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []RunInfo
	for rows.Next() {
		var run RunInfo
		var startedAt int64
		err := rows.Scan(&run.ID, &run.Domain, &run.Team, &startedAt, &run.RecordCount)
		if err != nil {
			return nil, err
		}
		run.StartedAt = time.Unix(startedAt, 0).In(timezone.Location)
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
