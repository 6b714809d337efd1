// Package collector runs the collection pipeline: fetch raw season
// records from a RecordSource, write the per-season and combined CSV
// files, apply the playing-time qualification cutoff and archive the
// run.
package collector

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Hawk-Jo/baseball-analysis/lib/kbo"
	"github.com/Hawk-Jo/baseball-analysis/lib/recordcsv"
	"github.com/Hawk-Jo/baseball-analysis/lib/stats"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/collector")

type Options struct {
	Seasons []int
	Team    string
	// qualification cutoffs, inclusive
	MinPA int
	MinIP float64
	// directory the CSV outputs land in, created if missing
	DataDir string
}

type Service struct {
	source kbo.RecordSource
	store  *Store
	opts   Options
}

// NewService wires a collector. store may be nil to skip archiving.
func NewService(source kbo.RecordSource, store *Store, opts Options) Service {
	return Service{
		source: source,
		store:  store,
		opts:   opts,
	}
}

func (s Service) teamSlug() string {
	return strings.ToLower(s.opts.Team)
}

func (s Service) rawPath(domain string, season int) string {
	return filepath.Join(s.opts.DataDir, fmt.Sprintf("%s_%s_%d_raw.csv", s.teamSlug(), domain, season))
}

func (s Service) allPath(domain string) string {
	return filepath.Join(s.opts.DataDir, fmt.Sprintf("%s_%s_all.csv", s.teamSlug(), domain))
}

// QualifiedPath is where the analysis stage reads its input from.
func (s Service) QualifiedPath(domain string) string {
	return filepath.Join(s.opts.DataDir, fmt.Sprintf("%s_%s_qualified.csv", s.teamSlug(), domain))
}

type HitterCollection struct {
	All       []stats.HitterSeasonRecord
	Qualified []stats.HitterSeasonRecord
	RunID     string
}

type PitcherCollection struct {
	All       []stats.PitcherSeasonRecord
	Qualified []stats.PitcherSeasonRecord
	RunID     string
}

// CollectHitters fetches every configured season in order, writes the
// per-season raw CSVs, the combined CSV and the qualified CSV, then
// archives the combined set.
func (s Service) CollectHitters(ctx context.Context) (HitterCollection, error) {
	ctx, span := tracer.Start(ctx, "CollectHitters")
	defer span.End()
	span.SetAttributes(attribute.String("team", s.opts.Team))

	if err := os.MkdirAll(s.opts.DataDir, 0o755); err != nil {
		return HitterCollection{}, err
	}

	var out HitterCollection
	for _, season := range s.opts.Seasons {
		slog.InfoContext(ctx, "collecting hitter records", "season", season, "team", s.opts.Team)

		records, err := s.source.FetchHitters(ctx, season, s.opts.Team)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "fetch failed")
			return HitterCollection{}, fmt.Errorf("season %d: %w", season, err)
		}
		if err := recordcsv.WriteHitters(s.rawPath("hitters", season), records); err != nil {
			return HitterCollection{}, err
		}
		out.All = append(out.All, records...)
	}

	if err := recordcsv.WriteHitters(s.allPath("hitters"), out.All); err != nil {
		return HitterCollection{}, err
	}

	for _, r := range out.All {
		if r.Qualified(s.opts.MinPA) {
			out.Qualified = append(out.Qualified, r)
		}
	}
	if err := recordcsv.WriteHitters(s.QualifiedPath("hitters"), out.Qualified); err != nil {
		return HitterCollection{}, err
	}

	if s.store != nil {
		id, err := s.store.ArchiveHitters(ctx, s.opts.Team, out.All)
		if err != nil {
			// archiving is best effort, the CSVs are already on disk
			slog.WarnContext(ctx, "failed to archive hitter run", "err", err)
		} else {
			out.RunID = id
		}
	}

	slog.InfoContext(
		ctx, "hitter collection finished",
		"total", len(out.All),
		"qualified", len(out.Qualified),
		"min_pa", s.opts.MinPA,
	)
	return out, nil
}

// CollectPitchers is the pitcher counterpart of CollectHitters, with
// the innings-pitched cutoff in place of plate appearances.
func (s Service) CollectPitchers(ctx context.Context) (PitcherCollection, error) {
	ctx, span := tracer.Start(ctx, "CollectPitchers")
	defer span.End()
	span.SetAttributes(attribute.String("team", s.opts.Team))

	if err := os.MkdirAll(s.opts.DataDir, 0o755); err != nil {
		return PitcherCollection{}, err
	}

	var out PitcherCollection
	for _, season := range s.opts.Seasons {
		slog.InfoContext(ctx, "collecting pitcher records", "season", season, "team", s.opts.Team)

		records, err := s.source.FetchPitchers(ctx, season, s.opts.Team)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "fetch failed")
			return PitcherCollection{}, fmt.Errorf("season %d: %w", season, err)
		}
		if err := recordcsv.WritePitchers(s.rawPath("pitchers", season), records); err != nil {
			return PitcherCollection{}, err
		}
		out.All = append(out.All, records...)
	}

	if err := recordcsv.WritePitchers(s.allPath("pitchers"), out.All); err != nil {
		return PitcherCollection{}, err
	}

	for _, r := range out.All {
		if r.Qualified(s.opts.MinIP) {
			out.Qualified = append(out.Qualified, r)
		}
	}
	if err := recordcsv.WritePitchers(s.QualifiedPath("pitchers"), out.Qualified); err != nil {
		return PitcherCollection{}, err
	}

	if s.store != nil {
		id, err := s.store.ArchivePitchers(ctx, s.opts.Team, out.All)
		if err != nil {
			slog.WarnContext(ctx, "failed to archive pitcher run", "err", err)
		} else {
			out.RunID = id
		}
	}

	slog.InfoContext(
		ctx, "pitcher collection finished",
		"total", len(out.All),
		"qualified", len(out.Qualified),
		"min_ip", s.opts.MinIP,
	)
	return out, nil
}
