// Package analysis recomputes derived metrics from the qualified
// record files and compares the two configured seasons. Derived values
// are never persisted as authoritative, every run starts again from
// the counting stats.
package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/Hawk-Jo/baseball-analysis/lib/recordcsv"
	"github.com/Hawk-Jo/baseball-analysis/lib/stats"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/analysis")

// names this similar across seasons, yet not equal, get flagged as a
// possible spelling drift
const nameSimilarityThreshold = 0.93

type Options struct {
	// the two seasons under comparison, earlier first
	SeasonA int
	SeasonB int
	// league-context normalizer for FIP; era-specific, so it comes
	// from configuration rather than being buried in the formula
	FIPConstant float64
}

type Service struct {
	opts Options
}

func NewService(opts Options) Service {
	return Service{opts: opts}
}

// HitterAnalysis is the derived view of the qualified hitter table,
// split by season, plus the season-over-season OPS comparison.
type HitterAnalysis struct {
	SeasonA int
	SeasonB int
	A       []stats.DerivedHitter
	B       []stats.DerivedHitter
	// OPS change per player qualified in both seasons, ascending
	OPSDeltas []stats.SeasonDelta
	// advisory near-miss name pairs, they never affect the join
	NameWarnings []stats.NameWarning
}

// PitcherAnalysis is the pitcher counterpart, comparing FIP.
type PitcherAnalysis struct {
	SeasonA int
	SeasonB int
	A       []stats.DerivedPitcher
	B       []stats.DerivedPitcher
	// FIP change per player qualified in both seasons, ascending.
	// negative means improvement.
	FIPDeltas    []stats.SeasonDelta
	NameWarnings []stats.NameWarning
}

// AnalyzeHitters loads the qualified hitter CSV and derives everything
// the reports need. A missing file is a hard error: every downstream
// stage depends on the full table.
func (s Service) AnalyzeHitters(ctx context.Context, qualifiedPath string) (HitterAnalysis, error) {
	ctx, span := tracer.Start(ctx, "AnalyzeHitters")
	defer span.End()
	span.SetAttributes(attribute.String("input", qualifiedPath))

	records, err := recordcsv.ReadHitters(qualifiedPath)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to read qualified hitters")
		return HitterAnalysis{}, fmt.Errorf("reading %s: %w", qualifiedPath, err)
	}

	out := HitterAnalysis{
		SeasonA: s.opts.SeasonA,
		SeasonB: s.opts.SeasonB,
	}
	for _, r := range records {
		derived := stats.DerivedHitter{
			HitterSeasonRecord: r,
			HitterMetrics:      stats.DeriveHitterMetrics(r),
		}
		switch r.Season {
		case s.opts.SeasonA:
			out.A = append(out.A, derived)
		case s.opts.SeasonB:
			out.B = append(out.B, derived)
		default:
			slog.WarnContext(ctx, "ignoring record from unconfigured season", "name", r.Name, "season", r.Season)
		}
	}

	opsA := make(map[string]float64, len(out.A))
	var namesA []string
	for _, d := range out.A {
		opsA[d.Name] = d.OPS
		namesA = append(namesA, d.Name)
	}
	opsB := make(map[string]float64, len(out.B))
	var namesB []string
	for _, d := range out.B {
		opsB[d.Name] = d.OPS
		namesB = append(namesB, d.Name)
	}

	out.OPSDeltas = stats.CompareSeasons(opsA, opsB)
	out.NameWarnings = stats.NearMissNames(namesA, namesB, nameSimilarityThreshold)

	slog.InfoContext(
		ctx, "hitter analysis complete",
		"season_a", len(out.A),
		"season_b", len(out.B),
		"common", len(out.OPSDeltas),
	)
	return out, nil
}

// AnalyzePitchers loads the qualified pitcher CSV and derives
// everything the reports need.
func (s Service) AnalyzePitchers(ctx context.Context, qualifiedPath string) (PitcherAnalysis, error) {
	ctx, span := tracer.Start(ctx, "AnalyzePitchers")
	defer span.End()
	span.SetAttributes(attribute.String("input", qualifiedPath))

	records, err := recordcsv.ReadPitchers(qualifiedPath)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to read qualified pitchers")
		return PitcherAnalysis{}, fmt.Errorf("reading %s: %w", qualifiedPath, err)
	}

	out := PitcherAnalysis{
		SeasonA: s.opts.SeasonA,
		SeasonB: s.opts.SeasonB,
	}
	for _, r := range records {
		derived := stats.DerivedPitcher{
			PitcherSeasonRecord: r,
			PitcherMetrics:      stats.DerivePitcherMetrics(r, s.opts.FIPConstant),
		}
		switch r.Season {
		case s.opts.SeasonA:
			out.A = append(out.A, derived)
		case s.opts.SeasonB:
			out.B = append(out.B, derived)
		default:
			slog.WarnContext(ctx, "ignoring record from unconfigured season", "name", r.Name, "season", r.Season)
		}
	}

	fipA := make(map[string]float64, len(out.A))
	var namesA []string
	for _, d := range out.A {
		fipA[d.Name] = d.FIP
		namesA = append(namesA, d.Name)
	}
	fipB := make(map[string]float64, len(out.B))
	var namesB []string
	for _, d := range out.B {
		fipB[d.Name] = d.FIP
		namesB = append(namesB, d.Name)
	}

	out.FIPDeltas = stats.CompareSeasons(fipA, fipB)
	out.NameWarnings = stats.NearMissNames(namesA, namesB, nameSimilarityThreshold)

	slog.InfoContext(
		ctx, "pitcher analysis complete",
		"season_a", len(out.A),
		"season_b", len(out.B),
		"common", len(out.FIPDeltas),
	)
	return out, nil
}

// mean averages the defined values, skipping NaN the way the metrics
// propagate missing data. All-missing input yields NaN.
func mean(values []float64) float64 {
	var sum float64
	var n int
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}
