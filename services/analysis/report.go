package analysis

import (
	"fmt"
	"io"
	"math"

	"github.com/Hawk-Jo/baseball-analysis/lib/stats"

	"github.com/jedib0t/go-pretty/v6/table"
)

func newReportTable(out io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(out)
	return t
}

// fmtRate renders a rate stat, leaving NaN visible as a dash rather
// than a bogus zero.
func fmtRate(v float64, decimals int) string {
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf("%.*f", decimals, v)
}

func fmtSigned(v float64, decimals int) string {
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf("%+.*f", decimals, v)
}

func trendArrow(delta float64) string {
	switch {
	case math.IsNaN(delta) || delta == 0:
		return ""
	case delta > 0:
		return "▲"
	default:
		return "▼"
	}
}

// WriteHitterReport renders the hitter comparison: team-level means per
// season, the player OPS deltas and the near-miss name warnings.
func (s Service) WriteHitterReport(out io.Writer, a HitterAnalysis) {
	type metric struct {
		label string
		get   func(stats.DerivedHitter) float64
	}
	metrics := []metric{
		{"AVG", func(d stats.DerivedHitter) float64 { return d.AVG }},
		{"OBP", func(d stats.DerivedHitter) float64 { return d.OBP }},
		{"SLG", func(d stats.DerivedHitter) float64 { return d.SLG }},
		{"OPS", func(d stats.DerivedHitter) float64 { return d.OPS }},
		{"wOBA", func(d stats.DerivedHitter) float64 { return d.WOBA }},
		{"ISO", func(d stats.DerivedHitter) float64 { return d.ISO }},
	}

	t := newReportTable(out)
	t.SetTitle(fmt.Sprintf("team means, %d vs %d", a.SeasonA, a.SeasonB))
	t.AppendHeader(table.Row{"metric", a.SeasonA, a.SeasonB, "delta", ""})
	for _, m := range metrics {
		var before, after []float64
		for _, d := range a.A {
			before = append(before, m.get(d))
		}
		for _, d := range a.B {
			after = append(after, m.get(d))
		}
		meanA, meanB := mean(before), mean(after)
		t.AppendRow(table.Row{
			m.label, fmtRate(meanA, 3), fmtRate(meanB, 3),
			fmtSigned(meanB-meanA, 3), trendArrow(meanB - meanA),
		})
	}
	t.Render()

	t = newReportTable(out)
	t.SetTitle("OPS by player, both seasons qualified")
	t.AppendHeader(table.Row{"name", a.SeasonA, a.SeasonB, "delta"})
	for _, d := range a.OPSDeltas {
		t.AppendRow(table.Row{
			d.Name, fmtRate(d.Before, 3), fmtRate(d.After, 3), fmtSigned(d.Delta, 3),
		})
	}
	t.Render()

	if up, ok := stats.MostImproved(a.OPSDeltas); ok {
		fmt.Fprintf(out, "most improved OPS: %s (%s)\n", up.Name, fmtSigned(up.Delta, 3))
	}
	if down, ok := stats.MostDeclined(a.OPSDeltas); ok {
		fmt.Fprintf(out, "biggest OPS decline: %s (%s)\n", down.Name, fmtSigned(down.Delta, 3))
	}

	writeNameWarnings(out, a.NameWarnings)
}

// WritePitcherReport renders the pitcher comparison: role-group means
// per season, the FIP deltas, the luck extremes and the name warnings.
func (s Service) WritePitcherReport(out io.Writer, a PitcherAnalysis) {
	t := newReportTable(out)
	t.SetTitle(fmt.Sprintf("role-group means, %d vs %d", a.SeasonA, a.SeasonB))
	t.AppendHeader(table.Row{"group", "metric", a.SeasonA, a.SeasonB})
	for _, role := range []stats.Role{stats.RoleStarter, stats.RoleReliever} {
		type metric struct {
			label    string
			decimals int
			get      func(stats.DerivedPitcher) float64
		}
		metrics := []metric{
			{"ERA", 2, func(d stats.DerivedPitcher) float64 { return d.ERA }},
			{"FIP", 2, func(d stats.DerivedPitcher) float64 { return d.FIP }},
			{"K/9", 2, func(d stats.DerivedPitcher) float64 { return d.K9 }},
			{"BB/9", 2, func(d stats.DerivedPitcher) float64 { return d.BB9 }},
		}
		if role == stats.RoleStarter {
			metrics = append(metrics, metric{
				"IP/G", 2, func(d stats.DerivedPitcher) float64 { return d.IPPerGame },
			})
		}
		for _, m := range metrics {
			t.AppendRow(table.Row{
				string(role), m.label,
				fmtRate(roleMean(a.A, role, m.get), m.decimals),
				fmtRate(roleMean(a.B, role, m.get), m.decimals),
			})
		}
	}
	t.Render()

	t = newReportTable(out)
	t.SetTitle("FIP by player, both seasons qualified")
	t.AppendHeader(table.Row{"name", a.SeasonA, a.SeasonB, "delta"})
	for _, d := range a.FIPDeltas {
		t.AppendRow(table.Row{
			d.Name, fmtRate(d.Before, 2), fmtRate(d.After, 2), fmtSigned(d.Delta, 2),
		})
	}
	t.Render()

	// FIP runs the other way: down is better
	if up, ok := stats.MostDeclined(a.FIPDeltas); ok {
		fmt.Fprintf(out, "biggest FIP improvement: %s (%s)\n", up.Name, fmtSigned(up.Delta, 2))
	}
	if down, ok := stats.MostImproved(a.FIPDeltas); ok {
		fmt.Fprintf(out, "biggest FIP regression: %s (%s)\n", down.Name, fmtSigned(down.Delta, 2))
	}

	if unlucky, ok := luckExtreme(a.B, true); ok {
		fmt.Fprintf(
			out, "unluckiest in %d by ERA-FIP: %s (%s)\n",
			a.SeasonB, unlucky.Name, fmtSigned(unlucky.ERAFIPDiff, 2),
		)
	}
	if lucky, ok := luckExtreme(a.B, false); ok {
		fmt.Fprintf(
			out, "luckiest in %d by ERA-FIP: %s (%s)\n",
			a.SeasonB, lucky.Name, fmtSigned(lucky.ERAFIPDiff, 2),
		)
	}

	writeNameWarnings(out, a.NameWarnings)
}

func writeNameWarnings(out io.Writer, warnings []stats.NameWarning) {
	if len(warnings) == 0 {
		return
	}
	t := newReportTable(out)
	t.SetTitle("possible name drift (not joined)")
	t.AppendHeader(table.Row{"before", "after", "similarity"})
	for _, w := range warnings {
		t.AppendRow(table.Row{w.Before, w.After, fmtRate(w.Similarity, 3)})
	}
	t.Render()
}

func roleMean(pitchers []stats.DerivedPitcher, role stats.Role, get func(stats.DerivedPitcher) float64) float64 {
	var values []float64
	for _, d := range pitchers {
		if d.Role == role {
			values = append(values, get(d))
		}
	}
	return mean(values)
}

// luckExtreme picks the pitcher with the highest (unlucky) or lowest
// (lucky) ERA-FIP differential. NaN differentials are skipped; ok is
// false when none are defined.
func luckExtreme(pitchers []stats.DerivedPitcher, unlucky bool) (stats.DerivedPitcher, bool) {
	var best stats.DerivedPitcher
	found := false
	for _, d := range pitchers {
		if math.IsNaN(d.ERAFIPDiff) {
			continue
		}
		if !found ||
			(unlucky && d.ERAFIPDiff > best.ERAFIPDiff) ||
			(!unlucky && d.ERAFIPDiff < best.ERAFIPDiff) {
			best = d
			found = true
		}
	}
	return best, found
}
