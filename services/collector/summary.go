package collector

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

func newSummaryTable(out io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(out)
	return t
}

// WriteHitterSummary renders the qualified hitters of each configured
// season as a console table.
func (s Service) WriteHitterSummary(out io.Writer, c HitterCollection) {
	for _, season := range s.opts.Seasons {
		t := newSummaryTable(out)
		t.SetTitle(fmt.Sprintf("%d season (PA >= %d)", season, s.opts.MinPA))
		t.AppendHeader(table.Row{"name", "G", "PA", "AVG", "HR", "RBI"})

		for _, r := range c.Qualified {
			if r.Season != season {
				continue
			}
			t.AppendRow(table.Row{
				r.Name, r.G, r.PA, fmt.Sprintf("%.3f", r.AVG), r.HR, r.RBI,
			})
		}
		t.Render()
	}
}

// WritePitcherSummary renders the qualified pitchers of each
// configured season as a console table.
func (s Service) WritePitcherSummary(out io.Writer, c PitcherCollection) {
	for _, season := range s.opts.Seasons {
		t := newSummaryTable(out)
		t.SetTitle(fmt.Sprintf("%d season (IP >= %g)", season, s.opts.MinIP))
		t.AppendHeader(table.Row{"name", "G", "IP", "ERA", "W", "L", "SV", "HLD"})

		for _, r := range c.Qualified {
			if r.Season != season {
				continue
			}
			t.AppendRow(table.Row{
				r.Name, r.G, fmt.Sprintf("%.2f", r.IP), fmt.Sprintf("%.2f", r.ERA),
				r.W, r.L, r.SV, r.HLD,
			})
		}
		t.Render()
	}
}
