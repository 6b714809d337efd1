package analysis

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/Hawk-Jo/baseball-analysis/lib/stats"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// ChartRenderer turns an analysis into a self-contained report
// document. The single implementation renders echarts HTML; the
// interface exists so tests can swap in a recorder.
type ChartRenderer interface {
	RenderHitterCharts(a HitterAnalysis, out io.Writer) error
	RenderPitcherCharts(a PitcherAnalysis, out io.Writer) error
}

// EChartsRenderer renders one HTML page of interactive charts per
// analysis.
type EChartsRenderer struct{}

var _ ChartRenderer = EChartsRenderer{}

// barValue maps NaN onto a missing data point so undefined rate stats
// leave a gap instead of plotting as zero.
func barValue(v float64) opts.BarData {
	if math.IsNaN(v) {
		return opts.BarData{Value: nil}
	}
	return opts.BarData{Value: v}
}

func newBar(title string) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: title}))
	return bar
}

func (EChartsRenderer) RenderHitterCharts(a HitterAnalysis, out io.Writer) error {
	page := components.NewPage()

	// team means per metric, one series per season
	metricLabels := []string{"AVG", "OBP", "SLG", "OPS", "wOBA", "ISO"}
	getters := []func(stats.DerivedHitter) float64{
		func(d stats.DerivedHitter) float64 { return d.AVG },
		func(d stats.DerivedHitter) float64 { return d.OBP },
		func(d stats.DerivedHitter) float64 { return d.SLG },
		func(d stats.DerivedHitter) float64 { return d.OPS },
		func(d stats.DerivedHitter) float64 { return d.WOBA },
		func(d stats.DerivedHitter) float64 { return d.ISO },
	}
	means := newBar("team means by metric")
	var seriesA, seriesB []opts.BarData
	for _, get := range getters {
		var before, after []float64
		for _, d := range a.A {
			before = append(before, get(d))
		}
		for _, d := range a.B {
			after = append(after, get(d))
		}
		seriesA = append(seriesA, barValue(mean(before)))
		seriesB = append(seriesB, barValue(mean(after)))
	}
	means.SetXAxis(metricLabels).
		AddSeries(fmt.Sprint(a.SeasonA), seriesA).
		AddSeries(fmt.Sprint(a.SeasonB), seriesB)
	page.AddCharts(means)

	// OPS change for players qualified in both seasons
	deltas := newBar("OPS change by player")
	var names []string
	var deltaData []opts.BarData
	for _, d := range a.OPSDeltas {
		names = append(names, d.Name)
		deltaData = append(deltaData, barValue(d.Delta))
	}
	deltas.SetXAxis(names).AddSeries("OPS delta", deltaData)
	page.AddCharts(deltas)

	// wOBA side by side for the same players
	woba := newBar("wOBA by player")
	wobaA := make(map[string]float64, len(a.A))
	for _, d := range a.A {
		wobaA[d.Name] = d.WOBA
	}
	wobaB := make(map[string]float64, len(a.B))
	for _, d := range a.B {
		wobaB[d.Name] = d.WOBA
	}
	var wobaBefore, wobaAfter []opts.BarData
	for _, d := range a.OPSDeltas {
		wobaBefore = append(wobaBefore, barValue(wobaA[d.Name]))
		wobaAfter = append(wobaAfter, barValue(wobaB[d.Name]))
	}
	woba.SetXAxis(names).
		AddSeries(fmt.Sprint(a.SeasonA), wobaBefore).
		AddSeries(fmt.Sprint(a.SeasonB), wobaAfter)
	page.AddCharts(woba)

	return page.Render(out)
}

func (EChartsRenderer) RenderPitcherCharts(a PitcherAnalysis, out io.Writer) error {
	page := components.NewPage()

	// ERA vs FIP per season, gap = luck
	for _, group := range []struct {
		season   int
		pitchers []stats.DerivedPitcher
	}{
		{a.SeasonA, a.A},
		{a.SeasonB, a.B},
	} {
		eraFip := newBar(fmt.Sprintf("ERA vs FIP, %d", group.season))
		var names []string
		var eraData, fipData []opts.BarData
		for _, d := range group.pitchers {
			names = append(names, d.Name)
			eraData = append(eraData, barValue(d.ERA))
			fipData = append(fipData, barValue(d.FIP))
		}
		eraFip.SetXAxis(names).
			AddSeries("ERA", eraData).
			AddSeries("FIP", fipData)
		page.AddCharts(eraFip)
	}

	// starter workload per season
	workload := newBar("starter innings per game")
	ipgA := make(map[string]float64)
	var starterNames []string
	for _, d := range a.A {
		if d.Role == stats.RoleStarter {
			ipgA[d.Name] = d.IPPerGame
		}
	}
	for _, d := range a.B {
		if d.Role == stats.RoleStarter {
			starterNames = append(starterNames, d.Name)
		}
	}
	var ipgBefore, ipgAfter []opts.BarData
	for _, d := range a.B {
		if d.Role != stats.RoleStarter {
			continue
		}
		prev, ok := ipgA[d.Name]
		if !ok {
			prev = math.NaN()
		}
		ipgBefore = append(ipgBefore, barValue(prev))
		ipgAfter = append(ipgAfter, barValue(d.IPPerGame))
	}
	workload.SetXAxis(starterNames).
		AddSeries(fmt.Sprint(a.SeasonA), ipgBefore).
		AddSeries(fmt.Sprint(a.SeasonB), ipgAfter)
	page.AddCharts(workload)

	// strikeout vs walk rates, bubble size tracks workload
	rates := charts.NewScatter()
	rates.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("K/9 vs BB/9, %d", a.SeasonB)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: "K/9"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: "BB/9"}),
	)
	var points []opts.ScatterData
	for _, d := range a.B {
		if math.IsNaN(d.K9) || math.IsNaN(d.BB9) {
			continue
		}
		points = append(points, opts.ScatterData{
			Name:       d.Name,
			Value:      []interface{}{d.K9, d.BB9},
			SymbolSize: int(5 + d.IP/10),
		})
	}
	rates.AddSeries("pitchers", points)
	page.AddCharts(rates)

	// FIP change for players qualified in both seasons
	deltas := newBar("FIP change by player")
	var deltaNames []string
	var deltaData []opts.BarData
	for _, d := range a.FIPDeltas {
		deltaNames = append(deltaNames, d.Name)
		deltaData = append(deltaData, barValue(d.Delta))
	}
	deltas.SetXAxis(deltaNames).AddSeries("FIP delta", deltaData)
	page.AddCharts(deltas)

	return page.Render(out)
}

// WriteChartFile renders a chart page into the file at path,
// truncating any previous report.
func WriteChartFile(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := render(f); err != nil {
		return fmt.Errorf("rendering %s: %w", path, err)
	}
	return f.Close()
}
