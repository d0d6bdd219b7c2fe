package plot

import (
	"math"

	"github.com/pkg/errors"
	"github.com/vlad-stoian/gitlab-job-perf/internal/pkg/group"
	gonum "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
)

const (
	DurationLabel = "Duration (s)"
	DateFormat    = "2006-01-02"
)

type Figure struct {
	Title string
	Plot  *gonum.Plot
}

// Overtime scatters each job's duration against its creation time.
func Overtime(g group.Group) (*gonum.Plot, error) {
	p := gonum.New()
	p.Title.Text = g.Title
	p.Y.Label.Text = DurationLabel

	points := make(plotter.XYs, len(g.Records))
	for i, record := range g.Records {
		points[i].X = record.Timestamp
		points[i].Y = record.Duration
	}

	scatter, err := plotter.NewScatter(points)
	if err != nil {
		return nil, errors.Wrap(err, "failed-to-create-scatter")
	}
	p.Add(scatter)

	p.X.Tick.Marker = gonum.TimeTicks{Format: DateFormat}
	p.X.Tick.Label.Rotation = math.Pi / 6
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YTop

	p.Y.Min = 0
	p.Y.Tick.Marker = DurationTicks{}

	return p, nil
}

// Distribution draws a non-cumulative histogram of durations.
func Distribution(g group.Group) (*gonum.Plot, error) {
	p := gonum.New()
	p.Title.Text = g.Title
	p.X.Label.Text = DurationLabel

	durations := make(plotter.Values, len(g.Records))
	for i, record := range g.Records {
		durations[i] = record.Duration
	}

	hist, err := plotter.NewHist(durations, AutoBins(durations))
	if err != nil {
		return nil, errors.Wrap(err, "failed-to-create-histogram")
	}
	p.Add(hist)

	p.Y.Tick.Marker = DurationTicks{}

	return p, nil
}

// Build draws one figure per group, histograms when dist is set.
func Build(groups []group.Group, dist bool) ([]Figure, error) {
	draw := Overtime
	if dist {
		draw = Distribution
	}

	figures := make([]Figure, 0, len(groups))
	for _, g := range groups {
		p, err := draw(g)
		if err != nil {
			return nil, errors.Wrapf(err, "failed-to-plot %q", g.Title)
		}

		figures = append(figures, Figure{Title: g.Title, Plot: p})
	}

	return figures, nil
}
