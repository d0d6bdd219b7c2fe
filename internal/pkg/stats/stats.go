package stats

import (
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"github.com/vlad-stoian/gitlab-job-perf/internal/pkg/group"
)

// Summary describes the durations of one group, in seconds.
type Summary struct {
	Title  string
	Count  int
	Mean   float64
	Median float64
	P90    float64
	Max    float64
}

func Summarize(g group.Group) (Summary, error) {
	durations := make(stats.Float64Data, len(g.Records))
	for i, record := range g.Records {
		durations[i] = record.Duration
	}

	summary := Summary{Title: g.Title, Count: len(durations)}

	var err error
	if summary.Mean, err = durations.Mean(); err != nil {
		return Summary{}, errors.Wrapf(err, "failed-to-summarize %q", g.Title)
	}
	if summary.Median, err = durations.Median(); err != nil {
		return Summary{}, errors.Wrapf(err, "failed-to-summarize %q", g.Title)
	}
	if summary.P90, err = stats.PercentileNearestRank(durations, 90); err != nil {
		return Summary{}, errors.Wrapf(err, "failed-to-summarize %q", g.Title)
	}
	if summary.Max, err = durations.Max(); err != nil {
		return Summary{}, errors.Wrapf(err, "failed-to-summarize %q", g.Title)
	}

	return summary, nil
}

func SummarizeAll(groups []group.Group) ([]Summary, error) {
	summaries := make([]Summary, 0, len(groups))
	for _, g := range groups {
		summary, err := Summarize(g)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}
