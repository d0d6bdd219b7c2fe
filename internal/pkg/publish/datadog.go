package publish

import (
	"time"

	"code.cloudfoundry.org/lager"
	"github.com/pkg/errors"
	"github.com/vlad-stoian/gitlab-job-perf/internal/pkg/stats"
	datadog "gopkg.in/zorkian/go-datadog-api.v2"
)

const MetricPrefix = "gitlab.job."

type Datadog struct {
	Client  *datadog.Client
	Project string
	Now     func() time.Time
	Logger  lager.Logger
}

func NewDatadog(apiKey, appKey, baseURL, project string, logger lager.Logger) *Datadog {
	client := datadog.NewClient(apiKey, appKey)
	if baseURL != "" {
		client.SetBaseUrl(baseURL)
	}

	return &Datadog{
		Client:  client,
		Project: project,
		Now:     time.Now,
		Logger:  logger,
	}
}

// Series turns each summary into gauges sharing one timestamp.
func (d *Datadog) Series(summaries []stats.Summary) []datadog.Metric {
	ts := float64(d.Now().Unix())

	var series []datadog.Metric
	for _, s := range summaries {
		tags := []string{"group:" + s.Title, "project:" + d.Project}

		points := map[string]float64{"count": float64(s.Count)}
		for stat, value := range statValues(s) {
			points["duration."+stat] = value
		}

		for _, name := range []string{"count", "duration.mean", "duration.median", "duration.p90", "duration.max"} {
			series = append(series, datadog.Metric{
				Metric: datadog.String(MetricPrefix + name),
				Type:   datadog.String("gauge"),
				Points: []datadog.DataPoint{{datadog.Float64(ts), datadog.Float64(points[name])}},
				Tags:   tags,
			})
		}
	}

	return series
}

func (d *Datadog) Publish(summaries []stats.Summary) error {
	if len(summaries) == 0 {
		return nil
	}

	series := d.Series(summaries)
	err := d.Client.PostMetrics(series)
	if err != nil {
		return errors.Wrap(err, "failed-to-post-metrics")
	}

	d.Logger.Info("posted-metrics", lager.Data{"series": len(series)})

	return nil
}
