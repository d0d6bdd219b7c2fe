package publish

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/vlad-stoian/gitlab-job-perf/internal/pkg/stats"
)

// WriteTextfile writes the summaries in the Prometheus text format, suitable
// for the node_exporter textfile collector.
func WriteTextfile(path, project string, summaries []stats.Summary) error {
	registry := prometheus.NewRegistry()

	durations := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "gitlab_job_duration_seconds",
		Help: "Duration of successful GitLab CI jobs by group.",
	}, []string{"project", "group", "stat"})

	counts := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "gitlab_job_count",
		Help: "Number of successful GitLab CI jobs considered by group.",
	}, []string{"project", "group"})

	registry.MustRegister(durations, counts)

	for _, s := range summaries {
		for stat, value := range statValues(s) {
			durations.WithLabelValues(project, s.Title, stat).Set(value)
		}
		counts.WithLabelValues(project, s.Title).Set(float64(s.Count))
	}

	err := prometheus.WriteToTextfile(path, registry)
	if err != nil {
		return errors.Wrap(err, "failed-to-write-metrics-file")
	}

	return nil
}

func statValues(s stats.Summary) map[string]float64 {
	return map[string]float64{
		"mean":   s.Mean,
		"median": s.Median,
		"p90":    s.P90,
		"max":    s.Max,
	}
}
