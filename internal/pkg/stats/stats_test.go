package stats_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/vlad-stoian/gitlab-job-perf/internal/pkg/group"
	"github.com/vlad-stoian/gitlab-job-perf/internal/pkg/models"
	"github.com/vlad-stoian/gitlab-job-perf/internal/pkg/stats"
)

func durations(title string, ds ...float64) group.Group {
	g := group.Group{Title: title}
	for _, d := range ds {
		g.Records = append(g.Records, models.Record{Job: models.Job{Duration: d}})
	}
	return g
}

var _ = Describe("Stats", func() {
	It("should summarize the durations of a group", func() {
		summary, err := stats.Summarize(durations("test: unit", 20, 50, 65, 700))
		Expect(err).NotTo(HaveOccurred())

		Expect(summary).To(Equal(stats.Summary{
			Title:  "test: unit",
			Count:  4,
			Mean:   208.75,
			Median: 57.5,
			P90:    700,
			Max:    700,
		}))
	})

	It("should handle a single job", func() {
		summary, err := stats.Summarize(durations("build", 3))
		Expect(err).NotTo(HaveOccurred())

		Expect(summary.Count).To(Equal(1))
		Expect(summary.Median).To(Equal(3.0))
		Expect(summary.P90).To(Equal(3.0))
	})

	It("should refuse an empty group", func() {
		_, err := stats.Summarize(durations("empty"))
		Expect(err).To(MatchError(ContainSubstring(`failed-to-summarize "empty"`)))
	})

	It("should keep group order", func() {
		summaries, err := stats.SummarizeAll([]group.Group{durations("a", 1), durations("b", 2, 4)})
		Expect(err).NotTo(HaveOccurred())

		Expect(summaries).To(HaveLen(2))
		Expect(summaries[0].Title).To(Equal("a"))
		Expect(summaries[1].Mean).To(Equal(3.0))
	})
})
