package utils_test

import (
	"bytes"

	"github.com/fatih/color"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/vlad-stoian/gitlab-job-perf/internal/pkg/models"
	"github.com/vlad-stoian/gitlab-job-perf/internal/pkg/stats"
	"github.com/vlad-stoian/gitlab-job-perf/internal/pkg/utils"
)

var _ = Describe("Utils", func() {
	var out *bytes.Buffer

	BeforeEach(func() {
		color.NoColor = true
		out = &bytes.Buffer{}
	})

	It("should print one line per raw job", func() {
		utils.PrintRaw(out, []models.Job{
			{CreatedAt: "2024-01-01T00:00:00Z", Duration: 50.5, Ref: "main", Stage: "test", Name: "unit"},
			{CreatedAt: "2024-01-02T00:00:00Z", Duration: 700, Stage: "build", Name: "compile"},
		})

		Expect(out.String()).To(Equal(
			"2024-01-01T00:00:00Z 50.5 main test unit\n" +
				"2024-01-02T00:00:00Z 700  build compile\n",
		))
	})

	It("should print a row per summary", func() {
		utils.PrintSummaries(out, []stats.Summary{
			{Title: "test: unit", Count: 4, Mean: 208.75, Median: 57.5, P90: 700, Max: 700},
		})

		Expect(out.String()).To(ContainSubstring("MEDIAN (S)"))
		Expect(out.String()).To(ContainSubstring("test: unit"))
		Expect(out.String()).To(ContainSubstring("208.75"))
	})

	It("should print nothing without summaries", func() {
		utils.PrintSummaries(out, nil)
		Expect(out.String()).To(BeEmpty())
	})
})
