package utils

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/vlad-stoian/gitlab-job-perf/internal/pkg/models"
	"github.com/vlad-stoian/gitlab-job-perf/internal/pkg/stats"
)

var (
	stageColor = color.New(color.FgCyan).SprintFunc()
	nameColor  = color.New(color.FgGreen).SprintFunc()
)

// PrintRaw dumps the fields every job is analysed by, one job per line.
func PrintRaw(w io.Writer, jobs []models.Job) {
	for _, job := range jobs {
		fmt.Fprintln(w, job.CreatedAt, formatSeconds(job.Duration), job.Ref, stageColor(job.Stage), nameColor(job.Name))
	}
}

func PrintSummaries(w io.Writer, summaries []stats.Summary) {
	if len(summaries) == 0 {
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Group", "Jobs", "Mean (s)", "Median (s)", "P90 (s)", "Max (s)"})

	for _, s := range summaries {
		table.Append([]string{
			s.Title,
			strconv.Itoa(s.Count),
			formatSeconds(s.Mean),
			formatSeconds(s.Median),
			formatSeconds(s.P90),
			formatSeconds(s.Max),
		})
	}

	table.Render()
}

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
