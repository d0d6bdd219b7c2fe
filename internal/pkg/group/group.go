package group

import (
	"github.com/pkg/errors"
	"github.com/vlad-stoian/gitlab-job-perf/internal/pkg/models"
)

type Mode string

const (
	ByNone  Mode = "none"
	ByStage Mode = "stage"
	ByName  Mode = "name"

	AllJobsTitle = "All jobs"
)

func ParseMode(value string) (Mode, error) {
	switch mode := Mode(value); mode {
	case ByNone, ByStage, ByName:
		return mode, nil
	default:
		return "", errors.Errorf("unknown grouping %q, expected one of stage, name, none", value)
	}
}

type Group struct {
	Title   string
	Records []models.Record
}

// Split partitions records by mode. Candidate groups come from the index so
// that combinations the filter emptied are skipped, not reported.
func Split(records []models.Record, mode Mode, index *models.StageIndex) []Group {
	var groups []Group

	add := func(title string, keep func(models.Record) bool) {
		var members []models.Record
		for _, record := range records {
			if keep(record) {
				members = append(members, record)
			}
		}

		if len(members) > 0 {
			groups = append(groups, Group{Title: title, Records: members})
		}
	}

	switch mode {
	case ByNone:
		add(AllJobsTitle, func(models.Record) bool { return true })
	case ByStage:
		for _, stage := range index.Stages() {
			stage := stage
			add(stage, func(r models.Record) bool { return r.Stage == stage })
		}
	case ByName:
		for _, stage := range index.Stages() {
			for _, name := range index.Names(stage) {
				stage, name := stage, name
				add(stage+": "+name, func(r models.Record) bool { return r.Stage == stage && r.Name == name })
			}
		}
	}

	return groups
}
