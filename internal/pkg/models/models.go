package models

import (
	"math"
	"time"

	"github.com/jinzhu/now"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

// RawJob is a job object exactly as the jobs API returned it.
type RawJob map[string]interface{}

type Job struct {
	CreatedAt string  `json:"created_at"`
	Duration  float64 `json:"duration"`
	Ref       string  `json:"ref"`
	Stage     string  `json:"stage"`
	Name      string  `json:"name"`
}

// Record is a Job whose creation time has been converted for plotting.
// Timestamp holds Unix seconds.
type Record struct {
	Job

	Created   time.Time
	Timestamp float64
}

// Decode maps raw API objects onto typed jobs. Null fields decode to their
// zero value.
func Decode(raw []RawJob) ([]Job, error) {
	jobs := make([]Job, 0, len(raw))

	for i, r := range raw {
		var job Job
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			TagName:          "json",
			WeaklyTypedInput: true,
			Result:           &job,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed-to-create-decoder")
		}

		err = decoder.Decode(map[string]interface{}(r))
		if err != nil {
			return nil, errors.Wrapf(err, "failed-to-decode-job-%d", i)
		}

		jobs = append(jobs, job)
	}

	return jobs, nil
}

// Convert returns a new record set with each creation timestamp parsed.
// The input slice is left untouched.
func Convert(jobs []Job) ([]Record, error) {
	records := make([]Record, 0, len(jobs))

	for _, job := range jobs {
		created, err := ParseTime(job.CreatedAt)
		if err != nil {
			return nil, errors.Wrapf(err, "failed-to-parse-created-at %q", job.CreatedAt)
		}

		records = append(records, Record{
			Job:       job,
			Created:   created,
			Timestamp: Timestamp(created),
		})
	}

	return records, nil
}

// ParseTime accepts RFC 3339 timestamps as returned by the API and falls back
// to the looser layouts understood by jinzhu/now, interpreted as UTC.
func ParseTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t.UTC(), nil
	}

	t, err := now.ParseInLocation(time.UTC, value)
	if err != nil {
		return time.Time{}, err
	}

	return t.UTC(), nil
}

// Timestamp stays finite for dates UnixNano cannot represent.
func Timestamp(t time.Time) float64 {
	return float64(t.Unix()) + float64(t.Nanosecond())/float64(time.Second)
}

func FromTimestamp(ts float64) time.Time {
	sec, frac := math.Modf(ts)
	return time.Unix(int64(sec), int64(math.Round(frac*float64(time.Second)))).UTC()
}
