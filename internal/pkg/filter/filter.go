package filter

import (
	"math"
	"regexp"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/vlad-stoian/gitlab-job-perf/internal/pkg/models"
)

type Predicate func(string) bool

func MatchAny(string) bool { return true }

// Prefix compiles pattern so that it only matches at the start of the value.
func Prefix(pattern string) (Predicate, error) {
	re, err := regexp.Compile(`\A(?:` + pattern + `)`)
	if err != nil {
		return nil, err
	}

	return re.MatchString, nil
}

// Criteria retains a record only when every field accepts it. Nil predicates
// and a zero MaxDuration are treated as unset.
type Criteria struct {
	Since       float64
	MaxDuration float64

	Ref   Predicate
	Stage Predicate
	Name  Predicate
}

func (c Criteria) withDefaults() Criteria {
	if c.MaxDuration == 0 {
		c.MaxDuration = math.Inf(1)
	}

	for _, p := range []*Predicate{&c.Ref, &c.Stage, &c.Name} {
		if *p == nil {
			*p = MatchAny
		}
	}

	return c
}

func (c Criteria) Match(record models.Record) bool {
	return record.Timestamp >= c.Since &&
		record.Duration <= c.MaxDuration &&
		c.Ref(record.Ref) &&
		c.Stage(record.Stage) &&
		c.Name(record.Name)
}

func Apply(records []models.Record, criteria Criteria) []models.Record {
	criteria = criteria.withDefaults()

	kept := []models.Record{}
	for _, record := range records {
		if criteria.Match(record) {
			kept = append(kept, record)
		}
	}

	return kept
}

// Options holds the raw operator input; empty strings and nil mean unset.
type Options struct {
	Since      *float64
	IgnoreOver *int

	Ref   string
	Stage string
	Job   string
}

// Compile turns Options into Criteria, reporting every bad pattern at once.
func Compile(opts Options) (Criteria, error) {
	var criteria Criteria
	var result error

	if opts.Since != nil {
		criteria.Since = *opts.Since
	}

	if opts.IgnoreOver != nil {
		criteria.MaxDuration = float64(*opts.IgnoreOver)
	}

	patterns := []struct {
		flag    string
		pattern string
		target  *Predicate
	}{
		{"ref", opts.Ref, &criteria.Ref},
		{"stage", opts.Stage, &criteria.Stage},
		{"job", opts.Job, &criteria.Name},
	}

	for _, p := range patterns {
		if p.pattern == "" {
			continue
		}

		predicate, err := Prefix(p.pattern)
		if err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "invalid --%s pattern", p.flag))
			continue
		}

		*p.target = predicate
	}

	if result != nil {
		return Criteria{}, result
	}

	return criteria.withDefaults(), nil
}
