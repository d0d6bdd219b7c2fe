package cache

import (
	"encoding/json"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
	"github.com/vlad-stoian/gitlab-job-perf/internal/pkg/models"
)

type FetchFunc func() ([]models.RawJob, error)

// Cache bypasses the fetch entirely when its file exists. It never merges
// or checks freshness; the file is replaced wholesale on every fetch.
type Cache struct {
	FilePath string
}

func NewCache(cachePath string) Cache {
	return Cache{FilePath: cachePath}
}

func (c Cache) Enabled() bool {
	return c.FilePath != ""
}

// Load returns the cached jobs if the file exists, otherwise fetches them and
// writes them back when caching is enabled.
func (c Cache) Load(fetch FetchFunc) ([]models.RawJob, bool, error) {
	if c.Enabled() {
		jobs, found, err := ReadCache(c.FilePath)
		if err != nil {
			return nil, false, err
		}

		if found {
			return jobs, true, nil
		}
	}

	jobs, err := fetch()
	if err != nil {
		return nil, false, err
	}

	if c.Enabled() {
		err = WriteCache(c.FilePath, jobs)
		if err != nil {
			return nil, false, err
		}
	}

	return jobs, false, nil
}

func ReadCache(cachePath string) ([]models.RawJob, bool, error) {
	raw, err := ioutil.ReadFile(cachePath)
	if os.IsNotExist(err) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, errors.Wrap(err, "failed-to-read-cache-file")
	}

	var jobs []models.RawJob
	err = json.Unmarshal(raw, &jobs)
	if err != nil {
		return nil, false, errors.Wrap(err, "failed-to-unmarshal-cache")
	}

	return jobs, true, nil
}

func WriteCache(cachePath string, jobs []models.RawJob) error {
	raw, err := json.Marshal(jobs)
	if err != nil {
		return errors.Wrap(err, "failed-to-marshal-cache")
	}

	err = ioutil.WriteFile(cachePath, raw, 0644)
	if err != nil {
		return errors.Wrap(err, "failed-to-write-cache-file")
	}

	return nil
}
