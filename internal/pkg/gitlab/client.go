package gitlab

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"code.cloudfoundry.org/lager"
	"github.com/peterhellberg/link"
	"github.com/pkg/errors"
	"github.com/vlad-stoian/gitlab-job-perf/internal/pkg/models"
)

const (
	TokenHeader = "PRIVATE-TOKEN"
	PageSize    = 100
)

type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client

	// Progress receives a running total after every page.
	Progress io.Writer
	Logger   lager.Logger
}

func NewClient(baseURL, token string, progress io.Writer, logger lager.Logger) *Client {
	return &Client{
		BaseURL:    strings.TrimSuffix(baseURL, "/"),
		Token:      token,
		HTTPClient: http.DefaultClient,
		Progress:   progress,
		Logger:     logger,
	}
}

// JobsURL is the first page of successful jobs for the project.
func (c *Client) JobsURL(project string) string {
	query := url.Values{}
	query.Set("scope", "success")
	query.Set("pagination", "keyset")
	query.Set("per_page", fmt.Sprint(PageSize))

	return c.BaseURL + "/api/v4/projects/" + url.PathEscape(project) + "/jobs?" + query.Encode()
}

// FetchJobs walks every page of the job listing, following the rel="next"
// link until the server stops sending one.
func (c *Client) FetchJobs(ctx context.Context, project string) ([]models.RawJob, error) {
	logger := c.Logger.Session("fetch-jobs", lager.Data{"project": project})

	jobs := []models.RawJob{}
	pageURL := c.JobsURL(project)

	for pageURL != "" {
		page, next, err := c.fetchPage(ctx, pageURL)
		if err != nil {
			return nil, err
		}

		jobs = append(jobs, page...)
		logger.Debug("fetched-page", lager.Data{"url": pageURL, "page-size": len(page), "total": len(jobs)})
		if c.Progress != nil {
			fmt.Fprintf(c.Progress, "Got %d jobs\n", len(jobs))
		}

		pageURL = next
	}

	return jobs, nil
}

func (c *Client) fetchPage(ctx context.Context, pageURL string) ([]models.RawJob, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed-to-create-request")
	}

	if c.Token != "" {
		req.Header.Set(TokenHeader, c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed-to-get-jobs-page")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", &StatusError{URL: pageURL, StatusCode: resp.StatusCode}
	}

	var page []models.RawJob
	err = json.NewDecoder(resp.Body).Decode(&page)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed-to-decode-jobs-page")
	}

	next := ""
	if l, found := link.ParseResponse(resp)["next"]; found {
		next = l.URI
	}

	return page, next, nil
}

type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d %s for %s", e.StatusCode, http.StatusText(e.StatusCode), e.URL)
}
