package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"code.cloudfoundry.org/lager"
	"github.com/pkg/errors"
	"github.com/vlad-stoian/gitlab-job-perf/internal/pkg/cache"
	"github.com/vlad-stoian/gitlab-job-perf/internal/pkg/config"
	"github.com/vlad-stoian/gitlab-job-perf/internal/pkg/filter"
	"github.com/vlad-stoian/gitlab-job-perf/internal/pkg/gitlab"
	"github.com/vlad-stoian/gitlab-job-perf/internal/pkg/group"
	"github.com/vlad-stoian/gitlab-job-perf/internal/pkg/models"
	"github.com/vlad-stoian/gitlab-job-perf/internal/pkg/plot"
	"github.com/vlad-stoian/gitlab-job-perf/internal/pkg/publish"
	"github.com/vlad-stoian/gitlab-job-perf/internal/pkg/stats"
	"github.com/vlad-stoian/gitlab-job-perf/internal/pkg/utils"
)

// Run executes fetch-or-load, cache-write, conversion, filtering, grouping and
// plotting in that order. Operator output goes to out, diagnostics to logger.
func Run(ctx context.Context, opts Options, criteria filter.Criteria, out io.Writer, logger lager.Logger) error {
	logger.Debug("reading-config", lager.Data{"configPath": opts.ConfigPath})
	cfg, err := config.Read(opts.ConfigPath)
	if err != nil {
		return err
	}
	cfg = cfg.FromEnv(os.Getenv)

	if opts.Datadog && cfg.Datadog.APIKey == "" {
		return errors.New("datadog-api-key-missing")
	}

	mode, err := group.ParseMode(opts.By)
	if err != nil {
		return err
	}

	cacher := cache.NewCache(opts.Cache)
	if !cacher.Enabled() {
		fmt.Fprintln(out, "Fetching job statistics. Use --cache=<file>.json to skip this step on future runs.")
	}

	client := gitlab.NewClient(opts.Args.Instance, cfg.GitLab.Token, out, logger)

	logger.Debug("loading-jobs", lager.Data{"instance": opts.Args.Instance, "project": opts.Args.Project, "cachePath": opts.Cache})
	raw, hit, err := cacher.Load(func() ([]models.RawJob, error) {
		return client.FetchJobs(ctx, opts.Args.Project)
	})
	if err != nil {
		return err
	}
	logger.Info("loaded-jobs", lager.Data{"jobs": len(raw), "from-cache": hit})

	jobs, err := models.Decode(raw)
	if err != nil {
		return err
	}

	if opts.Raw {
		utils.PrintRaw(out, jobs)
	}

	records, err := models.Convert(jobs)
	if err != nil {
		return err
	}

	index := models.NewStageIndex(records)
	filtered := filter.Apply(records, criteria)
	groups := group.Split(filtered, mode, index)
	logger.Debug("grouped-jobs", lager.Data{"filtered": len(filtered), "groups": len(groups), "by": mode})

	figures, err := plot.Build(groups, opts.Dist)
	if err != nil {
		return err
	}

	paths, err := plot.NewRenderer(opts.Output, opts.Format, logger).Render(figures)
	if err != nil {
		return err
	}
	for _, path := range paths {
		logger.Info("wrote-plot", lager.Data{"path": path})
	}

	summaries, err := stats.SummarizeAll(groups)
	if err != nil {
		return err
	}
	utils.PrintSummaries(out, summaries)

	if opts.MetricsFile != "" {
		err = publish.WriteTextfile(opts.MetricsFile, opts.Args.Project, summaries)
		if err != nil {
			return err
		}
		logger.Info("wrote-metrics-file", lager.Data{"path": opts.MetricsFile})
	}

	if opts.Datadog {
		dd := publish.NewDatadog(cfg.Datadog.APIKey, cfg.Datadog.AppKey, cfg.Datadog.URL, opts.Args.Project, logger)
		err = dd.Publish(summaries)
		if err != nil {
			return err
		}
	}

	return nil
}
