package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"code.cloudfoundry.org/lager"
	flags "github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/vlad-stoian/gitlab-job-perf/internal/pkg/filter"
	"github.com/vlad-stoian/gitlab-job-perf/internal/pkg/models"
)

type Options struct {
	By   string `long:"by" choice:"stage" choice:"name" choice:"none" default:"name" description:"What granularity to create plots for. To plot all jobs on one graph, use \"none\""`
	Dist bool   `long:"dist" description:"Show a histogram of duration distribution (default is a scatter plot of duration against time)"`

	Since      string `long:"since" description:"The earliest date to consider"`
	Cache      string `long:"cache" description:"A file to write (or use if it exists) the raw API results to"`
	Raw        bool   `long:"raw" description:"Dump the raw data"`
	IgnoreOver *int   `long:"ignore-over" value-name:"SECONDS" description:"Ignore jobs that took longer than this many seconds"`
	Ref        string `long:"ref" description:"Only show jobs for a ref that matches this regexp, e.g. master, or ^123"`
	Stage      string `long:"stage" description:"Only show jobs from a stage that matches this regexp, e.g. test"`
	Job        string `long:"job" value-name:"NAME" description:"Only show jobs with a name that matches this regexp, e.g. ^build$, or \"linux\""`

	Output      string `long:"output" default:"." description:"Directory the plots are written to"`
	Format      string `long:"format" choice:"png" choice:"svg" choice:"pdf" default:"png" description:"Image format of the plots"`
	MetricsFile string `long:"metrics-file" description:"Also write the per-group summaries to this Prometheus textfile"`
	Datadog     bool   `long:"datadog" description:"Also post the per-group summaries to Datadog (needs DATADOG_API_KEY or a config file key)"`
	ConfigPath  string `long:"config-path" description:"Optional JSON config file with GitLab and Datadog credentials"`
	LogLevel    string `long:"log-level" choice:"debug" choice:"info" choice:"error" choice:"fatal" default:"info" description:"Log level"`

	Args struct {
		Instance string `positional-arg-name:"instance" description:"The URL to your gitlab instance, e.g. https://gitlab.example.com"`
		Project  string `positional-arg-name:"project" description:"The project to analyze, e.g. mygroup/proj"`
	} `positional-args:"yes" required:"yes"`
}

var logLevels = map[string]lager.LogLevel{
	"debug": lager.DEBUG,
	"info":  lager.INFO,
	"error": lager.ERROR,
	"fatal": lager.FATAL,
}

// Criteria validates the filter flags. The resolved since date is echoed to
// out so the operator sees how it was interpreted.
func (o Options) Criteria(out io.Writer) (filter.Criteria, error) {
	filterOptions := filter.Options{
		IgnoreOver: o.IgnoreOver,
		Ref:        o.Ref,
		Stage:      o.Stage,
		Job:        o.Job,
	}

	if o.Since != "" {
		since, err := models.ParseTime(o.Since)
		if err != nil {
			return filter.Criteria{}, errors.Wrapf(err, "invalid --since date %q", o.Since)
		}

		fmt.Fprintln(out, "Showing jobs since "+since.Format(time.RFC3339))
		ts := models.Timestamp(since)
		filterOptions.Since = &ts
	}

	return filter.Compile(filterOptions)
}

func main() {
	var opts Options

	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "Visualize Gitlab job performance"

	_, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	logger := lager.NewLogger("gitlab-job-perf")
	logger.RegisterSink(lager.NewWriterSink(os.Stderr, logLevels[opts.LogLevel]))

	criteria, err := opts.Criteria(os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid arguments: %s\n", err)
		os.Exit(1)
	}

	err = Run(context.Background(), opts, criteria, os.Stdout, logger)
	if err != nil {
		logger.Fatal("run-failed", err)
	}
}
