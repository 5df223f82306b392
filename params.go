package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/coursesqa/courses-api-tests/config"
	"github.com/coursesqa/courses-api-tests/framework"
)

type commandParams struct {
	configPath string
	serviceURL string
	reportDir  string
	filters    framework.RegexFilters
	debug      bool
	debugAll   bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&c.configPath, "config", "", "YAML configuration file")
	fs.StringVar(&c.serviceURL, "url", "", "courses service URL (overrides http_client.url)")
	fs.StringVar(&c.reportDir, "report-dir", "", "directory for report files (overrides report_dir)")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	return true
}

// apply overrides cfg with the flags that were set, then revalidates it.
func (c *commandParams) apply(cfg *config.Config) error {
	if c.serviceURL != "" {
		cfg.HTTPClient.URL = c.serviceURL
	}
	if c.reportDir != "" {
		cfg.ReportDir = c.reportDir
	}
	if c.debugAll {
		cfg.Log.Level = "debug"
	}
	return cfg.Validate()
}
