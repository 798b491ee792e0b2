package cmd

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/jobscout-in/jobscout/internal/aggregate"
	"github.com/jobscout-in/jobscout/internal/config"
	"github.com/jobscout-in/jobscout/internal/export"
	"github.com/jobscout-in/jobscout/internal/llm"
	"github.com/jobscout-in/jobscout/internal/provider"
)

type SearchCmd struct {
	Query      string `arg:"" optional:"" help:"Keyword query (default from config)."`
	City       string `help:"City narrowing for the amazon source."`
	Location   string `help:"Location substring filter."`
	Workday    string `help:"Comma-separated host:site:companyHint triples."`
	NoAmazon   bool   `help:"Skip the amazon source."`
	NoNetflix  bool   `help:"Skip the netflix source."`
	Strict     bool   `help:"Run the merged list through strict schema enforcement."`
	Format     string `help:"Output format: table, csv, json, md." enum:",table,csv,json,md" default:""`
	Output     string `name:"output" short:"o" help:"Write output to a file."`
	Proxies    string `help:"Comma-separated proxy URLs." env:"JOBSCOUT_PROXIES"`
}

func (s *SearchCmd) Run(ctx *Context) error {
	cfg := ctx.Config

	query := strings.TrimSpace(s.Query)
	if query == "" {
		query = cfg.DefaultQuery
	}

	targetsRaw := s.Workday
	if strings.TrimSpace(targetsRaw) == "" {
		targetsRaw = cfg.WorkdayTargets
	}
	targets, err := provider.ParseTargets(targetsRaw)
	if err != nil {
		return err
	}

	client, err := buildClient(cfg, s.Proxies)
	if err != nil {
		return err
	}

	runCtx := context.Background()

	var enforcer aggregate.Enforcer
	if s.Strict {
		key := config.GeminiAPIKey()
		if key == "" {
			ctx.UI.Warnf("--strict requested but GEMINI_API_KEY is not set; skipping enforcement")
		} else {
			bootCtx, cancel := context.WithTimeout(runCtx, 15*time.Second)
			svc, err := llm.New(bootCtx, key, ctx.Logger)
			cancel()
			if err != nil {
				return err
			}
			enforcer = svc
		}
	}

	aggregator := aggregate.New(client, cfg, enforcer, ctx.Logger)
	postings, failures := aggregator.Gather(runCtx, aggregate.Request{
		Query:          query,
		City:           s.City,
		Location:       s.Location,
		IncludeAmazon:  !s.NoAmazon,
		IncludeNetflix: !s.NoNetflix,
		Strict:         s.Strict,
		Targets:        targets,
	})

	if ctx.Verbose && len(failures) > 0 {
		ctx.UI.Warnf("Degraded sources:")
		for _, failure := range failures {
			ctx.UI.Warnf("  %s: %v", failure.Source, failure.Err)
		}
	}

	format, err := export.ParseFormat(s.Format)
	if err != nil {
		return err
	}

	writer := ctx.Out
	if s.Output != "" {
		file, err := os.Create(s.Output)
		if err != nil {
			return err
		}
		defer file.Close()
		writer = file
		if format == export.FormatTable && s.Format == "" {
			format = export.FormatCSV
		}
	}

	return export.WritePostings(writer, postings, format)
}
