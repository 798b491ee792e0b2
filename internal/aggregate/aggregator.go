// Package aggregate orchestrates the fetch-normalize-merge pipeline: the
// enabled adapters run concurrently, each adapter's raw output flows through
// its normalizer, and the contributions are merged in a fixed source order.
package aggregate

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/jobscout-in/jobscout/internal/config"
	"github.com/jobscout-in/jobscout/internal/models"
	"github.com/jobscout-in/jobscout/internal/network"
	"github.com/jobscout-in/jobscout/internal/normalize"
	"github.com/jobscout-in/jobscout/internal/provider"
	"github.com/rs/zerolog"
)

// Request carries one aggregation's inputs. Zero or more workday targets are
// queried independently; each contributes to the same merged list.
type Request struct {
	Query          string
	City           string
	Location       string
	IncludeAmazon  bool
	IncludeNetflix bool
	Strict         bool
	Targets        []provider.WorkdayTarget
}

// Failure records one adapter's fetch failure. Failures degrade the result
// to "fewer postings"; they are never surfaced as request errors.
type Failure struct {
	Source string
	Err    error
}

// Enforcer revalidates a merged list against the canonical schema. It is a
// best-effort quality gate: when it fails, the unvalidated list is served.
type Enforcer interface {
	Enforce(ctx context.Context, postings []models.Posting) ([]models.Posting, error)
}

type Aggregator struct {
	client   *network.Client
	cfg      config.Config
	enforcer Enforcer
	log      zerolog.Logger

	// sourcesFn builds the adapter set for a request; replaced in tests.
	sourcesFn func(Request) []source
}

func New(client *network.Client, cfg config.Config, enforcer Enforcer, logger zerolog.Logger) *Aggregator {
	a := &Aggregator{
		client:   client,
		cfg:      cfg,
		enforcer: enforcer,
		log:      logger.With().Str("component", "aggregate").Logger(),
	}
	a.sourcesFn = a.sources
	return a
}

// Gather runs the enabled adapters concurrently, waits for all of them to
// settle, merges and filters their normalized contributions, and optionally
// passes the result through the strict enforcer. Adapters still in flight at
// the request deadline are abandoned and counted as failures.
func (a *Aggregator) Gather(ctx context.Context, req Request) ([]models.Posting, []Failure) {
	if a.cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(a.cfg.RequestTimeout)*time.Second)
		defer cancel()
	}

	postings, failures := run(ctx, a.sourcesFn(req))

	for _, failure := range failures {
		logUpstreamFailure(a.log, failure)
	}
	a.log.Info().Int("postings", len(postings)).Int("failures", len(failures)).Msg("collected postings pre-filter")

	postings = Filter(postings, req.Query, req.Location)

	if req.Strict && a.enforcer != nil {
		enforced, err := a.enforcer.Enforce(ctx, postings)
		if err != nil {
			a.log.Warn().Err(err).Msg("strict enforcement failed; returning unvalidated postings")
		} else {
			postings = enforced
		}
	}

	return postings, failures
}

// source is one bound adapter+normalizer pair.
type source interface {
	Name() string
	Fetch(ctx context.Context) ([]models.Posting, error)
}

// sources builds the enabled adapter instances in merge order: amazon, then
// workday targets in request order, then netflix.
func (a *Aggregator) sources(req Request) []source {
	var out []source
	if req.IncludeAmazon {
		out = append(out, amazonSource{
			adapter: provider.NewAmazon(a.client, a.cfg.AmazonPageSize, a.cfg.AmazonMaxPages, a.log),
			query:   req.Query,
			city:    req.City,
		})
	}
	for _, target := range req.Targets {
		out = append(out, workdaySource{
			adapter: provider.NewWorkday(a.client, target, a.log),
			query:   req.Query,
		})
	}
	if req.IncludeNetflix {
		out = append(out, netflixSource{adapter: provider.NewNetflix(a.client, a.log)})
	}
	return out
}

type fetchResult struct {
	order    int
	name     string
	postings []models.Posting
	err      error
}

// run is the fan-out/fan-in barrier. Contributions come back in the order
// sources were given, not completion order, so merged output is deterministic
// regardless of which upstream answers first.
func run(ctx context.Context, sources []source) ([]models.Posting, []Failure) {
	results := make(chan fetchResult, len(sources))
	var wg sync.WaitGroup

	for i, src := range sources {
		wg.Add(1)
		go func(order int, src source) {
			defer wg.Done()
			postings, err := src.Fetch(ctx)
			results <- fetchResult{order: order, name: src.Name(), postings: postings, err: err}
		}(i, src)
	}

	wg.Wait()
	close(results)

	collected := make([]fetchResult, 0, len(sources))
	for res := range results {
		collected = append(collected, res)
	}
	sort.Slice(collected, func(i, j int) bool { return collected[i].order < collected[j].order })

	var (
		postings []models.Posting
		failures []Failure
	)
	for _, res := range collected {
		if res.err != nil {
			failures = append(failures, Failure{Source: res.name, Err: res.err})
			continue
		}
		postings = append(postings, res.postings...)
	}
	return postings, failures
}

func logUpstreamFailure(log zerolog.Logger, failure Failure) {
	event := log.Warn().Str("source", failure.Source).Err(failure.Err)
	var upstream *provider.Error
	if errors.As(failure.Err, &upstream) {
		event = event.Str("host", upstream.Host).Str("kind", string(upstream.Kind))
		if upstream.Site != "" {
			event = event.Str("site", upstream.Site)
		}
		if upstream.Status != 0 {
			event = event.Int("status", upstream.Status)
		}
		if upstream.Body != "" {
			event = event.Str("body", upstream.Body)
		}
	}
	event.Msg("adapter fetch failed")
}

type amazonSource struct {
	adapter *provider.Amazon
	query   string
	city    string
}

func (s amazonSource) Name() string { return models.SourceAmazon }

func (s amazonSource) Fetch(ctx context.Context) ([]models.Posting, error) {
	rows, err := s.adapter.Fetch(ctx, s.query, s.city)
	if err != nil {
		return nil, err
	}
	return normalize.Amazon(rows, s.city), nil
}

type workdaySource struct {
	adapter *provider.Workday
	query   string
}

func (s workdaySource) Name() string {
	target := s.adapter.Target()
	return models.SourceWorkday + ":" + target.Host + "/" + target.Site
}

func (s workdaySource) Fetch(ctx context.Context) ([]models.Posting, error) {
	rows, err := s.adapter.Fetch(ctx, s.query)
	if err != nil {
		return nil, err
	}
	return normalize.Workday(rows, s.adapter.Target()), nil
}

type netflixSource struct {
	adapter *provider.Netflix
}

func (s netflixSource) Name() string { return models.SourceNetflix }

func (s netflixSource) Fetch(ctx context.Context) ([]models.Posting, error) {
	rows, err := s.adapter.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	return normalize.Netflix(rows), nil
}
