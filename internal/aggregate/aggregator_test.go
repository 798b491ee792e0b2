package aggregate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jobscout-in/jobscout/internal/config"
	"github.com/jobscout-in/jobscout/internal/models"
	"github.com/rs/zerolog"
)

type stubSource struct {
	name     string
	postings []models.Posting
	err      error
	delay    time.Duration
}

func (s stubSource) Name() string { return s.name }

func (s stubSource) Fetch(ctx context.Context) ([]models.Posting, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return s.postings, s.err
}

func TestRunSurvivesPartialFailure(t *testing.T) {
	sources := []source{
		stubSource{name: "amazon", postings: []models.Posting{{ID: "amazon-1", Title: "SDE"}}},
		stubSource{name: "workday:pwc.wd3.myworkdayjobs.com/Global_Experienced_Careers", err: errors.New("connection reset")},
		stubSource{name: "netflix", postings: []models.Posting{{ID: "netflix-1", Title: "Engineer"}}},
	}

	postings, failures := run(context.Background(), sources)

	if len(postings) != 2 {
		t.Fatalf("expected 2 postings from the surviving adapters, got %d", len(postings))
	}
	if len(failures) != 1 {
		t.Fatalf("expected 1 failure, got %d", len(failures))
	}
	if failures[0].Source != "workday:pwc.wd3.myworkdayjobs.com/Global_Experienced_Careers" {
		t.Fatalf("unexpected failing source: %q", failures[0].Source)
	}
}

func TestRunOrderIndependentOfCompletion(t *testing.T) {
	// The first source finishes last; merged output must still lead with it.
	sources := []source{
		stubSource{name: "amazon", delay: 30 * time.Millisecond, postings: []models.Posting{{ID: "amazon-1"}}},
		stubSource{name: "workday", postings: []models.Posting{{ID: "workday-1"}}},
		stubSource{name: "netflix", postings: []models.Posting{{ID: "netflix-1"}}},
	}

	postings, failures := run(context.Background(), sources)

	if len(failures) != 0 {
		t.Fatalf("unexpected failures: %+v", failures)
	}
	want := []string{"amazon-1", "workday-1", "netflix-1"}
	for i, id := range want {
		if postings[i].ID != id {
			t.Fatalf("position %d: expected %q, got %q", i, id, postings[i].ID)
		}
	}
}

type stubEnforcer struct {
	out []models.Posting
	err error
}

func (e stubEnforcer) Enforce(ctx context.Context, postings []models.Posting) ([]models.Posting, error) {
	if e.err != nil {
		return nil, e.err
	}
	return e.out, nil
}

func newTestAggregator(enforcer Enforcer, sources []source) *Aggregator {
	a := New(nil, config.Config{}, enforcer, zerolog.Nop())
	a.sourcesFn = func(Request) []source { return sources }
	return a
}

func TestGatherEnforcerFailureFallsBack(t *testing.T) {
	merged := []models.Posting{{ID: "amazon-1", Title: "Full Stack Engineer"}}
	agg := newTestAggregator(
		stubEnforcer{err: errors.New("model unavailable")},
		[]source{stubSource{name: "amazon", postings: merged}},
	)

	postings, failures := agg.Gather(context.Background(), Request{Strict: true})

	if len(failures) != 0 {
		t.Fatalf("unexpected adapter failures: %+v", failures)
	}
	if len(postings) != 1 || postings[0].ID != "amazon-1" {
		t.Fatalf("expected the unvalidated postings back, got %+v", postings)
	}
}

func TestGatherStrictAppliesEnforcer(t *testing.T) {
	merged := []models.Posting{
		{ID: "amazon-1", Title: "Engineer"},
		{ID: "amazon-2", Title: "Engineer II"},
	}
	agg := newTestAggregator(
		stubEnforcer{out: merged[:1]},
		[]source{stubSource{name: "amazon", postings: merged}},
	)

	postings, _ := agg.Gather(context.Background(), Request{Strict: true})
	if len(postings) != 1 {
		t.Fatalf("expected the enforced subset, got %d postings", len(postings))
	}
}

func TestGatherStrictDisabledSkipsEnforcer(t *testing.T) {
	merged := []models.Posting{{ID: "amazon-1", Title: "Engineer"}}
	agg := newTestAggregator(
		stubEnforcer{err: errors.New("should not be called")},
		[]source{stubSource{name: "amazon", postings: merged}},
	)

	postings, _ := agg.Gather(context.Background(), Request{Strict: false})
	if len(postings) != 1 {
		t.Fatalf("expected postings untouched, got %+v", postings)
	}
}

func TestGatherAbandonsSlowSourcesAtDeadline(t *testing.T) {
	sources := []source{
		stubSource{name: "amazon", postings: []models.Posting{{ID: "amazon-1", Title: "SDE"}}},
		stubSource{name: "netflix", delay: 500 * time.Millisecond, postings: []models.Posting{{ID: "netflix-1"}}},
	}
	agg := newTestAggregator(nil, sources)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	postings, failures := agg.Gather(ctx, Request{})

	if len(postings) != 1 || postings[0].ID != "amazon-1" {
		t.Fatalf("completed contributions should survive the deadline, got %+v", postings)
	}
	if len(failures) != 1 || failures[0].Source != "netflix" {
		t.Fatalf("expected the slow source reported as failed, got %+v", failures)
	}
	if !errors.Is(failures[0].Err, context.DeadlineExceeded) {
		t.Fatalf("expected a deadline error, got %v", failures[0].Err)
	}
}

func TestGatherAppliesQueryFilter(t *testing.T) {
	merged := []models.Posting{
		{ID: "amazon-1", Title: "Full Stack Engineer, Prime Video"},
		{ID: "amazon-2", Title: "Data Analyst"},
	}
	agg := newTestAggregator(nil, []source{stubSource{name: "amazon", postings: merged}})

	postings, _ := agg.Gather(context.Background(), Request{Query: "Full Stack"})
	if len(postings) != 1 || postings[0].ID != "amazon-1" {
		t.Fatalf("expected the keyword filter to apply, got %+v", postings)
	}
}

func TestSourcesRespectToggles(t *testing.T) {
	agg := New(nil, config.Config{}, nil, zerolog.Nop())

	if got := agg.sources(Request{}); len(got) != 0 {
		t.Fatalf("expected no sources, got %d", len(got))
	}
	if got := agg.sources(Request{IncludeAmazon: true, IncludeNetflix: true}); len(got) != 2 {
		t.Fatalf("expected 2 sources, got %d", len(got))
	}
}
