// Package llm wraps the Gemini-backed structured-output service used for
// strict posting validation and job insights research. Both operations are
// external collaborators: callers must treat failures as degradations, not
// request errors.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jobscout-in/jobscout/internal/models"
	"github.com/rs/zerolog"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

var ErrNoAPIKey = errors.New("llm: no API key configured")

const defaultModel = "gemini-2.5-flash"

const enforcePrompt = `You are a strict schema enforcer for job postings.
Return ONLY a JSON array of objects with this exact shape:
{"id": string, "source": string, "company": string, "title": string,
 "location": string or omitted, "remote": boolean or omitted,
 "tech_stack": [lowercase strings], "compensation": object or omitted,
 "url": string or omitted, "job_id": string or omitted,
 "description_snippet": string or omitted}
Do not invent salary data; infer tech_stack only when clearly evidenced in
the title or description. Do not wrap the output in markdown code blocks.

Input postings:
%s`

const insightsPrompt = `You are an insightful and helpful job market researcher.
Analyze the following job search parameters and return ONLY a JSON object:
{"summary": string, "skills": [{"name": string, "description": string,
 "proficiency_level": "Beginner"|"Intermediate"|"Expert", "category": string}],
 "feedback": string}
Do not wrap the output in markdown code blocks.

Parameters: a candidate looking for a position as %s at companies like %s
with %s years of experience%s.`

type Service struct {
	model llms.Model
	log   zerolog.Logger
}

func New(ctx context.Context, apiKey string, logger zerolog.Logger) (*Service, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	client, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(defaultModel),
	)
	if err != nil {
		return nil, fmt.Errorf("llm: create client: %w", err)
	}
	return &Service{model: client, log: logger.With().Str("component", "llm").Logger()}, nil
}

// Enforce revalidates a merged posting list against the canonical schema,
// returning the coerced list or an error the caller should absorb.
func (s *Service) Enforce(ctx context.Context, postings []models.Posting) ([]models.Posting, error) {
	payload, err := json.Marshal(postings)
	if err != nil {
		return nil, err
	}

	resp, err := llms.GenerateFromSinglePrompt(ctx, s.model, fmt.Sprintf(enforcePrompt, payload))
	if err != nil {
		return nil, fmt.Errorf("llm: enforce: %w", err)
	}

	var enforced []models.Posting
	if err := json.Unmarshal([]byte(stripFences(resp)), &enforced); err != nil {
		return nil, fmt.Errorf("llm: enforce output not a posting array: %w", err)
	}
	s.log.Debug().Int("postings", len(enforced)).Msg("strict enforcement applied")
	return enforced, nil
}

// Insights researches the skills a role demands.
func (s *Service) Insights(ctx context.Context, position string, companies []string, yearsExperience string, remote bool) (models.JobInsights, error) {
	remoteClause := ""
	if remote {
		remoteClause = " in a remote role"
	}
	prompt := fmt.Sprintf(insightsPrompt, position, strings.Join(companies, ", "), yearsExperience, remoteClause)

	resp, err := llms.GenerateFromSinglePrompt(ctx, s.model, prompt)
	if err != nil {
		return models.JobInsights{}, fmt.Errorf("llm: insights: %w", err)
	}

	var insights models.JobInsights
	if err := json.Unmarshal([]byte(stripFences(resp)), &insights); err != nil {
		return models.JobInsights{}, fmt.Errorf("llm: insights output not valid JSON: %w", err)
	}
	return insights, nil
}

// stripFences removes a markdown code fence the model sometimes adds despite
// instructions.
func stripFences(resp string) string {
	resp = strings.TrimSpace(resp)
	if !strings.HasPrefix(resp, "```") {
		return resp
	}
	resp = strings.TrimPrefix(resp, "```json")
	resp = strings.TrimPrefix(resp, "```")
	resp = strings.TrimSuffix(strings.TrimSpace(resp), "```")
	return strings.TrimSpace(resp)
}
