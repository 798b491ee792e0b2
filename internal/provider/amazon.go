package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	fhttp "github.com/bogdanfinn/fhttp"
	"github.com/jobscout-in/jobscout/internal/network"
	"github.com/rs/zerolog"
)

const amazonSearchURL = "https://www.amazon.jobs/en/search.json"

// amazonFacets mirrors the facet list the amazon.jobs frontend sends; the
// endpoint returns thinner records without them.
var amazonFacets = []string{
	"location", "business_category", "category", "schedule_type_id",
	"employee_class", "normalized_location", "job_function_id",
}

// AmazonJob is one raw record from the amazon.jobs search endpoint.
type AmazonJob struct {
	ID                      string `json:"id"`
	JobID                   string `json:"job_id"`
	Title                   string `json:"title"`
	JobTitle                string `json:"job_title"`
	CompanyName             string `json:"company_name"`
	Location                string `json:"location"`
	NormalizedLocation      string `json:"normalized_location"`
	CityStateOrCountry      string `json:"city_state_or_country"`
	JobPath                 string `json:"job_path"`
	Description             string `json:"description"`
	DescriptionSummary      string `json:"description_summary"`
	BasicQualifications     string `json:"basic_qualifications"`
	PreferredQualifications string `json:"preferred_qualifications"`
}

type amazonSearchResponse struct {
	Jobs []AmazonJob `json:"jobs"`
}

// Amazon fetches from the retailer's internal search endpoint. The endpoint
// is not a documented public API; requests must carry browser-like headers or
// risk rejection.
type Amazon struct {
	client   *network.Client
	pageSize int
	maxPages int
	log      zerolog.Logger
}

func NewAmazon(client *network.Client, pageSize, maxPages int, logger zerolog.Logger) *Amazon {
	if pageSize <= 0 {
		pageSize = 50
	}
	if maxPages <= 0 {
		maxPages = 5
	}
	return &Amazon{
		client:   client,
		pageSize: pageSize,
		maxPages: maxPages,
		log:      logger.With().Str("source", "amazon").Logger(),
	}
}

// Fetch pages through the search endpoint until a short page. The query
// targets India broadly; a city narrows it further server-side. No retries.
func (a *Amazon) Fetch(ctx context.Context, query, city string) ([]AmazonJob, error) {
	var rows []AmazonJob
	for page := 0; page < a.maxPages; page++ {
		pageRows, err := a.fetchPage(ctx, query, city, page*a.pageSize)
		if err != nil {
			return nil, err
		}
		rows = append(rows, pageRows...)
		if len(pageRows) < a.pageSize {
			break
		}
	}
	a.log.Debug().Int("rows", len(rows)).Msg("amazon fetch complete")
	return rows, nil
}

func (a *Amazon) fetchPage(ctx context.Context, query, city string, offset int) ([]AmazonJob, error) {
	values := url.Values{}
	values.Set("base_query", query)
	locQuery := city
	if locQuery == "" {
		locQuery = "India"
	}
	values.Set("loc_query", locQuery)
	values.Set("result_limit", fmt.Sprintf("%d", a.pageSize))
	values.Set("offset", fmt.Sprintf("%d", offset))
	values.Set("sort", "recent")
	for _, facet := range amazonFacets {
		values.Add("facets[]", facet)
	}

	target := amazonSearchURL + "?" + values.Encode()
	headers := map[string]string{
		"Accept":  "application/json, text/plain, */*",
		"Referer": "https://www.amazon.jobs/en/search",
	}

	status, body, err := fetch(ctx, a.client, fhttp.MethodGet, target, nil, headers)
	if err != nil {
		return nil, &Error{Source: "amazon", Host: "www.amazon.jobs", Kind: KindNetwork, Err: err}
	}
	if status < 200 || status >= 300 {
		return nil, &Error{Source: "amazon", Host: "www.amazon.jobs", Kind: KindStatus, Status: status, Body: truncateBody(body)}
	}
	return decodeAmazonSearch(body)
}

// decodeAmazonSearch treats a non-JSON response as a failure, not an
// empty-result success; the endpoint serves an HTML block page when it
// decides a client is not a browser.
func decodeAmazonSearch(body []byte) ([]AmazonJob, error) {
	var payload amazonSearchResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &Error{Source: "amazon", Host: "www.amazon.jobs", Kind: KindDecode, Body: truncateBody(body), Err: err}
	}
	return payload.Jobs, nil
}
