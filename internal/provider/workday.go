package provider

import (
	"context"
	"encoding/json"

	fhttp "github.com/bogdanfinn/fhttp"
	"github.com/jobscout-in/jobscout/internal/network"
	"github.com/rs/zerolog"
)

// workdayIndiaFacet is the locationCountry facet id Workday tenants share for
// India. Tenants that don't index the facet simply ignore it, so records are
// still filtered again after normalization.
const workdayIndiaFacet = "c4f78be1a8f14da0ab49ce1162348a5e"

const workdayPageLimit = 50

type workdaySearchRequest struct {
	AppliedFacets map[string][]string `json:"appliedFacets"`
	Limit         int                 `json:"limit"`
	Offset        int                 `json:"offset"`
	SearchText    string              `json:"searchText"`
}

// WorkdayLocation is the per-posting location element some tenants expose
// instead of locationsText.
type WorkdayLocation struct {
	City string `json:"city"`
}

// WorkdayPosting is one raw record from a tenant's cxs jobs endpoint.
type WorkdayPosting struct {
	Title         string            `json:"title"`
	ExternalPath  string            `json:"externalPath"`
	LocationsText string            `json:"locationsText"`
	Locations     []WorkdayLocation `json:"locations"`
	PostedOn      string            `json:"postedOn"`
	BulletFields  []string          `json:"bulletFields"`
	JobFamily     string            `json:"jobFamily"`
}

type workdaySearchResponse struct {
	JobPostings []WorkdayPosting `json:"jobPostings"`
}

// Workday fetches one tenant career-site instance. Each configured target
// gets its own adapter so targets fail independently.
type Workday struct {
	client *network.Client
	target WorkdayTarget
	log    zerolog.Logger
}

func NewWorkday(client *network.Client, target WorkdayTarget, logger zerolog.Logger) *Workday {
	return &Workday{
		client: client,
		target: target,
		log: logger.With().
			Str("source", "workday").
			Str("host", target.Host).
			Str("site", target.Site).
			Logger(),
	}
}

func (w *Workday) Target() WorkdayTarget {
	return w.target
}

// Fetch POSTs the tenant search with an India country facet. A 400-class
// response usually means the host/site combination is wrong; the body is
// retained for diagnostics.
func (w *Workday) Fetch(ctx context.Context, searchText string) ([]WorkdayPosting, error) {
	payload, err := json.Marshal(workdaySearchRequest{
		AppliedFacets: map[string][]string{"locationCountry": {workdayIndiaFacet}},
		Limit:         workdayPageLimit,
		Offset:        0,
		SearchText:    searchText,
	})
	if err != nil {
		return nil, err
	}

	headers := map[string]string{
		"Accept":       "application/json",
		"Content-Type": "application/json",
		"Origin":       "https://" + w.target.Host,
	}

	status, body, err := fetch(ctx, w.client, fhttp.MethodPost, w.target.URL(), payload, headers)
	if err != nil {
		return nil, &Error{Source: "workday", Host: w.target.Host, Site: w.target.Site, Kind: KindNetwork, Err: err}
	}
	if status < 200 || status >= 300 {
		return nil, &Error{Source: "workday", Host: w.target.Host, Site: w.target.Site, Kind: KindStatus, Status: status, Body: truncateBody(body)}
	}

	rows, err := decodeWorkdaySearch(w.target, body)
	if err != nil {
		return nil, err
	}
	w.log.Debug().Int("rows", len(rows)).Msg("workday fetch complete")
	return rows, nil
}

func decodeWorkdaySearch(target WorkdayTarget, body []byte) ([]WorkdayPosting, error) {
	var payload workdaySearchResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &Error{Source: "workday", Host: target.Host, Site: target.Site, Kind: KindDecode, Body: truncateBody(body), Err: err}
	}
	return payload.JobPostings, nil
}
