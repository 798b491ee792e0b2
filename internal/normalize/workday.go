package normalize

import (
	"strings"

	"github.com/jobscout-in/jobscout/internal/models"
	"github.com/jobscout-in/jobscout/internal/provider"
)

// Workday normalizes one tenant's raw postings. Tenants index different
// facets, so India filtering happens here even though the fetch already asked
// for it.
func Workday(rows []provider.WorkdayPosting, target provider.WorkdayTarget) []models.Posting {
	out := make([]models.Posting, 0, len(rows))
	for _, row := range rows {
		if posting, ok := workdayPosting(row, target); ok {
			out = append(out, posting)
		}
	}
	return out
}

func workdayPosting(row provider.WorkdayPosting, target provider.WorkdayTarget) (models.Posting, bool) {
	title := cleanText(row.Title)
	if title == "" {
		return models.Posting{}, false
	}

	location := row.LocationsText
	if location == "" {
		var cities []string
		for _, loc := range row.Locations {
			if loc.City != "" {
				cities = append(cities, loc.City)
			}
		}
		location = strings.Join(cities, ", ")
	}
	if !strings.Contains(strings.ToLower(location), "india") {
		return models.Posting{}, false
	}

	url := row.ExternalPath
	if url != "" && strings.HasPrefix(url, "/") {
		url = "https://" + target.Host + url
	}

	nativeID := ""
	if len(row.BulletFields) > 0 {
		nativeID = row.BulletFields[0]
	}

	company := target.CompanyHint
	if company != "" {
		company = strings.ToUpper(company[:1]) + company[1:]
	}

	return models.Posting{
		ID:                 DeriveID(models.SourceWorkday, nativeID, url),
		Source:             models.SourceWorkday,
		Company:            company,
		Title:              title,
		Location:           location,
		Remote:             RemoteHint(location + " " + title),
		TechStack:          TechStack(title + " " + row.JobFamily),
		URL:                url,
		JobID:              nativeID,
		DescriptionSnippet: snippet(title),
	}, true
}
