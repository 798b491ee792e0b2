package normalize

import (
	"strings"

	"github.com/jobscout-in/jobscout/internal/models"
	"github.com/jobscout-in/jobscout/internal/provider"
)

// Amazon normalizes raw retailer records, enforcing the India restriction the
// upstream query cannot fully guarantee and narrowing to a city when given.
func Amazon(rows []provider.AmazonJob, city string) []models.Posting {
	out := make([]models.Posting, 0, len(rows))
	for _, row := range rows {
		if posting, ok := amazonPosting(row, city); ok {
			out = append(out, posting)
		}
	}
	return out
}

func amazonPosting(row provider.AmazonJob, city string) (models.Posting, bool) {
	title := firstNonEmpty(row.Title, row.JobTitle)
	if title == "" {
		return models.Posting{}, false
	}

	location := firstNonEmpty(row.NormalizedLocation, row.CityStateOrCountry, row.Location)
	if !IsIndia(location) {
		return models.Posting{}, false
	}
	if city != "" && !strings.Contains(strings.ToLower(location), strings.ToLower(city)) {
		return models.Posting{}, false
	}

	var url string
	if row.JobPath != "" {
		url = "https://www.amazon.jobs" + row.JobPath
	}
	nativeID := firstNonEmpty(row.ID, row.JobID)

	company := row.CompanyName
	if company == "" {
		company = "Amazon"
	}

	desc := firstNonEmpty(row.DescriptionSummary, row.Description, title)
	return models.Posting{
		ID:                 DeriveID(models.SourceAmazon, nativeID, url),
		Source:             models.SourceAmazon,
		Company:            company,
		Title:              title,
		Location:           location,
		Remote:             RemoteHint(location + " " + desc),
		TechStack:          TechStack(title + " " + row.BasicQualifications + " " + row.PreferredQualifications),
		URL:                url,
		JobID:              nativeID,
		DescriptionSnippet: snippet(desc),
	}, true
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}
