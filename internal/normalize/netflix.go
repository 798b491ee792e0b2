package normalize

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jobscout-in/jobscout/internal/models"
)

// Netflix normalizes positions extracted from the careers microsite payload.
// The payload carries no schema contract, so every field read is defensive;
// a record missing its name is dropped, and India filtering happens here
// because the source supports no server-side country filter.
func Netflix(rows []map[string]any) []models.Posting {
	out := make([]models.Posting, 0, len(rows))
	for _, row := range rows {
		if posting, ok := netflixPosting(row); ok {
			out = append(out, posting)
		}
	}
	return out
}

func netflixPosting(row map[string]any) (models.Posting, bool) {
	title := stringField(row, "name")
	if title == "" {
		return models.Posting{}, false
	}

	location := stringField(row, "location")
	if !strings.Contains(strings.ToLower(location), "india") {
		return models.Posting{}, false
	}

	url := stringField(row, "canonicalPositionUrl")
	nativeID := stringField(row, "ats_job_id")
	if nativeID == "" {
		nativeID = stringField(row, "id")
	}

	return models.Posting{
		ID:                 DeriveID(models.SourceNetflix, nativeID, url),
		Source:             models.SourceNetflix,
		Company:            "Netflix",
		Title:              cleanText(title),
		Location:           location,
		Remote:             RemoteHint(location + " " + title),
		TechStack:          TechStack(title),
		URL:                url,
		JobID:              nativeID,
		DescriptionSnippet: snippet(title),
	}, true
}

// stringField reads a key that may be a string, a number, or missing.
func stringField(row map[string]any, key string) string {
	value, ok := row[key]
	if !ok || value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case json.Number:
		return v.String()
	case float64:
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%v", v)
	default:
		return ""
	}
}
