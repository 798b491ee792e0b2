package normalize

import (
	"testing"

	"github.com/jobscout-in/jobscout/internal/models"
	"github.com/jobscout-in/jobscout/internal/provider"
)

func TestAmazonNormalization(t *testing.T) {
	rows := []provider.AmazonJob{
		{
			ID:                 "2931930",
			Title:              "Full Stack Engineer, Prime Video",
			CompanyName:        "Amazon Dev Center India",
			NormalizedLocation: "Bengaluru, Karnataka, IND",
			JobPath:            "/en/jobs/2931930/full-stack-engineer",
			DescriptionSummary: "Build video experiences with Java and AWS",
		},
		{
			ID:                 "111",
			Title:              "Software Engineer",
			NormalizedLocation: "Seattle, WA, USA",
		},
	}

	postings := Amazon(rows, "")
	if len(postings) != 1 {
		t.Fatalf("expected 1 India posting, got %d", len(postings))
	}

	posting := postings[0]
	if posting.Source != models.SourceAmazon {
		t.Fatalf("unexpected source %q", posting.Source)
	}
	if posting.URL != "https://www.amazon.jobs/en/jobs/2931930/full-stack-engineer" {
		t.Fatalf("unexpected url %q", posting.URL)
	}
	if posting.JobID != "2931930" {
		t.Fatalf("unexpected native id %q", posting.JobID)
	}
	if posting.Company != "Amazon Dev Center India" {
		t.Fatalf("unexpected company %q", posting.Company)
	}
	if len(posting.TechStack) == 0 {
		t.Fatalf("expected tech stack tags from description")
	}
}

func TestAmazonDropsRecordWithoutTitle(t *testing.T) {
	rows := []provider.AmazonJob{
		{ID: "1", NormalizedLocation: "Bengaluru, India"},
	}
	if postings := Amazon(rows, ""); len(postings) != 0 {
		t.Fatalf("expected record without title to be dropped, got %d", len(postings))
	}
}

func TestAmazonCityNarrowing(t *testing.T) {
	rows := []provider.AmazonJob{
		{ID: "1", Title: "SDE", NormalizedLocation: "Bengaluru, Karnataka, India"},
		{ID: "2", Title: "SDE", NormalizedLocation: "Hyderabad, Telangana, India"},
	}

	postings := Amazon(rows, "Bengaluru")
	if len(postings) != 1 {
		t.Fatalf("expected only the Bengaluru posting, got %d", len(postings))
	}
	if postings[0].JobID != "1" {
		t.Fatalf("wrong posting retained: %q", postings[0].JobID)
	}
}

func TestAmazonNormalizationIsDeterministic(t *testing.T) {
	row := provider.AmazonJob{ID: "42", Title: "SDE II", NormalizedLocation: "Chennai, India", JobPath: "/en/jobs/42"}
	first := Amazon([]provider.AmazonJob{row}, "")
	second := Amazon([]provider.AmazonJob{row}, "")
	if first[0].ID != second[0].ID {
		t.Fatalf("ids differ across runs: %q vs %q", first[0].ID, second[0].ID)
	}
}

func TestAmazonDefaultCompany(t *testing.T) {
	rows := []provider.AmazonJob{{ID: "1", Title: "SDE", Location: "Pune, India"}}
	postings := Amazon(rows, "")
	if len(postings) != 1 || postings[0].Company != "Amazon" {
		t.Fatalf("expected default company Amazon, got %+v", postings)
	}
}
