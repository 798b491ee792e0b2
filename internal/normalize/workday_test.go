package normalize

import (
	"testing"

	"github.com/jobscout-in/jobscout/internal/provider"
)

var pwcTarget = provider.WorkdayTarget{
	Host:        "pwc.wd3.myworkdayjobs.com",
	Site:        "Global_Experienced_Careers",
	CompanyHint: "pwc",
}

func TestWorkdayNormalization(t *testing.T) {
	rows := []provider.WorkdayPosting{
		{
			Title:         "Full Stack Developer - Senior Associate",
			LocationsText: "Bangalore Millenia, India",
			ExternalPath:  "/job/Bangalore-Millenia/Full-Stack-Developer_123",
			BulletFields:  []string{"543921WD"},
			JobFamily:     "Technology - Java",
		},
		{
			Title:         "Tax Manager",
			LocationsText: "London, United Kingdom",
		},
	}

	postings := Workday(rows, pwcTarget)
	if len(postings) != 1 {
		t.Fatalf("expected 1 India posting, got %d", len(postings))
	}

	posting := postings[0]
	if posting.Company != "Pwc" {
		t.Fatalf("unexpected company %q", posting.Company)
	}
	if posting.URL != "https://pwc.wd3.myworkdayjobs.com/job/Bangalore-Millenia/Full-Stack-Developer_123" {
		t.Fatalf("external path should resolve against the target host, got %q", posting.URL)
	}
	if posting.JobID != "543921WD" {
		t.Fatalf("unexpected native id %q", posting.JobID)
	}
}

func TestWorkdayLocationFromCities(t *testing.T) {
	rows := []provider.WorkdayPosting{
		{
			Title: "Engineer",
			Locations: []provider.WorkdayLocation{
				{City: "Mumbai, India"},
				{City: ""},
			},
		},
	}
	postings := Workday(rows, pwcTarget)
	if len(postings) != 1 {
		t.Fatalf("expected posting built from locations array, got %d", len(postings))
	}
	if postings[0].Location != "Mumbai, India" {
		t.Fatalf("unexpected location %q", postings[0].Location)
	}
}

func TestWorkdayDropsUntitledRecord(t *testing.T) {
	rows := []provider.WorkdayPosting{{LocationsText: "Delhi, India"}}
	if postings := Workday(rows, pwcTarget); len(postings) != 0 {
		t.Fatalf("expected untitled record to be dropped")
	}
}
