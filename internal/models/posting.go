package models

// Source identifies the upstream a posting came from.
const (
	SourceAmazon  = "amazon"
	SourceWorkday = "workday"
	SourceNetflix = "netflix"
)

// CompensationPeriod values accepted in Compensation.Period.
const (
	PeriodHour  = "hour"
	PeriodDay   = "day"
	PeriodMonth = "month"
	PeriodYear  = "year"
	PeriodTotal = "total"
)

// Compensation describes pay information when an upstream exposes it.
// Every field is independently optional; partial data is valid.
type Compensation struct {
	Currency string   `json:"currency,omitempty"`
	Min      *float64 `json:"min,omitempty"`
	Max      *float64 `json:"max,omitempty"`
	Period   string   `json:"period,omitempty"`
	Notes    string   `json:"notes,omitempty"`
}

// Posting is the canonical job record returned to callers. It is built
// exactly once per normalized source record and never mutated afterwards.
type Posting struct {
	ID                 string        `json:"id"`
	Source             string        `json:"source"`
	Company            string        `json:"company"`
	Title              string        `json:"title"`
	Location           string        `json:"location,omitempty"`
	Remote             *bool         `json:"remote,omitempty"`
	TechStack          []string      `json:"tech_stack"`
	Compensation       *Compensation `json:"compensation,omitempty"`
	URL                string        `json:"url,omitempty"`
	JobID              string        `json:"job_id,omitempty"`
	DescriptionSnippet string        `json:"description_snippet,omitempty"`
}
