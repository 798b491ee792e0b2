// Package export renders canonical postings for the one-shot CLI search.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/jobscout-in/jobscout/internal/models"
)

type Format string

const (
	FormatTable    Format = "table"
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "md"
)

func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "md", "markdown":
		return FormatMarkdown, nil
	case "table", "":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("unknown format: %s", value)
	}
}

func WritePostings(w io.Writer, postings []models.Posting, format Format) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, postings)
	case FormatCSV:
		return writeCSV(w, postings)
	case FormatMarkdown:
		return writeMarkdown(w, postings)
	default:
		return writeTable(w, postings)
	}
}

func writeJSON(w io.Writer, postings []models.Posting) error {
	if postings == nil {
		postings = []models.Posting{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(postings)
}

func writeCSV(w io.Writer, postings []models.Posting) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"id", "source", "company", "title", "location", "remote", "tech_stack", "url"}); err != nil {
		return err
	}
	for _, posting := range postings {
		row := []string{
			posting.ID,
			posting.Source,
			posting.Company,
			posting.Title,
			posting.Location,
			remoteLabel(posting.Remote),
			strings.Join(posting.TechStack, ";"),
			posting.URL,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func writeTable(w io.Writer, postings []models.Posting) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SOURCE\tCOMPANY\tTITLE\tLOCATION\tREMOTE")
	for _, posting := range postings {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			posting.Source, posting.Company, posting.Title, safe(posting.Location), remoteLabel(posting.Remote))
	}
	return tw.Flush()
}

func writeMarkdown(w io.Writer, postings []models.Posting) error {
	if len(postings) == 0 {
		_, err := fmt.Fprintln(w, "No results.")
		return err
	}
	for _, posting := range postings {
		lines := []string{
			fmt.Sprintf("- **%s** (%s)", posting.Title, posting.Company),
			fmt.Sprintf("  Location: %s", safe(posting.Location)),
			fmt.Sprintf("  Source: %s", posting.Source),
		}
		if posting.URL != "" {
			lines = append(lines, fmt.Sprintf("  URL: [Open listing](<%s>)", posting.URL))
		}
		if posting.Remote != nil && *posting.Remote {
			lines = append(lines, "  Remote: yes")
		}
		if len(posting.TechStack) > 0 {
			lines = append(lines, fmt.Sprintf("  Tech: %s", strings.Join(posting.TechStack, ", ")))
		}
		if posting.DescriptionSnippet != "" {
			lines = append(lines, fmt.Sprintf("  Summary: %s", posting.DescriptionSnippet))
		}
		for _, line := range lines {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

func remoteLabel(remote *bool) string {
	switch {
	case remote == nil:
		return "unknown"
	case *remote:
		return "yes"
	default:
		return "no"
	}
}

func safe(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
