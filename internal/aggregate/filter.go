package aggregate

import (
	"strings"

	"github.com/jobscout-in/jobscout/internal/models"
)

// Filter applies keyword and location constraints to a merged posting list.
// The keyword is tokenized on whitespace and a posting is retained if any
// token appears case-insensitively in its title or description snippet.
// A location constraint requires a substring match; postings without a
// location fail it. Both constraints AND together; an absent parameter is no
// constraint at all.
func Filter(postings []models.Posting, keyword, location string) []models.Posting {
	tokens := strings.Fields(strings.ToLower(keyword))
	location = strings.ToLower(strings.TrimSpace(location))
	if len(tokens) == 0 && location == "" {
		return postings
	}

	out := make([]models.Posting, 0, len(postings))
	for _, posting := range postings {
		if matchKeyword(posting, tokens) && matchLocation(posting, location) {
			out = append(out, posting)
		}
	}
	return out
}

func matchKeyword(posting models.Posting, tokens []string) bool {
	if len(tokens) == 0 {
		return true
	}
	blob := strings.ToLower(posting.Title + " " + posting.DescriptionSnippet)
	for _, token := range tokens {
		if strings.Contains(blob, token) {
			return true
		}
	}
	return false
}

func matchLocation(posting models.Posting, location string) bool {
	if location == "" {
		return true
	}
	if posting.Location == "" {
		return false
	}
	return strings.Contains(strings.ToLower(posting.Location), location)
}
