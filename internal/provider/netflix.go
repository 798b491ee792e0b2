package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
	fhttp "github.com/bogdanfinn/fhttp"
	"github.com/jobscout-in/jobscout/internal/network"
	"github.com/rs/zerolog"
)

const netflixCareersURL = "https://explore.jobs.netflix.net/careers"

// Netflix fetches the careers microsite HTML and extracts the "positions"
// JSON array embedded in a script tag. The payload shape is reverse
// engineered from observed page structure, not a contract: absent or
// relocated keys mean "no data", never a hard failure.
type Netflix struct {
	client *network.Client
	log    zerolog.Logger
}

func NewNetflix(client *network.Client, logger zerolog.Logger) *Netflix {
	return &Netflix{
		client: client,
		log:    logger.With().Str("source", "netflix").Logger(),
	}
}

func (n *Netflix) Fetch(ctx context.Context) ([]map[string]any, error) {
	headers := map[string]string{
		"Accept": "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
	}

	status, body, err := fetch(ctx, n.client, fhttp.MethodGet, netflixCareersURL, nil, headers)
	if err != nil {
		return nil, &Error{Source: "netflix", Host: "explore.jobs.netflix.net", Kind: KindNetwork, Err: err}
	}
	if status < 200 || status >= 300 {
		return nil, &Error{Source: "netflix", Host: "explore.jobs.netflix.net", Kind: KindStatus, Status: status, Body: truncateBody(body)}
	}

	positions := extractNetflixPositions(body)
	n.log.Debug().Int("rows", len(positions)).Msg("netflix fetch complete")
	return positions, nil
}

// extractNetflixPositions looks for the positions array inside the page's
// script tags first, then falls back to scanning the whole document. An
// unparseable or missing payload yields an empty result.
func extractNetflixPositions(body []byte) []map[string]any {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err == nil {
		var positions []map[string]any
		doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
			positions = decodePositionsBlob(s.Text())
			return positions == nil
		})
		if positions != nil {
			return positions
		}
	}
	if positions := decodePositionsBlob(string(body)); positions != nil {
		return positions
	}
	return nil
}

func decodePositionsBlob(text string) []map[string]any {
	idx := strings.Index(text, `"positions"`)
	if idx < 0 {
		return nil
	}

	rest := text[idx+len(`"positions"`):]
	open := strings.Index(rest, "[")
	if open < 0 {
		return nil
	}
	// Nothing but whitespace and a colon may sit between the key and the array.
	if strings.TrimSpace(rest[:open]) != ":" {
		return nil
	}

	raw, ok := balancedArray(rest[open:])
	if !ok {
		return nil
	}

	var positions []map[string]any
	if err := json.Unmarshal([]byte(raw), &positions); err != nil {
		return nil
	}
	return positions
}

// balancedArray returns the JSON array starting at s[0], tracking bracket
// depth while skipping string literals and escapes. Array positions nest
// objects and arrays, so a lazy regex to the first closing bracket is not
// enough.
func balancedArray(s string) (string, bool) {
	if len(s) == 0 || s[0] != '[' {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '[', '{':
			depth++
		case ']', '}':
			depth--
			if depth == 0 {
				return s[:i+1], true
			}
		}
	}
	return "", false
}
