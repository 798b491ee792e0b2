// Package normalize maps source-native records into canonical postings. Each
// function is pure: one raw record in, zero or one posting out. Records that
// fail minimal validity are dropped, never emitted half-populated.
package normalize

import (
	"fmt"
	"hash/fnv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

const snippetLimit = 240

// techKeywords are matched case-insensitively against title and description
// text. Tags are emitted lowercase in this order.
var techKeywords = []string{
	"python", "flask", "fastapi", "django",
	"javascript", "typescript", "react", "next.js", "node",
	"java", "spring", "kotlin", "go", "golang", "rust", "swift", "swiftui",
	"aws", "gcp", "azure", "docker", "kubernetes", "postgres", "mysql",
	"mongodb", "redis", "graphql",
}

// indiaTokens cover the location spellings the upstreams use for India roles.
var indiaTokens = []string{"india", ", in", " ind", "(in)", " in "}

// DeriveID returns a stable identifier for a posting. Identical source input
// always yields the same id; a record with no identity at all gets a random
// opaque token.
func DeriveID(source, nativeID, url string) string {
	if source == "" && nativeID == "" && url == "" {
		return uuid.NewString()
	}
	h := fnv.New64a()
	h.Write([]byte(source))
	h.Write([]byte{0})
	h.Write([]byte(nativeID))
	h.Write([]byte{0})
	h.Write([]byte(url))
	return fmt.Sprintf("%s-%016x", source, h.Sum64())
}

// TechStack extracts lowercase technology tags evidenced in the given text.
func TechStack(text string) []string {
	blob := strings.ToLower(text)
	var tags []string
	for _, kw := range techKeywords {
		if strings.Contains(blob, kw) {
			tags = append(tags, kw)
		}
	}
	return tags
}

// IsIndia reports whether a free-text location looks like an India role.
func IsIndia(location string) bool {
	s := strings.ToLower(location)
	for _, token := range indiaTokens {
		if strings.Contains(s, token) {
			return true
		}
	}
	return false
}

// RemoteHint derives the tri-state remote flag from free-text cues when the
// source exposes no explicit flag. Absence of a cue is "unknown", not false.
func RemoteHint(text string) *bool {
	if strings.Contains(strings.ToLower(text), "remote") {
		yes := true
		return &yes
	}
	return nil
}

func snippet(text string) string {
	text = cleanText(text)
	if len(text) <= snippetLimit {
		return text
	}
	// Back up to a rune boundary so the cut never splits a multibyte rune.
	cut := snippetLimit
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return strings.TrimSpace(text[:cut])
}

func cleanText(value string) string {
	return strings.Join(strings.Fields(value), " ")
}
