// Package provider contains one adapter per upstream job source. Adapters
// perform the raw network calls and return source-native records; they know
// nothing about the canonical posting schema.
package provider

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidTarget reports a malformed workday target triple. It is a request
// parameter error, surfaced to the caller rather than silently defaulted.
var ErrInvalidTarget = errors.New("invalid workday target")

// ErrorKind classifies an upstream fetch failure.
type ErrorKind string

const (
	KindNetwork ErrorKind = "network"
	KindStatus  ErrorKind = "status"
	KindDecode  ErrorKind = "decode"
)

const maxDiagnosticBody = 400

// Error is a typed upstream failure. It carries the host/site that produced
// it plus a truncated response body, for diagnostics only; aggregation never
// surfaces it to the caller as a hard failure.
type Error struct {
	Source string
	Host   string
	Site   string
	Kind   ErrorKind
	Status int
	Body   string
	Err    error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Source)
	if e.Host != "" {
		fmt.Fprintf(&b, " %s", e.Host)
	}
	if e.Site != "" {
		fmt.Fprintf(&b, "/%s", e.Site)
	}
	switch e.Kind {
	case KindStatus:
		fmt.Fprintf(&b, ": http %d", e.Status)
	case KindDecode:
		b.WriteString(": malformed payload")
	default:
		b.WriteString(": request failed")
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func truncateBody(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > maxDiagnosticBody {
		return s[:maxDiagnosticBody]
	}
	return s
}

// WorkdayTarget identifies one multi-tenant career site instance.
type WorkdayTarget struct {
	Host        string
	Site        string
	CompanyHint string
}

// URL builds the tenant jobs endpoint. Host must include its version segment
// (e.g. pwc.wd3.myworkdayjobs.com) and Site is case-sensitive; a wrong
// combination yields a 400-class response from the tenant.
func (t WorkdayTarget) URL() string {
	return fmt.Sprintf("https://%s/wday/cxs/%s/%s/jobs", t.Host, t.CompanyHint, t.Site)
}

func (t WorkdayTarget) String() string {
	return t.Host + ":" + t.Site + ":" + t.CompanyHint
}

// ParseTargets parses a comma-separated list of host:site:companyHint triples.
// A triple with the wrong number of parts is rejected, not guessed at.
func ParseTargets(raw string) ([]WorkdayTarget, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	var targets []WorkdayTarget
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		fields := strings.Split(part, ":")
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTarget, part)
		}
		target := WorkdayTarget{
			Host:        strings.TrimSpace(fields[0]),
			Site:        strings.TrimSpace(fields[1]),
			CompanyHint: strings.TrimSpace(fields[2]),
		}
		if target.Host == "" || target.Site == "" || target.CompanyHint == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTarget, part)
		}
		targets = append(targets, target)
	}
	return targets, nil
}
