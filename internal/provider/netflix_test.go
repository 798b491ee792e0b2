package provider

import "testing"

func TestExtractNetflixPositions(t *testing.T) {
	html := `<!doctype html>
<html>
<head><script>window.__appData = {"careers": {"positions": [
  {"name": "Senior Software Engineer", "location": "Mumbai, India", "tags": ["l5", "ads"]},
  {"name": "Data Engineer", "location": "Los Gatos, CA", "nested": {"a": [1, 2]}}
], "facets": {}};</script></head>
<body><div id="app"></div></body>
</html>`

	positions := extractNetflixPositions([]byte(html))
	if len(positions) != 2 {
		t.Fatalf("expected 2 positions, got %d", len(positions))
	}
	if positions[0]["name"] != "Senior Software Engineer" {
		t.Fatalf("unexpected first position: %v", positions[0])
	}
}

func TestExtractNetflixPositionsMissingKey(t *testing.T) {
	html := `<html><head><script>window.x = {"jobs": []};</script></head><body></body></html>`
	if positions := extractNetflixPositions([]byte(html)); positions != nil {
		t.Fatalf("relocated payload should yield no data, got %v", positions)
	}
}

func TestExtractNetflixPositionsMalformedJSON(t *testing.T) {
	html := `<html><script>{"positions": [{"name": "broken"</script></html>`
	if positions := extractNetflixPositions([]byte(html)); positions != nil {
		t.Fatalf("unterminated payload should yield no data, got %v", positions)
	}
}

func TestBalancedArrayHandlesStringsAndNesting(t *testing.T) {
	raw := `[{"a": "tricky ] bracket", "b": [1, {"c": "\" escaped"}]}] trailing junk`
	got, ok := balancedArray(raw)
	if !ok {
		t.Fatalf("expected balanced extraction to succeed")
	}
	want := `[{"a": "tricky ] bracket", "b": [1, {"c": "\" escaped"}]}]`
	if got != want {
		t.Fatalf("balancedArray = %q, want %q", got, want)
	}
}

func TestDecodePositionsBlobRequiresColon(t *testing.T) {
	if got := decodePositionsBlob(`"positions" foo ["x"]`); got != nil {
		t.Fatalf("expected nil when key/array separator is not a colon, got %v", got)
	}
}
