package geo

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestProviderLookup(t *testing.T) {
	table := "domain\tlat\tlon\tcountry\n" +
		"ac.gov.br\t-8.77\t-70.55\tBrazil\n" +
		"example.de\t52.52\t13.40\tGermany\n"
	p, err := NewProvider(writeFixture(t, "wikidata.tsv", table))
	if err != nil {
		t.Fatalf("load provider: %v", err)
	}

	tests := []struct {
		url      string
		expected string
	}{
		{"http://www.ac.gov.br", "Brazil"},
		{"https://www.ac.gov.br/page", "Brazil"},
		{"http://example.de", "Germany"},
		{"http://unknown.com", ""},
		{"foo", ""},
	}
	for _, tc := range tests {
		if got := p.Get(tc.url); got != tc.expected {
			t.Fatalf("Get(%q): expected %q got %q", tc.url, tc.expected, got)
		}
	}
}

func TestProviderKnownOverrides(t *testing.T) {
	table := "domain\tlat\tlon\tcountry\n" +
		"ibm.com\t52.52\t13.40\tGermany\n"
	p, err := NewProvider(writeFixture(t, "wikidata.tsv", table))
	if err != nil {
		t.Fatalf("load provider: %v", err)
	}
	if got := p.Get("https://www.ibm.com/foo/bar"); got != "United States of America" {
		t.Fatalf("expected override got %q", got)
	}
	if got := p.Get("http://www.nytimes.com"); got != "United States of America" {
		t.Fatalf("expected override got %q", got)
	}
}

func TestProviderRejectsBadHeader(t *testing.T) {
	if _, err := NewProvider(writeFixture(t, "wikidata.tsv", "a\tb\tc\td\n")); err == nil {
		t.Fatalf("expected header error")
	}
}

func testRegions(t *testing.T) *RegionIndex {
	t.Helper()
	qids := "Region\tQID\nSquareland\tQ1\nTriangle Republic\tQ2\n"
	aggregation := "Aggregation\tFrom\tQID To\tQID From\nSquareland\tOld Squareland\tQ1\tQ9\n"
	geoms := `{"type":"FeatureCollection","features":[` +
		`{"type":"Feature","properties":{"WIKIDATAID":"Q1","NAME":"Squareland"},` +
		`"geometry":{"type":"Polygon","coordinates":[[[0,0],[10,0],[10,10],[0,10],[0,0]]]}},` +
		`{"type":"Feature","properties":{"WIKIDATAID":"Q9","NAME":"Old Squareland"},` +
		`"geometry":{"type":"Polygon","coordinates":[[[20,20],[30,20],[30,30],[20,30],[20,20]]]}},` +
		`{"type":"Feature","properties":{"WIKIDATAID":"Q404","NAME":"Nowhere"},` +
		`"geometry":{"type":"Polygon","coordinates":[[[40,40],[50,40],[50,50],[40,50],[40,40]]]}}]}`

	idx, err := LoadRegions(RegionConfig{
		RegionQIDsPath:  writeFixture(t, "qids.tsv", qids),
		GeometriesPath:  writeFixture(t, "regions.geojson", geoms),
		AggregationPath: writeFixture(t, "aggregation.tsv", aggregation),
	})
	if err != nil {
		t.Fatalf("load regions: %v", err)
	}
	return idx
}

func TestCoordToCountry(t *testing.T) {
	idx := testRegions(t)

	if got := idx.CoordToCountry(5, 5); got != "Squareland" {
		t.Fatalf("expected Squareland got %q", got)
	}
	// Aggregated geometry resolves to the canonical region name.
	if got := idx.CoordToCountry(25, 25); got != "Squareland" {
		t.Fatalf("expected aggregated Squareland got %q", got)
	}
	// Unknown QIDs are skipped entirely.
	if got := idx.CoordToCountry(45, 45); got != "" {
		t.Fatalf("expected no region got %q", got)
	}
	if got := idx.CoordToCountry(-5, -5); got != "" {
		t.Fatalf("expected no region got %q", got)
	}
}

func TestRebuildCountries(t *testing.T) {
	idx := testRegions(t)

	coords := "domain\tlat\tlon\n" +
		"inside.example\t5\t5\n" +
		"aggregated.example\t25\t25\n" +
		"outside.example\t-5\t-5\n" +
		"broken.example\tnot-a-number\t5\n"
	outPath := filepath.Join(t.TempDir(), "wikidata_countries.tsv")

	written, err := RebuildCountries(idx, writeFixture(t, "coords.tsv", coords), outPath)
	if err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	if written != 2 {
		t.Fatalf("expected 2 rows got %d", written)
	}

	p, err := NewProvider(outPath)
	if err != nil {
		t.Fatalf("load rebuilt table: %v", err)
	}
	if got := p.Get("http://inside.example"); got != "Squareland" {
		t.Fatalf("expected Squareland got %q", got)
	}
	if got := p.Get("http://aggregated.example"); got != "Squareland" {
		t.Fatalf("expected aggregated Squareland got %q", got)
	}
	if got := p.Get("http://outside.example"); got != "" {
		t.Fatalf("expected no country got %q", got)
	}
}
