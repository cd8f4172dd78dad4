package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func testConfig(t *testing.T) Config {
	t.Helper()
	dir := t.TempDir()
	countries := "us\tUnited States of America\tus\n" +
		"gb\tUnited Kingdom\tuk\n" +
		"fr\tFrance\tfr\n"
	priors := "United States of America\t0.6\nUnited Kingdom\t0.25\nFrance\t0.15\n"
	geoAliases := "us\tunited states of america,united states\n" +
		"gb\tunited kingdom,britain\n" +
		"fr\tfrance\n"
	wikidata := "domain\tlat\tlon\tcountry\n" +
		"elysee.fr\t48.87\t2.32\tFrance\n"
	return Config{
		CountriesPath:      writeFixture(t, dir, "countries.tsv", countries),
		PriorsPath:         writeFixture(t, dir, "priors.tsv", priors),
		CuratedAliasesPath: writeFixture(t, dir, "curated.tsv", "uk\tUnited Kingdom\n"),
		GeoAliasesPath:     writeFixture(t, dir, "geo.tsv", geoAliases),
		WikidataPath:       writeFixture(t, dir, "wikidata.tsv", wikidata),
		WhoisCachePath:     filepath.Join(dir, "whois_countries.tsv"),
		OfflineWhois:       true,
	}
}

func TestBuildAndInfer(t *testing.T) {
	pipe, err := Build(testConfig(t))
	if err != nil {
		t.Fatalf("build pipeline: %v", err)
	}
	if len(pipe.Inferrer.Features) != 6 {
		t.Fatalf("expected 6 features got %d", len(pipe.Inferrer.Features))
	}

	tests := []struct {
		url      string
		expected string
	}{
		{"http://www.whitehouse.gov", "United States of America"},
		{"http://www.bbc.co.uk/news", "United Kingdom"},
		{"http://www.elysee.fr", "France"},
	}
	for _, tc := range tests {
		result, err := pipe.Inferrer.Infer(context.Background(), tc.url)
		if err != nil {
			t.Fatalf("infer %s: %v", tc.url, err)
		}
		if result.Country != tc.expected {
			t.Fatalf("infer %s: expected %s got %s", tc.url, tc.expected, result.Country)
		}
	}
}

func TestBuildWithoutWikidata(t *testing.T) {
	cfg := testConfig(t)
	cfg.WikidataPath = ""
	pipe, err := Build(cfg)
	if err != nil {
		t.Fatalf("build pipeline: %v", err)
	}
	if pipe.Geo != nil {
		t.Fatalf("expected no geo provider")
	}
	if len(pipe.Inferrer.Features) != 5 {
		t.Fatalf("expected 5 features got %d", len(pipe.Inferrer.Features))
	}
}

func TestBuildAppliesModelFile(t *testing.T) {
	cfg := testConfig(t)
	dir := filepath.Dir(cfg.CountriesPath)
	cfg.ModelPath = writeFixture(t, dir, "model.json",
		`{"intercept": -3.5, "coefficients": {"prior": 1.0, "parsed_whois": 2.0, "freetext_whois": 3.0, "mil": 4.0, "wikidata": 5.0, "tld": 6.0}}`)

	pipe, err := Build(cfg)
	if err != nil {
		t.Fatalf("build pipeline: %v", err)
	}
	if pipe.Inferrer.Intercept != -3.5 {
		t.Fatalf("expected intercept -3.5 got %v", pipe.Inferrer.Intercept)
	}
	if pipe.Inferrer.Coefficient("tld") != 6.0 {
		t.Fatalf("expected tld coefficient 6.0 got %v", pipe.Inferrer.Coefficient("tld"))
	}
}
