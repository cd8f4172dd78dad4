package country

import (
	"math"
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

func testTable(t *testing.T) *Table {
	t.Helper()
	countries := "us\tUnited States of America\tus\n" +
		"gb\tUnited Kingdom\tuk\n" +
		"fr\tFrance\tfr\n" +
		"ca\tCanada\tca\n" +
		"tw\tTaiwan\ttw\n"
	priors := "United States of America\t0.26\n" +
		"United Kingdom\t0.08\n" +
		"France\t0.05\n"
	table, err := Load(Config{
		CountriesPath: writeFixture(t, "countries.tsv", countries),
		PriorsPath:    writeFixture(t, "priors.tsv", priors),
	})
	if err != nil {
		t.Fatalf("load table: %v", err)
	}
	return table
}

func testAliases(t *testing.T, table *Table) *AliasIndex {
	t.Helper()
	curated := "uk\tUnited Kingdom\n" +
		"united states\tUnited States of America\n"
	geo := "us\tunited states of america,america,usa\n" +
		"gb\tunited kingdom,britain,great britain,uk\n" +
		"fr\tfrance,french republic\n" +
		"ca\tcanada\n"
	idx, err := LoadAliases(AliasConfig{
		CuratedPath: writeFixture(t, "curated.tsv", curated),
		GeoPath:     writeFixture(t, "geo.tsv", geo),
	}, table)
	if err != nil {
		t.Fatalf("load aliases: %v", err)
	}
	return idx
}

func TestPriorsSumToOne(t *testing.T) {
	table := testTable(t)
	var sum float64
	for _, p := range table.Priors() {
		sum += p
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Fatalf("expected priors to sum to 1 got %v", sum)
	}
	// every country keeps at least the smoothing mass
	for _, c := range table.Countries() {
		if c.Prior <= 0 {
			t.Fatalf("expected positive prior for %s got %v", c.Name, c.Prior)
		}
	}
}

func TestNormalizeCountry(t *testing.T) {
	table := testTable(t)
	idx := testAliases(t, table)

	tests := []struct {
		raw      string
		expected string
	}{
		{"uk", "United Kingdom"},
		{"UK", "United Kingdom"},
		{"gb", "United Kingdom"},
		{"GB", "United Kingdom"},
		{"Britain", "United Kingdom"},
		{"france", "France"},
		{"us", "United States of America"},
		{"narnia", ""},
		{"", ""},
	}
	for _, tc := range tests {
		if got := idx.NormalizeCountry(tc.raw, table); got != tc.expected {
			t.Fatalf("NormalizeCountry(%q): expected %q got %q", tc.raw, tc.expected, got)
		}
	}
}

func TestDuplicateAliasKeepsFirstOwner(t *testing.T) {
	table := testTable(t)
	curated := writeFixture(t, "curated.tsv", "")
	geo := "us\tgeorgia\n" +
		"gb\tgeorgia\n"
	idx, err := LoadAliases(AliasConfig{
		CuratedPath: curated,
		GeoPath:     writeFixture(t, "geo.tsv", geo),
	}, table)
	if err != nil {
		t.Fatalf("load aliases: %v", err)
	}
	if got := idx.NormalizeCountry("georgia", table); got != "United States of America" {
		t.Fatalf("expected first owner to win got %q", got)
	}
}

func TestShortGeoAliasesSkipped(t *testing.T) {
	table := testTable(t)
	idx, err := LoadAliases(AliasConfig{
		CuratedPath: writeFixture(t, "curated.tsv", ""),
		GeoPath:     writeFixture(t, "geo.tsv", "fr\tfr,france\n"),
	}, table)
	if err != nil {
		t.Fatalf("load aliases: %v", err)
	}
	if got := idx.NormalizeCountry("fr", table); got != "France" {
		// still resolves through the ISO-2 path
		t.Fatalf("expected France via iso2 got %q", got)
	}
	if got := idx.NormalizeCountry("franc", table); got != "" {
		t.Fatalf("expected no match got %q", got)
	}
}

func TestExtractFreetextCountry(t *testing.T) {
	table := testTable(t)
	idx := testAliases(t, table)

	segments := []string{
		"Registrant: Example Corp, London, United Kingdom",
		"Tech contact in France. Billing via France office.",
	}
	dist := idx.ExtractFreetextCountry(segments)
	if dist["United Kingdom"] != 1 {
		t.Fatalf("expected 1 UK hit got %d", dist["United Kingdom"])
	}
	if dist["France"] != 2 {
		t.Fatalf("expected 2 France hits got %d", dist["France"])
	}
	if _, ok := dist["Canada"]; ok {
		t.Fatalf("expected no Canada entry")
	}
}
