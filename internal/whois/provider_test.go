package whois

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"geoprovenance/backend/internal/country"
)

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func testEnv(t *testing.T) (*country.Table, *country.AliasIndex) {
	t.Helper()
	dir := t.TempDir()
	countries := "us\tUnited States of America\tus\n" +
		"gb\tUnited Kingdom\tuk\n" +
		"fr\tFrance\tfr\n"
	priors := "United States of America\t0.3\nUnited Kingdom\t0.1\nFrance\t0.05\n"
	table, err := country.Load(country.Config{
		CountriesPath: writeFixture(t, dir, "countries.tsv", countries),
		PriorsPath:    writeFixture(t, dir, "priors.tsv", priors),
	})
	if err != nil {
		t.Fatalf("load table: %v", err)
	}
	geo := "us\tunited states of america,united states,america\n" +
		"gb\tunited kingdom,britain\n" +
		"fr\tfrance\n"
	idx, err := country.LoadAliases(country.AliasConfig{
		CuratedPath: writeFixture(t, dir, "curated.tsv", "uk\tUnited Kingdom\n"),
		GeoPath:     writeFixture(t, dir, "geo.tsv", geo),
	}, table)
	if err != nil {
		t.Fatalf("load aliases: %v", err)
	}
	return table, idx
}

type fakeFetcher struct {
	segments []string
	err      error
	calls    int
}

func (f *fakeFetcher) Fetch(ctx context.Context, domain string) ([]string, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.segments, nil
}

func testProvider(t *testing.T, fetcher RecordFetcher) (*Provider, string) {
	t.Helper()
	table, idx := testEnv(t)
	cachePath := filepath.Join(t.TempDir(), "whois_countries.tsv")
	if err := os.WriteFile(cachePath, nil, 0o644); err != nil {
		t.Fatalf("create cache: %v", err)
	}
	cache, err := OpenCache(cachePath)
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	return NewProvider(NewGrammar(), cache, fetcher, table, idx, nil), cachePath
}

func TestProviderParsedHeuristicLine(t *testing.T) {
	fetcher := &fakeFetcher{segments: []string{
		"Domain Name: example.com\nAdmin Country Code: GB\n",
	}}
	p, cachePath := testProvider(t, fetcher)

	got, err := p.GetParsed(context.Background(), "http://example.com/page")
	if err != nil {
		t.Fatalf("GetParsed: %v", err)
	}
	if got != "United Kingdom" {
		t.Fatalf("expected United Kingdom got %q", got)
	}

	// Second lookup is served from the cache.
	if _, err := p.GetParsed(context.Background(), "https://example.com/other"); err != nil {
		t.Fatalf("GetParsed: %v", err)
	}
	if fetcher.calls != 1 {
		t.Fatalf("expected 1 fetch got %d", fetcher.calls)
	}

	raw, err := os.ReadFile(cachePath)
	if err != nil {
		t.Fatalf("read cache: %v", err)
	}
	if !strings.Contains(string(raw), "example.com\tUnited Kingdom|p") {
		t.Fatalf("expected parsed cache line got %q", string(raw))
	}
}

func TestProviderParsedFromContact(t *testing.T) {
	record := strings.Join([]string{
		"Admin Name: Jane Doe",
		"Admin Street: 10 Downing Street",
		"Admin City: London",
		"Admin State/Province:",
		"Admin Postal Code: SW1A 2AA",
		"Admin Country: GB",
		"Admin Phone: +44.2079250918",
		"Admin Email: jane@example.co.uk",
		"",
	}, "\n")
	p, _ := testProvider(t, &fakeFetcher{segments: []string{record}})

	got, err := p.GetParsed(context.Background(), "http://example.co.uk")
	if err != nil {
		t.Fatalf("GetParsed: %v", err)
	}
	if got != "United Kingdom" {
		t.Fatalf("expected United Kingdom got %q", got)
	}
}

func TestProviderFreetextFallback(t *testing.T) {
	fetcher := &fakeFetcher{segments: []string{
		"some unstructured record\nhosted in france\nfrance office\n",
	}}
	p, cachePath := testProvider(t, fetcher)

	parsed, err := p.GetParsed(context.Background(), "http://example.com")
	if err != nil {
		t.Fatalf("GetParsed: %v", err)
	}
	if parsed != "" {
		t.Fatalf("expected no parsed country got %q", parsed)
	}

	dist, err := p.GetFreetext(context.Background(), "http://example.com")
	if err != nil {
		t.Fatalf("GetFreetext: %v", err)
	}
	if dist["France"] != 1.0 {
		t.Fatalf("expected France 1.0 got %v", dist)
	}
	if fetcher.calls != 1 {
		t.Fatalf("expected 1 fetch got %d", fetcher.calls)
	}

	raw, err := os.ReadFile(cachePath)
	if err != nil {
		t.Fatalf("read cache: %v", err)
	}
	if !strings.Contains(string(raw), "example.com\tFrance|2") {
		t.Fatalf("expected freetext cache line got %q", string(raw))
	}
}

func TestProviderFetchFailureCachesEmpty(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("connection refused")}
	p, _ := testProvider(t, fetcher)

	got, err := p.GetParsed(context.Background(), "http://broken.com")
	if err != nil {
		t.Fatalf("GetParsed: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty result got %q", got)
	}
	if _, err := p.GetFreetext(context.Background(), "http://broken.com"); err != nil {
		t.Fatalf("GetFreetext: %v", err)
	}
	if fetcher.calls != 1 {
		t.Fatalf("expected failure to be cached got %d fetches", fetcher.calls)
	}
}

func TestOpenCacheSkipsMalformedLines(t *testing.T) {
	dir := t.TempDir()
	content := "good.com\tFrance|p\n" +
		"no tabs here\n" +
		"bad.com\tFrance|x|y\n" +
		"empty.com\t\n" +
		"unknown.com\t??|p\n"
	cache, err := OpenCache(writeFixture(t, dir, "cache.tsv", content))
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	if cache.Len() != 2 {
		t.Fatalf("expected 2 entries got %d", cache.Len())
	}
	if r, ok := cache.Get("good.com"); !ok || r.Country != "France" {
		t.Fatalf("expected parsed France got %v", r)
	}
	if r, ok := cache.Get("empty.com"); !ok || r.Kind != ResultEmpty {
		t.Fatalf("expected empty entry got %v", r)
	}
	if _, ok := cache.Get("unknown.com"); ok {
		t.Fatalf("expected ?? entry to be dropped")
	}
}

func TestCacheRoundTrip(t *testing.T) {
	cachePath := filepath.Join(t.TempDir(), "cache.tsv")
	if err := os.WriteFile(cachePath, nil, 0o644); err != nil {
		t.Fatalf("create cache: %v", err)
	}
	cache, err := OpenCache(cachePath)
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	if err := cache.Put("a.com", Result{Kind: ResultParsed, Country: "France"}, nil); err != nil {
		t.Fatalf("put parsed: %v", err)
	}
	freetext := Result{Kind: ResultFreetext, Freetext: map[string]float64{"France": 0.5, "United Kingdom": 0.5}}
	if err := cache.Put("b.com", freetext, map[string]int{"France": 1, "United Kingdom": 1}); err != nil {
		t.Fatalf("put freetext: %v", err)
	}

	reloaded, err := OpenCache(cachePath)
	if err != nil {
		t.Fatalf("reopen cache: %v", err)
	}
	if r, ok := reloaded.Get("a.com"); !ok || r.Country != "France" {
		t.Fatalf("expected parsed France got %v", r)
	}
	r, ok := reloaded.Get("b.com")
	if !ok || r.Kind != ResultFreetext {
		t.Fatalf("expected freetext entry got %v", r)
	}
	if r.Freetext["France"] != 0.5 {
		t.Fatalf("expected normalized 0.5 got %v", r.Freetext)
	}
}
