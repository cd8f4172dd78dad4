package infer

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"geoprovenance/backend/internal/country"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func testTable(t *testing.T) *country.Table {
	t.Helper()
	countries := "us\tUnited States of America\tus\n" +
		"gb\tUnited Kingdom\tuk\n" +
		"fr\tFrance\tfr\n"
	priors := "United States of America\t0.6\nUnited Kingdom\t0.25\nFrance\t0.15\n"
	table, err := country.Load(country.Config{
		CountriesPath: writeFixture(t, "countries.tsv", countries),
		PriorsPath:    writeFixture(t, "priors.tsv", priors),
	})
	if err != nil {
		t.Fatalf("load table: %v", err)
	}
	return table
}

// stubFeature answers with a fixed confidence for the URLs it knows and
// abstains for everything else.
type stubFeature struct {
	name string
	conf float64
	dist map[string]Distribution
}

func (s *stubFeature) Name() string { return s.name }

func (s *stubFeature) Infer(ctx context.Context, url string) (float64, Distribution, error) {
	if d, ok := s.dist[url]; ok {
		return s.conf, d, nil
	}
	return 0, nil, nil
}

func defaultEnsemble(t *testing.T, table *country.Table, extra ...WeightedFeature) *LogisticInferrer {
	t.Helper()
	prior, err := NewPriorFeature(table)
	if err != nil {
		t.Fatalf("prior feature: %v", err)
	}
	features := append([]WeightedFeature{
		{Feature: prior, Coefficient: DefaultCoefficients["prior"]},
		{Feature: &MilGovFeature{}, Coefficient: DefaultCoefficients["mil"]},
		{Feature: NewTldFeature(table), Coefficient: DefaultCoefficients["tld"]},
	}, extra...)
	inf, err := New(table, DefaultIntercept, features)
	if err != nil {
		t.Fatalf("new inferrer: %v", err)
	}
	return inf
}

func TestInferDistributionSumsToOne(t *testing.T) {
	table := testTable(t)
	inf := defaultEnsemble(t, table)

	result, err := inf.Infer(context.Background(), "http://something.io/page")
	if err != nil {
		t.Fatalf("infer: %v", err)
	}
	if len(result.Distribution) != table.Len() {
		t.Fatalf("expected %d countries got %d", table.Len(), len(result.Distribution))
	}
	var sum float64
	for _, p := range result.Distribution {
		sum += p
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Fatalf("expected distribution to sum to 1 got %v", sum)
	}
}

func TestInferMilGov(t *testing.T) {
	table := testTable(t)
	inf := defaultEnsemble(t, table)

	result, err := inf.Infer(context.Background(), "http://www.whitehouse.gov/briefing")
	if err != nil {
		t.Fatalf("infer: %v", err)
	}
	if result.Country != "United States of America" {
		t.Fatalf("expected United States of America got %q", result.Country)
	}
	if result.Probability < 0.9 {
		t.Fatalf("expected high confidence got %v", result.Probability)
	}
}

func TestInferCountryCodeTLD(t *testing.T) {
	table := testTable(t)
	inf := defaultEnsemble(t, table)

	result, err := inf.Infer(context.Background(), "http://www.bbc.co.uk/news")
	if err != nil {
		t.Fatalf("infer: %v", err)
	}
	if result.Country != "United Kingdom" {
		t.Fatalf("expected United Kingdom got %q", result.Country)
	}
}

func TestInferGenericTLDFallsBackToPrior(t *testing.T) {
	table := testTable(t)
	inf := defaultEnsemble(t, table)

	// .io is sold globally, so only the prior is informative.
	result, err := inf.Infer(context.Background(), "http://startup.io")
	if err != nil {
		t.Fatalf("infer: %v", err)
	}
	if result.Country != "United States of America" {
		t.Fatalf("expected prior argmax got %q", result.Country)
	}
}

func TestInferSingletonFeatureWins(t *testing.T) {
	table := testTable(t)
	oracle := &stubFeature{
		name: "oracle",
		conf: 0.99,
		dist: map[string]Distribution{
			"http://journal.example.com": {"France": 1.0},
		},
	}
	inf := defaultEnsemble(t, table, WeightedFeature{Feature: oracle, Coefficient: DefaultCoefficients["wikidata"]})

	result, err := inf.Infer(context.Background(), "http://journal.example.com")
	if err != nil {
		t.Fatalf("infer: %v", err)
	}
	if result.Country != "France" {
		t.Fatalf("expected France got %q", result.Country)
	}
}

func TestReadGold(t *testing.T) {
	content := "http://a.com\tFrance\n" +
		"# comment\n" +
		"\n" +
		"missing-country\n" +
		"http://b.co.uk\tUnited Kingdom\n"
	entries, err := ReadGold(writeFixture(t, "gold.tsv", content))
	if err != nil {
		t.Fatalf("read gold: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries got %d", len(entries))
	}
	if entries[1].URL != "http://b.co.uk" || entries[1].Country != "United Kingdom" {
		t.Fatalf("unexpected entry %v", entries[1])
	}
}

func TestModelRoundTrip(t *testing.T) {
	table := testTable(t)
	inf := defaultEnsemble(t, table)
	inf.Intercept = -5.5
	inf.Features[0].Coefficient = 1.25

	path := filepath.Join(t.TempDir(), "model.json")
	if err := inf.SaveModel(path); err != nil {
		t.Fatalf("save model: %v", err)
	}

	other := defaultEnsemble(t, table)
	if err := other.LoadModel(path); err != nil {
		t.Fatalf("load model: %v", err)
	}
	if other.Intercept != -5.5 {
		t.Fatalf("expected intercept -5.5 got %v", other.Intercept)
	}
	if other.Coefficient("prior") != 1.25 {
		t.Fatalf("expected prior coefficient 1.25 got %v", other.Coefficient("prior"))
	}
}

func TestTrainLearnsInformativeFeature(t *testing.T) {
	table := testTable(t)

	gold := []GoldEntry{
		{URL: "http://a.example", Country: "France"},
		{URL: "http://b.example", Country: "United Kingdom"},
		{URL: "http://c.example", Country: "United States of America"},
		{URL: "http://d.example", Country: "France"},
	}
	oracle := &stubFeature{name: "oracle", conf: 1.0, dist: map[string]Distribution{}}
	for _, entry := range gold {
		oracle.dist[entry.URL] = Distribution{entry.Country: 1.0}
	}
	noise := &stubFeature{name: "noise", dist: map[string]Distribution{}}

	inf, err := New(table, 0, []WeightedFeature{
		{Feature: oracle},
		{Feature: noise},
	})
	if err != nil {
		t.Fatalf("new inferrer: %v", err)
	}
	if err := inf.Train(context.Background(), gold, DefaultTrainOptions()); err != nil {
		t.Fatalf("train: %v", err)
	}

	if inf.Coefficient("oracle") <= 0 {
		t.Fatalf("expected positive oracle coefficient got %v", inf.Coefficient("oracle"))
	}
	accuracy, err := inf.Evaluate(context.Background(), gold)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if accuracy != 1.0 {
		t.Fatalf("expected accuracy 1.0 got %v", accuracy)
	}
}
