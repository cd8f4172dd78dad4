package store

import (
	"path/filepath"
	"testing"
)

func testDB(t *testing.T) *Database {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"), true)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSaveInferenceUpserts(t *testing.T) {
	db := testDB(t)

	first := &Inference{URL: "http://Example.com/page", Domain: "Example.com", Country: "France", Probability: 0.6}
	first.SetDistribution(map[string]float64{"France": 0.6, "Germany": 0.4})
	if err := db.SaveInference(first); err != nil {
		t.Fatalf("save: %v", err)
	}

	second := &Inference{URL: "http://example.com", Domain: "example.com", Country: "Germany", Probability: 0.8}
	second.SetDistribution(map[string]float64{"Germany": 0.8, "France": 0.2})
	if err := db.SaveInference(second); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	count, err := db.CountInferences()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 row got %d", count)
	}

	row, err := db.GetInference("EXAMPLE.COM")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if row == nil || row.Country != "Germany" {
		t.Fatalf("expected updated Germany row got %v", row)
	}
	if dist := row.Distribution(); dist["Germany"] != 0.8 {
		t.Fatalf("expected distribution round trip got %v", dist)
	}
}

func TestGetInferenceMissing(t *testing.T) {
	db := testDB(t)
	row, err := db.GetInference("unknown.com")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if row != nil {
		t.Fatalf("expected nil got %v", row)
	}
}

func TestListInferencesFilters(t *testing.T) {
	db := testDB(t)
	rows := []*Inference{
		{Domain: "a.fr", Country: "France", Probability: 0.9},
		{Domain: "b.fr", Country: "France", Probability: 0.4},
		{Domain: "c.de", Country: "Germany", Probability: 0.7},
	}
	for _, row := range rows {
		if err := db.SaveInference(row); err != nil {
			t.Fatalf("save %s: %v", row.Domain, err)
		}
	}

	got, total, err := db.ListInferences(InferenceQuery{Country: "France", MinProbability: 0.5})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 1 || len(got) != 1 || got[0].Domain != "a.fr" {
		t.Fatalf("expected single a.fr row got total=%d rows=%v", total, got)
	}

	got, _, err = db.ListInferences(InferenceQuery{Sort: "probability_desc"})
	if err != nil {
		t.Fatalf("list sorted: %v", err)
	}
	if len(got) != 3 || got[0].Domain != "a.fr" || got[2].Domain != "b.fr" {
		t.Fatalf("unexpected sort order %v", got)
	}
}

func TestCountryCounts(t *testing.T) {
	db := testDB(t)
	rows := []*Inference{
		{Domain: "a.fr", Country: "France", Probability: 0.9},
		{Domain: "b.fr", Country: "France", Probability: 0.4},
		{Domain: "c.de", Country: "Germany", Probability: 0.7},
	}
	for _, row := range rows {
		if err := db.SaveInference(row); err != nil {
			t.Fatalf("save %s: %v", row.Domain, err)
		}
	}

	counts, err := db.CountryCounts(0)
	if err != nil {
		t.Fatalf("country counts: %v", err)
	}
	if len(counts) != 2 || counts[0].Country != "France" || counts[0].Total != 2 {
		t.Fatalf("unexpected counts %v", counts)
	}
}
