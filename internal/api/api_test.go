package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"geoprovenance/backend/internal/country"
	"geoprovenance/backend/internal/infer"
)

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func testServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()

	countries := "us\tUnited States of America\tus\n" +
		"gb\tUnited Kingdom\tuk\n" +
		"fr\tFrance\tfr\n"
	priors := "United States of America\t0.6\nUnited Kingdom\t0.25\nFrance\t0.15\n"
	table, err := country.Load(country.Config{
		CountriesPath: writeFixture(t, dir, "countries.tsv", countries),
		PriorsPath:    writeFixture(t, dir, "priors.tsv", priors),
	})
	if err != nil {
		t.Fatalf("load table: %v", err)
	}

	prior, err := infer.NewPriorFeature(table)
	if err != nil {
		t.Fatalf("prior feature: %v", err)
	}
	inferrer, err := infer.New(table, infer.DefaultIntercept, []infer.WeightedFeature{
		{Feature: prior, Coefficient: infer.DefaultCoefficients["prior"]},
		{Feature: &infer.MilGovFeature{}, Coefficient: infer.DefaultCoefficients["mil"]},
		{Feature: infer.NewTldFeature(table), Coefficient: infer.DefaultCoefficients["tld"]},
	})
	if err != nil {
		t.Fatalf("new inferrer: %v", err)
	}

	server, err := NewServer(Config{
		DBPath:   filepath.Join(dir, "test.db"),
		SilentDB: true,
		Inferrer: inferrer,
		Table:    table,
	})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	t.Cleanup(func() { server.Close() })
	return server
}

func doRequest(t *testing.T, server *Server, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	router, err := server.Router()
	if err != nil {
		t.Fatalf("router: %v", err)
	}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, nil)
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	server := testServer(t)
	rec := doRequest(t, server, http.MethodGet, "/api/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
}

func TestHandleInfer(t *testing.T) {
	server := testServer(t)

	rec := doRequest(t, server, http.MethodGet, "/api/v1/infer?url=http://www.bbc.co.uk/news")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}
	var dto InferenceDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &dto); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if dto.Country != "United Kingdom" {
		t.Fatalf("expected United Kingdom got %q", dto.Country)
	}
	if dto.Domain != "bbc.co.uk" {
		t.Fatalf("expected bbc.co.uk got %q", dto.Domain)
	}

	// Second request is served from the store.
	rec = doRequest(t, server, http.MethodGet, "/api/v1/infer?url=http://bbc.co.uk/other")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	var cached InferenceDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &cached); err != nil {
		t.Fatalf("decode cached response: %v", err)
	}
	if cached.ID != dto.ID {
		t.Fatalf("expected cached row %d got %d", dto.ID, cached.ID)
	}
}

func TestHandleInferRejectsBadURL(t *testing.T) {
	server := testServer(t)
	rec := doRequest(t, server, http.MethodGet, "/api/v1/infer?url=not-a-domain")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
	rec = doRequest(t, server, http.MethodGet, "/api/v1/infer")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestHandleResults(t *testing.T) {
	server := testServer(t)
	if rec := doRequest(t, server, http.MethodGet, "/api/v1/infer?url=http://www.whitehouse.gov"); rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}

	rec := doRequest(t, server, http.MethodGet, "/api/v1/results?country=United+States+of+America")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	var resp ResultsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Total != 1 || len(resp.Items) != 1 || resp.Items[0].Domain != "whitehouse.gov" {
		t.Fatalf("unexpected results %+v", resp)
	}
}
