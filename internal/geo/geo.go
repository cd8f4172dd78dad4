package geo

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"geoprovenance/backend/internal/urlkit"
)

// wikidataHeader is the required first line of the domain location table.
var wikidataHeader = []string{"domain", "lat", "lon", "country"}

// Provider resolves a URL to a country using a precomputed mapping from
// registered domain to country, extracted from Wikidata official-website
// claims and geocoded offline.
type Provider struct {
	domains map[string]string
}

// NewProvider loads the wikidata country table. The file is TSV with a
// mandatory header; rows with the wrong column count are logged and skipped.
func NewProvider(path string) (*Provider, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open wikidata table: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read wikidata header: %w", err)
	}
	if !equalFields(header, wikidataHeader) {
		return nil, fmt.Errorf("unexpected wikidata header %v", header)
	}

	p := &Provider{domains: make(map[string]string)}
	for {
		row, err := r.Read()
		if err != nil {
			break
		}
		if len(row) != len(wikidataHeader) {
			logrus.Warnf("invalid wikidata line: %v", row)
			continue
		}
		p.domains[row[0]] = row[3]
	}
	logrus.Infof("loaded %d wikidata entries from %s", len(p.domains), path)

	// Known data quality issues from duplicated website claims.
	p.domains["ibm.com"] = "United States of America"
	p.domains["nytimes.com"] = "United States of America"

	return p, nil
}

// Get returns the country for a URL's registered domain, or "".
func (p *Provider) Get(url string) string {
	domain := urlkit.RegisteredDomain(url)
	if domain == "" {
		return ""
	}
	return p.domains[domain]
}

// Len returns the number of known domains.
func (p *Provider) Len() int {
	return len(p.domains)
}

func equalFields(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
