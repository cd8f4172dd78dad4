package infer

import (
	"context"
	"errors"

	"geoprovenance/backend/internal/country"
	"geoprovenance/backend/internal/geo"
	"geoprovenance/backend/internal/urlkit"
	"geoprovenance/backend/internal/whois"
)

// Distribution maps country names to probability mass. Features omit
// countries with zero mass.
type Distribution map[string]float64

// Feature is one evidence source in the ensemble. Infer returns a
// confidence in [0, 1] and a distribution over countries; confidence zero
// with an empty distribution means the feature abstains for this URL.
type Feature interface {
	Name() string
	Infer(ctx context.Context, url string) (float64, Distribution, error)
}

// WeightedFeature pairs a feature with its fusion coefficient. Order in the
// ensemble slice is significant only for reproducible logging; each feature
// carries its own weight.
type WeightedFeature struct {
	Feature     Feature
	Coefficient float64
}

// genericTLDs are country-code TLDs that are marketed globally and carry no
// administrative signal (.io, .tv, .me, ...).
var genericTLDs = map[string]bool{
	"ad": true, "as": true, "bz": true, "cc": true, "cd": true, "co": true,
	"dj": true, "fm": true, "io": true, "la": true, "me": true, "ms": true,
	"nu": true, "sc": true, "sr": true, "su": true, "tv": true, "tk": true,
	"ws": true,
}

// PriorFeature always reports the smoothed global popularity prior.
type PriorFeature struct {
	prior Distribution
}

// NewPriorFeature builds the prior feature from the country table.
func NewPriorFeature(table *country.Table) (*PriorFeature, error) {
	prior := table.Priors()
	if len(prior) == 0 {
		return nil, errors.New("no country priors")
	}
	return &PriorFeature{prior: prior}, nil
}

func (f *PriorFeature) Name() string { return "prior" }

func (f *PriorFeature) Infer(ctx context.Context, url string) (float64, Distribution, error) {
	dist := make(Distribution, len(f.prior))
	for c, p := range f.prior {
		dist[c] = p
	}
	return 0.2, dist, nil
}

// TldFeature maps a country-code TLD to its country, skipping the TLDs
// that are sold generically.
type TldFeature struct {
	table *country.Table
}

// NewTldFeature builds the TLD feature.
func NewTldFeature(table *country.Table) *TldFeature {
	return &TldFeature{table: table}
}

func (f *TldFeature) Name() string { return "tld" }

func (f *TldFeature) Infer(ctx context.Context, url string) (float64, Distribution, error) {
	tld := urlkit.TLD(url)
	if tld == "" || genericTLDs[tld] {
		return 0, nil, nil
	}
	name := f.table.FromTLD(tld)
	if name == "" {
		return 0, nil, nil
	}
	return 0.95, Distribution{name: 1.0}, nil
}

// MilGovFeature pins .mil and .gov hosts to the United States, which
// administers both TLDs.
type MilGovFeature struct{}

func (f *MilGovFeature) Name() string { return "mil" }

func (f *MilGovFeature) Infer(ctx context.Context, url string) (float64, Distribution, error) {
	host := urlkit.Host(url)
	if hasSuffix(host, ".mil") || hasSuffix(host, ".gov") {
		return 1.0, Distribution{"United States of America": 1.0}, nil
	}
	return 0, nil, nil
}

func hasSuffix(s, suffix string) bool {
	return len(s) >= len(suffix) && s[len(s)-len(suffix):] == suffix
}

// WikidataFeature resolves a domain through the precomputed Wikidata
// location table.
type WikidataFeature struct {
	provider *geo.Provider
}

// NewWikidataFeature wraps a geo provider.
func NewWikidataFeature(provider *geo.Provider) *WikidataFeature {
	return &WikidataFeature{provider: provider}
}

func (f *WikidataFeature) Name() string { return "wikidata" }

func (f *WikidataFeature) Infer(ctx context.Context, url string) (float64, Distribution, error) {
	if name := f.provider.Get(url); name != "" {
		return 0.99, Distribution{name: 1.0}, nil
	}
	return 0, nil, nil
}

// ParsedWhoisFeature reports the country from the structured WHOIS strategy.
type ParsedWhoisFeature struct {
	provider *whois.Provider
}

// NewParsedWhoisFeature wraps a WHOIS provider.
func NewParsedWhoisFeature(provider *whois.Provider) *ParsedWhoisFeature {
	return &ParsedWhoisFeature{provider: provider}
}

func (f *ParsedWhoisFeature) Name() string { return "parsed_whois" }

func (f *ParsedWhoisFeature) Infer(ctx context.Context, url string) (float64, Distribution, error) {
	name, err := f.provider.GetParsed(ctx, url)
	if err != nil {
		return 0, nil, err
	}
	if name == "" {
		return 0, nil, nil
	}
	return 0.60, Distribution{name: 1.0}, nil
}

// FreetextWhoisFeature reports the normalized alias-mention histogram from
// the freetext WHOIS strategy.
type FreetextWhoisFeature struct {
	provider *whois.Provider
}

// NewFreetextWhoisFeature wraps a WHOIS provider.
func NewFreetextWhoisFeature(provider *whois.Provider) *FreetextWhoisFeature {
	return &FreetextWhoisFeature{provider: provider}
}

func (f *FreetextWhoisFeature) Name() string { return "freetext_whois" }

func (f *FreetextWhoisFeature) Infer(ctx context.Context, url string) (float64, Distribution, error) {
	hist, err := f.provider.GetFreetext(ctx, url)
	if err != nil {
		return 0, nil, err
	}
	if len(hist) == 0 {
		return 0, nil, nil
	}
	dist := make(Distribution, len(hist))
	for c, p := range hist {
		dist[c] = p
	}
	return 0.6, dist, nil
}
