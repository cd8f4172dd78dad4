package pipeline

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"geoprovenance/backend/internal/country"
	"geoprovenance/backend/internal/geo"
	"geoprovenance/backend/internal/infer"
	"geoprovenance/backend/internal/whois"
)

// Config names the resource files and knobs the inference pipeline is
// assembled from.
type Config struct {
	CountriesPath      string
	PriorsPath         string
	CuratedAliasesPath string
	GeoAliasesPath     string
	WikidataPath       string
	WhoisCachePath     string
	ModelPath          string

	// WhoisRateLimit caps outbound WHOIS queries per second. Zero means
	// unlimited.
	WhoisRateLimit float64
	// OfflineWhois disables network WHOIS lookups; only cached records are
	// consulted.
	OfflineWhois bool
}

// Pipeline bundles the assembled components behind the inferrer.
type Pipeline struct {
	Table      *country.Table
	Aliases    *country.AliasIndex
	Geo        *geo.Provider
	WhoisCache *whois.Cache
	Whois      *whois.Provider
	Inferrer   *infer.LogisticInferrer
}

// Build loads every resource file and wires the feature ensemble in registry
// order with the default fusion weights. A model file, when configured and
// present, overrides intercept and coefficients.
func Build(cfg Config) (*Pipeline, error) {
	if cfg.WhoisCachePath == "" {
		return nil, errors.New("whois cache path required")
	}

	table, err := country.Load(country.Config{
		CountriesPath: cfg.CountriesPath,
		PriorsPath:    cfg.PriorsPath,
	})
	if err != nil {
		return nil, fmt.Errorf("country table: %w", err)
	}

	aliases, err := country.LoadAliases(country.AliasConfig{
		CuratedPath: cfg.CuratedAliasesPath,
		GeoPath:     cfg.GeoAliasesPath,
	}, table)
	if err != nil {
		return nil, fmt.Errorf("country aliases: %w", err)
	}

	cache, err := whois.OpenCache(cfg.WhoisCachePath)
	if err != nil {
		return nil, fmt.Errorf("whois cache: %w", err)
	}

	var fetcher whois.RecordFetcher
	if cfg.OfflineWhois {
		logrus.Info("whois network lookups disabled")
	} else {
		fetcher = whois.NewNetFetcher()
	}
	var limiter *rate.Limiter
	if cfg.WhoisRateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.WhoisRateLimit), 1)
	}
	whoisProvider := whois.NewProvider(whois.NewGrammar(), cache, fetcher, table, aliases, limiter)

	var geoProvider *geo.Provider
	if cfg.WikidataPath != "" {
		geoProvider, err = geo.NewProvider(cfg.WikidataPath)
		if err != nil {
			return nil, fmt.Errorf("wikidata table: %w", err)
		}
	} else {
		logrus.Warn("no wikidata table configured, location feature disabled")
	}

	prior, err := infer.NewPriorFeature(table)
	if err != nil {
		return nil, err
	}
	features := []infer.WeightedFeature{
		{Feature: prior, Coefficient: infer.DefaultCoefficients["prior"]},
		{Feature: infer.NewParsedWhoisFeature(whoisProvider), Coefficient: infer.DefaultCoefficients["parsed_whois"]},
		{Feature: infer.NewFreetextWhoisFeature(whoisProvider), Coefficient: infer.DefaultCoefficients["freetext_whois"]},
		{Feature: &infer.MilGovFeature{}, Coefficient: infer.DefaultCoefficients["mil"]},
	}
	if geoProvider != nil {
		features = append(features, infer.WeightedFeature{
			Feature:     infer.NewWikidataFeature(geoProvider),
			Coefficient: infer.DefaultCoefficients["wikidata"],
		})
	}
	features = append(features, infer.WeightedFeature{
		Feature:     infer.NewTldFeature(table),
		Coefficient: infer.DefaultCoefficients["tld"],
	})

	inferrer, err := infer.New(table, infer.DefaultIntercept, features)
	if err != nil {
		return nil, err
	}

	if cfg.ModelPath != "" {
		if _, statErr := os.Stat(cfg.ModelPath); statErr == nil {
			if err := inferrer.LoadModel(cfg.ModelPath); err != nil {
				return nil, err
			}
			logrus.Infof("loaded model parameters from %s", cfg.ModelPath)
		} else {
			logrus.Infof("no model file at %s, using default parameters", cfg.ModelPath)
		}
	}

	return &Pipeline{
		Table:      table,
		Aliases:    aliases,
		Geo:        geoProvider,
		WhoisCache: cache,
		Whois:      whoisProvider,
		Inferrer:   inferrer,
	}, nil
}
