package main

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"geoprovenance/backend/internal/api"
	"geoprovenance/backend/internal/pipeline"
)

func main() {
	baseDir, err := os.Getwd()
	if err != nil {
		logrus.Fatalf("determine working directory: %v", err)
	}

	dataDir := filepath.Join(baseDir, "data")
	if override := strings.TrimSpace(os.Getenv("GEOPROV_DATA_DIR")); override != "" {
		dataDir = override
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		logrus.Fatalf("create data directory: %v", err)
	}

	pipeCfg := pipeline.Config{
		CountriesPath:      filepath.Join(dataDir, "countries.tsv"),
		PriorsPath:         filepath.Join(dataDir, "priors.tsv"),
		CuratedAliasesPath: filepath.Join(dataDir, "curated_aliases.tsv"),
		GeoAliasesPath:     filepath.Join(dataDir, "geo_aliases.tsv"),
		WikidataPath:       filepath.Join(dataDir, "wikidata_countries.tsv"),
		WhoisCachePath:     filepath.Join(dataDir, "whois_countries.tsv"),
		ModelPath:          filepath.Join(dataDir, "model.json"),
	}
	if v := strings.TrimSpace(os.Getenv("WHOIS_RATE_LIMIT")); v != "" {
		if limit, err := strconv.ParseFloat(v, 64); err == nil && limit > 0 {
			pipeCfg.WhoisRateLimit = limit
		}
	}
	if strings.EqualFold(strings.TrimSpace(os.Getenv("WHOIS_OFFLINE")), "true") {
		pipeCfg.OfflineWhois = true
	}
	if override := strings.TrimSpace(os.Getenv("GEOPROV_MODEL_PATH")); override != "" {
		pipeCfg.ModelPath = override
	}

	pipe, err := pipeline.Build(pipeCfg)
	if err != nil {
		logrus.Fatalf("build pipeline: %v", err)
	}

	cfg := api.Config{
		DBPath:     filepath.Join(dataDir, "geoprovenance.db"),
		Inferrer:   pipe.Inferrer,
		Table:      pipe.Table,
		Geo:        pipe.Geo,
		WhoisCache: pipe.WhoisCache,
	}
	if override := strings.TrimSpace(os.Getenv("GEOPROV_DB_PATH")); override != "" {
		cfg.DBPath = override
	}
	if origins := strings.TrimSpace(os.Getenv("ALLOWED_ORIGINS")); origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
			}
		}
	}

	server, err := api.NewServer(cfg)
	if err != nil {
		logrus.Fatalf("create server: %v", err)
	}

	router, err := server.Router()
	if err != nil {
		logrus.Fatalf("configure router: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logrus.Infof("starting geoprovenance backend on :%s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatalf("server exited: %v", err)
	}
}
