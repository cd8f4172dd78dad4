package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"geoprovenance/backend/internal/geo"
	"geoprovenance/backend/internal/infer"
	"geoprovenance/backend/internal/pipeline"
	"geoprovenance/backend/internal/urlkit"
)

const topNEntries = 5

var (
	dataDir        string
	modelPath      string
	whoisRateLimit float64
	offline        bool
)

func main() {
	root := &cobra.Command{
		Use:   "geoprov",
		Short: "Infer the country a web domain is administratively associated with",
		// Subcommands do their own error logging through logrus.
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataDir, "data-dir", "data", "directory holding resource tables")
	root.PersistentFlags().StringVar(&modelPath, "model", "", "model parameter file (defaults to <data-dir>/model.json)")
	root.PersistentFlags().Float64Var(&whoisRateLimit, "whois-rate-limit", 0, "max outbound WHOIS queries per second (0 = unlimited)")
	root.PersistentFlags().BoolVar(&offline, "offline", false, "disable network WHOIS lookups")

	root.AddCommand(runCmd(), trainCmd(), evaluateCmd(), rebuildGeoCmd())

	if err := root.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func buildPipeline() (*pipeline.Pipeline, error) {
	cfg := pipeline.Config{
		CountriesPath:      filepath.Join(dataDir, "countries.tsv"),
		PriorsPath:         filepath.Join(dataDir, "priors.tsv"),
		CuratedAliasesPath: filepath.Join(dataDir, "curated_aliases.tsv"),
		GeoAliasesPath:     filepath.Join(dataDir, "geo_aliases.tsv"),
		WikidataPath:       filepath.Join(dataDir, "wikidata_countries.tsv"),
		WhoisCachePath:     filepath.Join(dataDir, "whois_countries.tsv"),
		ModelPath:          modelPath,
		WhoisRateLimit:     whoisRateLimit,
		OfflineWhois:       offline,
	}
	if cfg.ModelPath == "" {
		cfg.ModelPath = filepath.Join(dataDir, "model.json")
	}
	return pipeline.Build(cfg)
}

// runCmd reads URLs from stdin and prints one TSV prediction per line.
func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Read URLs from stdin and print country predictions as TSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			pipe, err := buildPipeline()
			if err != nil {
				return err
			}

			out := bufio.NewWriter(os.Stdout)
			defer out.Flush()

			scanner := bufio.NewScanner(os.Stdin)
			scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
			for scanner.Scan() {
				url := strings.TrimSpace(scanner.Text())
				if url == "" {
					continue
				}
				if urlkit.RegisteredDomain(url) == "" {
					fmt.Fprintf(out, "%s\tunknown\t0.0\t{}\n", url)
					continue
				}
				result, err := pipe.Inferrer.Infer(cmd.Context(), url)
				if err != nil {
					logrus.WithError(err).WithField("url", url).Warn("inference failed")
					fmt.Fprintf(out, "%s\tunknown\t0.0\t{}\n", url)
					continue
				}
				fmt.Fprintf(out, "%s\t%s\t%.4f\t%s\n",
					url, result.Country, result.Probability, topNJSON(result.Distribution))
			}
			return scanner.Err()
		},
	}
}

func trainCmd() *cobra.Command {
	var goldPath, outPath string
	opts := infer.DefaultTrainOptions()

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Fit fusion weights on a gold dataset and write a model file",
		RunE: func(cmd *cobra.Command, args []string) error {
			pipe, err := buildPipeline()
			if err != nil {
				return err
			}
			entries, err := infer.ReadGold(goldPath)
			if err != nil {
				return err
			}
			if err := pipe.Inferrer.Train(cmd.Context(), entries, opts); err != nil {
				return err
			}
			if outPath == "" {
				outPath = filepath.Join(dataDir, "model.json")
			}
			if err := pipe.Inferrer.SaveModel(outPath); err != nil {
				return err
			}
			logrus.Infof("model written to %s", outPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&goldPath, "gold", "", "gold dataset TSV (url \\t country)")
	cmd.Flags().StringVar(&outPath, "output", "", "model output path")
	cmd.Flags().IntVar(&opts.Epochs, "epochs", opts.Epochs, "gradient descent epochs")
	cmd.Flags().Float64Var(&opts.LearningRate, "learning-rate", opts.LearningRate, "gradient descent learning rate")
	cmd.MarkFlagRequired("gold")
	return cmd
}

func evaluateCmd() *cobra.Command {
	var goldPath string
	var folds int

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Cross-validate the ensemble against a gold dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			pipe, err := buildPipeline()
			if err != nil {
				return err
			}
			entries, err := infer.ReadGold(goldPath)
			if err != nil {
				return err
			}
			accuracy, err := pipe.Inferrer.CrossValidate(cmd.Context(), entries, folds, infer.DefaultTrainOptions())
			if err != nil {
				return err
			}
			fmt.Printf("mean accuracy over %d folds: %.4f\n", folds, accuracy)
			return nil
		},
	}
	cmd.Flags().StringVar(&goldPath, "gold", "", "gold dataset TSV (url \\t country)")
	cmd.Flags().IntVar(&folds, "folds", 7, "number of cross-validation folds")
	cmd.MarkFlagRequired("gold")
	return cmd
}

func rebuildGeoCmd() *cobra.Command {
	var coordsPath, qidsPath, geomsPath, aggregationPath, outPath string

	cmd := &cobra.Command{
		Use:   "rebuild-geo",
		Short: "Resolve geocoded domains against region polygons and rebuild the location table",
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := geo.LoadRegions(geo.RegionConfig{
				RegionQIDsPath:  qidsPath,
				GeometriesPath:  geomsPath,
				AggregationPath: aggregationPath,
			})
			if err != nil {
				return err
			}
			if outPath == "" {
				outPath = filepath.Join(dataDir, "wikidata_countries.tsv")
			}
			written, err := geo.RebuildCountries(idx, coordsPath, outPath)
			if err != nil {
				return err
			}
			logrus.Infof("wrote %d rows to %s", written, outPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&coordsPath, "coords", "", "geocoded domain TSV (domain \\t lat \\t lon)")
	cmd.Flags().StringVar(&qidsPath, "region-qids", "", "region name to QID TSV")
	cmd.Flags().StringVar(&geomsPath, "geometries", "", "region GeoJSON feature collection")
	cmd.Flags().StringVar(&aggregationPath, "aggregation", "", "region aggregation TSV")
	cmd.Flags().StringVar(&outPath, "output", "", "output location table path")
	cmd.MarkFlagRequired("coords")
	cmd.MarkFlagRequired("region-qids")
	cmd.MarkFlagRequired("geometries")
	cmd.MarkFlagRequired("aggregation")
	return cmd
}

// topNJSON renders the heaviest entries of a distribution as a JSON object.
func topNJSON(dist infer.Distribution) string {
	type entry struct {
		country string
		p       float64
	}
	entries := make([]entry, 0, len(dist))
	for country, p := range dist {
		entries = append(entries, entry{country: country, p: p})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].p != entries[j].p {
			return entries[i].p > entries[j].p
		}
		return entries[i].country < entries[j].country
	})
	if len(entries) > topNEntries {
		entries = entries[:topNEntries]
	}
	top := make(map[string]float64, len(entries))
	for _, e := range entries {
		top[e.country] = e.p
	}
	payload, err := json.Marshal(top)
	if err != nil {
		return "{}"
	}
	return string(payload)
}
