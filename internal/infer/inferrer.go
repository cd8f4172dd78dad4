package infer

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"geoprovenance/backend/internal/country"
)

// DefaultIntercept is the fusion intercept fit on the gold dataset.
const DefaultIntercept = -7.23

// DefaultCoefficients holds the fitted fusion weight for each feature name.
var DefaultCoefficients = map[string]float64{
	"prior":          3.30,
	"parsed_whois":   6.56,
	"freetext_whois": 2.53,
	"mil":            7.00,
	"wikidata":       4.05,
	"tld":            7.00,
}

// sharpening exponent applied to each per-country logistic score before
// renormalization.
const sharpening = 1.2

// Result is one fused inference.
type Result struct {
	URL          string
	Country      string
	Probability  float64
	Distribution Distribution
}

// LogisticInferrer fuses feature distributions with a logistic model: each
// country's score is the intercept plus the weighted sum of feature masses,
// squashed and renormalized into a distribution over all known countries.
type LogisticInferrer struct {
	Intercept float64
	Features  []WeightedFeature

	table *country.Table
}

// New builds an inferrer over the given feature ensemble.
func New(table *country.Table, intercept float64, features []WeightedFeature) (*LogisticInferrer, error) {
	if table == nil || table.Len() == 0 {
		return nil, errors.New("empty country table")
	}
	if len(features) == 0 {
		return nil, errors.New("no features")
	}
	return &LogisticInferrer{Intercept: intercept, Features: features, table: table}, nil
}

// Infer runs every feature for the URL and fuses the results. The returned
// distribution covers all known countries and sums to 1.
func (inf *LogisticInferrer) Infer(ctx context.Context, url string) (*Result, error) {
	countries := inf.table.Countries()
	scores := make([]float64, len(countries))
	for i := range scores {
		scores[i] = inf.Intercept
	}

	for _, wf := range inf.Features {
		row, err := inf.featureRow(ctx, wf.Feature, url)
		if err != nil {
			return nil, fmt.Errorf("feature %s: %w", wf.Feature.Name(), err)
		}
		for i := range scores {
			scores[i] += wf.Coefficient * row[i]
		}
	}

	dist := make(Distribution, len(countries))
	var total float64
	for i, c := range countries {
		p := math.Pow(logistic(scores[i]), sharpening)
		dist[c.Name] = p
		total += p
	}
	if total == 0 {
		return nil, fmt.Errorf("degenerate scores for %q", url)
	}

	result := &Result{URL: url, Distribution: dist}
	for _, c := range countries {
		dist[c.Name] /= total
		if dist[c.Name] > result.Probability {
			result.Country = c.Name
			result.Probability = dist[c.Name]
		}
	}
	return result, nil
}

// featureRow evaluates one feature and expands its distribution into a dense
// row in table order. An abstaining feature contributes uniform mass.
func (inf *LogisticInferrer) featureRow(ctx context.Context, f Feature, url string) ([]float64, error) {
	conf, dist, err := f.Infer(ctx, url)
	if err != nil {
		return nil, err
	}
	countries := inf.table.Countries()
	row := make([]float64, len(countries))
	if conf > 0 && len(dist) > 0 {
		for i, c := range countries {
			row[i] = dist[c.Name]
		}
		return row, nil
	}
	uniform := 1.0 / float64(len(countries))
	for i := range row {
		row[i] = uniform
	}
	return row, nil
}

// Coefficient returns the weight for a feature name, or 0 when the feature
// is not in the ensemble.
func (inf *LogisticInferrer) Coefficient(name string) float64 {
	for _, wf := range inf.Features {
		if wf.Feature.Name() == name {
			return wf.Coefficient
		}
	}
	return 0
}

func (inf *LogisticInferrer) logParameters() {
	for _, wf := range inf.Features {
		logrus.Infof("feature %s coefficient %.4f", wf.Feature.Name(), wf.Coefficient)
	}
	logrus.Infof("intercept %.4f", inf.Intercept)
}

func logistic(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}
