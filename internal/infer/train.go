package infer

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// GoldEntry is one labeled URL from the gold dataset.
type GoldEntry struct {
	URL     string
	Country string
}

// ReadGold loads a gold TSV (url \t country). Blank lines and lines starting
// with '#' are skipped; other malformed lines are logged and skipped.
func ReadGold(path string) ([]GoldEntry, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open gold data: %w", err)
	}
	defer f.Close()

	var entries []GoldEntry
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		cols := strings.Split(line, "\t")
		if len(cols) != 2 || strings.TrimSpace(cols[0]) == "" || strings.TrimSpace(cols[1]) == "" {
			logrus.Warnf("invalid gold line: %q", line)
			continue
		}
		entries = append(entries, GoldEntry{URL: strings.TrimSpace(cols[0]), Country: strings.TrimSpace(cols[1])})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read gold data: %w", err)
	}
	logrus.Infof("loaded %d gold entries from %s", len(entries), path)
	return entries, nil
}

// TrainOptions tune the gradient descent fit.
type TrainOptions struct {
	LearningRate float64
	Epochs       int
	L2           float64
}

// DefaultTrainOptions returns the settings used for the shipped model.
func DefaultTrainOptions() TrainOptions {
	return TrainOptions{LearningRate: 0.5, Epochs: 2000, L2: 1e-4}
}

// Train fits the intercept and feature coefficients on the gold dataset and
// installs them on the inferrer. Each labeled URL expands into one binary
// example per known country; the positive example is the gold country.
func (inf *LogisticInferrer) Train(ctx context.Context, entries []GoldEntry, opts TrainOptions) error {
	if len(entries) == 0 {
		return errors.New("no training data")
	}
	if opts.Epochs <= 0 || opts.LearningRate <= 0 {
		return errors.New("invalid training options")
	}

	countries := inf.table.Countries()
	nf := len(inf.Features)

	var x [][]float64
	var y []float64
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		rows := make([][]float64, nf)
		for j, wf := range inf.Features {
			row, err := inf.featureRow(ctx, wf.Feature, entry.URL)
			if err != nil {
				return fmt.Errorf("feature %s on %s: %w", wf.Feature.Name(), entry.URL, err)
			}
			rows[j] = row
		}
		for i, c := range countries {
			sample := make([]float64, nf)
			for j := range rows {
				sample[j] = rows[j][i]
			}
			x = append(x, sample)
			if c.Name == entry.Country {
				y = append(y, 1)
			} else {
				y = append(y, 0)
			}
		}
	}
	logrus.Infof("training on %d examples from %d urls", len(x), len(entries))

	w := make([]float64, nf)
	for j, wf := range inf.Features {
		w[j] = wf.Coefficient
	}
	b := inf.Intercept

	n := float64(len(x))
	for epoch := 0; epoch < opts.Epochs; epoch++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		gw := make([]float64, nf)
		var gb, loss float64
		for i, sample := range x {
			z := b
			for j, v := range sample {
				z += w[j] * v
			}
			p := logistic(z)
			diff := p - y[i]
			for j, v := range sample {
				gw[j] += diff * v
			}
			gb += diff
			loss -= y[i]*math.Log(math.Max(p, 1e-12)) + (1-y[i])*math.Log(math.Max(1-p, 1e-12))
		}
		for j := range w {
			w[j] -= opts.LearningRate * (gw[j]/n + opts.L2*w[j])
		}
		b -= opts.LearningRate * gb / n
		if epoch%500 == 0 {
			logrus.Debugf("epoch %d loss %.6f", epoch, loss/n)
		}
	}

	inf.Intercept = b
	for j := range inf.Features {
		inf.Features[j].Coefficient = w[j]
	}
	inf.logParameters()
	return nil
}

// CrossValidate runs k-fold cross-validation: each fold is held out once
// while the remaining entries train a model starting from the current
// parameters. Returns the mean held-out accuracy; the inferrer's parameters
// are restored afterwards.
func (inf *LogisticInferrer) CrossValidate(ctx context.Context, entries []GoldEntry, folds int, opts TrainOptions) (float64, error) {
	if folds < 2 {
		return 0, errors.New("need at least 2 folds")
	}
	if len(entries) < folds {
		return 0, fmt.Errorf("%d entries cannot fill %d folds", len(entries), folds)
	}

	initialIntercept := inf.Intercept
	initialCoefs := make([]float64, len(inf.Features))
	for j, wf := range inf.Features {
		initialCoefs[j] = wf.Coefficient
	}
	restore := func() {
		inf.Intercept = initialIntercept
		for j := range inf.Features {
			inf.Features[j].Coefficient = initialCoefs[j]
		}
	}
	defer restore()

	var totalAccuracy float64
	for fold := 0; fold < folds; fold++ {
		var train, held []GoldEntry
		for i, entry := range entries {
			if i%folds == fold {
				held = append(held, entry)
			} else {
				train = append(train, entry)
			}
		}

		restore()
		if err := inf.Train(ctx, train, opts); err != nil {
			return 0, fmt.Errorf("fold %d: %w", fold, err)
		}
		accuracy, err := inf.Evaluate(ctx, held)
		if err != nil {
			return 0, fmt.Errorf("fold %d: %w", fold, err)
		}
		logrus.Infof("fold %d accuracy %.4f (%d held out)", fold, accuracy, len(held))
		totalAccuracy += accuracy
	}
	return totalAccuracy / float64(folds), nil
}

// Evaluate scores the inferrer against labeled data and returns the
// top-1 accuracy.
func (inf *LogisticInferrer) Evaluate(ctx context.Context, entries []GoldEntry) (float64, error) {
	if len(entries) == 0 {
		return 0, errors.New("no evaluation data")
	}
	correct := 0
	var probabilitySum float64
	for _, entry := range entries {
		result, err := inf.Infer(ctx, entry.URL)
		if err != nil {
			return 0, err
		}
		probabilitySum += result.Probability
		if result.Country == entry.Country {
			correct++
		} else {
			logrus.Debugf("miss %s: expected %s got %s (%.3f)",
				entry.URL, entry.Country, result.Country, result.Probability)
		}
	}
	accuracy := float64(correct) / float64(len(entries))
	logrus.Infof("accuracy %.4f, mean winning probability %.4f over %d urls",
		accuracy, probabilitySum/float64(len(entries)), len(entries))
	return accuracy, nil
}
