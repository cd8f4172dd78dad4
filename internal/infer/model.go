package infer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

type modelFile struct {
	Intercept    float64            `json:"intercept"`
	Coefficients map[string]float64 `json:"coefficients"`
}

// SaveModel writes the fitted intercept and coefficients as JSON.
func (inf *LogisticInferrer) SaveModel(path string) error {
	model := modelFile{
		Intercept:    inf.Intercept,
		Coefficients: make(map[string]float64, len(inf.Features)),
	}
	for _, wf := range inf.Features {
		model.Coefficients[wf.Feature.Name()] = wf.Coefficient
	}
	payload, err := json.MarshalIndent(model, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Clean(path), append(payload, '\n'), 0o644); err != nil {
		return fmt.Errorf("write model: %w", err)
	}
	return nil
}

// LoadModel installs intercept and coefficients from a saved model file.
// Features missing from the file keep their current coefficient.
func (inf *LogisticInferrer) LoadModel(path string) error {
	raw, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("read model: %w", err)
	}
	var model modelFile
	if err := json.Unmarshal(raw, &model); err != nil {
		return fmt.Errorf("parse model: %w", err)
	}
	inf.Intercept = model.Intercept
	for i := range inf.Features {
		name := inf.Features[i].Feature.Name()
		if coef, ok := model.Coefficients[name]; ok {
			inf.Features[i].Coefficient = coef
		} else {
			logrus.Warnf("model file has no coefficient for feature %s", name)
		}
	}
	return nil
}
