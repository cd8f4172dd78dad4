package store

import (
	"encoding/json"
	"strings"
	"time"
)

// Inference is the persisted per-domain inference output.
type Inference struct {
	ID               uint   `gorm:"primaryKey"`
	URL              string `gorm:"size:512"`
	Domain           string `gorm:"size:255;index"`
	DomainNormalized string `gorm:"size:255;uniqueIndex"`
	Country          string `gorm:"size:128;index"`
	Probability      float64
	DistributionJSON string `gorm:"type:text"`
	ProcessingTimeMs int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// SetDistribution persists the country distribution as JSON.
func (i *Inference) SetDistribution(dist map[string]float64) {
	if dist == nil {
		i.DistributionJSON = "{}"
		return
	}
	payload, _ := json.Marshal(dist)
	i.DistributionJSON = string(payload)
}

// Distribution returns the decoded country distribution.
func (i *Inference) Distribution() map[string]float64 {
	if strings.TrimSpace(i.DistributionJSON) == "" {
		return nil
	}
	var out map[string]float64
	if err := json.Unmarshal([]byte(i.DistributionJSON), &out); err != nil {
		return nil
	}
	return out
}
