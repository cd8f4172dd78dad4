package api

import (
	"sort"
	"time"

	"geoprovenance/backend/internal/store"
)

// maxDistributionEntries caps how much of the tail the API returns.
const maxDistributionEntries = 10

// CountryProbability is one entry of a returned distribution.
type CountryProbability struct {
	Country     string  `json:"country"`
	Probability float64 `json:"probability"`
}

// InferenceDTO is the API representation of one inference.
type InferenceDTO struct {
	ID               uint                 `json:"id"`
	URL              string               `json:"url"`
	Domain           string               `json:"domain"`
	Country          string               `json:"country"`
	Probability      float64              `json:"probability"`
	Distribution     []CountryProbability `json:"distribution"`
	ProcessingTimeMs int64                `json:"processing_time_ms"`
	CreatedAt        time.Time            `json:"created_at"`
}

// ResultsResponse holds paginated inference rows.
type ResultsResponse struct {
	Items []InferenceDTO `json:"items"`
	Total int64          `json:"total"`
}

// BatchInferRequest starts an asynchronous inference run over a URL list.
type BatchInferRequest struct {
	URLs    []string `json:"urls"`
	Refresh bool     `json:"refresh"`
}

// StartBatchResponse describes the asynchronous batch kickoff payload.
type StartBatchResponse struct {
	JobID     string    `json:"job_id"`
	Total     int64     `json:"total"`
	StartedAt time.Time `json:"started_at"`
}

// BatchStatusResponse describes the state of the active batch job.
type BatchStatusResponse struct {
	Running       bool          `json:"running"`
	JobID         string        `json:"job_id"`
	State         string        `json:"state"`
	Message       string        `json:"message"`
	Processed     int           `json:"processed"`
	Total         int64         `json:"total"`
	LastInference *InferenceDTO `json:"last_inference,omitempty"`
}

// CountryCountDTO is one row of the per-country summary.
type CountryCountDTO struct {
	Country string `json:"country"`
	Total   int    `json:"total"`
}

// FromModel converts a stored inference into its DTO representation. The
// distribution is sorted by descending probability and truncated.
func FromModel(row store.Inference) InferenceDTO {
	dist := row.Distribution()
	entries := make([]CountryProbability, 0, len(dist))
	for country, p := range dist {
		entries = append(entries, CountryProbability{Country: country, Probability: round4(p)})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Probability != entries[j].Probability {
			return entries[i].Probability > entries[j].Probability
		}
		return entries[i].Country < entries[j].Country
	})
	if len(entries) > maxDistributionEntries {
		entries = entries[:maxDistributionEntries]
	}
	return InferenceDTO{
		ID:               row.ID,
		URL:              row.URL,
		Domain:           row.Domain,
		Country:          row.Country,
		Probability:      round4(row.Probability),
		Distribution:     entries,
		ProcessingTimeMs: row.ProcessingTimeMs,
		CreatedAt:        row.CreatedAt,
	}
}

func round4(v float64) float64 {
	return float64(int(v*10000+0.5)) / 10000
}
