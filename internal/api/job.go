package api

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"geoprovenance/backend/internal/store"
	"geoprovenance/backend/internal/urlkit"
	"geoprovenance/backend/internal/util"
)

// inferenceJob tracks the state of a running batch inference.
type inferenceJob struct {
	id        string
	cancel    context.CancelFunc
	startedAt time.Time
	total     int64
}

// startBatch launches a new asynchronous batch run. The caller must hold
// s.jobMu prior to invoking this function.
func (s *Server) startBatch(req BatchInferRequest) (*inferenceJob, error) {
	if s.activeJob != nil {
		return nil, errors.New("batch inference already running")
	}

	ctx, cancel := context.WithCancel(context.Background())
	job := &inferenceJob{
		id:        uuid.NewString(),
		cancel:    cancel,
		startedAt: time.Now().UTC(),
		total:     int64(len(req.URLs)),
	}

	s.activeJob = job
	go s.runBatch(ctx, job, req)
	return job, nil
}

func (s *Server) runBatch(ctx context.Context, job *inferenceJob, req BatchInferRequest) {
	defer func() {
		s.jobMu.Lock()
		s.activeJob = nil
		s.jobMu.Unlock()
	}()

	logrus.WithFields(logrus.Fields{
		"job":     job.id,
		"total":   job.total,
		"refresh": req.Refresh,
	}).Info("batch inference started")

	s.notifier.Broadcast(InferenceEvent{
		Type:  "started",
		JobID: job.id,
		Total: job.total,
	})

	processed := 0
	failed := 0
	for _, url := range req.URLs {
		if ctx.Err() != nil {
			s.notifier.Broadcast(InferenceEvent{
				Type:      "cancelled",
				JobID:     job.id,
				Total:     job.total,
				Processed: processed,
				Message:   "batch inference cancelled",
			})
			logrus.WithField("job", job.id).Info("batch inference cancelled")
			return
		}

		domain := urlkit.RegisteredDomain(url)
		if domain == "" {
			logrus.WithField("url", url).Warn("skipping url without registrable domain")
			failed++
			continue
		}

		reused := false
		var row *store.Inference
		var err error
		if !req.Refresh {
			row, err = s.db.GetInference(domain)
			if err == nil && row != nil {
				reused = true
			}
		}
		if row == nil {
			row, err = s.inferOne(ctx, url, domain)
		}
		if err != nil {
			logrus.WithError(err).WithField("url", url).Warn("batch inference item failed")
			failed++
			continue
		}

		processed++
		dto := FromModel(*row)
		s.notifier.Broadcast(InferenceEvent{
			Type:      "inference",
			JobID:     job.id,
			Total:     job.total,
			Processed: processed,
			Inference: &dto,
			Reused:    reused,
		})
	}

	message := fmt.Sprintf("processed %d of %d urls", processed, job.total)
	if failed > 0 {
		message = fmt.Sprintf("%s (%d failed)", message, failed)
	}
	s.notifier.Broadcast(InferenceEvent{
		Type:      "completed",
		JobID:     job.id,
		Total:     job.total,
		Processed: processed,
		Message:   message,
	})
	logrus.WithFields(logrus.Fields{
		"job":       job.id,
		"processed": processed,
		"failed":    failed,
		"duration":  time.Since(job.startedAt),
	}).Info("batch inference finished")
}

// inferOne runs the full ensemble for one URL and persists the result.
func (s *Server) inferOne(ctx context.Context, url, domain string) (*store.Inference, error) {
	timer := util.StartTimer()
	result, err := s.inferrer.Infer(ctx, url)
	if err != nil {
		return nil, err
	}
	row := &store.Inference{
		URL:              url,
		Domain:           domain,
		Country:          result.Country,
		Probability:      result.Probability,
		ProcessingTimeMs: timer.ElapsedMs(),
	}
	row.SetDistribution(result.Distribution)
	if err := s.db.SaveInference(row); err != nil {
		return nil, fmt.Errorf("save inference: %w", err)
	}
	return row, nil
}
