// Package scheduler runs the periodic background jobs of the service.
package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/ADITYAKUMARSINGH16/ai-judicial/models"
	"github.com/ADITYAKUMARSINGH16/ai-judicial/stores"
)

// Scheduler handles periodic background jobs over the case store
type Scheduler struct {
	cron  *cron.Cron
	Cases *stores.CaseStore
}

// New creates a new scheduler instance
func New(cases *stores.CaseStore) *Scheduler {
	return &Scheduler{
		cron:  cron.New(cron.WithLocation(time.UTC)),
		Cases: cases,
	}
}

// Start begins the scheduler with all registered jobs
func (s *Scheduler) Start() {
	// Log a docket digest every hour
	_, err := s.cron.AddFunc("@hourly", s.docketDigest)
	if err != nil {
		zap.S().Errorw("failed to register docket digest job", "error", err)
	}

	s.cron.Start()
	zap.S().Info("docket scheduler started")
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("docket scheduler stopped")
}

// docketDigest logs how the docket currently breaks down by status
func (s *Scheduler) docketDigest() {
	var submitted, underReview, ruled int
	cases := s.Cases.List()
	for _, c := range cases {
		switch c.Status {
		case models.StatusSubmitted:
			submitted++
		case models.StatusUnderReview:
			underReview++
		case models.StatusRuled:
			ruled++
		}
	}

	zap.S().Infow("docket digest",
		"total", len(cases),
		"submitted", submitted,
		"underReview", underReview,
		"ruled", ruled,
	)
}
