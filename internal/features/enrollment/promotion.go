package enrollment

import (
	"context"
	"log/slog"
)

// PromotionJob periodically moves waitlisted students onto rosters with
// open seats. Registered with the pkg/jobs scheduler.
type PromotionJob struct {
	service *Service
	logger  *slog.Logger
}

// NewPromotionJob constructs the waitlist promotion job.
func NewPromotionJob(service *Service, logger *slog.Logger) *PromotionJob {
	return &PromotionJob{service: service, logger: logger}
}

// Name returns the job identifier.
func (j *PromotionJob) Name() string { return "waitlist_promotion" }

// Execute promotes eligible waitlisted students across all active courses.
func (j *PromotionJob) Execute(ctx context.Context) error {
	promoted, err := j.service.PromoteEligible(ctx)
	if err != nil {
		return err
	}

	if promoted > 0 {
		j.logger.Info("waitlist promotion sweep completed", slog.Int("promoted", promoted))
	}

	return nil
}
