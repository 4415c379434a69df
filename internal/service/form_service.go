package service

import (
	"context"

	"go.uber.org/zap"

	"leadform/internal/mailer"
	"leadform/internal/model"
	"leadform/pkg/logger"
	"leadform/pkg/metrics"
)

// SubmissionStore is the persistence surface the form service needs.
// *repository.SubmissionRepository satisfies it; tests substitute fakes.
type SubmissionStore interface {
	Create(ctx context.Context, s *model.Submission) error
	List(ctx context.Context) ([]model.Submission, error)
	FindByID(ctx context.Context, id int64) (*model.Submission, error)
}

type FormService struct {
	store    SubmissionStore
	notifier mailer.Notifier
	logger   *zap.Logger
}

func NewFormService(store SubmissionStore, notifier mailer.Notifier, logger *zap.Logger) *FormService {
	return &FormService{
		store:    store,
		notifier: notifier,
		logger:   logger,
	}
}

// Create persists a submission and attempts the admin notification.
// Notification failure is logged but never surfaced: a flaky mail relay
// must not block lead capture.
func (s *FormService) Create(ctx context.Context, name, contactNumber, serviceType, description string) (*model.Submission, error) {
	sub := &model.Submission{
		Name:          name,
		ContactNumber: contactNumber,
		Service:       serviceType,
		Description:   description,
	}

	if err := s.store.Create(ctx, sub); err != nil {
		logger.WithTrace(ctx, s.logger).Error("Failed to persist submission", zap.Error(err))
		return nil, err
	}

	metrics.SubmissionsReceived.Inc()
	logger.WithTrace(ctx, s.logger).Info("Submission persisted",
		zap.Int64("submission_id", sub.ID),
		zap.String("service", sub.Service),
	)

	if err := s.notifier.Notify(ctx, sub); err != nil {
		metrics.IncrementNotificationsSent("failed")
		logger.WithTrace(ctx, s.logger).Error("Failed to send admin notification",
			zap.Int64("submission_id", sub.ID),
			zap.Error(err),
		)
	} else {
		metrics.IncrementNotificationsSent("success")
	}

	return sub, nil
}

// List returns all submissions, newest first.
func (s *FormService) List(ctx context.Context) ([]model.Submission, error) {
	return s.store.List(ctx)
}

// Resend re-delivers the notification email for an existing submission.
// Unlike Create, a notification failure here is surfaced to the caller.
func (s *FormService) Resend(ctx context.Context, id int64) error {
	sub, err := s.store.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.notifier.Notify(ctx, sub); err != nil {
		metrics.IncrementNotificationsSent("failed")
		logger.WithTrace(ctx, s.logger).Error("Failed to resend notification",
			zap.Int64("submission_id", id),
			zap.Error(err),
		)
		return err
	}

	metrics.IncrementNotificationsSent("success")
	return nil
}
