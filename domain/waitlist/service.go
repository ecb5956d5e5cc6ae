package waitlist

import (
	"context"
	"strings"
	"time"

	"github.com/akeren/vannie-landing/internal/log"
	apperrors "github.com/akeren/vannie-landing/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const tracerName = "github.com/akeren/vannie-landing/domain/waitlist"

type WaitlistService interface {
	// Submit runs one submission for the form identified by formID and returns
	// the next form state together with what happened.
	Submit(ctx context.Context, formID string, current FormState) (FormState, Outcome)

	// CollectsPlatform reports whether a device platform is required.
	CollectsPlatform() bool

	// IsConfigured reports whether a backing store was wired.
	IsConfigured() bool
}

type ServiceConfig struct {
	CollectPlatform bool
	Guard           InFlightGuard
	Metrics         prometheus.Registerer
	Now             func() time.Time
}

type waitlistService struct {
	logger     *log.Logger
	repository WaitlistRepository
	guard      InFlightGuard
	metrics    *submissionMetrics
	now        func() time.Time

	collectPlatform bool
}

// NewWaitlistService accepts a nil repository; every submission then fails
// without contacting any store.
func NewWaitlistService(logger *log.Logger, repository WaitlistRepository, cfg *ServiceConfig) WaitlistService {
	if cfg == nil {
		cfg = &ServiceConfig{}
	}

	guard := cfg.Guard
	if guard == nil {
		guard = NewMemoryGuard()
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &waitlistService{
		logger:          logger,
		repository:      repository,
		guard:           guard,
		metrics:         newSubmissionMetrics(cfg.Metrics),
		now:             now,
		collectPlatform: cfg.CollectPlatform,
	}
}

func (s *waitlistService) CollectsPlatform() bool {
	return s.collectPlatform
}

func (s *waitlistService) IsConfigured() bool {
	return s.repository != nil
}

func (s *waitlistService) Submit(ctx context.Context, formID string, current FormState) (FormState, Outcome) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if strings.TrimSpace(current.Email) == "" {
		return current, OutcomeSkipped
	}

	if s.collectPlatform && !current.Platform.IsSelected() {
		logger.Info("Waitlist submission without device platform")
		s.metrics.observe(OutcomePlatformMissing)
		return Transition(current, OutcomePlatformMissing), OutcomePlatformMissing
	}

	release, ok := s.guard.Acquire(ctx, formID)
	if !ok {
		logger.Warn("Waitlist submission already in flight", "form_id", formID)
		s.metrics.observe(OutcomeInFlight)
		return Transition(current, OutcomeInFlight), OutcomeInFlight
	}
	defer release()

	ctx, span := otel.Tracer(tracerName).Start(ctx, "waitlist.submit")
	defer span.End()

	state := Begin(current)
	outcome := s.insert(ctx, logger, state)

	span.SetAttributes(
		attribute.String("waitlist.outcome", outcome.String()),
		attribute.Bool("waitlist.platform_collected", s.collectPlatform),
	)
	if outcome == OutcomeFailed {
		span.SetStatus(codes.Error, "waitlist insert failed")
	}

	s.metrics.observe(outcome)
	return Transition(state, outcome), outcome
}

func (s *waitlistService) insert(ctx context.Context, logger *log.Logger, state FormState) Outcome {
	if s.repository == nil {
		logger.Error("Waitlist store is not configured",
			"error", apperrors.NewServiceUnavailableError("waitlist store is not configured", nil))
		return OutcomeFailed
	}

	entry := ToWaitlistEntryModel(state, s.now())

	err := s.repository.CreateEntry(ctx, entry)
	switch {
	case err == nil:
		logger.Info("Waitlist entry created", "platform", string(state.Platform))
		return OutcomeInserted
	case apperrors.IsConflict(err):
		logger.Info("Waitlist entry already exists")
		return OutcomeDuplicate
	default:
		logger.Error("Failed to create waitlist entry", "error", err)
		return OutcomeFailed
	}
}
