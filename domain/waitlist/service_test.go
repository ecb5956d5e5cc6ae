package waitlist

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/akeren/vannie-landing/internal/log"
	"github.com/akeren/vannie-landing/internal/models"
	apperrors "github.com/akeren/vannie-landing/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)

func newTestService(repo WaitlistRepository, cfg *ServiceConfig) WaitlistService {
	if cfg == nil {
		cfg = &ServiceConfig{}
	}
	cfg.Now = func() time.Time { return fixedNow }
	return NewWaitlistService(log.NewLoggerWithJSONOutput(), repo, cfg)
}

func TestWaitlistService_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockWaitlistRepository(ctrl)
	service := newTestService(mockRepo, nil)

	t.Run("successful insert clears the email", func(t *testing.T) {
		var inserted *models.WaitlistEntry
		mockRepo.EXPECT().
			CreateEntry(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry *models.WaitlistEntry) error {
				inserted = entry
				return nil
			})

		state, outcome := service.Submit(context.Background(), "", FormState{Email: "a@x.com", Status: StatusIdle})

		assert.Equal(t, OutcomeInserted, outcome)
		assert.Equal(t, StatusSuccess, state.Status)
		assert.Contains(t, state.Message, "on the list")
		assert.Equal(t, "", state.Email)

		require.NotNil(t, inserted)
		assert.Equal(t, "a@x.com", inserted.Email)
		assert.Nil(t, inserted.PhoneOS)
		assert.Equal(t, fixedNow, inserted.CreatedAt)
	})

	t.Run("duplicate email keeps the input", func(t *testing.T) {
		mockRepo.EXPECT().
			CreateEntry(gomock.Any(), gomock.Any()).
			Return(apperrors.NewConflictError("waitlist entry with this email already exists", nil))

		state, outcome := service.Submit(context.Background(), "", FormState{Email: "dup@x.com"})

		assert.Equal(t, OutcomeDuplicate, outcome)
		assert.Equal(t, StatusError, state.Status)
		assert.Equal(t, "This email is already on the waitlist!", state.Message)
		assert.Equal(t, "dup@x.com", state.Email)
	})

	t.Run("other repository error shows the generic message", func(t *testing.T) {
		mockRepo.EXPECT().
			CreateEntry(gomock.Any(), gomock.Any()).
			Return(apperrors.NewDatabaseError("database error", errors.New("connection refused")))

		state, outcome := service.Submit(context.Background(), "", FormState{Email: "a@x.com"})

		assert.Equal(t, OutcomeFailed, outcome)
		assert.Equal(t, StatusError, state.Status)
		assert.Equal(t, MessageGeneric, state.Message)
		assert.NotContains(t, state.Message, "connection refused")
		assert.Equal(t, "a@x.com", state.Email)
	})

	t.Run("empty email is a silent no-op", func(t *testing.T) {
		prior := FormState{Email: "   ", Status: StatusError, Message: MessageDuplicate}

		state, outcome := service.Submit(context.Background(), "", prior)

		assert.Equal(t, OutcomeSkipped, outcome)
		assert.Equal(t, prior, state)
	})

	t.Run("email is normalized before insert", func(t *testing.T) {
		mockRepo.EXPECT().
			CreateEntry(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry *models.WaitlistEntry) error {
				assert.Equal(t, "mixed.case@example.com", entry.Email)
				return nil
			})

		_, outcome := service.Submit(context.Background(), "", FormState{Email: "  Mixed.Case@Example.COM "})
		assert.Equal(t, OutcomeInserted, outcome)
	})
}

func TestWaitlistService_Submit_CollectingPlatform(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockWaitlistRepository(ctrl)
	service := newTestService(mockRepo, &ServiceConfig{CollectPlatform: true})

	assert.True(t, service.CollectsPlatform())

	t.Run("missing platform fails without a network call", func(t *testing.T) {
		state, outcome := service.Submit(context.Background(), "", FormState{Email: "a@x.com"})

		assert.Equal(t, OutcomePlatformMissing, outcome)
		assert.Equal(t, StatusError, state.Status)
		assert.Equal(t, "Please select your device (iPhone or Android)", state.Message)
		assert.Equal(t, "a@x.com", state.Email)
	})

	t.Run("selected platform is stored and cleared on success", func(t *testing.T) {
		mockRepo.EXPECT().
			CreateEntry(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry *models.WaitlistEntry) error {
				require.NotNil(t, entry.PhoneOS)
				assert.Equal(t, "android", *entry.PhoneOS)
				return nil
			})

		state, outcome := service.Submit(context.Background(), "", FormState{Email: "a@x.com", Platform: PlatformAndroid})

		assert.Equal(t, OutcomeInserted, outcome)
		assert.Equal(t, PlatformNone, state.Platform)
		assert.Equal(t, "", state.Email)
	})

	t.Run("duplicate keeps the platform selection", func(t *testing.T) {
		mockRepo.EXPECT().
			CreateEntry(gomock.Any(), gomock.Any()).
			Return(apperrors.NewConflictError("exists", nil))

		state, _ := service.Submit(context.Background(), "", FormState{Email: "dup@x.com", Platform: PlatformIOS})

		assert.Equal(t, PlatformIOS, state.Platform)
		assert.Equal(t, MessageDuplicate, state.Message)
	})
}

func TestWaitlistService_Submit_Unconfigured(t *testing.T) {
	service := newTestService(nil, nil)

	assert.False(t, service.IsConfigured())

	for i := 0; i < 3; i++ {
		state, outcome := service.Submit(context.Background(), "", FormState{Email: "a@x.com"})
		assert.Equal(t, OutcomeFailed, outcome)
		assert.Equal(t, StatusError, state.Status)
		assert.Equal(t, MessageGeneric, state.Message)
	}
}

func TestWaitlistService_Submit_RejectsConcurrentSubmitForSameForm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := NewMockWaitlistRepository(ctrl)
	service := newTestService(mockRepo, nil)

	entered := make(chan struct{})
	unblock := make(chan struct{})

	mockRepo.EXPECT().
		CreateEntry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *models.WaitlistEntry) error {
			close(entered)
			<-unblock
			return nil
		}).
		Times(1)

	done := make(chan Outcome, 1)
	go func() {
		_, outcome := service.Submit(context.Background(), "form-1", FormState{Email: "a@x.com"})
		done <- outcome
	}()

	<-entered

	state, outcome := service.Submit(context.Background(), "form-1", FormState{Email: "a@x.com"})
	assert.Equal(t, OutcomeInFlight, outcome)
	assert.Equal(t, StatusLoading, state.Status)
	assert.Equal(t, "a@x.com", state.Email)

	close(unblock)
	assert.Equal(t, OutcomeInserted, <-done)

	mockRepo.EXPECT().CreateEntry(gomock.Any(), gomock.Any()).Return(nil)
	_, outcome = service.Submit(context.Background(), "form-1", FormState{Email: "b@x.com"})
	assert.Equal(t, OutcomeInserted, outcome)
}

func TestWaitlistService_Submit_RecordsMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reg := prometheus.NewRegistry()
	mockRepo := NewMockWaitlistRepository(ctrl)
	service := newTestService(mockRepo, &ServiceConfig{Metrics: reg})

	mockRepo.EXPECT().CreateEntry(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().CreateEntry(gomock.Any(), gomock.Any()).Return(apperrors.NewConflictError("exists", nil))

	service.Submit(context.Background(), "", FormState{Email: "a@x.com"})
	service.Submit(context.Background(), "", FormState{Email: "a@x.com"})
	service.Submit(context.Background(), "", FormState{Email: ""})

	metrics := newSubmissionMetrics(reg)
	require.NotNil(t, metrics)
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.total.WithLabelValues("inserted")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.total.WithLabelValues("duplicate")))
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.total.WithLabelValues("skipped")))
}
