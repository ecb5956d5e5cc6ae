package waitlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransition(t *testing.T) {
	loading := FormState{Email: "a@x.com", Platform: PlatformIOS, Status: StatusLoading}

	tests := []struct {
		name    string
		outcome Outcome
		want    FormState
	}{
		{
			name:    "inserted clears inputs",
			outcome: OutcomeInserted,
			want:    FormState{Status: StatusSuccess, Message: MessageSuccess},
		},
		{
			name:    "duplicate keeps inputs",
			outcome: OutcomeDuplicate,
			want:    FormState{Email: "a@x.com", Platform: PlatformIOS, Status: StatusError, Message: MessageDuplicate},
		},
		{
			name:    "failure keeps inputs",
			outcome: OutcomeFailed,
			want:    FormState{Email: "a@x.com", Platform: PlatformIOS, Status: StatusError, Message: MessageGeneric},
		},
		{
			name:    "platform missing",
			outcome: OutcomePlatformMissing,
			want:    FormState{Email: "a@x.com", Platform: PlatformIOS, Status: StatusError, Message: MessagePlatformMissing},
		},
		{
			name:    "skipped leaves state untouched",
			outcome: OutcomeSkipped,
			want:    loading,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Transition(loading, tt.outcome))
		})
	}
}

func TestBegin_ReentersLoadingFromTerminalStates(t *testing.T) {
	for _, status := range []Status{StatusIdle, StatusSuccess, StatusError} {
		state := Begin(FormState{Email: "a@x.com", Status: status, Message: "old"})
		assert.Equal(t, StatusLoading, state.Status)
		assert.Empty(t, state.Message)
		assert.Equal(t, "a@x.com", state.Email)
	}
}

func TestParseStatus(t *testing.T) {
	assert.Equal(t, StatusError, ParseStatus("error"))
	assert.Equal(t, StatusSuccess, ParseStatus("success"))
	assert.Equal(t, StatusIdle, ParseStatus(""))
	assert.Equal(t, StatusIdle, ParseStatus("bogus"))
	assert.True(t, StatusError.ShowsMessage())
	assert.False(t, StatusLoading.ShowsMessage())
}

func TestParseMessage(t *testing.T) {
	assert.Equal(t, MessageSuccess, ParseMessage(StatusSuccess, MessageSuccess))
	assert.Equal(t, MessageDuplicate, ParseMessage(StatusError, MessageDuplicate))
	assert.Equal(t, MessageGeneric, ParseMessage(StatusError, MessageGeneric))
	assert.Empty(t, ParseMessage(StatusError, MessageSuccess), "message must match the status")
	assert.Empty(t, ParseMessage(StatusSuccess, "Free prizes inside"))
	assert.Empty(t, ParseMessage(StatusIdle, MessageGeneric))
}

func TestFormState_HasMessage(t *testing.T) {
	assert.True(t, FormState{Status: StatusSuccess, Message: MessageSuccess}.HasMessage())
	assert.False(t, FormState{Status: StatusSuccess}.HasMessage())
	assert.False(t, FormState{Status: StatusLoading, Message: MessageGeneric}.HasMessage())
}

func TestParsePlatform(t *testing.T) {
	assert.Equal(t, PlatformIOS, ParsePlatform(" iOS "))
	assert.Equal(t, PlatformAndroid, ParsePlatform("android"))
	assert.Equal(t, PlatformNone, ParsePlatform("windows"))
	assert.Equal(t, "iPhone", PlatformIOS.Label())
	assert.Nil(t, PlatformNone.column())
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "inserted", OutcomeInserted.String())
	assert.Equal(t, "in_flight", OutcomeInFlight.String())
	assert.Equal(t, "unknown", Outcome(42).String())
}
