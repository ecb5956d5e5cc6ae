package waitlist

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToFormState(t *testing.T) {
	state := ToFormState(&SubmitWaitlistRequest{Email: "a@x.com", PhoneOS: "ios", Status: "error"})

	assert.Equal(t, "a@x.com", state.Email)
	assert.Equal(t, PlatformIOS, state.Platform)
	assert.Equal(t, StatusError, state.Status)

	assert.Equal(t, StatusIdle, ToFormState(nil).Status)

	carried := ToFormState(&SubmitWaitlistRequest{Status: "error", Message: MessageDuplicate})
	assert.Equal(t, MessageDuplicate, carried.Message)

	forged := ToFormState(&SubmitWaitlistRequest{Status: "error", Message: "<b>hello</b>"})
	assert.Empty(t, forged.Message)
}

func TestToWaitlistEntryModel(t *testing.T) {
	createdAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.FixedZone("CET", 3600))

	entry := ToWaitlistEntryModel(FormState{Email: " A@X.com", Platform: PlatformAndroid}, createdAt)

	assert.Equal(t, "a@x.com", entry.Email)
	require.NotNil(t, entry.PhoneOS)
	assert.Equal(t, "android", *entry.PhoneOS)
	assert.Equal(t, time.UTC, entry.CreatedAt.Location())

	row := toSupabaseRow(entry)
	assert.Equal(t, "2026-01-02T02:04:05Z", row.CreatedAt)
}

func TestSubmitWaitlistRequest_Validation(t *testing.T) {
	RegisterValidators()

	cases := []struct {
		name  string
		req   SubmitWaitlistRequest
		valid bool
	}{
		{"empty email", SubmitWaitlistRequest{}, true},
		{"whitespace email", SubmitWaitlistRequest{Email: "   "}, true},
		{"padded email", SubmitWaitlistRequest{Email: " a@x.com "}, true},
		{"malformed email", SubmitWaitlistRequest{Email: "not-an-email"}, false},
		{"known platform", SubmitWaitlistRequest{Email: "a@x.com", PhoneOS: "android"}, true},
		{"unknown platform", SubmitWaitlistRequest{Email: "a@x.com", PhoneOS: "windows"}, false},
		{"unknown status", SubmitWaitlistRequest{Status: "done"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(&tc.req)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
