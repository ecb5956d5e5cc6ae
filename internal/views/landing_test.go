package views

import (
	"strings"
	"testing"

	"github.com/akeren/vannie-landing/domain/waitlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, data LandingData) string {
	t.Helper()

	var sb strings.Builder
	require.NoError(t, LandingPage(data).Render(&sb))
	return sb.String()
}

func TestLandingPage_IdleShell(t *testing.T) {
	html := render(t, LandingData{
		Site: DefaultSite(),
		Form: WaitlistForm{FormID: "form-1", State: waitlist.FormState{Status: waitlist.StatusIdle}},
		Year: 2026,
	})

	assert.True(t, strings.HasPrefix(html, "<!doctype html>") || strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "<title>Vannie - Your Beauty Inventory Bestie</title>")
	assert.Contains(t, html, "Your smart inventory companion is coming soon")
	assert.Contains(t, html, "Barcode scanning")
	assert.Contains(t, html, "/static/images/screenshot-inventory.svg")
	assert.Contains(t, html, "/static/images/badge-google-play.svg")
	assert.Contains(t, html, `name="form_id" value="form-1"`)
	assert.Contains(t, html, "Join Waitlist")
	assert.Contains(t, html, "&copy; 2026 Vannie. All rights reserved.")

	assert.NotContains(t, html, "disabled")
	assert.NotContains(t, html, `role="status"`)
	assert.NotContains(t, html, `name="phone_os"`)
}

func TestLandingPage_LoadingDisablesEveryControl(t *testing.T) {
	html := render(t, LandingData{
		Site: DefaultSite(),
		Form: WaitlistForm{
			CollectPlatform: true,
			State:           waitlist.FormState{Email: "a@x.com", Platform: waitlist.PlatformIOS, Status: waitlist.StatusLoading},
		},
		Year: 2026,
	})

	// email input, two platform radios, submit button
	assert.Equal(t, 4, strings.Count(html, " disabled"))
	assert.Contains(t, html, "Joining...</button>")
	assert.NotContains(t, html, `role="status"`)
}

func TestLandingPage_StatusMessages(t *testing.T) {
	success := render(t, LandingData{
		Site: DefaultSite(),
		Form: WaitlistForm{State: waitlist.FormState{Status: waitlist.StatusSuccess, Message: waitlist.MessageSuccess}},
	})
	assert.Contains(t, success, `class="status status--success"`)
	assert.Contains(t, success, "on the list")

	failure := render(t, LandingData{
		Site: DefaultSite(),
		Form: WaitlistForm{State: waitlist.FormState{Email: "dup@x.com", Status: waitlist.StatusError, Message: waitlist.MessageDuplicate}},
	})
	assert.Contains(t, failure, `class="status status--error"`)
	assert.Contains(t, failure, "This email is already on the waitlist!")
	assert.Contains(t, failure, `value="dup@x.com"`)
}

func TestLandingPage_StatusWithoutMessageDrawsNoBox(t *testing.T) {
	html := render(t, LandingData{
		Site: DefaultSite(),
		Form: WaitlistForm{State: waitlist.FormState{Status: waitlist.StatusSuccess}},
	})

	assert.NotContains(t, html, `role="status"`)
	assert.Contains(t, html, `name="status" value="success"`)
}

func TestLandingPage_PlatformPickerKeepsSelection(t *testing.T) {
	html := render(t, LandingData{
		Site: DefaultSite(),
		Form: WaitlistForm{
			CollectPlatform: true,
			State:           waitlist.FormState{Email: "a@x.com", Platform: waitlist.PlatformAndroid, Status: waitlist.StatusError},
		},
	})

	assert.Contains(t, html, "iPhone")
	assert.Contains(t, html, "Android")
	assert.Contains(t, html, `id="platform-android" value="android" checked`)
	assert.NotContains(t, html, `id="platform-ios" value="ios" checked`)
}
