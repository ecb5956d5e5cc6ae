package waitlist

import (
	"strings"
	"time"

	"github.com/akeren/vannie-landing/internal/models"
	"github.com/akeren/vannie-landing/pkg/constants"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SubmitWaitlistRequest is bound from both the JSON API and the HTML form.
// Email format is only checked when non-blank; a blank email is a silent no-op.
// Binding requires RegisterValidators.
type SubmitWaitlistRequest struct {
	Email   string `json:"email" form:"email" binding:"blank_or_email,max=255"`
	PhoneOS string `json:"phone_os" form:"phone_os" binding:"omitempty,oneof=ios android"`
	FormID  string `json:"form_id" form:"form_id" binding:"omitempty,max=64"`
	Status  string `json:"status" form:"status" binding:"omitempty,oneof=idle loading success error"`
	Message string `json:"message" form:"message" binding:"omitempty,max=255"`
}

type FormStateResponse struct {
	Email   string `json:"email"`
	PhoneOS string `json:"phone_os,omitempty"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ========================================
// Mappers
// ========================================

func ToFormState(req *SubmitWaitlistRequest) FormState {
	if req == nil {
		return FormState{Status: StatusIdle}
	}
	status := ParseStatus(req.Status)
	return FormState{
		Email:    req.Email,
		Platform: ParsePlatform(req.PhoneOS),
		Status:   status,
		Message:  ParseMessage(status, req.Message),
	}
}

func ToFormStateResponse(state FormState) FormStateResponse {
	return FormStateResponse{
		Email:   state.Email,
		PhoneOS: string(state.Platform),
		Status:  string(state.Status),
		Message: state.Message,
	}
}

func ToWaitlistEntryModel(state FormState, createdAt time.Time) *models.WaitlistEntry {
	return &models.WaitlistEntry{
		Email:     NormalizeEmail(state.Email),
		PhoneOS:   state.Platform.column(),
		CreatedAt: createdAt.UTC(),
	}
}

// supabaseRow is the PostgREST insert payload; phone_os is sent as null when absent.
type supabaseRow struct {
	Email     string  `json:"email"`
	PhoneOS   *string `json:"phone_os"`
	CreatedAt string  `json:"created_at"`
}

func toSupabaseRow(entry *models.WaitlistEntry) supabaseRow {
	return supabaseRow{
		Email:     entry.Email,
		PhoneOS:   entry.PhoneOS,
		CreatedAt: entry.CreatedAt.Format(constants.RFC3339DateTimeFormat),
	}
}

// NormalizeEmail trims and lower-cases an address so the unique constraint
// sees one spelling per mailbox.
func NormalizeEmail(email string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(email))
}
