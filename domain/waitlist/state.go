package waitlist

// Status is the four-value UI flag of the waitlist form.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

const (
	MessageSuccess         = "You're on the list! We'll be in touch soon."
	MessageDuplicate       = "This email is already on the waitlist!"
	MessagePlatformMissing = "Please select your device (iPhone or Android)"
	MessageGeneric         = "Something went wrong. Please try again."
)

// ParseStatus maps a submitted status back onto the enum. Unknown values are idle.
func ParseStatus(raw string) Status {
	switch Status(raw) {
	case StatusLoading, StatusSuccess, StatusError:
		return Status(raw)
	default:
		return StatusIdle
	}
}

// ParseMessage accepts a submitted message only when it is one of the fixed
// messages the given status can carry. Anything else is dropped.
func ParseMessage(status Status, raw string) string {
	switch status {
	case StatusSuccess:
		if raw == MessageSuccess {
			return raw
		}
	case StatusError:
		switch raw {
		case MessageDuplicate, MessagePlatformMissing, MessageGeneric:
			return raw
		}
	}
	return ""
}

// ShowsMessage reports whether the status carries a message for the visitor.
func (s Status) ShowsMessage() bool {
	return s == StatusSuccess || s == StatusError
}

// FormState is everything the waitlist form remembers between renders.
type FormState struct {
	Email    string
	Platform Platform
	Status   Status
	Message  string
}

// HasMessage reports whether the state has a message worth rendering.
func (f FormState) HasMessage() bool {
	return f.Status.ShowsMessage() && f.Message != ""
}

// Outcome is what happened to a single submit attempt.
type Outcome int

const (
	// OutcomeSkipped means the email was empty and nothing happened.
	OutcomeSkipped Outcome = iota
	// OutcomeInFlight means the same form already has a submission running.
	OutcomeInFlight
	OutcomePlatformMissing
	OutcomeInserted
	OutcomeDuplicate
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSkipped:
		return "skipped"
	case OutcomeInFlight:
		return "in_flight"
	case OutcomePlatformMissing:
		return "platform_missing"
	case OutcomeInserted:
		return "inserted"
	case OutcomeDuplicate:
		return "duplicate"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Begin moves the form into loading. Inputs are left as they are.
func Begin(state FormState) FormState {
	state.Status = StatusLoading
	state.Message = ""
	return state
}

// Transition returns the state that follows an outcome. It is pure: the same
// state and outcome always produce the same result.
func Transition(state FormState, outcome Outcome) FormState {
	switch outcome {
	case OutcomeInserted:
		return FormState{
			Status:  StatusSuccess,
			Message: MessageSuccess,
		}
	case OutcomeDuplicate:
		state.Status = StatusError
		state.Message = MessageDuplicate
	case OutcomePlatformMissing:
		state.Status = StatusError
		state.Message = MessagePlatformMissing
	case OutcomeFailed:
		state.Status = StatusError
		state.Message = MessageGeneric
	case OutcomeInFlight:
		state.Status = StatusLoading
		state.Message = ""
	}

	return state
}
