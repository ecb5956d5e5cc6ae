package waitlist

import (
	"net/http"

	"github.com/akeren/vannie-landing/config/router"
	apperrors "github.com/akeren/vannie-landing/pkg/errors"
)

func NewWaitlistController(service WaitlistService) *router.RESTController {
	RegisterValidators()

	return router.NewVersionedRESTController(
		"WaitlistController",
		"v1",
		"/waitlist",
		func(rs *router.RouterService, c *router.RESTController) {
			rs.AddPostHandler(c, "", submitWaitlistEntryHandler(service))
		},
	)
}

func submitWaitlistEntryHandler(service WaitlistService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		var req SubmitWaitlistRequest

		if err := ctx.ShouldBindJSON(&req); err != nil {
			logger.Error("Failed to bind request", "error", err)

			validationErrors := apperrors.FormatValidationErrors(err, &req)
			if len(validationErrors) > 0 {
				return router.BadRequestResult("Invalid request payload", validationErrors)
			}

			return router.BadRequestResult("Invalid request body", nil)
		}

		state, outcome := service.Submit(ctx.Request.Context(), req.FormID, ToFormState(&req))

		return resultForOutcome(state, outcome)
	}
}

func resultForOutcome(state FormState, outcome Outcome) *router.ServiceResult {
	response := ToFormStateResponse(state)

	switch outcome {
	case OutcomeInserted:
		return router.CreatedResult(response, "Waitlist entry")
	case OutcomeDuplicate:
		return router.ErrorResult(http.StatusConflict, state.Message, response)
	case OutcomePlatformMissing:
		return router.ErrorResult(http.StatusBadRequest, state.Message, response)
	case OutcomeInFlight:
		return router.ErrorResult(http.StatusAccepted, "Submission already in progress", response)
	case OutcomeFailed:
		return router.ErrorResult(http.StatusInternalServerError, state.Message, response)
	default:
		return router.OKResult(response, "Nothing to submit")
	}
}
