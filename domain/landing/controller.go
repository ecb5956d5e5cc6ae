package landing

import (
	"net/http"
	"time"

	"github.com/akeren/vannie-landing/config/router"
	"github.com/akeren/vannie-landing/domain/waitlist"
	"github.com/akeren/vannie-landing/internal/views"
	"github.com/google/uuid"
)

type LandingController struct {
	service waitlist.WaitlistService
	site    views.Site
	now     func() time.Time
}

// NewLandingController serves the landing page on "/" and accepts the
// plain HTML form post on "/waitlist".
func NewLandingController(service waitlist.WaitlistService, site views.Site, now func() time.Time) *router.RESTController {
	if now == nil {
		now = time.Now
	}
	waitlist.RegisterValidators()

	ctrl := &LandingController{
		service: service,
		site:    site,
		now:     now,
	}

	return router.NewRESTController(
		"LandingController",
		"/",
		func(rs *router.RouterService, c *router.RESTController) {
			rs.AddGetPageHandler(c, "", ctrl.showLandingPage)
			rs.AddPostPageHandler(c, "waitlist", ctrl.submitWaitlistForm)
		},
	)
}

func (ctrl *LandingController) showLandingPage(ctx *router.RequestContext) *router.PageResult {
	return ctrl.page(http.StatusOK, uuid.NewString(), waitlist.FormState{Status: waitlist.StatusIdle})
}

func (ctrl *LandingController) submitWaitlistForm(ctx *router.RequestContext) *router.PageResult {
	logger := router.GetLogger(ctx)

	var req waitlist.SubmitWaitlistRequest

	if err := ctx.ShouldBind(&req); err != nil {
		logger.Warn("Failed to bind waitlist form", "error", err)

		state := waitlist.ToFormState(&req)
		state.Status = waitlist.StatusError
		state.Message = waitlist.MessageGeneric

		return ctrl.page(http.StatusBadRequest, formIDOrNew(req.FormID), state)
	}

	state, outcome := ctrl.service.Submit(ctx.Request.Context(), req.FormID, waitlist.ToFormState(&req))

	formID := req.FormID
	if outcome == waitlist.OutcomeInserted {
		formID = ""
	}

	return ctrl.page(http.StatusOK, formIDOrNew(formID), state)
}

func (ctrl *LandingController) page(status int, formID string, state waitlist.FormState) *router.PageResult {
	return &router.PageResult{
		StatusCode: status,
		Page: views.LandingPage(views.LandingData{
			Site: ctrl.site,
			Form: views.WaitlistForm{
				FormID:          formID,
				State:           state,
				CollectPlatform: ctrl.service.CollectsPlatform(),
			},
			Year: ctrl.now().Year(),
		}),
	}
}

func formIDOrNew(formID string) string {
	if formID == "" {
		return uuid.NewString()
	}
	return formID
}
