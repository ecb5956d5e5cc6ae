package landing

import (
	"time"

	"github.com/akeren/vannie-landing/config/router"
	"github.com/akeren/vannie-landing/domain/waitlist"
	"github.com/akeren/vannie-landing/internal/views"
)

type LandingControllerFactory interface {
	CreateController() *router.RESTController
}

type DefaultLandingControllerFactory struct {
	waitlistFactory waitlist.WaitlistServiceFactory
	site            views.Site
}

// NewLandingControllerFactory shares the waitlist service with the JSON controller.
func NewLandingControllerFactory(waitlistFactory waitlist.WaitlistServiceFactory, site views.Site) LandingControllerFactory {
	return &DefaultLandingControllerFactory{
		waitlistFactory: waitlistFactory,
		site:            site,
	}
}

func (f *DefaultLandingControllerFactory) CreateController() *router.RESTController {
	return NewLandingController(f.waitlistFactory.CreateService(), f.site, time.Now)
}
