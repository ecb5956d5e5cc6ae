package waitlist

import (
	"github.com/akeren/vannie-landing/config/router"
	"github.com/akeren/vannie-landing/internal/log"
)

type WaitlistServiceFactory interface {
	CreateService() WaitlistService
	CreateController() *router.RESTController
}

type DefaultWaitlistServiceFactory struct {
	logger     *log.Logger
	repository WaitlistRepository
	config     *ServiceConfig

	service WaitlistService
}

// NewWaitlistServiceFactory builds one service lazily and shares it between
// the JSON controller and any page that renders the form.
func NewWaitlistServiceFactory(logger *log.Logger, repository WaitlistRepository, config *ServiceConfig) WaitlistServiceFactory {
	return &DefaultWaitlistServiceFactory{
		logger:     logger,
		repository: repository,
		config:     config,
	}
}

func (f *DefaultWaitlistServiceFactory) CreateService() WaitlistService {
	if f.service == nil {
		f.service = NewWaitlistService(f.logger, f.repository, f.config)
	}
	return f.service
}

func (f *DefaultWaitlistServiceFactory) CreateController() *router.RESTController {
	return NewWaitlistController(f.CreateService())
}
