package domain

import (
	"time"

	"github.com/akeren/vannie-landing/config"
	"github.com/akeren/vannie-landing/domain/landing"
	"github.com/akeren/vannie-landing/domain/monitoring"
	"github.com/akeren/vannie-landing/domain/waitlist"
	"github.com/akeren/vannie-landing/internal/assets"
	"github.com/akeren/vannie-landing/internal/views"
)

func SetupCoreDomain(appConfig *config.ApplicationConfig) {
	logger := appConfig.Logger
	repository := newWaitlistRepository(appConfig)

	waitlistConfig := &waitlist.ServiceConfig{
		Guard:   newInFlightGuard(appConfig),
		Metrics: appConfig.RouterService.MetricsRegisterer(),
	}
	site := views.DefaultSite()
	if appConfig.Config != nil {
		waitlistConfig.CollectPlatform = appConfig.Config.CollectPlatform
		site.Name = appConfig.Config.SiteName
	}

	waitlistFactory := waitlist.NewWaitlistServiceFactory(logger, repository, waitlistConfig)

	var store monitoring.Pinger
	if repository != nil {
		store = repository
	}
	var cache monitoring.Pinger
	if appConfig.Cache != nil {
		cache = appConfig.Cache
	}

	appConfig.RouterService.MountController(monitoring.NewMonitoringControllerFactory(appConfig.DB, logger, cache, store).CreateController())
	appConfig.RouterService.MountController(waitlistFactory.CreateController())
	appConfig.RouterService.MountController(landing.NewLandingControllerFactory(waitlistFactory, site).CreateController())
	appConfig.RouterService.MountStatic("/static", assets.Static())
}

// newWaitlistRepository prefers the hosted Supabase table, then a direct
// database. It returns nil when neither is configured.
func newWaitlistRepository(appConfig *config.ApplicationConfig) waitlist.WaitlistRepository {
	switch {
	case appConfig.Supabase != nil:
		appConfig.Logger.Info("Waitlist store: Supabase", "table", appConfig.SupabaseTable)
		return waitlist.NewSupabaseRepository(appConfig.Supabase, appConfig.SupabaseTable)
	case appConfig.DB != nil:
		appConfig.Logger.Info("Waitlist store: database")
		return waitlist.NewWaitlistRepository(appConfig.DB)
	default:
		appConfig.Logger.Warn("Waitlist store is not configured; submissions will fail")
		return nil
	}
}

func newInFlightGuard(appConfig *config.ApplicationConfig) waitlist.InFlightGuard {
	client := config.GetRedisClient(appConfig.Cache)
	if client == nil {
		return waitlist.NewMemoryGuard()
	}

	var ttl time.Duration
	if appConfig.Config != nil {
		ttl = appConfig.Config.InFlightTTL
	}
	return waitlist.NewRedisGuard(client, ttl, appConfig.Logger)
}
