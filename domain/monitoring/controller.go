package monitoring

import (
	"context"
	"time"

	"github.com/akeren/vannie-landing/config/router"
	"github.com/akeren/vannie-landing/internal/log"
	"gorm.io/gorm"
)

const healthCheckTimeout = 3 * time.Second

// Pinger is satisfied by the cache and by the waitlist store.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthStatus struct {
	Database int `json:"database"` // 1 = healthy, 0 = unhealthy/not configured
	Cache    int `json:"cache"`    // 1 = healthy, 0 = unhealthy/not configured
	Store    int `json:"store"`    // 1 = waitlist store reachable, 0 = unreachable/not configured
	Uptime   int `json:"uptime"`   // uptime in seconds
}

type MonitoringController struct {
	db        *gorm.DB
	logger    *log.Logger
	cache     Pinger
	store     Pinger
	startTime time.Time
}

func NewMonitoringController(db *gorm.DB, logger *log.Logger, cache Pinger, store Pinger) *router.RESTController {
	ctrl := &MonitoringController{
		db:        db,
		logger:    logger,
		cache:     cache,
		store:     store,
		startTime: time.Now(),
	}

	return router.NewRESTController(
		"MonitoringController",
		"/",
		func(routerService *router.RouterService, controller *router.RESTController) {
			routerService.AddGetHandler(controller, "health", func(c *router.RequestContext) *router.ServiceResult {
				return ctrl.healthCheck(routerService, c)
			})
		},
	)
}

func (ctrl *MonitoringController) healthCheck(
	routerService *router.RouterService,
	c *router.RequestContext,
) *router.ServiceResult {
	logger := routerService.GetLogger(c)
	logger.Info("Health check endpoint called")

	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	healthStatus := ctrl.performHealthChecks(ctx, logger)

	return router.OKResult(healthStatus, "vannie-landing health check completed")
}

func (ctrl *MonitoringController) performHealthChecks(ctx context.Context, logger *log.Logger) HealthStatus {
	status := HealthStatus{
		Uptime: int(time.Since(ctrl.startTime).Seconds()),
	}

	checkDatabaseConnectivity(ctx, ctrl, &status, logger)
	status.Cache = checkPinger(ctx, "Cache", ctrl.cache, logger)
	status.Store = checkPinger(ctx, "Waitlist store", ctrl.store, logger)

	return status
}

func checkPinger(ctx context.Context, name string, p Pinger, logger *log.Logger) int {
	if p == nil {
		logger.Info(name + " not configured, health check skipped")
		return 0
	}

	if err := p.Ping(ctx); err != nil {
		logger.Error(name+" health check failed", "error", err)
		return 0
	}

	logger.Info(name + " health check passed")
	return 1
}

func checkDatabaseConnectivity(ctx context.Context, ctrl *MonitoringController, status *HealthStatus, logger *log.Logger) {
	if ctrl.db == nil {
		status.Database = 0
		logger.Info("Database not configured, database health check skipped")
		return
	}

	if ctrl.checkDatabase(ctx) {
		status.Database = 1
		logger.Info("Database health check passed")
	} else {
		status.Database = 0
		logger.Error("Database health check failed")
	}
}

func (ctrl *MonitoringController) checkDatabase(ctx context.Context) bool {
	sqlDB, err := ctrl.db.DB()
	if err != nil {
		return false
	}

	return sqlDB.PingContext(ctx) == nil
}
