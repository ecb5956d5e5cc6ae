package config

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/akeren/vannie-landing/config/router"
	"github.com/akeren/vannie-landing/internal/log"
	"github.com/akeren/vannie-landing/internal/models"
	"github.com/akeren/vannie-landing/pkg/supabase"
	"gorm.io/gorm"
)

type ApplicationConfig struct {
	DB              *gorm.DB
	RouterService   *router.RouterService
	Logger          *log.Logger
	Cache           Cache
	Supabase        *supabase.Client
	SupabaseTable   string
	Config          *AppConfig
	TracingShutdown func(context.Context) error
}

type AppConfig struct {
	RequestTimeout  time.Duration
	CollectPlatform bool
	InFlightTTL     time.Duration
	SiteName        string
}

func NewAppConfig() *AppConfig {
	config := &AppConfig{
		RequestTimeout:  GetDurationFromEnvironmentVariable("REQUEST_TIMEOUT", 30*time.Second),
		CollectPlatform: GetBoolFromEnvironmentVariable("WAITLIST_COLLECT_PLATFORM", false),
		InFlightTTL:     GetDurationFromEnvironmentVariable("WAITLIST_INFLIGHT_TTL", 30*time.Second),
		SiteName:        "Vannie",
	}

	if name := strings.TrimSpace(os.Getenv("SITE_NAME")); name != "" {
		config.SiteName = name
	}

	return config
}

func (ac *ApplicationConfig) Cleanup() {
	if ac.TracingShutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := ac.TracingShutdown(ctx); err != nil {
			ac.Logger.Error("Failed to shutdown tracer provider", "error", err)
		}
	}

	if ac.DB != nil {
		CloseDatabase(ac.DB, ac.Logger)
	}

	if ac.RouterService != nil {
		ac.RouterService.Cleanup()
	}

	if ac.Cache != nil {
		CloseCache(ac.Cache, ac.Logger)
	}

	ac.Logger.Info("Application cleanup completed")
}

func LoadApplicationConfiguration(logger *log.Logger, autoMigrate bool) (*ApplicationConfig, error) {
	InitializeEnvFile(logger)

	if autoMigrate {
		appEnv := GetAppEnv()
		if err := ValidateAutoMigrateAllowed(appEnv); err != nil {
			return nil, err
		}
		if appEnv == "" {
			logger.Warn("APP_ENV not set; allowing --auto-migrate as development")
		}
	}

	tracingShutdown, err := SetupTracing(logger)
	if err != nil {
		return nil, err
	}

	var db *gorm.DB
	if IsDatabaseConfigured() {
		db, err = NewDatabase(logger, nil)
		if err != nil {
			return nil, err
		}
	} else {
		logger.Info("Database is not configured; direct Postgres store disabled")
	}

	if autoMigrate {
		if db == nil {
			return nil, fmt.Errorf("--auto-migrate requires APP_DATABASE_URL or POSTGRES_HOST")
		}
		if err := AutoMigrate(logger, db, models.ModelRegistry...); err != nil {
			return nil, err
		}
	}

	appConfig := NewAppConfig()
	cache := NewCacheConfig().NewCacheOrNil(logger)

	storeConfig := NewStoreConfig()
	supabaseClient := storeConfig.NewClientOrNil(logger)

	routerService := router.CreateRouterService(logger, &router.RouterConfig{
		RequestTimeout: appConfig.RequestTimeout,
	})

	logger.Info("Application configuration loaded successfully",
		"collect_platform", appConfig.CollectPlatform,
		"supabase", supabaseClient != nil,
		"database", db != nil,
		"cache", cache != nil,
	)

	return &ApplicationConfig{
		DB:              db,
		RouterService:   routerService,
		Logger:          logger,
		Cache:           cache,
		Supabase:        supabaseClient,
		SupabaseTable:   storeConfig.Table,
		Config:          appConfig,
		TracingShutdown: tracingShutdown,
	}, nil
}
