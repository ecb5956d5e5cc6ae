package config

import (
	"os"
	"time"

	"github.com/akeren/vannie-landing/internal/log"
	"github.com/akeren/vannie-landing/pkg/constants"
	"github.com/akeren/vannie-landing/pkg/supabase"
	"github.com/akeren/vannie-landing/pkg/utils"
)

// StoreConfig describes the hosted Supabase project that receives waitlist rows.
type StoreConfig struct {
	URL     string
	AnonKey string
	Table   string
	Timeout time.Duration
}

func NewStoreConfig() *StoreConfig {
	cfg := &StoreConfig{
		URL:     sanitizeEnv(os.Getenv("SUPABASE_URL")),
		AnonKey: sanitizeEnv(os.Getenv("SUPABASE_ANON_KEY")),
		Table:   utils.GetEnvTrimmedOrDefault("SUPABASE_TABLE", constants.WaitlistTable),
		Timeout: GetDurationFromEnvironmentVariable("SUPABASE_TIMEOUT", 10*time.Second),
	}

	return cfg
}

func (sc *StoreConfig) IsConfigured() bool {
	return sc.URL != "" && sc.AnonKey != ""
}

// NewClientOrNil returns nil when either the URL or the anon key is missing.
func (sc *StoreConfig) NewClientOrNil(logger *log.Logger) *supabase.Client {
	if !sc.IsConfigured() {
		logger.Info("Supabase is not configured; hosted waitlist store disabled")
		return nil
	}

	client, err := supabase.NewClient(&supabase.Config{
		URL:     sc.URL,
		AnonKey: sc.AnonKey,
		Timeout: sc.Timeout,
	})
	if err != nil {
		logger.Error("Failed to create Supabase client", "error", err)
		return nil
	}

	logger.Info("Supabase client configured", "table", sc.Table)
	return client
}
