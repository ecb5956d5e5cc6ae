// Package supabase is a minimal PostgREST client for inserting rows into a
// Supabase project with the anon key.
package supabase

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const restPrefix = "/rest/v1/"

type Config struct {
	URL     string
	AnonKey string
	Timeout time.Duration
}

func (c *Config) IsConfigured() bool {
	return c != nil && strings.TrimSpace(c.URL) != "" && strings.TrimSpace(c.AnonKey) != ""
}

// APIError is the error body PostgREST returns for a rejected request.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
	Details    string `json:"details"`
	Hint       string `json:"hint"`
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("supabase: %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("supabase: %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	rest *resty.Client
}

func NewClient(cfg *Config) (*Client, error) {
	if !cfg.IsConfigured() {
		return nil, fmt.Errorf("supabase: url and anon key are required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	rest := resty.New().
		SetBaseURL(strings.TrimRight(strings.TrimSpace(cfg.URL), "/")).
		SetTimeout(timeout).
		SetHeader("apikey", cfg.AnonKey).
		SetHeader("Authorization", "Bearer "+cfg.AnonKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{rest: rest}, nil
}

// Insert posts rows to the given table and asks PostgREST not to echo them back.
// A rejected insert is returned as *APIError.
func (c *Client) Insert(ctx context.Context, table string, rows any) error {
	var apiErr APIError

	resp, err := c.rest.R().
		SetContext(ctx).
		SetHeader("Prefer", "return=minimal").
		SetBody(rows).
		SetError(&apiErr).
		Post(restPrefix + table)
	if err != nil {
		return fmt.Errorf("supabase: insert into %s: %w", table, err)
	}

	if resp.IsError() {
		apiErr.StatusCode = resp.StatusCode()
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode())
		}
		return &apiErr
	}

	return nil
}

// Ping checks that the REST endpoint answers with the configured key.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.rest.R().SetContext(ctx).Get(restPrefix)
	if err != nil {
		return fmt.Errorf("supabase: ping: %w", err)
	}
	if resp.StatusCode() >= http.StatusInternalServerError || resp.StatusCode() == http.StatusUnauthorized {
		return &APIError{StatusCode: resp.StatusCode(), Message: http.StatusText(resp.StatusCode())}
	}
	return nil
}
