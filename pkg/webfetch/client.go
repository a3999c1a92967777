package webfetch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Prometheus metrics for fetch operations.
var (
	fetchRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hydrate_fetch_requests_total",
		Help: "Total HTTP fetches by entity kind and status",
	}, []string{"kind", "status"})

	fetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "hydrate_fetch_duration_seconds",
		Help:    "HTTP fetch duration in seconds by entity kind",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
	}, []string{"kind"})

	fetchErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hydrate_fetch_errors_total",
		Help: "Total fetch errors by class",
	}, []string{"class"})
)

// Client fetches documents and assets from a JSON document API.
type Client struct {
	httpClient *http.Client
	config     Config
	logger     zerolog.Logger
}

// Config holds the client configuration.
type Config struct {
	// BaseURL is the origin serving /documents/{id} and /assets/{id}.
	BaseURL string

	// User-Agent header sent with every fetch.
	// Format: "AppName/Version (contact@example.com)"
	UserAgent string

	// Timeout per HTTP request.
	Timeout time.Duration
}

// DefaultConfig returns a safe default configuration.
func DefaultConfig(baseURL, userAgent string) Config {
	return Config{
		BaseURL:   baseURL,
		UserAgent: userAgent,
		Timeout:   30 * time.Second,
	}
}

// New creates a new document API client.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base url is required")
	}

	if cfg.UserAgent == "" {
		return nil, fmt.Errorf("user-agent is required")
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	logger := log.With().Str("component", "webfetch-client").Logger()

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		config: cfg,
		logger: logger,
	}, nil
}

// getJSON performs a GET request and decodes the JSON response into out.
// kind labels metrics and logs ("document", "asset").
func (c *Client) getJSON(ctx context.Context, path, kind string, out any) error {
	startTime := time.Now()
	defer func() {
		fetchDuration.WithLabelValues(kind).Observe(time.Since(startTime).Seconds())
	}()

	url := strings.TrimSuffix(c.config.BaseURL, "/") + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.config.UserAgent)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug().
		Str("kind", kind).
		Str("path", path).
		Msg("Executing fetch")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("path", path).Msg("HTTP request failed")
		fetchErrorsTotal.WithLabelValues(string(ErrorClassNetwork)).Inc()
		fetchRequestsTotal.WithLabelValues(kind, "network_error").Inc()
		return &FetchError{
			ErrorClass: ErrorClassNetwork,
			Message:    fmt.Sprintf("GET %s", path),
			Err:        err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errClass := classifyStatus(resp.StatusCode)
		fetchErrorsTotal.WithLabelValues(string(errClass)).Inc()
		fetchRequestsTotal.WithLabelValues(kind, fmt.Sprintf("%d", resp.StatusCode)).Inc()

		c.logger.Warn().
			Str("path", path).
			Int("status_code", resp.StatusCode).
			Str("error_class", string(errClass)).
			Msg("Fetch error")

		return &FetchError{
			StatusCode: resp.StatusCode,
			ErrorClass: errClass,
			Message:    resp.Status,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		fetchErrorsTotal.WithLabelValues(string(ErrorClassServer)).Inc()
		fetchRequestsTotal.WithLabelValues(kind, "decode_error").Inc()
		return &FetchError{
			StatusCode: resp.StatusCode,
			ErrorClass: ErrorClassServer,
			Message:    fmt.Sprintf("decode %s response", kind),
			Err:        err,
		}
	}

	fetchRequestsTotal.WithLabelValues(kind, fmt.Sprintf("%d", resp.StatusCode)).Inc()
	return nil
}

// classifyStatus categorizes an HTTP status code for observability and retry.
func classifyStatus(statusCode int) ErrorClass {
	switch {
	case statusCode >= 400 && statusCode < 500:
		return ErrorClassClient
	case statusCode >= 500:
		return ErrorClassServer
	default:
		return ""
	}
}

// SetHTTPClient sets a custom HTTP client (for testing).
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}
