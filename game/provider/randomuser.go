package provider

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/buger/jsonparser"
	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"

	"github.com/wricardo/mcp-training/carsimulator/game/engine"
)

const (
	// DefaultEndpoint is the public random profile service
	DefaultEndpoint = "https://randomuser.me/api/"

	// DefaultTimeout bounds the whole lookup
	DefaultTimeout = 5 * time.Second

	maxResponseBytes = 1 << 20
)

// RandomUserProvider fetches a random driver profile over HTTP and falls back
// to a local identity on any failure
type RandomUserProvider struct {
	endpoint string
	timeout  time.Duration
	client   *http.Client
	fallback Fallback
	logger   *log.Logger
	validate *validator.Validate
}

// Option configures a RandomUserProvider
type Option func(*RandomUserProvider)

// WithEndpoint overrides the profile URL
func WithEndpoint(endpoint string) Option {
	return func(p *RandomUserProvider) {
		p.endpoint = endpoint
	}
}

// WithTimeout overrides the lookup timeout
func WithTimeout(timeout time.Duration) Option {
	return func(p *RandomUserProvider) {
		if timeout > 0 {
			p.timeout = timeout
		}
	}
}

// WithHTTPClient sets the client used for the lookup
func WithHTTPClient(client *http.Client) Option {
	return func(p *RandomUserProvider) {
		if client != nil {
			p.client = client
		}
	}
}

// WithFallback sets the strategy used when the lookup fails
func WithFallback(fallback Fallback) Option {
	return func(p *RandomUserProvider) {
		if fallback != nil {
			p.fallback = fallback
		}
	}
}

// WithLogger sets the logger for lookup failures
func WithLogger(logger *log.Logger) Option {
	return func(p *RandomUserProvider) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewRandomUserProvider creates a provider for DefaultEndpoint with a 5s
// timeout and the static fallback
func NewRandomUserProvider(opts ...Option) *RandomUserProvider {
	p := &RandomUserProvider{
		endpoint: DefaultEndpoint,
		timeout:  DefaultTimeout,
		client:   http.DefaultClient,
		fallback: StaticFallback{},
		logger:   log.Default(),
		validate: validator.New(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// GetRandomDriver returns a remote driver, or a fallback driver if the lookup
// fails for any reason
func (p *RandomUserProvider) GetRandomDriver(ctx context.Context) *engine.Driver {
	driver, err := p.FetchDriver(ctx)
	if err != nil {
		p.logger.Warn("driver lookup failed, using fallback", "endpoint", p.endpoint, "err", err)
		return p.fallback.Driver()
	}
	p.logger.Debug("driver fetched", "name", driver.Name)
	return driver
}

// FetchDriver performs the lookup without falling back. Every error wraps
// ErrProviderUnavailable.
func (p *RandomUserProvider) FetchDriver(ctx context.Context) (*engine.Driver, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProviderUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrProviderUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %w", ErrProviderUnavailable, err)
	}

	return p.parseDriver(body)
}

// ParseDriver extracts a driver from a randomuser.me response body
func ParseDriver(data []byte) (*engine.Driver, error) {
	return NewRandomUserProvider().parseDriver(data)
}

func (p *RandomUserProvider) parseDriver(data []byte) (*engine.Driver, error) {
	first, err := jsonparser.GetString(data, "results", "[0]", "name", "first")
	if err != nil {
		return nil, fmt.Errorf("%w: missing first name: %w", ErrProviderUnavailable, err)
	}
	last, err := jsonparser.GetString(data, "results", "[0]", "name", "last")
	if err != nil {
		return nil, fmt.Errorf("%w: missing last name: %w", ErrProviderUnavailable, err)
	}
	email, err := jsonparser.GetString(data, "results", "[0]", "email")
	if err != nil {
		return nil, fmt.Errorf("%w: missing email: %w", ErrProviderUnavailable, err)
	}

	name := strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
	driver := engine.NewDriver(name, strings.TrimSpace(email))

	if err := p.validate.Struct(driver); err != nil {
		return nil, fmt.Errorf("%w: invalid profile: %w", ErrProviderUnavailable, err)
	}
	return driver, nil
}
