package provider

import (
	"context"
	"errors"

	"github.com/wricardo/mcp-training/carsimulator/game/engine"
)

// ErrProviderUnavailable wraps every failure to obtain a remote driver
var ErrProviderUnavailable = errors.New("driver provider unavailable")

// DriverProvider supplies the driver for a new game. Implementations never
// fail: any error is absorbed and replaced with a fallback driver.
type DriverProvider interface {
	GetRandomDriver(ctx context.Context) *engine.Driver
}

// FallbackProvider hands out drivers from a Fallback without any network call
type FallbackProvider struct {
	fallback Fallback
}

// NewFallbackProvider creates an offline provider. A nil fallback means StaticFallback.
func NewFallbackProvider(fallback Fallback) *FallbackProvider {
	if fallback == nil {
		fallback = StaticFallback{}
	}
	return &FallbackProvider{fallback: fallback}
}

// GetRandomDriver returns the next fallback driver
func (p *FallbackProvider) GetRandomDriver(ctx context.Context) *engine.Driver {
	return p.fallback.Driver()
}
