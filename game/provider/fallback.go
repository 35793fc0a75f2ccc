package provider

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/wricardo/mcp-training/carsimulator/game/engine"
)

// Fallback strategy names accepted by NewFallback
const (
	FallbackStatic = "static"
	FallbackPool   = "pool"
)

// Static fallback identity
const (
	StaticDriverName  = "Test Driver"
	StaticDriverEmail = "test@example.com"
)

// Fallback produces a usable driver when the remote provider cannot
type Fallback interface {
	Driver() *engine.Driver
}

// NewFallback returns the strategy registered under kind. An empty kind is static.
func NewFallback(kind string) (Fallback, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", FallbackStatic:
		return StaticFallback{}, nil
	case FallbackPool:
		return NewPoolFallback(nil), nil
	default:
		return nil, fmt.Errorf("unknown fallback strategy %q (want %s or %s)", kind, FallbackStatic, FallbackPool)
	}
}

// StaticFallback always returns the same test identity
type StaticFallback struct{}

// Driver returns a fresh copy of the static identity
func (StaticFallback) Driver() *engine.Driver {
	return engine.NewDriver(StaticDriverName, StaticDriverEmail)
}

// PoolFallback picks a random first and last name from the built-in lists
type PoolFallback struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewPoolFallback creates a pool fallback. Pass a seeded rng for repeatable picks.
func NewPoolFallback(rng *rand.Rand) *PoolFallback {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &PoolFallback{rng: rng}
}

// Driver returns a randomly named driver with an example.com address
func (p *PoolFallback) Driver() *engine.Driver {
	p.mu.Lock()
	first := FirstNames[p.rng.IntN(len(FirstNames))]
	last := LastNames[p.rng.IntN(len(LastNames))]
	p.mu.Unlock()

	email := strings.ToLower(first + "." + last + "@example.com")
	return engine.NewDriver(first+" "+last, email)
}
