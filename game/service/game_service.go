package service

import (
	"context"
	"errors"

	"github.com/wricardo/mcp-training/carsimulator/game/engine"
)

var (
	ErrAlreadyStarted = errors.New("game already started")
	ErrNotStarted     = errors.New("game not started")
	ErrNoDriver       = errors.New("provider returned no driver")
)

// GameService defines all game-related operations
type GameService interface {
	// Lifecycle
	Start(ctx context.Context) (*StartInfo, error)

	// Game Operations
	Execute(ctx context.Context, input string) (*ActionResult, error)
	Choose(ctx context.Context, choice engine.MenuChoice) (*ActionResult, error)

	// Game State
	GetState(ctx context.Context) (*engine.GameState, error)
	GetStatus(ctx context.Context) (*StatusInfo, error)
	GetActionHistory(ctx context.Context, opts HistoryOptions) (*HistoryResponse, error)
	GetMenu(ctx context.Context) []engine.MenuOption
}

// Broadcaster receives a snapshot of the state after every change
type Broadcaster interface {
	BroadcastState(state *engine.GameState, event *GameEvent)
}
