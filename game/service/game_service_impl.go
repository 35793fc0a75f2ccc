package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/wricardo/mcp-training/carsimulator/game/engine"
	"github.com/wricardo/mcp-training/carsimulator/game/provider"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	engine      *engine.GameEngine
	provider    provider.DriverProvider
	broadcaster Broadcaster
	logger      *log.Logger
	mu          sync.RWMutex
}

// Option configures the game service
type Option func(*gameServiceImpl)

// WithBroadcaster sends every state change to b
func WithBroadcaster(b Broadcaster) Option {
	return func(s *gameServiceImpl) {
		s.broadcaster = b
	}
}

// WithLogger sets the service logger
func WithLogger(logger *log.Logger) Option {
	return func(s *gameServiceImpl) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewGameService creates a new game service instance
func NewGameService(p provider.DriverProvider, opts ...Option) GameService {
	if p == nil {
		p = provider.NewFallbackProvider(nil)
	}
	s := &gameServiceImpl{
		engine:   engine.NewEngine(),
		provider: p,
		logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start fetches a driver and moves the game into the menu
func (s *gameServiceImpl) Start(ctx context.Context) (*StartInfo, error) {
	s.mu.RLock()
	phase := s.engine.GetPhase()
	s.mu.RUnlock()
	if phase != engine.PhaseAwaitingDriver {
		return nil, ErrAlreadyStarted
	}

	// The lookup can block for the whole provider timeout, so it runs unlocked
	driver := s.provider.GetRandomDriver(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if driver == nil {
		return nil, ErrNoDriver
	}
	if err := s.engine.SetDriver(driver); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAlreadyStarted, err)
	}

	s.logger.Info("game started", "driver", driver.Name)

	state := s.snapshot()
	event := GameEvent{
		Type:      EventDriverAssigned,
		Message:   state.Message,
		Timestamp: time.Now(),
	}
	s.broadcast(state, &event)

	return &StartInfo{
		Driver:    state.Driver,
		Message:   state.Message,
		GameState: state,
		Status:    s.engine.GetStatus(),
		Menu:      engine.MenuOptions(),
	}, nil
}

// Execute validates a raw input line and dispatches it
func (s *gameServiceImpl) Execute(ctx context.Context, input string) (*ActionResult, error) {
	return s.Choose(ctx, engine.ParseMenuChoice(input))
}

// Choose dispatches an already parsed menu choice
func (s *gameServiceImpl) Choose(ctx context.Context, choice engine.MenuChoice) (*ActionResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.engine.GetPhase() == engine.PhaseAwaitingDriver {
		return nil, ErrNotStarted
	}

	res := s.engine.Execute(choice)
	status := s.engine.GetStatus()
	state := s.snapshot()

	result := &ActionResult{
		Success:   res.Success,
		Action:    res.Action,
		Choice:    res.Choice,
		Message:   res.Message,
		Severity:  res.Severity,
		Code:      res.Code,
		Exited:    res.Exited,
		Status:    status,
		GameState: state,
		Events:    s.extractEvents(res, status),
		Err:       res.Err,
	}

	if res.Err != nil {
		s.logger.Debug("action rejected", "choice", int(choice), "code", res.Code, "err", res.Err)
	} else {
		s.logger.Debug("action executed", "action", res.Action, "fuel", state.Car.Fuel, "fatigue", state.Driver.Fatigue)
	}

	for i := range result.Events {
		s.broadcast(state, &result.Events[i])
	}

	return result, nil
}

// extractEvents turns one engine result into game events
func (s *gameServiceImpl) extractEvents(res *engine.ActionResult, status engine.Status) []GameEvent {
	now := time.Now()
	events := []GameEvent{}

	eventType := ""
	switch {
	case res.Code == engine.CodeOutOfFuel:
		eventType = EventOutOfFuel
	case res.Code == engine.CodeInvalidChoice:
		eventType = EventInvalidChoice
	case res.Code != "":
		eventType = res.Code
	default:
		switch res.Phase {
		case engine.PhaseTurning:
			eventType = EventTurn
		case engine.PhaseDriving:
			eventType = EventDrive
		case engine.PhaseResting:
			eventType = EventRest
		case engine.PhaseRefueling:
			eventType = EventRefuel
		case engine.PhaseExiting:
			eventType = EventExit
		}
	}

	events = append(events, GameEvent{
		Type:      eventType,
		Message:   res.Message,
		Timestamp: now,
	})

	if res.Success && status.Warning != nil && res.Phase != engine.PhaseExiting {
		events = append(events, GameEvent{
			Type:      EventFatigueWarning,
			Message:   status.Warning.Text,
			Timestamp: now,
		})
	}

	return events
}

// GetState returns a copy of the current state
func (s *gameServiceImpl) GetState(ctx context.Context) (*engine.GameState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshot(), nil
}

// GetStatus returns the status panel with risk assessments
func (s *gameServiceImpl) GetStatus(ctx context.Context) (*StatusInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	car := s.engine.GetCar()
	driver := s.engine.GetDriver()

	return &StatusInfo{
		Phase:                s.engine.GetPhase(),
		GameOver:             s.engine.IsGameOver(),
		Status:               s.engine.GetStatus(),
		FuelRisk:             engine.AnalyzeFuelRisk(car),
		FatigueRisk:          engine.AnalyzeFatigueRisk(driver),
		ActionsUntilEmpty:    engine.ActionsUntilEmpty(car),
		ActionsUntilCritical: engine.ActionsUntilCritical(driver),
	}, nil
}

// GetActionHistory returns paginated action history
func (s *gameServiceImpl) GetActionHistory(ctx context.Context, opts HistoryOptions) (*HistoryResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := s.engine.GetActionHistory()
	total := len(history)

	// Apply defaults
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = defaultHistoryLimit
	}
	if opts.Limit > maxHistoryLimit {
		opts.Limit = maxHistoryLimit
	}
	if opts.Order != "asc" {
		opts.Order = "desc"
	}

	// Calculate pagination
	totalPages := (total + opts.Limit - 1) / opts.Limit
	if totalPages == 0 {
		totalPages = 1
	}

	actions := []engine.ActionHistoryEntry{}

	// Pages past the end are empty. The offset is only computed for real pages.
	if opts.Page <= totalPages {
		start := (opts.Page - 1) * opts.Limit
		end := start + opts.Limit
		if end > total {
			end = total
		}
		if opts.Order == "desc" {
			// Most recent first
			for i := total - 1 - start; i >= total-end; i-- {
				actions = append(actions, history[i])
			}
		} else {
			actions = append(actions, history[start:end]...)
		}
	}

	return &HistoryResponse{
		Actions:      actions,
		TotalActions: total,
		Page:         opts.Page,
		PageSize:     opts.Limit,
		TotalPages:   totalPages,
		HasNext:      opts.Page < totalPages,
		HasPrevious:  opts.Page > 1,
	}, nil
}

// GetMenu returns the menu in display order
func (s *gameServiceImpl) GetMenu(ctx context.Context) []engine.MenuOption {
	return engine.MenuOptions()
}

// snapshot deep-copies the engine state. Callers must hold the lock.
func (s *gameServiceImpl) snapshot() *engine.GameState {
	src := s.engine.GetState()

	car := *src.Car
	state := &engine.GameState{
		Car:           &car,
		Phase:         src.Phase,
		Message:       src.Message,
		Severity:      src.Severity,
		GameOver:      src.GameOver,
		ActionHistory: append([]engine.ActionHistoryEntry{}, src.ActionHistory...),
		TotalActions:  src.TotalActions,
	}
	if src.Driver != nil {
		driver := *src.Driver
		state.Driver = &driver
	}
	return state
}

func (s *gameServiceImpl) broadcast(state *engine.GameState, event *GameEvent) {
	if s.broadcaster == nil {
		return
	}
	s.broadcaster.BroadcastState(state, event)
}
