package service

import (
	"time"

	"github.com/wricardo/mcp-training/carsimulator/game/engine"
)

// Event types
const (
	EventDriverAssigned = "driver_assigned"
	EventTurn           = "turn"
	EventDrive          = "drive"
	EventRest           = "rest"
	EventRefuel         = "refuel"
	EventOutOfFuel      = "out_of_fuel"
	EventInvalidChoice  = "invalid_choice"
	EventFatigueWarning = "fatigue_warning"
	EventExit           = "exit"
)

// StartInfo describes a freshly started game
type StartInfo struct {
	Driver    *engine.Driver      `json:"driver"`
	Message   string              `json:"message"`
	GameState *engine.GameState   `json:"game_state"`
	Status    engine.Status       `json:"status"`
	Menu      []engine.MenuOption `json:"menu"`
}

// ActionResult contains the result of one menu choice
type ActionResult struct {
	Success   bool              `json:"success"`
	Action    string            `json:"action"`
	Choice    engine.MenuChoice `json:"choice"`
	Message   string            `json:"message"`
	Severity  engine.Severity   `json:"severity"`
	Code      string            `json:"code,omitempty"`
	Exited    bool              `json:"exited"`
	Status    engine.Status     `json:"status"`
	GameState *engine.GameState `json:"game_state"`
	Events    []GameEvent       `json:"events,omitempty"`
	Err       error             `json:"-"`
}

// StatusInfo is the status panel plus decision aids
type StatusInfo struct {
	Phase                engine.Phase  `json:"phase"`
	GameOver             bool          `json:"game_over"`
	Status               engine.Status `json:"status"`
	FuelRisk             string        `json:"fuel_risk"`
	FatigueRisk          string        `json:"fatigue_risk"`
	ActionsUntilEmpty    int           `json:"actions_until_empty"`
	ActionsUntilCritical int           `json:"actions_until_critical"`
}

// GameEvent represents an event that occurred during gameplay
type GameEvent struct {
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// HistoryOptions configures action history retrieval
type HistoryOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Order string `json:"order"` // "asc" or "desc"
}

// HistoryResponse contains paginated action history
type HistoryResponse struct {
	Actions      []engine.ActionHistoryEntry `json:"actions"`
	TotalActions int                         `json:"total_actions"`
	Page         int                         `json:"page"`
	PageSize     int                         `json:"page_size"`
	TotalPages   int                         `json:"total_pages"`
	HasNext      bool                        `json:"has_next"`
	HasPrevious  bool                        `json:"has_previous"`
}
