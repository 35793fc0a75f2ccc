package engine

import "errors"

var (
	ErrInvalidMenuChoice = errors.New("invalid menu choice")
	ErrOutOfFuel         = errors.New("out of fuel")
	ErrNoDriver          = errors.New("no driver assigned")
	ErrGameOver          = errors.New("game is over")
)

// Phase is the state of the game loop
type Phase string

const (
	PhaseAwaitingDriver Phase = "awaiting_driver"
	PhaseMenu           Phase = "menu"
	PhaseTurning        Phase = "turning"
	PhaseDriving        Phase = "driving"
	PhaseResting        Phase = "resting"
	PhaseRefueling      Phase = "refueling"
	PhaseExiting        Phase = "exiting"
)

// Result codes attached to failed actions
const (
	CodeInvalidChoice = "invalid_choice"
	CodeOutOfFuel     = "out_of_fuel"
	CodeNoDriver      = "no_driver"
	CodeGameOver      = "game_over"
)

// Player-facing messages
const (
	WelcomeMessage    = "Welcome to the Car Simulator!"
	OutOfFuelMessage  = "Out of fuel! Refuel before the car can move."
	FarewellMessage   = "Thanks for playing the Car Simulator!"
	NoDriverMessage   = "No driver yet. Waiting for a driver to arrive."
	GameOverMessage   = "The game is over."
	turnLeftFormat    = "The car turns left and now faces %s."
	turnRightFormat   = "The car turns right and now faces %s."
	driveFormat       = "The car drives forward heading %s."
	reverseMessage    = "The car reverses."
	restFormat        = "%s takes a break and feels rested!"
	refuelFormat      = "The car is refueled to full capacity (%.0f liters)."
)

// GameState is the complete state owned by one engine
type GameState struct {
	Car           *Car                 `json:"car"`
	Driver        *Driver              `json:"driver,omitempty"`
	Phase         Phase                `json:"phase"`
	Message       string               `json:"message"`
	Severity      Severity             `json:"severity"`
	GameOver      bool                 `json:"game_over"`
	ActionHistory []ActionHistoryEntry `json:"action_history"`
	TotalActions  int                  `json:"total_actions"`
}

// ActionHistoryEntry records one menu choice that was dispatched
type ActionHistoryEntry struct {
	Number     int        `json:"number"`
	Action     string     `json:"action"`
	Choice     MenuChoice `json:"choice"`
	Success    bool       `json:"success"`
	Direction  Direction  `json:"direction"`
	FuelBefore float64    `json:"fuel_before"`
	FuelAfter  float64    `json:"fuel_after"`
	Fatigue    int        `json:"fatigue"`
	Timestamp  int64      `json:"timestamp"`
}

// ActionResult is what a single dispatch returns to the loop
type ActionResult struct {
	Choice   MenuChoice `json:"choice"`
	Action   string     `json:"action"`
	Phase    Phase      `json:"phase"`
	Success  bool       `json:"success"`
	Message  string     `json:"message"`
	Severity Severity   `json:"severity"`
	Code     string     `json:"code,omitempty"`
	Exited   bool       `json:"exited"`
	Err      error      `json:"-"`
}
