package engine

import (
	"fmt"
	"time"
)

// Engine provides the main interface for game operations
type Engine interface {
	// Game state management
	GetState() *GameState
	GetPhase() Phase
	IsGameOver() bool
	GetCar() *Car
	GetDriver() *Driver
	SetDriver(driver *Driver) error

	// Actions
	Execute(choice MenuChoice) *ActionResult
	ExecuteInput(input string) *ActionResult

	// Rendering
	GetStatus() Status

	// History
	GetActionHistory() []ActionHistoryEntry
	GetLastAction() *ActionHistoryEntry
}

// GameEngine implements the Engine interface
type GameEngine struct {
	state *GameState
}

// NewEngine creates an engine that waits for a driver
func NewEngine() *GameEngine {
	return &GameEngine{
		state: &GameState{
			Car:           NewCar(),
			Phase:         PhaseAwaitingDriver,
			Message:       WelcomeMessage,
			Severity:      SeverityInfo,
			ActionHistory: []ActionHistoryEntry{},
		},
	}
}

// NewEngineWithDriver creates an engine that is ready for the menu
func NewEngineWithDriver(driver *Driver) (*GameEngine, error) {
	e := NewEngine()
	if err := e.SetDriver(driver); err != nil {
		return nil, err
	}
	return e, nil
}

// GetState returns the current game state
func (e *GameEngine) GetState() *GameState {
	return e.state
}

// GetPhase returns the loop state
func (e *GameEngine) GetPhase() Phase {
	return e.state.Phase
}

// IsGameOver reports whether the player has exited
func (e *GameEngine) IsGameOver() bool {
	return e.state.GameOver
}

// GetCar returns the car
func (e *GameEngine) GetCar() *Car {
	return e.state.Car
}

// GetDriver returns the driver, or nil before one is assigned
func (e *GameEngine) GetDriver() *Driver {
	return e.state.Driver
}

// SetDriver assigns the driver and moves the loop from AwaitingDriver to Menu
func (e *GameEngine) SetDriver(driver *Driver) error {
	if driver == nil {
		return fmt.Errorf("driver cannot be nil")
	}
	if e.state.Phase != PhaseAwaitingDriver {
		return fmt.Errorf("driver already assigned (phase %s)", e.state.Phase)
	}
	e.state.Driver = driver
	e.state.Phase = PhaseMenu
	e.state.Message = fmt.Sprintf("Your driver: %s (%s)", driver.Name, driver.Email)
	e.state.Severity = SeverityInfo
	return nil
}

// ExecuteInput parses a raw menu line and dispatches it
func (e *GameEngine) ExecuteInput(input string) *ActionResult {
	return e.Execute(ParseMenuChoice(input))
}

// Execute dispatches one menu choice and returns to Menu unless the choice
// was exit
func (e *GameEngine) Execute(choice MenuChoice) *ActionResult {
	switch e.state.Phase {
	case PhaseAwaitingDriver:
		return e.fail(choice, ErrNoDriver, CodeNoDriver, NoDriverMessage, SeverityWarning)
	case PhaseExiting:
		return e.fail(choice, ErrGameOver, CodeGameOver, GameOverMessage, SeverityInfo)
	}

	if !choice.IsValid() {
		return e.fail(ChoiceInvalid, ErrInvalidMenuChoice, CodeInvalidChoice, InvalidChoiceMessage, SeverityWarning)
	}

	car := e.state.Car
	fuelBefore := car.Fuel
	result := e.dispatch(choice)

	e.addActionToHistory(choice, fuelBefore, result.Success)

	if result.Exited {
		e.state.Phase = PhaseExiting
		e.state.GameOver = true
	} else {
		e.state.Phase = PhaseMenu
	}
	e.state.Message = result.Message
	e.state.Severity = result.Severity

	return result
}

// dispatch applies the transition table for a valid choice
func (e *GameEngine) dispatch(choice MenuChoice) *ActionResult {
	car := e.state.Car
	driver := e.state.Driver

	result := &ActionResult{
		Choice:   choice,
		Action:   choice.Action(),
		Success:  true,
		Severity: SeverityOK,
	}

	switch choice {
	case ChoiceTurnLeft, ChoiceTurnRight, ChoiceDriveForward, ChoiceDriveBackward:
		if !car.HasFuel() {
			result.Phase = PhaseMenu
			result.Success = false
			result.Message = OutOfFuelMessage
			result.Severity = SeverityCritical
			result.Code = CodeOutOfFuel
			result.Err = ErrOutOfFuel
			return result
		}

		switch choice {
		case ChoiceTurnLeft:
			result.Phase = PhaseTurning
			car.TurnLeft()
			result.Message = fmt.Sprintf(turnLeftFormat, car.DirectionLabel())
		case ChoiceTurnRight:
			result.Phase = PhaseTurning
			car.TurnRight()
			result.Message = fmt.Sprintf(turnRightFormat, car.DirectionLabel())
		case ChoiceDriveForward:
			result.Phase = PhaseDriving
			result.Message = fmt.Sprintf(driveFormat, car.DirectionLabel())
		case ChoiceDriveBackward:
			result.Phase = PhaseDriving
			result.Message = reverseMessage
		}
		car.ConsumeFuel()
		driver.IncreaseFatigue()

	case ChoiceRest:
		result.Phase = PhaseResting
		driver.Rest()
		result.Message = fmt.Sprintf(restFormat, driver.Name)

	case ChoiceRefuel:
		result.Phase = PhaseRefueling
		car.Refuel()
		driver.IncreaseFatigue()
		result.Message = fmt.Sprintf(refuelFormat, car.MaxFuel)
		result.Severity = SeverityInfo

	case ChoiceExit:
		result.Phase = PhaseExiting
		result.Exited = true
		result.Message = FarewellMessage
		result.Severity = SeverityInfo
	}

	return result
}

// fail builds a result for input that never reached the transition table
func (e *GameEngine) fail(choice MenuChoice, err error, code, message string, severity Severity) *ActionResult {
	e.state.Message = message
	e.state.Severity = severity
	return &ActionResult{
		Choice:   choice,
		Action:   choice.Action(),
		Phase:    e.state.Phase,
		Success:  false,
		Message:  message,
		Severity: severity,
		Code:     code,
		Exited:   e.state.GameOver,
		Err:      err,
	}
}

// GetStatus renders the status panel for the current state
func (e *GameEngine) GetStatus() Status {
	return RenderStatus(e.state.Car, e.state.Driver)
}

// GetActionHistory returns the complete action history
func (e *GameEngine) GetActionHistory() []ActionHistoryEntry {
	return e.state.ActionHistory
}

// GetLastAction returns the last action, or nil if none
func (e *GameEngine) GetLastAction() *ActionHistoryEntry {
	if len(e.state.ActionHistory) == 0 {
		return nil
	}
	return &e.state.ActionHistory[len(e.state.ActionHistory)-1]
}

// addActionToHistory appends an entry for a dispatched choice
func (e *GameEngine) addActionToHistory(choice MenuChoice, fuelBefore float64, success bool) {
	fatigue := 0
	if e.state.Driver != nil {
		fatigue = e.state.Driver.Fatigue
	}
	entry := ActionHistoryEntry{
		Number:     e.state.TotalActions + 1,
		Action:     choice.Action(),
		Choice:     choice,
		Success:    success,
		Direction:  e.state.Car.Direction,
		FuelBefore: fuelBefore,
		FuelAfter:  e.state.Car.Fuel,
		Fatigue:    fatigue,
		Timestamp:  time.Now().Unix(),
	}
	e.state.ActionHistory = append(e.state.ActionHistory, entry)
	e.state.TotalActions++
}
