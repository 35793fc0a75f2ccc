// Package engine provides the core game logic for the Car Simulator.
//
// The engine package implements the game mechanics including:
//   - Cardinal directions and the left/right turn cycle
//   - Fuel consumption and refueling
//   - Driver fatigue and its warning thresholds
//   - Menu input validation
//   - The turn-based game loop state machine
//
// Core Types:
//
// The Engine interface defines the main contract for game operations,
// implemented by GameEngine. GameState holds the Car, the Driver and the
// current Phase. Status is a structured, uncolored rendering of that state
// that front ends turn into text.
//
// Usage:
//
//	driver := engine.NewDriver("Ada Lovelace", "ada@example.com")
//	gameEngine, err := engine.NewEngineWithDriver(driver)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result := gameEngine.ExecuteInput("1")
//	fmt.Println(result.Message)
//	for _, line := range gameEngine.GetStatus().Lines() {
//		fmt.Println(line.Label, line.Text)
//	}
//
// Game Rules:
//
// Turning and driving cost one liter of fuel and add one point of fatigue.
// Refueling fills the tank but also tires the driver. Resting clears fatigue.
// With an empty tank the car refuses to move until it is refueled. The game
// ends only when the player picks Quit.
package engine
