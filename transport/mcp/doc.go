// Package mcp exposes the Car Simulator to AI agents over the Model Context Protocol.
//
// MCP Tools:
//   - start_game: assign a driver and show the first status panel
//   - menu_choice: pick a menu option (1-7)
//   - game_status: status panel plus fuel and fatigue risk
//   - game_state: complete game state as JSON
//   - action_history: previous choices with pagination
//   - game_instructions: rules of the game
//
// The tools call the game service in-process; there is no HTTP hop. Errors
// from the game (invalid choice, out of fuel) come back as ordinary text
// results so the agent can read them and keep playing.
//
// Usage:
//
//	srv := mcp.NewServer(gameService, logger)
//	if err := srv.ServeStdio(); err != nil {
//		logger.Fatal("mcp server failed", "err", err)
//	}
package mcp
