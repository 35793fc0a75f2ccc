// Package api provides the read-only HTTP telemetry API for the Car Simulator.
//
// Endpoints:
//   - GET /api/state   - Full game state (car, driver, phase, history)
//   - GET /api/status  - Status panel with fuel and fatigue risk
//   - GET /api/history - Action history (?page=1&limit=20&order=desc)
//   - GET /api/menu    - Menu options
//   - GET /api/health  - Health check
//   - GET /ws          - WebSocket stream of state updates
//
// There are no write endpoints. The game is played from the terminal or over
// MCP; telemetry only observes it.
//
// Usage:
//
//	hub := websocket.NewHub(logger)
//	go hub.Run()
//
//	server := api.NewServer(gameService, hub)
//	http.ListenAndServe("localhost:8080", server)
package api
