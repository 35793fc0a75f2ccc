// Package websocket streams live game state to telemetry clients.
//
// The package uses a hub-and-spoke model where a central Hub manages all
// WebSocket connections. Each client connection is handled by a read and a
// write goroutine; the hub's event loop owns the client set.
//
// Message Protocol:
//
// Outgoing messages are JSON:
//
//	{"event": "state_update", "game_state": {...}, "game_event": {...}}
//
// A newly connected client first receives a "snapshot" message with the most
// recent state, if any. Incoming messages are read and discarded; telemetry
// cannot change the game.
//
// Usage:
//
//	hub := websocket.NewHub(logger)
//	go hub.Run()
//	defer hub.Stop()
//
//	gameService := service.NewGameService(p, service.WithBroadcaster(hub))
//	http.HandleFunc("/ws", hub.ServeWS)
package websocket
