// Package service provides the business logic layer for the Car Simulator.
//
// The service package implements:
//   - Game start, including the driver lookup
//   - Menu input processing
//   - Status reporting with fuel and fatigue risk
//   - Paginated action history
//   - State change notifications
//
// Architecture:
//
// The service layer sits between the front ends (console, TUI, MCP) and the
// game engine. It owns exactly one engine and guards it with a mutex so the
// read-only telemetry server can observe the game from other goroutines.
// Every returned GameState is a copy.
//
// Usage:
//
//	p := provider.NewRandomUserProvider()
//	gameService := service.NewGameService(p, service.WithBroadcaster(hub))
//
//	info, err := gameService.Start(ctx)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := gameService.Execute(ctx, "3")
//	fmt.Println(result.Message)
package service
