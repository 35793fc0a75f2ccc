// Package console runs the Car Simulator as a classic prompt loop.
//
// Each turn prints the status panel and the menu, reads one line and hands it
// to the game service. Severities from the status panel are colored with
// lipgloss; color is stripped when the output is not a terminal, so the same
// loop works for pipes and tests.
//
// End of input is treated the same as choosing Quit.
package console
