package mcp

import (
	"fmt"
	"strings"
	"time"

	"github.com/wricardo/mcp-training/carsimulator/game/engine"
	"github.com/wricardo/mcp-training/carsimulator/game/service"
)

// severityMarker prefixes a line so agents can spot trouble without colors
func severityMarker(severity engine.Severity) string {
	switch severity {
	case engine.SeverityOK:
		return "✓"
	case engine.SeverityWarning:
		return "⚠️"
	case engine.SeverityCritical:
		return "✗"
	default:
		return "•"
	}
}

func writeStatus(b *strings.Builder, status engine.Status) {
	for _, line := range status.Lines() {
		fmt.Fprintf(b, "%s %s: %s\n", severityMarker(line.Severity), line.Label, line.Text)
	}
}

func writeMenu(b *strings.Builder, menu []engine.MenuOption) {
	b.WriteString("MENU:\n")
	for _, option := range menu {
		fmt.Fprintf(b, "  %d. %s\n", option.Choice, option.Label)
	}
}

func formatActionResult(result *service.ActionResult) string {
	var b strings.Builder

	switch {
	case result.Exited:
		b.WriteString(result.Message + "\n")
		b.WriteString("\nThe game is over. Thanks for driving!\n")
		return b.String()
	case result.Success:
		fmt.Fprintf(&b, "✓ %s\n", result.Action)
	default:
		fmt.Fprintf(&b, "✗ Action failed (%s)\n", result.Code)
	}

	b.WriteString(result.Message + "\n\n")
	writeStatus(&b, result.Status)

	if result.Code == engine.CodeOutOfFuel {
		b.WriteString("\nHint: choose 6 to refuel.\n")
	}

	return b.String()
}

func formatStatusInfo(info *service.StatusInfo) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Phase: %s\n", info.Phase)
	if info.GameOver {
		b.WriteString("Game over: yes\n")
	}
	b.WriteString("\n")
	writeStatus(&b, info.Status)

	b.WriteString("\nRISK:\n")
	fmt.Fprintf(&b, "  Fuel: %s (%d moves until empty)\n", info.FuelRisk, info.ActionsUntilEmpty)
	fmt.Fprintf(&b, "  Fatigue: %s (%d moves until critical)\n", info.FatigueRisk, info.ActionsUntilCritical)

	return b.String()
}

func formatHistory(history *service.HistoryResponse) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Action History (page %d of %d, %d total)\n\n",
		history.Page, history.TotalPages, history.TotalActions)

	if len(history.Actions) == 0 {
		b.WriteString("No actions yet.\n")
		return b.String()
	}

	for _, entry := range history.Actions {
		mark := "✓"
		if !entry.Success {
			mark = "✗"
		}
		fmt.Fprintf(&b, "#%d %s %s (choice %d) facing %s, fuel %.0f -> %.0f, fatigue %d, at %s\n",
			entry.Number, mark, entry.Action, entry.Choice, entry.Direction.Label(),
			entry.FuelBefore, entry.FuelAfter, entry.Fatigue,
			time.Unix(entry.Timestamp, 0).Format(time.TimeOnly))
	}

	if history.HasNext {
		fmt.Fprintf(&b, "\nMore actions on page %d.\n", history.Page+1)
	}

	return b.String()
}

const instructions = `🚗 Car Simulator - Instructions

GAME OBJECTIVE:
Keep the car moving without running the tank dry or wearing out your driver.

GETTING STARTED:
Call start_game once. A driver is assigned and the car starts facing North
with a full 20 liter tank.

MENU OPTIONS:
  1. Turn left      - rotate counter-clockwise (North -> West -> South -> East)
  2. Turn right     - rotate clockwise (North -> East -> South -> West)
  3. Drive forward  - move in the current direction
  4. Reverse        - move backwards
  5. Take a rest    - fatigue drops to 0
  6. Refuel the car - tank back to 20 liters, costs 1 fatigue
  7. Quit           - end the game

COSTS:
• Options 1-4 each use 1 liter of fuel and add 1 fatigue
• With an empty tank, options 1-4 fail with "out of fuel" and nothing changes
• Any input other than a whole number from 1 to 7 is an invalid choice

STATUS COLORS:
• Fuel: ✓ above 50%, ⚠️ above 20%, ✗ otherwise
• Fatigue: ✓ 0-5, ⚠️ 6-8, ✗ 9 and up
• At fatigue 7 the driver starts to feel tired; at 10 they need a rest right away

TOOLS:
• game_status - status panel plus moves left before trouble
• game_state - raw JSON state
• action_history - previous choices, newest first

Have a safe drive!`
