package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wricardo/mcp-training/carsimulator/game/service"
	"github.com/wricardo/mcp-training/carsimulator/transport/console"
)

// Run plays the game full screen until the player quits or ctx is cancelled
func Run(ctx context.Context, gameService service.GameService, opts ...tea.ProgramOption) error {
	model := NewModel(ctx, gameService, console.StylesFor(lipgloss.DefaultRenderer()))

	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	final, err := tea.NewProgram(model, opts...).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("tui failed: %w", err)
	}

	if m, ok := final.(Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}
