package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/wricardo/mcp-training/carsimulator/game/engine"
	"github.com/wricardo/mcp-training/carsimulator/game/provider"
	"github.com/wricardo/mcp-training/carsimulator/game/service"
)

func newTestConsole(input string, out *bytes.Buffer) (*Console, service.GameService) {
	quiet := log.New(io.Discard)
	svc := service.NewGameService(provider.NewFallbackProvider(nil), service.WithLogger(quiet))
	return New(svc, strings.NewReader(input), out, WithLogger(quiet)), svc
}

func TestRunScriptedGame(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains []string
		actions  int
	}{
		{
			name:  "turn left then quit",
			input: "1\n7\n",
			contains: []string{
				engine.WelcomeMessage,
				"Your driver: " + provider.StaticDriverName,
				"The car turns left and now faces West.",
				"Fuel: 19/20 liters",
				engine.FarewellMessage,
			},
			actions: 2,
		},
		{
			name:     "invalid input keeps looping",
			input:    "abc\n 3\n0\n7\n",
			contains: []string{engine.InvalidChoiceMessage, engine.FarewellMessage},
			actions:  1,
		},
		{
			name:     "rest and refuel",
			input:    "3\n3\n5\n6\n7\n",
			contains: []string{"takes a break and feels rested!", "refueled to full capacity (20 liters)", "Fatigue: 1/10"},
			actions:  5,
		},
		{
			name:     "end of input quits",
			input:    "2\n",
			contains: []string{"now faces East", engine.FarewellMessage},
			actions:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			c, svc := newTestConsole(tt.input, &out)

			if err := c.Run(context.Background()); err != nil {
				t.Fatalf("Run failed: %v", err)
			}

			text := out.String()
			for _, want := range tt.contains {
				if !strings.Contains(text, want) {
					t.Errorf("Expected %q in output:\n%s", want, text)
				}
			}

			state, _ := svc.GetState(context.Background())
			if state.TotalActions != tt.actions {
				t.Errorf("Expected %d actions, got %d", tt.actions, state.TotalActions)
			}
		})
	}
}

func TestRunShowsMenuAndStatus(t *testing.T) {
	var out bytes.Buffer
	c, _ := newTestConsole("7\n", &out)

	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	text := out.String()
	for _, want := range []string{
		statusHeader,
		"Driver: " + provider.StaticDriverName + " is driving North",
		"Direction: North",
		"Fuel: 20/20 liters",
		"Fatigue: 0/10",
		menuHeader,
		"1. Turn left",
		"7. Quit",
		promptText,
	} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected %q in output:\n%s", want, text)
		}
	}
}

func TestRunOutOfFuel(t *testing.T) {
	var out bytes.Buffer
	input := strings.Repeat("3\n", 21) + "7\n"
	c, svc := newTestConsole(input, &out)

	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if !strings.Contains(out.String(), engine.OutOfFuelMessage) {
		t.Error("Expected out of fuel message")
	}

	state, _ := svc.GetState(context.Background())
	if state.Car.Fuel != 0 {
		t.Errorf("Expected empty tank, got %v", state.Car.Fuel)
	}
	if state.Driver.Fatigue != 20 {
		t.Errorf("Expected fatigue 20, got %d", state.Driver.Fatigue)
	}
}

func TestRunFatigueWarning(t *testing.T) {
	var out bytes.Buffer
	input := strings.Repeat("1\n", 7) + "7\n"
	c, _ := newTestConsole(input, &out)

	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if !strings.Contains(out.String(), "Warning: "+engine.FatigueWarning(7)) {
		t.Errorf("Expected fatigue warning in output:\n%s", out.String())
	}
}

func TestRunCancelled(t *testing.T) {
	quiet := log.New(io.Discard)
	svc := service.NewGameService(provider.NewFallbackProvider(nil), service.WithLogger(quiet))

	reader, writer := io.Pipe()
	defer writer.Close()

	var out bytes.Buffer
	c := New(svc, reader, &out, WithLogger(quiet))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- c.Run(ctx)
	}()

	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

type noDriverProvider struct{}

func (noDriverProvider) GetRandomDriver(ctx context.Context) *engine.Driver {
	return nil
}

func TestRunWithoutDriver(t *testing.T) {
	quiet := log.New(io.Discard)
	svc := service.NewGameService(noDriverProvider{}, service.WithLogger(quiet))

	var out bytes.Buffer
	c := New(svc, strings.NewReader("1\n"), &out, WithLogger(quiet))

	err := c.Run(context.Background())
	if !errors.Is(err, service.ErrNoDriver) {
		t.Errorf("Expected ErrNoDriver, got %v", err)
	}
}

type startFailingService struct {
	service.GameService
}

func (startFailingService) Start(ctx context.Context) (*service.StartInfo, error) {
	return nil, errors.New("boom")
}

func TestRunStartError(t *testing.T) {
	var out bytes.Buffer
	c := New(startFailingService{}, strings.NewReader(""), &out, WithLogger(log.New(io.Discard)))

	err := c.Run(context.Background())
	if err == nil || !strings.Contains(err.Error(), "failed to start game") {
		t.Errorf("Expected start error, got %v", err)
	}
}

func TestRunResumesStartedGame(t *testing.T) {
	var out bytes.Buffer
	c, svc := newTestConsole("2\n7\n", &out)

	if _, err := svc.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(out.String(), "now faces East") {
		t.Errorf("Expected turn in output:\n%s", out.String())
	}
}
