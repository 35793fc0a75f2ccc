package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/wricardo/mcp-training/carsimulator/game/engine"
	"github.com/wricardo/mcp-training/carsimulator/game/service"
)

const (
	fetchingMessage = "Fetching a random driver..."
	statusHeader    = "--- DRIVER AND CAR STATUS ---"
	menuHeader      = "=== AVAILABLE COMMANDS ==="
	menuFooter      = "==========================="
	promptText      = "Choose an option: "
)

// Console plays the game over a line-oriented reader and writer
type Console struct {
	service service.GameService
	in      io.Reader
	out     io.Writer
	styles  Styles
	logger  *log.Logger
}

// Option configures a Console
type Option func(*Console)

// WithStyles overrides the colors used for output
func WithStyles(styles Styles) Option {
	return func(c *Console) {
		c.styles = styles
	}
}

// WithLogger sets the console logger. Game output never goes through it.
func WithLogger(logger *log.Logger) Option {
	return func(c *Console) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a console that reads choices from in and writes to out
func New(gameService service.GameService, in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		service: gameService,
		in:      in,
		out:     out,
		styles:  NewStyles(out),
		logger:  log.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run starts the game and loops until the player quits, the input ends or
// ctx is cancelled. Quitting and end of input both return nil.
func (c *Console) Run(ctx context.Context) error {
	c.println(c.styles.Title.Render(engine.WelcomeMessage))
	c.println(fetchingMessage)

	info, err := c.service.Start(ctx)
	switch {
	case err == nil:
		c.println(c.styles.Info.Render(info.Message))
	case errors.Is(err, service.ErrAlreadyStarted):
		c.logger.Debug("resuming game already in progress")
	default:
		return fmt.Errorf("failed to start game: %w", err)
	}

	lines := c.readLines(ctx)

	for {
		if err := c.showStatus(ctx); err != nil {
			return err
		}
		c.showMenu(ctx)
		fmt.Fprint(c.out, "\n"+c.styles.Prompt.Render(promptText))

		var line string
		var ok bool
		select {
		case <-ctx.Done():
			c.println("")
			return ctx.Err()
		case line, ok = <-lines:
		}

		if !ok {
			// End of input counts as quitting
			c.println("")
			c.println(c.styles.Title.Render(engine.FarewellMessage))
			return nil
		}

		result, err := c.service.Execute(ctx, line)
		if err != nil {
			return fmt.Errorf("failed to execute %q: %w", line, err)
		}

		c.println(c.styles.For(result.Severity).Render(result.Message))
		if result.Exited {
			return nil
		}
	}
}

// readLines feeds input lines to a channel that is closed at end of input
func (c *Console) readLines(ctx context.Context) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			c.logger.Warn("input read failed", "err", err)
		}
	}()

	return lines
}

func (c *Console) showStatus(ctx context.Context) error {
	info, err := c.service.GetStatus(ctx)
	if err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}

	c.println("")
	c.println(c.styles.Title.Render(statusHeader))
	for _, line := range info.Status.Lines() {
		c.println(c.styles.StatusLine(line))
	}
	return nil
}

func (c *Console) showMenu(ctx context.Context) {
	c.println("")
	c.println(c.styles.Title.Render(menuHeader))
	c.println(strings.Join(c.styles.MenuLines(c.service.GetMenu(ctx)), "\n"))
	c.println(c.styles.Title.Render(menuFooter))
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}
