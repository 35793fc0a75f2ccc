package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/wricardo/mcp-training/carsimulator/game/engine"
	"github.com/wricardo/mcp-training/carsimulator/game/service"
)

const (
	serverName    = "car-simulator"
	serverVersion = "1.0.0"
)

// Server exposes the game service as MCP tools
type Server struct {
	service   service.GameService
	mcpServer *server.MCPServer
	logger    *log.Logger
}

// NewServer creates an MCP server that plays against gameService
func NewServer(gameService service.GameService, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}

	mcpServer := server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(true),
		server.WithInstructions(`Car Simulator - drive a car from a 7-option menu.

Call start_game once to get a driver, then send menu_choice with a number from 1 to 7.
Moving (1-4) costs one liter of fuel and adds one point of fatigue.
Rest (5) clears fatigue, refuel (6) fills the tank, 7 quits.
Use game_status between moves and game_instructions for the full rules.`),
	)

	s := &Server{
		service:   gameService,
		mcpServer: mcpServer,
		logger:    logger,
	}

	s.registerTools()
	return s
}

// GetMCPServer returns the underlying MCP server
func (s *Server) GetMCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio serves the tools over stdin/stdout until the input closes
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.Tool{
		Name:        "start_game",
		Description: "Start the game: a driver is fetched and the car is placed facing North with a full tank. Call once before menu_choice.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleStartGame)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "menu_choice",
		Description: "Pick one menu option: 1 turn left, 2 turn right, 3 drive forward, 4 reverse, 5 rest, 6 refuel, 7 quit. Anything else is rejected as an invalid choice.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"choice": map[string]interface{}{
					"type":        []string{"integer", "string"},
					"description": "Menu option 1-7, as a number or the exact text typed at the prompt",
				},
			},
			Required: []string{"choice"},
		},
	}, s.handleMenuChoice)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "game_status",
		Description: "Show the status panel: driver, direction, fuel, fatigue, warnings and how many moves are left",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleGameStatus)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "game_state",
		Description: "Get the complete game state as JSON",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleGameState)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "action_history",
		Description: "List previous menu choices with fuel and fatigue after each one",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"page": map[string]interface{}{
					"type":        "integer",
					"description": "Page number (default 1)",
					"minimum":     1,
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Actions per page (default 20, max 100)",
					"minimum":     1,
					"maximum":     100,
				},
				"order": map[string]interface{}{
					"type":        "string",
					"description": "asc (oldest first) or desc (newest first, default)",
					"enum":        []string{"asc", "desc"},
				},
			},
		},
	}, s.handleActionHistory)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get the rules of the game and the meaning of every menu option",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleGameInstructions)
}

func arguments(request mcp.CallToolRequest) map[string]interface{} {
	args, _ := request.Params.Arguments.(map[string]interface{})
	if args == nil {
		args = map[string]interface{}{}
	}
	return args
}

func (s *Server) handleStartGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	info, err := s.service.Start(ctx)
	if err != nil {
		if errors.Is(err, service.ErrAlreadyStarted) {
			return mcp.NewToolResultError("The game has already started. Use menu_choice to keep driving."), nil
		}
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	b.WriteString(engine.WelcomeMessage + "\n")
	b.WriteString(info.Message + "\n\n")
	writeStatus(&b, info.Status)
	b.WriteString("\n")
	writeMenu(&b, info.Menu)

	return mcp.NewToolResultText(b.String()), nil
}

func (s *Server) handleMenuChoice(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)

	raw, ok := args["choice"]
	if !ok {
		return mcp.NewToolResultError("choice is required"), nil
	}

	input, err := choiceInput(raw)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.service.Execute(ctx, input)
	if err != nil {
		if errors.Is(err, service.ErrNotStarted) {
			return mcp.NewToolResultError("No game in progress. Call start_game first."), nil
		}
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.logger.Debug("mcp menu choice", "input", input, "action", result.Action, "success", result.Success)

	return mcp.NewToolResultText(formatActionResult(result)), nil
}

// choiceInput turns a JSON argument into the text a player would have typed
func choiceInput(raw interface{}) (string, error) {
	switch v := raw.(type) {
	case string:
		return v, nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return "", fmt.Errorf("choice must be a number from 1 to 7")
		}
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(v), nil
	case json.Number:
		return v.String(), nil
	default:
		return "", fmt.Errorf("choice must be a number from 1 to 7, got %T", raw)
	}
}

func (s *Server) handleGameStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	status, err := s.service.GetStatus(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatStatusInfo(status)), nil
}

func (s *Server) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	state, err := s.service.GetState(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode state: %v", err)), nil
	}

	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handleActionHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)

	opts := service.HistoryOptions{Page: 1, Limit: 20, Order: "desc"}
	if page, ok := args["page"].(float64); ok && page >= 1 {
		opts.Page = int(page)
	}
	if limit, ok := args["limit"].(float64); ok && limit >= 1 {
		opts.Limit = int(limit)
	}
	if order, ok := args["order"].(string); ok && (order == "asc" || order == "desc") {
		opts.Order = order
	}

	history, err := s.service.GetActionHistory(ctx, opts)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatHistory(history)), nil
}

func (s *Server) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(instructions), nil
}
