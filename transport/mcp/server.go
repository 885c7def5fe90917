package mcp

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/wricardo/fifteen-puzzle/game/engine"
	"github.com/wricardo/fifteen-puzzle/game/service"
)

// Server exposes a GameService as MCP tools
type Server struct {
	service   service.GameService
	logger    zerolog.Logger
	mcpServer *server.MCPServer
	tools     []string
}

// NewServer creates an MCP server with all tools registered
func NewServer(svc service.GameService, logger zerolog.Logger) *Server {
	s := &Server{
		service: svc,
		logger:  logger,
	}

	s.initMCPServer()
	return s
}

// initMCPServer initializes the MCP server with all tools
func (s *Server) initMCPServer() {
	s.mcpServer = server.NewMCPServer(
		"Fifteen Puzzle",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Fifteen Puzzle - MCP Interface

GAME OBJECTIVE:
Arrange tiles 1-15 in row-major order with the blank in the bottom-right corner.

AVAILABLE TOOLS:
- puzzle_state: Get the current grid
- move: Single move (up/down/left/right) - the BLANK moves in that direction
- bulk_move: Up to 50 moves at once, stops at the first blocked move
- new_game: Deal a fresh shuffled puzzle
- move_history: View past moves
- list_configs: List available configurations
- game_instructions: Get the full rules

NOTE: The 'intent' parameter on move/bulk_move tools serves as rubber duck debugging - explain your reasoning!`),
	)

	s.registerTools()
}

// registerTools registers all MCP tools
func (s *Server) registerTools() {
	s.addTool(mcp.Tool{
		Name:        "puzzle_state",
		Description: "Get the current puzzle grid, move count and solved flag",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handlePuzzleState)

	s.addTool(mcp.Tool{
		Name:        "move",
		Description: "Move the blank one cell; the neighbouring tile slides into the old blank cell",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"direction": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"up", "down", "left", "right"},
					"description": "Direction the blank moves",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the intent behind this move (serves as a rubber duck to help explain your reasoning)",
				},
			},
			Required: []string{"direction"},
		},
	}, s.handleMove)

	s.addTool(mcp.Tool{
		Name:        "bulk_move",
		Description: fmt.Sprintf("Execute up to %d moves in sequence; stops at the first blocked move or when solved", engine.MaxBulkMoves),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"moves": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "string",
						"enum": []string{"up", "down", "left", "right"},
					},
					"maxItems":    engine.MaxBulkMoves,
					"description": "Array of moves",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the intent behind this sequence of moves (serves as a rubber duck to help explain your reasoning)",
				},
			},
			Required: []string{"moves"},
		},
	}, s.handleBulkMove)

	s.addTool(mcp.Tool{
		Name:        "new_game",
		Description: "Deal a new shuffled puzzle and reset the move counter",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"config_name": map[string]interface{}{
					"type":        "string",
					"description": "Name of the config to use (optional, keeps the current one)",
				},
			},
		},
	}, s.handleNewGame)

	s.addTool(mcp.Tool{
		Name:        "move_history",
		Description: "Get the accepted moves of the current game",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"page": map[string]interface{}{
					"type":        "integer",
					"description": "Page number",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Items per page",
				},
				"order": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"asc", "desc"},
					"description": "asc for oldest first, desc (default) for newest first",
				},
			},
		},
	}, s.handleMoveHistory)

	s.addTool(mcp.Tool{
		Name:        "list_configs",
		Description: "List available game configurations",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleListConfigs)

	s.addTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get comprehensive game instructions and rules",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleGameInstructions)
}

func (s *Server) addTool(tool mcp.Tool, handler server.ToolHandlerFunc) {
	s.mcpServer.AddTool(tool, handler)
	s.tools = append(s.tools, tool.Name)
}

// ToolNames lists registered tools in registration order
func (s *Server) ToolNames() []string {
	return append([]string(nil), s.tools...)
}

// GetMCPServer returns the underlying MCP server for serving
func (s *Server) GetMCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio blocks serving MCP over stdin/stdout
func (s *Server) ServeStdio() error {
	s.logger.Info().Msg("serving MCP over stdio")
	return server.ServeStdio(s.mcpServer)
}

// Tool handlers

func (s *Server) handlePuzzleState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	state, err := s.service.GetGameState(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatGameState(state)), nil
}

func (s *Server) handleMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	direction, _ := args["direction"].(string)
	intent, _ := args["intent"].(string)

	if intent != "" {
		s.logger.Debug().Str("intent", intent).Str("direction", direction).Msg("move requested")
	}

	result, err := s.service.Move(ctx, direction)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatMoveResult(result)), nil
}

func (s *Server) handleBulkMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	intent, _ := args["intent"].(string)

	moves, err := stringSlice(args["moves"])
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if intent != "" {
		s.logger.Debug().Str("intent", intent).Int("moves", len(moves)).Msg("bulk move requested")
	}

	result, err := s.service.BulkMove(ctx, moves)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatBulkMoveResult(result)), nil
}

func (s *Server) handleNewGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	configName, _ := args["config_name"].(string)

	state, err := s.service.NewGame(ctx, configName)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("New game started.\n\n%s", formatGameState(state))
	return mcp.NewToolResultText(result), nil
}

func (s *Server) handleMoveHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})

	page, err := intArg(args, "page")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	limit, err := intArg(args, "limit")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	opts := service.HistoryOptions{Page: page, Limit: limit}
	if order, ok := args["order"].(string); ok {
		opts.Order = order
	}

	history, err := s.service.GetMoveHistory(ctx, opts)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatHistory(history)), nil
}

func (s *Server) handleListConfigs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	configs, err := s.service.ListConfigs(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	b.WriteString("Available Configurations:\n\n")
	for _, config := range configs {
		b.WriteString(fmt.Sprintf("• %s (%s)\n  %s\n  Keys: up=%s down=%s left=%s right=%s quit=%s\n\n",
			config.ConfigID, config.Name, config.Description,
			config.Keys.Up, config.Keys.Down, config.Keys.Left, config.Keys.Right, config.Keys.Quit))
	}

	return mcp.NewToolResultText(b.String()), nil
}

func (s *Server) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := `Fifteen Puzzle - Complete Instructions

GAME OBJECTIVE:
The 4x4 board holds tiles 1-15 and one blank cell. Slide tiles until the
board reads 1..15 in row-major order with the blank in the bottom-right:

 1  2  3  4
 5  6  7  8
 9 10 11 12
13 14 15

DIRECTION CONVENTION:
A direction names where the BLANK goes. "up" moves the blank one row up,
so the tile that was above it slides down into the old blank cell.
Moves that would take the blank off the board are rejected and do not
count.

COORDINATES:
Positions are (row,col), zero-based, row 0 at the top.

TOOLS:
• puzzle_state - current grid, blank position, move count, possible moves
• move - one move; reports the tile that slid
• bulk_move - up to 50 moves; stops at the first rejected move or on solve
• new_game - shuffle a fresh puzzle (1000 random legal moves from solved)
• move_history - accepted moves, newest first by default
• list_configs - available configurations

STRATEGY TIPS:
• Solve the top row, then the second row, then the last two rows column by column
• Watch the Manhattan sum in puzzle_state; it reaches 0 only when solved
• Use bulk_move for cycles you have planned, single moves when exploring`

	return mcp.NewToolResultText(instructions), nil
}

// maxIntArg bounds integer arguments; JSON numbers arrive as float64
const maxIntArg = 1<<31 - 1

// intArg reads an optional whole-number argument. Missing means 0.
func intArg(args map[string]interface{}, key string) (int, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return 0, nil
	}
	v, ok := raw.(float64)
	if !ok {
		return 0, fmt.Errorf("%s must be a number, got %T", key, raw)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) || math.Abs(v) > maxIntArg {
		return 0, fmt.Errorf("%s must be a whole number between %d and %d", key, -maxIntArg, maxIntArg)
	}
	return int(v), nil
}

func stringSlice(raw interface{}) ([]string, error) {
	switch v := raw.(type) {
	case []string:
		return v, nil
	case []interface{}:
		moves := make([]string, 0, len(v))
		for i, m := range v {
			move, ok := m.(string)
			if !ok {
				return nil, fmt.Errorf("move %d is not a string", i+1)
			}
			moves = append(moves, move)
		}
		return moves, nil
	case nil:
		return nil, errors.New("moves is required")
	default:
		return nil, fmt.Errorf("moves must be an array, got %T", raw)
	}
}
