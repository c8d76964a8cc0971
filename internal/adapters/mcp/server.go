// Package mcp exposes the generator as an MCP server so assistants can
// request counterpoint over stdio.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	mathrand "math/rand"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/descant"
	"github.com/aretw0/descant/pkg/notation"
	"github.com/aretw0/descant/pkg/theory"
)

// GenerateResponse is the structured result of the generate_counterpoint tool.
type GenerateResponse struct {
	Cantus       []string `json:"cantus" jsonschema_description:"The fixed voice, one pitch per element"`
	Counterpoint []string `json:"counterpoint" jsonschema_description:"The generated voice, aligned with the cantus"`
	Steps        int      `json:"steps" jsonschema_description:"Search steps spent"`
}

// Server exposes descant as an MCP server.
type Server struct {
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(logger *slog.Logger) *Server {
	s := &Server{
		logger:    logger,
		mcpServer: server.NewMCPServer("descant-mcp", strings.TrimSpace(descant.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	generateTool := mcp.NewTool("generate_counterpoint",
		mcp.WithDescription("Generate a first-species counterpoint line against a cantus firmus. Pitches use letter, optional # or b, and octave digit, e.g. \"c4 d4 e4 d4 c4\"."),
		mcp.WithString("cantus", mcp.Required(), mcp.Description("Whitespace-separated cantus firmus pitches")),
		mcp.WithString("root", mcp.Required(), mcp.Description("Scale root note, e.g. \"c\" or \"eb\"")),
		mcp.WithString("mode", mcp.Required(), mcp.Description("Scale mode name, e.g. \"ionian\" or \"harmonic minor\"")),
		mcp.WithString("direction", mcp.Required(), mcp.Description("Where the counterpoint sits relative to the cantus: \"above\" or \"below\"")),
		mcp.WithString("seed", mcp.Description("Integer seed for reproducible output (optional)")),
		mcp.WithOutputSchema[GenerateResponse](),
	)
	s.mcpServer.AddTool(generateTool, mcp.NewStructuredToolHandler(s.handleGenerate))

	s.mcpServer.AddTool(mcp.NewTool("list_modes",
		mcp.WithDescription("List the scale modes the generator understands."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		jsonBytes, _ := json.Marshal(modeNames())
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})
}

func (s *Server) handleGenerate(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (GenerateResponse, error) {
	cantusArg, _ := args["cantus"].(string)
	rootArg, _ := args["root"].(string)
	modeArg, _ := args["mode"].(string)
	dirArg, _ := args["direction"].(string)

	cantus, err := notation.Parse(cantusArg)
	if err != nil {
		return GenerateResponse{}, fmt.Errorf("invalid cantus: %w", err)
	}

	root, err := notation.ParseNote(rootArg)
	if err != nil {
		return GenerateResponse{}, fmt.Errorf("invalid root: %w", err)
	}

	mode, err := theory.ParseMode(modeArg)
	if err != nil {
		return GenerateResponse{}, err
	}

	dir, err := theory.ParseDirection(dirArg)
	if err != nil {
		return GenerateResponse{}, err
	}

	opts := []descant.Option{descant.WithLogger(s.logger)}
	if seedStr, ok := args["seed"].(string); ok && seedStr != "" {
		seed, err := strconv.ParseInt(seedStr, 10, 64)
		if err != nil {
			return GenerateResponse{}, fmt.Errorf("invalid seed: %w", err)
		}
		opts = append(opts, descant.WithRand(mathrand.New(mathrand.NewSource(seed))))
	}

	scale := theory.Scale{Root: root, Mode: mode}
	result, err := descant.New(opts...).Generate(ctx, cantus, scale, dir)
	if err != nil {
		s.logger.Warn("MCP generate failed", "error", err)
		return GenerateResponse{}, fmt.Errorf("generation failed: %w", err)
	}

	score := descant.NewScore("", result, scale, dir)
	return GenerateResponse{
		Cantus:       score.Cantus,
		Counterpoint: score.Counterpoint,
		Steps:        score.Steps,
	}, nil
}

func (s *Server) registerResources() {
	// EXPOSE: descant://modes
	s.mcpServer.AddResource(mcp.NewResource("descant://modes", "Supported Scale Modes",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, _ := json.Marshal(modeNames())

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "descant://modes",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}

func modeNames() []string {
	names := make([]string, 0)
	for _, m := range theory.Modes() {
		names = append(names, m.String())
	}
	return names
}
