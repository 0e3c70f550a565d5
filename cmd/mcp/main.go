package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-with-go/advent-of-code/internal/mcpadapter"
	"github.com/povarna/generative-ai-with-go/advent-of-code/internal/setup"
	"github.com/povarna/generative-ai-with-go/advent-of-code/internal/setup/logger"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	_ = godotenv.Load()

	// stdout carries the MCP protocol, so logs go to stderr
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = logger.NewConsole(os.Getenv("LOG_LEVEL"))
	appLogger := log.Logger

	// Graceful shutdown on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := setup.LoadConfig()

	deps, err := setup.Wire(cfg, &appLogger)
	if err != nil {
		appLogger.Error().Err(err).Msg("Unable to load dependencies")
		os.Exit(1)
	}
	log.Logger = *deps.Logger

	server := createMCPServer(deps)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		// EOF / "server is closing" is expected when stdin closes
		if errors.Is(err, io.EOF) || strings.Contains(err.Error(), "server is closing") {
			appLogger.Debug().Err(err).Msg("MCP server stopped")
			return
		}
		appLogger.Error().Err(err).Msg("Failed to run mcp server")
		os.Exit(1)
	}
}

func createMCPServer(deps *setup.Dependencies) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    deps.Settings.MCP.Name,
			Version: deps.Settings.MCP.Version,
		}, nil,
	)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_puzzles",
		Description: "List the Advent of Code puzzles this server can solve",
	}, mcpadapter.NewListHandler(deps.Runner))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "solve_puzzle",
		Description: "Solve both parts of an Advent of Code puzzle from inline input text or a stored input file",
	}, mcpadapter.NewSolveHandler(deps.Runner))

	return server
}
