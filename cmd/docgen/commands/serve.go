package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/docfoundry/docgen-mcp/config"
	"github.com/docfoundry/docgen-mcp/errors"
	"github.com/docfoundry/docgen-mcp/generate"
	"github.com/docfoundry/docgen-mcp/logger"
	"github.com/docfoundry/docgen-mcp/mcpserver"
	"github.com/docfoundry/docgen-mcp/server"
	"github.com/docfoundry/docgen-mcp/storage"
)

// ServeCmd starts the MCP server
var ServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP document generation server",
	Long: `Start the MCP server for resume and cover letter generation.

By default the server speaks MCP over stdio and writes generated PDFs to
the output directory. With --http (or a PORT environment variable) it
serves MCP over streamable HTTP instead and hands out short-lived
download links for generated PDFs.`,
	RunE: runServe,
}

var (
	serveHTTP    bool
	servePort    int
	serveBaseURL string
	serveOutput  string
)

func init() {
	ServeCmd.Flags().BoolVar(&serveHTTP, "http", false, "Serve MCP over HTTP instead of stdio")
	ServeCmd.Flags().IntVar(&servePort, "port", 0, "HTTP port (overrides config)")
	ServeCmd.Flags().StringVar(&serveBaseURL, "base-url", "", "Public base URL for download links (overrides config)")
	ServeCmd.Flags().StringVar(&serveOutput, "output", "", "Output directory for stdio-mode PDFs (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	// PORT in the environment implies HTTP mode, the convention most
	// container platforms use
	httpMode := serveHTTP
	if portEnv := os.Getenv("PORT"); portEnv != "" {
		port, err := strconv.Atoi(portEnv)
		if err != nil {
			return errors.Newf("invalid PORT environment variable %q", portEnv)
		}
		httpMode = true
		cfg.Server.Port = port
	}
	if servePort != 0 {
		cfg.Server.Port = servePort
	}
	if serveBaseURL != "" {
		cfg.Server.BaseURL = serveBaseURL
	}
	if serveOutput != "" {
		cfg.Output.Dir = serveOutput
	}

	if httpMode {
		return serveOverHTTP(cfg)
	}
	return serveOverStdio(cfg)
}

func serveOverStdio(cfg *config.Config) error {
	generator := generate.NewGenerator(generate.Options{
		TypstBinary:    cfg.Typeset.Binary,
		FontDir:        cfg.Typeset.FontDir,
		CompileTimeout: cfg.Typeset.CompileTimeout(),
		OutputDir:      cfg.Output.Dir,
	})

	logger.Infow("starting MCP server", "transport", "stdio", "output_dir", cfg.Output.Dir)
	if err := mcpserver.New(generator).ServeStdio(); err != nil {
		return errors.Wrap(err, "stdio server failed")
	}
	return nil
}

func serveOverHTTP(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := storage.NewArtifactStore(cfg.Storage.TTL())
	store.StartSweeper(ctx, cfg.Storage.SweepInterval())

	baseURL := cfg.Server.BaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("http://localhost:%d", cfg.Server.Port)
	}

	generator := generate.NewGenerator(generate.Options{
		TypstBinary:    cfg.Typeset.Binary,
		FontDir:        cfg.Typeset.FontDir,
		CompileTimeout: cfg.Typeset.CompileTimeout(),
		Store:          store,
		BaseURL:        baseURL,
	})

	router := server.NewRouter(store, mcpserver.New(generator).HTTPHandler())

	logger.Infow("starting MCP server",
		"transport", "http",
		"port", cfg.Server.Port,
		"base_url", baseURL,
		"artifact_ttl", cfg.Storage.TTL())
	return server.Run(ctx, cfg.Server.Port, router)
}
