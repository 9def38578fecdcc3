package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/docfoundry/docgen-mcp/cmd/docgen/commands"
	"github.com/docfoundry/docgen-mcp/logger"
)

var rootCmd = &cobra.Command{
	Use:   "docgen",
	Short: "docgen - MCP server for typeset resume and cover letter PDFs",
	Long: `docgen generates professionally typeset resume and cover letter PDFs
from structured JSON, exposed to AI assistants over the Model Context
Protocol.

Available commands:
  serve     - Start the MCP server (stdio by default, --http for network mode)
  validate  - Validate a document JSON file and report field-level errors
  generate  - Generate a PDF from a document JSON file
  version   - Show version information

Examples:
  docgen serve                       # MCP over stdio, PDFs written locally
  docgen serve --http --port 3000    # MCP over HTTP with download links
  docgen validate resume.json        # Check a payload without generating
  docgen generate resume.json        # Produce resume.pdf in the current dir`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")
		if err := logger.Initialize(jsonLogs); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().Bool("json-logs", false, "Emit logs as JSON instead of console output")

	rootCmd.AddCommand(commands.ServeCmd)
	rootCmd.AddCommand(commands.ValidateCmd)
	rootCmd.AddCommand(commands.GenerateCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
