package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docfoundry/docgen-mcp/config"
	"github.com/docfoundry/docgen-mcp/errors"
	"github.com/docfoundry/docgen-mcp/generate"
)

// GenerateCmd produces a PDF from a document JSON file
var GenerateCmd = &cobra.Command{
	Use:   "generate <file.json>",
	Short: "Generate a PDF from a document JSON file",
	Long: `Validate a resume or cover letter JSON file and compile it to a
typeset PDF. Requires the typst binary on PATH (or configured via
typeset.binary).`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

var (
	generateType     string
	generateOutput   string
	generateFilename string
)

func init() {
	GenerateCmd.Flags().StringVar(&generateType, "type", "resume", "Document type: resume or cover-letter")
	GenerateCmd.Flags().StringVar(&generateOutput, "output", "", "Output directory (overrides config)")
	GenerateCmd.Flags().StringVar(&generateFilename, "filename", "", "Output filename; derived from the document when omitted")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}
	if generateOutput != "" {
		cfg.Output.Dir = generateOutput
	}

	payload, err := readPayload(args[0])
	if err != nil {
		return err
	}

	generator := generate.NewGenerator(generate.Options{
		TypstBinary:    cfg.Typeset.Binary,
		FontDir:        cfg.Typeset.FontDir,
		CompileTimeout: cfg.Typeset.CompileTimeout(),
		OutputDir:      cfg.Output.Dir,
	})

	var result generate.GenerationResult
	switch generateType {
	case "resume":
		result = generator.GenerateResume(cmd.Context(), payload, generateFilename)
	case "cover-letter":
		result = generator.GenerateCoverLetter(cmd.Context(), payload, generateFilename)
	default:
		return errors.Newf("unknown document type %q (expected resume or cover-letter)", generateType)
	}

	if result.Status != generate.StatusSuccess {
		if len(result.ValidationErrors) > 0 {
			detail, _ := json.MarshalIndent(result.ValidationErrors, "", "  ")
			fmt.Fprintln(cmd.ErrOrStderr(), string(detail))
			return errors.NewInvalidRequestError("%s failed validation", args[0])
		}
		return errors.Wrap(errors.ErrCompileFailed, result.Message)
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.FilePath)
	return nil
}
