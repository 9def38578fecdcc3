package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/docfoundry/docgen-mcp/document"
	"github.com/docfoundry/docgen-mcp/errors"
)

// ValidateCmd checks a document JSON file without generating a PDF
var ValidateCmd = &cobra.Command{
	Use:   "validate <file.json>",
	Short: "Validate a document JSON file",
	Long: `Validate a resume or cover letter JSON file against the document
schema and print the result. Errors carry exact field paths like
work[0].position.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

var validateType string

func init() {
	ValidateCmd.Flags().StringVar(&validateType, "type", "resume", "Document type: resume or cover-letter")
}

func runValidate(cmd *cobra.Command, args []string) error {
	payload, err := readPayload(args[0])
	if err != nil {
		return err
	}

	var result document.ValidationResult
	switch validateType {
	case "resume":
		result = document.ValidateResume(payload)
	case "cover-letter":
		result = document.ValidateCoverLetter(payload)
	default:
		return errors.Newf("unknown document type %q (expected resume or cover-letter)", validateType)
	}

	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to format validation result")
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(output))

	if !result.Valid() {
		return errors.Newf("%s failed validation with %d error(s)", args[0], len(result.Errors))
	}
	return nil
}

func readPayload(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, errors.Wrapf(err, "%s is not valid JSON", path)
	}
	return payload, nil
}
