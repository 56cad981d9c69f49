package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet"
	sheetsvc "github.com/KirkDiggler/rpg-sheet/internal/services/sheet"
)

const defaultTemplate = "character_template.html"

func newRootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   "rpg-sheet <document> [output] [template]",
		Short: "Render a character document into an HTML character sheet",
		Long: `Render a character document into an HTML character sheet.

ARGUMENTS:
    <document>    (Required) Path to the character JSON or YAML file
    [output]      (Optional) Output HTML file (default: <document>.html)
    [template]    (Optional) Template file (default: character_template.html)`,
		Example: `  rpg-sheet my_character.json
  rpg-sheet my_character.json my_sheet.html
  rpg-sheet my_character.json my_sheet.html custom_template.html
  rpg-sheet serve --addr :8080`,
		Args:          cobra.MaximumNArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setupLogging(logLevel)
		},
		RunE: runGenerate,
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	cmd.AddCommand(newServeCmd())

	return cmd
}

func setupLogging(level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return errors.InvalidArgumentf("invalid log level %q", level)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
	return nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return errors.InvalidArgument("Missing required argument <document>\n" +
			"Usage: " + cmd.UseLine() + "\n" +
			"Use --help for more information")
	}

	documentPath := args[0]
	outputPath := defaultOutputPath(documentPath)
	if len(args) > 1 {
		outputPath = args[1]
	}
	templatePath := defaultTemplate
	if len(args) > 2 {
		templatePath = args[2]
	}

	if !fileExists(documentPath) {
		return errors.MissingFilef("JSON file not found: %s", documentPath)
	}
	if !fileExists(templatePath) {
		return errors.MissingFilef("Template file not found: %s", templatePath)
	}

	eng, err := engine.New(nil)
	if err != nil {
		return err
	}
	orch, err := sheet.NewOrchestrator(&sheet.Config{Engine: eng})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Loading character data from: %s\n", documentPath)
	fmt.Fprintf(out, "Generating character sheet using template: %s\n", templatePath)

	result, err := orch.Generate(cmd.Context(), &sheetsvc.GenerateInput{
		DocumentPath: documentPath,
		TemplatePath: templatePath,
		OutputPath:   outputPath,
	})
	if err != nil {
		return errors.Wrapf(err, "generating character sheet: %s", errors.GetMessage(err))
	}

	fmt.Fprintf(out, "Character sheet generated successfully: %s\n", result.OutputPath)
	return nil
}

// defaultOutputPath swaps the document extension for .html
func defaultOutputPath(documentPath string) string {
	return strings.TrimSuffix(documentPath, filepath.Ext(documentPath)) + ".html"
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
