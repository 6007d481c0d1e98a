// Package main provides the CLI entry point for exheader-go.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/exheader-go/pkg/exheader"
)

type cliOptions struct {
	outputPath   string
	save         bool
	configPath   string
	sheet        string
	usePrintArea bool
	verbose      bool
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var cli cliOptions

	rootCmd := &cobra.Command{
		Use:   "exheader [input.xlsx]",
		Short: "Translate a spreadsheet page header design into a template document",
		Long: `exheader-go reads the cell values, merges, fonts, fills, borders and
alignment of an Excel header design and outputs the equivalent
template.format.page_header YAML document.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], cli, stdout, stderr)
		},
		SilenceUsage: true,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.Flags().StringVarP(&cli.outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&cli.save, "save", false, "Write the document next to the input as <name>.yaml")
	rootCmd.Flags().StringVar(&cli.configPath, "config", "", "YAML config file with style defaults")
	rootCmd.Flags().StringVar(&cli.sheet, "sheet", "", "Sheet to translate (default: active sheet)")
	rootCmd.Flags().BoolVar(&cli.usePrintArea, "print-area", false, "Clip translation to the sheet's print area")
	rootCmd.Flags().BoolVarP(&cli.verbose, "verbose", "v", false, "Enable debug logging")

	return rootCmd
}

func run(cmd *cobra.Command, inputPath string, cli cliOptions, stdout, stderr io.Writer) error {
	level := slog.LevelInfo
	if cli.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Validate input file exists
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	opts := exheader.DefaultOptions()
	if cli.configPath != "" {
		var err error
		if opts, err = exheader.LoadConfig(cli.configPath); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("sheet") {
		opts.Sheet = cli.sheet
	}
	if cmd.Flags().Changed("print-area") {
		opts.UsePrintArea = cli.usePrintArea
	}
	opts.Logger = logger

	result, err := exheader.Translate(inputPath, opts)
	if err != nil {
		return fmt.Errorf("translation failed: %w", err)
	}

	for _, w := range result.Warnings {
		logger.Warn(w.String(), "cell", w.Cause.String(), "affected", w.Affected.String())
	}

	outputPath := cli.outputPath
	if outputPath == "" && cli.save {
		outputPath = exheader.OutputFileName(inputPath)
	}

	// Write output
	if outputPath != "" {
		if err := os.WriteFile(outputPath, []byte(result.Document), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		logger.Info("document written", "sheet", result.SheetName, "file", outputPath)
		return nil
	}

	_, err = fmt.Fprintln(stdout, result.Document)
	return err
}
