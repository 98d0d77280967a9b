package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/ducflair/ducpdf"
	"github.com/ducflair/ducpdf/fs"
	"github.com/ducflair/ducpdf/pdf"
	ducslog "github.com/ducflair/ducpdf/slog"
	"github.com/ducflair/ducpdf/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("ducpdf"),
		kong.Description("Convert the text of a PDF document into a DUC drawing"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	logger := slog.New(slog.DiscardHandler)
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	// Wire dependencies
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Open: func(path string) (ducpdf.PageSource, error) {
			src, err := pdf.Open(path)
			if err != nil {
				return nil, err
			}
			return ducslog.NewLoggingPageSource(src, logger), nil
		},
		Encoder: ducslog.NewLoggingEncoder(sqlite.NewEncoder(), logger),
		Decoder: ducslog.NewLoggingDecoder(sqlite.NewDecoder(), logger),
		Writer:  fs.NewWriter(),
	}

	cmd := &ConvertCmd{
		Input:     cli.Input,
		Output:    cli.Output,
		OutputDir: cli.OutputDir,
		DumpJSON:  cli.DumpJSON,
	}

	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Input     string `arg:"" required:"" help:"Path to the PDF file to convert"`
	Output    string `short:"o" help:"Output path (the .duc extension is appended if missing)"`
	OutputDir string `name:"output-dir" env:"DUCPDF_OUTPUT_DIR" help:"Directory for the output when --output is not set (default: next to the input)"`
	DumpJSON  bool   `name:"dump-json" help:"Dump extracted text elements as JSON for debugging"`
	Verbose   bool   `short:"v" help:"Log extraction and encoding details to stderr"`
}
