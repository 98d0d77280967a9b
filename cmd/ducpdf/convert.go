package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ducflair/ducpdf"
	"github.com/ducflair/ducpdf/fs"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Open    ducpdf.OpenFunc
	Encoder ducpdf.Encoder
	Decoder ducpdf.Decoder
	Writer  *fs.Writer
}

// ConvertCmd converts one PDF document into a DUC container.
type ConvertCmd struct {
	Input     string
	Output    string
	OutputDir string
	DumpJSON  bool
}

// Run executes the convert command.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	output := c.Output
	if output == "" {
		output = fs.OutputPath(c.Input, c.OutputDir)
	}
	output = ducpdf.OutputPath(output)

	fmt.Fprintf(deps.Stdout, "Converting %s to %s...\n", c.Input, output)

	var count int
	var records []ducpdf.DebugRecord
	err := ducpdf.WithSource(deps.Ctx, deps.Open, c.Input, func(ctx context.Context, src ducpdf.PageSource) error {
		conv := ducpdf.NewConverter(src)

		data, n, err := conv.Encode(ctx, deps.Encoder)
		if err != nil {
			return err
		}
		count = n

		written, err := deps.Writer.WriteContainer(output, data)
		if err != nil {
			return fmt.Errorf("failed to write %s: %w", output, err)
		}
		output = written
		fmt.Fprintf(deps.Stdout, "Saved DUC file to %s\n", output)

		if !c.DumpJSON {
			return nil
		}

		// Records need the open source; the dump is written after validation.
		records, err = conv.DebugRecords(ctx)
		return err
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorMessage(err))
		return err
	}

	c.validate(deps, output, count)

	if !c.DumpJSON {
		return nil
	}

	jsonPath := fs.DebugPath(output)
	if err := deps.Writer.WriteDebugJSON(jsonPath, records); err != nil {
		err = fmt.Errorf("failed to write %s: %w", jsonPath, err)
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}
	fmt.Fprintf(deps.Stdout, "Dumped text extraction JSON to %s\n", jsonPath)
	return nil
}

// validate re-parses the written container. Failures are reported as
// warnings since the output has already been written.
func (c *ConvertCmd) validate(deps *Dependencies, path string, want int) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(deps.Stdout, "Warning: Could not validate DUC file: %v\n", err)
		return
	}

	doc, err := deps.Decoder.Decode(deps.Ctx, data)
	if err != nil {
		fmt.Fprintf(deps.Stdout, "Warning: Could not validate DUC file: %s\n", errorMessage(err))
		return
	}

	if len(doc.Elements) != want {
		fmt.Fprintf(deps.Stdout, "Warning: DUC file contains %d elements, expected %d\n", len(doc.Elements), want)
		return
	}

	fmt.Fprintf(deps.Stdout, "DUC file validated successfully. Contains %d elements.\n", len(doc.Elements))
}

// errorMessage returns the application message of err, or its full text
// for non-application errors.
func errorMessage(err error) string {
	if ducpdf.ErrorCode(err) == ducpdf.EINTERNAL {
		return err.Error()
	}
	return ducpdf.ErrorMessage(err)
}
