package generator

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xll-gen/embedgen/internal/render"
	"github.com/xll-gen/embedgen/internal/textenc"
)

// Stdio is the path that selects stdin for input and stdout for output.
const Stdio = "-"

var (
	// ErrInvalidArguments reports a job that cannot be run as given.
	ErrInvalidArguments = errors.New("invalid arguments")
	// ErrInputRead reports a failure to read the input.
	ErrInputRead = errors.New("input read error")
	// ErrOutputWrite reports a failure to write the output.
	ErrOutputWrite = errors.New("output write error")
	// ErrOutputExists reports an existing output file that was not replaced.
	ErrOutputExists = fmt.Errorf("%w: output file already exists", ErrOutputWrite)
)

// Job describes one input file to embed.
type Job struct {
	// Input is the file to embed, or Stdio.
	Input string
	// Output is the header to write. Empty derives it from Input; Stdio writes to stdout.
	Output string
	// Render holds the formatting options. An empty Symbol is derived from Input.
	Render render.Options
	// Encoding names the text-mode input encoding. Ignored in binary mode.
	Encoding string
	// LineEnding terminates every output line. Empty means "\n".
	LineEnding string
}

// Options contains process-level settings for Generate.
type Options struct {
	// Force replaces an existing output file.
	Force bool
	// Confirm is consulted when the output exists and Force is false.
	// A nil Confirm refuses to overwrite.
	Confirm func(path string) bool
	// Stdin and Stdout back the Stdio path. Nil means os.Stdin and os.Stdout.
	Stdin  io.Reader
	Stdout io.Writer
	// Cwd is the directory derived output paths are placed in. Empty means the working directory.
	Cwd string
}

// Result summarises a completed run.
type Result struct {
	Input    string
	Output   string
	Symbol   string
	Bytes    int
	Lines    int
	// Replaced is set when an existing output file was overwritten.
	Replaced bool
}

// Generate reads the input, renders it and writes the header.
// Nothing is written unless rendering succeeds.
//
// Parameters:
//   - job: The input, output and formatting options.
//   - opts: Process-level settings.
//
// Returns:
//   - *Result: A summary of the written header.
//   - error: An error matching ErrInvalidArguments, ErrInputRead, ErrOutputWrite,
//     render.ErrInvalidOptions or render.ErrEncoding.
func Generate(job Job, opts Options) (*Result, error) {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}

	resolved, err := resolve(job, opts)
	if err != nil {
		return nil, err
	}
	job = resolved

	data, err := readInput(job.Input, opts.Stdin)
	if err != nil {
		return nil, err
	}
	slog.Debug("read input", "path", job.Input, "bytes", len(data))

	text := data
	if job.Render.Mode == render.ModeText {
		text, err = textenc.Decode(data, job.Encoding)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", job.Input, err)
		}
	}

	out, err := render.Render(text, job.Render)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", job.Input, err)
	}
	slog.Debug("rendered header", "symbol", job.Render.Symbol, "style", job.Render.Style, "lines", len(out))

	replaced, err := writeOutput(job.Output, out.Bytes(job.LineEnding), opts)
	if err != nil {
		return nil, err
	}
	slog.Debug("wrote output", "path", job.Output, "replaced", replaced)

	return &Result{
		Input:    job.Input,
		Output:   job.Output,
		Symbol:   job.Render.Symbol,
		Bytes:    len(text),
		Lines:    len(out),
		Replaced: replaced,
	}, nil
}

// resolve fills in derived defaults and validates the job before any I/O.
func resolve(job Job, opts Options) (Job, error) {
	if job.Input == "" {
		return job, fmt.Errorf("%w: input file path is required", ErrInvalidArguments)
	}
	fromStdin := job.Input == Stdio

	if job.Render.Symbol == "" {
		if fromStdin {
			return job, fmt.Errorf("%w: a symbol name is required when reading from stdin", ErrInvalidArguments)
		}
		job.Render.Symbol = DeriveSymbol(job.Input)
	}
	if job.Render.Source == "" {
		if fromStdin {
			job.Render.Source = "stdin"
		} else {
			job.Render.Source = filepath.Base(job.Input)
		}
	}

	job.Render = job.Render.Resolve()
	if err := job.Render.Validate(); err != nil {
		return job, err
	}

	if job.Render.Mode == render.ModeText {
		enc, err := textenc.Normalize(job.Encoding)
		if err != nil {
			return job, fmt.Errorf("%w: %w", ErrInvalidArguments, err)
		}
		job.Encoding = enc
	}

	if job.LineEnding == "" {
		job.LineEnding = "\n"
	}

	if job.Output == "" {
		if fromStdin {
			job.Output = Stdio
		} else {
			cwd := opts.Cwd
			if cwd == "" {
				wd, err := os.Getwd()
				if err != nil {
					return job, fmt.Errorf("%w: working directory is unavailable: %w", ErrInvalidArguments, err)
				}
				cwd = wd
			}
			job.Output = DeriveOutputPath(job.Input, cwd)
		}
	}
	return job, nil
}
