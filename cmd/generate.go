package cmd

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/xll-gen/embedgen/internal/config"
	"github.com/xll-gen/embedgen/internal/generator"
	"github.com/xll-gen/embedgen/internal/render"
	"github.com/xll-gen/embedgen/internal/ui"
)

// generateFlags holds the raw values of the generate command's flags.
type generateFlags struct {
	input      string
	output     string
	symbol     string
	namespace  string
	mode       string
	binary     bool
	style      string
	lineWidth  int
	guard      string
	lineEnding string
	encoding   string
	force      bool
}

var genFlags generateFlags

// stdin is consulted for overwrite confirmation when it is a terminal.
var stdin io.Reader = os.Stdin

// generateCmd represents the generate command.
var generateCmd = &cobra.Command{
	Use:     "generate [input]",
	Aliases: []string{"gen"},
	Short:   "Generate a C++ header embedding the input file",
	Example: `  embedgen generate logo.png
  embedgen generate -i shader.glsl -n gfx::shaders -o include/shader.hpp
  cat blob.bin | embedgen generate -s blob -`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) > 1 {
			return fmt.Errorf("%w: expected at most one input file, got %d", generator.ErrInvalidArguments, len(args))
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		job, force, err := buildJob(cfg, genFlags, cmd.Flags().Changed, args)
		if err != nil {
			return err
		}
		return runGenerate(job, force)
	},
}

func init() {
	f := generateCmd.Flags()
	f.StringVarP(&genFlags.input, "input", "i", "", "Input file path ('-' for stdin)")
	f.StringVarP(&genFlags.output, "output", "o", "", "Output file path ('-' for stdout; default: <input name>.hpp in the working directory)")
	f.StringVarP(&genFlags.symbol, "symbol", "s", "", "Name of the C++ symbol (default: derived from the input file name)")
	f.StringVarP(&genFlags.namespace, "namespace", "n", "", "Namespace in which to put the symbol")
	f.StringVarP(&genFlags.mode, "mode", "m", "text", "Input mode (text, binary)")
	f.BoolVarP(&genFlags.binary, "binary", "b", false, "Shorthand for --mode binary (default: text mode)")
	f.StringVar(&genFlags.style, "style", "", "Declaration style (array, c-array, cstring, string-view; default depends on mode)")
	f.IntVarP(&genFlags.lineWidth, "line-width", "w", 0, "Literals per output line (default: 16 for arrays, 64 for strings)")
	f.StringVar(&genFlags.guard, "guard", "ifndef", "Include guard (ifndef, pragma)")
	f.StringVar(&genFlags.lineEnding, "line-ending", "lf", "Output line ending (lf, crlf, native)")
	f.StringVar(&genFlags.encoding, "encoding", "utf-8", "Text-mode input encoding")
	f.BoolVarP(&genFlags.force, "force", "f", false, "Overwrite the output file if it exists")
	rootCmd.AddCommand(generateCmd)
}

// buildJob merges the configuration file with the flags that were set
// explicitly on the command line.
//
// Parameters:
//   - c: The loaded project configuration.
//   - f: The raw flag values.
//   - changed: Reports whether a flag was set on the command line.
//   - args: Positional arguments.
//
// Returns:
//   - generator.Job: The job to run.
//   - bool: Whether an existing output may be replaced.
//   - error: An error matching generator.ErrInvalidArguments or render.ErrInvalidOptions.
func buildJob(c *config.Config, f generateFlags, changed func(string) bool, args []string) (generator.Job, bool, error) {
	var job generator.Job

	input := f.input
	if len(args) > 0 {
		if input != "" && input != args[0] {
			return job, false, fmt.Errorf("%w: input given both as --input %q and argument %q", generator.ErrInvalidArguments, input, args[0])
		}
		input = args[0]
	}
	if input == "" {
		return job, false, fmt.Errorf("%w: input file path is required (use --input or pass it as an argument)", generator.ErrInvalidArguments)
	}

	pick := func(flag, flagVal, cfgVal string) string {
		if changed(flag) {
			return flagVal
		}
		return cfgVal
	}

	modeName := pick("mode", f.mode, c.Render.Mode)
	if changed("binary") && f.binary {
		if changed("mode") && modeName != "binary" {
			return job, false, fmt.Errorf("%w: --binary conflicts with --mode %s", generator.ErrInvalidArguments, modeName)
		}
		modeName = "binary"
	}
	mode, err := render.ParseMode(modeName)
	if err != nil {
		return job, false, err
	}
	style, err := render.ParseStyle(pick("style", f.style, c.Render.Style))
	if err != nil {
		return job, false, err
	}
	guard, err := render.ParseGuard(pick("guard", f.guard, c.Render.Guard))
	if err != nil {
		return job, false, err
	}

	width := c.Render.LineWidth
	if changed("line-width") {
		width = f.lineWidth
	}

	lineEnding := pick("line-ending", f.lineEnding, c.Output.LineEnding)
	switch lineEnding {
	case "lf", "crlf", "native":
	default:
		return job, false, fmt.Errorf("%w: unknown line ending %q (allowed: lf, crlf, native)", generator.ErrInvalidArguments, lineEnding)
	}

	force := c.Output.Force
	if changed("force") {
		force = f.force
	}

	job = generator.Job{
		Input:  input,
		Output: f.output,
		Render: render.Options{
			Symbol:    f.symbol,
			Namespace: pick("namespace", f.namespace, c.Render.Namespace),
			Mode:      mode,
			Style:     style,
			LineWidth: width,
			Guard:     guard,
		},
		Encoding:   pick("encoding", f.encoding, c.Output.Encoding),
		LineEnding: config.LineEndingString(lineEnding, runtime.GOOS),
	}
	return job, force, nil
}

// runGenerate executes the job and reports the written file.
func runGenerate(job generator.Job, force bool) error {
	opts := generator.Options{Force: force}
	if !force && generator.IsTerminal(stdin) {
		opts.Confirm = func(path string) bool {
			return ui.Confirm(stdin, fmt.Sprintf("%s already exists. Overwrite?", path))
		}
	}

	res, err := generator.Generate(job, opts)
	if err != nil {
		return err
	}

	if res.Replaced {
		ui.PrintWarning("Replaced", res.Output)
	}
	if res.Output != generator.Stdio {
		ui.PrintSuccess("Generated", fmt.Sprintf("%s (%s, %d bytes)", res.Output, res.Symbol, res.Bytes))
	}
	return nil
}
