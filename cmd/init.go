package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xll-gen/embedgen/internal/config"
	"github.com/xll-gen/embedgen/internal/templates"
	"github.com/xll-gen/embedgen/internal/ui"
)

var initForce bool

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a default " + config.FileName + " configuration file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.FileName
		if len(args) > 0 {
			path = args[0]
		}
		return runInit(path, initForce)
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing configuration file")
	rootCmd.AddCommand(initCmd)
}

// runInit writes the default configuration to path.
//
// Parameters:
//   - path: The configuration file to create.
//   - force: Whether an existing file may be replaced.
//
// Returns:
//   - error: An error if the file exists (and force is false) or cannot be written.
func runInit(path string, force bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		return err
	}

	if err := templates.Execute(f, "embedgen.yaml.tmpl", config.Default()); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	ui.PrintSuccess("Created", path)
	return nil
}
