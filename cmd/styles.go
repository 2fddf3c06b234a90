package cmd

import (
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/xll-gen/embedgen/internal/render"
)

// stylesCmd represents the styles command.
var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List the supported declaration styles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		runStyles(cmd.OutOrStdout())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stylesCmd)
}

func runStyles(w io.Writer) {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.AppendHeader(table.Row{"Style", "Declaration", "Element", "Includes", "Default for"})
	for _, s := range render.Styles() {
		includes := make([]string, len(s.Includes))
		for i, inc := range s.Includes {
			includes[i] = "<" + inc + ">"
		}
		tbl.AppendRow(table.Row{s.Style, s.Declaration, s.Element, strings.Join(includes, " "), s.DefaultFor})
	}
	tbl.Render()
}
