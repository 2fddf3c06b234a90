package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Output receives status lines. Stdout is left free for generated headers.
var Output io.Writer = color.Error

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	cyan   = color.New(color.FgCyan)
)

func PrintSuccess(label, detail string) {
	fmt.Fprintf(Output, "  %s %-15s %s\n", green.Sprint("✔"), label, green.Sprint(detail))
}

func PrintWarning(label, detail string) {
	fmt.Fprintf(Output, "  %s %-15s %s\n", yellow.Sprint("!"), label, yellow.Sprint(detail))
}

// Confirm asks a yes/no question on Output and reads the answer from in.
// Anything but "y" or "yes" counts as no.
func Confirm(in io.Reader, label string) bool {
	fmt.Fprintf(Output, "%s %s ", label, cyan.Sprint("[y/N]"))

	reader := bufio.NewReader(in)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)

	return strings.EqualFold(input, "y") || strings.EqualFold(input, "yes")
}
