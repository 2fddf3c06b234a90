package main

import "github.com/xll-gen/embedgen/cmd"

// main is the entry point of the embedgen CLI application.
// It executes the root command which handles argument parsing and subcommand dispatch.
func main() {
	cmd.Execute()
}
