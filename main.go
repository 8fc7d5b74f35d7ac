package main

import (
	"gui-factory/cmd" // Import the cmd package which contains the CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// gui-factory is a small demonstration of the Abstract Factory pattern:
//   - Prompts for a platform name (Windows or MacOS) and reads one line from standard input
//   - Selects the factory for that platform; each factory only creates widgets of its own family
//   - Creates a button and a checkbox through the factory and renders both as text lines
//
// Error handling strategy:
//   - An unknown platform is reported as "Error: ..." on standard output
//   - Any other failure is reported as "An unexpected error occurred: ..."
//   - Both are expected outcomes, so the process always exits with status zero
func main() {
	cmd.Execute()
}
