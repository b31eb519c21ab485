// Package cli implements the isla command-line interface.
//
// This package provides commands for inspecting candidate executions
// produced by a memory-model evaluator and rendering them as graphs. The
// CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - render: Serialize an execution to DOT, or lay it out as SVG/PNG
//   - show: Summarize the candidate executions in a document
//   - view: Interactively pick a candidate execution, then render it
//   - cache: Manage the rendered-artifact cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
//
// # Example
//
//	import "github.com/fmckeogh/isla/internal/cli"
//
//	func main() {
//	    if err := cli.Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli
