package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	islaerrors "github.com/fmckeogh/isla/pkg/errors"
	"github.com/fmckeogh/isla/pkg/io"
	"github.com/fmckeogh/isla/pkg/model"
)

// newShowCmd creates the show command, which summarizes the candidate
// executions in an evaluator document without rendering anything.
func newShowCmd() *cobra.Command {
	var lint bool

	cmd := &cobra.Command{
		Use:   "show [file]",
		Short: "Summarize the candidate executions in a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd.Context(), args[0], lint)
		},
	}

	cmd.Flags().BoolVar(&lint, "lint", false, "flag identifiers that would break the DOT output")

	return cmd
}

// runShow prints a one-block summary per candidate execution. With lint
// enabled it also flags identifiers the renderer would splice into DOT
// unescaped, since those surface only as Graphviz parse failures otherwise.
func runShow(ctx context.Context, input string, lint bool) error {
	execs, err := io.ImportJSON(input)
	if err != nil {
		return err
	}

	fmt.Println(StyleTitle.Render(fmt.Sprintf("%s: %d candidate executions", input, len(execs))))
	fmt.Println()

	for i, x := range execs {
		fmt.Printf("%s %s\n",
			StyleHighlight.Render(fmt.Sprintf("Execution %d:", i)),
			StyleValue.Render(fmt.Sprintf("%d events, %d threads", len(x.Events), len(x.ThreadIDs()))))

		if len(x.Relations) > 0 {
			parts := make([]string, len(x.Relations))
			for j, rel := range x.Relations {
				parts[j] = fmt.Sprintf("%s (%d)", rel.Name, len(rel.Edges))
			}
			fmt.Printf("  relations: %s\n", StyleValue.Render(strings.Join(parts, ", ")))
		}
		if len(x.Show) > 0 {
			fmt.Printf("  show hint: %s\n", StyleDim.Render(strings.Join(x.Show, ", ")))
		}

		if lint {
			lintExecution(i, x)
		}
		fmt.Println()
	}

	return nil
}

// lintExecution warns about identifiers that would break the DOT grammar.
func lintExecution(index int, x model.Execution) {
	for _, e := range x.Events {
		if err := islaerrors.ValidateEventName(e.Name); err != nil {
			printWarning("execution %d: %s", index, islaerrors.UserMessage(err))
		}
	}
	for _, rel := range x.Relations {
		if err := islaerrors.ValidateRelationName(rel.Name); err != nil {
			printWarning("execution %d: %s", index, islaerrors.UserMessage(err))
		}
	}
}
