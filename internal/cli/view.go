package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/fmckeogh/isla/pkg/io"
)

// newViewCmd creates the view command: an interactive picker over the
// document's candidate executions followed by a render of the chosen one.
func newViewCmd() *cobra.Command {
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Interactively pick a candidate execution and render it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if opts.format == "" {
				opts.format = cfg.Format
			}
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			return runView(cmd, args[0], &opts, cfg)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file, or - for stdout")
	cmd.Flags().StringVarP(&opts.relations, "relations", "r", "", "comma-separated relations to draw, in draw order")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: svg (default), dot, png")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the rendered-artifact cache")

	return cmd
}

// runView shows the picker, then delegates to the render pipeline with the
// chosen execution index.
func runView(cmd *cobra.Command, input string, opts *renderOpts, cfg Config) error {
	execs, err := io.ImportJSON(input)
	if err != nil {
		return err
	}

	p := tea.NewProgram(NewExecutionListModel(execs))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run picker: %w", err)
	}

	m, ok := final.(ExecutionListModel)
	if !ok || m.Selected < 0 {
		printInfo("No execution selected")
		return nil
	}

	opts.execution = m.Selected
	return runRender(cmd.Context(), input, opts, cfg)
}
