package cli

import (
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// NewExecCommand creates the 'exec' subcommand.
func NewExecCommand(state *app, words []string) *cobra.Command {
	return &cobra.Command{
		Use:   "exec <command line...>",
		Short: "Run a single shell command and exit.",
		Long: `Joins the arguments into one command line and runs it, for example:
  stocker exec list
  stocker exec -- addToCart /n Aspirin /q 2
Use "--" before lines that contain arguments starting with a dash.`,
		Example:           `  stocker exec add /n Aspirin /d 2025-01-01 /s SN123 /q 10`,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: completeWords(words),
		RunE: func(_ *cobra.Command, args []string) error {
			_, result, err := state.dispatcher.Dispatch(strings.Join(args, " "))
			if err != nil {
				return err
			}
			state.printer.PrintResult(result)
			return nil
		},
	}
}

// completeWords completes the first exec argument with the shell's command
// words. Later arguments are free text.
func completeWords(words []string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	sorted := append([]string(nil), words...)
	sort.Strings(sorted)
	return func(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		var matches []string
		for _, w := range sorted {
			if strings.HasPrefix(w, toComplete) {
				matches = append(matches, w)
			}
		}
		return matches, cobra.ShellCompDirectiveNoFileComp
	}
}
