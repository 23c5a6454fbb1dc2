package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/AntonioJCosta/stocker/internal/core/commands"
	"github.com/AntonioJCosta/stocker/internal/handlers/ui"
	"github.com/spf13/cobra"
)

const welcome = "Welcome to Stocker. Type \"help\" to see the available commands."

// NewShellCommand creates the 'shell' subcommand.
func NewShellCommand(state *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive shell (default).",
		Long: `Reads commands line by line until "exit" or end of input. Commands that fail
to save are reported and the shell keeps running.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShell(cmd, state)
		},
	}
}

func runShell(cmd *cobra.Command, state *app) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.HeaderColor(welcome))
	return repl(cmd.InOrStdin(), out, state.dispatcher, state.printer, state.cfg.UI.Prompt)
}

// repl dispatches every line read from in until an exit command or EOF.
func repl(in io.Reader, out io.Writer, dispatcher Dispatcher, printer *ui.Printer, prompt string) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, ui.PromptColor(prompt))
		if !scanner.Scan() {
			fmt.Fprintln(out)
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("reading input: %w", err)
			}
			return nil
		}

		cmd, result, err := dispatcher.Dispatch(scanner.Text())
		if err != nil {
			printer.PrintError(err)
		} else {
			printer.PrintResult(result)
		}
		if commands.IsExit(cmd) {
			return nil
		}
	}
}
