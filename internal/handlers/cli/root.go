package cli

import (
	"fmt"

	"github.com/AntonioJCosta/stocker/internal/config"
	"github.com/AntonioJCosta/stocker/internal/core/commands"
	"github.com/AntonioJCosta/stocker/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// Dispatcher runs one input line. *dispatch.Service satisfies it.
type Dispatcher interface {
	Dispatch(line string) (commands.Command, commands.Result, error)
}

// Bootstrap builds the dispatcher once configuration is known.
type Bootstrap func(cfg *config.Config) (Dispatcher, error)

// app is what the subcommands share after the root pre-run.
type app struct {
	cfg        *config.Config
	dispatcher Dispatcher
	printer    *ui.Printer
}

type rootFlags struct {
	configFile  string
	dataFile    string
	catalogFile string
	logLevel    string
	noColor     bool
}

// NewRootCommand creates the stocker command tree. Running it without a
// subcommand starts the interactive shell. words are the shell's command
// words, offered as completions for exec.
func NewRootCommand(version string, words []string, bootstrap Bootstrap) *cobra.Command {
	var flags rootFlags
	state := &app{}

	rootCmd := &cobra.Command{
		Use:   "stocker",
		Short: "stocker is a command shell for a pharmacy's drug inventory.",
		Long: `stocker keeps an in-memory drug inventory, a shopping cart and a vendor
directory, driven by commands such as "add /n Aspirin /d 2025-01-01 /s SN123 /q 10".
The inventory is loaded from and saved to a flat data file.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return state.init(cmd, flags, bootstrap)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShell(cmd, state)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.configFile, "config", "", "Config file (default is ./stocker.yaml or $HOME/.stocker/stocker.yaml).")
	pf.StringVar(&flags.dataFile, "data-file", "", "Drug data file loaded at start and written by save (default drugs.txt).")
	pf.StringVar(&flags.catalogFile, "catalog", "", "YAML catalog of predefined vendors, thresholds and descriptions.")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn or error.")
	pf.BoolVar(&flags.noColor, "no-color", false, "Disable colored output.")

	rootCmd.AddCommand(NewShellCommand(state))
	rootCmd.AddCommand(NewExecCommand(state, words))

	return rootCmd
}

func (a *app) init(cmd *cobra.Command, flags rootFlags, bootstrap Bootstrap) error {
	v, err := config.New(flags.configFile)
	if err != nil {
		return err
	}
	pf := cmd.Root().PersistentFlags()
	for key, name := range map[string]string{
		"dataFile":    "data-file",
		"catalogFile": "catalog",
		"log.level":   "log-level",
	} {
		if err := v.BindPFlag(key, pf.Lookup(name)); err != nil {
			return fmt.Errorf("binding flag --%s: %w", name, err)
		}
	}

	cfg, err := config.FromViper(v)
	if err != nil {
		return err
	}
	if flags.noColor {
		cfg.UI.Color = false
	}
	ui.SetColor(cfg.UI.Color)

	dispatcher, err := bootstrap(cfg)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.dispatcher = dispatcher
	a.printer = ui.NewPrinter(cmd.OutOrStdout(), cfg.UI.Tables)
	return nil
}
