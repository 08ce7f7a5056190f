package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"pkt.systems/pslog"
	"pkt.systems/termling"
)

// NewRootCommand builds the root CLI command.
func NewRootCommand(loader *termling.Loader) *cobra.Command {
	var configFile string
	var shellPath string
	var termName string
	var logFile string

	v := loader.Viper()
	// Zero defaults keep the keys bound for env overrides while still
	// meaning "use the host terminal size" when nothing sets them.
	v.SetDefault("terminal.cols", 0)
	v.SetDefault("terminal.rows", 0)
	v.SetDefault("terminal.term", termling.DefaultTerminalTerm)
	v.SetDefault("log.file", termling.DefaultLogPath())

	cmd := &cobra.Command{
		Use:   "termling",
		Short: "termling runs a shell inside an emulated terminal",
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if configFile != "" {
				loader.SetConfigFile(configFile)
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loader.Load()
			if err != nil {
				return err
			}

			shellValue := shellPath
			if !cmd.Flags().Changed("shell") {
				shellValue = cfg.Session.Shell
			}
			termValue := termName
			if !cmd.Flags().Changed("term") {
				termValue = cfg.Terminal.Term
			}
			colsValue, rowsValue := gridSize(cmd.Flags(), cfg)
			logPath := logFile
			if !cmd.Flags().Changed("log-file") {
				logPath = cfg.Log.File
			}

			logger, closer, err := openSessionLogger(logPath)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := closer.Close(); cerr != nil {
					pslog.Ctx(cmd.Context()).Error("failed to close log file", "err", cerr)
				}
			}()
			logger = logger.With("component", "interactive")

			ctx := pslog.ContextWithLogger(cmd.Context(), logger)
			return termling.Run(ctx, termling.Options{
				Shell:  shellValue,
				Term:   termValue,
				Cols:   colsValue,
				Rows:   rowsValue,
				Logger: logger,
			})
		},
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")

	flags := cmd.Flags()
	flags.StringVar(&shellPath, "shell", "", "shell to run (default: login shell)")
	flags.StringVar(&termName, "term", termling.DefaultTerminalTerm, "TERM exported to the child")
	flags.Int("cols", 0, "terminal columns (0 = host size)")
	flags.Int("rows", 0, "terminal rows (0 = host size)")
	flags.StringVar(&logFile, "log-file", "", "log file path")

	cmd.AddCommand(newConfigCommand(loader))
	return cmd
}

// gridSize resolves the session grid size: an explicit flag wins, then
// the config file; zero means the host terminal size decides.
func gridSize(flags *pflag.FlagSet, cfg termling.Config) (cols, rows int) {
	cols = cfg.Terminal.Cols
	rows = cfg.Terminal.Rows
	if flags.Changed("cols") {
		cols, _ = flags.GetInt("cols")
	}
	if flags.Changed("rows") {
		rows, _ = flags.GetInt("rows")
	}
	return cols, rows
}
