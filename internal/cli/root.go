// Package cli implements the budgetly ledger commands.
package cli

import (
	"fmt"
	"os"

	"github.com/dafibh/budgetly/internal/config"
	"github.com/dafibh/budgetly/internal/repository/file"
	"github.com/dafibh/budgetly/internal/service"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	dataPath string
	verbose  bool
)

// RootCmd is the top-level command. Without a subcommand it runs the
// interactive menu.
var RootCmd = &cobra.Command{
	Use:          "budgetly",
	Short:        "Personal budget ledger",
	Long:         "Track a budget balance and its transactions in a local JSON file.",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogger(cmd)
	},
	RunE: runMenu,
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dataPath, "data", "d", "", "Ledger file (default: $BUDGETLY_DATA, config file, or "+config.DefaultDataFile+")")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")
}

func setupLogger(cmd *cobra.Command) {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
		Level(level).
		With().Timestamp().Logger()
}

// loadSettings resolves the CLI config with the --data flag taking precedence
func loadSettings() (config.CLIConfig, error) {
	cfg, err := config.LoadCLI()
	if err != nil {
		return cfg, err
	}
	if dataPath != "" {
		cfg.Ledger.DataFile = dataPath
	}
	return cfg, nil
}

// openLedger loads the persisted ledger. A corrupt file is an error; a
// missing one is an empty ledger.
func openLedger(path string) (*service.LedgerService, error) {
	repo := file.NewSnapshotRepository(path)
	ledger := service.NewLedgerService(repo)
	if err := ledger.Open(); err != nil {
		return nil, fmt.Errorf("loading ledger: %w", err)
	}
	log.Debug().Str("path", repo.Path()).Msg("Opened ledger")
	return ledger, nil
}

func runMenu(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	ledger, err := openLedger(cfg.Ledger.DataFile)
	if err != nil {
		return err
	}

	return NewMenu(ledger, cmd.InOrStdin(), cmd.OutOrStdout(), cfg.Ledger.Currency).Run()
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
