package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var formatFlag string

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Print the saved budget balance",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings()
		if err != nil {
			return err
		}
		ledger, err := openLedger(cfg.Ledger.DataFile)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Current budget: %s\n", FormatMoney(cfg.Ledger.Currency, ledger.Budget()))
		return nil
	},
}

type transactionView struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

var transactionsCmd = &cobra.Command{
	Use:     "transactions",
	Aliases: []string{"ls"},
	Short:   "List saved transactions in order",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings()
		if err != nil {
			return err
		}
		ledger, err := openLedger(cfg.Ledger.DataFile)
		if err != nil {
			return err
		}
		txs := ledger.Transactions()

		switch formatFlag {
		case "json":
			views := make([]transactionView, len(txs))
			for i, t := range txs {
				views[i] = transactionView{Name: t.Name, Amount: t.Amount.InexactFloat64()}
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(views)
		case "text":
			out := cmd.OutOrStdout()
			writeTransactions(out, newStyles(out), cfg.Ledger.Currency, txs)
			return nil
		default:
			return fmt.Errorf("unknown format %q (want text or json)", formatFlag)
		}
	},
}

func init() {
	transactionsCmd.Flags().StringVarP(&formatFlag, "format", "f", "text", "Output format: text or json")
	RootCmd.AddCommand(balanceCmd, transactionsCmd)
}
