package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/capital/journal"
)

var ledgerCmd = &cobra.Command{
	Use:   "ledger",
	Short: "Query the loan and day ledger",
	Long: `Show ledger records from the SQLite journal in Org-mode format.

Subcommands:
  loans  - Loans taken, forced and repaid
  days   - End-of-day balances

Examples:
  capital ledger loans --limit 10
  capital ledger loans --loan 9QXA7K2M
  capital ledger days`,
}

var ledgerLoansCmd = &cobra.Command{
	Use:   "loans",
	Short: "List loan events",
	Args:  cobra.NoArgs,
	RunE:  runLedgerLoans,
}

var ledgerDaysCmd = &cobra.Command{
	Use:   "days",
	Short: "List end-of-day balances",
	Args:  cobra.NoArgs,
	RunE:  runLedgerDays,
}

var (
	ledgerLimit  int
	ledgerLoanID string
)

func init() {
	rootCmd.AddCommand(ledgerCmd)
	ledgerCmd.AddCommand(ledgerLoansCmd)
	ledgerCmd.AddCommand(ledgerDaysCmd)

	ledgerCmd.PersistentFlags().IntVar(&ledgerLimit, "limit", 20, "most recent records to show (0 for all)")
	ledgerLoansCmd.Flags().StringVar(&ledgerLoanID, "loan", "", "show the history of one loan (full or short id)")
}

func openLedger() (*journal.SQLiteJournal, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if cfg.Journal.Type != "sqlite" {
		return nil, fmt.Errorf("ledger queries need journal.type sqlite (configured: %q)", cfg.Journal.Type)
	}
	j, err := journal.NewSQLite(cfg.Journal.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	return j, nil
}

func runLedgerLoans(cmd *cobra.Command, args []string) error {
	j, err := openLedger()
	if err != nil {
		return err
	}
	defer j.Close()

	var recs []journal.LoanRecord
	if ledgerLoanID != "" {
		recs, err = loanHistory(j, ledgerLoanID)
	} else {
		recs, err = j.ListLoans(ledgerLimit)
	}
	if err != nil {
		return fmt.Errorf("query loans: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), journal.FormatLoansOrg(recs))
	return nil
}

// loanHistory accepts the short id printed elsewhere by resolving it
// against every loan in the ledger.
func loanHistory(j *journal.SQLiteJournal, arg string) ([]journal.LoanRecord, error) {
	all, err := j.ListLoans(0)
	if err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	var ids []string
	for _, r := range all {
		if !seen[r.LoanID] {
			seen[r.LoanID] = true
			ids = append(ids, r.LoanID)
		}
	}
	loanID, err := resolveID(ids, arg)
	if err != nil {
		return nil, err
	}
	return j.LoanHistory(loanID)
}

func runLedgerDays(cmd *cobra.Command, args []string) error {
	j, err := openLedger()
	if err != nil {
		return err
	}
	defer j.Close()

	recs, err := j.ListDays(ledgerLimit)
	if err != nil {
		return fmt.Errorf("query days: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), journal.FormatDaysOrg(recs))
	return nil
}
