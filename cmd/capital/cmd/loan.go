package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/capital/internal/id"
	"github.com/rustyeddy/capital/sim"
)

var loanCmd = &cobra.Command{
	Use:   "loan",
	Short: "Take or repay loans",
	Long: `Borrow the current base amount or repay an outstanding loan.

Each outstanding loan raises the rate of the next one by one point.
Repaying debits the principal from capital.

Examples:
  capital loan take
  capital loan repay 9QXA7K2M`,
}

var loanTakeCmd = &cobra.Command{
	Use:   "take",
	Short: "Borrow the current base amount",
	Args:  cobra.NoArgs,
	RunE:  runLoanTake,
}

var loanRepayCmd = &cobra.Command{
	Use:   "repay <id>",
	Short: "Repay an outstanding loan",
	Args:  cobra.ExactArgs(1),
	RunE:  runLoanRepay,
}

func init() {
	rootCmd.AddCommand(loanCmd)
	loanCmd.AddCommand(loanTakeCmd)
	loanCmd.AddCommand(loanRepayCmd)
}

func runLoanTake(cmd *cobra.Command, args []string) error {
	return withEngine(cmd.Context(), func(e *sim.Engine) error {
		l := e.TakeLoan()
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Loan %s: %.2f at %.2f%%/day\n", id.Short(l.ID), l.Amount, l.Interest*100)
		return nil
	})
}

func runLoanRepay(cmd *cobra.Command, args []string) error {
	return withEngine(cmd.Context(), func(e *sim.Engine) error {
		var ids []string
		for _, l := range e.View().Loans.Loans {
			ids = append(ids, l.ID)
		}
		loanID, err := resolveID(ids, args[0])
		if err != nil {
			return err
		}
		l, err := e.RepayLoan(loanID)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Repaid %s: %.2f (capital %.2f)\n", id.Short(l.ID), l.Amount, e.View().Capital)
		return nil
	})
}
