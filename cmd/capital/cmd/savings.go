package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/capital/sim"
)

var savingsCmd = &cobra.Command{
	Use:   "savings",
	Short: "Move money in and out of savings",
	Long: `Savings compound at the end of every in-game day.

Amounts are given directly or with --pct, a percentage of the current
savings balance in both directions.

Examples:
  capital savings deposit 12.5
  capital savings deposit --pct 25
  capital savings withdraw --pct 100`,
}

var savingsDepositCmd = &cobra.Command{
	Use:   "deposit [amount]",
	Short: "Move capital into savings",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSavingsDeposit,
}

var savingsWithdrawCmd = &cobra.Command{
	Use:   "withdraw [amount]",
	Short: "Move savings into capital",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSavingsWithdraw,
}

var savingsPct float64

func init() {
	rootCmd.AddCommand(savingsCmd)
	savingsCmd.AddCommand(savingsDepositCmd)
	savingsCmd.AddCommand(savingsWithdrawCmd)

	savingsCmd.PersistentFlags().Float64Var(&savingsPct, "pct", 0, "percentage of the savings balance (e.g. 10, 25, 50, 75)")
}

// amountArg resolves the amount from the argument or, with pct set, as a
// percentage of base. Exactly one of them must be given.
func amountArg(args []string, pct, base float64) (float64, error) {
	switch {
	case len(args) == 1 && pct != 0:
		return 0, fmt.Errorf("give an amount or --pct, not both")
	case len(args) == 1:
		amount, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return 0, fmt.Errorf("invalid amount %q: %w", args[0], err)
		}
		return amount, nil
	case pct != 0:
		if pct < 0 || pct > 100 {
			return 0, fmt.Errorf("--pct must be between 0 and 100")
		}
		return base * pct / 100, nil
	}
	return 0, fmt.Errorf("an amount or --pct is required")
}

func runSavingsDeposit(cmd *cobra.Command, args []string) error {
	return withEngine(cmd.Context(), func(e *sim.Engine) error {
		s := e.View()
		amount, err := amountArg(args, savingsPct, s.Savings.Balance)
		if err != nil {
			return err
		}
		if err := e.Deposit(amount); err != nil {
			return err
		}
		s = e.View()
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Deposited %.2f (savings %.2f, capital %.2f)\n",
			amount, s.Savings.Balance, s.Capital)
		return nil
	})
}

func runSavingsWithdraw(cmd *cobra.Command, args []string) error {
	return withEngine(cmd.Context(), func(e *sim.Engine) error {
		s := e.View()
		amount, err := amountArg(args, savingsPct, s.Savings.Balance)
		if err != nil {
			return err
		}
		taken, err := e.Withdraw(amount)
		if err != nil {
			return err
		}
		s = e.View()
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Withdrew %.2f (savings %.2f, capital %.2f)\n",
			taken, s.Savings.Balance, s.Capital)
		return nil
	})
}
