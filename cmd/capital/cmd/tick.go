package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/capital/internal/id"
	"github.com/rustyeddy/capital/journal"
	"github.com/rustyeddy/capital/sim"
)

var tickCmd = &cobra.Command{
	Use:   "tick",
	Short: "Advance the game by one or more hours",
	Long: `Run the simulation forward without waiting for the real-time clock.

Examples:
  capital tick          one hour
  capital tick -n 24    one day`,
	Args: cobra.NoArgs,
	RunE: runTick,
}

var tickCount int

func init() {
	rootCmd.AddCommand(tickCmd)
	tickCmd.Flags().IntVarP(&tickCount, "count", "n", 1, "number of hours to advance")
}

func runTick(cmd *cobra.Command, args []string) error {
	if tickCount < 1 {
		return fmt.Errorf("-n must be at least 1")
	}

	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	out := cmd.OutOrStdout()
	var res sim.TickResult
	for i := 0; i < tickCount; i++ {
		res, err = s.engine.Step(cmd.Context())
		if err != nil {
			return err
		}
		for _, l := range res.ForcedLoans {
			fmt.Fprintf(out, "%s  forced loan %s: %.2f at %.2f%%\n",
				journal.GameTime(res.Year, res.Day, res.Hour), id.Short(l.ID), l.Amount, l.Interest*100)
		}
		for _, kind := range res.FinishedUpgrades {
			fmt.Fprintf(out, "%s  %s upgrade finished\n",
				journal.GameTime(res.Year, res.Day, res.Hour), kind)
		}
	}

	fmt.Fprintln(out, tickLine(res))
	return nil
}

func tickLine(res sim.TickResult) string {
	return fmt.Sprintf("%s  capital %.2f", journal.GameTime(res.Year, res.Day, res.Hour), res.Capital)
}
