package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/capital/sim"
)

var upgradeCmd = &cobra.Command{
	Use:   "upgrade networking|education",
	Short: "Start a career upgrade",
	Long: `Start upgrading a career track. While an upgrade runs, costs and stress
are doubled; finishing one raises the highest job level on offer.

  networking  pays its investment up front, adds a little base stress
  education   halves your wage while it runs, adds a little base cost`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(sim.Networking), string(sim.Education)},
	RunE:      runUpgrade,
}

func init() {
	rootCmd.AddCommand(upgradeCmd)
}

func runUpgrade(cmd *cobra.Command, args []string) error {
	kind, err := sim.ParseTrackKind(args[0])
	if err != nil {
		return err
	}

	return withEngine(cmd.Context(), func(e *sim.Engine) error {
		if err := e.StartUpgrade(kind); err != nil {
			return err
		}
		s := e.View()
		t := trackOf(s, kind)
		fmt.Fprintf(cmd.OutOrStdout(), "✓ %s upgrade started: %.0f hours to level %d\n",
			kind, t.UpgradeTimer, t.Level+1)
		return nil
	})
}
