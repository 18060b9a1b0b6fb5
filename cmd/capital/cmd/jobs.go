package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/capital/sim"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Browse and act on job offers",
	Long: `List the job offers on the table and hire or reject them.

Offers are addressed by the short id shown in the listing.

Examples:
  capital jobs list
  capital jobs hire 7K2M9QXA
  capital jobs reject 7K2M9QXA
  capital jobs refresh`,
}

var jobsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the current offers",
	Args:  cobra.NoArgs,
	RunE:  runJobsList,
}

var jobsHireCmd = &cobra.Command{
	Use:   "hire <id>",
	Short: "Take a job offer, replacing your current job",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobsHire,
}

var jobsRejectCmd = &cobra.Command{
	Use:   "reject <id>",
	Short: "Discard a job offer",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobsReject,
}

var jobsRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Replace every offer once the refresh cooldown is over",
	Args:  cobra.NoArgs,
	RunE:  runJobsRefresh,
}

func init() {
	rootCmd.AddCommand(jobsCmd)
	jobsCmd.AddCommand(jobsListCmd)
	jobsCmd.AddCommand(jobsHireCmd)
	jobsCmd.AddCommand(jobsRejectCmd)
	jobsCmd.AddCommand(jobsRefreshCmd)
}

func runJobsList(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	fmt.Fprintln(cmd.OutOrStdout(), renderOffers(s.engine.View()))
	return nil
}

func offerIDs(s sim.State) []string {
	ids := make([]string, 0, len(s.Jobs.Jobs))
	for _, j := range s.Jobs.Jobs {
		ids = append(ids, j.ID)
	}
	return ids
}

func runJobsHire(cmd *cobra.Command, args []string) error {
	return withEngine(cmd.Context(), func(e *sim.Engine) error {
		jobID, err := resolveID(offerIDs(e.View()), args[0])
		if err != nil {
			return err
		}
		job, err := e.Hire(jobID)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Hired: %s (wage %.2f, costs %.2f, stress %.2f)\n",
			job.Name, job.Wage, job.Costs, job.Stress)
		return nil
	})
}

func runJobsReject(cmd *cobra.Command, args []string) error {
	return withEngine(cmd.Context(), func(e *sim.Engine) error {
		jobID, err := resolveID(offerIDs(e.View()), args[0])
		if err != nil {
			return err
		}
		if err := e.Reject(jobID); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "✓ Offer rejected")
		return nil
	})
}

func runJobsRefresh(cmd *cobra.Command, args []string) error {
	return withEngine(cmd.Context(), func(e *sim.Engine) error {
		if err := e.RefreshJobs(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderOffers(e.View()))
		return nil
	})
}
