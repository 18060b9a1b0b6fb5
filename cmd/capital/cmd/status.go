package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/capital/internal/id"
	"github.com/rustyeddy/capital/journal"
	"github.com/rustyeddy/capital/sim"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	cardStyle  = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current game state",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	fmt.Fprintln(cmd.OutOrStdout(), renderStatus(s.engine.View()))
	return nil
}

func renderStatus(s sim.State) string {
	var sections []string

	sections = append(sections, titleStyle.Render(fmt.Sprintf("%s   age %.2f",
		journal.GameTime(s.Year, s.Day, s.Hour), s.Age)))

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		metricCard("Capital", fmt.Sprintf("%.2f", s.Capital)),
		metricCard("Income/h", fmt.Sprintf("%+.2f", s.TotalIncome())),
		metricCard("Savings", fmt.Sprintf("%.2f", s.Savings.Balance)),
		metricCard("Debt", fmt.Sprintf("%.2f", s.Loans.Debt())),
	)
	sections = append(sections, cards)

	sections = append(sections, renderJob(s))
	if s.Job.Employed() {
		sections = append(sections, renderCareer(s))
	}
	sections = append(sections, renderLoans(s))
	sections = append(sections, renderOffers(s))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func metricCard(label, value string) string {
	content := fmt.Sprintf("%s\n%s", cardTitleStyle.Render(label), cardValueStyle.Render(value))
	return cardStyle.Render(content)
}

func renderJob(s sim.State) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Job: " + s.Job.Name))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(s.Job.Description))
	fmt.Fprintf(&b, "\nwage %.2f x%.2f   costs %.2f   stress %.2f x%.2f",
		s.Job.Wage, s.WageFactor, s.TotalCosts(), s.Job.Stress, s.StressFactor)
	return b.String()
}

func renderCareer(s sim.State) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Career"))
	for _, kind := range sim.TrackKinds {
		t := trackOf(s, kind)
		fmt.Fprintf(&b, "\n%-11s level %d", kind, t.Level)
		if t.Upgrading() {
			fmt.Fprintf(&b, "   upgrading, %.0fh left", t.UpgradeTimer)
		} else {
			fmt.Fprintf(&b, "   next upgrade takes %dh", t.Duration)
			if kind == sim.Networking {
				fmt.Fprintf(&b, " and costs %.2f", t.Investment)
			}
		}
	}
	return b.String()
}

func trackOf(s sim.State, kind sim.TrackKind) sim.Track {
	if kind == sim.Networking {
		return s.Networking
	}
	return s.Education
}

func renderLoans(s sim.State) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Loans"))
	fmt.Fprintf(&b, "\nnext loan %.2f at %.2f%%/day", s.Loans.BaseAmount, s.Loans.InterestRate*100)
	for _, l := range s.Loans.Loans {
		fmt.Fprintf(&b, "\n  %s  %.2f at %.2f%%", id.Short(l.ID), l.Amount, l.Interest*100)
	}
	if len(s.Loans.Loans) > 0 {
		b.WriteString("\n")
		b.WriteString(warnStyle.Render(fmt.Sprintf("interest due at day end: %.2f", s.Loans.DailyInterest())))
	}
	return b.String()
}

func renderOffers(s sim.State) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Offers (max level %d)", s.Jobs.MaxLevel)))
	if len(s.Jobs.Jobs) == 0 {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("none"))
	}
	for _, j := range s.Jobs.Jobs {
		fmt.Fprintf(&b, "\n  %s", formatOffer(j))
	}
	b.WriteString("\n")
	if s.Jobs.CanRefresh() {
		b.WriteString(mutedStyle.Render("refresh available"))
	} else {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("refresh in %.0fh", s.Jobs.RefreshTimer)))
	}
	return b.String()
}

func formatOffer(j sim.Job) string {
	return fmt.Sprintf("%s  %-9s wage %.2f  costs %.2f  net %+.2f  stress %.2f",
		id.Short(j.ID), j.Name, j.Wage, j.Costs, j.Net(), j.Stress)
}
