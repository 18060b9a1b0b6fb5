package journal

import (
	"fmt"
	"strings"
	"time"

	"github.com/rustyeddy/capital/internal/id"
)

// FormatLoanOrg renders a loan ledger event as an Org-mode heading with the
// facts in a PROPERTIES drawer.
func FormatLoanOrg(l LoanRecord) string {
	heading := fmt.Sprintf("** Loan %s: %.2f @ %.2f%% (%s)", l.Event, l.Amount, l.Interest*100, id.Short(l.LoanID))

	var b strings.Builder
	b.WriteString(heading)
	b.WriteString("\n")
	b.WriteString(":PROPERTIES:\n")
	b.WriteString(fmt.Sprintf(":LOAN_ID: %s\n", l.LoanID))
	b.WriteString(fmt.Sprintf(":EVENT: %s\n", l.Event))
	b.WriteString(fmt.Sprintf(":AMOUNT: %.2f\n", l.Amount))
	b.WriteString(fmt.Sprintf(":INTEREST: %.4f\n", l.Interest))
	b.WriteString(fmt.Sprintf(":CAPITAL: %.2f\n", l.Capital))
	b.WriteString(fmt.Sprintf(":GAME_TIME: %s\n", GameTime(l.Year, l.Day, l.Hour)))
	b.WriteString(fmt.Sprintf(":RECORDED_AT: %s\n", l.RecordedAt.UTC().Format(time.RFC3339)))
	b.WriteString(":END:\n")

	return b.String()
}

// FormatLoansOrg renders multiple loan events separated by blank lines.
func FormatLoansOrg(loans []LoanRecord) string {
	var b strings.Builder
	for i, l := range loans {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(FormatLoanOrg(l))
	}
	return b.String()
}

// FormatDaysOrg renders day summaries as an Org table.
func FormatDaysOrg(days []DayRecord) string {
	var b strings.Builder
	b.WriteString("| year | day | capital | savings | debt | loans | income | stress | age | job |\n")
	b.WriteString("|------+-----+---------+---------+------+-------+--------+--------+-----+-----|\n")
	for _, d := range days {
		b.WriteString(fmt.Sprintf("| %d | %d | %.2f | %.2f | %.2f | %d | %.2f | %.2f | %.2f | %s |\n",
			d.Year, d.Day, d.Capital, d.Savings, d.Debt, d.Loans, d.Income, d.Stress, d.Age, d.Job))
	}
	return b.String()
}

// GameTime formats an in-game timestamp as Y<year> D<day> <hour>:00.
func GameTime(year, day, hour int) string {
	return fmt.Sprintf("Y%d D%d %02d:00", year, day, hour)
}
