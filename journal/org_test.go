package journal

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatLoanOrg(t *testing.T) {
	t.Parallel()

	rec := LoanRecord{
		LoanID:     "01HZX3K9Q0ABCDEFGHJKMNPQRS",
		Event:      LoanForced,
		Amount:     10.1,
		Interest:   0.03,
		Capital:    0.42,
		Year:       2,
		Day:        45,
		Hour:       7,
		RecordedAt: time.Date(2024, 3, 15, 10, 30, 45, 0, time.UTC),
	}

	result := FormatLoanOrg(rec)

	assert.Contains(t, result, "** Loan forced: 10.10 @ 3.00% (JKMNPQRS)")
	assert.Contains(t, result, ":PROPERTIES:")
	assert.Contains(t, result, ":LOAN_ID: 01HZX3K9Q0ABCDEFGHJKMNPQRS")
	assert.Contains(t, result, ":INTEREST: 0.0300")
	assert.Contains(t, result, ":CAPITAL: 0.42")
	assert.Contains(t, result, ":GAME_TIME: Y2 D45 07:00")
	assert.Contains(t, result, ":RECORDED_AT: 2024-03-15T10:30:45Z")
	assert.Contains(t, result, ":END:")
}

func TestFormatLoansOrgSeparates(t *testing.T) {
	t.Parallel()

	out := FormatLoansOrg([]LoanRecord{
		{LoanID: "a", Event: LoanTaken},
		{LoanID: "b", Event: LoanRepaid},
	})
	assert.Equal(t, 2, strings.Count(out, "** Loan"))
	assert.Empty(t, FormatLoansOrg(nil))
}

func TestFormatDaysOrg(t *testing.T) {
	t.Parallel()

	out := FormatDaysOrg([]DayRecord{{Year: 0, Day: 1, Capital: 97, Job: "Level 3"}})
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, "| 0 | 1 | 97.00 | 0.00 | 0.00 | 0 | 0.00 | 0.00 | 0.00 | Level 3 |", lines[2])
}

func TestGameTime(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Y0 D0 00:00", GameTime(0, 0, 0))
	assert.Equal(t, "Y2 D364 23:00", GameTime(2, 364, 23))
}
