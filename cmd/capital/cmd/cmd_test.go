package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/capital/config"
	"github.com/rustyeddy/capital/internal/id"
	"github.com/rustyeddy/capital/journal"
	"github.com/rustyeddy/capital/sim"
)

// execute runs the root command with fresh flag values and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cfgFile, logLevel = "", ""
	tickCount = 1
	savingsPct = 0
	resetConfirm = false
	ledgerLimit, ledgerLoanID = 20, ""
	configInitOutput = ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfg := config.Default()
	cfg.Log.Level = "error"
	cfg.Game.Seed = 1
	path := filepath.Join(dir, "capital.yaml")
	require.NoError(t, cfg.SaveToFile(path))
	return path
}

func TestResolveID(t *testing.T) {
	ids := []string{"01HZX3K9Q0ABCDEFGHJKMNPQRS", "01HZX3K9Q0ABCDEFGHJKMNPQRT"}

	got, err := resolveID(ids, "jkmnpqrs")
	require.NoError(t, err)
	assert.Equal(t, ids[0], got)

	got, err = resolveID(ids, ids[1])
	require.NoError(t, err)
	assert.Equal(t, ids[1], got)

	_, err = resolveID(ids, "RS")
	require.NoError(t, err)

	_, err = resolveID(ids, "zzz")
	assert.ErrorContains(t, err, "no id ends in")

	unknown := "01HZX3K9Q0ABCDEFGHJKMNPQRV"
	got, err = resolveID(ids, strings.ToLower(unknown))
	require.NoError(t, err, "well-formed handles pass through for the engine to reject")
	assert.Equal(t, unknown, got)

	_, err = resolveID(ids, "  ")
	assert.Error(t, err)
}

func TestResolveIDAmbiguous(t *testing.T) {
	ids := []string{"01HZX3K9Q0ABCDEFGHJKMNPQRS", "01HZX3K9Q0ABCDEFGHJKMNPXRS"}
	_, err := resolveID(ids, "RS")
	assert.ErrorContains(t, err, "ambiguous")
}

func TestAmountArg(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		pct     float64
		base    float64
		want    float64
		wantErr bool
	}{
		{name: "explicit", args: []string{"12.5"}, want: 12.5},
		{name: "percent", pct: 25, base: 80, want: 20},
		{name: "full balance", pct: 100, base: 3, want: 3},
		{name: "both", args: []string{"1"}, pct: 10, wantErr: true},
		{name: "neither", wantErr: true},
		{name: "not a number", args: []string{"lots"}, wantErr: true},
		{name: "percent out of range", pct: 150, base: 10, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := amountArg(tt.args, tt.pct, tt.base)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestRenderStatusHidesCareerWhileUnemployed(t *testing.T) {
	s := *sim.NewState(sim.NewGenerator(1))

	out := renderStatus(s)
	assert.Contains(t, out, "Y0 D0 00:00")
	assert.Contains(t, out, "Capital")
	assert.Contains(t, out, "Job: Unemployed")
	assert.Contains(t, out, "Offers (max level 1)")
	assert.Contains(t, out, id.Short(s.Jobs.Jobs[0].ID))
	assert.NotContains(t, out, "Career")

	s.Job = sim.Job{ID: "x", Name: "Level 2", Wage: 0.1, Stress: 1}
	s.Networking.UpgradeStarted = true
	s.Networking.UpgradeTimer = 12
	s.Loans.Loans = []sim.Loan{{ID: "01HZX3K9Q0ABCDEFGHJKMNPQRS", Amount: 1, Interest: 0.01}}

	out = renderStatus(s)
	assert.Contains(t, out, "Career")
	assert.Contains(t, out, "upgrading, 12h left")
	assert.Contains(t, out, "next upgrade takes 24h")
	assert.Contains(t, out, "JKMNPQRS")
	assert.Contains(t, out, "interest due at day end: 0.01")
}

func TestFormatOfferShowsNet(t *testing.T) {
	j := sim.Job{ID: "01HZX3K9Q0ABCDEFGHJKMNPQRS", Name: "Level 3", Wage: 0.05, Costs: 0.02, Stress: 1.5}
	assert.Equal(t, "JKMNPQRS  Level 3    wage 0.05  costs 0.02  net +0.03  stress 1.50", formatOffer(j))
}

func TestNewStoreAndJournal(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	cfg := config.Default()
	cfg.Store = config.StoreConfig{Type: "memory", Key: "state"}
	st, err := newStore(ctx, cfg)
	require.NoError(t, err)
	assert.IsType(t, &journal.MemoryStore{}, st)

	cfg.Store = config.StoreConfig{Type: "sqlite", DBPath: filepath.Join(dir, "s.db"), Key: "state"}
	st, err = newStore(ctx, cfg)
	require.NoError(t, err)
	assert.IsType(t, &journal.SQLiteStore{}, st)
	require.NoError(t, st.Close())

	cfg.Store.Type = "floppy"
	_, err = newStore(ctx, cfg)
	assert.Error(t, err)

	cfg.Journal = config.JournalConfig{Type: "none"}
	j, err := newJournal(cfg)
	require.NoError(t, err)
	assert.IsType(t, journal.NopJournal{}, j)

	cfg.Journal = config.JournalConfig{Type: "csv", LoansFile: filepath.Join(dir, "l.csv"), DaysFile: filepath.Join(dir, "d.csv")}
	j, err = newJournal(cfg)
	require.NoError(t, err)
	assert.IsType(t, &journal.CSVJournal{}, j)
	require.NoError(t, j.Close())

	cfg.Journal = config.JournalConfig{Type: "sqlite", DBPath: filepath.Join(dir, "j.db")}
	j, err = newJournal(cfg)
	require.NoError(t, err)
	assert.IsType(t, &journal.SQLiteJournal{}, j)
	require.NoError(t, j.Close())
}

func TestLoadConfigFlagOverride(t *testing.T) {
	path := writeConfig(t)
	cfgFile, logLevel = path, "debug"
	defer func() { cfgFile, logLevel = "", "" }()

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, int64(1), cfg.Game.Seed)
}

func TestLoadConfigWithoutFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)
	t.Setenv(config.EnvStore, "memory")

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.Store.Type)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "capital version "+version)
}

func TestGameCommands(t *testing.T) {
	path := writeConfig(t)

	out, err := execute(t, "--config", path, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Job: Unemployed")

	out, err = execute(t, "--config", path, "tick", "-n", "24")
	require.NoError(t, err)
	assert.Contains(t, out, "Y0 D1 00:00  capital 0.76")

	out, err = execute(t, "--config", path, "loan", "take")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Loan")

	out, err = execute(t, "--config", path, "savings", "deposit", "0.4")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Deposited 0.40")

	out, err = execute(t, "--config", path, "savings", "deposit", "--pct", "50")
	require.NoError(t, err, "--pct is a share of the savings balance")
	assert.Contains(t, out, "✓ Deposited 0.20")

	out, err = execute(t, "--config", path, "savings", "withdraw", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Withdrew 0.60")

	out, err = execute(t, "--config", path, "jobs", "refresh")
	require.NoError(t, err, "refresh cooldown runs out after 24 ticks")
	assert.Contains(t, out, "refresh in 48h")

	_, err = execute(t, "--config", path, "jobs", "refresh")
	assert.Error(t, err)

	cfgFile = path
	s, err := openSession(context.Background())
	require.NoError(t, err)
	view := s.engine.View()
	s.Close()
	assert.Equal(t, 1, view.Day)
	require.Len(t, view.Loans.Loans, 1)
	require.Len(t, view.Jobs.Jobs, 1)
	offer := view.Jobs.Jobs[0]

	out, err = execute(t, "--config", path, "jobs", "hire", id.Short(offer.ID))
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Hired: "+offer.Name)

	out, err = execute(t, "--config", path, "upgrade", "education")
	require.NoError(t, err)
	assert.Contains(t, out, "education upgrade started: 24 hours to level 1")

	_, err = execute(t, "--config", path, "upgrade", "education")
	assert.Error(t, err)

	_, err = execute(t, "--config", path, "upgrade", "golf")
	assert.Error(t, err)

	out, err = execute(t, "--config", path, "ledger", "loans")
	require.NoError(t, err)
	assert.Contains(t, out, "Loan taken")

	out, err = execute(t, "--config", path, "ledger", "loans", "--loan", id.Short(view.Loans.Loans[0].ID))
	require.NoError(t, err)
	assert.Contains(t, out, "Loan taken")

	out, err = execute(t, "--config", path, "ledger", "days")
	require.NoError(t, err)
	assert.Contains(t, out, "|")

	out, err = execute(t, "--config", path, "loan", "repay", id.Short(view.Loans.Loans[0].ID))
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Repaid")

	_, err = execute(t, "--config", path, "reset")
	assert.Error(t, err)

	out, err = execute(t, "--config", path, "reset", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Saved game deleted")

	out, err = execute(t, "--config", path, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Y0 D0 00:00")
}

func TestNewGameOffersSurviveReadOnlyCommands(t *testing.T) {
	path := writeConfig(t)

	listed, err := execute(t, "--config", path, "jobs", "list")
	require.NoError(t, err)

	cfgFile = path
	s, err := openSession(context.Background())
	require.NoError(t, err)
	view := s.engine.View()
	s.Close()

	require.NotEmpty(t, view.Jobs.Jobs)
	offer := view.Jobs.Jobs[0]
	assert.Contains(t, listed, id.Short(offer.ID))

	out, err := execute(t, "--config", path, "jobs", "hire", id.Short(offer.ID))
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Hired: "+offer.Name)
}

func TestConfigCommands(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	path := filepath.Join(dir, "capital.toml")

	out, err := execute(t, "config", "init", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Created default configuration")

	out, err = execute(t, "--config", path, "config", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "Store: sqlite")

	_, err = execute(t, "--config", filepath.Join(dir, "missing.yaml"), "config", "validate")
	assert.Error(t, err)
}

func TestPlayOwnsTheSave(t *testing.T) {
	assert.Contains(t, playCmd.Long, "play owns the save while it runs")
	assert.Contains(t, rootCmd.Long, "owns the save while it runs")
	assert.NotContains(t, rootCmd.Long, "mixed freely")
}
