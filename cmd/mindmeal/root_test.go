package mindmeal

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// resetFlags restores every flag to its default; cobra keeps values between
// Execute calls in one process.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := runCLI(t, args...)
	if err != nil {
		t.Fatalf("mindmeal %s: %v\n%s", strings.Join(args, " "), err, out)
	}
	return out
}

// onboard signs up and finishes onboarding against db.
func onboard(t *testing.T, db string) {
	t.Helper()
	mustRun(t, "--db", db, "signup", "--name", "Asha", "--email", "asha@example.com", "--password", "secret123")
	mustRun(t, "--db", db, "profile", "set", "--location", "kerala", "--goals", "calorie_tracking")
	mustRun(t, "--db", db, "profile", "complete")
}

func TestRootHelp(t *testing.T) {
	isolateConfig(t)
	out := mustRun(t, "--help")
	if !strings.Contains(out, "mindmeal") {
		t.Fatalf("expected help output, got %q", out)
	}
}

func TestInitCommandIdempotent(t *testing.T) {
	isolateConfig(t)
	path := filepath.Join(t.TempDir(), "mindmeal.db")
	for i := 0; i < 2; i++ {
		out := mustRun(t, "--db", path, "init")
		if !strings.Contains(out, path) {
			t.Fatalf("init run %d: expected db path in output, got %q", i+1, out)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	isolateConfig(t)
	out := mustRun(t, "version")
	if !strings.Contains(out, "mindmeal dev") {
		t.Fatalf("unexpected version output %q", out)
	}
}

func TestDayInTheLifeFlow(t *testing.T) {
	isolateConfig(t)
	db := filepath.Join(t.TempDir(), "mindmeal.db")

	mustRun(t, "--db", db, "init")
	if out := mustRun(t, "--db", db, "signup", "--name", "Asha", "--email", "asha@example.com", "--password", "secret123"); !strings.Contains(out, "Welcome, Asha") {
		t.Fatalf("unexpected signup output %q", out)
	}

	if _, err := runCLI(t, "--db", db, "profile", "set", "--age", "9"); err == nil {
		t.Fatalf("expected age 9 to be rejected")
	}
	mustRun(t, "--db", db, "profile", "set",
		"--location", "karnataka",
		"--goals", "weight_loss",
		"--age", "25",
		"--height", "170",
		"--weight", "70",
	)
	mustRun(t, "--db", db, "profile", "complete")

	metrics := mustRun(t, "--db", db, "metrics")
	if !strings.Contains(metrics, "Daily goal: 1472 kcal") {
		t.Fatalf("expected weight-loss goal in metrics, got %q", metrics)
	}

	if out := mustRun(t, "--db", db, "log", "add", "puri", "--meal", "breakfast", "--servings", "2"); !strings.Contains(out, "300 kcal") {
		t.Fatalf("unexpected log add output %q", out)
	}
	if _, err := runCLI(t, "--db", db, "log", "add", "puri", "--meal", "brunch"); err == nil {
		t.Fatalf("expected unknown meal to fail")
	}
	mustRun(t, "--db", db, "water", "add")

	today := mustRun(t, "--db", db, "today")
	if !strings.Contains(today, "Intake: 300 / 1472 kcal") {
		t.Fatalf("expected intake line, got %q", today)
	}
	if !strings.Contains(today, "Water: 1/8 glasses") {
		t.Fatalf("expected water line, got %q", today)
	}

	list := mustRun(t, "--db", db, "log", "list", "--meal", "lunch")
	if strings.Contains(list, "Puri") {
		t.Fatalf("lunch filter leaked breakfast entry: %q", list)
	}
}

func TestChatAndExport(t *testing.T) {
	isolateConfig(t)
	db := filepath.Join(t.TempDir(), "mindmeal.db")
	onboard(t, db)

	if out := mustRun(t, "--db", db, "chat", "-m", "how much water should I drink?"); strings.TrimSpace(out) == "" {
		t.Fatalf("expected a reply")
	}
	history := mustRun(t, "--db", db, "chat", "history")
	if !strings.Contains(history, "how much water should I drink?") {
		t.Fatalf("expected question in history, got %q", history)
	}

	outPath := filepath.Join(t.TempDir(), "export.yaml")
	mustRun(t, "--db", db, "export", "--format", "yaml", "--out", outPath)
	raw, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !strings.Contains(string(raw), "email: asha@example.com") {
		t.Fatalf("expected user in export, got %q", string(raw))
	}

	stdout := mustRun(t, "--db", db, "export", "--out", "-")
	if !strings.HasPrefix(strings.TrimSpace(stdout), "{") {
		t.Fatalf("expected json on stdout, got %q", stdout)
	}

	if _, err := runCLI(t, "--db", db, "export", "--format", "csv"); err == nil {
		t.Fatalf("expected csv export to fail")
	}
}

func TestDoctorAndBackup(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()
	db := filepath.Join(dir, "mindmeal.db")
	mustRun(t, "--db", db, "signup", "--name", "Asha", "--email", "asha@example.com", "--password", "secret123")

	if out := mustRun(t, "--db", db, "doctor"); !strings.Contains(out, "Corrupt keys: 0") {
		t.Fatalf("unexpected doctor output %q", out)
	}

	backup := filepath.Join(dir, "snap.db")
	mustRun(t, "--db", db, "backup", "create", backup)
	if out := mustRun(t, "--db", db, "backup", "list", "--dir", dir); !strings.Contains(out, "snap.db") {
		t.Fatalf("expected backup in list, got %q", out)
	}
	if _, err := runCLI(t, "--db", db, "backup", "restore", backup); err == nil {
		t.Fatalf("expected restore over existing db without --force to fail")
	}

	if _, err := runCLI(t, "--store", "memory", "backup", "create"); err == nil {
		t.Fatalf("expected backup with memory driver to fail")
	}
}

func TestTrackingCommandsNeedSessionAndOnboarding(t *testing.T) {
	isolateConfig(t)
	db := filepath.Join(t.TempDir(), "mindmeal.db")
	mustRun(t, "--db", db, "init")

	out, err := runCLI(t, "--db", db, "log", "add", "puri", "--meal", "breakfast")
	if err == nil || !strings.Contains(err.Error(), "not logged in") {
		t.Fatalf("expected log add without a session to fail, got %v\n%s", err, out)
	}
	if _, err := runCLI(t, "--db", db, "metrics"); err == nil {
		t.Fatalf("expected metrics without a session to fail")
	}

	mustRun(t, "--db", db, "signup", "--name", "Asha", "--email", "asha@example.com", "--password", "secret123")
	for _, args := range [][]string{
		{"log", "add", "puri", "--meal", "breakfast"},
		{"water", "add"},
		{"today"},
		{"chat", "-m", "hello"},
		{"recommend"},
		{"export", "--out", "-"},
	} {
		_, err := runCLI(t, append([]string{"--db", db}, args...)...)
		if err == nil || !strings.Contains(err.Error(), "onboarding is not complete") {
			t.Fatalf("%s: expected onboarding gate, got %v", strings.Join(args, " "), err)
		}
	}
	if out := mustRun(t, "--db", db, "metrics"); !strings.Contains(out, "default estimates") {
		t.Fatalf("expected fallback metrics before onboarding, got %q", out)
	}

	mustRun(t, "--db", db, "profile", "set", "--location", "kerala", "--goals", "calorie_tracking")
	mustRun(t, "--db", db, "profile", "complete")
	mustRun(t, "--db", db, "log", "add", "puri", "--meal", "breakfast")

	if _, err := runCLI(t, "--db", db, "profile", "set", "--goals", ""); err == nil {
		t.Fatalf("expected clearing goals after onboarding to fail")
	}
}
