package commands_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendbook-dev/spendbook/internal/config"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build the binary once for all tests.
	tmpDir, err := os.MkdirTemp("", "spendbook-test-*")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(tmpDir)

	binaryPath = filepath.Join(tmpDir, "spendbook")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/spendbook")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		panic("failed to build binary: " + err.Error())
	}

	os.Exit(m.Run())
}

func runSpendbook(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// initDir initializes a data directory without git and with no submit delay,
// so tests stay fast and hermetic.
func initDir(t *testing.T, backend string) string {
	t.Helper()
	dir := t.TempDir()

	_, err := runSpendbook(t, "init", "--dir", dir, "--backend", backend, "--no-git")
	require.NoError(t, err)

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	cfg.Submit.DelayMS = 0
	require.NoError(t, config.Save(filepath.Join(dir, config.FileName), cfg))

	return dir
}

var addedID = regexp.MustCompile(`\(([0-9a-f-]{36})\)`)

func addExpense(t *testing.T, dir string, args ...string) string {
	t.Helper()
	out, err := runSpendbook(t, append([]string{"add", "--dir", dir}, args...)...)
	require.NoError(t, err, "add output: %s", out)

	m := addedID.FindStringSubmatch(out)
	require.NotNil(t, m, "add should print the new id, got: %s", out)
	return m[1]
}

func TestInit_CreatesConfigAndLogs(t *testing.T) {
	dir := t.TempDir()
	out, err := runSpendbook(t, "init", "--dir", dir, "--no-git")
	require.NoError(t, err)
	assert.Contains(t, out, "Initialized spendbook directory")

	_, err = os.Stat(filepath.Join(dir, config.FileName))
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(dir, "logs"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestInit_RefusesExisting(t *testing.T) {
	dir := t.TempDir()
	_, err := runSpendbook(t, "init", "--dir", dir, "--no-git")
	require.NoError(t, err)

	out, err := runSpendbook(t, "init", "--dir", dir, "--no-git")
	require.Error(t, err)
	assert.Contains(t, out, "already exists")
}

func TestAddListDelete(t *testing.T) {
	dir := initDir(t, config.BackendJSON)

	id := addExpense(t, dir, "-d", "Coffee", "-a", "4.50", "-c", "Food", "--date", "2024-03-01")

	out, err := runSpendbook(t, "list", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Coffee")
	assert.Contains(t, out, "$4.50")
	assert.Contains(t, out, "1 expense(s)")

	_, err = runSpendbook(t, "delete", "--dir", dir, id)
	require.NoError(t, err)

	out, err = runSpendbook(t, "list", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "No expenses yet")
}

func TestDelete_Nonexistent(t *testing.T) {
	dir := initDir(t, config.BackendJSON)

	out, err := runSpendbook(t, "delete", "--dir", dir, "no-such-id")
	require.Error(t, err)
	assert.Contains(t, out, "no expense with id")
}

func TestEdit_KeepsUnsetFields(t *testing.T) {
	dir := initDir(t, config.BackendJSON)
	id := addExpense(t, dir, "-d", "Coffee", "-a", "4.50", "-c", "Food", "--note", "morning")

	_, err := runSpendbook(t, "edit", "--dir", dir, id, "-a", "5.00")
	require.NoError(t, err)

	out, err := runSpendbook(t, "list", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Coffee", "description kept")
	assert.Contains(t, out, "$5.00", "amount replaced")
	assert.Contains(t, out, "morning", "note kept")
}

func TestListFilters(t *testing.T) {
	dir := initDir(t, config.BackendJSON)
	addExpense(t, dir, "-d", "Groceries", "-a", "10.00", "-c", "Food", "--date", "2024-01-01")
	addExpense(t, dir, "-d", "Dinner out", "-a", "20.00", "-c", "Food", "--date", "2024-02-01")
	addExpense(t, dir, "-d", "Bus ticket", "-a", "5.00", "-c", "Transit", "--date", "2024-02-15")

	out, err := runSpendbook(t, "list", "--dir", dir, "-c", "Food")
	require.NoError(t, err)
	assert.Contains(t, out, "Groceries")
	assert.Contains(t, out, "Dinner out")
	assert.NotContains(t, out, "Bus ticket")
	assert.Contains(t, out, "total $30.00")

	out, err = runSpendbook(t, "list", "--dir", dir, "--from", "2024-02-10")
	require.NoError(t, err)
	assert.Contains(t, out, "Bus ticket")
	assert.NotContains(t, out, "Groceries")
}

func TestSummary(t *testing.T) {
	dir := initDir(t, config.BackendJSON)
	addExpense(t, dir, "-d", "Groceries", "-a", "10.00", "-c", "Food")
	addExpense(t, dir, "-d", "Dinner out", "-a", "20.00", "-c", "Food")
	addExpense(t, dir, "-d", "Bus ticket", "-a", "5.00", "-c", "Transit")

	out, err := runSpendbook(t, "summary", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Total:      $35.00")
	assert.Contains(t, out, "Entries:    3")
	assert.Contains(t, out, "Categories: 2")

	// Food ($30) must be listed before Transit ($5).
	assert.Less(t, indexOf(out, "Food"), indexOf(out, "Transit"))
}

func TestExportImport(t *testing.T) {
	dir := initDir(t, config.BackendJSON)
	addExpense(t, dir, "-d", "Coffee", "-a", "4.50", "-c", "Food", "--date", "2024-03-01")

	csvPath := filepath.Join(t.TempDir(), "expenses.csv")
	out, err := runSpendbook(t, "export", "--dir", dir, csvPath)
	require.NoError(t, err, out)

	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Date,Description,Category,Amount,Note,Recurring")
	assert.Contains(t, string(data), `"Mar 1, 2024",Coffee,Food,4.50,,`)

	other := initDir(t, config.BackendJSON)
	out, err = runSpendbook(t, "import", "--dir", other, csvPath)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Imported 1 expense(s)")

	out, err = runSpendbook(t, "list", "--dir", other)
	require.NoError(t, err)
	assert.Contains(t, out, "Coffee")
}

func TestSQLiteBackend(t *testing.T) {
	dir := initDir(t, config.BackendSQLite)

	addExpense(t, dir, "-d", "Coffee", "-a", "4.50", "-c", "Food")

	out, err := runSpendbook(t, "list", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Coffee")

	_, err = os.Stat(filepath.Join(dir, "expenses.db"))
	require.NoError(t, err, "sqlite backend stores expenses.db")
}

func TestAdd_RejectsInvalidFields(t *testing.T) {
	dir := initDir(t, config.BackendJSON)

	out, err := runSpendbook(t, "add", "--dir", dir, "-d", "ab", "-a", "1.00", "-c", "Food")
	require.Error(t, err)
	assert.Contains(t, out, "at least 3 characters")

	out, err = runSpendbook(t, "add", "--dir", dir, "-d", "Coffee", "-a", "-1", "-c", "Food")
	require.Error(t, err)
	assert.Contains(t, out, "greater than zero")

	out, err = runSpendbook(t, "add", "--dir", dir, "-d", "Coffee", "-a", "1000000", "-c", "Food")
	require.Error(t, err)
	assert.Contains(t, out, "cannot exceed")
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}
