package gitops

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gitIdentity(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	t.Setenv("GIT_COMMITTER_NAME", "Spendbook")
	t.Setenv("GIT_COMMITTER_EMAIL", "spendbook@localhost")
	t.Setenv("GIT_AUTHOR_NAME", "Spendbook")
	t.Setenv("GIT_AUTHOR_EMAIL", "spendbook@localhost")
}

func TestInitAndIsRepo(t *testing.T) {
	gitIdentity(t)
	dir := t.TempDir()

	assert.False(t, IsRepo(dir))
	require.NoError(t, Init(dir))
	assert.True(t, IsRepo(dir))

	// Re-init is a no-op.
	require.NoError(t, Init(dir))
}

func TestCommit(t *testing.T) {
	gitIdentity(t)
	dir := t.TempDir()
	require.NoError(t, Init(dir))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "expenses.json"), []byte("[]"), 0o644))

	hash, err := Commit(dir, "create: Coffee", "Spendbook", "spendbook@localhost")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)

	// Clean tree commits nothing.
	hash, err = Commit(dir, "create: nothing", "Spendbook", "spendbook@localhost")
	require.NoError(t, err)
	assert.Empty(t, hash)
}
