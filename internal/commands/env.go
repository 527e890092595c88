package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spendbook-dev/spendbook/internal/config"
	"github.com/spendbook-dev/spendbook/internal/gitops"
	"github.com/spendbook-dev/spendbook/internal/history"
	"github.com/spendbook-dev/spendbook/internal/storage/jsonfile"
	"github.com/spendbook-dev/spendbook/internal/storage/sqlite"
	"github.com/spendbook-dev/spendbook/internal/store"
)

// env bundles what every data-directory command needs: the resolved
// directory, its config, and an opened store.
type env struct {
	dir   string
	cfg   *config.Config
	store *store.Store

	closer func() error
}

// stderrNotifier is the user-facing notification collaborator for the CLI:
// store warnings land on stderr.
type stderrNotifier struct{}

func (stderrNotifier) Warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
}

// openEnv resolves the data directory and opens the configured storage
// backend.
func openEnv(dirFlag string) (*env, error) {
	dir, err := filepath.Abs(config.ResolveDir(dirFlag, "."))
	if err != nil {
		return nil, fmt.Errorf("resolving data directory: %w", err)
	}

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	if err != nil {
		return nil, fmt.Errorf("%s is not a spendbook directory (run 'spendbook init' first): %w", dir, err)
	}

	var (
		persister store.Persister
		closer    func() error
	)
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		db, err := sqlite.New(filepath.Join(dir, cfg.Storage.File))
		if err != nil {
			return nil, fmt.Errorf("opening sqlite storage: %w", err)
		}
		persister = db
		closer = db.Close
	default:
		persister = jsonfile.New(filepath.Join(dir, cfg.Storage.File))
	}

	st := store.New(persister,
		store.WithNotifier(stderrNotifier{}),
		store.WithSubmitDelay(cfg.SubmitDelay()),
	)

	return &env{dir: dir, cfg: cfg, store: st, closer: closer}, nil
}

// close releases backend resources.
func (e *env) close() {
	if e.closer != nil {
		if err := e.closer(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: closing storage: %v\n", err)
		}
	}
}

// recordMutation appends to the activity log and, when configured,
// auto-commits the data directory. Neither failure blocks the mutation that
// already happened.
func (e *env) recordMutation(action, expenseID, details string) {
	entry := history.Entry{
		Timestamp: time.Now(),
		Action:    action,
		ExpenseID: expenseID,
		Details:   details,
	}
	if err := history.Append(e.dir, []history.Entry{entry}); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to write activity log: %v\n", err)
	}

	if e.cfg.Git.AutoCommit && gitops.IsRepo(e.dir) {
		msg := fmt.Sprintf("%s: %s", action, details)
		if _, err := gitops.Commit(e.dir, msg, e.cfg.Git.AuthorName, e.cfg.Git.AuthorEmail); err != nil {
			fmt.Fprintf(os.Stderr, "warning: git commit failed: %v\n", err)
		}
	}
}
