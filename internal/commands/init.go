package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/spendbook-dev/spendbook/internal/config"
	"github.com/spendbook-dev/spendbook/internal/gitops"
)

func newInitCommand(dir *string) *cobra.Command {
	var backend string
	var noGit bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a spendbook data directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(config.ResolveDir(*dir, "."))
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runInit(absDir, backend, noGit)
		},
	}

	cmd.Flags().StringVar(&backend, "backend", config.BackendJSON, "storage backend: json or sqlite")
	cmd.Flags().BoolVar(&noGit, "no-git", false, "skip git history for the data directory")

	return cmd
}

func runInit(dir, backend string, noGit bool) error {
	if err := os.MkdirAll(filepath.Join(dir, "logs"), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists", cfgPath)
	}

	cfg := config.Default()
	cfg.Storage.Backend = backend
	if backend == config.BackendSQLite {
		cfg.Storage.File = "expenses.db"
	}
	cfg.Git.AutoCommit = !noGit
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	if !noGit {
		if err := gitops.Init(dir); err != nil {
			return fmt.Errorf("git init: %w", err)
		}
		if _, err := gitops.Commit(dir, "init: new spendbook directory", cfg.Git.AuthorName, cfg.Git.AuthorEmail); err != nil {
			return fmt.Errorf("initial commit: %w", err)
		}
	}

	fmt.Printf("Initialized spendbook directory at %s (%s backend)\n", dir, backend)
	return nil
}
