// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/oelhwry/folio/content"
	"github.com/oelhwry/folio/core/model"
	"github.com/oelhwry/folio/internal/backup"
	"github.com/oelhwry/folio/internal/db"
	"github.com/oelhwry/folio/internal/i18n"
	"github.com/oelhwry/folio/internal/logging"
)

func newDBCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Manage the portfolio stored in the database",
	}
	cmd.AddCommand(newDBImportCmd(), newDBExportCmd(), newDBMaintainCmd())
	return cmd
}

func newDBImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import [file]",
		Short: "Replace the stored portfolio with a content file",
		Long: `Validates the content file (the configured one when no file is given) and
replaces everything stored in the database with it in one transaction.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := content.Source{Path: appConfig.Content}
			if len(args) == 1 {
				src.Path = args[0]
			}
			p, err := src.Load()
			if err != nil {
				return err
			}

			store, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.SavePortfolio(cmd.Context(), p); err != nil {
				return fmt.Errorf("import failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.db_imported", len(p.Pages), store.Type()))
			return nil
		},
	}
}

func newDBExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Write the stored portfolio as a content file",
		Long: `Writes the stored portfolio as YAML that can be used as a content file.
Without a file argument the document is printed to stdout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := storedPortfolio(cmd)
			if err != nil {
				return err
			}
			data, err := content.Marshal(p)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(args[0], data, 0o644); err != nil {
				return fmt.Errorf("could not write %s: %w", args[0], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.db_exported", args[0]))
			return nil
		},
	}
}

// storedPortfolio loads the catalog and turns an empty database into a
// hint for the user.
func storedPortfolio(cmd *cobra.Command) (model.Portfolio, error) {
	store, err := openStore()
	if err != nil {
		return model.Portfolio{}, err
	}
	defer func() { _ = store.Close() }()

	p, err := store.LoadPortfolio(cmd.Context())
	if errors.Is(err, db.ErrNoPortfolio) {
		return p, errors.New(i18n.T("cli.db_empty"))
	}
	return p, err
}

func newDBMaintainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "maintain",
		Short: "Run database maintenance (VACUUM/OPTIMIZE) for the configured DB",
		Long:  `Runs engine-specific maintenance tasks (VACUUM, OPTIMIZE TABLE, PRAGMA optimize).`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			skipIntegrity, _ := cmd.Flags().GetBool("skip-integrity")
			timeout, _ := cmd.Flags().GetDuration("timeout")
			if skipIntegrity {
				logging.Infof("skipping integrity_check")
			}
			err := db.RunDBMaintenance(cmd.Context(), appConfig.Database.Type, appConfig.Database.Dsn, db.MaintenanceOptions{
				SkipIntegrity: skipIntegrity,
				Timeout:       timeout,
			})
			if err != nil {
				return fmt.Errorf("maintenance failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.db_maintain_done"))
			return nil
		},
	}
	cmd.Flags().Bool("skip-integrity", false, "Skip integrity_check (SQLite) during maintenance")
	cmd.Flags().Duration("timeout", 2*time.Minute, "Timeout for the whole maintenance run")
	return cmd
}

func newBackupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backup [file]",
		Short: "Write a compressed snapshot of the portfolio",
		Long: `Writes the stored portfolio, or the content file when the database is
empty, as zstd compressed JSON. The .zst suffix is added when missing.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			filename := backup.DefaultName(now)
			if len(args) == 1 {
				filename = backup.WithSuffix(args[0])
			}

			p, err := backupSource(cmd)
			if err != nil {
				return err
			}
			if err := backup.Write(filename, model.NewSnapshot(p, now)); err != nil {
				return fmt.Errorf("backup failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.backup_done", filename))
			return nil
		},
	}
}

// backupSource prefers the database and falls back to the content file.
func backupSource(cmd *cobra.Command) (model.Portfolio, error) {
	store, err := openStore()
	if err != nil {
		return model.Portfolio{}, err
	}
	defer func() { _ = store.Close() }()

	p, err := store.LoadPortfolio(cmd.Context())
	if errors.Is(err, db.ErrNoPortfolio) {
		logging.Infof("database is empty, backing up the content file")
		p, _, err = loadContent()
	}
	return p, err
}

func newRestoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore <file>",
		Short: "Replace the stored portfolio with a backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := backup.Read(args[0])
			if err != nil {
				return fmt.Errorf("restore failed: %w", err)
			}
			logging.Debugf("restoring snapshot %s from %s", snap.ID, snap.CreatedAt.Format(time.RFC3339))

			yes, _ := cmd.Flags().GetBool("yes")
			if !yes {
				prompt := fmt.Sprintf("Replace the stored portfolio with the backup from %s? (yes/no): ", snap.CreatedAt.Format("2006-01-02 15:04"))
				answer := promptForConfirmation(cmd.InOrStdin(), cmd.ErrOrStderr(), prompt)
				if answer != "yes" && answer != "y" {
					return errors.New("restore cancelled")
				}
			}

			store, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.SavePortfolio(cmd.Context(), snap.Portfolio); err != nil {
				return fmt.Errorf("restore failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.restore_done", len(snap.Portfolio.Pages), store.Type()))
			return nil
		},
	}
	cmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
	return cmd
}
