package mindmeal

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/mindmeal/mindmeal-cli/internal/service"
	"github.com/spf13/cobra"
)

var (
	backupDir    string
	backupJSON   bool
	restoreForce bool
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Snapshot and restore the SQLite store",
}

// sqliteTarget resolves the database file and its backup directory. Backups
// only exist for the sqlite driver.
func sqliteTarget(cmd *cobra.Command) (dbFile, dir string, err error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return "", "", err
	}
	if cfg.Store.Driver != "sqlite" {
		return "", "", fmt.Errorf("backups need the sqlite driver (current: %s)", cfg.Store.Driver)
	}
	dir = backupDir
	if dir == "" {
		dir = filepath.Join(filepath.Dir(cfg.Store.SQLitePath), "backups")
	}
	return cfg.Store.SQLitePath, dir, nil
}

var backupCreateCmd = &cobra.Command{
	Use:   "create [file]",
	Short: "Write a snapshot (default: backups/mindmeal-YYYYMMDD-HHMMSS.db next to the store)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbFile, dir, err := sqliteTarget(cmd)
		if err != nil {
			return err
		}
		target := filepath.Join(dir, "mindmeal-"+time.Now().Format("20060102-150405")+".db")
		if len(args) == 1 {
			target = args[0]
		}
		info, err := service.CreateBackup(cmd.Context(), dbFile, target)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Snapshot written to %s (%d bytes)\nsha256 %s\n", info.Path, info.SizeBytes, info.Checksum)
		return nil
	},
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show snapshots, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, dir, err := sqliteTarget(cmd)
		if err != nil {
			return err
		}
		items, err := service.ListBackups(dir)
		if err != nil {
			return err
		}
		if backupJSON {
			return writeJSON(cmd.OutOrStdout(), items)
		}
		if len(items) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No snapshots in %s\n", dir)
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), "TAKEN\tBYTES\tSHA256\tPATH")
		for _, b := range items {
			sum := b.Checksum
			if sum == "" {
				sum = "-"
			} else if len(sum) > 12 {
				sum = sum[:12]
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%s\t%s\n", b.CreatedAt.Local().Format("2006-01-02 15:04"), b.SizeBytes, sum, b.Path)
		}
		return nil
	},
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore <file>",
	Short: "Replace the store with a snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbFile, _, err := sqliteTarget(cmd)
		if err != nil {
			return err
		}
		if err := service.RestoreBackup(cmd.Context(), args[0], dbFile, restoreForce); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Store %s restored from %s\n", dbFile, args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(backupCmd)
	backupCmd.AddCommand(backupCreateCmd, backupListCmd, backupRestoreCmd)

	backupCmd.PersistentFlags().StringVar(&backupDir, "dir", "", "Snapshot directory (default: backups/ next to the store)")
	backupListCmd.Flags().BoolVar(&backupJSON, "json", false, "Print JSON")
	backupRestoreCmd.Flags().BoolVar(&restoreForce, "force", false, "Overwrite an existing store")
}
