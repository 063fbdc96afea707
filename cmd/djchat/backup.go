package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/djchat/internal/backup"
	"github.com/thatcatcamp/djchat/internal/config"
	"github.com/thatcatcamp/djchat/internal/db"
)

var (
	noteFlag string
	keepFlag int
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Manage database backups",
	Long:  "Create, list and prune snapshots of the database and stored icons",
}

var backupCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a backup now",
	Run: func(cmd *cobra.Command, args []string) {
		m := mustBackupManager()

		meta, err := m.Create(noteFlag)
		if err != nil {
			fatalf("Error creating backup: %v", err)
		}

		fmt.Printf("Backup created: %s (%d icons)\n", meta.Name, meta.Icons)
	},
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List backups, newest first",
	Run: func(cmd *cobra.Command, args []string) {
		m := mustBackupManager()

		backups, err := m.List()
		if err != nil {
			fatalf("Error listing backups: %v", err)
		}
		if len(backups) == 0 {
			fmt.Println("No backups found")
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tCREATED\tICONS\tNOTE")
		for _, b := range backups {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", b.Name, b.Timestamp.Format("2006-01-02 15:04:05"), b.Icons, b.Note)
		}
		w.Flush()
	},
}

var backupPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete all but the newest backups",
	Run: func(cmd *cobra.Command, args []string) {
		m := mustBackupManager()

		keep := keepFlag
		if keep <= 0 {
			keep = config.GetInt("backup.keep")
		}

		removed, err := m.Prune(keep)
		if err != nil {
			fatalf("Error pruning backups: %v", err)
		}

		fmt.Printf("Removed %d backups\n", removed)
	},
}

func init() {
	backupCreateCmd.Flags().StringVar(&noteFlag, "note", "", "note stored with the backup")
	backupPruneCmd.Flags().IntVar(&keepFlag, "keep", 0, "backups to keep (defaults to backup.keep)")

	backupCmd.AddCommand(backupCreateCmd)
	backupCmd.AddCommand(backupListCmd)
	backupCmd.AddCommand(backupPruneCmd)
	rootCmd.AddCommand(backupCmd)
}

func mustBackupManager() *backup.Manager {
	mustInitSystemDB()
	return backup.NewManager(db.GetDB(), config.GetString("backup.path"), config.GetString("storage.icons_dir"))
}
