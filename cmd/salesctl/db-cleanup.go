package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/salesupport/salesupport/pkg/audit"
	"github.com/salesupport/salesupport/pkg/config"
	appdb "github.com/salesupport/salesupport/pkg/db"
)

// dbCleanupCmd represents the db cleanup command
var dbCleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Delete audit log entries past the retention window",
	Long: `Delete audit log entries past the retention window.

Entries older than RETENTION_DAYS (default 90) are removed. Run it from
cron or before backups.`,
	Run: func(cmd *cobra.Command, args []string) {
		settings, err := config.Load()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Bad configuration:", err)
			os.Exit(1)
		}

		conn, err := appdb.Connect(settings.DatabaseURL)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to connect to DB:", err)
			os.Exit(1)
		}
		sqlDB, err := conn.DB()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to access DB handle:", err)
			os.Exit(1)
		}

		cutoff := time.Now().UTC().AddDate(0, 0, -settings.RetentionDays)
		removed, err := audit.NewStore(sqlDB).Purge(cutoff)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Cleanup failed:", err)
			os.Exit(1)
		}
		fmt.Printf("Removed %d audit entries older than %s\n", removed, cutoff.Format(time.RFC3339))
	},
}

func init() {
	dbCmd.AddCommand(dbCleanupCmd)
}
