package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/salesupport/salesupport/pkg/admin"
	"github.com/salesupport/salesupport/pkg/config"
	appdb "github.com/salesupport/salesupport/pkg/db"
	gormstore "github.com/salesupport/salesupport/pkg/server/store/gorm"
)

// adminCmd represents the admin command
var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage the built-in admin account",
}

var adminEnsureCmd = &cobra.Command{
	Use:   "ensure",
	Short: "Create or reconcile the default admin account",
	Long: `Create or reconcile the default admin account.

The account named in DEFAULT_ADMIN_CREDENTIALS is created if missing.
An existing account is corrected field by field: the admin role is
restored, the password is rehashed when it no longer matches, and the
derived email is fixed up. Running this repeatedly is safe.`,
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
		if err := appdb.WaitForDatabase(conn, 10, time.Second); err != nil {
			fmt.Fprintln(os.Stderr, "Database did not become ready:", err)
			os.Exit(1)
		}

		if err := admin.EnsureDefaultAdmin(gormstore.NewUsersStore(conn), settings.DefaultAdmin); err != nil {
			fmt.Fprintln(os.Stderr, "Failed:", err)
			os.Exit(1)
		}
		fmt.Printf("Admin account %q is in place\n", settings.DefaultAdmin.Username)
	},
}

func init() {
	rootCmd.AddCommand(adminCmd)
	adminCmd.AddCommand(adminEnsureCmd)
}
