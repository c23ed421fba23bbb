package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/salesupport/salesupport/pkg/admin"
	"github.com/salesupport/salesupport/pkg/ai"
	"github.com/salesupport/salesupport/pkg/audit"
	"github.com/salesupport/salesupport/pkg/auth"
	"github.com/salesupport/salesupport/pkg/config"
	appdb "github.com/salesupport/salesupport/pkg/db"
	"github.com/salesupport/salesupport/pkg/i18n"
	"github.com/salesupport/salesupport/pkg/push"
	"github.com/salesupport/salesupport/pkg/secrets"
	"github.com/salesupport/salesupport/pkg/server"
	"github.com/salesupport/salesupport/pkg/server/endpoints"
	"github.com/salesupport/salesupport/pkg/server/middleware"
	gormstore "github.com/salesupport/salesupport/pkg/server/store/gorm"
)

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the CRM application server",
	Long: `Run the CRM application server.

By default, database migrations are run on startup and the default admin
account is created or reconciled. Use --no-migrate to skip migrations.`,
	Run: func(cmd *cobra.Command, args []string) {
		settings, err := config.Load()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Bad configuration:", err)
			os.Exit(1)
		}

		noMigrate, _ := cmd.Flags().GetBool("no-migrate")
		if !noMigrate {
			log.Println("Running database migrations...")
			if err := runMigrations(settings.DatabaseURL); err != nil {
				fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
				os.Exit(1)
			}
		}

		conn, err := appdb.Connect(settings.DatabaseURL)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to connect to DB:", err)
			os.Exit(1)
		}
		if err := appdb.WaitForDatabase(conn, 30, time.Second); err != nil {
			fmt.Fprintln(os.Stderr, "Database did not become ready:", err)
			os.Exit(1)
		}

		cipher, err := secrets.NewCipher(settings.APIKeyEncryptionSecret)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to initiate cipher:", err)
			os.Exit(1)
		}

		catalog, err := i18n.Load(settings.LocaleDirectory, settings.DefaultLocale)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to load locale catalogs:", err)
			os.Exit(1)
		}
		go func() {
			if err := catalog.Watch(context.Background()); err != nil {
				log.Println("locale watch stopped:", err)
			}
		}()

		var queue push.Queue
		redisQueue, err := push.NewRedisQueue(settings.RedisURL)
		if err != nil {
			// The API can run without a broker; sends will fail with 502.
			log.Println("push queue unavailable:", err)
			queue = push.NewMemoryQueue()
		} else {
			queue = redisQueue
		}

		sqlDB, err := conn.DB()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to access DB handle:", err)
			os.Exit(1)
		}

		s := server.NewServer(settings, conn)
		s.UsersStore = gormstore.NewUsersStore(conn)
		s.ClientsStore = gormstore.NewClientsStore(conn)
		s.InteractionsStore = gormstore.NewInteractionsStore(conn)
		s.RemindersStore = gormstore.NewRemindersStore(conn)
		s.APIKeysStore = gormstore.NewAPIKeysStore(conn)
		s.DashboardStore = gormstore.NewDashboardStore(conn)
		s.HealthStore = gormstore.NewHealthStore(conn)
		s.Tokens = auth.NewTokenIssuer(settings.JWTSecretKey, settings.JWTAccessTTL)
		s.Cipher = cipher
		s.Catalog = catalog
		s.Engine = ai.NewEngine(settings.AIModel, settings.AITemperature)
		s.Registry = push.NewRegistry()
		s.Queue = queue
		s.Auditor = audit.NewStore(sqlDB)

		if err := admin.EnsureDefaultAdmin(s.UsersStore, settings.DefaultAdmin); err != nil {
			fmt.Fprintln(os.Stderr, "Unable to ensure default admin:", err)
			os.Exit(1)
		}

		metrics := middleware.NewMetrics(prometheus.DefaultRegisterer)
		s.Router.Use(metrics.Middleware)

		authn := middleware.NewAuthenticator(s.Tokens, s.UsersStore, catalog)
		endpoints.RegisterAll(s, authn)

		log.Printf("Running server at http://%s...\n", settings.Addr())
		log.Fatal(s.Start())
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().Bool("no-migrate", false, "skip running database migrations on start")
}
