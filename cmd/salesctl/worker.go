package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/salesupport/salesupport/pkg/config"
	"github.com/salesupport/salesupport/pkg/push"
)

// workerCmd represents the worker command
var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Run the push notification delivery worker",
	Long: `Run the push notification delivery worker.

The worker consumes delivery tasks from the Redis queue that the server
fills on POST /push/send and posts each payload to the subscription's
push service. Delivery is at most once; failures are logged and dropped.`,
	Run: func(cmd *cobra.Command, args []string) {
		settings, err := config.Load()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Bad configuration:", err)
			os.Exit(1)
		}

		queue, err := push.NewRedisQueue(settings.RedisURL)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to connect to queue:", err)
			os.Exit(1)
		}
		defer func() { _ = queue.Close() }()

		sender := push.NewWebPushSender(settings.VAPIDEmail, settings.VAPIDPublicKey, settings.VAPIDPrivateKey)
		worker := push.NewWorker(queue, sender)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		log.Println("Push worker running...")
		if err := worker.Run(ctx); err != nil && ctx.Err() == nil {
			fmt.Fprintln(os.Stderr, "Worker stopped:", err)
			os.Exit(1)
		}
		log.Println("Push worker shut down")
	},
}

func init() {
	rootCmd.AddCommand(workerCmd)
}
