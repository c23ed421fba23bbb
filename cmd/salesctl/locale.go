package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/salesupport/salesupport/pkg/config"
	"github.com/salesupport/salesupport/pkg/i18n"
)

// localeCmd represents the locale command
var localeCmd = &cobra.Command{
	Use:   "locale",
	Short: "Inspect and watch the locale catalogs",
}

var localeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the loaded locales",
	Run: func(cmd *cobra.Command, args []string) {
		settings, err := config.Load()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Bad configuration:", err)
			os.Exit(1)
		}

		catalog, err := i18n.Load(settings.LocaleDirectory, settings.DefaultLocale)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to load locale catalogs:", err)
			os.Exit(1)
		}

		for _, lang := range catalog.Languages() {
			fmt.Println(lang)
		}
	},
}

var localeWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the locale directory and reload catalogs on change",
	Long: `Watch the locale directory and reload catalogs on change.

Useful while editing translations: every write to a catalog file
triggers a reload, and parse errors are reported without stopping the
watcher.`,
	Run: func(cmd *cobra.Command, args []string) {
		settings, err := config.Load()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Bad configuration:", err)
			os.Exit(1)
		}

		catalog, err := i18n.Load(settings.LocaleDirectory, settings.DefaultLocale)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to load locale catalogs:", err)
			os.Exit(1)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Printf("Watching %s...\n", settings.LocaleDirectory)
		if err := catalog.Watch(ctx); err != nil && ctx.Err() == nil {
			fmt.Fprintln(os.Stderr, "Watch failed:", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(localeCmd)
	localeCmd.AddCommand(localeListCmd)
	localeCmd.AddCommand(localeWatchCmd)
}
