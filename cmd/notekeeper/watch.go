package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rmarques/notekeeper"
)

var watchCmd = &cobra.Command{
	Use:   "watch [pattern]",
	Short: "Watch the notes file for changes",
	Long: `Stream per-note change events as the backing file is modified,
whether by this tool, another process, or a hand edit. The optional
pattern is a glob matched against note IDs.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		pattern := "*"
		if len(args) == 1 {
			pattern = args[0]
		}

		svc, err := notekeeper.New(dataDir, notekeeper.WithLogger(slog.Default()))
		if err != nil {
			fatal("Failed to initialize notekeeper", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		events, err := svc.Watch(ctx, pattern)
		if err != nil {
			fatal("Failed to start watching", err)
		}

		fmt.Println("Watching for changes (Ctrl-C to stop)...")
		for event := range events {
			fmt.Printf("%s %s %s\n",
				time.Unix(event.Timestamp, 0).Format(time.RFC3339),
				event.Type,
				event.ID,
			)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
