package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rmarques/notekeeper"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a single note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := notekeeper.New(dataDir, notekeeper.WithLogger(slog.Default()))
		if err != nil {
			fatal("Failed to initialize notekeeper", err)
		}

		note, err := svc.Get(context.Background(), args[0])
		if err != nil {
			fatal("Failed to get note", err)
		}

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(note); err != nil {
			fatal("Failed to encode JSON", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
