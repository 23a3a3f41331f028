package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/rmarques/notekeeper"
)

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a note permanently",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := notekeeper.New(dataDir, notekeeper.WithLogger(slog.Default()))
		if err != nil {
			fatal("Failed to initialize notekeeper", err)
		}

		if err := svc.Delete(context.Background(), args[0]); err != nil {
			fatal("Failed to delete note", err)
		}

		fmt.Printf("Note '%s' deleted\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
}
