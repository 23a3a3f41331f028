package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rmarques/notekeeper"
	"github.com/rmarques/notekeeper/pkg/core"
)

var (
	listJSON     bool
	listCategory string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := notekeeper.New(dataDir, notekeeper.WithLogger(slog.Default()))
		if err != nil {
			fatal("Failed to initialize notekeeper", err)
		}

		var filter core.Filter
		if cmd.Flags().Changed("category") {
			filter.Category = &listCategory
		}

		notes, err := svc.List(context.Background(), filter)
		if err != nil {
			fatal("Failed to list notes", err)
		}

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(notes); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		for _, note := range notes {
			mark := " "
			if note.Completed {
				mark = "x"
			}
			line := fmt.Sprintf("[%s] %s  %s (%s)", mark, note.ID, note.Title, note.Category)
			if note.IsReminder && note.ReminderDate != nil {
				line += fmt.Sprintf("  remind: %s", note.ReminderDate.Format("2006-01-02 15:04"))
			}
			fmt.Println(line)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVar(&listCategory, "category", "", "Filter notes by exact category")
}
