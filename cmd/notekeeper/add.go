package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/rmarques/notekeeper"
	"github.com/rmarques/notekeeper/pkg/core"
)

var (
	addTitle    string
	addContent  string
	addCategory string
	addReminder string
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a note",
	Long:  `Create a new note with the given title and content. A reminder date turns the note into a reminder.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := notekeeper.New(dataDir, notekeeper.WithLogger(slog.Default()))
		if err != nil {
			fatal("Failed to initialize notekeeper", err)
		}

		draft := core.Draft{
			Title:    addTitle,
			Content:  addContent,
			Category: addCategory,
		}
		if addReminder != "" {
			ts, err := time.Parse(time.RFC3339, addReminder)
			if err != nil {
				fatal("Invalid --remind value (want RFC 3339, e.g. 2026-09-01T09:00:00Z)", err)
			}
			draft.IsReminder = true
			draft.ReminderDate = &ts
		}

		note, err := svc.Create(context.Background(), draft)
		if err != nil {
			fatal("Failed to add note", err)
		}

		fmt.Printf("Note '%s' created (%s)\n", note.Title, note.ID)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVar(&addTitle, "title", "", "Note title")
	addCmd.Flags().StringVar(&addContent, "content", "", "Note content")
	addCmd.Flags().StringVar(&addCategory, "category", "", "Note category (defaults to Personal)")
	addCmd.Flags().StringVar(&addReminder, "remind", "", "Reminder date (RFC 3339)")
	addCmd.MarkFlagRequired("title")
	addCmd.MarkFlagRequired("content")
}
