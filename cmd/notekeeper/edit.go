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
	editTitle     string
	editContent   string
	editCategory  string
	editReminder  string
	editDone      bool
	editNotDone   bool
	editNoRemind  bool
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a note",
	Long: `Apply a partial update to a note. Only the flags you pass change
the stored values; everything else is preserved.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := notekeeper.New(dataDir, notekeeper.WithLogger(slog.Default()))
		if err != nil {
			fatal("Failed to initialize notekeeper", err)
		}

		// Only flags the user actually set become part of the patch.
		var patch core.Patch
		if cmd.Flags().Changed("title") {
			patch.Title = &editTitle
		}
		if cmd.Flags().Changed("content") {
			patch.Content = &editContent
		}
		if cmd.Flags().Changed("category") {
			patch.Category = &editCategory
		}
		if cmd.Flags().Changed("remind") {
			ts, err := time.Parse(time.RFC3339, editReminder)
			if err != nil {
				fatal("Invalid --remind value (want RFC 3339)", err)
			}
			on := true
			patch.IsReminder = &on
			patch.ReminderDate = &ts
		}
		if editNoRemind {
			off := false
			patch.IsReminder = &off
		}
		if editDone {
			done := true
			patch.Completed = &done
		}
		if editNotDone {
			done := false
			patch.Completed = &done
		}

		if patch.IsZero() {
			fmt.Println("Nothing to change (no flags given)")
			return
		}

		note, err := svc.Update(context.Background(), args[0], patch)
		if err != nil {
			fatal("Failed to edit note", err)
		}

		fmt.Printf("Note '%s' updated\n", note.ID)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVar(&editTitle, "title", "", "New title")
	editCmd.Flags().StringVar(&editContent, "content", "", "New content")
	editCmd.Flags().StringVar(&editCategory, "category", "", "New category")
	editCmd.Flags().StringVar(&editReminder, "remind", "", "Reminder date (RFC 3339); also marks the note as a reminder")
	editCmd.Flags().BoolVar(&editNoRemind, "no-remind", false, "Turn the reminder off")
	editCmd.Flags().BoolVar(&editDone, "done", false, "Mark the note completed")
	editCmd.Flags().BoolVar(&editNotDone, "undone", false, "Mark the note not completed")
	editCmd.MarkFlagsMutuallyExclusive("done", "undone")
	editCmd.MarkFlagsMutuallyExclusive("remind", "no-remind")
}
