package notekeeper_test

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/rmarques/notekeeper"
	"github.com/rmarques/notekeeper/pkg/core"
)

// Example_basic demonstrates how to initialize the store, create a note,
// and read it back.
func Example_basic() {
	// Create a temporary directory for the example
	tmpDir, err := os.MkdirTemp("", "notekeeper-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	// Initialize the service targeting the temporary directory.
	// The notes file is created on first use.
	svc, err := notekeeper.New(tmpDir)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	// 1. Create a note
	note, err := svc.Create(ctx, core.Draft{
		Title:   "Buy milk",
		Content: "2%",
	})
	if err != nil {
		log.Fatal(err)
	}

	// 2. Read it back
	found, err := svc.Get(ctx, note.ID)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Found note: %s (%s)\n", found.Title, found.Category)
	// Output:
	// Found note: Buy milk (Personal)
}

// Example_partialUpdate demonstrates the field-level merge: only fields
// present in the patch change, everything else is preserved.
func Example_partialUpdate() {
	tmpDir, err := os.MkdirTemp("", "notekeeper-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	svc, err := notekeeper.New(tmpDir)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	note, err := svc.Create(ctx, core.Draft{Title: "Buy milk", Content: "2%"})
	if err != nil {
		log.Fatal(err)
	}

	done := true
	updated, err := svc.Update(ctx, note.ID, core.Patch{Completed: &done})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("same=%v completed=%v title=%q\n", updated.ID == note.ID, updated.Completed, updated.Title)
	// Output:
	// same=true completed=true title="Buy milk"
}
