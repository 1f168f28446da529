package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/classhub/internal/directory"
)

// Search looks a single handle up, case-insensitively.
func (a *App) Search(ctx context.Context, handle string) error {
	if handle == "" {
		printlnFn("Usage: search <handle>")
		return nil
	}

	entries, err := a.service.LoadAll(ctx)
	if err != nil {
		printlnFn(errorMessage(err))
		return err
	}

	e := directory.FindByHandle(entries, handle)
	if e == nil {
		printlnFn("Not found in directory. Use 'add' to register yourself.")
		return nil
	}

	printlnFn(fmt.Sprintf("Found: %s — %s (added %s)", e.Name, a.profileURL(e), e.CreatedAt))
	return nil
}

// Find runs a free-text search over names and handles. An empty query
// lists everything.
func (a *App) Find(ctx context.Context, query string) error {
	entries, err := a.service.LoadAll(ctx)
	if err != nil {
		printlnFn(errorMessage(err))
		return err
	}

	matched := directory.SearchFreeText(entries, query)
	if len(matched) == 0 {
		printlnFn("No matches.")
		return nil
	}

	for _, e := range matched {
		printlnFn(fmt.Sprintf("%-30s %s", e.Name, a.profileURL(&e)))
	}
	return nil
}

// Add interactively registers a new entry.
func (a *App) Add(ctx context.Context) error {
	handle, err := GetSimpleText(a.reader, "Your profile handle (the part after /in/):", a.out())
	if err != nil {
		return err
	}
	name, err := GetSimpleText(a.reader, "Your full name:", a.out())
	if err != nil {
		return err
	}

	e, err := a.service.Add(ctx, a.sess, name, handle)
	if err != nil {
		printlnFn(errorMessage(err))
		return err
	}

	printlnFn(fmt.Sprintf("Added to the directory: %s — %s", e.Name, a.profileURL(e)))
	return nil
}

// List prints the whole roster.
func (a *App) List(ctx context.Context) error {
	entries, err := a.service.LoadAll(ctx)
	if err != nil {
		printlnFn(errorMessage(err))
		return err
	}

	if len(entries) == 0 {
		printlnFn("The directory is empty.")
		return nil
	}

	for i, e := range entries {
		printlnFn(fmt.Sprintf("%3d. %-30s %s", i+1, e.Name, a.profileURL(&e)))
	}
	return nil
}

// StatsCmd prints roster totals.
func (a *App) StatsCmd(ctx context.Context) error {
	entries, err := a.service.LoadAll(ctx)
	if err != nil {
		printlnFn(errorMessage(err))
		return err
	}

	st := directory.Stats(entries)
	printlnFn(fmt.Sprintf("Total profiles: %d, unique members: %d", st.Total, st.UniqueNames))
	return nil
}

// Check verifies the backing store is reachable.
func (a *App) Check(ctx context.Context) error {
	entries, err := a.service.LoadAll(ctx)
	if err != nil {
		printlnFn("Connection check failed: " + errorMessage(err))
		return err
	}

	printlnFn(fmt.Sprintf("Connection OK, %d entries in the directory.", len(entries)))
	return nil
}
