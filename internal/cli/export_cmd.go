package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/classhub/internal/export"
)

// Export dumps the normalized roster as csv or json, either to stdout or
// to the given file. Admin mode is required, matching the original page
// where the download buttons sit behind the admin panel.
func (a *App) Export(ctx context.Context, format, path string) error {
	if !a.isAdmin() {
		printlnFn("Export requires admin mode. Use 'admin' first.")
		return nil
	}

	entries, err := a.service.LoadAll(ctx)
	if err != nil {
		printlnFn(errorMessage(err))
		return err
	}

	var data []byte
	switch format {
	case "csv":
		data, err = export.CSV(entries)
	case "json":
		data, err = export.JSON(entries)
	default:
		printlnFn("Usage: export csv|json [file]")
		return nil
	}
	if err != nil {
		printlnFn("Export failed: " + err.Error())
		return err
	}

	if path == "" {
		printlnFn(string(data))
		return nil
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		printlnFn("Could not write " + path + ": " + err.Error())
		return err
	}
	printlnFn(fmt.Sprintf("Wrote %d entries to %s", len(entries), path))
	return nil
}
