// Package store defines the tabular backing-store port consumed by the
// directory adapter, plus its backends: the production Google Sheets
// worksheet, a Postgres table, and an in-process store.
//
// The contract is deliberately spreadsheet-shaped: read every data row as
// a column-name-keyed record, append one row of ordered values. Columns,
// in order, are name, username (the handle) and timestamp. No backend
// offers a conditional append, so uniqueness checks layered on top are
// best-effort only.
package store

import "context"

type RowStore interface {
	// GetAllRecords returns every data row keyed by column name.
	GetAllRecords(ctx context.Context) ([]map[string]string, error)

	// AppendRow appends one row of ordered values. It does not retry.
	AppendRow(ctx context.Context, values []string) error
}
