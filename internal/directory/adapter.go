package directory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/classhub/internal/common"
	"github.com/dmitrijs2005/classhub/internal/logging"
	"github.com/dmitrijs2005/classhub/internal/store"
)

// Adapter translates between the backing store's raw rows and the
// normalized Entry shape. Transport failures stop here: callers see the
// common sentinel errors, never a raw API error.
type Adapter struct {
	store  store.RowStore
	logger logging.Logger
	now    func() time.Time
}

func NewAdapter(s store.RowStore, logger logging.Logger) *Adapter {
	return &Adapter{store: s, logger: logger, now: time.Now}
}

// LoadAll fetches and normalizes the full directory: trims name and
// handle, drops rows that are entirely blank, repairs missing or
// malformed timestamps, and deduplicates handles case-insensitively
// keeping the last occurrence — later rows are treated as corrections,
// and they take over the original row's position.
//
// On any transport or auth failure it returns no entries and an error
// wrapping ErrStoreUnavailable.
func (a *Adapter) LoadAll(ctx context.Context) ([]Entry, error) {
	records, err := a.store.GetAllRecords(ctx)
	if err != nil {
		a.logger.Error(ctx, "directory load failed", "error", err.Error())
		return nil, fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}

	entries := make([]Entry, 0, len(records))
	index := make(map[string]int, len(records))

	for _, rec := range records {
		e := Entry{
			Name:   strings.TrimSpace(rec[common.ColumnName]),
			Handle: strings.TrimSpace(rec[common.ColumnHandle]),
		}
		if e.Name == "" && e.Handle == "" {
			continue
		}
		e.CreatedAt = NormalizeTimestamp(rec[common.ColumnTimestamp], a.now)

		if e.Handle != "" {
			key := strings.ToLower(e.Handle)
			if i, ok := index[key]; ok {
				entries[i] = e
				continue
			}
			index[key] = len(entries)
		}
		entries = append(entries, e)
	}

	return entries, nil
}

// Append writes one row in column order (name, username, timestamp).
// No retry: the caller decides whether the operation is worth repeating.
func (a *Adapter) Append(ctx context.Context, e Entry) error {
	if err := a.store.AppendRow(ctx, []string{e.Name, e.Handle, e.CreatedAt}); err != nil {
		a.logger.Error(ctx, "directory append failed", "handle", e.Handle, "error", err.Error())
		return fmt.Errorf("%w: %v", common.ErrStoreFailure, err)
	}
	return nil
}
