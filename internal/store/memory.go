package store

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/classhub/internal/common"
)

// MemoryStore is an in-process RowStore used by the "memory" driver and
// by tests. It keeps raw rows exactly as appended.
type MemoryStore struct {
	mu     sync.Mutex
	header []string
	rows   [][]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		header: []string{common.ColumnName, common.ColumnHandle, common.ColumnTimestamp},
	}
}

func (s *MemoryStore) GetAllRecords(ctx context.Context) ([]map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]map[string]string, 0, len(s.rows))
	for _, row := range s.rows {
		rec := make(map[string]string, len(s.header))
		for i, name := range s.header {
			if i < len(row) {
				rec[name] = row[i]
			} else {
				rec[name] = ""
			}
		}
		records = append(records, rec)
	}

	return records, nil
}

func (s *MemoryStore) AppendRow(ctx context.Context, values []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := make([]string, len(values))
	copy(row, values)
	s.rows = append(s.rows, row)

	return nil
}

// Len reports the number of raw rows, duplicates included.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rows)
}
