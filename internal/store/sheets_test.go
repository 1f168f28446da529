package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordsFromRows(t *testing.T) {
	tests := []struct {
		name string
		rows [][]any
		want []map[string]string
	}{
		{
			name: "empty grid",
			rows: nil,
			want: nil,
		},
		{
			name: "header only",
			rows: [][]any{{"name", "username", "timestamp"}},
			want: []map[string]string{},
		},
		{
			name: "short row padded",
			rows: [][]any{
				{"name", "username", "timestamp"},
				{"Jane Doe", "jane-doe"},
			},
			want: []map[string]string{
				{"name": "Jane Doe", "username": "jane-doe", "timestamp": ""},
			},
		},
		{
			name: "header cells trimmed, blank header skipped",
			rows: [][]any{
				{" name ", "", "username"},
				{"Jane Doe", "ignored", "jane-doe"},
			},
			want: []map[string]string{
				{"name": "Jane Doe", "username": "jane-doe"},
			},
		},
		{
			name: "non-string cells stringified",
			rows: [][]any{
				{"name", "username", "timestamp"},
				{"Jane Doe", 42, true},
			},
			want: []map[string]string{
				{"name": "Jane Doe", "username": "42", "timestamp": "true"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RecordsFromRows(tt.rows))
		})
	}
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.AppendRow(ctx, []string{"Jane Doe", "jane-doe", "2024-01-02 10:00:00"}))
	require.NoError(t, s.AppendRow(ctx, []string{"John Doe", "john-doe-123"}))

	records, err := s.GetAllRecords(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "jane-doe", records[0]["username"])
	assert.Equal(t, "", records[1]["timestamp"], "short rows are padded")
	assert.Equal(t, 2, s.Len())
}
