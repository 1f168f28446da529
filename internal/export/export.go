// Package export renders a normalized directory as CSV or JSON. Dumps are
// produced on demand for download and are never persisted by this module.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"

	"github.com/dmitrijs2005/classhub/internal/common"
	"github.com/dmitrijs2005/classhub/internal/directory"
)

// CSV renders entries with a header row, columns in store order.
func CSV(entries []directory.Entry) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{common.ColumnName, common.ColumnHandle, common.ColumnTimestamp}); err != nil {
		return nil, err
	}
	for _, e := range entries {
		if err := w.Write([]string{e.Name, e.Handle, e.CreatedAt}); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// JSON renders entries as an indented array using the Entry field tags.
func JSON(entries []directory.Entry) ([]byte, error) {
	if entries == nil {
		entries = []directory.Entry{}
	}
	return json.MarshalIndent(entries, "", "  ")
}
