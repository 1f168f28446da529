// Package directory implements the class-roster core: the Entry model,
// the normalizing adapter over the tabular backing store, and the service
// holding the business rules for lookups and submissions.
package directory

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/classhub/internal/common"
)

// Entry is one directory record: a classmate's display name, their public
// profile handle, and when the row was appended. Entries are only ever
// appended through this package; the single destruction path is a manual
// edit of the backing store.
type Entry struct {
	Name      string `json:"name"`
	Handle    string `json:"username"`
	CreatedAt string `json:"timestamp"`
}

// NormalizeTimestamp returns ts when it already matches the store layout
// and a freshly formatted "now" otherwise. Hand-edited rows routinely
// carry blank or free-form timestamps; one bad cell must not fail a load.
func NormalizeTimestamp(ts string, now func() time.Time) string {
	ts = strings.TrimSpace(ts)
	if _, err := time.Parse(common.TimestampLayout, ts); err == nil {
		return ts
	}
	return now().Format(common.TimestampLayout)
}
