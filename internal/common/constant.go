// Package common contains shared constants and sentinel errors used across
// the class directory components.
package common

// Column names of the backing store, in append order. The handle column is
// historically called "username" in the shared sheet.
const (
	ColumnName      = "name"
	ColumnHandle    = "username"
	ColumnTimestamp = "timestamp"
)

// TimestampLayout is the wire format of an entry's creation timestamp.
const TimestampLayout = "2006-01-02 15:04:05"
