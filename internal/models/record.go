// Package models defines the records stored under the portfolio's keys.
// JSON field names are the persisted format and must not change.
package models

// Record is an element of a collection, identified by a creation-time id.
type Record interface {
	RecordID() int64
}
