package ports

import (
	"artsdash/domain/core"
	"artsdash/domain/survey"
)

// DatasetCache is the process-wide load cache: key = locator hash, value =
// result-or-error, eviction = never. A cached failure is as sticky as a
// cached table.
type DatasetCache interface {
	// Get returns the cached result for the key. ok is false when the
	// locator has never been loaded.
	Get(key core.LocatorKey) (table *survey.Table, err error, ok bool)
	// Put stores the outcome of one load, table or error.
	Put(key core.LocatorKey, table *survey.Table, err error)
	// Len returns the number of cached locators.
	Len() int
}
