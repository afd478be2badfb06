package ports

import (
	"context"

	"artsdash/domain/survey"
)

// DatasetSource fetches and parses the survey dataset for one locator.
// Implementations exist for HTTP(S) CSV endpoints and local CSV/XLSX files.
type DatasetSource interface {
	// Supports reports whether this source handles the locator.
	Supports(locator string) bool
	// Fetch retrieves and parses the dataset, returning a typed failure on
	// network or parse errors. Schema validation is the loader's job.
	Fetch(ctx context.Context, locator string) (*survey.Table, error)
}
