package httpcsv

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"artsdash/domain/survey"
	"artsdash/internal/errors"
)

// Reader fetches a CSV dataset from an HTTP(S) endpoint
type Reader struct {
	httpClient *http.Client
}

// NewReader creates a new HTTP CSV reader
func NewReader(timeout time.Duration) *Reader {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Reader{
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Supports reports whether the locator is an HTTP(S) URL
func (r *Reader) Supports(locator string) bool {
	return strings.HasPrefix(locator, "http://") || strings.HasPrefix(locator, "https://")
}

// Fetch retrieves the CSV document and parses it into a survey table
func (r *Reader) Fetch(ctx context.Context, locator string) (*survey.Table, error) {
	startTime := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, locator, nil)
	if err != nil {
		return nil, errors.FetchFailed(locator, err)
	}
	req.Header.Set("Accept", "text/csv")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, errors.FetchFailed(locator, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.FetchFailed(locator, fmt.Errorf("endpoint returned status %d", resp.StatusCode))
	}

	reader := csv.NewReader(resp.Body)
	// Survey exports occasionally carry ragged trailing rows
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.ParseFailed(locator, err)
	}

	if len(rows) < 2 {
		return nil, errors.ParseFailed(locator, fmt.Errorf("CSV must have a header row and at least one data row"))
	}

	table := survey.NewTable(locator, rows[0], rows[1:])
	log.Printf("[HTTPReader] Fetched %s in %.2fms (%d columns, %d rows)",
		locator, float64(time.Since(startTime).Nanoseconds())/1e6, len(table.Headers), len(table.Rows))

	return table, nil
}
