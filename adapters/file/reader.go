package file

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"artsdash/domain/survey"
	"artsdash/internal/errors"
)

// Reader loads the survey dataset from a local CSV or XLSX file
type Reader struct{}

// NewReader creates a new local file reader
func NewReader() *Reader {
	return &Reader{}
}

// Supports reports whether the locator looks like a local CSV/XLSX path
func (r *Reader) Supports(locator string) bool {
	if strings.HasPrefix(locator, "http://") || strings.HasPrefix(locator, "https://") {
		return false
	}
	ext := strings.ToLower(filepath.Ext(locator))
	return ext == ".csv" || ext == ".xlsx"
}

// Fetch reads and parses the file into a survey table
func (r *Reader) Fetch(ctx context.Context, locator string) (*survey.Table, error) {
	if _, err := os.Stat(locator); os.IsNotExist(err) {
		return nil, errors.FetchFailed(locator, fmt.Errorf("file not found"))
	}

	startTime := time.Now()
	var rows [][]string
	var err error

	switch strings.ToLower(filepath.Ext(locator)) {
	case ".csv":
		rows, err = readCSVRows(locator)
	case ".xlsx":
		rows, err = readExcelRows(locator)
	default:
		return nil, errors.ParseFailed(locator, fmt.Errorf("unsupported file type"))
	}
	if err != nil {
		return nil, err
	}

	if len(rows) < 2 {
		return nil, errors.ParseFailed(locator, fmt.Errorf("file must have a header row and at least one data row"))
	}

	table := survey.NewTable(locator, rows[0], rows[1:])
	log.Printf("[FileReader] Read %s in %.2fms (%d columns, %d rows)",
		locator, float64(time.Since(startTime).Nanoseconds())/1e6, len(table.Headers), len(table.Rows))

	return table, nil
}

func readCSVRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.FetchFailed(path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.ParseFailed(path, err)
	}
	return rows, nil
}

func readExcelRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.ParseFailed(path, err)
	}
	defer f.Close()

	// Survey exports keep everything on the first sheet
	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, errors.ParseFailed(path, fmt.Errorf("workbook has no sheets"))
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.ParseFailed(path, err)
	}
	return rows, nil
}
