package testkit

import (
	"bytes"
	"encoding/csv"

	"artsdash/domain/survey"
)

// Headers returns a header row covering every column the default schema
// requires, in a fixed order.
func Headers() []string {
	headers := []string{survey.ColGender}
	for _, sem := range survey.SemesterColumns {
		headers = append(headers, sem.Column)
	}
	headers = append(headers, survey.ExpectationColumns...)
	headers = append(headers,
		survey.ColExpectationMet,
		survey.ColBestAspect,
		survey.ColEducationImproved,
		survey.ColImageImproved,
		"Area of Evaluation [Academic policies]",
		"Item [Teaching quality]",
	)
	return headers
}

// SampleRows returns three survey responses: two female, one male, with a
// mix of clean, blank and non-numeric GPA cells.
func SampleRows() [][]string {
	return [][]string{
		buildRow("F", []string{"3.50", "3.60", "3.55", "3.70", "3.65", "3.60", "3.75", "3.80", "3.70", "3.85", "3.90", ""},
			[]string{"4", "4", "4", "4"}, "5", "Professors", "Yes", "No", "4", "5"),
		buildRow("F", []string{"3.20", "3.30", "n/a", "3.40", "3.35", "3.30", "3.45", "3.50", "3.40", "3.55", "3.60", ""},
			[]string{"3", "4", "3", "4"}, "4", "Teaching style", "Yes", "Yes", "5", "4"),
		buildRow("M", []string{"3.00", "3.10", "3.05", "3.20", "3.15", "3.10", "3.25", "3.30", "3.20", "3.35", "3.40", ""},
			[]string{"3", "3", "", "3"}, "3", "Professors", "No", "Yes", "4", "4"),
	}
}

func buildRow(gender string, gpas, expectations []string, met, aspect, eduImproved, imgImproved, area, item string) []string {
	row := []string{gender}
	row = append(row, gpas...)
	row = append(row, expectations...)
	row = append(row, met, aspect, eduImproved, imgImproved, area, item)
	return row
}

// SampleTable builds the sample dataset as a loaded table.
func SampleTable() *survey.Table {
	return survey.NewTable("test://sample", Headers(), SampleRows())
}

// SampleCSV renders the sample dataset as a CSV document for loader and
// handler tests served over httptest.
func SampleCSV() string {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Write(Headers())
	for _, row := range SampleRows() {
		w.Write(row)
	}
	w.Flush()
	return buf.String()
}
