package app

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"artsdash/domain/survey"
	"artsdash/internal/errors"
)

// ExportWorkbook writes every aggregate view into an XLSX workbook, one
// sheet per view, for offline use of the dashboard numbers.
func (s *DashboardService) ExportWorkbook(ctx context.Context) (*excelize.File, error) {
	table, err := s.loader.Load(ctx, s.locator)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()

	if err := writeGPASheet(f, table); err != nil {
		return nil, err
	}
	if err := writeCountSheet(f, "Gender", ValueCounts(table, survey.ColGender)); err != nil {
		return nil, err
	}
	if err := writeCountSheet(f, "Best Aspects", TopValueCounts(table, survey.ColBestAspect, 5)); err != nil {
		return nil, err
	}
	if err := writeImprovementSheet(f, table); err != nil {
		return nil, err
	}
	if err := writePolicySheet(f, table); err != nil {
		return nil, err
	}

	// Replace the default sheet with the first view
	f.DeleteSheet("Sheet1")
	if idx, err := f.GetSheetIndex("GPA Trend"); err == nil {
		f.SetActiveSheet(idx)
	}

	return f, nil
}

func writeGPASheet(f *excelize.File, table *survey.Table) error {
	sheet := "GPA Trend"
	if _, err := f.NewSheet(sheet); err != nil {
		return errors.Wrap(err, "failed to create GPA sheet")
	}

	setHeaderRow(f, sheet, "Semester", "Mean GPA", "N")
	for i, p := range GPATrend(table) {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), p.Tag)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), p.Mean)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), p.N)
	}
	return nil
}

func writeCountSheet(f *excelize.File, sheet string, counts []ValueCount) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return errors.Wrapf(err, "failed to create %s sheet", sheet)
	}

	setHeaderRow(f, sheet, "Value", "Count")
	for i, c := range counts {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), c.Value)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), c.Count)
	}
	return nil
}

func writeImprovementSheet(f *excelize.File, table *survey.Table) error {
	sheet := "Improvement"
	if _, err := f.NewSheet(sheet); err != nil {
		return errors.Wrap(err, "failed to create improvement sheet")
	}

	setHeaderRow(f, sheet, "Gender", "Question", "Proportion Yes")
	for i, p := range ImprovementByGender(table) {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), p.Group)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), p.Question)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), p.Proportion)
	}
	return nil
}

func writePolicySheet(f *excelize.File, table *survey.Table) error {
	sheet := "Policy vs Items"
	if _, err := f.NewSheet(sheet); err != nil {
		return errors.Wrap(err, "failed to create policy sheet")
	}

	setHeaderRow(f, sheet, "Category", "Mean Rating")
	for i, m := range PolicyVsImplementation(table) {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), m.Category)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), m.Mean)
	}
	return nil
}

func setHeaderRow(f *excelize.File, sheet string, headers ...string) {
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
}
