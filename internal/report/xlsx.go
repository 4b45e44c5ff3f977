package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jonaszobl/weight-loss-service/internal/week"
)

const (
	mealsSheet   = "Meals"
	summarySheet = "Summary"
)

// WriteXLSX saves the week as a workbook with one row per meal and a
// per-day summary sheet.
func WriteXLSX(r Report, path string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", mealsSheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	mealRows := [][]any{{"Date", "Day", "Category", "Meal", "kcal", "Eaten"}}
	for _, d := range week.Weekdays {
		for _, c := range week.Categories {
			for _, m := range r.Week.Day(d).Meals(c) {
				mealRows = append(mealRows, []any{
					r.Dates[d].Format("2006-01-02"), d.String(), c.String(), m.Name, m.Calories, m.Eaten,
				})
			}
		}
	}
	if err := writeRows(f, mealsSheet, mealRows); err != nil {
		return err
	}
	if err := f.SetCellStyle(mealsSheet, "A1", "F1", bold); err != nil {
		return err
	}

	summaryRows := [][]any{{"Date", "Day", "kcal eaten", "Goal", "Status"}}
	for _, d := range week.Weekdays {
		sum := r.Summary.Days[d]
		summaryRows = append(summaryRows, []any{
			r.Dates[d].Format("2006-01-02"), d.String(), sum.Total, r.Summary.DailyGoal, sum.Status.String(),
		})
	}
	summaryRows = append(summaryRows, []any{
		"", "Week", r.Summary.Total, r.Summary.WeeklyGoal, r.Summary.Status.String(),
	})
	if err := writeRows(f, summarySheet, summaryRows); err != nil {
		return err
	}
	last := fmt.Sprintf("E%d", len(summaryRows))
	if err := f.SetCellStyle(summarySheet, "A1", "E1", bold); err != nil {
		return err
	}
	if err := f.SetCellStyle(summarySheet, fmt.Sprintf("A%d", len(summaryRows)), last, bold); err != nil {
		return err
	}

	return f.SaveAs(path)
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
