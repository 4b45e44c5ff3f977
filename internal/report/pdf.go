package report

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jonaszobl/weight-loss-service/internal/week"
)

var (
	pdfHeaderColor = props.Color{Red: 50, Green: 50, Blue: 50}
	pdfMutedColor  = props.Color{Red: 120, Green: 120, Blue: 120}
	pdfLineColor   = props.Color{Red: 200, Green: 200, Blue: 200}
	pdfGoodColor   = props.Color{Red: 30, Green: 130, Blue: 60}
	pdfOverColor   = props.Color{Red: 190, Green: 40, Blue: 40}
)

// statusColor picks the colour of a total; the core PDF fonts cannot draw
// the emoji icons.
func statusColor(s week.Status) *props.Color {
	if s == week.Good {
		return &pdfGoodColor
	}
	return &pdfOverColor
}

// WritePDF renders the week as an A4 PDF and saves it to path.
func WritePDF(r Report, path string) error {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	m.AddRow(14,
		text.NewCol(12, r.Title, props.Text{
			Style: fontstyle.Bold,
			Size:  16,
			Color: &pdfHeaderColor,
		}),
	)
	m.AddRow(8,
		text.NewCol(12, r.Period(), props.Text{
			Size:  12,
			Color: &pdfMutedColor,
		}),
	)
	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(4)

	for _, d := range week.Weekdays {
		day := r.Week.Day(d)
		sum := r.Summary.Days[d]

		m.AddRow(8,
			text.NewCol(8, r.DayHeading(d), props.Text{
				Style: fontstyle.Bold,
				Size:  10,
				Color: &pdfHeaderColor,
			}),
			text.NewCol(4, fmt.Sprintf("%d / %d kcal", sum.Total, r.Summary.DailyGoal), props.Text{
				Style: fontstyle.Bold,
				Size:  10,
				Align: align.Right,
				Color: statusColor(sum.Status),
			}),
		)

		if day.Len() == 0 {
			m.AddRow(5,
				text.NewCol(12, "  No entries", props.Text{Size: 8, Color: &pdfMutedColor}),
			)
		}

		for _, c := range week.Categories {
			meals := day.Meals(c)
			if len(meals) == 0 {
				continue
			}
			m.AddRow(6,
				text.NewCol(12, "  "+c.String(), props.Text{
					Style: fontstyle.Bold,
					Size:  9,
				}),
			)
			for _, meal := range meals {
				color := &pdfMutedColor
				if meal.Eaten {
					color = &pdfHeaderColor
				}
				m.AddRow(5,
					text.NewCol(7, "    "+meal.Name, props.Text{Size: 8, Color: color}),
					text.NewCol(2, "eaten: "+eatenMark(meal), props.Text{Size: 8, Color: &pdfMutedColor}),
					text.NewCol(3, fmt.Sprintf("%d kcal", meal.Calories), props.Text{
						Size:  8,
						Align: align.Right,
						Color: color,
					}),
				)
			}
		}

		m.AddRow(4)
	}

	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(10,
		text.NewCol(8, "Week total", props.Text{
			Style: fontstyle.Bold,
			Size:  12,
			Color: &pdfHeaderColor,
		}),
		text.NewCol(4, fmt.Sprintf("%d / %d kcal", r.Summary.Total, r.Summary.WeeklyGoal), props.Text{
			Style: fontstyle.Bold,
			Size:  12,
			Align: align.Right,
			Color: statusColor(r.Summary.Status),
		}),
	)

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("generating PDF: %w", err)
	}
	return doc.Save(path)
}
