package report

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/jonaszobl/weight-loss-service/internal/stringutil"
	"github.com/jonaszobl/weight-loss-service/internal/week"
)

const (
	FormatPDF      = "pdf"
	FormatXLSX     = "xlsx"
	FormatMarkdown = "md"
	FormatHTML     = "html"
)

// Formats lists the supported export formats.
func Formats() []string {
	return []string{FormatPDF, FormatXLSX, FormatMarkdown, FormatHTML}
}

// Report is everything an exporter needs to render one week.
type Report struct {
	Title   string
	Dates   [7]time.Time
	Week    week.Week
	Summary week.Summary
}

// New builds a report for w. The anchor picks the calendar week whose dates
// label the days.
func New(title string, w week.Week, anchor time.Time) Report {
	return Report{
		Title:   title,
		Dates:   week.Dates(anchor),
		Week:    w,
		Summary: week.Summarize(w),
	}
}

// Period returns the date range covered by the report, e.g. "16.06.2025 – 22.06.2025".
func (r Report) Period() string {
	return fmt.Sprintf("%s – %s", r.Dates[0].Format("02.01.2006"), r.Dates[6].Format("02.01.2006"))
}

// DayHeading labels a day section, e.g. "Monday 16.06.".
func (r Report) DayHeading(d week.Weekday) string {
	return fmt.Sprintf("%s %s", d, r.Dates[d].Format("02.01."))
}

// Filename suggests a file name for the report in the given format.
func Filename(r Report, format string) string {
	return fmt.Sprintf("%s-%s.%s", stringutil.Slugify(r.Title), r.Dates[0].Format("2006-01-02"), format)
}

// FormatFromPath infers the export format from a file extension.
func FormatFromPath(path string) (string, bool) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "markdown" {
		ext = FormatMarkdown
	}
	for _, f := range Formats() {
		if f == ext {
			return f, true
		}
	}
	return "", false
}

// Write renders r in the given format to path.
func Write(r Report, format, path string) error {
	switch format {
	case FormatPDF:
		return WritePDF(r, path)
	case FormatXLSX:
		return WriteXLSX(r, path)
	case FormatMarkdown:
		return WriteMarkdown(r, path)
	case FormatHTML:
		return WriteHTML(r, path)
	}
	return fmt.Errorf("unsupported format %q (valid: %s)", format, strings.Join(Formats(), ", "))
}

func eatenMark(m week.Meal) string {
	if m.Eaten {
		return "yes"
	}
	return "no"
}
