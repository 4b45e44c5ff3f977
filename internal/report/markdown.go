package report

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/jonaszobl/weight-loss-service/internal/week"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.Table),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	goldmark.WithRendererOptions(html.WithXHTML()),
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; max-width: 48rem; margin: 2rem auto; color: #222; }
table { border-collapse: collapse; margin-bottom: 1rem; }
th, td { border: 1px solid #ccc; padding: 0.25rem 0.75rem; text-align: left; }
</style>
</head>
<body>
{{.Content}}
</body>
</html>
`))

// Markdown renders r as a Markdown document.
func Markdown(r Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", r.Title)
	fmt.Fprintf(&b, "_%s_\n\n", r.Period())

	for _, d := range week.Weekdays {
		day := r.Week.Day(d)
		sum := r.Summary.Days[d]
		fmt.Fprintf(&b, "## %s\n\n", r.DayHeading(d))

		if day.Len() == 0 {
			b.WriteString("No entries\n\n")
		} else {
			b.WriteString("| Category | Meal | kcal | Eaten |\n")
			b.WriteString("|---|---|---:|:---:|\n")
			for _, c := range week.Categories {
				for _, m := range day.Meals(c) {
					fmt.Fprintf(&b, "| %s | %s | %d | %s |\n", c, escapeCell(m.Name), m.Calories, eatenMark(m))
				}
			}
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "**Total: %d / %d kcal %s**\n\n", sum.Total, r.Summary.DailyGoal, sum.Status.Icon())
	}

	b.WriteString("## Week\n\n")
	b.WriteString("| Day | kcal | |\n")
	b.WriteString("|---|---:|:---:|\n")
	for _, d := range week.Weekdays {
		sum := r.Summary.Days[d]
		fmt.Fprintf(&b, "| %s | %d | %s |\n", d, sum.Total, sum.Status.Icon())
	}
	fmt.Fprintf(&b, "\n**Week total: %d / %d kcal %s**\n", r.Summary.Total, r.Summary.WeeklyGoal, r.Summary.Status.Icon())

	return b.String()
}

// HTML renders r as a standalone HTML page.
func HTML(r Report) ([]byte, error) {
	var content bytes.Buffer
	if err := markdown.Convert([]byte(Markdown(r)), &content); err != nil {
		return nil, fmt.Errorf("rendering markdown: %w", err)
	}

	var page bytes.Buffer
	err := pageTemplate.Execute(&page, struct {
		Title   string
		Content template.HTML
	}{
		Title:   r.Title,
		Content: template.HTML(content.String()),
	})
	if err != nil {
		return nil, err
	}
	return page.Bytes(), nil
}

func WriteMarkdown(r Report, path string) error {
	return os.WriteFile(path, []byte(Markdown(r)), 0644)
}

func WriteHTML(r Report, path string) error {
	data, err := HTML(r)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
