package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonaszobl/weight-loss-service/internal/report"
	"github.com/jonaszobl/weight-loss-service/internal/tracker"
)

var exportCmd = LeafCommand{
	Use:   "export",
	Short: "Export the week as a PDF, XLSX, Markdown or HTML report",
	StrFlags: []StringFlag{
		{Name: "format", Shorthand: "f", Usage: "pdf, xlsx, md or html (default: from --output, else pdf)"},
		{Name: "output", Shorthand: "o", Usage: "output file (default: derived from the week)"},
		{Name: "history", Usage: "export an archived week by ID or position instead"},
	},
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")
		historyRef, _ := cmd.Flags().GetString("history")
		return runExport(cmd, a.tracker, format, output, historyRef)
	}),
}.Build()

func runExport(cmd *cobra.Command, tr *tracker.Tracker, format, output, historyRef string) error {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		if f, ok := report.FormatFromPath(output); ok {
			format = f
		} else {
			format = report.FormatPDF
		}
	}

	var r report.Report
	if historyRef != "" {
		entry, sum, err := tr.ArchivedWeek(historyRef)
		if err != nil {
			return err
		}
		r = report.New("Archived Week "+sum.Date, entry.Week, archiveAnchor(entry.Date, tr.Now()))
	} else {
		r = report.New("Meal Week", tr.Load(), tr.Now())
	}

	if output == "" {
		output = report.Filename(r, format)
	}

	if err := report.Write(r, format, output); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported report to %s\n", output)
	return nil
}
