package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonaszobl/weight-loss-service/internal/week"
)

func TestExportMarkdownInferredFromOutput(t *testing.T) {
	tr := setupTracker(t)
	logMeal(t, tr, week.Monday, week.Lunch, "Salad", 400, true)
	cmd, buf := newTestCmd()
	path := filepath.Join(t.TempDir(), "week.md")

	require.NoError(t, runExport(cmd, tr, "", path, ""))

	assert.Equal(t, "Exported report to "+path+"\n", buf.String())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Meal Week")
	assert.Contains(t, string(data), "| Lunch | Salad | 400 | yes |")
}

func TestExportDefaultFilename(t *testing.T) {
	tr := setupTracker(t)
	cmd, buf := newTestCmd()

	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	require.NoError(t, runExport(cmd, tr, "HTML", "", ""))

	assert.Contains(t, buf.String(), "meal-week-2025-06-16.html")
	_, err = os.Stat(filepath.Join(dir, "meal-week-2025-06-16.html"))
	assert.NoError(t, err)
}

func TestExportArchivedWeek(t *testing.T) {
	tr := setupTracker(t)
	logMeal(t, tr, week.Friday, week.Dinner, "Sushi", 700, true)
	_, _, err := tr.ResetWeek(tr.Load(), testPassword)
	require.NoError(t, err)
	cmd, _ := newTestCmd()
	path := filepath.Join(t.TempDir(), "archived.md")

	require.NoError(t, runExport(cmd, tr, "md", path, "1"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Archived Week 2025-06-18")
	assert.Contains(t, string(data), "Sushi")
}

func TestExportErrors(t *testing.T) {
	tr := setupTracker(t)
	cmd, _ := newTestCmd()
	dir := t.TempDir()

	err := runExport(cmd, tr, "docx", filepath.Join(dir, "week.docx"), "")
	assert.ErrorContains(t, err, "unsupported format")

	err = runExport(cmd, tr, "md", filepath.Join(dir, "week.md"), "9")
	assert.EqualError(t, err, "archived week '9' not found")
}
