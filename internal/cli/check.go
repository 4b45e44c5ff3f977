package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/jonaszobl/weight-loss-service/internal/tracker"
	"github.com/jonaszobl/weight-loss-service/internal/week"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	footerStyle   = lipgloss.NewStyle().Faint(true)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
)

var checkCmd = LeafCommand{
	Use:   "check [day]",
	Short: "Tick off eaten meals in an interactive checklist",
	Args:  cobra.MaximumNArgs(1),
	RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
		day := ""
		if len(args) > 0 {
			day = args[0]
		}
		return runCheck(cmd, a.tracker, day)
	}),
}.Build()

// checkItem addresses one meal of the selected day.
type checkItem struct {
	category week.Category
	index    int
}

type checkModel struct {
	tracker   *tracker.Tracker
	doc       week.Week
	day       week.Weekday
	items     []checkItem
	cursor    int
	footerMsg string
}

func newCheckModel(tr *tracker.Tracker, doc week.Week, d week.Weekday) checkModel {
	m := checkModel{tracker: tr, doc: doc}
	return m.withDay(d)
}

// withDay switches the checklist to d and rebuilds its items.
func (m checkModel) withDay(d week.Weekday) checkModel {
	m.day = d
	m.items = nil
	for _, c := range week.Categories {
		for i := range m.doc.Day(d).Meals(c) {
			m.items = append(m.items, checkItem{category: c, index: i})
		}
	}
	m.cursor = 0
	return m
}

func (m checkModel) Init() tea.Cmd {
	return nil
}

func (m checkModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "right", "l":
		m = m.withDay((m.day + 1) % 7)
		m.footerMsg = ""
	case "left", "h":
		m = m.withDay((m.day + 6) % 7)
		m.footerMsg = ""
	case " ", "space", "x", "enter":
		return m.toggle(), nil
	}
	return m, nil
}

// toggle flips the selected meal and persists immediately.
func (m checkModel) toggle() checkModel {
	if len(m.items) == 0 {
		return m
	}
	item := m.items[m.cursor]
	doc, err := m.tracker.ToggleEaten(m.doc, m.day, item.category, item.index)
	m.doc = doc
	if err != nil {
		m.footerMsg = Error("not saved: " + err.Error())
		return m
	}
	m.footerMsg = ""
	return m
}

func (m checkModel) View() string {
	var b strings.Builder
	day := m.doc.Day(m.day)

	b.WriteString(headerStyle.Render(fmt.Sprintf("--- %s ---", m.day)))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(Silent("  No entries"))
		b.WriteString("\n")
	}

	var current week.Category = -1
	for i, item := range m.items {
		if item.category != current {
			current = item.category
			b.WriteString(" " + Info(current.String()) + "\n")
		}
		meal := day.Meals(item.category)[item.index]
		line := fmt.Sprintf("%s %s %4d kcal", checkbox(meal.Eaten), padRight(meal.Name, nameColWidth), meal.Calories)
		if i == m.cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString("   " + line + "\n")
	}

	b.WriteString("\n  ")
	b.WriteString(dayTotalLine(day))
	b.WriteString("\n\n")

	footer := "↑/↓ move  |  space toggle  |  ←/→ day  |  q quit"
	if m.footerMsg != "" {
		footer = m.footerMsg + "  |  " + footer
	}
	b.WriteString(footerStyle.Render(footer))
	b.WriteString("\n")
	return b.String()
}

func runCheck(cmd *cobra.Command, tr *tracker.Tracker, dayArg string) error {
	d, err := chooseDay(dayArg, tr.Today(), nil)
	if err != nil {
		return err
	}
	doc := tr.Load()
	out := cmd.OutOrStdout()

	// Non-TTY fallback: print the day without interaction
	if !isTerminal(out) {
		dates := week.Dates(tr.Now())
		writeDay(out, doc, d, dates[d])
		return nil
	}

	p := tea.NewProgram(newCheckModel(tr, doc, d), tea.WithOutput(out))
	_, err = p.Run()
	return err
}
