package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"task-triage/internal/model"
	"task-triage/internal/task"
)

const (
	panelWidth   = 44
	maxTextWidth = 48
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))

	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Width(panelWidth)

	categoryColors = map[model.Category]lipgloss.Color{
		model.CategoryUrgentImportant:    lipgloss.Color("196"),
		model.CategoryImportantNotUrgent: lipgloss.Color("46"),
		model.CategoryUrgentNotImportant: lipgloss.Color("226"),
		model.CategoryNeither:            lipgloss.Color("245"),
	}

	categoryTitles = map[model.Category]string{
		model.CategoryUrgentImportant:    "Do first (urgent, important)",
		model.CategoryImportantNotUrgent: "Schedule (important)",
		model.CategoryUrgentNotImportant: "Delegate (urgent)",
		model.CategoryNeither:            "Drop (neither)",
	}
)

func categoryStyle(c model.Category) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(categoryColors[c])
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// source marks which assessment the effective priority came from.
func source(t model.Task) string {
	if t.AIPriority != nil && t.AIPriority.Category.Valid() {
		return string(t.AIPriority.Provider)
	}
	return "local"
}

func renderTable(tasks []model.Task) string {
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		score, category := t.EffectivePriority()
		rows = append(rows, []string{
			t.ID,
			fmt.Sprintf("%d", score),
			string(category),
			source(t),
			truncate(t.Text, maxTextWidth),
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("ID", "SCORE", "CATEGORY", "SOURCE", "TEXT").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return lipgloss.NewStyle()
		}).
		String()
}

func renderPanel(c model.Category, tasks []model.Task) string {
	var b strings.Builder
	b.WriteString(categoryStyle(c).Bold(true).Render(categoryTitles[c]))
	b.WriteString("\n")

	if len(tasks) == 0 {
		b.WriteString(lipgloss.NewStyle().Faint(true).Render("(none)"))
	}
	for i, t := range tasks {
		score, _ := t.EffectivePriority()
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%2d  %s", score, truncate(t.Text, panelWidth-6))
	}

	return panelStyle.Render(b.String())
}

func renderMatrix(m task.Matrix) string {
	top := lipgloss.JoinHorizontal(lipgloss.Top,
		renderPanel(model.CategoryUrgentImportant, m[model.CategoryUrgentImportant]),
		renderPanel(model.CategoryImportantNotUrgent, m[model.CategoryImportantNotUrgent]),
	)
	bottom := lipgloss.JoinHorizontal(lipgloss.Top,
		renderPanel(model.CategoryUrgentNotImportant, m[model.CategoryUrgentNotImportant]),
		renderPanel(model.CategoryNeither, m[model.CategoryNeither]),
	)
	return lipgloss.JoinVertical(lipgloss.Left, top, bottom)
}
