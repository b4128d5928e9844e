package cmd

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathforge/internal/engine"
)

// Color palette shared by all printed output.
var (
	colorPrimary = lipgloss.Color("#8B5CF6") // Purple
	colorSuccess = lipgloss.Color("#22C55E") // Green
	colorError   = lipgloss.Color("#F43F5E") // Rose
	colorDim     = lipgloss.Color("#94A3B8") // Slate
	colorBorder  = lipgloss.Color("#334155") // Slate
)

var (
	styleQuestion = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2)

	styleMeta = lipgloss.NewStyle().
			Foreground(colorDim)

	styleHeading = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleHint = lipgloss.NewStyle().
			Foreground(colorDim).
			Italic(true)

	styleCorrect = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	styleIncorrect = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)
)

// renderQuestion renders one question as a bordered card. When showAnswer
// is set the correct option is marked.
func renderQuestion(q *engine.Question, showAnswer bool) string {
	var b strings.Builder

	b.WriteString(q.Text)
	b.WriteString("\n\n")
	for i, o := range q.Options {
		marker := " "
		if showAnswer && o.Correct {
			marker = styleCorrect.Render("*")
		}
		fmt.Fprintf(&b, "%s %d) %s\n", marker, i+1, o.Label)
	}

	meta := fmt.Sprintf("%s | difficulty %d | %s | %s",
		q.Type, q.Difficulty, q.Domain, q.Representation)
	b.WriteString("\n")
	b.WriteString(styleMeta.Render(meta))

	return styleQuestion.Render(strings.TrimRight(b.String(), "\n"))
}
