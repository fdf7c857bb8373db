package tui

import "github.com/charmbracelet/lipgloss"

var (
	greetingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"})

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"})

	replyStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	errorStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(lipgloss.AdaptiveColor{Light: "1", Dark: "9"})
)

// renderReply styles reply text, in red when it reports a failure.
func renderReply(text string, failed bool) string {
	if failed {
		return errorStyle.Render(text)
	}
	return replyStyle.Render(text)
}
