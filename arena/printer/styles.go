package printer

import "github.com/charmbracelet/lipgloss"

var (
	freeColor  = lipgloss.Color("#04B575")
	usedColor  = lipgloss.Color("#FF4B4B")
	titleColor = lipgloss.Color("#00A2FF")
)

type styles struct {
	title lipgloss.Style
	free  lipgloss.Style
	used  lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		return styles{
			title: lipgloss.NewStyle(),
			free:  lipgloss.NewStyle(),
			used:  lipgloss.NewStyle(),
		}
	}
	return styles{
		title: lipgloss.NewStyle().Bold(true).Foreground(titleColor),
		free:  lipgloss.NewStyle().Foreground(freeColor),
		used:  lipgloss.NewStyle().Foreground(usedColor),
	}
}

func (s styles) block(free bool) lipgloss.Style {
	if free {
		return s.free
	}
	return s.used
}
