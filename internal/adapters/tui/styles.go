package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/peek/internal/ui/style"
)

var (
	pendingStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	readingStyle = lipgloss.NewStyle().
			Foreground(style.Accent).
			Bold(true)

	confidentStyle = lipgloss.NewStyle().
			Foreground(style.Green)

	unclearStyle = lipgloss.NewStyle().
			Foreground(style.Yellow)

	errorStyle = lipgloss.NewStyle().
			Foreground(style.Red)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Accent).
			Foreground(style.Ink)
)
