package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/peek/internal/ui/style"
)

// View renders the UI.
func (m *Model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("PEEK") + "\n\n")

	rows := m.Bytes
	if m.Height > 4 && len(rows) > m.Height-4 {
		rows = rows[len(rows)-(m.Height-4):]
	}
	for _, node := range rows {
		s.WriteString(renderRow(node) + "\n")
	}

	s.WriteString("\n" + fmt.Sprintf("Recovered: %q", m.Recovered()) + "\n")
	return s.String()
}

func renderRow(node *ByteNode) string {
	var icon, text string
	var st lipgloss.Style

	switch node.Status {
	case StatusReading:
		icon, st, text = style.Active, readingStyle, "reading"
	case StatusConfident:
		icon, st, text = style.Check, confidentStyle, describe(node)
	case StatusUnclear:
		icon, st, text = style.Warning, unclearStyle, describe(node)+" unclear"
	case StatusError:
		icon, st, text = style.Cross, errorStyle, node.Err.Error()
	default:
		icon, st = style.Pending, pendingStyle
	}

	return st.Render(strings.TrimRight(fmt.Sprintf("%s %6d  %s", icon, node.Offset, text), " "))
}

func describe(node *ByteNode) string {
	r := node.Result
	return fmt.Sprintf("0x%02X '%c'  %d vs %d  in %d rounds",
		r.Byte, r.Printable(), r.BestScore, r.RunnerUpScore, r.Rounds)
}
