// Package tui provides the interactive terminal view of a leak run.
package tui

import (
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/peek/internal/core/domain"
	"go.trai.ch/peek/internal/ui/output"
)

// ByteStatus represents the state of one offset.
type ByteStatus string

const (
	// StatusPending indicates the offset has not been started.
	StatusPending ByteStatus = "Pending"
	// StatusReading indicates the offset is being recovered.
	StatusReading ByteStatus = "Reading"
	// StatusConfident indicates the best class met the margin.
	StatusConfident ByteStatus = "Confident"
	// StatusUnclear indicates the round budget ran out first.
	StatusUnclear ByteStatus = "Unclear"
	// StatusError indicates the offset could not be attempted.
	StatusError ByteStatus = "Error"
)

// ByteNode is one row of the view.
type ByteNode struct {
	Offset    int
	Status    ByteStatus
	Result    domain.RecoveryResult
	Err       error
	StartTime time.Time
	Duration  time.Duration
}

// Model represents the TUI state.
type Model struct {
	Bytes     []*ByteNode
	OffsetMap map[int]*ByteNode
	SpanMap   map[string]*ByteNode
	Width     int
	Height    int

	interrupted bool
}

// NewModel creates an empty model and sets the lipgloss profile for w.
func NewModel(w io.Writer) *Model {
	if w == nil {
		w = os.Stderr
	}
	lipgloss.SetColorProfile(output.New(w).Profile)

	return &Model{
		OffsetMap: make(map[int]*ByteNode),
		SpanMap:   make(map[string]*ByteNode),
	}
}

// Interrupted reports whether the user quit the view.
func (m *Model) Interrupted() bool {
	return m.interrupted
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.interrupted = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case MsgInitPlan:
		m.Bytes = make([]*ByteNode, len(msg.Offsets))
		m.OffsetMap = make(map[int]*ByteNode, len(msg.Offsets))
		m.SpanMap = make(map[string]*ByteNode)
		for i, offset := range msg.Offsets {
			m.Bytes[i] = &ByteNode{Offset: offset, Status: StatusPending}
			m.OffsetMap[offset] = m.Bytes[i]
		}

	case MsgByteStart:
		if node, ok := m.OffsetMap[msg.Offset]; ok {
			node.Status = StatusReading
			node.StartTime = msg.StartTime
			m.SpanMap[msg.SpanID] = node
		}

	case MsgByteRecovered:
		if node, ok := m.SpanMap[msg.SpanID]; ok {
			node.Result = msg.Result
			node.Err = msg.Err
			node.Duration = msg.EndTime.Sub(node.StartTime)
			switch {
			case msg.Err != nil:
				node.Status = StatusError
			case msg.Result.Confident:
				node.Status = StatusConfident
			default:
				node.Status = StatusUnclear
			}
		}
	}

	return m, nil
}

// Recovered returns the bytes finished so far, '?' for the others.
func (m *Model) Recovered() string {
	out := make([]rune, len(m.Bytes))
	for i, node := range m.Bytes {
		switch node.Status {
		case StatusConfident, StatusUnclear:
			out[i] = node.Result.Printable()
		default:
			out[i] = '?'
		}
	}
	return string(out)
}
