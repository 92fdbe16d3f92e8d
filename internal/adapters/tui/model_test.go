package tui_test

import (
	"errors"
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/peek/internal/adapters/tui"
	"go.trai.ch/peek/internal/core/domain"
)

func update(t *testing.T, m *tui.Model, msg tea.Msg) *tui.Model {
	t.Helper()
	next, _ := m.Update(msg)
	updated, ok := next.(*tui.Model)
	require.True(t, ok)
	return updated
}

func TestModel_Lifecycle(t *testing.T) {
	m := tui.NewModel(io.Discard)
	start := time.Unix(100, 0)

	m = update(t, m, tui.MsgInitPlan{Offsets: []int{11, 12, 13}})
	require.Len(t, m.Bytes, 3)
	for _, node := range m.Bytes {
		assert.Equal(t, tui.StatusPending, node.Status)
	}
	assert.Equal(t, "???", m.Recovered())

	m = update(t, m, tui.MsgByteStart{SpanID: "a", Offset: 11, StartTime: start})
	assert.Equal(t, tui.StatusReading, m.Bytes[0].Status)

	m = update(t, m, tui.MsgByteRecovered{
		SpanID:  "a",
		Result:  domain.RecoveryResult{Offset: 11, Byte: 'O', BestScore: 401, Rounds: 401, Confident: true},
		EndTime: start.Add(2 * time.Second),
	})
	assert.Equal(t, tui.StatusConfident, m.Bytes[0].Status)
	assert.Equal(t, 2*time.Second, m.Bytes[0].Duration)

	m = update(t, m, tui.MsgByteStart{SpanID: "b", Offset: 12, StartTime: start})
	m = update(t, m, tui.MsgByteRecovered{
		SpanID: "b",
		Result: domain.RecoveryResult{Offset: 12, Byte: 'K', BestScore: 12, Rounds: 1000},
	})
	assert.Equal(t, tui.StatusUnclear, m.Bytes[1].Status)

	m = update(t, m, tui.MsgByteStart{SpanID: "c", Offset: 13, StartTime: start})
	m = update(t, m, tui.MsgByteRecovered{SpanID: "c", Err: errors.New("boom")})
	assert.Equal(t, tui.StatusError, m.Bytes[2].Status)

	assert.Equal(t, "OK?", m.Recovered())
}

func TestModel_UnknownEventsIgnored(t *testing.T) {
	m := tui.NewModel(io.Discard)
	m = update(t, m, tui.MsgInitPlan{Offsets: []int{1}})

	m = update(t, m, tui.MsgByteStart{SpanID: "x", Offset: 99})
	m = update(t, m, tui.MsgByteRecovered{SpanID: "y"})

	assert.Equal(t, tui.StatusPending, m.Bytes[0].Status)
}

func TestModel_Quit(t *testing.T) {
	m := tui.NewModel(io.Discard)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.Interrupted())
}

func TestModel_NotInterruptedByEvents(t *testing.T) {
	m := tui.NewModel(io.Discard)
	m = update(t, m, tui.MsgInitPlan{Offsets: []int{1}})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.False(t, m.Interrupted())
}

func TestModel_View(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	m := tui.NewModel(io.Discard)
	m = update(t, m, tui.MsgInitPlan{Offsets: []int{11, 12}})
	m = update(t, m, tui.MsgByteStart{SpanID: "a", Offset: 11})
	m = update(t, m, tui.MsgByteRecovered{
		SpanID: "a",
		Result: domain.RecoveryResult{Offset: 11, Byte: 'O', BestScore: 401, Rounds: 401, Confident: true},
	})
	m = update(t, m, tui.MsgByteStart{SpanID: "b", Offset: 12})

	view := m.View()
	assert.Contains(t, view, "PEEK")
	assert.Contains(t, view, "0x4F 'O'  401 vs 0  in 401 rounds")
	assert.Contains(t, view, "reading")
	assert.Contains(t, view, `Recovered: "O?"`)
}
