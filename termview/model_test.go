package termview

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/bstviz"
)

func typeLine(t *testing.T, m Model, line string) Model {
	t.Helper()
	for _, r := range line {
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
		if r == ' ' {
			msg = tea.KeyMsg{Type: tea.KeySpace}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(Model)
}

func TestModelResizeMapsLayout(t *testing.T) {
	v := bstviz.New(bstviz.Options{Logger: bstviz.NoopLogger{}})
	m := New(v, false)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 20})
	m = next.(Model)

	require.Equal(t, 900.0, v.Layout().Width)
	require.Equal(t, 340.0, v.Layout().Height)

	next, _ = m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	m = next.(Model)
	require.Equal(t, 600.0, v.Layout().Width, "no summary column below 80 cols")
}

func TestModelBuildSearchDelete(t *testing.T) {
	v := bstviz.New(bstviz.Options{Logger: bstviz.NoopLogger{}})
	m := New(v, false)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 20})
	m = next.(Model)

	m = typeLine(t, m, "build 5,3,8")
	require.False(t, m.statusErr)
	require.Equal(t, "built 3 nodes, height 1", m.status)
	require.Empty(t, m.input)

	next, cmd := m.Update(tickMsg(time.Now()))
	m = next.(Model)
	require.NotNil(t, cmd, "tick reschedules itself")

	view := m.View()
	require.Contains(t, view, "(5)")
	require.Contains(t, view, "Total nodes: 3")

	m = typeLine(t, m, "search 9")
	require.Equal(t, "searching: 5 -> 8", m.status)

	m = typeLine(t, m, "search nine")
	require.True(t, m.statusErr)

	m = typeLine(t, m, "delete")
	require.Equal(t, "tree deleted", m.status)
	require.True(t, v.Tree().Empty())
	require.NotContains(t, m.View(), "Total nodes")
}

func TestModelEditingKeys(t *testing.T) {
	m := New(bstviz.New(bstviz.Options{Logger: bstviz.NoopLogger{}}), false)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("12")})
	m = next.(Model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m = next.(Model)
	require.Equal(t, "1", string(m.input))

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	require.Empty(t, m.input)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	require.True(t, m.dark)

	m = typeLine(t, m, "theme")
	require.False(t, m.dark)
}

func TestModelQuit(t *testing.T) {
	m := New(bstviz.New(bstviz.Options{Logger: bstviz.NoopLogger{}}), false)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
	require.Empty(t, next.View())

	m = New(bstviz.New(bstviz.Options{Logger: bstviz.NoopLogger{}}), false)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("quit")})
	m = next.(Model)
	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
	require.Empty(t, next.View())
}
