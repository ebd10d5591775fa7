// Package termview runs a bstviz session as a bubbletea terminal program.
//
// Layout pixels are mapped onto terminal cells, so the same tree shape,
// entrance animation and search timing play out in a terminal. Nodes are
// drawn as "(v)", the found node as "[v]".
package termview

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/phanxgames/bstviz"
)

// FrameInterval is the animation tick period.
const FrameInterval = time.Second / 30

// footerRows is the space kept below the tree for the prompt and status.
const footerRows = 3

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Model is the bubbletea model for one session.
type Model struct {
	vis    *bstviz.Visualizer
	styles styles
	dark   bool

	width, height int
	frame         bstviz.Frame

	input     []rune
	status    string
	statusErr bool
	quitting  bool
}

// New creates a Model for v.
func New(v *bstviz.Visualizer, dark bool) Model {
	m := Model{vis: v, width: 100, height: 30}
	m = m.setTheme(dark)
	m.status = "type values and press Enter, \"search N\", \"delete\", or \"quit\""
	m.resize()
	return m
}

// Run starts a full-screen program for v and blocks until the user quits.
func Run(v *bstviz.Visualizer, dark bool) error {
	_, err := tea.NewProgram(New(v, dark), tea.WithAltScreen()).Run()
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tick()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()

	case tickMsg:
		m.frame = m.vis.Tick(FrameInterval)
		return m, tick()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		case tea.KeyBackspace:
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}
		case tea.KeyEsc:
			m.input = m.input[:0]
		case tea.KeyTab:
			m = m.setTheme(!m.dark)
		case tea.KeySpace:
			m.input = append(m.input, ' ')
		case tea.KeyRunes:
			m.input = append(m.input, msg.Runes...)
		}
	}
	return m, nil
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	line := string(m.input)
	m.input = nil
	c, err := bstviz.ParseCommand(line)
	if err != nil {
		return m.setStatus(err.Error(), true), nil
	}
	switch c.Kind {
	case bstviz.CmdQuit:
		m.quitting = true
		return m, tea.Quit
	case bstviz.CmdTheme:
		return m.setTheme(!m.dark), nil
	}
	msg, err := m.vis.Exec(c)
	if err != nil {
		return m.setStatus(err.Error(), true), nil
	}
	return m.setStatus(msg, false), nil
}

func (m Model) setStatus(s string, isErr bool) Model {
	m.status = s
	m.statusErr = isErr
	return m
}

func (m Model) setTheme(dark bool) Model {
	m.dark = dark
	if dark {
		m.styles = newStyles(bstviz.DarkPalette)
	} else {
		m.styles = newStyles(bstviz.LightPalette)
	}
	return m
}

// resize maps the terminal size onto the layout surface. The summary box
// takes the right-hand side when there is room.
func (m *Model) resize() {
	cols, rows := m.treeSize()
	m.vis.SetSize(float64(cols)*pxPerCol, float64(rows)*pxPerRow)
}

func (m Model) treeSize() (cols, rows int) {
	return max(m.width-m.summaryWidth(), 0), max(m.height-footerRows, 0)
}

func (m Model) summaryWidth() int {
	if m.width < 80 {
		return 0
	}
	return 30
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	cols, rows := m.treeSize()
	r := newRaster(cols, rows)
	r.draw(m.frame)
	body := r.styled(m.styles)

	if w := m.summaryWidth(); w > 0 {
		if s, ok := m.vis.Summary(); ok {
			box := m.styles.summary.Width(w - 4).Render(strings.Join(s.Lines(), "\n"))
			body = lipgloss.JoinHorizontal(lipgloss.Top, body, box)
		}
	}

	status := m.styles.status
	if m.statusErr {
		status = m.styles.err
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		body,
		status.Render(m.status),
		m.styles.prompt.Render("> ")+string(m.input)+"_",
	)
}
