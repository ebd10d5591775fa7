package termview

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/phanxgames/bstviz"
)

type styles struct {
	edge    lipgloss.Style
	node    lipgloss.Style
	visited lipgloss.Style
	found   lipgloss.Style
	ring    lipgloss.Style
	plain   lipgloss.Style
	summary lipgloss.Style
	status  lipgloss.Style
	err     lipgloss.Style
	prompt  lipgloss.Style
}

func fg(c bstviz.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
}

func newStyles(p bstviz.Palette) styles {
	return styles{
		edge:    fg(p.Edge),
		node:    fg(p.Node).Bold(true),
		visited: fg(p.Visited).Bold(true),
		found:   fg(p.Found).Bold(true),
		ring:    fg(p.Ring).Bold(true).Underline(true),
		plain:   lipgloss.NewStyle(),
		summary: fg(p.Text).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(p.Edge.Hex())).Padding(0, 1),
		status:  fg(p.Text).Faint(true),
		err:     fg(p.Ring).Bold(true),
		prompt:  fg(p.Node).Bold(true),
	}
}

func (s styles) cell(c cell) lipgloss.Style {
	var st lipgloss.Style
	switch c.kind {
	case cellEdge:
		st = s.edge
	case cellNode:
		st = s.node
	case cellVisited:
		st = s.visited
	case cellFound:
		st = s.found
	case cellRing:
		st = s.ring
	default:
		return s.plain
	}
	if c.faint {
		st = st.Faint(true)
	}
	return st
}
