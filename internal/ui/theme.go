package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/grid/internal/model"
)

// Theme bundles the styles and symbols every renderer pulls from.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Help lipgloss.Style
	Selected, Dragging, Editing                lipgloss.Style
	Border                                     lipgloss.Border
	BorderColor                                lipgloss.Color

	SymEditing, SymDrag, SymDelete string

	// State badges: Default, Error and Success.
	StateAll, StateOpen, StateClosed lipgloss.Style
}

var current = classic()

// SetTheme switches the theme by name; unknown names fall back to classic.
func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = neon()
	case "mono":
		current = mono()
	default:
		current = classic()
	}
}

// Current returns the active theme.
func Current() Theme { return current }

// Badge renders a state with its colour.
func (t Theme) Badge(s model.State) string {
	switch s {
	case model.StateAll:
		return t.StateAll.Render("● " + s.Label())
	case model.StateOpen:
		return t.StateOpen.Render("● " + s.Label())
	case model.StateClosed:
		return t.StateClosed.Render("● " + s.Label())
	}
	return t.Muted.Render("-")
}

func classic() Theme {
	return Theme{
		Name:        "classic",
		Title:       lipgloss.NewStyle().Bold(true),
		Muted:       lipgloss.NewStyle().Faint(true),
		Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Help:        lipgloss.NewStyle().Faint(true),
		Selected:    lipgloss.NewStyle().Bold(true).Reverse(true),
		Dragging:    lipgloss.NewStyle().Faint(true).Italic(true),
		Editing:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Border:      lipgloss.RoundedBorder(),
		BorderColor: lipgloss.Color("8"),
		SymEditing:  "✎",
		SymDrag:     "⠿",
		SymDelete:   "✖",
		StateAll:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		StateOpen:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		StateClosed: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	}
}

func neon() Theme {
	t := classic()
	t.Name = "neon"
	t.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	t.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	t.Editing = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	t.BorderColor = lipgloss.Color("13")
	return t
}

func mono() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Name:        "mono",
		Title:       plain.Bold(true),
		Muted:       plain,
		Accent:      plain,
		Success:     plain,
		Error:       plain.Bold(true),
		Help:        plain,
		Selected:    plain.Reverse(true),
		Dragging:    plain.Underline(true),
		Editing:     plain,
		Border:      lipgloss.NormalBorder(),
		BorderColor: lipgloss.Color(""),
		SymEditing:  "*",
		SymDrag:     "=",
		SymDelete:   "x",
		StateAll:    plain,
		StateOpen:   plain,
		StateClosed: plain,
	}
}
