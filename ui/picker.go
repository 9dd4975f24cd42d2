// Package ui provides the interactive picker behind `zd pick`. It renders
// to stderr so stdout stays clean for the selected path.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

var (
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	matchStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("62")).Underline(true)
)

type pickerModel struct {
	input    textinput.Model
	all      []string // ranked candidates, best first
	filtered []fuzzy.Match
	cursor   int
	selected string
	height   int
}

func newPickerModel(paths []string) pickerModel {
	ti := textinput.New()
	ti.Placeholder = "Filter..."
	ti.Focus()
	ti.CharLimit = 156

	m := pickerModel{input: ti, all: paths, height: 20}
	m.refilter()
	return m
}

// refilter narrows the candidate list to the current input. An empty input
// keeps the incoming frecency order; otherwise the fuzzy match score
// decides.
func (m *pickerModel) refilter() {
	query := m.input.Value()
	if query == "" {
		m.filtered = make([]fuzzy.Match, len(m.all))
		for i, p := range m.all {
			m.filtered[i] = fuzzy.Match{Str: p, Index: i}
		}
	} else {
		m.filtered = fuzzy.Find(query, m.all)
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m pickerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			if len(m.filtered) > 0 {
				m.selected = m.filtered[m.cursor].Str
			}
			return m, tea.Quit
		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "ctrl+n":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 2
		m.input.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	old := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != old {
		m.refilter()
	}
	return m, cmd
}

func (m pickerModel) View() string {
	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n")

	visible := m.height
	if visible < 1 {
		visible = 1
	}
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	for i := start; i < len(m.filtered) && i < start+visible; i++ {
		match := m.filtered[i]
		line := highlight(match)
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> ") + line)
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	if len(m.filtered) == 0 {
		b.WriteString(dimStyle.Render("  (no matches)"))
		b.WriteString("\n")
	}
	return b.String()
}

// highlight underlines the characters the filter matched. Matched byte
// indexes are grouped into contiguous runs and rendered as slices, never
// byte by byte, so multi-byte runes in paths survive intact.
func highlight(m fuzzy.Match) string {
	if len(m.MatchedIndexes) == 0 {
		return m.Str
	}
	matched := make(map[int]bool, len(m.MatchedIndexes))
	for _, idx := range m.MatchedIndexes {
		matched[idx] = true
	}
	var b strings.Builder
	for i := 0; i < len(m.Str); {
		j := i + 1
		for j < len(m.Str) && matched[j] == matched[i] {
			j++
		}
		if matched[i] {
			b.WriteString(matchStyle.Render(m.Str[i:j]))
		} else {
			b.WriteString(m.Str[i:j])
		}
		i = j
	}
	return b.String()
}

// Pick runs the picker over the ranked paths and returns the selection, or
// an empty string if the user dismissed it.
func Pick(paths []string) (string, error) {
	p := tea.NewProgram(newPickerModel(paths), tea.WithOutput(os.Stderr))
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("picker failed: %w", err)
	}
	m, ok := final.(pickerModel)
	if !ok {
		return "", nil
	}
	return m.selected, nil
}
