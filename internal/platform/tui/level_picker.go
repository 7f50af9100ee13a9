package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/games/crossing"
)

// PickerKeyMap defines the key bindings for the level picker.
type PickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k PickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Select, k.Quit}}
}

// DefaultPickerKeyMap returns default key bindings.
func DefaultPickerKeyMap() PickerKeyMap {
	return PickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "next"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// LevelPickerModel lets users choose the level a run starts on.
type LevelPickerModel struct {
	levels   []crossing.Level
	table    table.Model
	help     help.Model
	keys     PickerKeyMap
	width    int
	height   int
	selected int // index into levels, -1 while choosing
	quitting bool
}

// NewLevelPickerModel creates a picker over the given levels.
func NewLevelPickerModel(levels []crossing.Level, width, height int) LevelPickerModel {
	m := LevelPickerModel{
		levels:   levels,
		help:     help.New(),
		keys:     DefaultPickerKeyMap(),
		width:    width,
		height:   height,
		selected: -1,
	}
	m.table = m.createTable()
	return m
}

func (m *LevelPickerModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Name", Width: 20},
		{Title: "Size", Width: 7},
		{Title: "Roads", Width: 6},
		{Title: "Items", Width: 6},
	}

	rows := make([]table.Row, len(m.levels))
	for i, lvl := range m.levels {
		rows[i] = table.Row{
			strconv.Itoa(i + 1),
			lvl.Name,
			fmt.Sprintf("%dx%d", lvl.Width, lvl.Height),
			strconv.Itoa(len(lvl.Roads)),
			strconv.Itoa(countItems(lvl)),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(core.Max(m.height-6, 3)), // title, help and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("22")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func countItems(lvl crossing.Level) int {
	n := 0
	for _, it := range lvl.Items {
		if it != crossing.None {
			n++
		}
	}
	return n
}

// Init initializes the picker.
func (m LevelPickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m LevelPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if len(m.levels) > 0 {
				m.selected = m.table.Cursor()
			}
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the picker.
func (m LevelPickerModel) View() string {
	if m.quitting || m.selected >= 0 {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("Choose a starting level", m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.table.View()))
	b.WriteString("\n")

	b.WriteString(footerStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Selected returns the chosen level index and whether one was chosen.
func (m LevelPickerModel) Selected() (int, bool) {
	return m.selected, m.selected >= 0
}

// IsQuitting returns true if the user left without choosing.
func (m LevelPickerModel) IsQuitting() bool {
	return m.quitting
}

// RunLevelPicker shows the picker and returns the 0-based level index.
// ok is false when the user quit without choosing.
func RunLevelPicker(levels []crossing.Level, width, height int) (index int, ok bool, err error) {
	p := tea.NewProgram(
		NewLevelPickerModel(levels, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return 0, false, err
	}

	m, isPicker := finalModel.(LevelPickerModel)
	if !isPicker {
		return 0, false, nil
	}
	index, ok = m.Selected()
	return index, ok, nil
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}
