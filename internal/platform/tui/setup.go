package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-cubes/internal/config"
)

// Setup form fields, in display order.
const (
	fieldPlayer = iota
	fieldGridSize
	fieldColors
	fieldMultiple
	fieldMulticubes
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Nickname",
	"Grid size",
	"Colors",
	"Colors per multicube",
	"Multicubes",
}

// SetupKeyMap defines the key bindings for the setup form.
type SetupKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Preset key.Binding
	Submit key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SetupKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Preset, k.Submit, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k SetupKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Prev, k.Preset}, {k.Submit, k.Back, k.Quit}}
}

// DefaultSetupKeyMap returns default key bindings.
func DefaultSetupKeyMap() SetupKeyMap {
	return SetupKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("S-tab", "prev field"),
		),
		Preset: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "next preset"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// SetupModel is the new-game form: nickname plus board settings.
type SetupModel struct {
	inputs    []textinput.Model
	focus     int
	preset    int // index into config.Presets(), -1 for none
	keys      SetupKeyMap
	help      help.Model
	width     int
	err       error
	submitted bool
	goingBack bool
	quitting  bool
	player    string
	settings  config.Settings
}

// NewSetupModel creates the form pre-filled with player and s.
func NewSetupModel(player string, s config.Settings, width int) SetupModel {
	m := SetupModel{
		inputs: make([]textinput.Model, fieldCount),
		preset: -1,
		keys:   DefaultSetupKeyMap(),
		help:   help.New(),
		width:  width,
	}

	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 3
		ti.Width = 6
		m.inputs[i] = ti
	}
	m.inputs[fieldPlayer].CharLimit = 20
	m.inputs[fieldPlayer].Width = 20
	m.inputs[fieldPlayer].Placeholder = "player"
	m.inputs[fieldPlayer].SetValue(player)
	m.fill(s)
	m.inputs[fieldPlayer].Focus()

	return m
}

// fill writes s into the numeric fields.
func (m *SetupModel) fill(s config.Settings) {
	m.inputs[fieldGridSize].SetValue(strconv.Itoa(s.GridSize))
	m.inputs[fieldColors].SetValue(strconv.Itoa(s.ColorsCount))
	m.inputs[fieldMultiple].SetValue(strconv.Itoa(s.MultipleColors))
	m.inputs[fieldMulticubes].SetValue(strconv.Itoa(s.MulticubeCount))
}

// parse reads the form into a player name and validated settings.
func (m SetupModel) parse() (string, config.Settings, error) {
	player := strings.TrimSpace(m.inputs[fieldPlayer].Value())
	if player == "" {
		return "", config.Settings{}, fmt.Errorf("nickname is required")
	}
	if strings.ContainsFunc(player, func(r rune) bool { return r == ' ' || r == '\t' }) {
		return "", config.Settings{}, fmt.Errorf("nickname must not contain spaces")
	}

	nums := make([]int, fieldCount)
	for i := fieldGridSize; i < fieldCount; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(m.inputs[i].Value()))
		if err != nil {
			return "", config.Settings{}, fmt.Errorf("%s must be a number", strings.ToLower(fieldLabels[i]))
		}
		nums[i] = n
	}

	s := config.Settings{
		GridSize:       nums[fieldGridSize],
		ColorsCount:    nums[fieldColors],
		MultipleColors: nums[fieldMultiple],
		MulticubeCount: nums[fieldMulticubes],
	}
	if err := s.Validate(); err != nil {
		return "", config.Settings{}, err
	}
	return player, s, nil
}

// Init initializes the setup model.
func (m SetupModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the form.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Next):
			return m, m.setFocus((m.focus + 1) % fieldCount)

		case key.Matches(msg, m.keys.Prev):
			return m, m.setFocus((m.focus + fieldCount - 1) % fieldCount)

		case key.Matches(msg, m.keys.Preset):
			m.applyNextPreset()
			return m, nil

		case key.Matches(msg, m.keys.Submit):
			player, s, err := m.parse()
			if err != nil {
				m.err = err
				return m, nil
			}
			m.player, m.settings = player, s
			m.submitted = true
			return m, tea.Quit
		}
		m.err = nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// setFocus moves focus to field i.
func (m *SetupModel) setFocus(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[m.focus].Focus()
}

// applyNextPreset cycles through presets, keeping the grid size.
func (m *SetupModel) applyNextPreset() {
	presets := config.Presets()
	m.preset = (m.preset + 1) % len(presets)

	s := config.DefaultSettings()
	if n, err := strconv.Atoi(strings.TrimSpace(m.inputs[fieldGridSize].Value())); err == nil {
		s.GridSize = n
	}
	config.ApplyPreset(&s, presets[m.preset])
	m.fill(s)
	m.err = nil
}

// View renders the form.
func (m SetupModel) View() string {
	if m.quitting || m.goingBack || m.submitted {
		return ""
	}

	labelStyle := lipgloss.NewStyle().Width(24).Foreground(lipgloss.Color("245"))
	focusStyle := labelStyle.Foreground(lipgloss.Color("229")).Bold(true)
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(lipgloss.NewStyle().Bold(true).Render("NEW GAME"), m.width))
	b.WriteString("\n\n")

	for i, in := range m.inputs {
		style := labelStyle
		if i == m.focus {
			style = focusStyle
		}
		b.WriteString(centerText(lipgloss.JoinHorizontal(lipgloss.Top, style.Render(fieldLabels[i]), in.View()), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.preset >= 0 {
		p := config.Presets()[m.preset]
		b.WriteString(centerText(hintStyle.Render(fmt.Sprintf("preset %s: %s", p, p.Description())), m.width))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(centerText(errStyle.Render(m.err.Error()), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	b.WriteString("\n")
	return b.String()
}

// SetupResult holds the result of running the form.
type SetupResult struct {
	Player   string
	Settings config.Settings
	Back     bool
	Quit     bool
}

// Result returns what the form ended with.
func (m SetupModel) Result() SetupResult {
	return SetupResult{
		Player:   m.player,
		Settings: m.settings,
		Back:     m.goingBack,
		Quit:     m.quitting || (!m.submitted && !m.goingBack),
	}
}

// RunSetup runs the new-game form.
func RunSetup(player string, s config.Settings, width int) (SetupResult, error) {
	p := tea.NewProgram(
		NewSetupModel(player, s, width),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return SetupResult{Quit: true}, err
	}

	m, ok := finalModel.(SetupModel)
	if !ok {
		return SetupResult{Quit: true}, nil
	}
	return m.Result(), nil
}
