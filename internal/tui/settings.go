package tui

import (
	"fmt"
	"strings"

	"ssh-roads/internal/config"
	"ssh-roads/internal/tui/components"
	"ssh-roads/internal/tui/styles"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type settingsSavedMsg struct{}

type settingsErrorMsg struct {
	err error
}

type settingsModel struct {
	cfg  *config.Config
	keys []config.KeySpec
	path string

	// save persists cfg. Swapped in tests.
	save func(*config.Config) error

	cursor  int
	editing bool
	editor  textinput.Model

	width  int
	height int

	status  string
	isError bool
}

// RunSettings starts the full-screen settings viewer and editor.
func RunSettings() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	path, _ := config.Path()

	m := newSettingsModel(cfg, path)
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func newSettingsModel(cfg *config.Config, path string) settingsModel {
	return settingsModel{
		cfg:  cfg,
		keys: config.Keys,
		path: path,
		save: func(c *config.Config) error { return c.Save() },
	}
}

func (m settingsModel) Init() tea.Cmd {
	return nil
}

func (m settingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case settingsSavedMsg:
		m.editing = false
		m.status = "Settings saved"
		m.isError = false
		return m, nil

	case settingsErrorMsg:
		m.status = "Error: " + msg.err.Error()
		m.isError = true
		return m, nil
	}

	if m.editing {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m settingsModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		return m.handleEditKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.keys)-1 {
			m.cursor++
		}
	case "enter", "e":
		spec := m.keys[m.cursor]
		ti := textinput.New()
		ti.SetValue(spec.Get(m.cfg))
		ti.Focus()
		ti.Width = 30
		ti.Placeholder = "enter value"
		m.editor = ti
		m.editing = true
		m.status = ""
		return m, textinput.Blink
	}

	return m, nil
}

func (m settingsModel) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		return m, nil
	case "enter":
		value := strings.ToLower(strings.TrimSpace(m.editor.Value()))
		spec := m.keys[m.cursor]
		if err := spec.Apply(m.cfg, value); err != nil {
			m.status = "Error: " + err.Error()
			m.isError = true
			return m, nil
		}
		return m, m.saveSettings()
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m settingsModel) saveSettings() tea.Cmd {
	cfg, save := m.cfg, m.save
	return func() tea.Msg {
		if err := save(cfg); err != nil {
			return settingsErrorMsg{err: err}
		}
		return settingsSavedMsg{}
	}
}

func (m settingsModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := components.Header(m.width, "config", m.path)

	bindings := []components.KeyBinding{
		{Key: "j/k", Desc: "navigate"},
		{Key: "e", Desc: "edit"},
		{Key: "q", Desc: "quit"},
	}
	if m.editing {
		bindings = []components.KeyBinding{
			{Key: "enter", Desc: "save"},
			{Key: "esc", Desc: "cancel"},
		}
	}
	footer := components.Footer(m.width, bindings)
	status := components.StatusBar(m.width, m.status, m.isError)

	contentH := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer)-lipgloss.Height(status), 1)

	sections := []string{header, m.renderContent(contentH)}
	if status != "" {
		sections = append(sections, status)
	}
	sections = append(sections, footer)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m settingsModel) renderContent(height int) string {
	const labelWidth = 20

	rows := make([]string, 0, len(m.keys)+1)
	for i, spec := range m.keys {
		value := spec.Get(m.cfg)
		if value == "" {
			value = "(not set)"
		}

		if i != m.cursor {
			rows = append(rows, "  "+
				styles.MutedText.Width(labelWidth).Render(spec.Name)+
				styles.MutedText.Render(value))
			continue
		}

		row := styles.AccentText.Render("> ") + styles.Label.Width(labelWidth).Render(spec.Name)
		if m.editing {
			rows = append(rows, row+m.editor.View())
			continue
		}
		rows = append(rows,
			row+styles.Value.Bold(true).Render(value),
			strings.Repeat(" ", 4)+styles.MutedText.Italic(true).Render(spec.Description),
		)
	}

	card := styles.Card.Width(64).Render(strings.Join(rows, "\n"))
	combined := lipgloss.JoinVertical(lipgloss.Center, styles.Title.Render("Settings"), "", card)

	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, combined)
}
