package ui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// viewerModel is a minimal scrollable pager for a rendered report.
type viewerModel struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
}

// RunViewer opens the rendered report in a fullscreen scrollable view.
func RunViewer(title, content string) error {
	p := tea.NewProgram(viewerModel{title: title, content: content}, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m viewerModel) Init() tea.Cmd {
	return nil
}

func (m viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		headerHeight := 2
		footerHeight := 1
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m viewerModel) View() string {
	if !m.ready {
		return "loading..."
	}
	header := titleStyle.Render(m.title) + "\n\n"
	footer := helpStyle.Render("up/down: scroll  -  q: quit")
	return header + m.viewport.View() + "\n" + footer
}
