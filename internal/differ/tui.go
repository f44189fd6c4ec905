// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss/v2"
)

// runViewer shows m full screen until the user quits. Replaced in tests.
var runViewer = func(m tea.Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

const chromeHeight = 2 // title + footer

type viewer struct {
	title   string
	content string
	vp      viewport.Model
	ready   bool
}

func newViewer(title, content string) viewer {
	return viewer{title: title, content: content}
}

func (m viewer) Init() tea.Cmd { return nil }

func (m viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		height := max(msg.Height-chromeHeight, 1)
		if !m.ready {
			m.vp = viewport.New(msg.Width, height)
			m.vp.SetContent(m.content)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = height
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m viewer) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}
	title := lipgloss.NewStyle().Bold(true).Render(m.title)
	footer := fmt.Sprintf("%3.f%%  ↑/↓ PgUp/PgDn scroll, Q/ESCAPE quit", m.vp.ScrollPercent()*100) //nolint:mnd
	return title + "\n" + m.vp.View() + "\n" + footer
}
