package portal

import (
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

// screen is one portal page: a title, a count or role line, optional date
// and freshness notice, then the page blocks. emptyText replaces the blocks
// when there are none.
type screen struct {
	title     string
	summary   string
	date      string
	notice    string
	emptyText string
	blocks    func(styles) []string
}

func (sc screen) compose(s styles) string {
	lines := []string{s.title.Render(sc.title)}
	if sc.summary != "" {
		lines = append(lines, s.header.Render(sc.summary))
	}
	if sc.date != "" {
		lines = append(lines, s.meta.Render(sc.date))
	}
	if sc.notice != "" {
		lines = append(lines, s.warning.Render(sc.notice))
	}

	var blocks []string
	if sc.blocks != nil {
		blocks = sc.blocks(s)
	}
	if len(blocks) == 0 && sc.emptyText != "" {
		lines = append(lines, s.empty.Render(sc.emptyText))
	}

	return lipgloss.JoinVertical(lipgloss.Left, append(lines, blocks...)...)
}

type screenComposedMsg struct{}

type model struct {
	screen screen
	styles styles
	output string
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return screenComposedMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(screenComposedMsg); ok {
		m.output = m.screen.compose(m.styles)
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	return m.output
}

func render(sc screen) (string, error) {
	p := tea.NewProgram(
		model{screen: sc, styles: newStyles()},
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
