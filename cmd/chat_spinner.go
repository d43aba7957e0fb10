package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/medportal-cli/internal/domain"
)

const pendingQuoteWidth = 40

type turnSettledMsg struct {
	turn domain.ConversationTurn
	err  error
}

// pendingTurnModel shows the message being answered and how long the reply
// has been outstanding.
type pendingTurnModel struct {
	spinner spinner.Model
	quote   string
	source  string
	started time.Time
	now     func() time.Time
	send    tea.Cmd
	turn    domain.ConversationTurn
	err     error
	done    bool
}

func newPendingTurnModel(message, source string, now func() time.Time, send tea.Cmd) pendingTurnModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)
	if now == nil {
		now = time.Now
	}

	return pendingTurnModel{
		spinner: s,
		quote:   quotePendingMessage(message, pendingQuoteWidth),
		source:  source,
		started: now(),
		now:     now,
		send:    send,
	}
}

func (m pendingTurnModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.send)
}

func (m pendingTurnModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case turnSettledMsg:
		m.done = true
		m.turn = msg.turn
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m pendingTurnModel) View() string {
	if m.done {
		return ""
	}

	waited := m.now().Sub(m.started).Truncate(time.Second)
	return fmt.Sprintf("%s %s waiting for %s (%s)", m.spinner.View(), m.quote, m.source, waited)
}

// quotePendingMessage collapses whitespace and cuts the message to width runes.
func quotePendingMessage(message string, width int) string {
	text := strings.Join(strings.Fields(message), " ")
	runes := []rune(text)
	if width > 1 && len(runes) > width {
		text = string(runes[:width-1]) + "…"
	}

	return fmt.Sprintf("%q", text)
}

func replySourceName(offline bool) string {
	if offline {
		return "the offline assistant"
	}
	return "the portal"
}

// runPendingTurnSpinner shows the pending message on output until send
// settles the turn.
func runPendingTurnSpinner(
	ctx context.Context,
	output io.Writer,
	message string,
	offline bool,
	send func(context.Context) (domain.ConversationTurn, error),
) (domain.ConversationTurn, error) {
	sendCmd := func() tea.Msg {
		turn, err := send(ctx)
		return turnSettledMsg{turn: turn, err: err}
	}

	p := tea.NewProgram(
		newPendingTurnModel(message, replySourceName(offline), time.Now, sendCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return domain.ConversationTurn{}, err
	}

	result, ok := finalModel.(pendingTurnModel)
	if !ok {
		return domain.ConversationTurn{}, fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.turn, result.err
}
