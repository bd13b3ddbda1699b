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
	"github.com/stefan-k/cobald/internal/domain"
)

// negotiatorQuery names what a status refresh asks the negotiator for.
type negotiatorQuery struct {
	pool      string
	resources []domain.ResourceID
}

func (q negotiatorQuery) poolName() string {
	if q.pool == "" {
		return "local"
	}

	return q.pool
}

func (q negotiatorQuery) describe() string {
	scope := "all resources"
	if len(q.resources) > 0 {
		names := make([]string, 0, len(q.resources))
		for _, resource := range q.resources {
			names = append(names, string(resource))
		}
		scope = strings.Join(names, ", ")
	}

	return fmt.Sprintf("Querying negotiator %s for %s...", q.poolName(), scope)
}

type negotiatorAnsweredMsg struct {
	err error
}

type negotiatorWaitModel struct {
	spinner  spinner.Model
	query    negotiatorQuery
	run      tea.Cmd
	now      func() time.Time
	started  time.Time
	waited   time.Duration
	err      error
	answered bool
}

func newNegotiatorWaitModel(query negotiatorQuery, run tea.Cmd, now func() time.Time) negotiatorWaitModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return negotiatorWaitModel{
		spinner: s,
		query:   query,
		run:     run,
		now:     now,
		started: now(),
	}
}

func (m negotiatorWaitModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.run)
}

func (m negotiatorWaitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.waited = m.now().Sub(m.started)
		return m, cmd
	case negotiatorAnsweredMsg:
		m.answered = true
		m.err = msg.err
		m.waited = m.now().Sub(m.started)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m negotiatorWaitModel) View() string {
	if m.answered {
		return ""
	}

	return fmt.Sprintf("%s waiting on %s (%s)", m.spinner.View(), m.query.poolName(), m.waited.Truncate(100*time.Millisecond))
}

// waitForNegotiator announces query on output before run starts, then spins
// until run returns.
func waitForNegotiator(ctx context.Context, output io.Writer, query negotiatorQuery, now func() time.Time, run func(context.Context) error) error {
	if _, err := fmt.Fprintln(output, query.describe()); err != nil {
		return err
	}

	p := tea.NewProgram(
		newNegotiatorWaitModel(query, func() tea.Msg {
			return negotiatorAnsweredMsg{err: run(ctx)}
		}, now),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := finalModel.(negotiatorWaitModel); ok {
		return m.err
	}

	return fmt.Errorf("unexpected final spinner model type %T", finalModel)
}
