// Package watch implements the interactive session-watch screen used by the
// bonsai CLI: a spinner plus a status line, refreshed by polling the session
// until it leaves the RUNNING state.
package watch

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zkworks/bonsai-go/bonsai"
	"github.com/zkworks/bonsai-go/models"
)

type statusMsg models.SessionStatus

type errMsg struct{ err error }

type pollMsg struct{}

// Model is the bubbletea model for the watch screen. Construct it with
// [New] and run it with tea.NewProgram; after the program finishes, Status
// and Err expose the final snapshot.
type Model struct {
	session  *bonsai.Session
	interval time.Duration
	spinner  spinner.Model

	status  models.SessionStatus
	polled  bool
	err     error
	aborted bool
}

// New builds a watch model polling session every interval.
func New(session *bonsai.Session, interval time.Duration) Model {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = spinnerStyle
	return Model{session: session, interval: interval, spinner: s}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.poll())
}

func (m Model) poll() tea.Cmd {
	return func() tea.Msg {
		status, err := m.session.Status(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return statusMsg(status)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.aborted = true
			return m, tea.Quit
		}
		return m, nil

	case statusMsg:
		m.status = models.SessionStatus(msg)
		m.polled = true
		if m.status.Done() {
			return m, tea.Quit
		}
		return m, tea.Tick(m.interval, func(time.Time) tea.Msg { return pollMsg{} })

	case pollMsg:
		return m, m.poll()

	case errMsg:
		m.err = msg.err
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) View() string {
	if m.err != nil {
		return errorStyle.Render("✗ "+m.err.Error()) + "\n"
	}

	line := m.statusLine()
	if m.status.Done() {
		return line + "\n"
	}
	return m.spinner.View() + " " + line + helpStyle.Render("  (q to detach)") + "\n"
}

func (m Model) statusLine() string {
	if !m.polled {
		return "waiting for session " + m.session.ID
	}

	line := titleStyle.Render(m.session.ID) + " " + renderStatus(m.status.Status)
	if m.status.State != "" {
		line += helpStyle.Render(" · " + m.status.State)
	}
	if m.status.ElapsedTime > 0 {
		line += helpStyle.Render(fmt.Sprintf(" · %.0fs", m.status.ElapsedTime))
	}
	if m.status.ErrorMsg != "" {
		line += "\n" + errorStyle.Render(m.status.ErrorMsg)
	}
	return line
}

func renderStatus(status string) string {
	switch status {
	case models.StatusSucceeded:
		return successStyle.Render(status)
	case models.StatusRunning:
		return status
	default:
		return errorStyle.Render(status)
	}
}

// Status returns the last snapshot the screen fetched before quitting.
func (m Model) Status() models.SessionStatus {
	return m.status
}

// Err returns the polling error that terminated the screen, if any.
func (m Model) Err() error {
	return m.err
}

// Aborted reports whether the user detached with q or ctrl+c before the
// session reached a terminal state.
func (m Model) Aborted() bool {
	return m.aborted
}
