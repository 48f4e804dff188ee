package model

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/bookmark/internal/application/port"
	"github.com/bnema/bookmark/internal/cli/styles"
)

// ErrCancelled is reported when the user leaves before the backend answers.
var ErrCancelled = errors.New("cancelled")

// ProgressConfig tunes when a ProgressModel finishes on its own.
type ProgressConfig struct {
	// Message is shown next to the spinner while the overlay is up.
	Message string
	// QuitOnRows ends the program once recommendation rows arrive.
	QuitOnRows bool
	// QuitOnPanelError ends the program when the recommendation panel shows an error.
	QuitOnPanelError bool
}

// ProgressModel waits on the backend: it draws the overlay spinner,
// toasts and the recommendation panel until a DoneMsg arrives.
type ProgressModel struct {
	spinner spinner.Model
	help    help.Model
	keys    styles.ProgressKeyMap
	theme   *styles.Theme
	cfg     ProgressConfig

	overlay      bool
	panelLoading string
	rows         []port.RecommendationRow
	panelErr     string
	toasts       toastStack

	done   bool
	target string
	err    error
}

// NewProgressModel creates a progress model.
func NewProgressModel(theme *styles.Theme, cfg ProgressConfig) ProgressModel {
	return ProgressModel{
		spinner: styles.NewDefaultSpinner(theme),
		help:    styles.NewStyledHelp(theme),
		keys:    styles.DefaultProgressKeyMap(),
		theme:   theme,
		cfg:     cfg,
	}
}

// Init starts the spinner.
func (m ProgressModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages.
func (m ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Cancel) {
			return m.finish("", ErrCancelled)
		}
	case OverlayMsg:
		m.overlay = msg.Visible
	case ToastMsg:
		m.toasts = m.toasts.add(msg)
	case ToastExpiredMsg:
		m.toasts = m.toasts.remove(msg.ID)
	case PanelLoadingMsg:
		m.panelLoading = msg.Text
		m.panelErr = ""
	case PanelRowsMsg:
		m.panelLoading = ""
		m.panelErr = ""
		m.rows = msg.Rows
		if m.cfg.QuitOnRows {
			return m.finish("", nil)
		}
	case PanelErrorMsg:
		m.panelLoading = ""
		m.rows = nil
		m.panelErr = msg.Message
		if m.cfg.QuitOnPanelError {
			return m.finish("", errors.New(msg.Message))
		}
	case DoneMsg:
		return m.finish(msg.Target, msg.Err)
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m ProgressModel) finish(target string, err error) (tea.Model, tea.Cmd) {
	if m.done {
		return m, nil
	}
	m.done = true
	m.overlay = false
	m.target = target
	m.err = err
	return m, tea.Quit
}

// View renders the model.
func (m ProgressModel) View() string {
	if m.done {
		return ""
	}

	var sections []string
	if m.overlay {
		sections = append(sections, m.spinner.View()+" "+m.theme.Subtle.Render(m.cfg.Message))
	}
	if m.panelLoading != "" {
		sections = append(sections, m.spinner.View()+" "+m.theme.Subtle.Render(m.panelLoading))
	}
	for _, row := range m.rows {
		sections = append(sections, m.theme.RecommendationLine(row))
	}
	if m.panelErr != "" {
		sections = append(sections, m.theme.ErrorStyle.Render(m.panelErr))
	}
	if toasts := m.toasts.view(m.theme); toasts != "" {
		sections = append(sections, toasts)
	}
	sections = append(sections, m.help.View(m.keys))
	return strings.Join(sections, "\n") + "\n"
}

// Done reports whether the program finished.
func (m ProgressModel) Done() bool { return m.done }

// Target returns the navigation target, empty when none was reached.
func (m ProgressModel) Target() string { return m.target }

// Err returns the failure that ended the program.
func (m ProgressModel) Err() error { return m.err }

// Rows returns the last rendered recommendation rows.
func (m ProgressModel) Rows() []port.RecommendationRow { return m.rows }

// Toasts returns the texts of visible toasts, oldest first.
func (m ProgressModel) Toasts() []string {
	out := make([]string, 0, len(m.toasts))
	for _, t := range m.toasts {
		out = append(out, t.Text)
	}
	return out
}
