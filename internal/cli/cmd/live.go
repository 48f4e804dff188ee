package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/bookmark/internal/app/control"
	"github.com/bnema/bookmark/internal/cli"
	"github.com/bnema/bookmark/internal/cli/model"
	"github.com/bnema/bookmark/internal/domain/entity"
	"github.com/bnema/bookmark/internal/logging"
)

var errDisconnected = errors.New("connection to the server was lost")

// liveStart wires page controllers into a connected session. It runs once
// the program is up; a returned error ends the program.
type liveStart func(s *cli.Session, p *tea.Program) error

// runLive connects to the backend and shows a progress program until the
// page navigates away, fails, or the user cancels.
func runLive(a *cli.App, cfg model.ProgressConfig, start liveStart) (model.ProgressModel, error) {
	p := tea.NewProgram(model.NewProgressModel(a.Theme, cfg), tea.WithOutput(os.Stderr))

	session, err := a.Connect(a.Ctx(), cli.SessionDeps{
		Presenter: model.NewPresenter(p),
		Navigator: model.NewNavigator(p),
	})
	if err != nil {
		return model.ProgressModel{}, err
	}
	defer func() {
		if cerr := session.Close(); cerr != nil {
			logging.FromContext(a.Ctx()).Warn().Err(cerr).Msg("session closed with error")
		}
	}()

	go func() {
		if err := start(session, p); err != nil {
			p.Send(model.DoneMsg{Err: err})
		}
	}()
	go func() {
		select {
		case <-session.Disconnected():
			p.Send(model.DoneMsg{Err: errDisconnected})
		case <-session.Ctx().Done():
		}
	}()

	final, err := p.Run()
	if err != nil {
		return model.ProgressModel{}, fmt.Errorf("run model: %w", err)
	}
	pm, ok := final.(model.ProgressModel)
	if !ok {
		return model.ProgressModel{}, fmt.Errorf("unexpected model type")
	}
	return pm, pm.Err()
}

// mountSearch creates the page search controller. A failed search ends the program.
func mountSearch(a *cli.App, uc *cli.UseCases, s *cli.Session, p *tea.Program) *control.SearchController {
	ctl := control.NewSearchController(control.SearchDeps{
		History:    uc.History,
		Cookies:    uc.Cookie,
		Channel:    s.Client,
		Overlay:    model.NewOverlay(p),
		Notifier:   s.Notifier,
		Navigation: s.Navigation,
		Post:       s.Loop.Post,
	}, control.SearchConfig{
		DefaultError:           a.Config.Search.DefaultError,
		NotificationDurationMs: a.Config.Notification.DurationMs,
	})
	ctl.Observe(func(state entity.SearchState, detail string) {
		if state == entity.SearchFailed {
			p.Send(model.DoneMsg{Err: errors.New(detail)})
		}
	})
	s.Defer(func(context.Context) { ctl.Detach() })
	return ctl
}
