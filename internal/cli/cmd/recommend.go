package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/bookmark/internal/app/control"
	"github.com/bnema/bookmark/internal/application/port"
	"github.com/bnema/bookmark/internal/cli"
	"github.com/bnema/bookmark/internal/cli/model"
)

var (
	recommendBook string
	recommendPick int
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Ask for AI recommendations related to a book",
	Long: `Request recommendations for the given book, using your recent searches
as context, and print them as a numbered list.

With --pick N the N-th recommendation is searched right away and the results
URL is printed instead.

Examples:
  bookmark recommend --book "Linear Algebra Done Right"
  bookmark recommend --book "Linear Algebra Done Right" --pick 2`,
	Args: cobra.NoArgs,
	RunE: runRecommend,
}

func init() {
	rootCmd.AddCommand(recommendCmd)

	recommendCmd.Flags().StringVar(&recommendBook, "book", "", "title of the current book (required)")
	recommendCmd.Flags().IntVar(&recommendPick, "pick", 0, "search the N-th recommendation (1-based)")
	_ = recommendCmd.MarkFlagRequired("book")
}

func runRecommend(_ *cobra.Command, _ []string) error {
	a, uc, err := requireUseCases()
	if err != nil {
		return err
	}
	if strings.TrimSpace(recommendBook) == "" {
		return errors.New("--book cannot be empty")
	}
	if recommendPick < 0 {
		return errors.New("--pick must be positive")
	}

	cfg := model.ProgressConfig{
		Message:          "Searching...",
		QuitOnRows:       recommendPick == 0,
		QuitOnPanelError: true,
	}

	pm, err := runLive(a, cfg, func(s *cli.Session, p *tea.Program) error {
		panel := model.NewRecommendationPanel(p)
		view := port.RecommendationView(panel)
		if recommendPick > 0 {
			mountSearch(a, uc, s, p)
			view = &pickingView{RecommendationPanel: panel, session: s, sender: p, ordinal: recommendPick}
		}

		ctl := control.NewRecommendationController(control.RecommendationDeps{
			History: uc.History,
			Channel: s.Client,
			View:    view,
		}, control.RecommendationConfig{
			CurrentBook:  recommendBook,
			HistoryLimit: a.Config.Recommendations.HistoryLimit,
		})
		s.Defer(func(context.Context) { ctl.Detach() })

		var requestErr error
		if err := s.Invoke(func(ctx context.Context) {
			ctl.Mount(ctx, nil)
			requestErr = ctl.Request(ctx)
		}); err != nil {
			return err
		}
		return requestErr
	})
	if err != nil {
		return err
	}

	if recommendPick > 0 {
		fmt.Println(pm.Target())
		return nil
	}
	for _, row := range pm.Rows() {
		fmt.Println(a.Theme.RecommendationLine(row))
	}
	return nil
}

// pickingView activates one row as soon as the rows are rendered, the way
// a user clicking it would.
type pickingView struct {
	*model.RecommendationPanel
	session *cli.Session
	sender  model.Sender
	ordinal int
}

func (v *pickingView) Render(ctx context.Context, rows []port.RecommendationRow) []port.Control {
	controls := v.RecommendationPanel.Render(ctx, rows)
	v.session.Post(func(ctx context.Context) {
		btn := v.Button(v.ordinal)
		if btn == nil {
			v.sender.Send(model.DoneMsg{Err: fmt.Errorf("recommendation #%d: %w", v.ordinal, control.ErrNoRecommendation)})
			return
		}
		btn.Activate(ctx)
	})
	return controls
}
