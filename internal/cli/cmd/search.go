package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/bookmark/internal/cli"
	"github.com/bnema/bookmark/internal/cli/model"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search for the best price of a book",
	Long: `Send a search to the server and wait for the results page.

The query is recorded in the local search history. On success the results
URL is printed on stdout; a server-side error is printed and exits non-zero.

Examples:
  bookmark search "calculus early transcendentals"
  bookmark search 9780134438986`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(_ *cobra.Command, args []string) error {
	a, uc, err := requireUseCases()
	if err != nil {
		return err
	}

	query := strings.Join(args, " ")
	if strings.TrimSpace(query) == "" {
		return errors.New("search query cannot be empty")
	}

	pm, err := runLive(a, model.ProgressConfig{Message: "Searching..."}, func(s *cli.Session, p *tea.Program) error {
		ctl := mountSearch(a, uc, s, p)
		var submitErr error
		if err := s.Invoke(func(ctx context.Context) {
			ctl.Attach(ctx)
			submitErr = ctl.Submit(ctx, query)
		}); err != nil {
			return err
		}
		return submitErr
	})
	if err != nil {
		return err
	}

	fmt.Println(pm.Target())
	return nil
}
