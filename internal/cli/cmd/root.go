// Package cmd provides Cobra CLI commands for bookmark.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/bookmark/internal/cli"
	"github.com/bnema/bookmark/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "bookmark",
		Short: "Find the best price for your textbooks from the terminal",
		Long: `Bookmark - the terminal client of the textbook price comparison site.

Search for a book, ask for AI recommendations around the book you are looking
at, and keep a wishlist of the offers you want to come back to.

Search history, the wishlist and the best_book cookie are stored locally and
survive between runs.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "version", "path", "schema":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

func requireApp() (*cli.App, error) {
	a := GetApp()
	if a == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return a, nil
}

func requireUseCases() (*cli.App, *cli.UseCases, error) {
	a, err := requireApp()
	if err != nil {
		return nil, nil, err
	}
	uc, err := a.UseCases()
	if err != nil {
		return nil, nil, err
	}
	return a, uc, nil
}
