package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	historyJSON   bool
	historyRecent int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show your past searches",
	Long:  `Print the local search history, oldest first. Duplicates are kept.`,
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output as JSON")
	historyCmd.Flags().IntVar(&historyRecent, "recent", 0, "only the N most recent searches (0 for all)")
}

func runHistory(_ *cobra.Command, _ []string) error {
	a, uc, err := requireUseCases()
	if err != nil {
		return err
	}
	if historyRecent < 0 {
		return fmt.Errorf("--recent must not be negative")
	}

	var entries []string
	if historyRecent > 0 {
		entries, err = uc.History.Recent(a.Ctx(), historyRecent)
	} else {
		entries, err = uc.History.All(a.Ctx())
	}
	if err != nil {
		return err
	}

	if historyJSON {
		if entries == nil {
			entries = []string{}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Println(a.Theme.Subtle.Render("No searches yet."))
		return nil
	}
	for i, term := range entries {
		fmt.Printf("%s %s\n", a.Theme.Subtle.Render(fmt.Sprintf("%3d", i+1)), a.Theme.Normal.Render(term))
	}
	return nil
}
