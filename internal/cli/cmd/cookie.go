package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var cookieCmd = &cobra.Command{
	Use:   "cookie",
	Short: "Print the best_book cookie",
	Long: `Print the decoded value of the best_book cookie the server set during
the last search. Expired cookies are not printed.`,
	Args: cobra.NoArgs,
	RunE: runCookie,
}

func init() {
	rootCmd.AddCommand(cookieCmd)
}

func runCookie(_ *cobra.Command, _ []string) error {
	a, uc, err := requireUseCases()
	if err != nil {
		return err
	}

	value, ok, err := uc.Cookie.Get(a.Ctx())
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("no best_book cookie set")
	}
	fmt.Println(value)
	return nil
}
