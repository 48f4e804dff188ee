package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/bookmark/internal/app/control"
	"github.com/bnema/bookmark/internal/cli/model"
	"github.com/bnema/bookmark/internal/infrastructure/notification"
)

var (
	pageSave bool
	pageBase string
)

var pageCmd = &cobra.Command{
	Use:   "page <file|url>",
	Short: "Show the book on a rendered book page",
	Long: `Extract the book offer from a book detail page, either a saved HTML file
or a live URL, and show whether it is in your wishlist.

--save toggles the wishlist entry, the same as clicking the heart on the page:
a saved book is removed, an unsaved one is added.

Examples:
  bookmark page ./book.html --base https://bookmark.example/book/42
  bookmark page https://bookmark.example/book/42 --save`,
	Args: cobra.ExactArgs(1),
	RunE: runPage,
}

func init() {
	rootCmd.AddCommand(pageCmd)

	pageCmd.Flags().BoolVar(&pageSave, "save", false, "toggle the book in the wishlist")
	pageCmd.Flags().StringVar(&pageBase, "base", "", "URL relative links of a local file resolve against")
}

func runPage(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	ctx := a.Ctx()

	book, err := a.LoadBook(ctx, args[0], pageBase)
	if err != nil {
		return err
	}
	fmt.Println(a.Theme.BookCard(*book))

	uc, err := a.UseCases()
	if err != nil {
		return err
	}

	toaster := notification.NewToaster(model.NewLinePresenter(os.Stderr, a.Theme),
		notification.WithDefaultDuration(a.Config.Notification.DurationMs))
	defer toaster.Clear(ctx)

	ctl := control.NewWishlistController(uc.Wishlist, toaster, book, a.Config.Notification.DurationMs)
	defer ctl.Release()

	heart := &model.Toggle{}
	if err := ctl.Render(ctx, heart); err != nil {
		return err
	}

	if pageSave {
		if _, err := ctl.Toggle(ctx); err != nil {
			return err
		}
	}

	if heart.Active() {
		fmt.Println(a.Theme.SuccessStyle.Render("★ in your wishlist"))
	} else {
		fmt.Println(a.Theme.Subtle.Render("☆ not in your wishlist"))
	}
	return nil
}
