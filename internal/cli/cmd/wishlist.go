package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/bookmark/internal/app/control"
	"github.com/bnema/bookmark/internal/application/port"
	"github.com/bnema/bookmark/internal/cli/model"
	"github.com/bnema/bookmark/internal/domain/entity"
	"github.com/bnema/bookmark/internal/infrastructure/notification"
	"github.com/bnema/bookmark/internal/ui/mainloop"
)

var wishlistJSON bool

var wishlistCmd = &cobra.Command{
	Use:   "wishlist",
	Short: "Browse your saved books",
	Long:  `Interactive wishlist browser. Select a book and press d to remove it.`,
	Args:  cobra.NoArgs,
	RunE:  runWishlistTUI,
}

var wishlistListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print your saved books",
	Args:  cobra.NoArgs,
	RunE:  runWishlistList,
}

var wishlistRemoveCmd = &cobra.Command{
	Use:   "remove <isbn>",
	Short: "Remove a book from your wishlist",
	Args:  cobra.ExactArgs(1),
	RunE:  runWishlistRemove,
}

func init() {
	rootCmd.AddCommand(wishlistCmd)
	wishlistCmd.AddCommand(wishlistListCmd)
	wishlistCmd.AddCommand(wishlistRemoveCmd)

	wishlistListCmd.Flags().BoolVar(&wishlistJSON, "json", false, "output as JSON")
}

// runWishlistTUI runs the interactive wishlist browser. The page controller
// lives on its own main loop; the program only forwards key presses to it.
func runWishlistTUI(_ *cobra.Command, _ []string) error {
	a, uc, err := requireUseCases()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(a.Ctx())
	defer cancel()

	loop := mainloop.New()
	var panel *model.WishlistPanel
	m := model.NewWishlistModel(a.Theme, func(index int) {
		loop.Post(func() {
			if btn := panel.Button(index); btn != nil {
				btn.Activate(ctx)
			}
		})
	})
	p := tea.NewProgram(m, tea.WithAltScreen())
	panel = model.NewWishlistPanel(p)

	toaster := notification.NewToaster(model.NewPresenter(p),
		notification.WithPost(loop.Post),
		notification.WithDefaultDuration(a.Config.Notification.DurationMs))
	page := control.NewWishlistPageController(uc.Wishlist, panel, toaster, a.Config.Notification.DurationMs)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		loop.Run(gctx)
		return nil
	})

	loop.Post(func() {
		if err := page.Render(ctx); err != nil {
			toaster.Show(ctx, err.Error(), port.NotificationError, 0)
		}
	})

	_, runErr := p.Run()

	_ = loop.Invoke(ctx, func() {
		page.Release()
		toaster.Clear(ctx)
	})
	cancel()
	if err := g.Wait(); err != nil {
		return err
	}
	if runErr != nil {
		return fmt.Errorf("run model: %w", runErr)
	}
	return nil
}

func runWishlistList(_ *cobra.Command, _ []string) error {
	a, uc, err := requireUseCases()
	if err != nil {
		return err
	}

	books, err := uc.Wishlist.List(a.Ctx())
	if err != nil {
		return err
	}

	if wishlistJSON {
		if books == nil {
			books = entity.Wishlist{}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(books)
	}

	if len(books) == 0 {
		fmt.Println(a.Theme.Subtle.Render(control.MsgEmptyWishlist))
		return nil
	}
	for _, book := range books {
		fmt.Println(a.Theme.BookLine(book, false))
	}
	return nil
}

func runWishlistRemove(_ *cobra.Command, args []string) error {
	a, uc, err := requireUseCases()
	if err != nil {
		return err
	}

	removed, err := uc.Wishlist.Remove(a.Ctx(), args[0])
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("no saved book with ISBN %s", args[0])
	}
	fmt.Println(a.Theme.NotificationStyle(port.NotificationInfo).Render(control.MsgRemovedFromWishlist))
	return nil
}
