package model

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/bookmark/internal/cli/styles"
	"github.com/bnema/bookmark/internal/domain/entity"
)

// WishlistModel is the Bubble Tea model for the saved-books page.
// Content arrives through WishlistMsg; removals go out through onRemove
// so they run on the main loop like a click.
type WishlistModel struct {
	help  help.Model
	keys  styles.WishlistKeyMap
	theme *styles.Theme

	books    []entity.Book
	empty    string
	loaded   bool
	cursor   int
	showHelp bool
	toasts   toastStack
	width    int

	onRemove func(index int)
}

// NewWishlistModel creates a wishlist browser. onRemove receives the index
// of the book under the cursor.
func NewWishlistModel(theme *styles.Theme, onRemove func(index int)) WishlistModel {
	return WishlistModel{
		help:     styles.NewStyledHelp(theme),
		keys:     styles.DefaultWishlistKeyMap(),
		theme:    theme,
		onRemove: onRemove,
		width:    80,
	}
}

// Init implements tea.Model.
func (m WishlistModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m WishlistModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	case WishlistMsg:
		m.loaded = true
		m.books = msg.Books
		m.empty = msg.Empty
		m.clampCursor()
	case ToastMsg:
		m.toasts = m.toasts.add(msg)
	case ToastExpiredMsg:
		m.toasts = m.toasts.remove(msg.ID)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m WishlistModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.books)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Remove):
		if len(m.books) > 0 && m.onRemove != nil {
			m.onRemove(m.cursor)
		}
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
	}
	return m, nil
}

func (m *WishlistModel) clampCursor() {
	if m.cursor >= len(m.books) {
		m.cursor = len(m.books) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View renders the model.
func (m WishlistModel) View() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Wishlist"))
	b.WriteString("\n\n")

	switch {
	case !m.loaded:
		b.WriteString(m.theme.Subtle.Render("Loading..."))
		b.WriteString("\n")
	case len(m.books) == 0:
		b.WriteString(m.theme.Subtle.Render(m.empty))
		b.WriteString("\n")
	default:
		for i, book := range m.books {
			b.WriteString(m.theme.BookLine(book, i == m.cursor))
			b.WriteString("\n")
		}
	}

	if toasts := m.toasts.view(m.theme); toasts != "" {
		b.WriteString("\n")
		b.WriteString(toasts)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// Cursor returns the selected index.
func (m WishlistModel) Cursor() int { return m.cursor }

// Books returns the rendered books.
func (m WishlistModel) Books() []entity.Book { return m.books }
