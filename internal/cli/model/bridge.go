package model

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/bookmark/internal/application/port"
	"github.com/bnema/bookmark/internal/domain/entity"
	"github.com/bnema/bookmark/internal/logging"
)

// Sender delivers messages to a running program. *tea.Program satisfies it.
type Sender interface {
	Send(msg tea.Msg)
}

// Button is a terminal stand-in for a clickable page element.
// Activate must run on the main loop, like a click handler would.
type Button struct {
	mu        sync.Mutex
	listeners []*listener
}

type listener struct {
	fn       port.ActivateFunc
	released bool
}

var _ port.Control = (*Button)(nil)

// OnActivate registers fn until the subscription is released.
func (b *Button) OnActivate(fn port.ActivateFunc) port.Subscription {
	l := &listener{fn: fn}
	b.mu.Lock()
	b.listeners = append(b.listeners, l)
	b.mu.Unlock()

	return port.SubscriptionFunc(func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		l.released = true
		live := b.listeners[:0]
		for _, other := range b.listeners {
			if !other.released {
				live = append(live, other)
			}
		}
		b.listeners = live
	})
}

// Activate runs every live listener in registration order.
func (b *Button) Activate(ctx context.Context) {
	b.mu.Lock()
	fns := make([]port.ActivateFunc, 0, len(b.listeners))
	for _, l := range b.listeners {
		fns = append(fns, l.fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn(ctx)
	}
}

// Listeners returns the number of live listeners.
func (b *Button) Listeners() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.listeners)
}

// Toggle is a Button with an on/off state, e.g. the wishlist heart.
type Toggle struct {
	Button
	activeMu sync.Mutex
	active   bool
}

var _ port.ToggleControl = (*Toggle)(nil)

// SetActive updates the visible state.
func (t *Toggle) SetActive(active bool) {
	t.activeMu.Lock()
	t.active = active
	t.activeMu.Unlock()
}

// Active reports the visible state.
func (t *Toggle) Active() bool {
	t.activeMu.Lock()
	defer t.activeMu.Unlock()
	return t.active
}

// Overlay forwards the loading screen to a program.
type Overlay struct {
	sender Sender
}

var _ port.Overlay = (*Overlay)(nil)

// NewOverlay creates an overlay bound to sender.
func NewOverlay(sender Sender) *Overlay {
	return &Overlay{sender: sender}
}

func (o *Overlay) Show(_ context.Context) { o.sender.Send(OverlayMsg{Visible: true}) }

func (o *Overlay) Hide(_ context.Context) { o.sender.Send(OverlayMsg{Visible: false}) }

// Presenter draws toasts in a program.
type Presenter struct {
	sender Sender
}

// NewPresenter creates a toast presenter bound to sender.
func NewPresenter(sender Sender) *Presenter {
	return &Presenter{sender: sender}
}

func (p *Presenter) Present(_ context.Context, id port.NotificationID, message string, notifType port.NotificationType) {
	p.sender.Send(ToastMsg{ID: id, Text: message, Type: notifType})
}

func (p *Presenter) Remove(_ context.Context, id port.NotificationID) {
	p.sender.Send(ToastExpiredMsg{ID: id})
}

// Navigator ends the program with the navigation target.
type Navigator struct {
	sender Sender
}

var _ port.Navigator = (*Navigator)(nil)

// NewNavigator creates a navigator bound to sender.
func NewNavigator(sender Sender) *Navigator {
	return &Navigator{sender: sender}
}

// Navigate reports target as the outcome of the run.
func (n *Navigator) Navigate(ctx context.Context, target string) error {
	logging.FromContext(ctx).Debug().Str("target", target).Msg("navigating")
	n.sender.Send(DoneMsg{Target: target})
	return nil
}

// RecommendationPanel renders recommendation rows into a program.
type RecommendationPanel struct {
	sender Sender

	mu      sync.Mutex
	buttons []*Button
}

var _ port.RecommendationView = (*RecommendationPanel)(nil)

// NewRecommendationPanel creates a panel bound to sender.
func NewRecommendationPanel(sender Sender) *RecommendationPanel {
	return &RecommendationPanel{sender: sender}
}

// HideTrigger is a no-op: the terminal has no trigger to hide.
func (p *RecommendationPanel) HideTrigger(context.Context) {}

func (p *RecommendationPanel) ShowLoading(_ context.Context, text string) {
	p.sender.Send(PanelLoadingMsg{Text: text})
}

// Render shows rows and returns one fresh button per row.
func (p *RecommendationPanel) Render(_ context.Context, rows []port.RecommendationRow) []port.Control {
	buttons := make([]*Button, len(rows))
	controls := make([]port.Control, len(rows))
	for i := range rows {
		buttons[i] = &Button{}
		controls[i] = buttons[i]
	}

	p.mu.Lock()
	p.buttons = buttons
	p.mu.Unlock()

	p.sender.Send(PanelRowsMsg{Rows: append([]port.RecommendationRow(nil), rows...)})
	return controls
}

func (p *RecommendationPanel) ShowError(_ context.Context, message string) {
	p.mu.Lock()
	p.buttons = nil
	p.mu.Unlock()

	p.sender.Send(PanelErrorMsg{Message: message})
}

// Button returns the action of the row with the given 1-based ordinal.
func (p *RecommendationPanel) Button(ordinal int) *Button {
	p.mu.Lock()
	defer p.mu.Unlock()
	if ordinal < 1 || ordinal > len(p.buttons) {
		return nil
	}
	return p.buttons[ordinal-1]
}

// WishlistPanel renders the saved books into a program.
type WishlistPanel struct {
	sender Sender

	mu      sync.Mutex
	buttons []*Button
}

var _ port.WishlistView = (*WishlistPanel)(nil)

// NewWishlistPanel creates a panel bound to sender.
func NewWishlistPanel(sender Sender) *WishlistPanel {
	return &WishlistPanel{sender: sender}
}

// Render shows books and returns one remove button per book.
func (p *WishlistPanel) Render(_ context.Context, books []entity.Book) []port.Control {
	buttons := make([]*Button, len(books))
	controls := make([]port.Control, len(books))
	for i := range books {
		buttons[i] = &Button{}
		controls[i] = buttons[i]
	}

	p.mu.Lock()
	p.buttons = buttons
	p.mu.Unlock()

	p.sender.Send(WishlistMsg{Books: append([]entity.Book(nil), books...)})
	return controls
}

func (p *WishlistPanel) ShowEmpty(_ context.Context, message string) {
	p.mu.Lock()
	p.buttons = nil
	p.mu.Unlock()

	p.sender.Send(WishlistMsg{Empty: message})
}

// Button returns the remove action of the book at index.
func (p *WishlistPanel) Button(index int) *Button {
	p.mu.Lock()
	defer p.mu.Unlock()
	if index < 0 || index >= len(p.buttons) {
		return nil
	}
	return p.buttons[index]
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(msg tea.Msg)

// Send calls f.
func (f SenderFunc) Send(msg tea.Msg) {
	if f != nil {
		f(msg)
	}
}
