package model

import (
	"context"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/bookmark/internal/app/control"
	"github.com/bnema/bookmark/internal/application/port"
	"github.com/bnema/bookmark/internal/application/usecase"
	"github.com/bnema/bookmark/internal/domain/entity"
	"github.com/bnema/bookmark/internal/infrastructure/notification"
	"github.com/bnema/bookmark/internal/infrastructure/persistence/localstore"
)

type recorder struct {
	mu   sync.Mutex
	msgs []tea.Msg
}

func (r *recorder) Send(msg tea.Msg) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
}

func (r *recorder) last() tea.Msg {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.msgs) == 0 {
		return nil
	}
	return r.msgs[len(r.msgs)-1]
}

func TestButton_ReleasedListenerDoesNotRun(t *testing.T) {
	var b Button
	calls := 0
	first := b.OnActivate(func(context.Context) { calls++ })
	b.OnActivate(func(context.Context) { calls += 10 })

	first.Release()
	first.Release()
	b.Activate(context.Background())

	assert.Equal(t, 10, calls)
	assert.Equal(t, 1, b.Listeners())
}

func TestToggle_TracksActiveState(t *testing.T) {
	var tg Toggle
	assert.False(t, tg.Active())
	tg.SetActive(true)
	assert.True(t, tg.Active())
}

func TestOverlayAndNavigator_SendMessages(t *testing.T) {
	rec := &recorder{}
	ctx := context.Background()

	NewOverlay(rec).Show(ctx)
	assert.Equal(t, OverlayMsg{Visible: true}, rec.last())
	NewOverlay(rec).Hide(ctx)
	assert.Equal(t, OverlayMsg{Visible: false}, rec.last())

	require.NoError(t, NewNavigator(rec).Navigate(ctx, "/results"))
	assert.Equal(t, DoneMsg{Target: "/results"}, rec.last())
}

func TestRecommendationPanel_ButtonsFollowLastRender(t *testing.T) {
	rec := &recorder{}
	panel := NewRecommendationPanel(rec)
	ctx := context.Background()

	controls := panel.Render(ctx, []port.RecommendationRow{
		{Ordinal: 1, Title: "A"},
		{Ordinal: 2, Title: "B"},
	})
	require.Len(t, controls, 2)
	assert.Same(t, controls[1], port.Control(panel.Button(2)))
	assert.Nil(t, panel.Button(0))
	assert.Nil(t, panel.Button(3))

	panel.ShowError(ctx, "boom")
	assert.Nil(t, panel.Button(1))
	assert.Equal(t, PanelErrorMsg{Message: "boom"}, rec.last())
}

func TestWishlistPanel_RemoveThroughController(t *testing.T) {
	ctx := context.Background()
	store := localstore.New(localstore.NewMemoryKV(), nil)
	uc := usecase.NewManageWishlistUseCase(store)
	_, err := uc.Toggle(ctx, entity.Book{Title: "Calculus", ISBN: "111"})
	require.NoError(t, err)
	_, err = uc.Toggle(ctx, entity.Book{Title: "Physics", ISBN: "222"})
	require.NoError(t, err)

	rec := &recorder{}
	panel := NewWishlistPanel(rec)
	toaster := notification.NewToaster(NewPresenter(rec))
	page := control.NewWishlistPageController(uc, panel, toaster, 0)
	t.Cleanup(func() {
		page.Release()
		toaster.Clear(ctx)
	})

	require.NoError(t, page.Render(ctx))
	msg, ok := rec.last().(WishlistMsg)
	require.True(t, ok)
	require.Len(t, msg.Books, 2)

	panel.Button(0).Activate(ctx)

	msg, ok = rec.last().(WishlistMsg)
	require.True(t, ok)
	require.Len(t, msg.Books, 1)
	assert.Equal(t, "222", msg.Books[0].ISBN)

	var toast *ToastMsg
	for _, m := range rec.msgs {
		if tm, ok := m.(ToastMsg); ok {
			toast = &tm
		}
	}
	require.NotNil(t, toast)
	assert.Equal(t, `Removed "Calculus" from wishlist ❌`, toast.Text)
	assert.Equal(t, port.NotificationInfo, toast.Type)
}

func TestWishlistPanel_EmptyState(t *testing.T) {
	rec := &recorder{}
	panel := NewWishlistPanel(rec)

	panel.ShowEmpty(context.Background(), "nothing")

	assert.Equal(t, WishlistMsg{Empty: "nothing"}, rec.last())
	assert.Nil(t, panel.Button(0))
}
