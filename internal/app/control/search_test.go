package control_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/bookmark/internal/app/control"
	"github.com/bnema/bookmark/internal/app/messaging"
	"github.com/bnema/bookmark/internal/application/port"
	portmocks "github.com/bnema/bookmark/internal/application/port/mocks"
	"github.com/bnema/bookmark/internal/application/usecase"
	"github.com/bnema/bookmark/internal/domain/entity"
	"github.com/bnema/bookmark/internal/domain/repository"
	"github.com/bnema/bookmark/internal/testutil"
	"github.com/bnema/bookmark/internal/ui/mainloop"
)

type searchHarness struct {
	f        *fixture
	ch       *testutil.FakeChannel
	overlay  *portmocks.MockOverlay
	notifier *portmocks.MockNotification
	nav      *portmocks.MockNavigator
	navCtl   *control.NavigationController
	ctl      *control.SearchController
}

func newSearchHarness(t *testing.T) *searchHarness {
	h := &searchHarness{
		f:        newFixture(),
		ch:       testutil.NewFakeChannel(),
		overlay:  portmocks.NewMockOverlay(t),
		notifier: portmocks.NewMockNotification(t),
		nav:      portmocks.NewMockNavigator(t),
	}
	h.navCtl = control.NewNavigationController(h.ch, h.nav, "")
	h.ctl = control.NewSearchController(control.SearchDeps{
		History:    h.f.history,
		Cookies:    h.f.cookies,
		Channel:    h.ch,
		Overlay:    h.overlay,
		Notifier:   h.notifier,
		Navigation: h.navCtl,
	}, control.SearchConfig{NotificationDurationMs: 2000})

	ctx := testContext()
	h.navCtl.Attach(ctx)
	h.ctl.Attach(ctx)
	return h
}

func TestSearchController_SubmitRecordsShowsOverlayAndEmits(t *testing.T) {
	ctx := testContext()
	h := newSearchHarness(t)

	var order []string
	h.overlay.EXPECT().Show(mock.Anything).Run(func(context.Context) { order = append(order, "overlay") }).Once()
	h.ch.OnEmit = func(e testutil.Emitted) { order = append(order, "emit:"+e.Event) }

	require.NoError(t, h.ctl.Submit(ctx, "  calculus  "))

	history, err := h.f.history.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"calculus"}, history)

	emitted := h.ch.EmittedEvent(messaging.EventSearch)
	require.Len(t, emitted, 1)
	assert.JSONEq(t, `{"search":"calculus"}`, string(emitted[0].Payload))
	assert.Equal(t, []string{"overlay", "emit:" + messaging.EventSearch}, order)
	assert.Equal(t, entity.SearchSubmitting, h.ctl.State())
}

func TestSearchController_BlankQueryIsIgnored(t *testing.T) {
	ctx := testContext()
	h := newSearchHarness(t)

	require.NoError(t, h.ctl.Submit(ctx, "   "))

	history, err := h.f.history.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, history)
	assert.Empty(t, h.ch.Emitted())
	assert.Equal(t, entity.SearchIdle, h.ctl.State())
}

func TestSearchController_RedirectHidesOverlayBeforeNavigating(t *testing.T) {
	ctx := testContext()
	h := newSearchHarness(t)

	var order []string
	h.overlay.EXPECT().Show(mock.Anything).Return().Once()
	h.overlay.EXPECT().Hide(mock.Anything).Run(func(context.Context) { order = append(order, "hide") }).Once()
	h.nav.EXPECT().Navigate(mock.Anything, "/book/42").RunAndReturn(func(context.Context, string) error {
		order = append(order, "navigate")
		return nil
	}).Once()

	var states []entity.SearchState
	h.ctl.Observe(func(s entity.SearchState, _ string) { states = append(states, s) })

	require.NoError(t, h.ctl.Submit(ctx, "orgo"))
	h.ch.Push(ctx, messaging.EventRedirect, `"/book/42"`)

	assert.Equal(t, []string{"hide", "navigate"}, order)
	assert.Equal(t, []entity.SearchState{entity.SearchSubmitting, entity.SearchRedirecting}, states)
	assert.Equal(t, entity.SearchRedirecting, h.ctl.State())
}

func TestSearchController_SubmitIgnoredWhileRedirecting(t *testing.T) {
	ctx := testContext()
	h := newSearchHarness(t)

	h.overlay.EXPECT().Hide(mock.Anything).Return().Once()
	h.nav.EXPECT().Navigate(mock.Anything, "/elsewhere").Return(nil).Once()
	h.ch.Push(ctx, messaging.EventRedirect, `"/elsewhere"`)

	require.NoError(t, h.ctl.Submit(ctx, "late"))
	assert.Empty(t, h.ch.Emitted())
}

func TestSearchController_SearchErrorShowsMessage(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    string
	}{
		{name: "string", payload: `"No results for that ISBN"`, want: "No results for that ISBN"},
		{name: "object", payload: `{"error":"backend down"}`, want: "backend down"},
		{name: "unknown shape", payload: `[1,2]`, want: control.DefaultSearchError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext()
			h := newSearchHarness(t)

			h.overlay.EXPECT().Show(mock.Anything).Return().Once()
			h.overlay.EXPECT().Hide(mock.Anything).Return().Once()
			h.notifier.EXPECT().Show(mock.Anything, tt.want, port.NotificationError, 2000).Return(port.NotificationID("n1")).Once()

			var details []string
			h.ctl.Observe(func(s entity.SearchState, detail string) {
				if s == entity.SearchFailed {
					details = append(details, detail)
				}
			})

			require.NoError(t, h.ctl.Submit(ctx, "stats"))
			h.ch.Push(ctx, messaging.EventSearchError, tt.payload)

			assert.Equal(t, []string{tt.want}, details)
			assert.Equal(t, entity.SearchIdle, h.ctl.State())
		})
	}
}

func TestSearchController_EmitFailureRecovers(t *testing.T) {
	ctx := testContext()
	h := newSearchHarness(t)
	boom := errors.New("socket closed")
	h.ch.EmitErr = boom

	h.overlay.EXPECT().Show(mock.Anything).Return().Once()
	h.overlay.EXPECT().Hide(mock.Anything).Return().Once()
	h.notifier.EXPECT().Show(mock.Anything, control.DefaultSearchError, port.NotificationError, 2000).Return(port.NotificationID("n1")).Once()

	err := h.ctl.Submit(ctx, "bio")
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, entity.SearchIdle, h.ctl.State())

	history, err := h.f.history.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"bio"}, history)
}

func TestSearchController_HistoryFailureDoesNotBlockSearch(t *testing.T) {
	ctx := testContext()
	ch := testutil.NewFakeChannel()
	overlay := portmocks.NewMockOverlay(t)
	overlay.EXPECT().Show(mock.Anything).Return().Once()

	ctl := control.NewSearchController(control.SearchDeps{
		History:  usecase.NewSearchHistoryUseCase(failingHistory{}),
		Cookies:  newFixture().cookies,
		Channel:  ch,
		Overlay:  overlay,
		Notifier: portmocks.NewMockNotification(t),
	}, control.SearchConfig{})

	require.NoError(t, ctl.Submit(ctx, "physics"))
	assert.Len(t, ch.EmittedEvent(messaging.EventSearch), 1)
}

func TestSearchController_BestBookCookieIsStored(t *testing.T) {
	ctx := testContext()
	h := newSearchHarness(t)

	h.ch.Push(ctx, messaging.EventSetBestBookCookie, `"Intro to Stats (2nd ed)"`)

	value, ok, err := h.f.cookies.Get(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Intro to Stats (2nd ed)", value)

	raw, err := h.f.jar.GetCookie(ctx, "best_book")
	require.NoError(t, err)
	require.NotNil(t, raw)
	assert.Equal(t, "Intro%20to%20Stats%20(2nd%20ed)", raw.Value)
}

func TestSearchController_MountBindsButtonAndEnterOnce(t *testing.T) {
	ctx := testContext()
	h := newSearchHarness(t)
	h.overlay.EXPECT().Show(mock.Anything).Return().Times(2)

	button := testutil.NewFakeControl()
	input := testutil.NewFakeTextField("chemistry")

	h.ctl.Mount(ctx, button, input)
	h.ctl.Mount(ctx, button, input)
	assert.Equal(t, 1, button.Listeners())

	button.Activate(ctx)
	input.Press(ctx, "a")
	input.Press(ctx, control.KeyEnter)

	emitted := h.ch.EmittedEvent(messaging.EventSearch)
	require.Len(t, emitted, 2)
	var req messaging.SearchRequest
	require.NoError(t, json.Unmarshal(emitted[1].Payload, &req))
	assert.Equal(t, "chemistry", req.Search)
}

func TestSearchController_SuggestionsAreCoalesced(t *testing.T) {
	ctx := testContext()
	f := newFixture()
	overlay := portmocks.NewMockOverlay(t)
	overlay.EXPECT().Show(mock.Anything).Return()
	suggestions := portmocks.NewMockSearchSuggestions(t)

	var queued []func()
	ctl := control.NewSearchController(control.SearchDeps{
		History:     f.history,
		Cookies:     f.cookies,
		Channel:     testutil.NewFakeChannel(),
		Overlay:     overlay,
		Notifier:    portmocks.NewMockNotification(t),
		Suggestions: suggestions,
		Post:        func(fn func()) { queued = append(queued, fn) },
	}, control.SearchConfig{})

	require.NoError(t, ctl.Submit(ctx, "a"))
	require.NoError(t, ctl.Submit(ctx, "b"))
	require.NoError(t, ctl.Submit(ctx, "c"))
	require.Len(t, queued, 1)

	suggestions.EXPECT().SetSuggestions(mock.Anything, []string{"a", "b", "c"}).Return().Once()
	for _, fn := range queued {
		fn()
	}
}

func TestSearchController_DetachReleasesSubscriptions(t *testing.T) {
	h := newSearchHarness(t)
	assert.Equal(t, 1, h.ch.Handlers(messaging.EventSearchError))

	h.ctl.Detach()
	assert.Zero(t, h.ch.Handlers(messaging.EventSearchError))
	assert.Zero(t, h.ch.Handlers(messaging.EventSetBestBookCookie))
}

func TestSearchController_RunsOnMainLoop(t *testing.T) {
	ctx := testContext()
	h := newSearchHarness(t)
	h.overlay.EXPECT().Show(mock.Anything).Return().Once()

	loop := mainloop.New()
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go loop.Run(runCtx)

	err := loop.Invoke(ctx, func() { _ = h.ctl.Submit(ctx, "on loop") })
	require.NoError(t, err)
	assert.Len(t, h.ch.EmittedEvent(messaging.EventSearch), 1)
}

type failingHistory struct{}

func (failingHistory) ReadHistory(context.Context) ([]string, error) {
	return nil, errors.New("disk full")
}

func (failingHistory) AppendHistory(context.Context, string) error {
	return errors.New("disk full")
}

var _ repository.SearchHistoryRepository = failingHistory{}
