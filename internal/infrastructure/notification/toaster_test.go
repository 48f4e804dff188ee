package notification_test

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/bookmark/internal/application/port"
	"github.com/bnema/bookmark/internal/infrastructure/notification"
	"github.com/bnema/bookmark/internal/logging"
	"github.com/bnema/bookmark/internal/testutil"
)

func testContext() context.Context {
	logger := logging.New(logging.Config{Level: logging.ParseLevel("debug"), Format: "json", Output: io.Discard})
	return logging.WithContext(context.Background(), logger)
}

type recordingPresenter struct {
	mu      sync.Mutex
	shown   map[port.NotificationID]string
	kinds   map[port.NotificationID]port.NotificationType
	removed []port.NotificationID
}

func newRecordingPresenter() *recordingPresenter {
	return &recordingPresenter{
		shown: make(map[port.NotificationID]string),
		kinds: make(map[port.NotificationID]port.NotificationType),
	}
}

func (p *recordingPresenter) Present(_ context.Context, id port.NotificationID, message string, kind port.NotificationType) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.shown[id] = message
	p.kinds[id] = kind
}

func (p *recordingPresenter) Remove(_ context.Context, id port.NotificationID) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.shown, id)
	p.removed = append(p.removed, id)
}

func (p *recordingPresenter) visible() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.shown)
}

func TestToaster_ShowUsesDefaultDuration(t *testing.T) {
	ctx := testContext()
	clock := testutil.NewFakeClock(time.Unix(0, 0))
	presenter := newRecordingPresenter()
	toaster := notification.NewToaster(presenter, notification.WithAfterFunc(clock.AfterFunc))

	id := toaster.Show(ctx, "Added to wishlist ⭐", port.NotificationSuccess, 0)
	require.NotEmpty(t, id)
	assert.Equal(t, "Added to wishlist ⭐", presenter.shown[id])
	assert.Equal(t, port.NotificationSuccess, presenter.kinds[id])

	clock.Advance(1999 * time.Millisecond)
	assert.Equal(t, 1, presenter.visible())

	clock.Advance(time.Millisecond)
	assert.Zero(t, presenter.visible())
	assert.Empty(t, toaster.Visible())
}

func TestToaster_ToastsExpireIndependently(t *testing.T) {
	ctx := testContext()
	clock := testutil.NewFakeClock(time.Unix(0, 0))
	presenter := newRecordingPresenter()
	toaster := notification.NewToaster(presenter, notification.WithAfterFunc(clock.AfterFunc))

	short := toaster.Show(ctx, "short", port.NotificationInfo, 500)
	long := toaster.Show(ctx, "long", port.NotificationError, 3000)
	assert.NotEqual(t, short, long)
	assert.Equal(t, []port.NotificationID{short, long}, toaster.Visible())

	clock.Advance(time.Second)
	assert.Equal(t, []port.NotificationID{long}, toaster.Visible())

	clock.Advance(2 * time.Second)
	assert.Empty(t, toaster.Visible())
	assert.Equal(t, []port.NotificationID{short, long}, presenter.removed)
}

func TestToaster_DismissStopsTimer(t *testing.T) {
	ctx := testContext()
	clock := testutil.NewFakeClock(time.Unix(0, 0))
	presenter := newRecordingPresenter()
	toaster := notification.NewToaster(presenter, notification.WithAfterFunc(clock.AfterFunc))

	id := toaster.Show(ctx, "bye", port.NotificationWarning, 0)
	toaster.Dismiss(ctx, id)
	toaster.Dismiss(ctx, id)

	assert.Zero(t, clock.PendingTimers())
	assert.Equal(t, []port.NotificationID{id}, presenter.removed)
}

func TestToaster_ClearRemovesAll(t *testing.T) {
	ctx := testContext()
	clock := testutil.NewFakeClock(time.Unix(0, 0))
	presenter := newRecordingPresenter()
	toaster := notification.NewToaster(presenter,
		notification.WithAfterFunc(clock.AfterFunc),
		notification.WithDefaultDuration(5000),
	)

	toaster.Show(ctx, "a", port.NotificationInfo, 0)
	toaster.Show(ctx, "b", port.NotificationInfo, 0)
	toaster.Clear(ctx)

	assert.Zero(t, presenter.visible())
	assert.Zero(t, clock.PendingTimers())
}

func TestToaster_ExpiryIsPosted(t *testing.T) {
	ctx := testContext()
	clock := testutil.NewFakeClock(time.Unix(0, 0))
	presenter := newRecordingPresenter()

	var queued []func()
	toaster := notification.NewToaster(presenter,
		notification.WithAfterFunc(clock.AfterFunc),
		notification.WithPost(func(fn func()) { queued = append(queued, fn) }),
	)

	toaster.Show(ctx, "posted", port.NotificationInfo, 100)
	clock.Advance(100 * time.Millisecond)
	assert.Equal(t, 1, presenter.visible())
	require.Len(t, queued, 1)

	queued[0]()
	assert.Zero(t, presenter.visible())
}

func TestToaster_SetDefaultDurationAppliesToLaterToasts(t *testing.T) {
	ctx := testContext()
	clock := testutil.NewFakeClock(time.Unix(0, 0))
	presenter := newRecordingPresenter()
	toaster := notification.NewToaster(presenter, notification.WithAfterFunc(clock.AfterFunc))

	toaster.Show(ctx, "first", port.NotificationInfo, 0)
	toaster.SetDefaultDuration(5000)
	toaster.SetDefaultDuration(0)
	toaster.Show(ctx, "second", port.NotificationInfo, 0)

	clock.Advance(2 * time.Second)
	assert.Equal(t, 1, presenter.visible())

	clock.Advance(3 * time.Second)
	assert.Zero(t, presenter.visible())
}
