package model

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/bnema/bookmark/internal/application/port"
	"github.com/bnema/bookmark/internal/cli/styles"
)

// LinePresenter prints each toast once, for commands without a live program.
// Removal is a no-op: printed lines stay in the scrollback.
type LinePresenter struct {
	mu    sync.Mutex
	out   io.Writer
	theme *styles.Theme
}

// NewLinePresenter writes toasts to out.
func NewLinePresenter(out io.Writer, theme *styles.Theme) *LinePresenter {
	return &LinePresenter{out: out, theme: theme}
}

func (p *LinePresenter) Present(_ context.Context, _ port.NotificationID, message string, notifType port.NotificationType) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.out, p.theme.NotificationStyle(notifType).Render(message))
}

func (p *LinePresenter) Remove(context.Context, port.NotificationID) {}
