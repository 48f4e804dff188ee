package model

import (
	"strings"

	"github.com/bnema/bookmark/internal/application/port"
	"github.com/bnema/bookmark/internal/cli/styles"
)

// toastStack keeps visible toasts oldest first.
type toastStack []ToastMsg

func (s toastStack) add(msg ToastMsg) toastStack {
	return append(s, msg)
}

func (s toastStack) remove(id port.NotificationID) toastStack {
	out := make(toastStack, 0, len(s))
	for _, t := range s {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}

func (s toastStack) view(theme *styles.Theme) string {
	if len(s) == 0 {
		return ""
	}
	lines := make([]string, 0, len(s))
	for _, t := range s {
		lines = append(lines, theme.NotificationStyle(t.Type).Render(t.Text))
	}
	return strings.Join(lines, "\n")
}
