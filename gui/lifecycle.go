package gui

import (
	"log/slog"
)

func (u *ui) logLifecycle() {
	lc := u.App.Lifecycle()
	lc.SetOnStarted(func() {
		slog.Info("lifecycle: started")
	})
	lc.SetOnStopped(func() {
		slog.Info("lifecycle: stopped")
	})
	lc.SetOnEnteredForeground(func() {
		slog.Debug("lifecycle: entered foreground")
	})
	lc.SetOnExitedForeground(func() {
		slog.Debug("lifecycle: exited foreground")
	})
}
