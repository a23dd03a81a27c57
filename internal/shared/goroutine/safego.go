// Package goroutine provides panic-safe goroutine launching.
package goroutine

import (
	"runtime/debug"

	"lineup/internal/shared/logger"
)

// SafeGo runs fn on a new goroutine. A panic in fn is logged with the
// goroutine name and stack trace instead of taking the process down.
// Notification fan-out and stream pumps run under it.
func SafeGo(log logger.Interface, name string, fn func()) {
	go func() {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			log.Errorw("goroutine panicked",
				"goroutine", name,
				"panic", r,
				"stack", string(debug.Stack()),
			)
		}()
		fn()
	}()
}
