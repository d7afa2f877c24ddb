// Package goroutine provides utilities for safely launching goroutines
// with panic recovery.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"github.com/marai-app/marai/internal/shared/logger"
)

// SafeGo launches a goroutine with panic recovery. If the goroutine
// panics, the panic is caught and logged with stack trace instead of
// crashing the process. Used for fire-and-forget side channels
// (activity log, alert mail).
func SafeGo(log logger.Interface, name string, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("goroutine panicked",
					"goroutine", name,
					"panic", fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
				)
			}
		}()
		fn()
	}()
}
