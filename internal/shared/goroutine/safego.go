// Package goroutine starts background work that must not take the process down.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"github.com/lorenzobigazzi0/cassa/internal/shared/logger"
)

// SafeGo runs fn in a new goroutine and logs, instead of propagating, any panic.
func SafeGo(log logger.Interface, name string, fn func()) {
	go func() {
		defer Recover(log, name)
		fn()
	}()
}

// Recover is meant to be deferred at the top of a goroutine body.
func Recover(log logger.Interface, name string) {
	if r := recover(); r != nil {
		log.Errorw("goroutine panicked",
			"goroutine", name,
			"panic", fmt.Sprintf("%v", r),
			"stack", string(debug.Stack()),
		)
	}
}
