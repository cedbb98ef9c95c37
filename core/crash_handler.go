package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
)

var (
	crashMu      sync.Mutex
	crashCleanup func()
	crashReport  bool
)

// SetCrashCleanup registers the function restoring the terminal before the stack trace is printed
func SetCrashCleanup(fn func()) {
	crashMu.Lock()
	crashCleanup = fn
	crashMu.Unlock()
}

// EnableCrashReporting forwards recovered panics to the current Sentry hub
// Call after sentry.Init succeeded
func EnableCrashReporting() {
	crashMu.Lock()
	crashReport = true
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	cleanup, report := crashCleanup, crashReport
	crashMu.Unlock()

	if cleanup != nil {
		cleanup()
	}

	if report {
		hub := sentry.CurrentHub().Clone()
		hub.ConfigureScope(func(scope *sentry.Scope) {
			scope.SetTag("component", "simulation")
		})
		hub.Recover(r)
		hub.Flush(2 * time.Second)
	}

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Recover hands a panic to HandleCrash; it must be deferred directly
func Recover() {
	if r := recover(); r != nil {
		HandleCrash(r)
	}
}

// Go runs a function in a new goroutine with panic recovery
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash
func Go(fn func()) {
	go func() {
		defer Recover()
		fn()
	}()
}
