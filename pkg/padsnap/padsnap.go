// Package padsnap retrofits directional-gamepad snap navigation onto menus
// that were built for pointer input. The host keeps rendering and owning its
// widgets; the engine decides, once per frame, where focus goes, how the page
// scrolls, which element activates or adjusts, and when a nested choice list
// captures input.
//
// Hosts register an adapter per widget type in a Registry, attach a Page to
// an Engine, and call Update with one sampled InputFrame per frame:
//
//	registry := padsnap.NewRegistry()
//	padsnap.Register(registry, func(t *myToggle) padsnap.Element { return toggleAdapter{t} })
//
//	engine := padsnap.NewEngine(registry, padsnap.Options{})
//	engine.Attach(page)
//
//	for running {
//		result := engine.Update(backend.Sample())
//		render(page, result)
//	}
//
// Everything is synchronous and single-threaded; the engine starts no
// goroutines and is reset whenever a page is attached.
package padsnap

import (
	"log/slog"

	"github.com/padsnap/padsnap/pkg/padsnap/internal"
)

// SetLogPath routes logs to a file in addition to stdout. Call it before the
// first log line is emitted; without it logs go to stdout only.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// Logger returns the host-facing logger sharing the engine's log sink.
func Logger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the host-facing logger's level.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetEngineLogLevel sets the engine's own log level. It defaults to warn so
// the engine stays quiet unless something degrades.
func SetEngineLogLevel(level slog.Level) {
	internal.SetEngineLogLevel(level)
}

// SetRawLogLevel maps a config string like "debug" or "warn" onto both
// logger levels.
func SetRawLogLevel(rawLevel string) {
	internal.SetRawLogLevel(rawLevel)
}

// CloseLogger flushes and closes the log file, if one was opened.
func CloseLogger() {
	internal.CloseLogger()
}
