// Package log provides the structured key/value logging used across the
// node core. It is a thin facade over log15 so components create bound
// loggers the same way everywhere, e.g. log.New("component", "ledger").
package log

import (
	"os"

	"github.com/inconshreveable/log15"
)

type Logger = log15.Logger

var root = log15.Root()

func init() {
	root.SetHandler(log15.LvlFilterHandler(log15.LvlInfo, log15.StreamHandler(os.Stderr, log15.TerminalFormat())))
}

// New returns a logger with the given context bound to the root handler.
func New(ctx ...interface{}) Logger {
	return root.New(ctx...)
}

// Root returns the process-wide root logger.
func Root() Logger {
	return root
}

// SetVerbosity filters root output by level, log15.LvlCrit (0) to
// log15.LvlDebug (4).
func SetVerbosity(level int) {
	root.SetHandler(log15.LvlFilterHandler(log15.Lvl(level), log15.StreamHandler(os.Stderr, log15.TerminalFormat())))
}

func Debug(msg string, ctx ...interface{}) {
	root.Debug(msg, ctx...)
}

func Info(msg string, ctx ...interface{}) {
	root.Info(msg, ctx...)
}

func Warn(msg string, ctx ...interface{}) {
	root.Warn(msg, ctx...)
}

func Error(msg string, ctx ...interface{}) {
	root.Error(msg, ctx...)
}

// Crit logs at critical level and terminates the process. Never call it
// from library code; it exists for unrecoverable startup failures only.
func Crit(msg string, ctx ...interface{}) {
	root.Crit(msg, ctx...)
	os.Exit(1)
}
