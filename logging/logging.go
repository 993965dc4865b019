// Package logging wires the simulator's structured logging onto the
// logiface/stumpy backend (stumpy.L.WithStumpy feeding a logiface.Logger).
// It exists so engine, station and paramstudy share one Logger type and one
// no-op default instead of each constructing its own logiface.Logger.
package logging

import (
	"io"
	"os"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

// Logger is the structured logger type threaded through the simulator.
// A nil *Logger is valid and behaves as a no-op (see Disabled).
type Logger = logiface.Logger[*stumpy.Event]

// Disabled is the default logger used when none is configured: every
// level check short-circuits, so call sites pay effectively nothing for
// fields that are never built.
var Disabled = stumpy.L.New()

// New builds a Logger that writes newline-delimited JSON to w at the given
// minimum level, via the stumpy backend.
func New(w io.Writer, level logiface.Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return stumpy.L.New(
		stumpy.L.WithStumpy(stumpy.WithWriter(w)),
		stumpy.L.WithLevel(level),
	)
}
