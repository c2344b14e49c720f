// Package logging provides helpers for dependency-injected structured
// logging.
//
// Components never touch a global logger: each one receives a *slog.Logger
// at construction, scopes it once with With, and logs sparsely at lifecycle
// boundaries. Output format and level are configured only in main.
package logging

import (
	"context"
	"log/slog"
)

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(discardHandler{})
}

// Default returns logger if non-nil, otherwise a discard logger. Use it to
// make logger parameters optional:
//
//	func NewStore(logger *slog.Logger) *Store {
//	    return &Store{logger: logging.Default(logger).With("component", "store")}
//	}
func Default(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return Discard()
}
