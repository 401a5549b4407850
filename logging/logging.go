// Package logging provides the leveled console logger used by the commands.
package logging

import (
	"strings"

	"github.com/gookit/slog"
	"github.com/gookit/slog/handler"
)

// Logger is the subset of logging the build needs. *slog.Logger satisfies it.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// New returns a console logger that emits messages at level and above.
// Unknown levels fall back to info.
func New(level string) *slog.Logger {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		level = "info"
	}
	h := handler.NewConsoleHandler(Levels(level))
	return slog.NewWithHandlers(h)
}

// Levels returns the levels at or above the named level.
func Levels(level string) slog.Levels {
	limit := slog.LevelByName(level)
	var levels slog.Levels
	for _, lv := range slog.AllLevels {
		if lv <= limit {
			levels = append(levels, lv)
		}
	}
	return levels
}

// Discard is a Logger that drops everything.
var Discard Logger = discard{}

type discard struct{}

func (discard) Debugf(string, ...any) {}
func (discard) Infof(string, ...any)  {}
func (discard) Warnf(string, ...any)  {}
func (discard) Errorf(string, ...any) {}
