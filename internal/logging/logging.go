// Package logging wraps github.com/sirupsen/logrus in a small facade
// with the level+category taxonomy spec §7.1 assigns to the core's
// non-fatal diagnostics (DatasetWarning, ScriptError, CursorOverflow).
package logging

import "github.com/sirupsen/logrus"

// Category names the subsystem a log entry concerns, so a deployment
// can filter or route the core's diagnostics without string-matching
// free-form messages.
type Category string

const (
	CategoryDataset      Category = "dataset"
	CategoryScript       Category = "script"
	CategoryCursor       Category = "cursor"
	CategoryConfig       Category = "config"
	CategoryOrchestrator Category = "orchestrator"
)

// Logger is the facade every internal package logs through. The zero
// value is not usable; construct with New.
type Logger struct {
	entry *logrus.Entry
}

// New wraps base (nil selects logrus's standard logger) with the
// "component":"afrim" field every entry carries.
func New(base *logrus.Logger) *Logger {
	if base == nil {
		base = logrus.StandardLogger()
	}
	return &Logger{entry: base.WithField("component", "afrim")}
}

// WithCategory returns a Logger whose entries are tagged with cat, for
// a call site that wants every subsequent log line labelled without
// repeating the category at each call.
func (l *Logger) WithCategory(cat Category) *Logger {
	return &Logger{entry: l.entry.WithField("category", string(cat))}
}

// Debugf logs at debug level.
func (l *Logger) Debugf(format string, args ...any) { l.entry.Debugf(format, args...) }

// Warnf logs at warn level — the level spec §7's DatasetWarning and
// ScriptError use.
func (l *Logger) Warnf(format string, args ...any) { l.entry.Warnf(format, args...) }

// Errorf logs at error level, for the rare case a category escalates.
func (l *Logger) Errorf(format string, args ...any) { l.entry.Errorf(format, args...) }

// Warn implements translator.Diagnostics, routing scripted-predicate
// failures through the "script" category at warn level.
func (l *Logger) Warn(format string, args ...any) {
	l.WithCategory(CategoryScript).Warnf(format, args...)
}
