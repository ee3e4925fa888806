// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"
)

// messager is implemented by zerr errors, which report their own message without the chain.
type messager interface {
	Message() string
}

// metadataer is implemented by zerr errors carrying key/value context.
type metadataer interface {
	Metadata() map[string]any
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	jsonMode bool
	output   io.Writer
	level    slog.LevelVar
}

// New creates a Logger writing human-readable lines to stderr at info level.
func New() *Logger {
	l := &Logger{output: os.Stderr}
	l.level.Set(slog.LevelInfo)
	l.rebuild()
	return l
}

// SetOutput updates the output destination, keeping the current mode.
// A nil w means stderr.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.rebuild()
}

// SetJSON switches between JSON and pretty logging.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	l.rebuild()
}

// SetVerbose enables debug messages.
func (l *Logger) SetVerbose(enable bool) {
	if enable {
		l.level.Set(slog.LevelDebug)
		return
	}
	l.level.Set(slog.LevelInfo)
}

func (l *Logger) rebuild() {
	opts := &slog.HandlerOptions{Level: &l.level}
	if l.jsonMode {
		l.logger = slog.New(slog.NewJSONHandler(l.output, opts))
		return
	}
	l.logger = slog.New(NewPrettyHandler(l.output, opts))
}

// Debug logs a diagnostic message, shown only in verbose mode.
func (l *Logger) Debug(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error together with its causes and their metadata.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err == nil {
		return
	}

	if l.jsonMode {
		args := []any{"error", err.Error()}
		meta := collectMetadata(err)
		for _, k := range slices.Sorted(maps.Keys(meta)) {
			args = append(args, k, meta[k])
		}
		l.logger.Error("operation failed", args...)
		return
	}

	l.logger.Error(formatChain(err))
}

// formatChain renders the error and each of its causes on their own lines.
// Metadata of a wrapper without a message is carried to the next message.
func formatChain(err error) string {
	var messages []string
	var carried []string

	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			messages = append(messages, withFields(current.Error(), carried))
			break
		}

		if md, ok := current.(metadataer); ok {
			carried = append(carried, fields(md.Metadata())...)
		}
		if m.Message() != "" {
			messages = append(messages, withFields(m.Message(), carried))
			carried = nil
		}
		current = errors.Unwrap(current)
	}
	if len(carried) > 0 && len(messages) > 0 {
		messages[len(messages)-1] = withFields(messages[len(messages)-1], carried)
	}

	var formatted []string
	for i, msg := range messages {
		lines := strings.Split(msg, "\n")

		if i == 0 {
			formatted = append(formatted, "Error: "+lines[0])
			for _, line := range lines[1:] {
				formatted = append(formatted, "       "+line)
			}
			continue
		}
		if i == 1 {
			formatted = append(formatted, "", "  Caused by:")
		}
		formatted = append(formatted, "    → "+lines[0])
		for _, line := range lines[1:] {
			formatted = append(formatted, "      "+line)
		}
	}
	return strings.Join(formatted, "\n")
}

func fields(meta map[string]any) []string {
	out := make([]string, 0, len(meta))
	for _, k := range slices.Sorted(maps.Keys(meta)) {
		out = append(out, fmt.Sprintf("%s=%v", k, meta[k]))
	}
	return out
}

func withFields(msg string, kv []string) string {
	if len(kv) == 0 {
		return msg
	}
	return msg + " (" + strings.Join(kv, ", ") + ")"
}

func collectMetadata(err error) map[string]any {
	meta := make(map[string]any)
	for current := err; current != nil; current = errors.Unwrap(current) {
		md, ok := current.(metadataer)
		if !ok {
			continue
		}
		for k, v := range md.Metadata() {
			if _, seen := meta[k]; !seen {
				meta[k] = v
			}
		}
	}
	return meta
}
