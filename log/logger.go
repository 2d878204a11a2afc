package log

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Logger struct {
	mu     *sync.Mutex
	writer io.Writer
	exit   func(int)

	Name  string
	Level LogLevel

	TimeFormat string
	File       string
	NoColor    bool
	JSON       bool
	NoTerminal bool
	Rotation   *LoggerRotation
}

type LoggerRotation struct {
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

type LoggerOption func(*Logger)

type logEntry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Service   string `json:"service,omitempty"`
	Message   string `json:"message"`
}

// WithWriter replaces terminal and file output with w.
func WithWriter(w io.Writer) LoggerOption {
	return func(l *Logger) {
		l.writer = w
	}
}

func WithJSON() LoggerOption {
	return func(l *Logger) {
		l.JSON = true
	}
}

func WithoutColor() LoggerOption {
	return func(l *Logger) {
		l.NoColor = true
	}
}

func WithRotation(rotation LoggerRotation) LoggerOption {
	return func(l *Logger) {
		l.Rotation = &rotation
	}
}

func NewLogger(name string, level LogLevel, file string, noTerminal bool, opts ...LoggerOption) *Logger {
	l := &Logger{
		mu:   &sync.Mutex{},
		exit: os.Exit,

		Name:       name,
		Level:      level,
		File:       file,
		NoTerminal: noTerminal,

		TimeFormat: "2006-01-02 15:04:05",
		Rotation: &LoggerRotation{
			MaxSize:    128,
			MaxBackups: 5,
			MaxAge:     16,
			Compress:   false,
		},
	}

	for _, opt := range opts {
		opt(l)
	}

	if l.writer == nil {
		l.setupWriter()
	} else {
		// Explicit writers are never terminals.
		l.NoColor = true
	}

	return l
}

// Discard returns a logger that drops every entry.
func Discard() *Logger {
	return NewLogger("", Fatal+1, "", true, WithWriter(io.Discard))
}

func (l *Logger) setupWriter() {
	var writers []io.Writer

	if !l.NoTerminal {
		writers = append(writers, os.Stdout)
	}

	if l.File != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   l.File,
			MaxSize:    l.Rotation.MaxSize,
			MaxBackups: l.Rotation.MaxBackups,
			MaxAge:     l.Rotation.MaxAge,
			Compress:   l.Rotation.Compress,
		})
	}

	if len(writers) == 0 {
		writers = append(writers, os.Stdout)
	}

	l.writer = io.MultiWriter(writers...)
}

func (l *Logger) log(level LogLevel, msg string, args ...any) {
	if level < l.Level {
		return
	}

	timestamp := time.Now().Format(l.TimeFormat)
	formatted := fmt.Sprintf(msg, args...)

	var line string
	if l.JSON {
		entry := logEntry{
			Timestamp: timestamp,
			Level:     level.String(),
			Service:   l.Name,
			Message:   formatted,
		}

		data, _ := json.Marshal(entry)
		line = string(data)
	} else {
		prefix := fmt.Sprintf("[%s] %-5s", timestamp, level)
		if l.Name != "" {
			prefix = fmt.Sprintf("%s [%s]", prefix, l.Name)
		}

		line = prefix + " " + formatted
		if !l.NoTerminal && !l.NoColor {
			line = Colorize(level, line)
		}
	}

	l.mu.Lock()
	fmt.Fprintln(l.writer, line)
	l.mu.Unlock()

	if level == Fatal {
		l.exit(1)
	}
}

func (l *Logger) Debug(msg string, args ...any) {
	l.log(Debug, msg, args...)
}

func (l *Logger) Info(msg string, args ...any) {
	l.log(Info, msg, args...)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.log(Warn, msg, args...)
}

func (l *Logger) Error(msg string, args ...any) {
	l.log(Error, msg, args...)
}

func (l *Logger) Fatal(msg string, args ...any) {
	l.log(Fatal, msg, args...)
}

// Named returns a child logger sharing the same output, with name appended.
func (l *Logger) Named(name string) *Logger {
	child := *l
	if l.Name != "" {
		child.Name = l.Name + "/" + name
	} else {
		child.Name = name
	}
	return &child
}
