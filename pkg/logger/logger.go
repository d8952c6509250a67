package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Level уровень логирования
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel преобразует строку из конфига в Level
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger is a small leveled logger writing to stdout and, optionally,
// to a log file. Methods use printf-style formatting.
type Logger struct {
	level Level
	out   *log.Logger
	file  *os.File
}

// New creates a logger. If file is empty, output goes to stdout only.
func New(file string, level string) (*Logger, error) {
	l := &Logger{level: ParseLevel(level)}

	var w io.Writer = os.Stdout
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: failed to open log file %s: %w", file, err)
		}
		l.file = f
		w = io.MultiWriter(os.Stdout, f)
	}

	l.out = log.New(w, "", log.LstdFlags|log.Lmicroseconds)
	return l, nil
}

// Close закрывает файл логов, если он был открыт
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

func (l *Logger) logf(level Level, prefix, format string, v ...interface{}) {
	if level < l.level {
		return
	}
	l.out.Printf(prefix+" "+format, v...)
}

// Debug логирует сообщение уровня DEBUG
func (l *Logger) Debug(format string, v ...interface{}) {
	l.logf(LevelDebug, "[DEBUG]", format, v...)
}

// Info логирует сообщение уровня INFO
func (l *Logger) Info(format string, v ...interface{}) {
	l.logf(LevelInfo, "[INFO]", format, v...)
}

// Warn логирует сообщение уровня WARN
func (l *Logger) Warn(format string, v ...interface{}) {
	l.logf(LevelWarn, "[WARN]", format, v...)
}

// Error логирует сообщение уровня ERROR
func (l *Logger) Error(format string, v ...interface{}) {
	l.logf(LevelError, "[ERROR]", format, v...)
}

// Fatal логирует сообщение уровня ERROR и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.logf(LevelError, "[FATAL]", format, v...)
	os.Exit(1)
}
