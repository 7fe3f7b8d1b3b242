package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// ParseLevel aceita DEBUG, INFO, WARNING (ou WARN) e ERROR, sem diferenciar maiúsculas.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug, nil
	case "", "INFO":
		return LevelInfo, nil
	case "WARNING", "WARN":
		return LevelWarning, nil
	case "ERROR":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

type Logger interface {
	Debug(msg string)
	Info(msg string)
	Warning(msg string)
	Error(msg string, err error)
	Close()
}

type LogData struct {
	File      string `json:"file"`
	Function  string `json:"function"`
	Level     string `json:"level"`
	Message   string `json:"message"`
	Err       string `json:"err,omitempty"`
	Timestamp string `json:"timestamp"`
}

type jsonLogger struct {
	mu       sync.Mutex
	out      io.Writer
	closer   io.Closer
	encoder  *json.Encoder
	minLevel Level
}

// NewFileLogger abre logDir/<prefix>_<timestamp>.json, um arquivo por execução.
func NewFileLogger(logDir, logPrefix string, minLevel Level) (Logger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory '%s': %w", logDir, err)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	logFilePath := filepath.Join(logDir, fmt.Sprintf("%s_%s.json", logPrefix, timestamp))

	file, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file '%s': %w", logFilePath, err)
	}

	l := NewJSONLogger(file, minLevel).(*jsonLogger)
	l.closer = file
	return l, nil
}

// NewJSONLogger escreve uma linha JSON por entrada em out.
func NewJSONLogger(out io.Writer, minLevel Level) Logger {
	return &jsonLogger{
		out:      out,
		encoder:  json.NewEncoder(out),
		minLevel: minLevel,
	}
}

func (l *jsonLogger) write(level Level, msg string, errIn error) {
	if level < l.minLevel {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.out == nil {
		fmt.Fprintf(os.Stderr, "logger is closed, dropping: %s\n", msg)
		return
	}

	shortFileName, funcName := callerInfo()

	entry := LogData{
		Timestamp: time.Now().Format(time.RFC3339),
		File:      shortFileName,
		Function:  funcName,
		Level:     level.String(),
		Message:   msg,
	}

	if errIn != nil {
		entry.Err = errIn.Error()
	}

	if err := l.encoder.Encode(entry); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write log entry: %v\n", err)
	}
}

// callerInfo pula callerInfo, write e Info/Error/... para chegar em quem chamou.
func callerInfo() (file, function string) {
	pcs := make([]uintptr, 1)
	if runtime.Callers(4, pcs) == 0 {
		return "???", "???"
	}

	frame, _ := runtime.CallersFrames(pcs).Next()
	parts := strings.Split(frame.Function, ".")
	return filepath.Base(frame.File), parts[len(parts)-1]
}

func (l *jsonLogger) Debug(msg string) {
	l.write(LevelDebug, msg, nil)
}

func (l *jsonLogger) Info(msg string) {
	l.write(LevelInfo, msg, nil)
}

func (l *jsonLogger) Warning(msg string) {
	l.write(LevelWarning, msg, nil)
}

func (l *jsonLogger) Error(msg string, err error) {
	l.write(LevelError, msg, err)
}

func (l *jsonLogger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closer != nil {
		if err := l.closer.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "error closing log file: %v\n", err)
		}
		l.closer = nil
	}
	l.out = nil
}
