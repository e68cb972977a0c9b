// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"github.com/H0llyW00dzZ/x509-cert-decoder/src/internal/helper/gc"
)

// Logger defines the interface for logging operations.
// It provides methods for informational and warning output.
//
// The decoder reports non-fatal conditions (for example an unsupported
// general-name type) through Warnf and never fails because of logging.
type Logger interface {
	// Printf formats and prints an informational message.
	Printf(format string, v ...any)
	// Println prints an informational message with a newline.
	Println(v ...any)
	// Warnf formats and prints a warning.
	Warnf(format string, v ...any)
	// SetOutput sets the output destination for the logger.
	SetOutput(w io.Writer)
}

// Discard is a Logger that drops every message.
var Discard Logger = NewJSONLogger(io.Discard, true)

// CLILogger implements Logger using the standard log package.
// It's designed for command-line interface output with human-readable formatting.
type CLILogger struct{ logger *log.Logger }

// NewCLILogger creates a new CLI logger writing to stderr with timestamps disabled.
// Stdout stays reserved for decoded output.
func NewCLILogger() *CLILogger {
	l := log.New(os.Stderr, "", 0)
	return &CLILogger{logger: l}
}

// Printf formats and prints a log message using fmt.Printf semantics.
func (c *CLILogger) Printf(format string, v ...any) { c.logger.Printf(format, v...) }

// Println prints a log message with a newline.
func (c *CLILogger) Println(v ...any) { c.logger.Println(v...) }

// Warnf prints a message prefixed with "warning: ".
func (c *CLILogger) Warnf(format string, v ...any) { c.logger.Printf("warning: "+format, v...) }

// SetOutput sets the output destination for the CLI logger.
func (c *CLILogger) SetOutput(w io.Writer) { c.logger.SetOutput(w) }

// JSONLogger implements Logger by writing one JSON object per line:
//
//	{"level":"warn","message":"..."}
//
// It can be silenced entirely, which is how library callers that do not
// care about warnings wire it.
//
// JSONLogger is safe for concurrent use by multiple goroutines.
type JSONLogger struct {
	mu     sync.Mutex
	writer io.Writer
	silent bool
}

// NewJSONLogger creates a new JSON logger. A nil writer discards output.
func NewJSONLogger(writer io.Writer, silent bool) *JSONLogger {
	if writer == nil {
		writer = io.Discard
	}
	return &JSONLogger{
		writer: writer,
		silent: silent,
	}
}

type entry struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

func (j *JSONLogger) write(level, msg string) {
	if j.silent {
		return
	}

	_ = gc.With(gc.Default, func(buf gc.Buffer) error {
		// Encoder appends the trailing newline.
		if err := json.NewEncoder(buf).Encode(entry{Level: level, Message: msg}); err != nil {
			return err
		}

		j.mu.Lock()
		defer j.mu.Unlock()
		_, err := buf.WriteTo(j.writer)
		return err
	})
}

// Printf formats and logs an info-level entry.
func (j *JSONLogger) Printf(format string, v ...any) {
	j.write("info", fmt.Sprintf(format, v...))
}

// Println logs an info-level entry.
func (j *JSONLogger) Println(v ...any) {
	j.write("info", fmt.Sprint(v...))
}

// Warnf formats and logs a warn-level entry.
func (j *JSONLogger) Warnf(format string, v ...any) {
	j.write("warn", fmt.Sprintf(format, v...))
}

// SetOutput sets the output destination for the JSON logger.
//
// SetOutput is safe for concurrent use by multiple goroutines.
func (j *JSONLogger) SetOutput(w io.Writer) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if w == nil {
		j.writer = io.Discard
	} else {
		j.writer = w
	}
}
