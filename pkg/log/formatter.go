package log

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

const (
	timestampFormat = "15:04:05.000"

	// PrettyFormatName renders human readable lines.
	PrettyFormatName = "pretty"
	// JSONFormatName renders one JSON object per line.
	JSONFormatName = "json"
)

// Formatter renders a log entry into bytes.
type Formatter interface {
	Format(entry *Entry) ([]byte, error)

	// DisableColors removes ANSI escape sequences from the output.
	DisableColors()
}

// Entry is the log record passed to a Formatter.
type Entry struct {
	Time    time.Time
	Level   Level
	Message string
	Fields  Fields
}

// PrettyFormatter writes `time level [prefix] message key=value` lines.
type PrettyFormatter struct {
	colorScheme   compiledColorScheme
	disableColors bool
}

// NewFormatter returns the default pretty formatter.
func NewFormatter() *PrettyFormatter {
	return &PrettyFormatter{
		colorScheme: defaultColorScheme.Compile(),
	}
}

// NewFormatterByName returns a formatter for the given name, `pretty` or `json`.
func NewFormatterByName(name string) (Formatter, error) {
	switch strings.ToLower(name) {
	case "", PrettyFormatName:
		return NewFormatter(), nil
	case JSONFormatName:
		return &JSONFormatter{}, nil
	}

	return nil, fmt.Errorf("invalid log format %q, supported formats: %s, %s", name, PrettyFormatName, JSONFormatName)
}

// DisableColors implements Formatter.
func (formatter *PrettyFormatter) DisableColors() {
	formatter.disableColors = true
}

// Format implements Formatter.
func (formatter *PrettyFormatter) Format(entry *Entry) ([]byte, error) {
	buf := new(bytes.Buffer)

	color := func(name ColorStyleName, s string) string {
		if formatter.disableColors {
			return s
		}

		return formatter.colorScheme.ColorFunc(name)(s)
	}

	levelName := strings.ToUpper(entry.Level.String())
	if !formatter.disableColors {
		levelName = formatter.colorScheme.LevelColorFunc(entry.Level)(levelName)
	}

	fmt.Fprintf(buf, "%s %-6s", color(TimestampStyle, entry.Time.Format(timestampFormat)), levelName)

	if prefix, ok := entry.Fields[FieldKeyPrefix]; ok {
		fmt.Fprintf(buf, "[%s] ", color(PrefixStyle, fmt.Sprint(prefix)))
	}

	buf.WriteString(entry.Message)

	for _, key := range entry.Fields.Keys(FieldKeyPrefix) {
		fmt.Fprintf(buf, " %s=%v", color(FieldKeyStyle, key), entry.Fields[key])
	}

	buf.WriteByte('\n')

	return buf.Bytes(), nil
}

// JSONFormatter writes one JSON object per entry.
type JSONFormatter struct{}

// DisableColors implements Formatter.
func (formatter *JSONFormatter) DisableColors() {}

// Format implements Formatter.
func (formatter *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	data := make(Fields, len(entry.Fields)+3)

	for key, val := range entry.Fields {
		if err, ok := val.(error); ok {
			val = err.Error()
		}

		data[key] = val
	}

	data[FieldKeyTime] = entry.Time.Format(time.RFC3339)
	data[FieldKeyLevel] = entry.Level.String()
	data[FieldKeyMsg] = entry.Message

	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(data); err != nil {
		return nil, fmt.Errorf("failed to marshal fields to JSON: %w", err)
	}

	return buf.Bytes(), nil
}

// IsTerminal reports whether the writer is attached to a terminal.
func IsTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}

// fromLogrusFormatter adapts a Formatter to logrus.
type fromLogrusFormatter struct {
	Formatter
}

func (formatter *fromLogrusFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	return formatter.Formatter.Format(&Entry{
		Time:    entry.Time,
		Level:   FromLogrusLevel(entry.Level),
		Message: entry.Message,
		Fields:  Fields(entry.Data),
	})
}
