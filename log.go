package aocenv

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog with console and file output. Console output is
// limited to warnings and errors unless verbose is set; the log file under
// .logs/ always receives everything.
type Logger struct {
	z zerolog.Logger
}

// minLevelWriter drops events below min. Used to keep the console quiet
// while the file writer still sees info-level events.
type minLevelWriter struct {
	w   zerolog.LevelWriter
	min zerolog.Level
}

func (m minLevelWriter) Write(p []byte) (int, error) { return m.w.Write(p) }

func (m minLevelWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if level < m.min {
		return len(p), nil
	}
	return m.w.WriteLevel(level, p)
}

// NewLogger creates a logger with console output and, when logDir is
// non-empty, an append-only aoc.log in that directory.
func NewLogger(logDir string, verbose bool) *Logger {
	noColor := os.Getenv("NO_COLOR") != ""
	if fi, err := os.Stderr.Stat(); err == nil && (fi.Mode()&os.ModeCharDevice) == 0 {
		noColor = true
	}

	console := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}
	consoleLevel := zerolog.WarnLevel
	if verbose {
		consoleLevel = zerolog.InfoLevel
	}

	writers := []io.Writer{minLevelWriter{
		w:   zerolog.LevelWriterAdapter{Writer: console},
		min: consoleLevel,
	}}

	if logDir != "" {
		if err := os.MkdirAll(logDir, 0o755); err == nil {
			f, err := os.OpenFile(filepath.Join(logDir, "aoc.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
			if err == nil {
				writers = append(writers, f)
			}
		}
	}

	zl := zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger()
	return &Logger{z: zl}
}

func (l *Logger) Info(msg string) { l.z.Info().Msg(msg) }
func (l *Logger) Warn(msg string) { l.z.Warn().Msg(msg) }
func (l *Logger) Ok(msg string)   { l.z.Info().Msg(msg) }
func (l *Logger) Err(msg string)  { l.z.Error().Msg(msg) }

func (l *Logger) Infof(format string, args ...any) { l.Info(fmt.Sprintf(format, args...)) }
func (l *Logger) Warnf(format string, args ...any) { l.Warn(fmt.Sprintf(format, args...)) }
func (l *Logger) Okf(format string, args ...any)   { l.Ok(fmt.Sprintf(format, args...)) }
func (l *Logger) Errf(format string, args ...any)  { l.Err(fmt.Sprintf(format, args...)) }
