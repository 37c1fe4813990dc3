package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/vvka-141/mojifix/pkg/mojifix"
)

// ConsoleLogger writes log messages through logrus.
// Safe for concurrent use by multiple goroutines.
type ConsoleLogger struct {
	logger *logrus.Logger
}

// NewConsoleLogger creates a ConsoleLogger writing to w, usually stderr.
// If verbose is true, Verbose() calls will produce output.
// If verbose is false, Verbose() calls are no-ops.
func NewConsoleLogger(w io.Writer, verbose bool) *ConsoleLogger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&lineFormatter{})
	if verbose {
		l.SetLevel(logrus.DebugLevel)
	} else {
		l.SetLevel(logrus.InfoLevel)
	}
	return &ConsoleLogger{logger: l}
}

// Verbose logs detailed diagnostic information if verbose mode is enabled.
func (l *ConsoleLogger) Verbose(format string, args ...interface{}) {
	l.log(logrus.DebugLevel, format, args)
}

// Info logs informational messages about normal operations.
func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	l.log(logrus.InfoLevel, format, args)
}

// Error logs error messages.
func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	l.log(logrus.ErrorLevel, format, args)
}

func (l *ConsoleLogger) log(level logrus.Level, format string, args []interface{}) {
	if !l.logger.IsLevelEnabled(level) {
		return
	}
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	l.logger.Log(level, msg)
}

// lineFormatter renders one unadorned line per entry: "[VERBOSE] msg",
// "msg" or "[ERROR] msg".
type lineFormatter struct{}

func (f *lineFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var prefix string
	switch entry.Level {
	case logrus.DebugLevel, logrus.TraceLevel:
		prefix = "[VERBOSE] "
	case logrus.WarnLevel:
		prefix = "[WARN] "
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		prefix = "[ERROR] "
	}
	return []byte(prefix + entry.Message + "\n"), nil
}

var _ mojifix.Logger = (*ConsoleLogger)(nil)
