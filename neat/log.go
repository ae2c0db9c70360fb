package neat

import (
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"
)

// LoggerLevel is the minimum severity a log call must meet to be emitted.
type LoggerLevel string

const (
	LogLevelDebug   LoggerLevel = "debug"
	LogLevelInfo    LoggerLevel = "info"
	LogLevelWarning LoggerLevel = "warn"
	LogLevelError   LoggerLevel = "error"
)

// severity ranks each level so acceptLogLevel is a single integer
// comparison rather than a level-by-level chain.
var severity = map[LoggerLevel]int{
	LogLevelDebug:   0,
	LogLevelInfo:    1,
	LogLevelWarning: 2,
	LogLevelError:   3,
}

var (
	// LogLevel is the run's current minimum emitted severity. The zero
	// value accepts nothing until InitLogger sets it.
	LogLevel LoggerLevel

	loggerDebug = log.New(os.Stdout, "DEBUG: ", log.Ltime|log.Lshortfile)
	loggerInfo  = log.New(os.Stdout, "INFO: ", log.Ltime|log.Lshortfile)
	loggerWarn  = log.New(os.Stdout, "WARN: ", log.Ltime|log.Lshortfile)
	loggerError = log.New(os.Stderr, "ERROR: ", log.Ltime|log.Lshortfile)

	// DebugLog, InfoLog, WarnLog, and ErrorLog each check LogLevel at call
	// time, so changing LogLevel after InitLogger affects every one of
	// these closures immediately, not just future calls to InitLogger.
	DebugLog = levelLogger(loggerDebug, LogLevelDebug)
	InfoLog  = levelLogger(loggerInfo, LogLevelInfo)
	WarnLog  = levelLogger(loggerWarn, LogLevelWarning)
	ErrorLog = levelLogger(loggerError, LogLevelError)
)

func levelLogger(l *log.Logger, level LoggerLevel) func(string) {
	return func(message string) {
		if acceptLogLevel(LogLevel, level) {
			_ = l.Output(2, message)
		}
	}
}

// InitLogger sets the run's minimum emitted severity from a config string
// ("debug", "info", "warn", or "error").
func InitLogger(level string) error {
	l := LoggerLevel(level)
	if _, ok := severity[l]; !ok {
		return errors.Errorf("unsupported log level: [%s]", level)
	}
	LogLevel = l
	return nil
}

func acceptLogLevel(currentLevel, targetLevel LoggerLevel) bool {
	current, ok := severity[currentLevel]
	if !ok {
		_ = loggerError.Output(2, fmt.Sprintf(
			"unsupported NEAT log level was set: %q. Please use one of the following: 'debug', 'info', 'warn', and 'error'.",
			currentLevel))
		return false
	}
	return severity[targetLevel] >= current
}

// GenerationLog reports a per-generation progress line at debug severity,
// tagging it with the generation number so a long run's log can be grep'd
// by generation.
func GenerationLog(generation int, message string) {
	DebugLog(fmt.Sprintf("generation %d: %s", generation, message))
}
