package neat

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestAcceptLogLevel_Error(t *testing.T) {
	assert.False(t, acceptLogLevel(LogLevelError, LogLevelDebug))
	assert.False(t, acceptLogLevel(LogLevelError, LogLevelInfo))
	assert.False(t, acceptLogLevel(LogLevelError, LogLevelWarning))
	assert.True(t, acceptLogLevel(LogLevelError, LogLevelError))
}

func TestAcceptLogLevel_Warning(t *testing.T) {
	assert.False(t, acceptLogLevel(LogLevelWarning, LogLevelDebug))
	assert.False(t, acceptLogLevel(LogLevelWarning, LogLevelInfo))
	assert.True(t, acceptLogLevel(LogLevelWarning, LogLevelWarning))
	assert.True(t, acceptLogLevel(LogLevelWarning, LogLevelError))
}

func TestAcceptLogLevel_Info(t *testing.T) {
	assert.False(t, acceptLogLevel(LogLevelInfo, LogLevelDebug))
	assert.True(t, acceptLogLevel(LogLevelInfo, LogLevelInfo))
	assert.True(t, acceptLogLevel(LogLevelInfo, LogLevelWarning))
	assert.True(t, acceptLogLevel(LogLevelInfo, LogLevelError))
}

func TestAcceptLogLevel_Debug(t *testing.T) {
	assert.True(t, acceptLogLevel(LogLevelDebug, LogLevelDebug))
	assert.True(t, acceptLogLevel(LogLevelDebug, LogLevelInfo))
	assert.True(t, acceptLogLevel(LogLevelDebug, LogLevelWarning))
	assert.True(t, acceptLogLevel(LogLevelDebug, LogLevelError))
}

func TestAcceptLogLevel_Unsupported(t *testing.T) {
	assert.False(t, acceptLogLevel("unsupported", LogLevelDebug))
	assert.False(t, acceptLogLevel("unsupported", LogLevelInfo))
	assert.False(t, acceptLogLevel("unsupported", LogLevelWarning))
	assert.False(t, acceptLogLevel("unsupported", LogLevelError))
}

func TestInitLogger_RejectsUnknownLevel(t *testing.T) {
	assert.Error(t, InitLogger("verbose"))
}

func TestInitLogger_AcceptsKnownLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		assert.NoError(t, InitLogger(level))
		assert.Equal(t, LoggerLevel(level), LogLevel)
	}
}

func TestGenerationLog_PrefixesGenerationNumber(t *testing.T) {
	var captured string
	original := DebugLog
	defer func() { DebugLog = original }()
	DebugLog = func(message string) { captured = message }

	GenerationLog(7, "population=4 mean_fitness=1.000000 best_fitness=2.000000")

	assert.Equal(t, "generation 7: population=4 mean_fitness=1.000000 best_fitness=2.000000", captured)
}
