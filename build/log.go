// Package build provides the shared logging wiring used by every package in
// this module. Each package owns a package-level btclog.Logger, defaulted to
// btclog.Disabled, and swaps it out via UseLogger once the host binary has
// set up a real backend.
package build

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btclog"
)

// NewSubLogger constructs a subsystem logger from backend, or returns
// btclog.Disabled if backend is nil. This mirrors the sublogger construction
// used throughout lnd, minus the build-tag deployment switch: this module
// ships as a single CLI tool, not a daemon with dev/prod build variants.
func NewSubLogger(subsystem string, backend *btclog.Backend) btclog.Logger {
	if backend == nil {
		return btclog.Disabled
	}
	return backend.Logger(subsystem)
}

// SubLoggers is a map of subsystem loggers keyed by their subsystem tag.
type SubLoggers map[string]btclog.Logger

// LeveledSubLogger provides the ability to retrieve and adjust the log
// levels of a set of registered subsystem loggers.
type LeveledSubLogger interface {
	// SubLoggers returns the map of all registered subsystem loggers.
	SubLoggers() SubLoggers

	// SupportedSubsystems returns the names of the supported subsystems.
	SupportedSubsystems() []string

	// SetLogLevel assigns an individual subsystem logger a new log level.
	SetLogLevel(subsystemID string, logLevel string)

	// SetLogLevels assigns all subsystem loggers the same new log level.
	SetLogLevels(logLevel string)
}

// ParseAndSetDebugLevels parses a comma-separated debug level specification
// (either a single global level, or subsystem=level pairs) and applies it to
// logger.
func ParseAndSetDebugLevels(level string, logger LeveledSubLogger) error {
	levels := strings.Split(level, ",")
	if len(levels) == 0 {
		return fmt.Errorf("invalid log level: %v", level)
	}

	globalLevel := levels[0]
	if !strings.Contains(globalLevel, "=") {
		if !validLogLevel(globalLevel) {
			return fmt.Errorf("the specified debug level [%v] is invalid",
				globalLevel)
		}

		logger.SetLogLevels(globalLevel)
		levels = levels[1:]
	}

	for _, logLevelPair := range levels {
		if !strings.Contains(logLevelPair, "=") {
			return fmt.Errorf("the specified debug level contains an "+
				"invalid subsystem/level pair [%v]", logLevelPair)
		}

		fields := strings.Split(logLevelPair, "=")
		if len(fields) != 2 {
			return fmt.Errorf("the specified debug level has an invalid "+
				"format [%v] -- use format subsystem1=level1,"+
				"subsystem2=level2", logLevelPair)
		}
		subsysID, logLevel := fields[0], fields[1]
		subLoggers := logger.SubLoggers()

		if _, exists := subLoggers[subsysID]; !exists {
			return fmt.Errorf("the specified subsystem [%v] is invalid -- "+
				"supported subsystems are %v", subsysID,
				logger.SupportedSubsystems())
		}

		if !validLogLevel(logLevel) {
			return fmt.Errorf("the specified debug level [%v] is invalid",
				logLevel)
		}

		logger.SetLogLevel(subsysID, logLevel)
	}

	return nil
}

func validLogLevel(logLevel string) bool {
	switch logLevel {
	case "trace", "debug", "info", "warn", "error", "critical", "off":
		return true
	}
	return false
}
