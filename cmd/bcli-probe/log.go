package main

import (
	"github.com/bigstonebtc/lightning/build"
	"github.com/bigstonebtc/lightning/chain/bitcoind"
	"github.com/bigstonebtc/lightning/lnwire"
	"github.com/bigstonebtc/lightning/signal"
	"github.com/btcsuite/btclog"
)

var (
	logWriter  = build.NewRotatingLogWriter()
	backendLog = btclog.NewBackend(logWriter)

	probLog = build.NewSubLogger("PROB", backendLog)
	bcliLog = build.NewSubLogger("BCLI", backendLog)
	lnwrLog = build.NewSubLogger("LNWR", backendLog)
	sigLog  = build.NewSubLogger("SGNL", backendLog)
)

func init() {
	bitcoind.UseLogger(bcliLog)
	lnwire.UseLogger(lnwrLog)
	signal.UseLogger(sigLog)
}

// subsystemLoggers implements build.LeveledSubLogger over the fixed set of
// subsystems this binary owns.
type subsystemLoggers struct {
	loggers build.SubLoggers
}

func newSubsystemLoggers() *subsystemLoggers {
	return &subsystemLoggers{
		loggers: build.SubLoggers{
			"PROB": probLog,
			"BCLI": bcliLog,
			"LNWR": lnwrLog,
			"SGNL": sigLog,
		},
	}
}

func (s *subsystemLoggers) SubLoggers() build.SubLoggers {
	return s.loggers
}

func (s *subsystemLoggers) SupportedSubsystems() []string {
	names := make([]string, 0, len(s.loggers))
	for name := range s.loggers {
		names = append(names, name)
	}
	return names
}

func (s *subsystemLoggers) SetLogLevel(subsystemID string, logLevel string) {
	logger, ok := s.loggers[subsystemID]
	if !ok {
		return
	}
	level, _ := btclog.LevelFromString(logLevel)
	logger.SetLevel(level)
}

func (s *subsystemLoggers) SetLogLevels(logLevel string) {
	level, _ := btclog.LevelFromString(logLevel)
	for _, logger := range s.loggers {
		logger.SetLevel(level)
	}
}
