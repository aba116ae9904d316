package signal

import "github.com/btcsuite/btclog"

// log is the subsystem logger used by the interrupt handler. It defaults to
// a disabled logger so this package is silent when embedded in a program
// that hasn't wired up logging.
var log = btclog.Disabled

// UseLogger sets the subsystem logger used by this package.
func UseLogger(logger btclog.Logger) {
	log = logger
}
