package lnwire

import "github.com/btcsuite/btclog"

// log is the package-level logger used by lnwire. It is disabled by default
// until UseLogger is called.
var log = btclog.Disabled

// UseLogger sets the package-wide logger for lnwire.
func UseLogger(logger btclog.Logger) {
	log = logger
}
