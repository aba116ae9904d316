package bitcoind

import "github.com/btcsuite/btclog"

// log is the package-level logger for the bitcoind RPC driver, tagged BCLI.
// It is disabled by default until UseLogger is called.
var log = btclog.Disabled

// UseLogger sets the package-wide logger used by the driver.
func UseLogger(logger btclog.Logger) {
	log = logger
}
