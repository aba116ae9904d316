package bitcoind

import "errors"

// ErrShuttingDown is passed to a request's process callback when the request
// is enqueued after Stop has been called; the public commands then drop the
// request silently.
var ErrShuttingDown = errors.New("bitcoind: client is shutting down")

// ErrKilledBySignal indicates the bitcoin-cli child process was killed by a
// signal rather than exiting normally.
var ErrKilledBySignal = errors.New("bitcoind: child process killed by signal")
