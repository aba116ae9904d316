package bitcoind

import (
	"strings"
	"sync"

	"github.com/lightningnetwork/lnd/fn/v2"
)

// resultFunc processes the outcome of a completed bitcoin-cli invocation:
// the raw combined stdout/stderr output, the process exit status, and any
// error that prevented the process from running or exiting cleanly at all
// (as opposed to exiting non-zero, which is reported via exitStatus).
type resultFunc func(output []byte, exitStatus int, err error)

// pendingRequest is a single queued bitcoin-cli invocation, mirroring
// struct bitcoin_cli.
type pendingRequest struct {
	args          []string
	nonZeroExitOK bool
	process       resultFunc
	anchor        fn.Option[*Anchor]
}

// String renders the request's argv as a single space-joined string, for
// use in log and fatal messages, mirroring bcli_args.
func (r *pendingRequest) String() string {
	return strings.Join(r.args, " ")
}

// fire routes a completed invocation's outcome to the request's process
// callback, unless the request's anchor was cancelled first, in which case
// the callback is silently skipped (process_donothing).
func (r *pendingRequest) fire(output []byte, exitStatus int, err error) {
	cancelled := false
	r.anchor.WhenSome(func(a *Anchor) {
		cancelled = a.cancelled()
	})

	if cancelled {
		return
	}

	r.process(output, exitStatus, err)
}

// Anchor is a cancellation scope for a single in-flight or queued command.
// If the anchor is cancelled before the command's process completes, its
// callback is suppressed (the command still runs to completion and its
// child process is still reaped) — mirroring the stopper/stop_process_bcli
// dance in the original: freeing the caller's context before the command
// finishes turns its process() into a no-op rather than aborting it.
type Anchor struct {
	mu        sync.Mutex
	isCancel  bool
	completed bool
}

// NewAnchor returns a fresh, live Anchor.
func NewAnchor() *Anchor {
	return &Anchor{}
}

// Cancel marks the anchor cancelled. If the associated command has already
// completed, Cancel has no effect on a callback that already fired.
func (a *Anchor) Cancel() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.isCancel = true
}

// cancelled reports whether Cancel has been called, whether or not an
// associated command had already completed by then.
func (a *Anchor) cancelled() bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.isCancel
}

// markCompleted records that the associated command has finished, which is
// purely informational bookkeeping mirroring remove_stopper's role of
// severing the link once the command beats cancellation to the finish.
func (a *Anchor) markCompleted() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.completed = true
}
