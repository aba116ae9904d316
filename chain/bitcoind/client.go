// Package bitcoind implements a serialized, asynchronous RPC client that
// drives a bitcoin-cli subprocess: at most one child process is ever
// in-flight, queued requests fire their callbacks in FIFO order, and a
// 60-second streak of non-zero exits is treated as fatal.
package bitcoind

import (
	"container/list"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bigstonebtc/lightning/chain"
	"github.com/bigstonebtc/lightning/walletdb"
	"github.com/lightningnetwork/lnd/clock"
)

// errorStreakLimit is the maximum duration of consecutive non-zero exits
// tolerated before the driver considers bitcoind unreachable and calls
// Fatal, mirroring bcli_finished's "Allow 60 seconds of spurious errors,
// eg. reorg" policy.
const errorStreakLimit = 60 * time.Second

// Client drives bitcoin-cli as a serialized subprocess-backed RPC client.
type Client struct {
	params  chain.Params
	datadir string
	db      walletdb.Transactor
	clock   clock.Clock
	run     runFunc

	// Fatal is invoked when the 60-second error streak elapses or a
	// child process is killed by a signal. It defaults to a function
	// that logs at Critical and panics; tests substitute a function
	// that records the call instead.
	Fatal func(err error)

	mu       sync.Mutex
	cond     *sync.Cond
	pending  *list.List
	running  bool
	shutdown bool

	errorCount     int
	firstErrorTime time.Time

	wg sync.WaitGroup
}

// NewClient constructs a Client and starts its dispatch loop. db may be nil
// if the host application has no transaction bracket to run callbacks
// inside.
func NewClient(params chain.Params, datadir string, db walletdb.Transactor,
	clk clock.Clock) *Client {

	c := &Client{
		params:  params,
		datadir: datadir,
		db:      db,
		clock:   clk,
		run:     runBitcoinCLI,
		pending: list.New(),
	}
	c.cond = sync.NewCond(&c.mu)
	c.Fatal = c.defaultFatal

	c.wg.Add(1)
	go c.dispatchLoop()

	return c
}

func (c *Client) defaultFatal(err error) {
	log.Criticalf("bitcoind: %v", err)
	panic(err)
}

// buildArgs assembles the full argv for cmd, mirroring gather_args: the CLI
// binary, then chain-param args, then an optional -datadir=, then cmd and
// its arguments.
func (c *Client) buildArgs(cmd string, args ...string) []string {
	full := make([]string, 0, len(c.params.CLIArgs)+len(args)+3)
	full = append(full, c.params.CLI)
	full = append(full, c.params.CLIArgs...)
	if c.datadir != "" {
		full = append(full, fmt.Sprintf("-datadir=%s", c.datadir))
	}
	full = append(full, cmd)
	full = append(full, args...)

	return full
}

// enqueue appends req to the pending queue and wakes the dispatch loop,
// mirroring start_bitcoin_cli's list_add_tail + next_bcli.
func (c *Client) enqueue(req *pendingRequest) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.shutdown {
		req.fire(nil, -1, ErrShuttingDown)
		return
	}

	c.pending.PushBack(req)
	c.cond.Signal()
}

// dispatchLoop pops one request at a time off the queue, runs it to
// completion, and routes its result before picking up the next one — the
// single-in-flight-child invariant this package exists to provide.
func (c *Client) dispatchLoop() {
	defer c.wg.Done()

	for {
		c.mu.Lock()
		for c.pending.Len() == 0 && !c.shutdown {
			c.cond.Wait()
		}
		if c.shutdown {
			c.mu.Unlock()
			return
		}

		elem := c.pending.Front()
		c.pending.Remove(elem)
		req := elem.Value.(*pendingRequest)
		c.running = true
		c.mu.Unlock()

		output, exitStatus, err := c.run(context.Background(), req.args)

		c.mu.Lock()
		c.running = false
		shuttingDown := c.shutdown
		c.mu.Unlock()

		// Suppresses the callback from firing as we shut down, the
		// same role destroy_bitcoind's shutdown flag plays.
		if shuttingDown {
			return
		}

		c.completeRequest(req, output, exitStatus, err)
	}
}

// completeRequest applies the error-streak policy, brackets the callback in
// a database transaction, and fires it, mirroring bcli_finished.
func (c *Client) completeRequest(req *pendingRequest, output []byte,
	exitStatus int, runErr error) {

	if runErr != nil {
		c.Fatal(fmt.Errorf("%s: %w", req, runErr))
		return
	}

	if !req.nonZeroExitOK && exitStatus != 0 {
		c.recordError(req, output, exitStatus)
	} else if exitStatus == 0 {
		c.resetErrorStreak()
	}

	if c.db != nil {
		if err := c.db.BeginTransaction(); err != nil {
			c.Fatal(fmt.Errorf("begin transaction: %w", err))
			return
		}
	}

	req.fire(output, exitStatus, nil)
	req.anchor.WhenSome(func(a *Anchor) { a.markCompleted() })

	if c.db != nil {
		if err := c.db.CommitTransaction(); err != nil {
			c.Fatal(fmt.Errorf("commit transaction: %w", err))
			return
		}
	}
}

// recordError applies the 60-second spurious-error tolerance: the first
// non-zero exit in a streak starts the clock, and once errorStreakLimit has
// elapsed since then the driver treats bitcoind as unreachable and calls
// Fatal.
func (c *Client) recordError(req *pendingRequest, output []byte, exitStatus int) {
	c.mu.Lock()
	if c.errorCount == 0 {
		c.firstErrorTime = c.clock.Now()
	}
	elapsed := c.clock.Now().Sub(c.firstErrorTime)
	errCount := c.errorCount
	c.mu.Unlock()

	log.Warnf("%s exited with status %d", req, exitStatus)

	if elapsed > errorStreakLimit {
		c.Fatal(fmt.Errorf("%s exited %d (after %d other errors) %q",
			req, exitStatus, errCount, output))
		return
	}

	c.mu.Lock()
	c.errorCount++
	c.mu.Unlock()
}

// resetErrorStreak clears the error streak state, run on any zero-exit
// completion.
func (c *Client) resetErrorStreak() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.errorCount = 0
	c.firstErrorTime = time.Time{}
}

// Stop drains no further requests, wakes the dispatch loop so it can exit,
// and waits for it to do so. Any request still queued when Stop is called
// never fires its callback, mirroring destroy_bitcoind's shutdown flag
// suppressing bcli_finished's callback path.
func (c *Client) Stop() {
	c.mu.Lock()
	c.shutdown = true
	c.cond.Broadcast()
	c.mu.Unlock()

	c.wg.Wait()
}
