package bitcoind

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// rpcInWarmup is bitcoind's RPC_IN_WARMUP error code
// (bitcoin/src/rpc/protocol.h), returned while the node is still loading
// its block index.
const rpcInWarmup = 28

// WaitForBitcoind blocks until bitcoind responds to a trivial command,
// retrying once a second on exit code 28 (still warming up) and failing
// immediately on any other non-zero exit, mirroring wait_for_bitcoind.
func (c *Client) WaitForBitcoind(ctx context.Context) error {
	cmd := c.buildArgs("echo")
	printed := false

	for {
		_, exitStatus, err := c.run(ctx, cmd)
		if err != nil {
			return fmt.Errorf("%v exec failed: %w", cmd, err)
		}

		if exitStatus == 0 {
			return nil
		}

		if exitStatus != rpcInWarmup {
			return fmt.Errorf("%v exited with code %d", cmd, exitStatus)
		}

		if !printed {
			log.Warnf("Waiting for bitcoind to warm up...")
			printed = true
		}

		select {
		case <-c.clock.TickAfter(time.Second):
		case <-ctx.Done():
			return errors.New("bitcoind: warm-up wait cancelled")
		}
	}
}
