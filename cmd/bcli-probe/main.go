// Command bcli-probe is a small diagnostic client that drives a bitcoind
// node's bitcoin-cli binary through the chain/bitcoind package: it waits for
// the node to finish warming up, then reports the current chain height and
// exits, logging every step the way a daemon in this codebase would.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bigstonebtc/lightning/build"
	"github.com/bigstonebtc/lightning/chain/bitcoind"
	"github.com/bigstonebtc/lightning/signal"
	"github.com/jessevdk/go-flags"
	"github.com/lightningnetwork/lnd/clock"
)

func main() {
	if err := run(); err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			return
		}
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, params, err := loadConfig()
	if err != nil {
		return err
	}

	if err := logWriter.InitLogRotator(
		cfg.File, filepath.Join(cfg.LogDir, defaultLogFilename),
	); err != nil {
		return fmt.Errorf("log rotation setup failed: %w", err)
	}
	defer logWriter.Close()

	if err := build.ParseAndSetDebugLevels(cfg.DebugLevel, newSubsystemLoggers()); err != nil {
		return fmt.Errorf("invalid debuglevel: %w", err)
	}

	interceptor := signal.Intercept()

	probLog.Infof("Starting bcli-probe on %s, targeting %s", params.Name, params.CLI)

	client := bitcoind.NewClient(params, cfg.Datadir, nil, clock.NewDefaultClock())
	defer client.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-interceptor.ShutdownChannel()
		cancel()
	}()

	if err := client.WaitForBitcoind(ctx); err != nil {
		return fmt.Errorf("waiting for bitcoind: %w", err)
	}

	done := make(chan struct{})
	client.GetBlockCount(func(height uint32) {
		probLog.Infof("bitcoind reports chain height %d", height)
		fmt.Printf("height: %d\n", height)
		close(done)
	})

	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}

	interceptor.RequestShutdown()
	interceptor.Wait()

	return nil
}
