package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bigstonebtc/lightning/build"
	"github.com/bigstonebtc/lightning/chain"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/jessevdk/go-flags"
)

const (
	defaultConfigFilename = "bcli-probe.conf"
	defaultLogDirname     = "logs"
	defaultLogFilename    = "bcli-probe.log"
	defaultDebugLevel     = "info"
)

var (
	defaultProbeDir = btcutil.AppDataDir("bcli-probe", false)
	defaultLogDir   = filepath.Join(defaultProbeDir, defaultLogDirname)
)

// config holds every knob bcli-probe accepts, mirroring the shape of lnd's
// top-level config struct: a flat set of go-flags fields plus an embedded
// file-rotation group.
type config struct {
	Network string `long:"network" description:"Which chain network to target" choice:"mainnet" choice:"testnet" choice:"regtest"`

	BitcoindCLI string `long:"bitcoind.cli" description:"Path to the bitcoin-cli binary"`
	Datadir     string `long:"bitcoind.datadir" description:"bitcoind -datadir to pass through, if any"`

	LogDir     string `long:"logdir" description:"Directory to log output"`
	DebugLevel string `long:"debuglevel" description:"Logging level for all subsystems"`

	File *build.FileLoggerConfig `group:"file" namespace:"file" description:"Log file rotation options"`
}

// defaultConfig returns the config populated with the same defaults lnd
// applies before parsing command-line flags.
func defaultConfig() *config {
	return &config{
		Network:     "mainnet",
		BitcoindCLI: "bitcoin-cli",
		LogDir:      defaultLogDir,
		DebugLevel:  defaultDebugLevel,
		File:        build.DefaultFileLoggerConfig(),
	}
}

// loadConfig parses command-line flags over the defaults and resolves the
// chain.Params to drive the bitcoind client with.
func loadConfig() (*config, chain.Params, error) {
	cfg := defaultConfig()

	parser := flags.NewParser(cfg, flags.Default)
	if _, err := parser.Parse(); err != nil {
		return nil, chain.Params{}, err
	}

	var params chain.Params
	switch cfg.Network {
	case "mainnet":
		params = chain.MainNetParams
	case "testnet":
		params = chain.TestNetParams
	case "regtest":
		params = chain.RegTestParams
	default:
		return nil, chain.Params{}, fmt.Errorf("unknown network %q", cfg.Network)
	}

	if cfg.BitcoindCLI != "" {
		params.CLI = cfg.BitcoindCLI
	}

	if err := os.MkdirAll(cfg.LogDir, 0700); err != nil {
		return nil, chain.Params{}, fmt.Errorf("create log dir: %w", err)
	}

	return cfg, params, nil
}
