// Package chain holds the chain-parameter values that drive how the
// bitcoind RPC client invokes its CLI binary.
package chain

// Params describes the CLI binary and any fixed arguments needed to reach a
// particular bitcoind network, mirroring struct bitcoind's chainparams
// fields (cli, cli_args) in the original implementation.
type Params struct {
	// Name identifies the network, e.g. "mainnet", "testnet", "regtest".
	Name string

	// CLI is the name (or path) of the bitcoin-cli binary to invoke.
	CLI string

	// CLIArgs are extra fixed arguments always passed ahead of the
	// per-command arguments, such as "-testnet" or "-regtest". May be
	// empty.
	CLIArgs []string
}

// MainNetParams targets bitcoind's default network.
var MainNetParams = Params{
	Name: "mainnet",
	CLI:  "bitcoin-cli",
}

// TestNetParams targets testnet3.
var TestNetParams = Params{
	Name:    "testnet",
	CLI:     "bitcoin-cli",
	CLIArgs: []string{"-testnet"},
}

// RegTestParams targets a local regtest node.
var RegTestParams = Params{
	Name:    "regtest",
	CLI:     "bitcoin-cli",
	CLIArgs: []string{"-regtest"},
}
