// Package walletdb declares the seam the bitcoind driver calls through to
// bracket each completed command's callback in a database transaction. This
// package intentionally has no implementation: the wallet/database layer is
// an external collaborator supplied by the host application.
package walletdb

// Transactor brackets a unit of work in a database transaction. The
// bitcoind driver calls BeginTransaction before invoking a completed
// command's callback and CommitTransaction immediately after, mirroring
// db_begin_transaction/db_commit_transaction around bcli->process(bcli) in
// the original implementation.
type Transactor interface {
	// BeginTransaction starts a new transaction.
	BeginTransaction() error

	// CommitTransaction commits the transaction started by
	// BeginTransaction.
	CommitTransaction() error
}
