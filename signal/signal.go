// Package signal provides a single entry point for catching OS interrupt
// signals and turning them into a graceful-shutdown request that the rest of
// a program can wait on.
package signal

import (
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// ErrShutdownRequested reports that the process has already begun shutting
// down. None of Interceptor's methods return it.
var ErrShutdownRequested = errors.New("signal: shutdown already requested")

// Interceptor catches SIGINT, SIGTERM, SIGABRT and SIGQUIT and turns the
// first one it sees into a closed quit channel; further signals or shutdown
// requests are no-ops.
type Interceptor struct {
	once  sync.Once
	quit  chan struct{}
	sigCh chan os.Signal
	reqCh chan struct{}
	done  chan struct{}
}

// Intercept installs the signal handler and starts the goroutine that
// converts caught signals into a shutdown. Only one Interceptor should be
// created per process.
func Intercept() *Interceptor {
	in := &Interceptor{
		quit:  make(chan struct{}),
		sigCh: make(chan os.Signal, 1),
		reqCh: make(chan struct{}),
		done:  make(chan struct{}),
	}

	signal.Notify(in.sigCh,
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGABRT,
		syscall.SIGQUIT,
	)

	go in.run()

	return in
}

func (in *Interceptor) run() {
	select {
	case sig := <-in.sigCh:
		log.Infof("Received %v, shutting down", sig)
	case <-in.reqCh:
		log.Infof("Received shutdown request")
	}

	close(in.quit)
	close(in.done)
}

// Alive reports whether a shutdown has not yet been requested.
func (in *Interceptor) Alive() bool {
	select {
	case <-in.quit:
		return false
	default:
		return true
	}
}

// RequestShutdown asks the interceptor to begin shutting down, as if a
// signal had been caught. It is safe to call more than once and from any
// goroutine.
func (in *Interceptor) RequestShutdown() {
	in.once.Do(func() {
		close(in.reqCh)
	})
}

// ShutdownChannel returns a channel that is closed once a signal or
// shutdown request has been processed.
func (in *Interceptor) ShutdownChannel() <-chan struct{} {
	return in.quit
}

// Wait blocks until the interceptor's goroutine has fully exited.
func (in *Interceptor) Wait() {
	<-in.done
}
