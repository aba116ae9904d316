package bitcoind

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/bigstonebtc/lightning/chain"
	"github.com/lightningnetwork/lnd/clock"
	"github.com/stretchr/testify/require"
)

// scriptedRun returns a runFunc that serves canned (output, exitStatus,
// err) triples in call order, and records the args it was invoked with.
type scriptedRun struct {
	mu      sync.Mutex
	calls   [][]string
	results []struct {
		output     []byte
		exitStatus int
		err        error
	}
	i int
}

func (s *scriptedRun) push(output []byte, exitStatus int, err error) {
	s.results = append(s.results, struct {
		output     []byte
		exitStatus int
		err        error
	}{output, exitStatus, err})
}

func (s *scriptedRun) run(_ context.Context, args []string) ([]byte, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls = append(s.calls, args)
	r := s.results[s.i]
	s.i++

	return r.output, r.exitStatus, r.err
}

func newTestClient(t *testing.T) (*Client, *scriptedRun) {
	t.Helper()

	c := NewClient(chain.RegTestParams, "", nil, clock.NewTestClock(time.Now()))
	sr := &scriptedRun{}
	c.run = sr.run

	t.Cleanup(c.Stop)

	return c, sr
}

func TestClientGetBlockCount(t *testing.T) {
	t.Parallel()

	c, sr := newTestClient(t)
	sr.push([]byte("104\n"), 0, nil)

	done := make(chan uint32, 1)
	c.GetBlockCount(func(height uint32) {
		done <- height
	})

	select {
	case height := <-done:
		require.Equal(t, uint32(104), height)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for callback")
	}
}

func TestClientFIFOOrdering(t *testing.T) {
	t.Parallel()

	c, sr := newTestClient(t)
	sr.push([]byte("1\n"), 0, nil)
	sr.push([]byte("2\n"), 0, nil)
	sr.push([]byte("3\n"), 0, nil)

	var (
		mu     sync.Mutex
		order  []uint32
		wg     sync.WaitGroup
		numCbs = 3
	)
	wg.Add(numCbs)

	for i := 0; i < numCbs; i++ {
		c.GetBlockCount(func(height uint32) {
			mu.Lock()
			order = append(order, height)
			mu.Unlock()
			wg.Done()
		})
	}

	waitOrTimeout(t, &wg)

	require.Equal(t, []uint32{1, 2, 3}, order)
}

func TestClientSingleInFlightChild(t *testing.T) {
	t.Parallel()

	c, sr := newTestClient(t)
	sr.push([]byte("1\n"), 0, nil)
	sr.push([]byte("2\n"), 0, nil)

	var wg sync.WaitGroup
	wg.Add(2)
	c.GetBlockCount(func(uint32) { wg.Done() })
	c.GetBlockCount(func(uint32) { wg.Done() })

	waitOrTimeout(t, &wg)

	sr.mu.Lock()
	defer sr.mu.Unlock()
	require.Len(t, sr.calls, 2)
}

func TestClientZeroExitResetsErrorStreak(t *testing.T) {
	t.Parallel()

	testClock := clock.NewTestClock(time.Unix(0, 0))
	c := NewClient(chain.RegTestParams, "", nil, testClock)
	sr := &scriptedRun{}
	c.run = sr.run
	t.Cleanup(c.Stop)

	fatalCalls := 0
	c.Fatal = func(error) { fatalCalls++ }

	// A non-zero exit starts the error streak.
	sr.push([]byte("boom"), 1, nil)
	var wg sync.WaitGroup
	wg.Add(1)
	req := &pendingRequest{args: []string{"whatever"}}
	req.process = func([]byte, int, error) { wg.Done() }
	c.enqueue(req)
	waitOrTimeout(t, &wg)

	require.Equal(t, 1, c.errorCount)

	// A zero exit resets it.
	sr.push([]byte("0\n"), 0, nil)
	wg.Add(1)
	c.GetBlockCount(func(uint32) { wg.Done() })
	waitOrTimeout(t, &wg)

	require.Equal(t, 0, c.errorCount)
	require.Equal(t, 0, fatalCalls)
}

func TestClientErrorStreakPastLimitIsFatal(t *testing.T) {
	t.Parallel()

	testClock := clock.NewTestClock(time.Unix(0, 0))
	c := NewClient(chain.RegTestParams, "", nil, testClock)
	sr := &scriptedRun{}
	c.run = sr.run
	t.Cleanup(c.Stop)

	fatal := make(chan error, 1)
	c.Fatal = func(err error) { fatal <- err }

	firstDone := make(chan struct{})
	sr.push([]byte("boom"), 1, nil)
	req := &pendingRequest{
		args:    []string{"whatever"},
		process: func([]byte, int, error) { close(firstDone) },
	}
	c.enqueue(req)

	select {
	case <-firstDone:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for first failure to be processed")
	}

	// Advance the clock past the tolerance window and trigger another
	// failure; recordError reads the elapsed time off the same clock.
	testClock.SetTime(time.Unix(0, 0).Add(errorStreakLimit + time.Second))

	sr.push([]byte("boom again"), 1, nil)
	req2 := &pendingRequest{args: []string{"whatever"}, process: func([]byte, int, error) {}}
	c.enqueue(req2)

	select {
	case err := <-fatal:
		require.Error(t, err)
	case <-time.After(time.Second):
		t.Fatal("expected Fatal to be called")
	}
}

func TestClientEnqueueAfterStopReportsShuttingDown(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t)
	c.Stop()

	var (
		gotOutput []byte
		gotStatus = -2
		gotErr    error
	)
	req := &pendingRequest{
		args: []string{"whatever"},
		process: func(output []byte, exitStatus int, err error) {
			gotOutput, gotStatus, gotErr = output, exitStatus, err
		},
	}
	c.enqueue(req)

	require.Nil(t, gotOutput)
	require.Equal(t, -1, gotStatus)
	require.ErrorIs(t, gotErr, ErrShuttingDown)
}

func waitOrTimeout(t *testing.T, wg *sync.WaitGroup) {
	t.Helper()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for callbacks")
	}
}
