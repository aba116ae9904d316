package bitcoind

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
)

// initialOutputBufSize matches output_init's starting buffer size of 100
// bytes; the buffer doubles in size (read_more) each time it fills before
// EOF.
const initialOutputBufSize = 100

// runFunc executes a bitcoin-cli invocation and returns its combined
// stdout/stderr output and exit status. It is a field on Client so tests can
// substitute a fake without touching the real toolchain.
type runFunc func(ctx context.Context, args []string) (output []byte, exitStatus int, err error)

// runBitcoinCLI spawns args[0] with args[1:], merging stderr into stdout the
// way pipecmdarr's shared fd does, and collects the output into a buffer
// that starts at initialOutputBufSize and doubles as needed, mirroring
// output_init/read_more.
func runBitcoinCLI(ctx context.Context, args []string) ([]byte, int, error) {
	if len(args) == 0 {
		return nil, -1, errors.New("bitcoind: empty command line")
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, -1, fmt.Errorf("stdout pipe: %w", err)
	}
	cmd.Stderr = cmd.Stdout

	if err := cmd.Start(); err != nil {
		return nil, -1, fmt.Errorf("%s exec failed: %w", args[0], err)
	}

	buf := make([]byte, initialOutputBufSize)
	total := 0
	var readErr error

	for {
		if total == len(buf) {
			grown := make([]byte, len(buf)*2)
			copy(grown, buf)
			buf = grown
		}

		n, err := stdout.Read(buf[total:])
		total += n
		if err != nil {
			if err != io.EOF {
				readErr = err
			}
			break
		}
	}

	waitErr := cmd.Wait()
	if readErr != nil {
		return nil, -1, fmt.Errorf("reading %s output: %w", args[0], readErr)
	}

	exitStatus, err := exitStatusFromWaitErr(args, waitErr)
	if err != nil {
		return nil, -1, err
	}

	return buf[:total], exitStatus, nil
}

// exitStatusFromWaitErr extracts a numeric exit status from cmd.Wait's
// error, mirroring bcli_finished's WIFEXITED/WTERMSIG/WEXITSTATUS handling.
// A process killed by a signal is reported as a fatal condition, since the
// original treats it as unconditionally fatal rather than a retryable
// non-zero exit.
func exitStatusFromWaitErr(args []string, waitErr error) (int, error) {
	if waitErr == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if !errors.As(waitErr, &exitErr) {
		return -1, fmt.Errorf("waiting for %v: %w", args, waitErr)
	}

	if !exitErr.Exited() {
		return -1, fmt.Errorf("%w: %v died: %v", ErrKilledBySignal, args,
			exitErr.Sys())
	}

	return exitErr.ExitCode(), nil
}
