package bitcoind

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunBitcoinCLICapturesOutput(t *testing.T) {
	t.Parallel()

	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	output, exitStatus, err := runBitcoinCLI(
		context.Background(),
		[]string{"sh", "-c", "echo hello"},
	)
	require.NoError(t, err)
	require.Equal(t, 0, exitStatus)
	require.Equal(t, "hello\n", string(output))
}

func TestRunBitcoinCLIGrowsBufferPastInitialSize(t *testing.T) {
	t.Parallel()

	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	// Force output well past initialOutputBufSize (100 bytes) to exercise
	// the doubling growth path.
	script := "yes x | head -c 500"
	output, exitStatus, err := runBitcoinCLI(
		context.Background(), []string{"sh", "-c", script},
	)
	require.NoError(t, err)
	require.Equal(t, 0, exitStatus)
	require.Len(t, output, 500)
}

func TestRunBitcoinCLINonZeroExit(t *testing.T) {
	t.Parallel()

	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	output, exitStatus, err := runBitcoinCLI(
		context.Background(),
		[]string{"sh", "-c", "echo failed >&2; exit 3"},
	)
	require.NoError(t, err)
	require.Equal(t, 3, exitStatus)
	require.True(t, strings.Contains(string(output), "failed"))
}

func TestRunBitcoinCLIMissingBinary(t *testing.T) {
	t.Parallel()

	_, _, err := runBitcoinCLI(
		context.Background(), []string{"definitely-not-a-real-binary-xyz"},
	)
	require.Error(t, err)
}

func TestRunBitcoinCLIEmptyArgs(t *testing.T) {
	t.Parallel()

	_, _, err := runBitcoinCLI(context.Background(), nil)
	require.Error(t, err)
}

func TestExitStatusFromWaitErrNilIsZero(t *testing.T) {
	t.Parallel()

	status, err := exitStatusFromWaitErr([]string{"cmd"}, nil)
	require.NoError(t, err)
	require.Equal(t, 0, status)
}

func TestExitStatusFromWaitErrNonExitError(t *testing.T) {
	t.Parallel()

	status, err := exitStatusFromWaitErr(
		[]string{"cmd"}, errors.New("some other failure"),
	)
	require.Error(t, err)
	require.Equal(t, -1, status)
}

func TestExitStatusFromWaitErrKilledBySignal(t *testing.T) {
	t.Parallel()

	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	cmd := exec.Command("sh", "-c", "kill -TERM $$; sleep 5")
	require.NoError(t, cmd.Start())

	waitErr := cmd.Wait()
	require.Error(t, waitErr)

	status, err := exitStatusFromWaitErr([]string{"sh"}, waitErr)
	require.Equal(t, -1, status)
	require.ErrorIs(t, err, ErrKilledBySignal)
}
