package build

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jrick/logrotate/rotator"
)

// FileLoggerConfig holds the knobs for rotating the on-disk probe log.
type FileLoggerConfig struct {
	MaxLogFileSize int `long:"maxlogfilesize" description:"Maximum log file size in MB"`
	MaxLogFiles    int `long:"maxlogfiles" description:"Maximum number of rotated log files to keep"`
}

// DefaultFileLoggerConfig returns sane rotation defaults.
func DefaultFileLoggerConfig() *FileLoggerConfig {
	return &FileLoggerConfig{
		MaxLogFileSize: 10,
		MaxLogFiles:    3,
	}
}

// RotatingLogWriter wraps a jrick/logrotate rotator so it can be used as an
// io.Writer log backend, mirroring lnd's file-rotation setup.
type RotatingLogWriter struct {
	pipe    *io.PipeWriter
	rotator *rotator.Rotator
}

// NewRotatingLogWriter creates a new file rotating log writer. InitLogRotator
// must be called before it is used.
func NewRotatingLogWriter() *RotatingLogWriter {
	return &RotatingLogWriter{}
}

// InitLogRotator initializes the log file rotator to write logs to logFile,
// creating roll files gzip-compressed in the same directory.
func (r *RotatingLogWriter) InitLogRotator(cfg *FileLoggerConfig, logFile string) error {
	logDir, _ := filepath.Split(logFile)
	if err := os.MkdirAll(logDir, 0700); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	var err error
	r.rotator, err = rotator.New(
		logFile, int64(cfg.MaxLogFileSize*1024), false, cfg.MaxLogFiles,
	)
	if err != nil {
		return fmt.Errorf("failed to create file rotator: %w", err)
	}

	r.rotator.SetCompressor(gzip.NewWriter(nil), ".gz")

	pr, pw := io.Pipe()
	go func() {
		if err := r.rotator.Run(pr); err != nil {
			_, _ = fmt.Fprintf(os.Stderr,
				"failed to run file rotator: %v\n", err)
		}
	}()
	r.pipe = pw

	return nil
}

// Write writes b to the log rotator, if one has been initialized.
func (r *RotatingLogWriter) Write(b []byte) (int, error) {
	if r.rotator != nil {
		return r.rotator.Write(b)
	}

	return len(b), nil
}

// Close closes the underlying log rotator, if any.
func (r *RotatingLogWriter) Close() error {
	if r.rotator != nil {
		return r.rotator.Close()
	}

	return nil
}
