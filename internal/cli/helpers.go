package cli

import (
	"io"
	"log/slog"

	"github.com/kje7713-dev/Grappling-Chainz/internal/logging"
)

// createLogger configures the application logger.
// In debug mode it writes to Stderr, separate from the stdout flow UI.
func createLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}

// InterruptibleReader wraps an io.Reader (like os.Stdin) and checks a
// cancellation channel around each blocking read. On cancellation it
// reports io.EOF, so the interactive loop winds down gracefully and
// the session summary still prints.
type InterruptibleReader struct {
	base   io.Reader
	cancel <-chan struct{}
}

// NewInterruptibleReader wraps base with the given cancellation channel.
func NewInterruptibleReader(base io.Reader, cancel <-chan struct{}) *InterruptibleReader {
	return &InterruptibleReader{base: base, cancel: cancel}
}

func (r *InterruptibleReader) Read(p []byte) (n int, err error) {
	select {
	case <-r.cancel:
		return 0, io.EOF
	default:
	}

	n, err = r.base.Read(p)

	select {
	case <-r.cancel:
		return 0, io.EOF
	default:
	}
	return n, err
}
