package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
)

// ErrInputCancelled is returned when a menu answer is abandoned because the session context ended.
var ErrInputCancelled = errors.New("input canceled")

// NonBlockingReader feeds menu answers to a Prompter. Reads run off the menu
// goroutine so Ctrl-C can end a session that is waiting on stdin.
type NonBlockingReader struct {
	buf *bufio.Reader
	mu  sync.Mutex
}

type readResult struct {
	err  error
	text string
}

// NewNonBlockingReader wraps in. It panics on a nil reader.
func NewNonBlockingReader(in io.Reader) *NonBlockingReader {
	if in == nil {
		panic("reader cannot be nil")
	}
	return &NonBlockingReader{buf: bufio.NewReader(in)}
}

// ReadString reads through delim, or gives up with ErrInputCancelled once ctx is done.
func (r *NonBlockingReader) ReadString(ctx context.Context, delim byte) (string, error) {
	if ctx.Err() != nil {
		return "", ErrInputCancelled
	}

	done := make(chan readResult, 1)
	go func() {
		// mu keeps a read left behind by a cancelled prompt from interleaving with the next one.
		r.mu.Lock()
		defer r.mu.Unlock()

		text, err := r.buf.ReadString(delim)
		done <- readResult{text: text, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ErrInputCancelled
	case res := <-done:
		return res.text, res.err
	}
}

// ReadLine returns one trimmed answer. Piped input often lacks a trailing newline,
// so the last answer is delivered before io.EOF.
func (r *NonBlockingReader) ReadLine(ctx context.Context) (string, error) {
	text, err := r.ReadString(ctx, '\n')
	switch {
	case err == nil:
		return strings.TrimSpace(text), nil
	case errors.Is(err, io.EOF) && text != "":
		return strings.TrimSpace(text), nil
	default:
		return "", err
	}
}
