package console

import (
	"context"
	"errors"
	"io"
)

// ErrKilled is returned by ReadContext when the caller's context is
// cancelled while waiting for input. The read index does not advance.
var ErrKilled = errors.New("console: read cancelled")

// Read blocks until at least one committed byte is available and returns
// bytes up to and including a newline, up to len(p), or up to an
// end-of-stream marker. A read that opens on the marker alone returns
// (0, io.EOF); reads after that block again until more input is committed.
func (c *Console) Read(p []byte) (int, error) {
	return c.ReadContext(context.Background(), p)
}

// ReadContext is Read with a cancellation point. A reader sleeping for
// input wakes promptly when ctx is cancelled and returns ErrKilled.
func (c *Console) ReadContext(ctx context.Context, p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// A cancelled context has to wake the condition wait below.
	stop := context.AfterFunc(ctx, func() {
		c.mu.Lock()
		c.readable.Broadcast()
		c.mu.Unlock()
	})
	defer stop()

	n := 0
	for n < len(p) {
		for c.ring.r == c.ring.w {
			if ctx.Err() != nil {
				return 0, ErrKilled
			}
			c.readable.Wait()
		}

		b := c.ring.at(c.ring.r)
		c.ring.r++

		if b == eofMark {
			if n > 0 {
				// Hold the marker back so the next call returns a
				// zero-byte result.
				c.ring.r--
			}
			break
		}

		p[n] = b
		n++
		if b == '\n' {
			break
		}
	}

	if n == 0 {
		return 0, io.EOF
	}
	return n, nil
}

// Write emits every byte through both sinks under the device lock and
// reports full success; the sinks have no failure path.
func (c *Console) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, b := range p {
		c.emit(int(b))
	}
	return len(p), nil
}
