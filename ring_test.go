package console

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRingWraparound(t *testing.T) {
	// Push enough committed lines through the device that the monotonic
	// indices lap the physical ring several times; content must survive
	// the slot reuse intact.
	c, _ := newTestConsole()
	buf := make([]byte, 64)

	for i := 0; i < 50; i++ {
		line := strings.Repeat(string(rune('a'+i%26)), 10)
		typeString(c, line+"\n")

		n, err := c.Read(buf)
		require.NoError(t, err)
		assert.Equal(t, line+"\n", string(buf[:n]))
		checkState(t, c)
	}

	c.mu.Lock()
	assert.Greater(t, c.ring.r, uint(RingSize), "indices stay monotonic past the ring size")
	assert.Equal(t, c.ring.r, c.ring.w)
	c.mu.Unlock()
}

func TestRingShift(t *testing.T) {
	t.Run("shiftRight opens a hole", func(t *testing.T) {
		var l lineRing
		for i, b := range []byte("abc") {
			l.set(uint(i), b)
		}
		l.e = 3

		l.shiftRight(1)
		l.set(1, 'X')
		l.e++

		assert.Equal(t, []byte("aXbc"), lineAt(&l, 0, 4))
	})

	t.Run("shiftLeft closes a gap", func(t *testing.T) {
		var l lineRing
		for i, b := range []byte("abcde") {
			l.set(uint(i), b)
		}
		l.e = 5

		l.shiftLeft(3, 2) // close over "bc"
		l.e -= 2

		assert.Equal(t, []byte("ade"), lineAt(&l, 0, 3))
	})

	t.Run("slots wrap modulo capacity", func(t *testing.T) {
		var l lineRing
		l.set(RingSize+5, 'z')
		assert.Equal(t, byte('z'), l.at(5))
	})
}

func lineAt(l *lineRing, start, n uint) []byte {
	out := make([]byte, 0, n)
	for i := start; i < start+n; i++ {
		out = append(out, l.at(i))
	}
	return out
}

func TestLineCopy(t *testing.T) {
	var l lineRing
	for i, b := range []byte("xyz") {
		l.set(uint(i), b)
	}
	l.w, l.c, l.e = 0, 3, 3

	got := l.line()
	assert.Equal(t, "xyz", string(got))

	got[0] = '!'
	assert.Equal(t, byte('x'), l.at(0), "line returns a copy")
}
