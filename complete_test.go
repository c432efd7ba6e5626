package console

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletion(t *testing.T) {
	t.Run("unique match inserts suffix", func(t *testing.T) {
		c, _ := newTestConsole()
		typeString(c, "ca")
		feed(c, KeyTab)
		checkState(t, c)

		line, cur := c.Line()
		assert.Equal(t, "cat", string(line))
		assert.Equal(t, 3, cur)

		feed(c, '\n')
		buf := make([]byte, 16)
		n, err := c.Read(buf)
		require.NoError(t, err)
		assert.Equal(t, "cat\n", string(buf[:n]))
	})

	t.Run("no match is a no-op", func(t *testing.T) {
		c, _ := newTestConsole()
		typeString(c, "qqq")
		feed(c, KeyTab)
		checkState(t, c)

		line, _ := c.Line()
		assert.Equal(t, "qqq", string(line))
	})

	t.Run("second word is never completed", func(t *testing.T) {
		c, _ := newTestConsole()
		typeString(c, "ls ca")
		feed(c, KeyTab)

		line, _ := c.Line()
		assert.Equal(t, "ls ca", string(line))
	})

	t.Run("ambiguous match extends to common prefix", func(t *testing.T) {
		c, _ := newTestConsole()
		c.commands = []string{"foobar", "foobaz", "other"}
		typeString(c, "f")
		feed(c, KeyTab)
		checkState(t, c)

		line, _ := c.Line()
		assert.Equal(t, "fooba", string(line))

		c.mu.Lock()
		assert.True(t, c.lastTab)
		c.mu.Unlock()
	})

	t.Run("double tab lists matches and reprompts", func(t *testing.T) {
		serial := &bytes.Buffer{}
		c := New(WithSerial(WriterSerial(serial)), WithHalt(func() {}))
		typeString(c, "s")
		feed(c, KeyTab, KeyTab)
		checkState(t, c)

		assert.Contains(t, serial.String(), "\nsh  stressfs\n$ s")

		line, cur := c.Line()
		assert.Equal(t, "s", string(line), "ring untouched by the listing")
		assert.Equal(t, 1, cur)

		c.mu.Lock()
		assert.False(t, c.lastTab)
		assert.Equal(t, 0, c.undo.n, "listing clears the undo log")
		c.mu.Unlock()

		feed(c, '\n')
		buf := make([]byte, 8)
		n, err := c.Read(buf)
		require.NoError(t, err)
		assert.Equal(t, "s\n", string(buf[:n]))
	})

	t.Run("any other key rearms the listing gate", func(t *testing.T) {
		c, _ := newTestConsole()
		typeString(c, "s")
		feed(c, KeyTab, KeyLeft, KeyRight, KeyTab)

		c.mu.Lock()
		assert.True(t, c.lastTab, "broken tab run starts over at the prefix step")
		c.mu.Unlock()
	})

	t.Run("empty line completes over the whole dictionary", func(t *testing.T) {
		serial := &bytes.Buffer{}
		c := New(WithSerial(WriterSerial(serial)), WithHalt(func() {}))
		feed(c, KeyTab, KeyTab)
		checkState(t, c)

		for _, cmd := range DefaultCommands {
			assert.Contains(t, serial.String(), cmd)
		}
	})

	t.Run("custom dictionary via option", func(t *testing.T) {
		c := New(WithHalt(func() {}), WithCommands([]string{"deploy", "destroy"}))
		typeString(c, "de")
		feed(c, KeyTab)

		line, _ := c.Line()
		assert.Equal(t, "de", string(line), "common prefix is not longer")

		c.mu.Lock()
		assert.True(t, c.lastTab)
		c.mu.Unlock()
	})
}

func TestCommonPrefix(t *testing.T) {
	tests := []struct {
		words []string
		want  string
	}{
		{[]string{"sh", "stressfs"}, "s"},
		{[]string{"foobar", "foobaz"}, "fooba"},
		{[]string{"same", "same"}, "same"},
		{[]string{"a", "b"}, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, commonPrefix(tt.words))
	}
}
