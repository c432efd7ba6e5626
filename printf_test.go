package console

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintf(t *testing.T) {
	tests := []struct {
		name   string
		format string
		args   []any
		want   string
	}{
		{"plain", "hello", nil, "hello"},
		{"decimal", "n=%d", []any{42}, "n=42"},
		{"negative decimal", "%d", []any{-7}, "-7"},
		{"zero", "%d", []any{0}, "0"},
		{"hex", "%x", []any{255}, "ff"},
		{"pointer", "%p", []any{uintptr(0x80100000)}, "80100000"},
		{"string", "dev %s ready", []any{"console"}, "dev console ready"},
		{"bytes as string", "%s", []any{[]byte("raw")}, "raw"},
		{"escaped percent", "100%%", nil, "100%"},
		{"unknown verb prints literally", "%q!", []any{1}, "%q!"},
		{"missing string arg", "%s", nil, "(null)"},
		{"missing int arg", "%d", nil, "0"},
		{"trailing percent dropped", "x%", nil, "x"},
		{"mixed", "%s=%d (%x)", []any{"r", 12, 12}, "r=12 (c)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serial := &bytes.Buffer{}
			c := New(WithSerial(WriterSerial(serial)), WithHalt(func() {}))
			c.Printf(tt.format, tt.args...)
			assert.Equal(t, tt.want, serial.String())
		})
	}
}

func TestPrintfMirrorsToScreen(t *testing.T) {
	c, _ := newTestConsole()
	c.Printf("boot %d", 3)
	assert.Equal(t, "boot 3", c.surface.Row(0)[:6])
}

func TestPrintfIntWidths(t *testing.T) {
	serial := &bytes.Buffer{}
	c := New(WithSerial(WriterSerial(serial)), WithHalt(func() {}))

	c.Printf("%d %d %d", int64(1), uint32(2), byte(3))
	assert.Equal(t, "1 2 3", serial.String())
}
