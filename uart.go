package console

import "io"

// Serial is the byte sink mirroring everything the device draws. The real
// machine behind it is a UART; tests and hosts usually hand in a buffer or
// a pipe.
type Serial interface {
	Put(b byte)
}

// SerialFunc adapts a plain function to the Serial interface.
type SerialFunc func(byte)

// Put implements Serial.
func (f SerialFunc) Put(b byte) { f(b) }

// writerSerial forwards bytes to an io.Writer, dropping write errors: the
// device has no error path back from an interrupt handler, so a broken sink
// degrades to silence rather than corrupting the edit state.
type writerSerial struct {
	w io.Writer
}

// WriterSerial wraps an io.Writer as a Serial sink.
func WriterSerial(w io.Writer) Serial {
	return writerSerial{w: w}
}

func (s writerSerial) Put(b byte) {
	var buf [1]byte
	buf[0] = b
	s.w.Write(buf[:])
}

// nullSerial discards everything. Used when no sink is configured.
type nullSerial struct{}

func (nullSerial) Put(byte) {}
