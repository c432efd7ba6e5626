// console-tty hosts the console device on a real terminal. Raw-mode stdin
// feeds the keyboard interrupt path, the CGA surface is mirrored to the
// terminal as ANSI output, and a reader loop plays the part of a shell by
// echoing every committed line back through the device.
//
// Ctrl-Q leaves the host. Set CONSOLE_SERIAL to a file path to capture the
// serial mirror.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"console"
)

const keyCtrlQ = 0x11

func main() {
	fd := int(os.Stdin.Fd())
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		fmt.Fprintln(os.Stderr, "console-tty: stdin is not a terminal")
		os.Exit(1)
	}
	if ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ); err == nil {
		if int(ws.Col) < console.Columns || int(ws.Row) < console.Rows {
			fmt.Fprintf(os.Stderr, "console-tty: terminal is %dx%d, need at least %dx%d\n",
				ws.Col, ws.Row, console.Columns, console.Rows)
			os.Exit(1)
		}
	}

	prev, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "console-tty: raw mode: %v\n", err)
		os.Exit(1)
	}
	defer term.Restore(fd, prev)

	serial := io.Discard
	if path := os.Getenv("CONSOLE_SERIAL"); path != "" {
		if f, err := os.Create(path); err == nil {
			defer f.Close()
			serial = f
		}
	}

	dev := console.New(console.WithSerial(console.WriterSerial(serial))).Install()
	dev.Write([]byte("$ "))

	// Shell stand-in: consume committed lines, echo them back.
	go func() {
		buf := make([]byte, 2*console.RingSize)
		for {
			n, err := dev.Read(buf)
			if err == io.EOF {
				dev.Write([]byte("eof\n$ "))
				continue
			}
			if err != nil {
				return
			}
			dev.Write(append(append([]byte("-> "), buf[:n]...), '$', ' '))
		}
	}()

	out := bufio.NewWriter(os.Stdout)
	out.WriteString("\x1b[2J")

	var shown []uint16
	paint := func() {
		cells, cursor := dev.Snapshot()
		if !changed(shown, cells) {
			placeCursor(out, cursor)
			out.Flush()
			return
		}
		shown = cells

		out.WriteString("\x1b[H")
		for y := 0; y < console.Rows; y++ {
			inverse := false
			for x := 0; x < console.Columns; x++ {
				cell := cells[y*console.Columns+x]
				if inv := cell>>8 == console.AttrInverse; inv != inverse {
					if inv {
						out.WriteString("\x1b[7m")
					} else {
						out.WriteString("\x1b[27m")
					}
					inverse = inv
				}
				out.WriteRune(printable(byte(cell)))
			}
			if inverse {
				out.WriteString("\x1b[27m")
			}
			if y < console.Rows-1 {
				out.WriteString("\r\n")
			}
		}
		placeCursor(out, cursor)
		out.Flush()
	}
	paint()

	in := bufio.NewReader(os.Stdin)
	for {
		k, ok := readKey(in)
		if !ok || k == keyCtrlQ {
			break
		}
		dev.Interrupt(console.SliceSource(k))
		paint()
	}

	out.WriteString("\x1b[2J\x1b[H")
	out.Flush()
}

// readKey decodes one keystroke, folding the CSI arrow sequences into the
// device's sentinel codes.
func readKey(in *bufio.Reader) (int, bool) {
	b, err := in.ReadByte()
	if err != nil {
		return 0, false
	}
	if b != 0x1b {
		return int(b), true
	}

	b2, err := in.ReadByte()
	if err != nil || b2 != '[' {
		return int(b), true
	}
	b3, err := in.ReadByte()
	if err != nil {
		return int(b), true
	}
	switch b3 {
	case 'D':
		return console.KeyLeft, true
	case 'C':
		return console.KeyRight, true
	}
	// Swallow unknown sequences rather than typing garbage.
	return 0, true
}

// printable maps a cell glyph to something the host terminal renders one
// column wide.
func printable(b byte) rune {
	r := rune(b)
	if r < 0x20 || runewidth.RuneWidth(r) != 1 {
		return ' '
	}
	return r
}

func placeCursor(out *bufio.Writer, cursor int) {
	fmt.Fprintf(out, "\x1b[%d;%dH", cursor/console.Columns+1, cursor%console.Columns+1)
}

func changed(a, b []uint16) bool {
	if len(a) != len(b) {
		return true
	}
	for i := range a {
		if a[i] != b[i] {
			return true
		}
	}
	return false
}
