// console-tcell projects the console device onto a tcell screen: the 80×25
// cell grid renders one-to-one with its attributes, tcell key events are
// folded into the device's keycodes, and -osc mirrors every Ctrl-C copy
// into the system clipboard.
//
// Ctrl-Q leaves the host.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"

	"console"
)

func main() {
	osClip := flag.Bool("osc", false, "mirror device copies into the OS clipboard")
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "console-tcell: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "console-tcell: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	dev := console.New().Install()
	dev.Write([]byte("$ "))

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

	paint(screen, dev)
	for {
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()

		case *tcell.EventKey:
			k, quit := keycode(ev)
			if quit {
				return
			}
			if k < 0 {
				continue
			}
			dev.Interrupt(console.SliceSource(k))
			if *osClip && k == console.KeyCtrlC {
				if text := dev.Clipboard(); len(text) > 0 {
					clipboard.WriteAll(string(text))
				}
			}
			paint(screen, dev)
		}
	}
}

// keycode maps a tcell key event to a device keycode, or -1 to ignore.
// The second result requests host shutdown.
func keycode(ev *tcell.EventKey) (int, bool) {
	switch ev.Key() {
	case tcell.KeyCtrlQ:
		return -1, true
	case tcell.KeyLeft:
		return console.KeyLeft, false
	case tcell.KeyRight:
		return console.KeyRight, false
	case tcell.KeyEnter:
		return '\n', false
	case tcell.KeyTab:
		return console.KeyTab, false
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return console.KeyDel, false
	case tcell.KeyCtrlA:
		return console.KeyCtrlA, false
	case tcell.KeyCtrlC:
		return console.KeyCtrlC, false
	case tcell.KeyCtrlD:
		return console.KeyCtrlD, false
	case tcell.KeyCtrlP:
		return console.KeyCtrlP, false
	case tcell.KeyCtrlS:
		return console.KeyCtrlS, false
	case tcell.KeyCtrlU:
		return console.KeyCtrlU, false
	case tcell.KeyCtrlV:
		return console.KeyCtrlV, false
	case tcell.KeyCtrlZ:
		return console.KeyCtrlZ, false
	case tcell.KeyRune:
		r := ev.Rune()
		if r < 0x20 || r > 0xff {
			return -1, false
		}
		return int(r), false
	}
	return -1, false
}

var (
	styleDefault = tcell.StyleDefault
	styleInverse = tcell.StyleDefault.Reverse(true)
)

func paint(screen tcell.Screen, dev *console.Console) {
	cells, cursor := dev.Snapshot()
	for y := 0; y < console.Rows; y++ {
		for x := 0; x < console.Columns; x++ {
			cell := cells[y*console.Columns+x]
			style := styleDefault
			if cell>>8 == console.AttrInverse {
				style = styleInverse
			}
			glyph := rune(byte(cell))
			if glyph < 0x20 {
				glyph = ' '
			}
			screen.SetContent(x, y, glyph, nil, style)
		}
	}
	screen.ShowCursor(cursor%console.Columns, cursor/console.Columns)
	screen.Show()
}
