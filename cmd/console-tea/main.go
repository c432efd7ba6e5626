// console-tea hosts the console device in a bubbletea program. Key
// messages are folded into device keycodes and the view renders the cell
// grid with lipgloss styling: inverse video for highlighted cells and for
// the hardware cursor.
//
// Ctrl-Q leaves the host.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"console"
)

var (
	styleInverse = lipgloss.NewStyle().Reverse(true)
	styleCursor  = lipgloss.NewStyle().Underline(true).Reverse(true)
)

// refreshMsg asks for a repaint after the reader loop wrote to the device.
type refreshMsg struct{}

type model struct {
	dev *console.Console
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlQ {
			return m, tea.Quit
		}
		for _, k := range keycodes(msg) {
			m.dev.Interrupt(console.SliceSource(k))
		}
	case refreshMsg:
	}
	return m, nil
}

func (m model) View() string {
	cells, cursor := m.dev.Snapshot()

	var b strings.Builder
	for y := 0; y < console.Rows; y++ {
		for x := 0; x < console.Columns; x++ {
			pos := y*console.Columns + x
			cell := cells[pos]
			glyph := rune(byte(cell))
			if glyph < 0x20 {
				glyph = ' '
			}
			switch {
			case pos == cursor:
				b.WriteString(styleCursor.Render(string(glyph)))
			case cell>>8 == console.AttrInverse:
				b.WriteString(styleInverse.Render(string(glyph)))
			default:
				b.WriteRune(glyph)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// keycodes maps a bubbletea key message to device keycodes. Rune messages
// can carry several characters (paste); each byte-sized rune feeds through.
func keycodes(msg tea.KeyMsg) []int {
	switch msg.Type {
	case tea.KeyLeft:
		return []int{console.KeyLeft}
	case tea.KeyRight:
		return []int{console.KeyRight}
	case tea.KeyEnter:
		return []int{'\n'}
	case tea.KeyTab:
		return []int{console.KeyTab}
	case tea.KeyBackspace:
		return []int{console.KeyDel}
	case tea.KeyCtrlH:
		return []int{console.KeyCtrlH}
	case tea.KeySpace:
		return []int{' '}
	case tea.KeyCtrlA:
		return []int{console.KeyCtrlA}
	case tea.KeyCtrlC:
		return []int{console.KeyCtrlC}
	case tea.KeyCtrlD:
		return []int{console.KeyCtrlD}
	case tea.KeyCtrlP:
		return []int{console.KeyCtrlP}
	case tea.KeyCtrlS:
		return []int{console.KeyCtrlS}
	case tea.KeyCtrlU:
		return []int{console.KeyCtrlU}
	case tea.KeyCtrlV:
		return []int{console.KeyCtrlV}
	case tea.KeyCtrlZ:
		return []int{console.KeyCtrlZ}
	case tea.KeyRunes:
		keys := make([]int, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			if r >= 0x20 && r <= 0xff {
				keys = append(keys, int(r))
			}
		}
		return keys
	}
	return nil
}

func main() {
	dev := console.New().Install()
	dev.Write([]byte("$ "))

	p := tea.NewProgram(model{dev: dev}, tea.WithAltScreen())

	// Shell stand-in: echo committed lines back through the device.
	go func() {
		buf := make([]byte, 2*console.RingSize)
		for {
			n, err := dev.Read(buf)
			if err == io.EOF {
				dev.Write([]byte("eof\n$ "))
				p.Send(refreshMsg{})
				continue
			}
			if err != nil {
				return
			}
			dev.Write(append(append([]byte("-> "), buf[:n]...), '$', ' '))
			p.Send(refreshMsg{})
		}
	}()

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "console-tea: %v\n", err)
		os.Exit(1)
	}
}
