package console

import "strings"

// DefaultCommands is the completion dictionary: the userland program set
// agreed with the tools this console fronts. Listings print in this order.
var DefaultCommands = []string{
	"cat", "echo", "forktest", "grep", "init", "kill", "ln", "ls",
	"mkdir", "rm", "sh", "stressfs", "usertests", "wc", "zombie",
}

// complete handles Tab. Completion applies to the first word only: once
// the line contains a space, Tab is a no-op. A unique match inserts its
// missing suffix. Several matches first extend to their longest common
// prefix; a second consecutive Tab lists them and reprompts, re-emitting
// the in-progress line with the cursor restored to its logical position.
func (c *Console) complete() {
	line := c.ring.line()
	for _, b := range line {
		if b == ' ' {
			c.lastTab = false
			return
		}
	}
	prefix := string(line)

	var matches []string
	for _, cmd := range c.commands {
		if strings.HasPrefix(cmd, prefix) {
			matches = append(matches, cmd)
		}
	}

	switch {
	case len(matches) == 0:
		c.lastTab = false

	case len(matches) == 1:
		for _, b := range []byte(matches[0][len(prefix):]) {
			c.insert(b)
		}
		c.lastTab = false

	case !c.lastTab:
		lcp := commonPrefix(matches)
		for _, b := range []byte(lcp[len(prefix):]) {
			c.insert(b)
		}
		c.lastTab = true

	default:
		// Second Tab in a row: list the candidates and reprompt with the
		// line redrawn. The listing goes to the sinks only; the ring is
		// untouched.
		c.emit('\n')
		for i, m := range matches {
			if i > 0 {
				c.emit(' ')
				c.emit(' ')
			}
			for _, b := range []byte(m) {
				c.emit(int(b))
			}
		}
		c.emit('\n')
		c.emit('$')
		c.emit(' ')
		for i := c.ring.w; i < c.ring.e; i++ {
			c.emit(int(c.ring.at(i)))
		}
		c.surface.SetCursor(c.surface.Cursor() - int(c.ring.e-c.ring.c))
		c.undo.reset()
		c.lastTab = false
	}
}

// commonPrefix returns the longest common prefix of a non-empty list.
func commonPrefix(words []string) string {
	p := words[0]
	for _, w := range words[1:] {
		for !strings.HasPrefix(w, p) {
			p = p[:len(p)-1]
		}
	}
	return p
}
