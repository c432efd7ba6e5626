package console

// Interrupt drains the input source under the device lock, routing each
// keystroke to its handler. It is the only writer of the edit state and it
// never blocks; readers are woken when a line commits. Work that needs
// locks other than the device lock (the Ctrl-P process dump) is noted under
// the lock and run after release.
func (c *Console) Interrupt(getc InputSource) {
	dump := false

	c.mu.Lock()
	for {
		k := getc()
		if k < 0 {
			break
		}

		switch k {
		case KeyCtrlS:
			c.toggleSelect()

		case KeyCtrlC:
			c.copySelection()

		case KeyCtrlV:
			c.paste()

		case KeyCtrlA:
			c.deselect()
			c.backwardWord()

		case KeyCtrlD:
			c.deselect()
			if c.ring.e == c.ring.w {
				c.commitEOF()
			} else {
				c.forwardWord()
			}

		case KeyCtrlP:
			c.deselect()
			// procdump takes other locks; run it after release.
			dump = true

		case KeyCtrlU:
			c.deselect()
			c.killLine()

		case KeyCtrlH, KeyDel:
			c.deselect()
			c.rubout()

		case KeyCtrlZ:
			c.deselect()
			c.undoLast()

		case KeyTab:
			c.deselect()
			c.complete()

		case KeyLeft:
			c.deselect()
			if c.ring.c > c.ring.w {
				c.ring.c--
				c.surface.SetCursor(c.surface.Cursor() - 1)
			}

		case KeyRight:
			c.deselect()
			if c.ring.c < c.ring.e {
				c.ring.c++
				c.surface.SetCursor(c.surface.Cursor() + 1)
			}

		default:
			if k == 0 {
				continue
			}
			c.deselect()
			if k == '\r' {
				k = '\n'
			}
			if k == '\n' || c.ring.full() {
				// The terminator commits; so does any byte landing on a
				// full ring, which is itself discarded.
				if k == '\n' {
					c.emit('\n')
				}
				c.commitLine()
			} else {
				c.insert(byte(k))
			}
		}

		if k != KeyTab {
			c.lastTab = false
		}
	}
	c.mu.Unlock()

	if dump && c.procDump != nil {
		c.procDump()
	}
}

// insert places one byte at the cursor, shifting the tail right, and
// redraws from the new character to the end of the line. The hardware
// cursor is pulled back afterwards so it stays over the logical cursor.
func (c *Console) insert(ch byte) {
	if c.ring.full() {
		return
	}
	c.undo.push(undoInsert, ch, c.ring.c)

	c.ring.shiftRight(c.ring.c)
	c.ring.set(c.ring.c, ch)
	c.ring.e++
	c.ring.c++

	for i := c.ring.c - 1; i < c.ring.e; i++ {
		c.emit(int(c.ring.at(i)))
	}
	c.surface.SetCursor(c.surface.Cursor() - int(c.ring.e-c.ring.c))
}

// rubout deletes the byte left of the cursor, logs it for undo, and
// redraws the shortened tail with a trailing space over the vacated cell.
func (c *Console) rubout() {
	if c.ring.c <= c.ring.w {
		return
	}
	ch := c.ring.at(c.ring.c - 1)
	c.undo.push(undoDelete, ch, c.ring.c-1)

	c.ring.shiftLeft(c.ring.c, 1)
	c.ring.e--
	c.ring.c--

	c.surface.SetCursor(c.surface.Cursor() - 1)
	for i := c.ring.c; i < c.ring.e; i++ {
		c.emit(int(c.ring.at(i)))
	}
	c.emit(' ')
	c.surface.SetCursor(c.surface.Cursor() - int(c.ring.e-c.ring.c+1))
}

// backwardWord moves the cursor left over whitespace, then to the start of
// the word it lands in, flooring at the prompt point.
func (c *Console) backwardWord() {
	if c.ring.c <= c.ring.w {
		return
	}
	old := c.ring.c
	i := c.ring.c - 1
	for i > c.ring.w && isWhitespace(c.ring.at(i)) {
		i--
	}
	for i > c.ring.w && !isWhitespace(c.ring.at(i-1)) {
		i--
	}
	c.ring.c = i
	c.surface.SetCursor(c.surface.Cursor() - int(old-c.ring.c))
}

// forwardWord moves the cursor right over the rest of the current word and
// the whitespace after it. The cursor only moves when the landing index is
// strictly inside the line.
func (c *Console) forwardWord() {
	if c.ring.c >= c.ring.e {
		return
	}
	old := c.ring.c
	i := c.ring.c
	for i < c.ring.e && !isWhitespace(c.ring.at(i)) {
		i++
	}
	for i < c.ring.e && isWhitespace(c.ring.at(i)) {
		i++
	}
	if i < c.ring.e {
		c.surface.SetCursor(c.surface.Cursor() + int(i-old))
		c.ring.c = i
	}
}

// killLine erases the whole uncommitted line, backspacing from the end,
// and forgets the undo history for it.
func (c *Console) killLine() {
	if c.ring.e == c.ring.w {
		return
	}
	c.surface.SetCursor(c.surface.Cursor() + int(c.ring.e-c.ring.c))
	c.ring.c = c.ring.e

	for c.ring.e != c.ring.w {
		c.ring.e--
		c.ring.c--
		c.emit(backspace)
	}
	c.ring.c = c.ring.w
	c.undo.reset()
}

// commitLine appends the newline terminator when a slot remains and makes
// the line visible to readers. The ring can legitimately be at capacity
// here, in which case the line commits unterminated rather than growing
// past the bound.
func (c *Console) commitLine() {
	if !c.ring.full() {
		c.ring.set(c.ring.e, '\n')
		c.ring.e++
	}
	c.ring.w = c.ring.e
	c.ring.c = c.ring.w
	c.undo.reset()
	c.readable.Broadcast()
}

// commitEOF appends the end-of-stream marker on an empty line and commits
// it, so the next read returns zero bytes.
func (c *Console) commitEOF() {
	if !c.ring.full() {
		c.ring.set(c.ring.e, eofMark)
		c.ring.e++
	}
	c.ring.w = c.ring.e
	c.ring.c = c.ring.w
	c.undo.reset()
	c.readable.Broadcast()
}

// undoLast reverses the most recent logged edit. Entries whose position no
// longer falls inside the current line are discarded without effect.
func (c *Console) undoLast() {
	op, ok := c.undo.pop()
	if !ok {
		return
	}

	switch op.kind {
	case undoInsert:
		// Remove the inserted byte at its original position.
		if op.pos < c.ring.w || op.pos >= c.ring.e {
			return
		}
		c.ring.shiftLeft(op.pos+1, 1)
		c.ring.e--

		c.surface.SetCursor(c.surface.Cursor() - int(int64(c.ring.c)-int64(op.pos)))
		for i := op.pos; i < c.ring.e; i++ {
			c.emit(int(c.ring.at(i)))
		}
		c.emit(' ')
		c.surface.SetCursor(c.surface.Cursor() - int(c.ring.e-op.pos+1))
		c.ring.c = op.pos

	case undoDelete:
		// Reinsert the deleted byte at its original position.
		if op.pos < c.ring.w || op.pos > c.ring.e || c.ring.full() {
			return
		}
		c.ring.shiftRight(op.pos)
		c.ring.set(op.pos, op.ch)
		c.ring.e++

		c.surface.SetCursor(c.surface.Cursor() - int(int64(c.ring.c)-int64(op.pos)))
		for i := op.pos; i < c.ring.e; i++ {
			c.emit(int(c.ring.at(i)))
		}
		c.surface.SetCursor(c.surface.Cursor() - int(c.ring.e-op.pos-1))
		c.ring.c = op.pos + 1
	}
}
