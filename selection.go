package console

// selection tracks the highlighted sub-range of the uncommitted line.
// Inactive is start == end == -1. After the first Ctrl-S only the anchor is
// known: selecting is set and end stays -1 until the closing Ctrl-S.
// start/end are logical ring indices stored as ints so -1 can mark absence.
type selection struct {
	selecting  bool
	start, end int
}

func inactiveSelection() selection {
	return selection{start: -1, end: -1}
}

// active reports whether a confirmed range exists.
func (s *selection) active() bool {
	return s.start != -1 && s.end != -1
}

// toggleSelect handles Ctrl-S. The first press anchors a selection at the
// cursor; the second closes it at the cursor, normalised so start < end.
// A zero-width range collapses back to inactive.
func (c *Console) toggleSelect() {
	if !c.sel.selecting {
		c.clearSelection()
		c.sel.selecting = true
		c.sel.start = int(c.ring.c)
		c.sel.end = -1
		return
	}

	c.sel.selecting = false
	c.sel.end = int(c.ring.c)
	if c.sel.start > c.sel.end {
		c.sel.start, c.sel.end = c.sel.end, c.sel.start
	}
	if c.sel.start == c.sel.end {
		c.sel.start = -1
		c.sel.end = -1
		return
	}
	c.highlight(c.sel.start, c.sel.end, true)
}

// highlight flips the attribute of the screen cells mirroring [start, end),
// preserving the glyphs. The line origin is derived from the hardware
// cursor, which sits over the logical cursor whenever the lock is held.
func (c *Console) highlight(start, end int, on bool) {
	if start < 0 || end <= start {
		return
	}
	if start < int(c.ring.w) {
		start = int(c.ring.w)
	}
	if end > int(c.ring.e) {
		end = int(c.ring.e)
	}
	if start >= end {
		return
	}

	origin := c.surface.Cursor() - int(c.ring.c-c.ring.w)
	attr := uint8(AttrDefault)
	if on {
		attr = AttrInverse
	}
	for i := start; i < end; i++ {
		c.surface.setAttr(origin+(i-int(c.ring.w)), attr)
	}
}

// clearSelection drops any selection, unhighlighting a confirmed range.
func (c *Console) clearSelection() {
	if c.sel.start != -1 {
		c.highlight(c.sel.start, c.sel.end, false)
		c.sel.start = -1
		c.sel.end = -1
	}
	c.sel.selecting = false
}

// deselect clears a confirmed selection before an unrelated edit. An
// anchored-but-open selection survives: cursor motion between the two
// Ctrl-S presses is how a range gets picked out.
func (c *Console) deselect() {
	if c.sel.active() {
		c.clearSelection()
	}
}

// copySelection handles Ctrl-C: the selected bytes go to the clipboard,
// capped at its capacity. Without an active selection the keystroke just
// clears selection artefacts and empties the clipboard.
func (c *Console) copySelection() {
	if !c.sel.active() {
		c.clearSelection()
		c.clip.n = 0
		return
	}

	s, e := c.sel.start, c.sel.end
	if s > e {
		s, e = e, s
	}
	if s < int(c.ring.w) {
		s = int(c.ring.w)
	}
	if e > int(c.ring.e) {
		e = int(c.ring.e)
	}
	n := e - s
	if n > ClipSize {
		n = ClipSize
	}
	for i := 0; i < n; i++ {
		c.clip.buf[i] = c.ring.at(uint(s + i))
	}
	c.clip.n = n
}

// paste handles Ctrl-V. An active selection is deleted first, then the
// clipboard bytes run through the ordinary insert path one at a time, so
// each lands at the cursor, is undo-logged, and stops cleanly when the
// ring fills. The clipboard itself is never modified.
func (c *Console) paste() {
	if c.clip.n > 0 {
		if c.sel.active() {
			c.deleteSelection()
		}
		for _, b := range c.clip.bytes() {
			c.insert(b)
		}
	}
	c.clearSelection()
}

// deleteSelection removes the selected bytes from the line, logging each
// for undo, and redraws from the line origin with spaces over the freed
// cells. The cursor lands on the start of the removed range.
func (c *Console) deleteSelection() {
	if !c.sel.active() {
		return
	}

	s, e := c.sel.start, c.sel.end
	if s > e {
		s, e = e, s
	}
	if s < int(c.ring.w) {
		s = int(c.ring.w)
	}
	if e > int(c.ring.e) {
		e = int(c.ring.e)
	}
	if s >= e {
		c.clearSelection()
		return
	}

	n := uint(e - s)
	oldEnd := c.ring.e

	for k := uint(0); k < n; k++ {
		c.undo.push(undoDelete, c.ring.at(uint(s)+k), uint(s)+k)
	}

	origin := c.surface.Cursor() - int(c.ring.c-c.ring.w)
	if origin < 0 {
		origin = 0
	}
	if origin >= CellCount {
		origin = CellCount - 1
	}

	c.ring.shiftLeft(uint(e), n)
	c.ring.e -= n
	c.ring.c = uint(s)

	c.surface.SetCursor(origin)
	for i := c.ring.w; i < c.ring.e; i++ {
		c.emit(int(c.ring.at(i)))
	}
	for i := c.ring.e; i < oldEnd; i++ {
		c.emit(' ')
	}
	c.surface.SetCursor(origin + int(c.ring.c-c.ring.w))

	c.clearSelection()
}
