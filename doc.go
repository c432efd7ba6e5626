// Package console implements an interactive line-editing console device on
// top of an emulated CGA text surface and an injected keyboard source.
//
// The device buffers keystrokes in a 128-byte ring and delivers bytes to
// readers only once a line is committed with Enter or Ctrl-D. While a line is
// uncommitted it can be edited in place: insertion at the cursor, word-wise
// motion, kill-line, a single-step undo, a highlighted selection with a
// clipboard, and tab completion against a fixed command list.
//
// Everything the device owns — ring, screen cells, hardware cursor, undo,
// selection, clipboard — is guarded by one lock. The keyboard side runs
// through Interrupt, the process side through ReadContext and Write, and
// every editing command leaves the ring, the screen mirror and the side
// state consistent before the lock is released.
//
// The core has no real-terminal dependency; hosts that project the surface
// onto an actual terminal live under cmd/.
package console
