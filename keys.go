package console

// Control keycodes understood by the dispatcher. These are plain byte values.
// KeyLeft and KeyRight are sentinel codes in the upper byte range (0xe4,
// 0xe5) so a keyboard decoder can report arrow keys distinctly; the
// dispatcher always treats those two values as arrows, never as characters.
const (
	KeyCtrlA = 0x01 // backward-word
	KeyCtrlC = 0x03 // copy selection
	KeyCtrlD = 0x04 // forward-word, or EOF on an empty line
	KeyCtrlH = 0x08 // backspace
	KeyTab   = 0x09
	KeyCtrlP = 0x10 // process dump (deferred)
	KeyCtrlS = 0x13 // toggle selection
	KeyCtrlU = 0x15 // kill line
	KeyCtrlV = 0x16 // paste
	KeyCtrlZ = 0x1a // undo
	KeyDel   = 0x7f // backspace, alternate encoding

	KeyLeft  = 0xe4
	KeyRight = 0xe5
)

// eofMark is the byte committed into the ring to signal end-of-stream.
// It shares its value with KeyCtrlD.
const eofMark = 0x04

// backspace is the internal emit code that erases one cell on both sinks.
// It sits above the byte range so it can never collide with buffered data.
const backspace = 0x100

// InputSource yields one keystroke per call, or a negative value when no
// input is pending. It is the polymorphism boundary between the device and
// whatever decodes the keyboard; Interrupt drains it until it runs dry.
type InputSource func() int

// SliceSource returns an InputSource that replays keys in order and then
// reports exhaustion. Useful for tests and scripted input.
func SliceSource(keys ...int) InputSource {
	i := 0
	return func() int {
		if i >= len(keys) {
			return -1
		}
		k := keys[i]
		i++
		return k
	}
}

func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\v'
}
