package console

import (
	"sync"
	"sync/atomic"
)

// Console is the line-editing console device. One lock guards every piece of
// state: the ring, the screen surface and its cursor, undo, selection,
// clipboard and the tab bit. The keyboard interrupt path (Interrupt) and the
// process path (ReadContext, Write, Printf) both take it; readers waiting
// for a committed line sleep on the condition tied to the ring's read index.
type Console struct {
	mu       sync.Mutex
	readable *sync.Cond // signalled whenever a commit advances w (newline, EOF or full ring)

	surface *Surface
	serial  Serial

	ring    lineRing
	sel     selection
	clip    clipboard
	undo    undoLog
	lastTab bool // previous handled keystroke was Tab

	commands []string

	procDump func()
	haltFn   func()
	irqOff   func()

	// panicked latches after a fatal error, once the banner has printed.
	// locking drops to false earlier, as the panic starts, so Printf stops
	// taking a lock the failing code may still hold.
	panicked atomic.Bool
	locking  atomic.Bool
}

// Option configures a Console at construction time.
type Option func(*Console)

// WithSerial sets the serial byte sink mirrored alongside the screen.
func WithSerial(s Serial) Option {
	return func(c *Console) { c.serial = s }
}

// WithCommands replaces the tab-completion dictionary. Order is preserved:
// listings print in dictionary order.
func WithCommands(cmds []string) Option {
	return func(c *Console) { c.commands = cmds }
}

// WithProcDump installs the callback run for Ctrl-P. It executes after the
// device lock is released, because a process dump takes other locks.
func WithProcDump(f func()) Option {
	return func(c *Console) { c.procDump = f }
}

// WithHalt replaces the halt behaviour taken after a fatal error. The
// default blocks forever; tests substitute a recorder.
func WithHalt(f func()) Option {
	return func(c *Console) { c.haltFn = f }
}

// WithInterruptMask installs the hook that masks interrupts on the panic
// path. The default is a no-op.
func WithInterruptMask(f func()) Option {
	return func(c *Console) { c.irqOff = f }
}

// New constructs a console with an empty line, an empty clipboard, no
// selection and a cleared undo log. All state is long-lived; the device is
// never torn down.
func New(opts ...Option) *Console {
	c := &Console{
		serial:   nullSerial{},
		sel:      inactiveSelection(),
		commands: DefaultCommands,
		haltFn:   haltForever,
		irqOff:   func() {},
	}
	c.surface = newSurface(c.fatal)
	c.readable = sync.NewCond(&c.mu)
	c.locking.Store(true)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func haltForever() {
	select {}
}

// Surface returns the screen surface. Callers outside the device must not
// touch it directly; use Snapshot for a consistent view.
func (c *Console) Surface() *Surface {
	return c.surface
}

// Snapshot returns a copy of the screen cells and the hardware cursor,
// taken under the device lock. Hosts render frames from this.
func (c *Console) Snapshot() ([]uint16, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.surface.Cells(), c.surface.pos
}

// Line returns a copy of the current uncommitted line and the cursor offset
// within it.
func (c *Console) Line() ([]byte, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ring.line(), int(c.ring.c - c.ring.w)
}

// Clipboard returns a copy of the clipboard contents.
func (c *Console) Clipboard() []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]byte, c.clip.n)
	copy(out, c.clip.bytes())
	return out
}

// Panicked reports whether the device has taken a fatal error.
func (c *Console) Panicked() bool {
	return c.panicked.Load()
}

// emit writes one character to both sinks. Backspace reaches the serial
// line as "\b \b" so it erases a cell there too. After a fatal error the
// device refuses further output: interrupts are masked and the processor
// halts on first touch.
func (c *Console) emit(ch int) {
	if c.panicked.Load() {
		c.irqOff()
		c.haltFn()
		return
	}
	if ch == backspace {
		c.serial.Put('\b')
		c.serial.Put(' ')
		c.serial.Put('\b')
	} else {
		c.serial.Put(byte(ch))
	}
	c.surface.Put(ch)
}
