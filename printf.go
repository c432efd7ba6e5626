package console

import "runtime"

// Printf prints a diagnostic message through both sinks. Only %d, %x, %p,
// %s and %% are understood; an unknown specifier prints the % and the
// following byte literally to draw attention. A missing argument prints as
// 0 or "(null)".
//
// Printf takes the device lock unless the device is panicking, in which
// case the lock may already be held by the code that died.
func (c *Console) Printf(format string, args ...any) {
	if c.locking.Load() {
		c.mu.Lock()
		defer c.mu.Unlock()
	}
	c.printf(format, args)
}

func (c *Console) printf(format string, args []any) {
	next := 0
	arg := func() any {
		if next >= len(args) {
			return nil
		}
		a := args[next]
		next++
		return a
	}

	for i := 0; i < len(format); i++ {
		ch := format[i]
		if ch != '%' {
			c.emit(int(ch))
			continue
		}
		i++
		if i >= len(format) {
			break
		}
		switch format[i] {
		case 'd':
			c.printInt(toInt(arg()), 10, true)
		case 'x', 'p':
			c.printInt(toInt(arg()), 16, false)
		case 's':
			s := toString(arg())
			for j := 0; j < len(s); j++ {
				c.emit(int(s[j]))
			}
		case '%':
			c.emit('%')
		default:
			c.emit('%')
			c.emit(int(format[i]))
		}
	}
}

// printInt prints an integer in the given base, least significant digit
// computed first into a small scratch buffer.
func (c *Console) printInt(v int64, base int64, sign bool) {
	const digits = "0123456789abcdef"
	var buf [20]byte

	neg := false
	u := uint64(v)
	if sign && v < 0 {
		neg = true
		u = uint64(-v)
	}

	i := 0
	for {
		buf[i] = digits[u%uint64(base)]
		i++
		u /= uint64(base)
		if u == 0 {
			break
		}
	}
	if neg {
		buf[i] = '-'
		i++
	}
	for i--; i >= 0; i-- {
		c.emit(int(buf[i]))
	}
}

func toInt(a any) int64 {
	switch v := a.(type) {
	case int:
		return int64(v)
	case int64:
		return v
	case uint:
		return int64(v)
	case uint64:
		return int64(v)
	case uintptr:
		return int64(v)
	case int32:
		return int64(v)
	case uint32:
		return int64(v)
	case byte:
		return int64(v)
	}
	return 0
}

func toString(a any) string {
	switch v := a.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	}
	return "(null)"
}

// Panic takes the device down: interrupts are masked, a banner and up to
// ten caller program counters are printed, the panicked flag latches and
// the processor halts. Output from other goroutines halts on first touch
// of the emit path.
func (c *Console) Panic(msg string) {
	c.irqOff()
	c.locking.Store(false)

	c.printf("panic: ", nil)
	c.printf(msg, nil)
	c.printf("\n", nil)

	var pcs [10]uintptr
	n := runtime.Callers(2, pcs[:])
	for i := 0; i < n; i++ {
		c.printf(" %p", []any{pcs[i]})
	}
	c.printf("\n", nil)

	c.panicked.Store(true)
	c.haltFn()
}

// fatal is the surface's escape hatch for impossible cursor arithmetic.
func (c *Console) fatal(msg string) {
	c.Panic(msg)
}
