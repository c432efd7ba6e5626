package console

import "context"

// Device-slot registry. Hosts address devices through small numbered slots
// the way a kernel's device switch does; the console installs itself at
// DevConsole during setup.
const (
	// NDev is the size of the device table.
	NDev = 10

	// DevConsole is the console's well-known slot.
	DevConsole = 1
)

// Device is one entry in the device table.
type Device struct {
	Read  func(ctx context.Context, p []byte) (int, error)
	Write func(p []byte) (int, error)
}

var devices [NDev]Device

// Install registers the console's read and write entry points at the
// DevConsole slot and returns the console for chaining.
func (c *Console) Install() *Console {
	devices[DevConsole] = Device{
		Read:  c.ReadContext,
		Write: c.Write,
	}
	return c
}

// Dev returns the device registered at slot major.
func Dev(major int) (Device, bool) {
	if major < 0 || major >= NDev || devices[major].Read == nil {
		return Device{}, false
	}
	return devices[major], true
}
