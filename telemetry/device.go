package telemetry

import "io"

// IdentPrefix starts the identity echo line sent in reply to "ident".
const IdentPrefix = "picoled:"

// Device is all telemetry state shown on the panel.
//
// A Device has exactly one owner, the frame loop. It is never shared with
// another goroutine, so it carries no lock.
type Device struct {
	CPU *Series
	Mem *Series

	CPUTemp    uint8
	GPUTemp    uint8
	GPUPresent bool

	identity string
}

// NewDevice returns zeroed state with series of length n and a fixed board identity.
func NewDevice(n int, identity string) *Device {
	return &Device{
		CPU:      NewSeries(n),
		Mem:      NewSeries(n),
		identity: identity,
	}
}

// Identity returns the board identity set at startup.
func (d *Device) Identity() string { return d.identity }

// Apply performs one update. Identify writes the echo line to echo; a nil echo drops it.
func (d *Device) Apply(u Update, echo io.Writer) {
	switch u.Kind {
	case KindCPU:
		d.CPU.Push(u.Value)
	case KindMem:
		d.Mem.Push(u.Value)
	case KindCPUTemp:
		d.CPUTemp = u.Value
	case KindGPUTemp:
		d.GPUTemp = u.Value
		d.GPUPresent = u.Value != 0
	case KindIdentify:
		if echo != nil {
			_, _ = io.WriteString(echo, IdentPrefix+d.identity+"\n")
		}
	}
}

// ApplyLine parses line and applies every update in it. It returns the number
// of updates applied.
func (d *Device) ApplyLine(line []byte, echo io.Writer) int {
	b := Parse(line)
	for _, u := range b.Updates() {
		d.Apply(u, echo)
	}
	return b.Len()
}

// Starve repeats the latest sample of every series, keeping the graphs moving
// while the host is silent.
func (d *Device) Starve() {
	d.CPU.Repeat()
	d.Mem.Repeat()
}
