// Package interrupt models the two level/edge-sensitive interrupt lines an
// NES CPU samples between instructions. It deliberately knows nothing about
// the CPU or bus; anything that wants to request an interrupt holds a
// *Lines and calls AssertIRQ/AssertNMI.
package interrupt

// Lines holds the current state of the IRQ and NMI inputs to the CPU.
//
// IRQ is level-sensitive: it stays asserted until the device that raised it
// calls ReleaseIRQ, and the CPU may take it repeatedly as long as it's held
// and I=0. NMI is edge-sensitive: asserting it latches a single pending
// request which the CPU's interrupt entry clears; re-asserting while still
// pending is a no-op, matching real NMI's "fires once per low transition".
type Lines struct {
	irqLevel   bool
	nmiPending bool
}

// AssertIRQ raises the IRQ line. Idempotent while already asserted.
func (l *Lines) AssertIRQ() { l.irqLevel = true }

// ReleaseIRQ lowers the IRQ line.
func (l *Lines) ReleaseIRQ() { l.irqLevel = false }

// IRQAsserted reports whether IRQ is currently held low.
func (l *Lines) IRQAsserted() bool { return l.irqLevel }

// AssertNMI latches a pending NMI request. A second call before the CPU
// consumes the first has no additional effect.
func (l *Lines) AssertNMI() { l.nmiPending = true }

// TakeNMI reports whether an NMI is pending and clears it. The CPU calls
// this once per instruction boundary as part of interrupt sampling.
func (l *Lines) TakeNMI() bool {
	pending := l.nmiPending
	l.nmiPending = false
	return pending
}
