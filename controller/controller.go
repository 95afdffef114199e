// Package controller implements a standard NES controller: an 8-bit
// parallel-in, serial-out shift register exposed to the CPU through a
// single strobe/read port at $4016. Strobe high reloads and holds bit 0; a
// strobe-low edge latches the other seven bits for serial shift-out.
package controller

import "github.com/faiface/pixel/pixelgl"

// Button indices, matching the order the NES shifts them out: A, B,
// Select, Start, Up, Down, Left, Right.
const (
	ButtonA = iota
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
	buttonCount
)

var keyBindings = map[int]pixelgl.Button{
	ButtonA:      pixelgl.KeyJ,
	ButtonB:      pixelgl.KeyK,
	ButtonSelect: pixelgl.KeyRightShift,
	ButtonStart:  pixelgl.KeyEnter,
	ButtonUp:     pixelgl.KeyW,
	ButtonDown:   pixelgl.KeyS,
	ButtonLeft:   pixelgl.KeyA,
	ButtonRight:  pixelgl.KeyD,
}

// Controller tracks the eight button states and the shift register's
// strobe/index state as seen at $4016.
type Controller struct {
	state  [buttonCount]bool
	strobe bool
	shift  byte
	index  int
}

// New returns a controller with every button released.
func New() *Controller {
	return &Controller{}
}

// SetButton sets a single button's state directly, for tests and any input
// source other than a pixelgl window.
func (c *Controller) SetButton(button int, pressed bool) {
	c.state[button] = pressed
}

func (c *Controller) reload() {
	c.shift = 0
	for i := buttonCount - 1; i >= 0; i-- {
		c.shift <<= 1
		if c.state[i] {
			c.shift |= 1
		}
	}
	c.index = 0
}

// Write handles a CPU write to $4016. Bit 0 is the strobe: while it's held
// high the register continuously reloads, so Read always returns the A
// button; on the falling edge the other seven buttons are latched for
// serial shift-out.
func (c *Controller) Write(v byte) {
	wasStrobe := c.strobe
	c.strobe = v&0x01 != 0
	if c.strobe || wasStrobe {
		c.reload()
	}
}

// Read handles a CPU read of $4016: with strobe held high it keeps
// returning button A's live state; otherwise it shifts out one latched
// button per call (LSB first) and returns 1 once all eight have been read,
// matching real hardware's open-bus-ish "all ones" tail.
func (c *Controller) Read() byte {
	if c.strobe {
		c.reload()
		return c.shift & 1
	}
	if c.index >= buttonCount {
		return 1
	}
	bit := (c.shift >> uint(c.index)) & 1
	c.index++
	return bit
}

// Poll snapshots live key state from a pixelgl window, reading each key's
// current state every call: the shift register needs to see "is this held
// right now", not "did it change this frame".
func (c *Controller) Poll(win *pixelgl.Window) {
	for i, key := range keyBindings {
		c.state[i] = win.Pressed(key)
	}
}
