// Package clock implements the master/child clock scheduler that drives the
// CPU and PPU at independent divisors of a shared oscillator. It is
// single-threaded and cooperative: one Tick call does all the work and
// returns before the next begins.
package clock

// Callback is invoked with no arguments when a child clock's divisor comes
// due. It must not block or suspend; see the emulator's concurrency model.
type Callback func()

// child is a clock derived from the master at a fixed integer divisor.
type child struct {
	divisor  uint64
	callback Callback
}

// Master generates a monotonic tick sequence and fans it out to child
// clocks registered at setup time. Children are never added or removed
// while the master is ticking.
type Master struct {
	cycle    uint64
	children []child
	ticking  bool
}

// NewMaster returns a master clock with its cycle counter at 0.
func NewMaster() *Master {
	return &Master{}
}

// AddChild registers a child clock with the given divisor (must be > 0) and
// callback. Children run in registration order on every master tick whose
// cycle count is evenly divisible by the child's divisor.
func (m *Master) AddChild(divisor uint64, callback Callback) {
	if divisor == 0 {
		panic("clock: child divisor must be positive")
	}
	m.children = append(m.children, child{divisor: divisor, callback: callback})
}

// Cycle returns the number of ticks the master has produced so far.
func (m *Master) Cycle() uint64 { return m.cycle }

// Tick advances the master clock by one cycle and invokes every child
// callback whose divisor evenly divides the new cycle count, in
// registration order.
func (m *Master) Tick() {
	m.cycle++
	for _, c := range m.children {
		if m.cycle%c.divisor == 0 {
			c.callback()
		}
	}
}

// Start begins an unbounded tick loop; each Tick completes before the next
// begins, so Stop (called from within a callback, or from another
// goroutine between ticks) is observed at the next iteration boundary.
func (m *Master) Start() {
	m.ticking = true
	for m.ticking {
		m.Tick()
	}
}

// Stop requests that Start's loop exit. The in-flight tick completes first.
func (m *Master) Stop() {
	m.ticking = false
}

// Run ticks the master exactly n times, running children in lockstep with
// the master regardless of Start/Stop state. Used by callers (and tests)
// that want to drive a fixed number of cycles rather than an open loop.
func (m *Master) Run(n uint64) {
	for i := uint64(0); i < n; i++ {
		m.Tick()
	}
}
