package clock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChildFiresOnDivisor(t *testing.T) {
	m := NewMaster()
	var count int
	m.AddChild(4, func() { count++ })

	m.Run(16)

	assert.Equal(t, 4, count)
}

func TestRegistrationOrderIsExecutionOrder(t *testing.T) {
	m := NewMaster()
	var order []string
	m.AddChild(2, func() { order = append(order, "ppu") })
	m.AddChild(2, func() { order = append(order, "cpu") })

	m.Run(2) // cycle 2 is the first one divisible by 2

	require.Equal(t, []string{"ppu", "cpu"}, order)
}

func TestDivisorsOfDifferentPeriods(t *testing.T) {
	m := NewMaster()
	var cpuTicks, ppuTicks int
	m.AddChild(12, func() { cpuTicks++ })
	m.AddChild(4, func() { ppuTicks++ })

	m.Run(12)

	assert.Equal(t, 1, cpuTicks)
	assert.Equal(t, 3, ppuTicks)
}

func TestCycleCounterMonotonic(t *testing.T) {
	m := NewMaster()
	m.Run(5)
	assert.Equal(t, uint64(5), m.Cycle())
}

func TestStopIsCooperative(t *testing.T) {
	m := NewMaster()
	var ticks int
	m.AddChild(1, func() {
		ticks++
		if ticks == 3 {
			m.Stop()
		}
	})

	m.Start()

	assert.Equal(t, 3, ticks)
}

func TestZeroDivisorPanics(t *testing.T) {
	m := NewMaster()
	assert.Panics(t, func() { m.AddChild(0, func() {}) })
}
