// Package console wires a CPU, PPU, cartridge mapper, and controllers into
// the single memory-mapped address space the CPU actually sees, and drives
// them from a master clock at the NES's real divisors.
package console

import (
	"github.com/sixfiveoh/nescore/clock"
	"github.com/sixfiveoh/nescore/controller"
	"github.com/sixfiveoh/nescore/cpu"
	"github.com/sixfiveoh/nescore/inesfile"
	"github.com/sixfiveoh/nescore/interrupt"
	"github.com/sixfiveoh/nescore/mapper"
	"github.com/sixfiveoh/nescore/ppu"
)

const (
	ramMax        = 0x1FFF
	ramMirrorMask = 0x07FF
	ppuMin        = 0x2000
	ppuMax        = 0x3FFF
	controller1   = 0x4016
	controller2   = 0x4017
	cartMin       = 0x8000
)

// Console is a complete, runnable NES: CPU, PPU, cartridge mapper, two
// controller ports, and the master clock that schedules the CPU at
// master/12 and the PPU at master/4.
type Console struct {
	CPU         *cpu.CPU
	PPU         *ppu.PPU
	Mapper      mapper.Mapper
	Controller1 *controller.Controller
	Controller2 *controller.Controller
	Lines       *interrupt.Lines
	Clock       *clock.Master

	ram [ramMax + 1]byte
}

// New builds a console around a parsed ROM image, wiring the CPU's dispatch
// table, the PPU's pattern-table access, and the master/child clock
// topology: PPU registered before CPU so a co-scheduled tick runs the PPU
// first, then the CPU.
func New(rom *inesfile.ROM) *Console {
	m := mapper.NewNROM(rom.PRG, rom.CHR)
	lines := &interrupt.Lines{}

	c := &Console{
		Mapper:      m,
		Controller1: controller.New(),
		Controller2: controller.New(),
		Lines:       lines,
		Clock:       clock.NewMaster(),
	}
	c.PPU = ppu.New(m, lines)
	c.CPU = cpu.New(c, lines)

	c.Clock.AddChild(4, c.PPU.Tick)
	c.Clock.AddChild(12, c.CPU.Step)

	return c
}

// PowerOn brings the CPU up from the cartridge's reset vector.
func (c *Console) PowerOn() { c.CPU.PowerOn() }

// Read implements cpu.Bus: RAM mirrored every 2KB, PPU registers mirrored
// every 8 bytes, the two controller ports, and cartridge space delegated to
// the mapper. Addresses claimed by nothing (the APU/IO range) read as open
// bus zero.
func (c *Console) Read(addr uint16) byte {
	switch {
	case addr <= ramMax:
		return c.ram[addr&ramMirrorMask]
	case addr >= ppuMin && addr <= ppuMax:
		return c.PPU.ReadRegister(addr)
	case addr == controller1:
		return c.Controller1.Read()
	case addr == controller2:
		return c.Controller2.Read()
	case addr >= cartMin:
		if v, ok := c.Mapper.CPURead(addr); ok {
			return v
		}
		return 0
	default:
		return 0
	}
}

// Write implements cpu.Bus, mirroring Read's address decoding.
func (c *Console) Write(addr uint16, v byte) {
	switch {
	case addr <= ramMax:
		c.ram[addr&ramMirrorMask] = v
	case addr >= ppuMin && addr <= ppuMax:
		c.PPU.WriteRegister(addr, v)
	case addr == controller1:
		c.Controller1.Write(v)
	case addr == controller2:
		c.Controller2.Write(v)
	case addr >= cartMin:
		c.Mapper.CPUWrite(addr, v)
	}
}
