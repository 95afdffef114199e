// Package ppu implements the CPU-visible register surface of the 2C02
// picture processing unit: PPUCTRL/PPUMASK/PPUSTATUS/OAMADDR/OAMDATA/
// PPUSCROLL/PPUADDR/PPUDATA read/write side effects, the shared write-twice
// address latch, and vertical-blank/NMI timing. Actual pixel rendering is
// out of scope; ReadRegister/WriteRegister are register-level stubs with no
// rendering behind them.
package ppu

import (
	"github.com/sixfiveoh/nescore/interrupt"
	"github.com/sixfiveoh/nescore/mapper"
)

// PPUCTRL ($2000) bits.
const (
	ctrlNametableMask = 0x03
	ctrlIncrement32   = 1 << 2
	ctrlSpritePattern = 1 << 3
	ctrlBGPattern     = 1 << 4
	ctrlSpriteSize    = 1 << 5
	ctrlNMIEnable     = 1 << 7
)

// PPUSTATUS ($2002) bits.
const (
	statusSpriteOverflow = 1 << 5
	statusSprite0Hit     = 1 << 6
	statusVBlank         = 1 << 7
)

const (
	paletteSize    = 32
	nametableSize  = 2048
	cyclesPerLine  = 341
	scanlinesTotal = 261 // pre-render through 260; pre-render represented as -1
	vblankScanline = 241
)

// PPU holds register state, internal VRAM (nametables and palette), and the
// scanline/cycle counters that drive vertical-blank timing.
type PPU struct {
	ctrl, mask, status byte
	oamAddr            byte
	oam                [256]byte

	addr       uint16
	addrLatch  bool
	readBuffer byte
	fineX      byte
	scrollY    byte

	nametables [nametableSize]byte
	palette    [paletteSize]byte

	scanline int
	cycle    int

	mapper mapper.Mapper
	lines  *interrupt.Lines
}

// New returns a PPU backed by m for pattern-table access and wired to lines
// to raise NMI at the start of vertical blank.
func New(m mapper.Mapper, lines *interrupt.Lines) *PPU {
	return &PPU{mapper: m, lines: lines, scanline: -1}
}

// ReadRegister handles a CPU read of one of the eight PPU registers
// ($2000-$2007, already resolved by the caller's address decoding).
func (p *PPU) ReadRegister(reg uint16) byte {
	switch reg & 0x7 {
	case 2: // PPUSTATUS
		v := p.status
		p.status &^= statusVBlank
		p.addrLatch = false
		return v
	case 4: // OAMDATA
		return p.oam[p.oamAddr]
	case 7: // PPUDATA
		return p.readData()
	default:
		return 0
	}
}

// WriteRegister handles a CPU write to one of the eight PPU registers.
func (p *PPU) WriteRegister(reg uint16, v byte) {
	switch reg & 0x7 {
	case 0: // PPUCTRL
		p.ctrl = v
	case 1: // PPUMASK
		p.mask = v
	case 3: // OAMADDR
		p.oamAddr = v
	case 4: // OAMDATA
		p.oam[p.oamAddr] = v
		p.oamAddr++
	case 5: // PPUSCROLL, write twice: X then Y
		if !p.addrLatch {
			p.fineX = v
		} else {
			p.scrollY = v
		}
		p.addrLatch = !p.addrLatch
	case 6: // PPUADDR, write twice: high byte then low byte
		if !p.addrLatch {
			p.addr = p.addr&0x00FF | uint16(v)<<8
		} else {
			p.addr = p.addr&0xFF00 | uint16(v)
		}
		p.addrLatch = !p.addrLatch
	case 7: // PPUDATA
		p.writeData(v)
	}
}

func (p *PPU) readData() byte {
	addr := p.addr & 0x3FFF
	var v byte
	switch {
	case addr < 0x2000:
		v = p.readBuffer
		data, _ := p.mapper.PPURead(addr)
		p.readBuffer = data
	case addr < 0x3F00:
		v = p.readBuffer
		p.readBuffer = p.nametables[addr&0x07FF]
	default:
		v = p.palette[p.paletteIndex(addr)]
		p.readBuffer = p.nametables[addr&0x07FF]
	}
	p.advanceAddr()
	return v
}

func (p *PPU) writeData(v byte) {
	addr := p.addr & 0x3FFF
	switch {
	case addr < 0x2000:
		p.mapper.PPUWrite(addr, v)
	case addr < 0x3F00:
		p.nametables[addr&0x07FF] = v
	default:
		p.palette[p.paletteIndex(addr)] = v
	}
	p.advanceAddr()
}

func (p *PPU) advanceAddr() {
	if p.ctrl&ctrlIncrement32 != 0 {
		p.addr += 32
	} else {
		p.addr++
	}
}

// paletteIndex mirrors the four "universal background color" slots within
// the 32-byte palette table, the one bit of palette-memory quirk that's
// externally observable through PPUDATA without any pixel rendering.
func (p *PPU) paletteIndex(addr uint16) uint16 {
	idx := addr & 0x1F
	if idx%4 == 0 {
		idx &= 0x0F
	}
	return idx
}

// Tick advances the PPU by one pixel-clock cycle. At scanline 241, cycle 1
// it raises vertical blank (and NMI, if enabled in PPUCTRL); at the
// pre-render line it clears vblank and the sprite status bits.
func (p *PPU) Tick() {
	p.cycle++
	if p.cycle > cyclesPerLine-1 {
		p.cycle = 0
		p.scanline++
		if p.scanline > scanlinesTotal-1 {
			p.scanline = -1
		}
	}

	if p.scanline == vblankScanline && p.cycle == 1 {
		p.status |= statusVBlank
		if p.ctrl&ctrlNMIEnable != 0 && p.lines != nil {
			p.lines.AssertNMI()
		}
	}
	if p.scanline == -1 && p.cycle == 1 {
		p.status &^= statusVBlank | statusSprite0Hit | statusSpriteOverflow
	}
}

// Scanline and Cycle expose the PPU's position for debug display.
func (p *PPU) Scanline() int { return p.scanline }
func (p *PPU) Cycle() int    { return p.cycle }
