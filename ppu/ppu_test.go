package ppu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sixfiveoh/nescore/interrupt"
	"github.com/sixfiveoh/nescore/mapper"
)

func newTestPPU() (*PPU, *interrupt.Lines) {
	m := mapper.NewNROM(make([]byte, 16*1024), make([]byte, 8*1024))
	lines := &interrupt.Lines{}
	return New(m, lines), lines
}

func TestPPUADDRWriteTwiceThenDataReadWrite(t *testing.T) {
	p, _ := newTestPPU()

	p.WriteRegister(0x2006, 0x20) // high byte
	p.WriteRegister(0x2006, 0x00) // low byte -> address $2000 (nametable)

	p.WriteRegister(0x2007, 0x77)
	// PPUDATA auto-incremented by 1 (PPUCTRL bit2 clear); next write lands
	// at $2001.
	p.WriteRegister(0x2006, 0x20)
	p.WriteRegister(0x2006, 0x00)
	first := p.ReadRegister(0x2007) // buffered read returns the OLD buffer, not $0077
	require.Equal(t, byte(0), first)
	second := p.ReadRegister(0x2007)
	assert.Equal(t, byte(0x77), second)
}

func TestPPUDATAIncrementBy32WhenCtrlBitSet(t *testing.T) {
	p, _ := newTestPPU()
	p.WriteRegister(0x2000, ctrlIncrement32)

	p.WriteRegister(0x2006, 0x20)
	p.WriteRegister(0x2006, 0x00)
	start := p.addr
	p.WriteRegister(0x2007, 0x01)
	assert.Equal(t, start+32, p.addr)
}

func TestPPUSTATUSReadClearsVBlankAndLatch(t *testing.T) {
	p, _ := newTestPPU()
	p.status |= statusVBlank
	p.addrLatch = true

	v := p.ReadRegister(0x2002)

	assert.NotZero(t, v&statusVBlank)
	assert.Zero(t, p.status&statusVBlank)
	assert.False(t, p.addrLatch)
}

func TestOAMDATAWriteAdvancesOAMAddr(t *testing.T) {
	p, _ := newTestPPU()
	p.WriteRegister(0x2003, 0x10)
	p.WriteRegister(0x2004, 0xAB)

	assert.Equal(t, byte(0x11), p.oamAddr)
	assert.Equal(t, byte(0xAB), p.oam[0x10])
}

func TestVBlankSetsStatusAndFiresNMIWhenEnabled(t *testing.T) {
	p, lines := newTestPPU()
	p.WriteRegister(0x2000, ctrlNMIEnable)
	p.scanline = vblankScanline
	p.cycle = 0

	p.Tick()

	assert.NotZero(t, p.status&statusVBlank)
	assert.True(t, lines.TakeNMI())
}

func TestVBlankDoesNotFireNMIWhenDisabled(t *testing.T) {
	p, lines := newTestPPU()
	p.scanline = vblankScanline
	p.cycle = 0

	p.Tick()

	assert.NotZero(t, p.status&statusVBlank)
	assert.False(t, lines.TakeNMI())
}

func TestPreRenderLineClearsStatusBits(t *testing.T) {
	p, _ := newTestPPU()
	p.status = statusVBlank | statusSprite0Hit | statusSpriteOverflow
	p.scanline = -1
	p.cycle = 0

	p.Tick()

	assert.Zero(t, p.status)
}

func TestPaletteMirrorsUniversalBackgroundSlots(t *testing.T) {
	p, _ := newTestPPU()
	p.WriteRegister(0x2006, 0x3F)
	p.WriteRegister(0x2006, 0x00)
	p.WriteRegister(0x2007, 0x0F)

	p.WriteRegister(0x2006, 0x3F)
	p.WriteRegister(0x2006, 0x10) // $3F10 mirrors $3F00
	p.ReadRegister(0x2007)        // palette reads are not buffered; discard
	got := p.palette[p.paletteIndex(0x3F10)]
	assert.Equal(t, byte(0x0F), got)
}
