package cpu

import (
	"bytes"
	"testing"

	"github.com/davecgh/go-spew/spew"
	deep "github.com/go-test/deep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sixfiveoh/nescore/bus"
	"github.com/sixfiveoh/nescore/interrupt"
)

func newTestCPU() (*CPU, *bus.Memory) {
	mem := bus.New()
	lines := &interrupt.Lines{}
	return New(mem, lines), mem
}

func TestResetLoadsVectorAndPowerOnState(t *testing.T) {
	c, mem := newTestCPU()
	mem.WriteWord(0xFFFC, 0x1234)

	c.Reset()

	require.Equal(t, uint16(0x1234), c.PC)
	assert.Equal(t, byte(0xFD), c.SP)
	assert.True(t, c.getFlag(FlagI))
}

func TestWarmResetSubtractsThreeFromSP(t *testing.T) {
	c, mem := newTestCPU()
	mem.WriteWord(0xFFFC, 0x8000)
	c.PowerOn()
	c.SP = 0x80

	c.Reset()

	assert.Equal(t, byte(0x7D), c.SP)
}

func TestLDAImmediateSetsZeroAndNegativeFlags(t *testing.T) {
	c, mem := newTestCPU()
	mem.LoadAt(0x8000, []byte{0xA9, 0x00, 0xA9, 0x80})
	c.PC = 0x8000

	c.Step()
	assert.Equal(t, byte(0x00), c.A)
	assert.True(t, c.getFlag(FlagZ))
	assert.False(t, c.getFlag(FlagN))

	c.Step()
	assert.Equal(t, byte(0x80), c.A)
	assert.False(t, c.getFlag(FlagZ))
	assert.True(t, c.getFlag(FlagN))
}

func TestJSRThenRTSRoundTrip(t *testing.T) {
	c, mem := newTestCPU()
	mem.LoadAt(0x8000, []byte{0x20, 0x10, 0x80}) // JSR $8010
	mem.LoadAt(0x8010, []byte{0x60})             // RTS
	c.PC = 0x8000
	c.SP = 0xFD

	c.Step() // JSR
	assert.Equal(t, uint16(0x8010), c.PC)
	assert.Equal(t, byte(0x80), mem.Read(0x01FD), "high byte pushed first, sits above the low byte")
	assert.Equal(t, byte(0x02), mem.Read(0x01FC), "low byte on top of stack")
	assert.Equal(t, byte(0xFB), c.SP)

	c.Step() // RTS
	assert.Equal(t, uint16(0x8003), c.PC)
	assert.Equal(t, byte(0xFD), c.SP)
}

func TestADCCarryAndOverflowBoundary(t *testing.T) {
	c, mem := newTestCPU()
	mem.LoadAt(0x8000, []byte{0x69, 0x50}) // ADC #$50
	c.PC = 0x8000
	c.A = 0x50
	c.setFlag(FlagC, false)

	c.Step()

	assert.Equal(t, byte(0xA0), c.A)
	assert.True(t, c.getFlag(FlagN))
	assert.True(t, c.getFlag(FlagV))
	assert.False(t, c.getFlag(FlagZ))
	assert.False(t, c.getFlag(FlagC))
}

func TestSBCBorrowBoundary(t *testing.T) {
	c, mem := newTestCPU()
	mem.LoadAt(0x8000, []byte{0xE9, 0x01}) // SBC #$01
	c.PC = 0x8000
	c.A = 0x00
	c.setFlag(FlagC, true) // carry set means "no borrow" going in

	c.Step()

	assert.Equal(t, byte(0xFF), c.A)
	assert.True(t, c.getFlag(FlagN))
	assert.False(t, c.getFlag(FlagC))
}

func TestIndirectJMPPageBoundaryBug(t *testing.T) {
	c, mem := newTestCPU()
	mem.LoadAt(0x8000, []byte{0x6C, 0xFF, 0x02}) // JMP ($02FF)
	mem.Write(0x02FF, 0x00)
	mem.Write(0x0300, 0x20) // correct high byte would live here
	mem.Write(0x0200, 0x40) // buggy hardware reads high byte from $0200 instead
	c.PC = 0x8000

	c.Step()

	assert.Equal(t, uint16(0x4000), c.PC, "must reproduce the page-wrap bug, not the fixed address")
}

func TestZeroPageXWrapsWithinPageZero(t *testing.T) {
	c, mem := newTestCPU()
	mem.LoadAt(0x8000, []byte{0xB5, 0x80}) // LDA $80,X
	mem.Write(0x007F, 0x42)
	c.PC = 0x8000
	c.X = 0xFF // 0x80 + 0xFF wraps to 0x7F within page zero

	c.Step()

	assert.Equal(t, byte(0x42), c.A)
}

func TestIndirectIndexedYCanCrossPage(t *testing.T) {
	c, mem := newTestCPU()
	mem.LoadAt(0x8000, []byte{0xB1, 0x10}) // LDA ($10),Y
	mem.WriteWord(0x0010, 0x20FF)
	mem.Write(0x2100, 0x99)
	c.PC = 0x8000
	c.Y = 0x01

	c.Step()

	assert.Equal(t, byte(0x99), c.A)
}

func TestPHPSetsBreakAndUnusedOnStackButPLPIgnoresThem(t *testing.T) {
	c, mem := newTestCPU()
	mem.LoadAt(0x8000, []byte{0x08, 0x28}) // PHP; PLP
	c.PC = 0x8000
	c.SP = 0xFD
	c.Flags = FlagC | FlagZ // B and U both clear in the live flags

	c.Step() // PHP
	pushed := mem.Read(0x01FD)
	assert.NotZero(t, pushed&FlagB, "PHP always pushes B=1")
	assert.NotZero(t, pushed&FlagU, "PHP always pushes U=1")

	c.Step() // PLP
	assert.False(t, c.getFlag(FlagB), "PLP must not import B from the stack")
	assert.True(t, c.getFlag(FlagC))
	assert.True(t, c.getFlag(FlagZ))
}

func TestBRKPushesPCPlusTwoAndSetsBreakFlag(t *testing.T) {
	c, mem := newTestCPU()
	mem.LoadAt(0x8000, []byte{0x00, 0xEA}) // BRK; NOP (padding byte)
	mem.WriteWord(0xFFFE, 0x9000)
	c.PC = 0x8000
	c.SP = 0xFD
	c.Flags = 0

	c.Step()

	assert.Equal(t, uint16(0x9000), c.PC)
	pushedFlags := mem.Read(0x01FB)
	assert.NotZero(t, pushedFlags&FlagB)
	assert.NotZero(t, pushedFlags&FlagU)
	returnAddr := uint16(mem.Read(0x01FD))<<8 | uint16(mem.Read(0x01FC))
	assert.Equal(t, uint16(0x8002), returnAddr, "pushed return address is PC+2 relative to the BRK opcode byte")
}

func TestUnknownOpcodeIsLoggedAndSkipped(t *testing.T) {
	c, mem := newTestCPU()
	var logBuf bytes.Buffer
	c.Logger.SetOutput(&logBuf)
	mem.LoadAt(0x8000, []byte{0x02}) // $02 is unofficial/undefined (KIL/JAM on real hardware)
	c.PC = 0x8000

	c.Step()

	assert.Equal(t, uint16(0x8001), c.PC, "PC advances past the unknown opcode byte")
	assert.Contains(t, logBuf.String(), "unknown opcode")
}

func TestNMIEntryPushesFlagsWithBreakClear(t *testing.T) {
	mem := bus.New()
	lines := &interrupt.Lines{}
	c := New(mem, lines)
	mem.WriteWord(0xFFFA, 0x9500)
	c.PC = 0x8000
	c.SP = 0xFD
	c.Flags = FlagB

	lines.AssertNMI()
	c.Step()

	assert.Equal(t, uint16(0x9500), c.PC)
	pushedFlags := mem.Read(0x01FB)
	assert.Zero(t, pushedFlags&FlagB, "hardware interrupt entry always clears B in the pushed copy")
	assert.NotZero(t, pushedFlags&FlagU)
}

func TestBranchOffsetExtremes(t *testing.T) {
	c, mem := newTestCPU()
	mem.LoadAt(0x8000, []byte{0xD0, 0x7F}) // BNE +127
	c.PC = 0x8000
	c.setFlag(FlagZ, false)

	c.Step()
	assert.Equal(t, uint16(0x8081), c.PC, "PC past the offset byte plus +127")

	mem.LoadAt(0x8081, []byte{0xD0, 0x80}) // BNE -128
	c.Step()
	assert.Equal(t, uint16(0x8003), c.PC, "PC past the offset byte minus 128")
}

func TestBranchNotTakenFallsThrough(t *testing.T) {
	c, mem := newTestCPU()
	mem.LoadAt(0x8000, []byte{0xF0, 0x10}) // BEQ +16
	c.PC = 0x8000
	c.setFlag(FlagZ, false)

	c.Step()

	assert.Equal(t, uint16(0x8002), c.PC)
}

func TestStackWrapsWithinStackPage(t *testing.T) {
	c, mem := newTestCPU()
	mem.LoadAt(0x8000, []byte{0x48, 0x68}) // PHA; PLA
	c.PC = 0x8000
	c.SP = 0x00
	c.A = 0xC3

	c.Step() // PHA
	assert.Equal(t, byte(0xC3), mem.Read(0x0100), "push at SP=$00 stores into the bottom of the stack page")
	assert.Equal(t, byte(0xFF), c.SP)

	c.A = 0
	c.Step() // PLA
	assert.Equal(t, byte(0xC3), c.A)
	assert.Equal(t, byte(0x00), c.SP, "pop wraps back to the original pointer")
}

func TestASLThenLSRIsIdentityWhenBitSevenClear(t *testing.T) {
	c, mem := newTestCPU()
	mem.LoadAt(0x8000, []byte{0x0A, 0x4A}) // ASL A; LSR A
	c.PC = 0x8000
	c.A = 0x35

	c.Step()
	assert.Equal(t, byte(0x6A), c.A)
	c.Step()
	assert.Equal(t, byte(0x35), c.A)
}

func TestROLThenRORWithCarryIsIdentity(t *testing.T) {
	c, mem := newTestCPU()
	mem.LoadAt(0x8000, []byte{0x2A, 0x6A}) // ROL A; ROR A
	c.PC = 0x8000
	c.A = 0x40
	c.setFlag(FlagC, true)

	c.Step() // ROL: carry rotates into bit 0, bit 7 (0) out to carry
	assert.Equal(t, byte(0x81), c.A)
	c.Step() // ROR: bit 0 back out to carry, carry (0) into bit 7
	assert.Equal(t, byte(0x40), c.A)
	assert.True(t, c.getFlag(FlagC))
}

func TestADCThenSBCRestoresAccumulator(t *testing.T) {
	c, mem := newTestCPU()
	mem.LoadAt(0x8000, []byte{0x69, 0x12, 0xE9, 0x12}) // ADC #$12; SBC #$12
	c.PC = 0x8000
	c.A = 0x37
	c.setFlag(FlagC, true)

	c.Step()
	c.Step()

	assert.Equal(t, byte(0x37), c.A)
	assert.True(t, c.getFlag(FlagC))
}

func TestIRQMaskedByInterruptDisableFlag(t *testing.T) {
	mem := bus.New()
	lines := &interrupt.Lines{}
	c := New(mem, lines)
	mem.LoadAt(0x8000, []byte{0xA9, 0x42}) // LDA #$42
	mem.WriteWord(0xFFFE, 0x9000)
	c.PC = 0x8000
	c.SP = 0xFD
	c.setFlag(FlagI, true)
	lines.AssertIRQ()

	c.Step()
	assert.Equal(t, byte(0x42), c.A, "IRQ is ignored while I=1; the instruction runs")
	assert.Equal(t, uint16(0x8002), c.PC)

	c.setFlag(FlagI, false)
	c.Step()
	assert.Equal(t, uint16(0x9000), c.PC, "held IRQ is taken once I clears")
	assert.True(t, c.getFlag(FlagI), "interrupt entry re-disables IRQ")
	pushedFlags := mem.Read(0x01FB)
	assert.Zero(t, pushedFlags&FlagB)
}

func TestEndToEndSequenceMatchesExpectedState(t *testing.T) {
	c, mem := newTestCPU()
	// LDA #$05; CLC; ADC #$03; TAX; INX
	mem.LoadAt(0x8000, []byte{0xA9, 0x05, 0x18, 0x69, 0x03, 0xAA, 0xE8})
	c.PC = 0x8000
	c.SP = 0xFD

	for i := 0; i < 5; i++ {
		c.Step()
	}

	want := State{A: 0x08, X: 0x09, Y: 0, PC: 0x8007, SP: 0xFD, Flags: 0}
	got := c.Snapshot()
	if diff := deep.Equal(want, got); diff != nil {
		t.Fatalf("end-to-end state mismatch: %v\ngot: %s", diff, spew.Sdump(got))
	}
}
