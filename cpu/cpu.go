// Package cpu implements the 6502 instruction-fetch/decode/execute engine:
// register file, packed status flags, the 256-entry opcode dispatch table,
// addressing-mode resolution, and RESET/IRQ/NMI/BRK interrupt entry.
//
// Status flags are stored as a single packed byte rather than individual
// bools, matching the layout pushed and popped by PHP/PLP/BRK/RTI, with
// named-bit accessors for reading and setting individual flags.
package cpu

import (
	"fmt"
	"io"
	"log"

	"github.com/sixfiveoh/nescore/interrupt"
)

// Bus is the entire surface the CPU needs from memory: single-byte read and
// write. Everything else (16-bit reads, page-wrapped pointer fetches, stack
// access) is composed from these two primitives.
type Bus interface {
	Read(addr uint16) byte
	Write(addr uint16, val byte)
}

// Status flag bits, packed in hardware order MSB->LSB: N V U B D I Z C.
const (
	FlagC byte = 1 << 0 // Carry
	FlagZ byte = 1 << 1 // Zero
	FlagI byte = 1 << 2 // Interrupt disable
	FlagD byte = 1 << 3 // Decimal (unused on the NES's 2A03 variant)
	FlagB byte = 1 << 4 // Break
	FlagU byte = 1 << 5 // Unused, always observable as 1 on the stack
	FlagV byte = 1 << 6 // Overflow
	FlagN byte = 1 << 7 // Negative
)

const (
	stackBase    uint16 = 0x0100
	vectorNMI    uint16 = 0xFFFA
	vectorReset  uint16 = 0xFFFC
	vectorIRQBRK uint16 = 0xFFFE
)

// Instruction is one entry in the 256-slot opcode dispatch table: a name for
// disassembly, the addressing-mode resolver, the handler that performs the
// instruction's effect, and its base cycle count (informational only -- the
// CPU executes one whole instruction per Step and does not schedule at
// single-cycle granularity).
type Instruction struct {
	Name     string
	Mode     Mode
	AddrMode func(*CPU)
	Execute  func(*CPU)
	Cycles   byte
}

// CPU holds the 6502 register file and all state needed to fetch, decode,
// and execute one instruction at a time against a Bus. The CPU is the sole
// mutator of its own registers; every memory access goes through bus.
type CPU struct {
	A, X, Y byte
	PC      uint16
	SP      byte
	Flags   byte

	bus   Bus
	lines *interrupt.Lines

	opcode      byte
	addrAbs     uint16
	addrRel     uint16
	fetched     byte
	implied     bool
	pageCrossed bool

	poweredOn  bool
	CycleCount uint64

	table [256]Instruction

	// Logger receives the per-instruction trace and "unknown opcode"
	// warnings. Defaults to a discarding logger so callers that don't care
	// about tracing pay nothing; set Logger to redirect or silence it.
	Logger *log.Logger
}

// New returns a CPU wired to bus for memory access and lines for interrupt
// sampling. The CPU is not yet powered on; call PowerOn or Reset.
func New(bus Bus, lines *interrupt.Lines) *CPU {
	c := &CPU{
		bus:    bus,
		lines:  lines,
		Logger: log.New(io.Discard, "", 0),
	}
	c.buildDispatchTable()
	return c
}

func (c *CPU) read(addr uint16) byte { return c.bus.Read(addr) }
func (c *CPU) write(addr uint16, v byte) { c.bus.Write(addr, v) }

func (c *CPU) readWord(addr uint16) uint16 {
	lo := c.read(addr)
	hi := c.read(addr + 1)
	return uint16(lo) | uint16(hi)<<8
}

func (c *CPU) push(v byte) {
	c.write(stackBase+uint16(c.SP), v)
	c.SP--
}

func (c *CPU) pop() byte {
	c.SP++
	return c.read(stackBase + uint16(c.SP))
}

func (c *CPU) pushWord(v uint16) {
	c.push(byte(v >> 8))
	c.push(byte(v))
}

func (c *CPU) popWord() uint16 {
	lo := c.pop()
	hi := c.pop()
	return uint16(hi)<<8 | uint16(lo)
}

// getFlag reports whether the given status bit is set.
func (c *CPU) getFlag(f byte) bool { return c.Flags&f != 0 }

// setFlag writes the given status bit.
func (c *CPU) setFlag(f byte, v bool) {
	if v {
		c.Flags |= f
	} else {
		c.Flags &^= f
	}
}

// setZN derives the Z and N flags from v, the canonical form every
// loading/arithmetic/logical instruction uses.
func (c *CPU) setZN(v byte) {
	c.setFlag(FlagZ, v == 0)
	c.setFlag(FlagN, v&0x80 != 0)
}

// fetch returns the operand value for the current instruction: the
// accumulator under implied/accumulator addressing, or the byte at addrAbs
// otherwise.
func (c *CPU) fetch() byte {
	if c.implied {
		c.fetched = c.A
	} else {
		c.fetched = c.read(c.addrAbs)
	}
	return c.fetched
}

// storeResult writes a read-modify-write instruction's result back to the
// accumulator (implied/accumulator addressing) or to addrAbs.
func (c *CPU) storeResult(v byte) {
	if c.implied {
		c.A = v
	} else {
		c.write(c.addrAbs, v)
	}
}

// PowerOn brings the CPU up in its cold power-on state: SP=$FD, I=1, U=1,
// B=1, all other flags clear, A=X=Y=0, PC loaded from the reset vector.
func (c *CPU) PowerOn() {
	c.A, c.X, c.Y = 0, 0, 0
	c.SP = 0xFD
	c.Flags = FlagU | FlagB | FlagI
	c.PC = c.readWord(vectorReset)
	c.poweredOn = true
}

// Reset re-enters the reset sequence. On a CPU that has not been powered on
// yet it behaves like PowerOn; otherwise ("warm" reset) it subtracts 3 from SP (mod 256, via the
// byte's natural wraparound) without touching A/X/Y, matching real 6502
// reset behavior of three dummy stack cycles atop whatever SP already held.
func (c *CPU) Reset() {
	if !c.poweredOn {
		c.PowerOn()
		return
	}
	c.SP -= 3
	c.setFlag(FlagI, true)
	c.setFlag(FlagU, true)
	c.PC = c.readWord(vectorReset)
}

// enterInterrupt pushes the current PC (high byte first, then low byte),
// pushes status flags with B forced to 0 and U forced to 1 (or both forced
// to 1 when brk is true, for the BRK instruction's own interrupt entry),
// sets I, and loads PC from vector.
func (c *CPU) enterInterrupt(vector uint16, brk bool) {
	c.pushWord(c.PC)

	flags := c.Flags &^ FlagB
	flags |= FlagU
	if brk {
		flags |= FlagB
	}
	c.push(flags)

	c.setFlag(FlagI, true)
	c.PC = c.readWord(vector)
}

// Step executes exactly one unit of CPU work: either an interrupt entry (if
// NMI is pending, or IRQ is asserted and I=0) or one full instruction fetch,
// addressing-mode resolution, and execution. This is what the master
// clock's CPU-divisor child callback invokes once per due tick.
func (c *CPU) Step() {
	if c.lines != nil {
		if c.lines.TakeNMI() {
			c.enterInterrupt(vectorNMI, false)
			return
		}
		if c.lines.IRQAsserted() && !c.getFlag(FlagI) {
			c.enterInterrupt(vectorIRQBRK, false)
			return
		}
	}

	pc := c.PC
	c.opcode = c.read(c.PC)
	c.PC++

	inst := c.table[c.opcode]
	if inst.Execute == nil {
		c.Logger.Printf("WARN: unknown opcode %#02x at %#04x", c.opcode, pc)
		return
	}

	c.implied = false
	c.pageCrossed = false

	if inst.AddrMode != nil {
		inst.AddrMode(c)
	}
	inst.Execute(c)

	c.CycleCount += uint64(inst.Cycles)
	if c.pageCrossed {
		c.CycleCount++
	}

	c.Logger.Printf("%04X  %02X  %-4s A:%02X X:%02X Y:%02X P:%02X SP:%02X",
		pc, c.opcode, inst.Name, c.A, c.X, c.Y, c.Flags, c.SP)
}

// State is a read-only snapshot of the register file, useful for tests and
// the debug front end.
type State struct {
	A, X, Y byte
	PC      uint16
	SP      byte
	Flags   byte
}

// Snapshot returns the CPU's current register state.
func (c *CPU) Snapshot() State {
	return State{A: c.A, X: c.X, Y: c.Y, PC: c.PC, SP: c.SP, Flags: c.Flags}
}

// Lookup returns the dispatch-table entry for opcode, for callers (the
// disasm package, debug front ends) that need mnemonic/mode information
// without driving execution themselves.
func (c *CPU) Lookup(opcode byte) Instruction {
	return c.table[opcode]
}

// String renders the register snapshot for debug output, spelling out the
// flags byte one letter per bit in NVUBDIZC order ('-' for a clear bit).
func (s State) String() string {
	bit := func(f byte, ch byte) byte {
		if s.Flags&f != 0 {
			return ch
		}
		return '-'
	}
	flags := []byte{
		bit(FlagN, 'N'), bit(FlagV, 'V'), bit(FlagU, 'U'), bit(FlagB, 'B'),
		bit(FlagD, 'D'), bit(FlagI, 'I'), bit(FlagZ, 'Z'), bit(FlagC, 'C'),
	}
	return fmt.Sprintf("A=%02X X=%02X Y=%02X SP=%02X PC=%04X flags=%s",
		s.A, s.X, s.Y, s.SP, s.PC, flags)
}
