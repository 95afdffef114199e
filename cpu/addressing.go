package cpu

// Mode identifies an addressing mode for disassembly purposes. The CPU
// itself only ever calls the AddrMode function pointer; Mode exists so a
// disassembler can format operands directly from the dispatch table instead
// of re-deriving the mode by inspecting the function value.
type Mode int

const (
	ModeImplicit Mode = iota
	ModeAccumulator
	ModeImmediate
	ModeZeroPage
	ModeZeroPageX
	ModeZeroPageY
	ModeAbsolute
	ModeAbsoluteX
	ModeAbsoluteY
	ModeIndirect
	ModeIndirectX
	ModeIndirectY
	ModeRelative
)

// amIMP resolves implicit/accumulator addressing: the operand is the
// accumulator itself, consuming no operand bytes.
func amIMP(c *CPU) {
	c.implied = true
	c.fetched = c.A
}

// amIMM resolves immediate addressing: the operand is the byte immediately
// following the opcode.
func amIMM(c *CPU) {
	c.addrAbs = c.PC
	c.PC++
}

// amZP0 resolves zero-page addressing.
func amZP0(c *CPU) {
	c.addrAbs = uint16(c.read(c.PC))
	c.PC++
}

// amZPX resolves zero-page,X addressing: the zero-page base wraps within
// page zero rather than crossing into page one.
func amZPX(c *CPU) {
	base := c.read(c.PC)
	c.PC++
	c.addrAbs = uint16(base + c.X)
}

// amZPY resolves zero-page,Y addressing (used only by LDX/STX).
func amZPY(c *CPU) {
	base := c.read(c.PC)
	c.PC++
	c.addrAbs = uint16(base + c.Y)
}

// amABS resolves absolute addressing.
func amABS(c *CPU) {
	c.addrAbs = c.readWord(c.PC)
	c.PC += 2
}

// amABX resolves absolute,X addressing and records whether the effective
// address crossed a page boundary (an extra-cycle condition on real
// hardware; tracked here only for informational cycle bookkeeping).
func amABX(c *CPU) {
	base := c.readWord(c.PC)
	c.PC += 2
	c.addrAbs = base + uint16(c.X)
	c.pageCrossed = (base & 0xFF00) != (c.addrAbs & 0xFF00)
}

// amABY resolves absolute,Y addressing.
func amABY(c *CPU) {
	base := c.readWord(c.PC)
	c.PC += 2
	c.addrAbs = base + uint16(c.Y)
	c.pageCrossed = (base & 0xFF00) != (c.addrAbs & 0xFF00)
}

// amIND resolves indirect addressing, used only by JMP ($addr). Reproduces
// the original 6502's page-boundary bug: if the pointer's low byte is $FF,
// the high byte of the target is fetched from the start of the SAME page
// rather than the start of the next one.
func amIND(c *CPU) {
	ptr := c.readWord(c.PC)
	c.PC += 2

	lo := c.read(ptr)
	var hi byte
	if ptr&0x00FF == 0x00FF {
		hi = c.read(ptr & 0xFF00)
	} else {
		hi = c.read(ptr + 1)
	}
	c.addrAbs = uint16(hi)<<8 | uint16(lo)
}

// amIZX resolves (zero page,X) addressing: the zero-page pointer is formed
// by adding X to the operand, wrapping within page zero, then read as a
// little-endian word (itself wrapping within page zero).
func amIZX(c *CPU) {
	zp := c.read(c.PC) + c.X
	c.PC++
	lo := c.read(uint16(zp))
	hi := c.read(uint16(zp + 1))
	c.addrAbs = uint16(hi)<<8 | uint16(lo)
}

// amIZY resolves (zero page),Y addressing: a zero-page pointer (wrapping
// within page zero when read) gives a base address, and Y is added to that
// after the pointer is resolved -- the indexing itself may cross a page.
func amIZY(c *CPU) {
	zp := c.read(c.PC)
	c.PC++
	lo := c.read(uint16(zp))
	hi := c.read(uint16(zp + 1))
	base := uint16(hi)<<8 | uint16(lo)
	c.addrAbs = base + uint16(c.Y)
	c.pageCrossed = (base & 0xFF00) != (c.addrAbs & 0xFF00)
}

// amREL resolves relative addressing for branches: a signed offset
// following the opcode, sign-extended and stashed for the branch handler to
// add to PC (which by then already points past the offset byte).
func amREL(c *CPU) {
	offset := c.read(c.PC)
	c.PC++
	c.addrRel = uint16(offset)
	if offset&0x80 != 0 {
		c.addrRel |= 0xFF00
	}
}

// branchIf adds addrRel to PC when cond holds, tracking whether the branch
// target crosses a page (informational only, per Cycles bookkeeping above).
func branchIf(c *CPU, cond bool) {
	if !cond {
		return
	}
	target := c.PC + c.addrRel
	c.pageCrossed = (target & 0xFF00) != (c.PC & 0xFF00)
	c.PC = target
}
