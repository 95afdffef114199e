package cpu

// opADC adds the operand and the carry flag to A using the canonical
// two's-complement overflow test: overflow occurred iff the sign of both
// inputs matches and differs from the sign of the result.
func opADC(c *CPU) {
	m := c.fetch()
	var carry uint16
	if c.getFlag(FlagC) {
		carry = 1
	}
	sum := uint16(c.A) + uint16(m) + carry
	result := byte(sum)

	c.setFlag(FlagC, sum > 0xFF)
	c.setFlag(FlagV, (c.A^result)&(m^result)&0x80 != 0)
	c.A = result
	c.setZN(c.A)
}

// opSBC is ADC with the operand's bits inverted, the standard 6502 identity
// that lets SBC reuse ADC's carry/overflow arithmetic directly.
func opSBC(c *CPU) {
	m := c.fetch() ^ 0xFF
	var carry uint16
	if c.getFlag(FlagC) {
		carry = 1
	}
	sum := uint16(c.A) + uint16(m) + carry
	result := byte(sum)

	c.setFlag(FlagC, sum > 0xFF)
	c.setFlag(FlagV, (c.A^result)&(m^result)&0x80 != 0)
	c.A = result
	c.setZN(c.A)
}

func opAND(c *CPU) { c.A &= c.fetch(); c.setZN(c.A) }
func opORA(c *CPU) { c.A |= c.fetch(); c.setZN(c.A) }
func opEOR(c *CPU) { c.A ^= c.fetch(); c.setZN(c.A) }

// opBIT tests A & M without storing the result: Z reflects the AND, while N
// and V are copied directly from bits 7 and 6 of the operand.
func opBIT(c *CPU) {
	m := c.fetch()
	c.setFlag(FlagZ, c.A&m == 0)
	c.setFlag(FlagV, m&0x40 != 0)
	c.setFlag(FlagN, m&0x80 != 0)
}

func compare(c *CPU, reg byte) {
	m := c.fetch()
	result := reg - m
	c.setFlag(FlagC, reg >= m)
	c.setFlag(FlagZ, reg == m)
	c.setFlag(FlagN, result&0x80 != 0)
}

func opCMP(c *CPU) { compare(c, c.A) }
func opCPX(c *CPU) { compare(c, c.X) }
func opCPY(c *CPU) { compare(c, c.Y) }

func opASL(c *CPU) {
	v := c.fetch()
	c.setFlag(FlagC, v&0x80 != 0)
	result := v << 1
	c.storeResult(result)
	c.setZN(result)
}

// opLSR always clears N: the result's high bit can never be set.
func opLSR(c *CPU) {
	v := c.fetch()
	c.setFlag(FlagC, v&0x01 != 0)
	result := v >> 1
	c.storeResult(result)
	c.setFlag(FlagZ, result == 0)
	c.setFlag(FlagN, false)
}

func opROL(c *CPU) {
	v := c.fetch()
	var oldCarry byte
	if c.getFlag(FlagC) {
		oldCarry = 1
	}
	c.setFlag(FlagC, v&0x80 != 0)
	result := (v << 1) | oldCarry
	c.storeResult(result)
	c.setZN(result)
}

func opROR(c *CPU) {
	v := c.fetch()
	var oldCarry byte
	if c.getFlag(FlagC) {
		oldCarry = 1
	}
	c.setFlag(FlagC, v&0x01 != 0)
	result := (v >> 1) | (oldCarry << 7)
	c.storeResult(result)
	c.setZN(result)
}

func opINC(c *CPU) {
	v := c.fetch() + 1
	c.write(c.addrAbs, v)
	c.setZN(v)
}

func opDEC(c *CPU) {
	v := c.fetch() - 1
	c.write(c.addrAbs, v)
	c.setZN(v)
}

func opINX(c *CPU) { c.X++; c.setZN(c.X) }
func opDEX(c *CPU) { c.X--; c.setZN(c.X) }
func opINY(c *CPU) { c.Y++; c.setZN(c.Y) }
func opDEY(c *CPU) { c.Y--; c.setZN(c.Y) }

func opLDA(c *CPU) { c.A = c.fetch(); c.setZN(c.A) }
func opLDX(c *CPU) { c.X = c.fetch(); c.setZN(c.X) }
func opLDY(c *CPU) { c.Y = c.fetch(); c.setZN(c.Y) }
func opSTA(c *CPU) { c.write(c.addrAbs, c.A) }
func opSTX(c *CPU) { c.write(c.addrAbs, c.X) }
func opSTY(c *CPU) { c.write(c.addrAbs, c.Y) }

func opTAX(c *CPU) { c.X = c.A; c.setZN(c.X) }
func opTAY(c *CPU) { c.Y = c.A; c.setZN(c.Y) }
func opTXA(c *CPU) { c.A = c.X; c.setZN(c.A) }
func opTYA(c *CPU) { c.A = c.Y; c.setZN(c.A) }
func opTSX(c *CPU) { c.X = c.SP; c.setZN(c.X) }
func opTXS(c *CPU) { c.SP = c.X }

func opPHA(c *CPU) { c.push(c.A) }
func opPLA(c *CPU) { c.A = c.pop(); c.setZN(c.A) }

// opPHP pushes the flags with B and U both forced to 1: the pushed copy
// always shows a software-initiated break, regardless of the live B bit.
func opPHP(c *CPU) { c.push(c.Flags | FlagB | FlagU) }

// opPLP pulls flags from the stack but ignores bits 4 and 5 of the popped
// byte -- B and U are not real storage on the chip and are immutable via
// PLP, so the CPU's current B/U bits are kept as-is.
func opPLP(c *CPU) {
	v := c.pop()
	keep := c.Flags & (FlagB | FlagU)
	c.Flags = (v &^ (FlagB | FlagU)) | keep
}

func opJMP(c *CPU) { c.PC = c.addrAbs }

// opJSR pushes the address of the last byte of the JSR instruction (PC - 1,
// since PC already points past the two-byte operand), not the address of
// the next instruction; RTS adds the 1 back on return.
func opJSR(c *CPU) {
	c.pushWord(c.PC - 1)
	c.PC = c.addrAbs
}

// opRTS pops a 16-bit return address and adds 1, undoing JSR's -1.
func opRTS(c *CPU) {
	c.PC = c.popWord() + 1
}

// opRTI pops flags (masked like PLP) then pops PC verbatim -- no +1, unlike
// RTS, because the pushed value here is already the address to resume at.
func opRTI(c *CPU) {
	v := c.pop()
	keep := c.Flags & (FlagB | FlagU)
	c.Flags = (v &^ (FlagB | FlagU)) | keep
	c.PC = c.popWord()
}

// opBRK is a software interrupt: it increments PC once more than a normal
// fetch already has (so the pushed return address is PC+2 relative to the
// BRK opcode byte) and enters the IRQ/BRK vector with both B and U set on
// the pushed flags.
func opBRK(c *CPU) {
	c.PC++
	c.enterInterrupt(vectorIRQBRK, true)
}

func opBCC(c *CPU) { branchIf(c, !c.getFlag(FlagC)) }
func opBCS(c *CPU) { branchIf(c, c.getFlag(FlagC)) }
func opBEQ(c *CPU) { branchIf(c, c.getFlag(FlagZ)) }
func opBNE(c *CPU) { branchIf(c, !c.getFlag(FlagZ)) }
func opBMI(c *CPU) { branchIf(c, c.getFlag(FlagN)) }
func opBPL(c *CPU) { branchIf(c, !c.getFlag(FlagN)) }
func opBVC(c *CPU) { branchIf(c, !c.getFlag(FlagV)) }
func opBVS(c *CPU) { branchIf(c, c.getFlag(FlagV)) }

func opCLC(c *CPU) { c.setFlag(FlagC, false) }
func opSEC(c *CPU) { c.setFlag(FlagC, true) }
func opCLD(c *CPU) { c.setFlag(FlagD, false) }
func opSED(c *CPU) { c.setFlag(FlagD, true) }
func opCLI(c *CPU) { c.setFlag(FlagI, false) }
func opSEI(c *CPU) { c.setFlag(FlagI, true) }
func opCLV(c *CPU) { c.setFlag(FlagV, false) }

// opNOP does nothing. Used both for the official single-byte NOP and for
// unofficial multi-byte variants whose addressing mode already consumed
// (and discarded) the extra operand bytes.
func opNOP(c *CPU) {}
