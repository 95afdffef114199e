package cpu

// buildDispatchTable populates the 256-entry opcode table, built once in the
// constructor and keyed directly by opcode byte, grouped mnemonic-by-
// mnemonic rather than in raw opcode-page order, and extended with the
// handful of unofficial single- and multi-byte NOPs real cartridges rely on. Undefined
// entries are left zero-valued; Step treats a nil Execute as an
// unimplemented opcode.
func (c *CPU) buildDispatchTable() {
	set := func(op byte, name string, mode Mode, am func(*CPU), ex func(*CPU), cycles byte) {
		c.table[op] = Instruction{Name: name, Mode: mode, AddrMode: am, Execute: ex, Cycles: cycles}
	}

	set(0x69, "ADC", ModeImmediate, amIMM, opADC, 2)
	set(0x65, "ADC", ModeZeroPage, amZP0, opADC, 3)
	set(0x75, "ADC", ModeZeroPageX, amZPX, opADC, 4)
	set(0x6D, "ADC", ModeAbsolute, amABS, opADC, 4)
	set(0x7D, "ADC", ModeAbsoluteX, amABX, opADC, 4)
	set(0x79, "ADC", ModeAbsoluteY, amABY, opADC, 4)
	set(0x61, "ADC", ModeIndirectX, amIZX, opADC, 6)
	set(0x71, "ADC", ModeIndirectY, amIZY, opADC, 5)

	set(0x29, "AND", ModeImmediate, amIMM, opAND, 2)
	set(0x25, "AND", ModeZeroPage, amZP0, opAND, 3)
	set(0x35, "AND", ModeZeroPageX, amZPX, opAND, 4)
	set(0x2D, "AND", ModeAbsolute, amABS, opAND, 4)
	set(0x3D, "AND", ModeAbsoluteX, amABX, opAND, 4)
	set(0x39, "AND", ModeAbsoluteY, amABY, opAND, 4)
	set(0x21, "AND", ModeIndirectX, amIZX, opAND, 6)
	set(0x31, "AND", ModeIndirectY, amIZY, opAND, 5)

	set(0x0A, "ASL", ModeAccumulator, amIMP, opASL, 2)
	set(0x06, "ASL", ModeZeroPage, amZP0, opASL, 5)
	set(0x16, "ASL", ModeZeroPageX, amZPX, opASL, 6)
	set(0x0E, "ASL", ModeAbsolute, amABS, opASL, 6)
	set(0x1E, "ASL", ModeAbsoluteX, amABX, opASL, 7)

	set(0x90, "BCC", ModeRelative, amREL, opBCC, 2)
	set(0xB0, "BCS", ModeRelative, amREL, opBCS, 2)
	set(0xF0, "BEQ", ModeRelative, amREL, opBEQ, 2)
	set(0x30, "BMI", ModeRelative, amREL, opBMI, 2)
	set(0xD0, "BNE", ModeRelative, amREL, opBNE, 2)
	set(0x10, "BPL", ModeRelative, amREL, opBPL, 2)
	set(0x50, "BVC", ModeRelative, amREL, opBVC, 2)
	set(0x70, "BVS", ModeRelative, amREL, opBVS, 2)

	set(0x24, "BIT", ModeZeroPage, amZP0, opBIT, 3)
	set(0x2C, "BIT", ModeAbsolute, amABS, opBIT, 4)

	set(0x00, "BRK", ModeImplicit, amIMP, opBRK, 7)

	set(0x18, "CLC", ModeImplicit, amIMP, opCLC, 2)
	set(0xD8, "CLD", ModeImplicit, amIMP, opCLD, 2)
	set(0x58, "CLI", ModeImplicit, amIMP, opCLI, 2)
	set(0xB8, "CLV", ModeImplicit, amIMP, opCLV, 2)
	set(0x38, "SEC", ModeImplicit, amIMP, opSEC, 2)
	set(0xF8, "SED", ModeImplicit, amIMP, opSED, 2)
	set(0x78, "SEI", ModeImplicit, amIMP, opSEI, 2)

	set(0xC9, "CMP", ModeImmediate, amIMM, opCMP, 2)
	set(0xC5, "CMP", ModeZeroPage, amZP0, opCMP, 3)
	set(0xD5, "CMP", ModeZeroPageX, amZPX, opCMP, 4)
	set(0xCD, "CMP", ModeAbsolute, amABS, opCMP, 4)
	set(0xDD, "CMP", ModeAbsoluteX, amABX, opCMP, 4)
	set(0xD9, "CMP", ModeAbsoluteY, amABY, opCMP, 4)
	set(0xC1, "CMP", ModeIndirectX, amIZX, opCMP, 6)
	set(0xD1, "CMP", ModeIndirectY, amIZY, opCMP, 5)

	set(0xE0, "CPX", ModeImmediate, amIMM, opCPX, 2)
	set(0xE4, "CPX", ModeZeroPage, amZP0, opCPX, 3)
	set(0xEC, "CPX", ModeAbsolute, amABS, opCPX, 4)

	set(0xC0, "CPY", ModeImmediate, amIMM, opCPY, 2)
	set(0xC4, "CPY", ModeZeroPage, amZP0, opCPY, 3)
	set(0xCC, "CPY", ModeAbsolute, amABS, opCPY, 4)

	set(0xC6, "DEC", ModeZeroPage, amZP0, opDEC, 5)
	set(0xD6, "DEC", ModeZeroPageX, amZPX, opDEC, 6)
	set(0xCE, "DEC", ModeAbsolute, amABS, opDEC, 6)
	set(0xDE, "DEC", ModeAbsoluteX, amABX, opDEC, 7)
	set(0xCA, "DEX", ModeImplicit, amIMP, opDEX, 2)
	set(0x88, "DEY", ModeImplicit, amIMP, opDEY, 2)

	set(0x49, "EOR", ModeImmediate, amIMM, opEOR, 2)
	set(0x45, "EOR", ModeZeroPage, amZP0, opEOR, 3)
	set(0x55, "EOR", ModeZeroPageX, amZPX, opEOR, 4)
	set(0x4D, "EOR", ModeAbsolute, amABS, opEOR, 4)
	set(0x5D, "EOR", ModeAbsoluteX, amABX, opEOR, 4)
	set(0x59, "EOR", ModeAbsoluteY, amABY, opEOR, 4)
	set(0x41, "EOR", ModeIndirectX, amIZX, opEOR, 6)
	set(0x51, "EOR", ModeIndirectY, amIZY, opEOR, 5)

	set(0xE6, "INC", ModeZeroPage, amZP0, opINC, 5)
	set(0xF6, "INC", ModeZeroPageX, amZPX, opINC, 6)
	set(0xEE, "INC", ModeAbsolute, amABS, opINC, 6)
	set(0xFE, "INC", ModeAbsoluteX, amABX, opINC, 7)
	set(0xE8, "INX", ModeImplicit, amIMP, opINX, 2)
	set(0xC8, "INY", ModeImplicit, amIMP, opINY, 2)

	set(0x4C, "JMP", ModeAbsolute, amABS, opJMP, 3)
	set(0x6C, "JMP", ModeIndirect, amIND, opJMP, 5)
	set(0x20, "JSR", ModeAbsolute, amABS, opJSR, 6)

	set(0xA9, "LDA", ModeImmediate, amIMM, opLDA, 2)
	set(0xA5, "LDA", ModeZeroPage, amZP0, opLDA, 3)
	set(0xB5, "LDA", ModeZeroPageX, amZPX, opLDA, 4)
	set(0xAD, "LDA", ModeAbsolute, amABS, opLDA, 4)
	set(0xBD, "LDA", ModeAbsoluteX, amABX, opLDA, 4)
	set(0xB9, "LDA", ModeAbsoluteY, amABY, opLDA, 4)
	set(0xA1, "LDA", ModeIndirectX, amIZX, opLDA, 6)
	set(0xB1, "LDA", ModeIndirectY, amIZY, opLDA, 5)

	set(0xA2, "LDX", ModeImmediate, amIMM, opLDX, 2)
	set(0xA6, "LDX", ModeZeroPage, amZP0, opLDX, 3)
	set(0xB6, "LDX", ModeZeroPageY, amZPY, opLDX, 4)
	set(0xAE, "LDX", ModeAbsolute, amABS, opLDX, 4)
	set(0xBE, "LDX", ModeAbsoluteY, amABY, opLDX, 4)

	set(0xA0, "LDY", ModeImmediate, amIMM, opLDY, 2)
	set(0xA4, "LDY", ModeZeroPage, amZP0, opLDY, 3)
	set(0xB4, "LDY", ModeZeroPageX, amZPX, opLDY, 4)
	set(0xAC, "LDY", ModeAbsolute, amABS, opLDY, 4)
	set(0xBC, "LDY", ModeAbsoluteX, amABX, opLDY, 4)

	set(0x4A, "LSR", ModeAccumulator, amIMP, opLSR, 2)
	set(0x46, "LSR", ModeZeroPage, amZP0, opLSR, 5)
	set(0x56, "LSR", ModeZeroPageX, amZPX, opLSR, 6)
	set(0x4E, "LSR", ModeAbsolute, amABS, opLSR, 6)
	set(0x5E, "LSR", ModeAbsoluteX, amABX, opLSR, 7)

	set(0xEA, "NOP", ModeImplicit, amIMP, opNOP, 2)

	set(0x09, "ORA", ModeImmediate, amIMM, opORA, 2)
	set(0x05, "ORA", ModeZeroPage, amZP0, opORA, 3)
	set(0x15, "ORA", ModeZeroPageX, amZPX, opORA, 4)
	set(0x0D, "ORA", ModeAbsolute, amABS, opORA, 4)
	set(0x1D, "ORA", ModeAbsoluteX, amABX, opORA, 4)
	set(0x19, "ORA", ModeAbsoluteY, amABY, opORA, 4)
	set(0x01, "ORA", ModeIndirectX, amIZX, opORA, 6)
	set(0x11, "ORA", ModeIndirectY, amIZY, opORA, 5)

	set(0x48, "PHA", ModeImplicit, amIMP, opPHA, 3)
	set(0x08, "PHP", ModeImplicit, amIMP, opPHP, 3)
	set(0x68, "PLA", ModeImplicit, amIMP, opPLA, 4)
	set(0x28, "PLP", ModeImplicit, amIMP, opPLP, 4)

	set(0x2A, "ROL", ModeAccumulator, amIMP, opROL, 2)
	set(0x26, "ROL", ModeZeroPage, amZP0, opROL, 5)
	set(0x36, "ROL", ModeZeroPageX, amZPX, opROL, 6)
	set(0x2E, "ROL", ModeAbsolute, amABS, opROL, 6)
	set(0x3E, "ROL", ModeAbsoluteX, amABX, opROL, 7)

	set(0x6A, "ROR", ModeAccumulator, amIMP, opROR, 2)
	set(0x66, "ROR", ModeZeroPage, amZP0, opROR, 5)
	set(0x76, "ROR", ModeZeroPageX, amZPX, opROR, 6)
	set(0x6E, "ROR", ModeAbsolute, amABS, opROR, 6)
	set(0x7E, "ROR", ModeAbsoluteX, amABX, opROR, 7)

	set(0x40, "RTI", ModeImplicit, amIMP, opRTI, 6)
	set(0x60, "RTS", ModeImplicit, amIMP, opRTS, 6)

	set(0xE9, "SBC", ModeImmediate, amIMM, opSBC, 2)
	set(0xE5, "SBC", ModeZeroPage, amZP0, opSBC, 3)
	set(0xF5, "SBC", ModeZeroPageX, amZPX, opSBC, 4)
	set(0xED, "SBC", ModeAbsolute, amABS, opSBC, 4)
	set(0xFD, "SBC", ModeAbsoluteX, amABX, opSBC, 4)
	set(0xF9, "SBC", ModeAbsoluteY, amABY, opSBC, 4)
	set(0xE1, "SBC", ModeIndirectX, amIZX, opSBC, 6)
	set(0xF1, "SBC", ModeIndirectY, amIZY, opSBC, 5)

	set(0x85, "STA", ModeZeroPage, amZP0, opSTA, 3)
	set(0x95, "STA", ModeZeroPageX, amZPX, opSTA, 4)
	set(0x8D, "STA", ModeAbsolute, amABS, opSTA, 4)
	set(0x9D, "STA", ModeAbsoluteX, amABX, opSTA, 5)
	set(0x99, "STA", ModeAbsoluteY, amABY, opSTA, 5)
	set(0x81, "STA", ModeIndirectX, amIZX, opSTA, 6)
	set(0x91, "STA", ModeIndirectY, amIZY, opSTA, 6)

	set(0x86, "STX", ModeZeroPage, amZP0, opSTX, 3)
	set(0x96, "STX", ModeZeroPageY, amZPY, opSTX, 4)
	set(0x8E, "STX", ModeAbsolute, amABS, opSTX, 4)

	set(0x84, "STY", ModeZeroPage, amZP0, opSTY, 3)
	set(0x94, "STY", ModeZeroPageX, amZPX, opSTY, 4)
	set(0x8C, "STY", ModeAbsolute, amABS, opSTY, 4)

	set(0xAA, "TAX", ModeImplicit, amIMP, opTAX, 2)
	set(0xA8, "TAY", ModeImplicit, amIMP, opTAY, 2)
	set(0xBA, "TSX", ModeImplicit, amIMP, opTSX, 2)
	set(0x8A, "TXA", ModeImplicit, amIMP, opTXA, 2)
	set(0x9A, "TXS", ModeImplicit, amIMP, opTXS, 2)
	set(0x98, "TYA", ModeImplicit, amIMP, opTYA, 2)

	// Unofficial NOPs (single-byte, then multi-byte). Several commercial cartridges and most
	// test ROMs execute these; everything else undefined/unofficial is
	// left unimplemented (a logged, skipped opcode via Step).
	for _, op := range []byte{0x1A, 0x3A, 0x5A, 0x7A, 0xDA, 0xFA} {
		set(op, "*NOP", ModeImplicit, amIMP, opNOP, 2)
	}
	for _, op := range []byte{0x80, 0x82, 0x89, 0xC2, 0xE2} {
		set(op, "*NOP", ModeImmediate, amIMM, opNOP, 2)
	}
	for _, op := range []byte{0x04, 0x44, 0x64} {
		set(op, "*NOP", ModeZeroPage, amZP0, opNOP, 3)
	}
	for _, op := range []byte{0x14, 0x34, 0x54, 0x74, 0xD4, 0xF4} {
		set(op, "*NOP", ModeZeroPageX, amZPX, opNOP, 4)
	}
	set(0x0C, "*NOP", ModeAbsolute, amABS, opNOP, 4)
	for _, op := range []byte{0x1C, 0x3C, 0x5C, 0x7C, 0xDC, 0xFC} {
		set(op, "*NOP", ModeAbsoluteX, amABX, opNOP, 4)
	}
}
