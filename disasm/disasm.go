// Package disasm formats 6502 instructions for diagnostic output: address,
// raw bytes, mnemonic, addressing-mode operand, and (for a live trace) the
// register snapshot at the point the instruction was fetched. It reads
// mode and mnemonic information directly off the CPU's own dispatch table
// via cpu.CPU.Lookup, so the disassembly can never disagree with how the
// CPU actually decodes an opcode.
package disasm

import (
	"fmt"
	"strings"

	"github.com/sixfiveoh/nescore/cpu"
)

// Reader is the read-only slice of a Bus that disassembly needs: it must
// never have write side effects, since disassembling must not perturb
// memory-mapped registers like PPUDATA.
type Reader interface {
	Read(addr uint16) byte
}

// operandLen returns how many bytes follow the opcode for the given mode.
func operandLen(mode cpu.Mode) int {
	switch mode {
	case cpu.ModeImplicit, cpu.ModeAccumulator:
		return 0
	case cpu.ModeAbsolute, cpu.ModeAbsoluteX, cpu.ModeAbsoluteY, cpu.ModeIndirect:
		return 2
	default:
		return 1
	}
}

// operandString renders the operand for the given addressing mode
// (#$nn, $nn, $nnnn,X, ($nn),Y, ...) given the raw operand bytes already
// read from just past the opcode.
func operandString(mode cpu.Mode, operand []byte, addr uint16) string {
	word := func() uint16 { return uint16(operand[0]) | uint16(operand[1])<<8 }
	switch mode {
	case cpu.ModeImplicit:
		return ""
	case cpu.ModeAccumulator:
		return "A"
	case cpu.ModeImmediate:
		return fmt.Sprintf("#$%02X", operand[0])
	case cpu.ModeZeroPage:
		return fmt.Sprintf("$%02X", operand[0])
	case cpu.ModeZeroPageX:
		return fmt.Sprintf("$%02X,X", operand[0])
	case cpu.ModeZeroPageY:
		return fmt.Sprintf("$%02X,Y", operand[0])
	case cpu.ModeAbsolute:
		return fmt.Sprintf("$%04X", word())
	case cpu.ModeAbsoluteX:
		return fmt.Sprintf("$%04X,X", word())
	case cpu.ModeAbsoluteY:
		return fmt.Sprintf("$%04X,Y", word())
	case cpu.ModeIndirect:
		return fmt.Sprintf("($%04X)", word())
	case cpu.ModeIndirectX:
		return fmt.Sprintf("($%02X,X)", operand[0])
	case cpu.ModeIndirectY:
		return fmt.Sprintf("($%02X),Y", operand[0])
	case cpu.ModeRelative:
		off := int8(operand[0])
		target := uint16(int32(addr) + 2 + int32(off))
		return fmt.Sprintf("$%04X", target)
	default:
		return ""
	}
}

// Instruction is one decoded, formatted instruction: its address, the raw
// bytes it occupies, its mnemonic, and its addressing-mode operand string.
type Instruction struct {
	Addr     uint16
	Raw      []byte
	Mnemonic string
	Operand  string
}

// String renders the instruction as "address  raw_bytes  mnemonic  operand".
func (i Instruction) String() string {
	hex := make([]string, len(i.Raw))
	for n, b := range i.Raw {
		hex[n] = fmt.Sprintf("%02X", b)
	}
	return fmt.Sprintf("%04X  %-8s %-4s %s", i.Addr, strings.Join(hex, " "), i.Mnemonic, i.Operand)
}

// Decode reads and formats the single instruction at addr without executing
// it, returning the decoded instruction and the address of the next one.
// unknown is true when the opcode isn't populated in the dispatch table;
// Decode still advances by one byte in that case so a caller scanning a
// range makes forward progress.
func Decode(r Reader, c *cpu.CPU, addr uint16) (inst Instruction, next uint16, unknown bool) {
	opcode := r.Read(addr)
	entry := c.Lookup(opcode)

	if entry.Execute == nil {
		return Instruction{Addr: addr, Raw: []byte{opcode}, Mnemonic: "???"}, addr + 1, true
	}

	n := operandLen(entry.Mode)
	raw := make([]byte, 1+n)
	raw[0] = opcode
	operand := make([]byte, n)
	for i := 0; i < n; i++ {
		operand[i] = r.Read(addr + 1 + uint16(i))
		raw[1+i] = operand[i]
	}

	return Instruction{
		Addr:     addr,
		Raw:      raw,
		Mnemonic: entry.Name,
		Operand:  operandString(entry.Mode, operand, addr),
	}, addr + uint16(len(raw)), false
}

// Range decodes every instruction from start to end inclusive, in address
// order, building a full-program listing. Addresses that land inside a
// previous multi-byte instruction's operand are not separately decoded,
// since execution never starts there.
func Range(r Reader, c *cpu.CPU, start, end uint16) []Instruction {
	var out []Instruction
	addr := uint32(start)
	for addr <= uint32(end) {
		inst, next, _ := Decode(r, c, uint16(addr))
		out = append(out, inst)
		if next <= uint16(addr) {
			break // 64KiB wraparound guard
		}
		addr = uint32(next)
	}
	return out
}

// TraceLine formats one line of a live execution trace: the decoded
// instruction followed by the register snapshot as it stood immediately
// before the instruction executed.
func TraceLine(r Reader, c *cpu.CPU, addr uint16, snap cpu.State) string {
	inst, _, _ := Decode(r, c, addr)
	return fmt.Sprintf("%s  A=%02X X=%02X Y=%02X flags=%02X",
		inst.String(), snap.A, snap.X, snap.Y, snap.Flags)
}
