// This file is part of mgba.
//
// mgba is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// mgba is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with mgba.  If not, see <https://www.gnu.org/licenses/>.

package cpu

import (
	"github.com/scubabooga/mgba/hardware/memory"
	"github.com/scubabooga/mgba/hardware/memory/bus"
)

// CPSR flag bits.
const (
	FlagN = uint32(1) << 31
	FlagZ = uint32(1) << 30
	FlagC = uint32(1) << 29
	FlagV = uint32(1) << 28
	FlagI = uint32(1) << 7
	FlagF = uint32(1) << 6
	FlagT = uint32(1) << 5
)

// MaskMode isolates the processor mode bits of the CPSR.
const MaskMode = uint32(0x1f)

// The ARM7TDMI processor modes.
const (
	ModeUser       = uint32(0x10)
	ModeFIQ        = uint32(0x11)
	ModeIRQ        = uint32(0x12)
	ModeSupervisor = uint32(0x13)
	ModeAbort      = uint32(0x17)
	ModeUndefined  = uint32(0x1b)
	ModeSystem     = uint32(0x1f)
)

// Exception vectors.
const (
	VectorReset = uint32(0x00)
	VectorSWI   = uint32(0x08)
	VectorIRQ   = uint32(0x18)
)

// named registers
const (
	SP = 13
	LR = 14
	PC = 15
)

// bank indices for the modes with private registers
const (
	bankFIQ = iota
	bankIRQ
	bankSupervisor
	bankAbort
	bankUndefined
	numBanks
)

// CPU is the ARM7TDMI processor state as seen by the rest of the emulation.
// Instruction decoding and execution is not handled here; the type exists to
// give the BIOS and any debugging tool a register file, the memory bus and
// the exception entry mechanism.
type CPU struct {
	Mem *memory.Memory

	// the register file for the current mode. registers for other modes are
	// held in the bank arrays and swapped on a mode change
	reg [16]uint32

	CPSR uint32
	SPSR [numBanks]uint32

	// banked r13/r14 for the privileged modes. index with bank*
	bankedReg [numBanks][2]uint32

	// r13/r14 as seen by user and system mode while a privileged mode is
	// current
	userReg [2]uint32

	// Halted is set by the BIOS Halt service. the CPU stays halted until an
	// interrupt is requested
	Halted bool
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU(mem *memory.Memory) *CPU {
	c := &CPU{Mem: mem}
	c.Reset()
	return c
}

// Reset the CPU to the state expected by a gamepak entry point: system mode
// with the stack pointers the real BIOS leaves behind.
func (c *CPU) Reset() {
	c.reg = [16]uint32{}
	c.bankedReg = [numBanks][2]uint32{}
	c.SPSR = [numBanks]uint32{}
	c.reg[SP] = 0x03007f00
	c.bankedReg[bankIRQ][0] = 0x03007fa0
	c.bankedReg[bankSupervisor][0] = 0x03007fe0
	c.reg[PC] = 0x08000000
	c.CPSR = ModeSystem
	c.Halted = false
}

// Mode returns the current processor mode.
func (c *CPU) Mode() uint32 {
	return c.CPSR & MaskMode
}

// bankOf maps a mode to a bank index. user and system mode share the
// unbanked registers and return false.
func bankOf(mode uint32) (int, bool) {
	switch mode {
	case ModeFIQ:
		return bankFIQ, true
	case ModeIRQ:
		return bankIRQ, true
	case ModeSupervisor:
		return bankSupervisor, true
	case ModeAbort:
		return bankAbort, true
	case ModeUndefined:
		return bankUndefined, true
	}
	return 0, false
}

// SetMode changes the processor mode, swapping the banked registers in and
// out as required.
func (c *CPU) SetMode(mode uint32) {
	oldMode := c.Mode()
	if oldMode == mode {
		return
	}

	// stash r13/r14 of the outgoing mode
	if b, ok := bankOf(oldMode); ok {
		c.bankedReg[b][0] = c.reg[SP]
		c.bankedReg[b][1] = c.reg[LR]
	} else {
		c.userReg[0] = c.reg[SP]
		c.userReg[1] = c.reg[LR]
	}

	// retrieve r13/r14 of the incoming mode
	if b, ok := bankOf(mode); ok {
		c.reg[SP] = c.bankedReg[b][0]
		c.reg[LR] = c.bankedReg[b][1]
	} else {
		c.reg[SP] = c.userReg[0]
		c.reg[LR] = c.userReg[1]
	}

	c.CPSR = (c.CPSR &^ MaskMode) | (mode & MaskMode)
}

// Reg returns the value of the numbered register in the current mode.
func (c *CPU) Reg(reg int) uint32 {
	return c.reg[reg&0xf]
}

// SetReg sets the value of the numbered register in the current mode.
func (c *CPU) SetReg(reg int, value uint32) {
	c.reg[reg&0xf] = value
}

// Bus returns the memory bus the CPU is attached to.
func (c *CPU) Bus() bus.CPUBus {
	return c.Mem
}

// RaiseSWI performs the architectural entry into the software interrupt
// exception: supervisor mode, interrupts disabled, return address in the
// banked link register and execution resumed at the SWI vector.
func (c *CPU) RaiseSWI() {
	cpsr := c.CPSR
	c.SetMode(ModeSupervisor)
	c.SPSR[bankSupervisor] = cpsr
	c.reg[LR] = c.reg[PC]
	c.CPSR |= FlagI
	c.CPSR &^= FlagT
	c.reg[PC] = VectorSWI
}

// Halt the CPU until the next interrupt request.
func (c *CPU) Halt() {
	c.Halted = true
}

// FullBIOS returns true if SWI instructions should be serviced by the real
// BIOS ROM rather than emulated.
func (c *CPU) FullBIOS() bool {
	return c.Mem.FullBIOS
}

// BIOS returns the attached BIOS ROM image.
func (c *CPU) BIOS() []uint8 {
	return c.Mem.BIOS
}
