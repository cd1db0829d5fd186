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

package bios

import (
	"github.com/scubabooga/mgba/hardware/memory/bus"
	"github.com/scubabooga/mgba/hardware/memory/memorymap"
	"github.com/scubabooga/mgba/logger"
)

// Word sums of the BIOS images this package knows about, as computed by
// Checksum(). Useful for identifying which image has been attached.
const (
	ChecksumGBA = uint32(0xbaae187f)
	ChecksumDS  = uint32(0xbaae1880)
)

// CPU is the capability the BIOS services require of the host processor. It
// is implemented by the cpu package but any implementation will do, most
// obviously for testing purposes.
type CPU interface {
	// the general purpose register file, indexed 0 to 15
	Reg(reg int) uint32
	SetReg(reg int, value uint32)

	// the memory bus as seen by the processor
	Bus() bus.CPUBus

	// RaiseSWI synthesises a real SWI exception on the processor. used when
	// the full-BIOS flag is set and for services that are not emulated
	RaiseSWI()

	// Halt the processor until the next interrupt request
	Halt()

	// when FullBIOS is true every SWI is serviced by the attached BIOS ROM
	FullBIOS() bool

	// the attached BIOS ROM image, for the checksum service
	BIOS() []uint8
}

// log tags used by this package
const (
	logSwi       = "SWI"
	logStub      = "SWI: stub"
	logGameError = "SWI: game error"
)

func registerRamReset(cpu CPU) {
	logger.Logf(logger.Allow, logStub, "RegisterRamReset unimplemented (r0: %08x)", cpu.Reg(0))
}

// Swi16 services the SWI instruction with the given 8-bit immediate.
func Swi16(cpu CPU, immediate int) {
	logger.Logf(logger.Allow, logSwi, "%02x r0: %08x r1: %08x r2: %08x r3: %08x",
		immediate, cpu.Reg(0), cpu.Reg(1), cpu.Reg(2), cpu.Reg(3))

	if cpu.FullBIOS() {
		cpu.RaiseSWI()
		return
	}

	switch immediate {
	case 0x01:
		registerRamReset(cpu)
	case 0x02:
		cpu.Halt()
	case 0x04, 0x05:
		// IntrWait and VBlankIntrWait are serviced by the real BIOS code so
		// that the wait loop interacts correctly with the interrupt handler
		cpu.RaiseSWI()
	case 0x06:
		div(cpu, int32(cpu.Reg(0)), int32(cpu.Reg(1)))
	case 0x07:
		div(cpu, int32(cpu.Reg(1)), int32(cpu.Reg(0)))
	case 0x08:
		cpu.SetReg(0, sqrt(cpu.Reg(0)))
	case 0x0a:
		cpu.SetReg(0, arcTan2(cpu.Reg(0), cpu.Reg(1)))
	case 0x0b, 0x0c:
		// CpuSet and CpuFastSet
		cpu.RaiseSWI()
	case 0x0d:
		cpu.SetReg(0, Checksum(cpu.BIOS(), memorymap.SizeBIOS))

		// the real BIOS checksum routine runs on into BgAffineSet. games do
		// not rely on it but the fallthrough is observable so it is kept
		fallthrough
	case 0x0e:
		bgAffineSet(cpu)
	case 0x0f:
		objAffineSet(cpu)
	case 0x11:
		decompressPrecheck(cpu, "LZ77")
		unLz77(cpu, 1)
	case 0x12:
		decompressPrecheck(cpu, "LZ77")
		unLz77(cpu, 2)
	case 0x13:
		decompressPrecheck(cpu, "Huffman")
		unHuffman(cpu)
	case 0x14:
		decompressPrecheck(cpu, "RL")
		unRl(cpu, 1)
	case 0x15:
		decompressPrecheck(cpu, "RL")
		unRl(cpu, 2)
	case 0x16:
		decompressPrecheck(cpu, "UnFilter")
		unFilter(cpu, 1, 1)
	case 0x17:
		decompressPrecheck(cpu, "UnFilter")
		unFilter(cpu, 1, 2)
	case 0x18:
		decompressPrecheck(cpu, "UnFilter")
		unFilter(cpu, 2, 2)
	case 0x1f:
		midiKey2Freq(cpu)
	default:
		logger.Logf(logger.Allow, logStub, "stub software interrupt: %02x", immediate)
	}
}

// Swi32 services the SWI instruction as encoded in ARM state, where the
// immediate occupies the upper byte of the 24-bit comment field.
func Swi32(cpu CPU, immediate int) {
	Swi16(cpu, immediate>>16)
}

// Checksum returns the 32-bit word sum over the first size bytes of the
// given memory. Words are read little-endian.
func Checksum(mem []uint8, size int) uint32 {
	if size > len(mem) {
		size = len(mem)
	}

	var sum uint32
	for i := 0; i+4 <= size; i += 4 {
		sum += uint32(mem[i]) | uint32(mem[i+1])<<8 |
			uint32(mem[i+2])<<16 | uint32(mem[i+3])<<24
	}
	return sum
}

// decompressPrecheck validates the source and destination registers of the
// decompression services. bad arguments are logged but the decode is not
// blocked; games depend on the permissiveness of the real hardware.
func decompressPrecheck(cpu CPU, name string) {
	if cpu.Reg(0) < memorymap.OriginWorkingRAM {
		logger.Logf(logger.Allow, logGameError, "bad %s source %08x", name, cpu.Reg(0))
	}

	switch memorymap.AreaOf(cpu.Reg(1)) {
	case memorymap.WorkingRAM, memorymap.WorkingIRAM, memorymap.VRAM:
	default:
		logger.Logf(logger.Allow, logGameError, "bad %s destination %08x", name, cpu.Reg(1))
	}
}
