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

package memory

import (
	"github.com/scubabooga/mgba/curated"
	"github.com/scubabooga/mgba/hardware/memory/bus"
	"github.com/scubabooga/mgba/hardware/memory/memorymap"
)

// sentinal error messages
const (
	WrongBIOSSize = "memory: BIOS image is %d bytes (expected %d)"
	CartTooLarge  = "memory: cartridge image is %d bytes (maximum %d)"
)

// the value returned for reads of unmapped addresses. the real machine
// returns the last value on the bus but reproducing that requires knowledge
// of the prefetch pipeline, which lives with the CPU interpreter.
const openBus = 0x00

// Memory is the GBA memory system. It implements the bus.CPUBus and
// bus.DebuggerBus interfaces.
type Memory struct {
	BIOS  []uint8
	WRAM  []uint8
	IWRAM []uint8

	Palette []uint8
	VRAM    []uint8
	OAM     []uint8

	Cart []uint8
	SRAM []uint8

	// when FullBIOS is set the SWI dispatcher delegates to the real BIOS ROM
	// rather than emulating its services
	FullBIOS bool
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The BIOS and cartridge areas are empty until attached.
func NewMemory() *Memory {
	return &Memory{
		WRAM:    make([]uint8, memorymap.SizeWorkingRAM),
		IWRAM:   make([]uint8, memorymap.SizeWorkingIRAM),
		Palette: make([]uint8, memorymap.SizePalette),
		VRAM:    make([]uint8, memorymap.SizeVRAM),
		OAM:     make([]uint8, memorymap.SizeOAM),
		SRAM:    make([]uint8, 0x10000),
	}
}

// AttachBIOS copies the BIOS ROM image into memory. The image must be exactly
// the size of the BIOS area.
func (mem *Memory) AttachBIOS(data []uint8) error {
	if len(data) != memorymap.SizeBIOS {
		return curated.Errorf(WrongBIOSSize, len(data), memorymap.SizeBIOS)
	}
	mem.BIOS = make([]uint8, memorymap.SizeBIOS)
	copy(mem.BIOS, data)
	return nil
}

// AttachCart copies a cartridge ROM image into memory.
func (mem *Memory) AttachCart(data []uint8) error {
	if len(data) > memorymap.SizeCart {
		return curated.Errorf(CartTooLarge, len(data), memorymap.SizeCart)
	}
	mem.Cart = make([]uint8, len(data))
	copy(mem.Cart, data)
	return nil
}

// read8 is the single point through which all bus reads pass.
func (mem *Memory) read8(address uint32) uint8 {
	offset, area, ok := memorymap.MapAddress(address)
	if !ok {
		return openBus
	}

	switch area {
	case memorymap.BIOS:
		if int(offset) < len(mem.BIOS) {
			return mem.BIOS[offset]
		}
	case memorymap.WorkingRAM:
		return mem.WRAM[offset]
	case memorymap.WorkingIRAM:
		return mem.IWRAM[offset]
	case memorymap.IO:
		// memory mapped I/O belongs to the peripherals, none of which are
		// present in this package
	case memorymap.Palette:
		return mem.Palette[offset]
	case memorymap.VRAM:
		return mem.VRAM[offset]
	case memorymap.OAM:
		return mem.OAM[offset]
	case memorymap.Cart0, memorymap.Cart0Ex, memorymap.Cart1,
		memorymap.Cart1Ex, memorymap.Cart2, memorymap.Cart2Ex:
		if int(offset) < len(mem.Cart) {
			return mem.Cart[offset]
		}
	case memorymap.CartSRAM:
		return mem.SRAM[offset]
	}

	return openBus
}

// write8 is the single point through which all bus writes pass. writes to
// read-only or unmapped addresses are dropped.
func (mem *Memory) write8(address uint32, value uint8) {
	offset, area, ok := memorymap.MapAddress(address)
	if !ok {
		return
	}

	switch area {
	case memorymap.WorkingRAM:
		mem.WRAM[offset] = value
	case memorymap.WorkingIRAM:
		mem.IWRAM[offset] = value
	case memorymap.Palette:
		mem.Palette[offset] = value
	case memorymap.VRAM:
		mem.VRAM[offset] = value
	case memorymap.OAM:
		mem.OAM[offset] = value
	case memorymap.CartSRAM:
		mem.SRAM[offset] = value
	}
}

// Load8 implements the bus.CPUBus interface.
func (mem *Memory) Load8(address uint32, _ bus.Access) int8 {
	return int8(mem.read8(address))
}

// LoadU8 implements the bus.CPUBus interface.
func (mem *Memory) LoadU8(address uint32, _ bus.Access) uint8 {
	return mem.read8(address)
}

// Load16 implements the bus.CPUBus interface.
func (mem *Memory) Load16(address uint32, access bus.Access) int16 {
	return int16(mem.LoadU16(address, access))
}

// LoadU16 implements the bus.CPUBus interface.
func (mem *Memory) LoadU16(address uint32, _ bus.Access) uint16 {
	return uint16(mem.read8(address)) | uint16(mem.read8(address+1))<<8
}

// Load32 implements the bus.CPUBus interface.
func (mem *Memory) Load32(address uint32, _ bus.Access) uint32 {
	return uint32(mem.read8(address)) | uint32(mem.read8(address+1))<<8 |
		uint32(mem.read8(address+2))<<16 | uint32(mem.read8(address+3))<<24
}

// Store8 implements the bus.CPUBus interface.
func (mem *Memory) Store8(address uint32, value uint8, _ bus.Access) {
	mem.write8(address, value)
}

// Store16 implements the bus.CPUBus interface.
func (mem *Memory) Store16(address uint32, value uint16, _ bus.Access) {
	mem.write8(address, uint8(value))
	mem.write8(address+1, uint8(value>>8))
}

// Store32 implements the bus.CPUBus interface.
func (mem *Memory) Store32(address uint32, value uint32, _ bus.Access) {
	mem.write8(address, uint8(value))
	mem.write8(address+1, uint8(value>>8))
	mem.write8(address+2, uint8(value>>16))
	mem.write8(address+3, uint8(value>>24))
}

// Peek implements the bus.DebuggerBus interface.
func (mem *Memory) Peek(address uint32) uint8 {
	return mem.read8(address)
}

// Poke implements the bus.DebuggerBus interface.
func (mem *Memory) Poke(address uint32, value uint8) {
	mem.write8(address, value)
}
