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

package memory_test

import (
	"testing"

	"github.com/scubabooga/mgba/curated"
	"github.com/scubabooga/mgba/hardware/memory"
	"github.com/scubabooga/mgba/hardware/memory/bus"
	"github.com/scubabooga/mgba/hardware/memory/memorymap"
	"github.com/scubabooga/mgba/test"
)

func TestEndianness(t *testing.T) {
	mem := memory.NewMemory()

	mem.Store32(0x02000000, 0x11223344, bus.NonSequential)
	test.Equate(t, mem.LoadU8(0x02000000, bus.NonSequential), 0x44)
	test.Equate(t, mem.LoadU8(0x02000003, bus.NonSequential), 0x11)
	test.Equate(t, mem.LoadU16(0x02000002, bus.NonSequential), 0x1122)
	test.Equate(t, mem.Load32(0x02000000, bus.NonSequential), 0x11223344)

	// signed variants sign extend
	mem.Store8(0x03000000, 0x80, bus.NonSequential)
	test.Equate(t, int(mem.Load8(0x03000000, bus.NonSequential)), -128)
	mem.Store16(0x03000002, 0xff00, bus.NonSequential)
	test.Equate(t, int(mem.Load16(0x03000002, bus.NonSequential)), -256)
}

func TestMirroring(t *testing.T) {
	mem := memory.NewMemory()

	// working RAM mirrors in 256k steps
	mem.Store8(0x02000000, 0xaa, bus.NonSequential)
	test.Equate(t, mem.LoadU8(0x02040000, bus.NonSequential), 0xaa)
	test.Equate(t, mem.LoadU8(0x02fc0000, bus.NonSequential), 0xaa)

	// VRAM upper 32k of each 128k step folds back
	mem.Store8(0x06010000, 0xbb, bus.NonSequential)
	test.Equate(t, mem.LoadU8(0x06018000, bus.NonSequential), 0xbb)
}

func TestReadOnly(t *testing.T) {
	mem := memory.NewMemory()

	bios := make([]uint8, memorymap.SizeBIOS)
	bios[0] = 0xc3
	err := mem.AttachBIOS(bios)
	test.ExpectedSuccess(t, err)

	mem.Store8(0x00000000, 0xff, bus.NonSequential)
	test.Equate(t, mem.LoadU8(0x00000000, bus.NonSequential), 0xc3)

	// reads beyond the BIOS ROM are open bus, not mirrored
	test.Equate(t, mem.LoadU8(0x00004000, bus.NonSequential), 0x00)
}

func TestAttachErrors(t *testing.T) {
	mem := memory.NewMemory()

	err := mem.AttachBIOS(make([]uint8, 100))
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, memory.WrongBIOSSize), true)
}

func TestUnmapped(t *testing.T) {
	mem := memory.NewMemory()

	// stores to unmapped areas are dropped, loads return the open bus value
	mem.Store32(0x01000000, 0xdeadbeef, bus.NonSequential)
	test.Equate(t, mem.Load32(0x01000000, bus.NonSequential), 0)

	// the gamepak area is read-only even when a cartridge is attached
	err := mem.AttachCart([]uint8{0x01, 0x02, 0x03, 0x04})
	test.ExpectedSuccess(t, err)
	mem.Store8(0x08000000, 0xff, bus.NonSequential)
	test.Equate(t, mem.LoadU8(0x08000000, bus.NonSequential), 0x01)

	// all three wait-state regions mirror the ROM
	test.Equate(t, mem.LoadU8(0x0a000001, bus.NonSequential), 0x02)
	test.Equate(t, mem.LoadU8(0x0c000002, bus.NonSequential), 0x03)
}
