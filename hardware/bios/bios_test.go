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

package bios_test

import (
	"strings"
	"testing"

	"github.com/scubabooga/mgba/hardware"
	"github.com/scubabooga/mgba/hardware/bios"
	"github.com/scubabooga/mgba/hardware/cpu"
	"github.com/scubabooga/mgba/hardware/memory"
	"github.com/scubabooga/mgba/hardware/memory/memorymap"
	"github.com/scubabooga/mgba/logger"
	"github.com/scubabooga/mgba/test"
)

// addresses used throughout the package tests
const (
	srcAddr  = uint32(0x02000000)
	destAddr = uint32(0x02010000)
)

func poke(mem *memory.Memory, address uint32, data []uint8) {
	for i, v := range data {
		mem.Poke(address+uint32(i), v)
	}
}

func peek(mem *memory.Memory, address uint32, n int) []uint8 {
	data := make([]uint8, n)
	for i := range data {
		data[i] = mem.Peek(address + uint32(i))
	}
	return data
}

// logContains writes out the central logger looking for a substring. the
// entries are left in the log.
func logContains(s string) bool {
	tw := &test.CompareWriter{}
	logger.Write(tw)
	return strings.Contains(tw.String(), s)
}

func TestFullBIOS(t *testing.T) {
	gba := hardware.NewGBA()
	gba.Mem.FullBIOS = true

	gba.CPU.SetReg(0, 100)
	gba.CPU.SetReg(1, 7)
	gba.CPU.SetReg(cpu.PC, 0x08000204)

	gba.Swi(0x06)

	// the division was not emulated; a real SWI exception was taken instead
	test.Equate(t, gba.CPU.Reg(0), 100)
	test.Equate(t, gba.CPU.Reg(1), 7)
	test.Equate(t, gba.CPU.Reg(cpu.PC), cpu.VectorSWI)
	test.Equate(t, gba.CPU.Mode(), cpu.ModeSupervisor)
}

func TestNotEmulated(t *testing.T) {
	for _, immediate := range []int{0x04, 0x05, 0x0b, 0x0c} {
		gba := hardware.NewGBA()
		gba.CPU.SetReg(cpu.PC, 0x08000100)
		gba.Swi(immediate)
		test.Equate(t, gba.CPU.Reg(cpu.PC), cpu.VectorSWI)
	}
}

func TestHalt(t *testing.T) {
	gba := hardware.NewGBA()
	test.Equate(t, gba.CPU.Halted, false)
	gba.Swi(0x02)
	test.Equate(t, gba.CPU.Halted, true)
}

func TestStub(t *testing.T) {
	gba := hardware.NewGBA()
	logger.Clear()
	gba.CPU.SetReg(0, 0xcafe)
	gba.Swi(0x42)
	test.Equate(t, gba.CPU.Reg(0), 0xcafe)
	test.Equate(t, logContains("stub software interrupt: 42"), true)
}

func TestChecksum(t *testing.T) {
	// two words of 1 and one word of 2
	mem := []uint8{
		0x01, 0x00, 0x00, 0x00,
		0x01, 0x00, 0x00, 0x00,
		0x02, 0x00, 0x00, 0x00,
	}
	test.Equate(t, bios.Checksum(mem, len(mem)), 4)

	// word sums wrap
	mem = []uint8{
		0xff, 0xff, 0xff, 0xff,
		0x02, 0x00, 0x00, 0x00,
	}
	test.Equate(t, bios.Checksum(mem, len(mem)), 1)
}

func TestChecksumSwi(t *testing.T) {
	gba := hardware.NewGBA()

	img := make([]uint8, memorymap.SizeBIOS)
	img[0] = 0x34
	img[1] = 0x12
	img[4] = 0x01
	err := gba.AttachBIOS(img)
	test.ExpectedSuccess(t, err)

	// r2 of zero means the BgAffineSet the checksum handler falls through
	// into does nothing
	gba.CPU.SetReg(2, 0)
	gba.Swi(0x0d)
	test.Equate(t, gba.CPU.Reg(0), 0x1235)
}

func TestSwi32(t *testing.T) {
	gba := hardware.NewGBA()
	gba.CPU.SetReg(0, 100)
	gba.CPU.SetReg(1, 7)
	bios.Swi32(gba.CPU, 0x060000)
	test.Equate(t, gba.CPU.Reg(0), 14)
	test.Equate(t, gba.CPU.Reg(1), 2)
}
