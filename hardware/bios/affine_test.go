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
	"testing"

	"github.com/scubabooga/mgba/hardware"
	"github.com/scubabooga/mgba/test"
)

// bgAffineInput pokes a 20 byte BgAffineSet input block.
func bgAffineInput(gba *hardware.GBA, address uint32, ox int32, oy int32, cx int16, cy int16, sx uint16, sy uint16, theta uint16) {
	gba.Mem.Store32(address, uint32(ox), 0)
	gba.Mem.Store32(address+4, uint32(oy), 0)
	gba.Mem.Store16(address+8, uint16(cx), 0)
	gba.Mem.Store16(address+10, uint16(cy), 0)
	gba.Mem.Store16(address+12, sx, 0)
	gba.Mem.Store16(address+14, sy, 0)
	gba.Mem.Store16(address+16, theta, 0)
}

func TestBgAffineIdentity(t *testing.T) {
	gba := hardware.NewGBA()

	bgAffineInput(gba, srcAddr, 0, 0, 0, 0, 0x0100, 0x0100, 0)
	gba.CPU.SetReg(0, srcAddr)
	gba.CPU.SetReg(1, destAddr)
	gba.CPU.SetReg(2, 1)
	gba.Swi(0x0e)

	test.Equate(t, gba.Mem.LoadU16(destAddr, 0), 0x0100)
	test.Equate(t, gba.Mem.LoadU16(destAddr+2, 0), 0)
	test.Equate(t, gba.Mem.LoadU16(destAddr+4, 0), 0)
	test.Equate(t, gba.Mem.LoadU16(destAddr+6, 0), 0x0100)
	test.Equate(t, gba.Mem.Load32(destAddr+8, 0), 0)
	test.Equate(t, gba.Mem.Load32(destAddr+12, 0), 0)
}

func TestBgAffineTranslation(t *testing.T) {
	gba := hardware.NewGBA()

	// origin (5.0, 6.0) with the display centred on (3, 4) and no scaling
	// or rotation: the translation is simply origin minus centre
	bgAffineInput(gba, srcAddr, 5<<8, 6<<8, 3, 4, 0x0100, 0x0100, 0)
	gba.CPU.SetReg(0, srcAddr)
	gba.CPU.SetReg(1, destAddr)
	gba.CPU.SetReg(2, 1)
	gba.Swi(0x0e)

	test.Equate(t, gba.Mem.Load32(destAddr+8, 0), 2<<8)
	test.Equate(t, gba.Mem.Load32(destAddr+12, 0), 2<<8)
}

func TestBgAffineRotation(t *testing.T) {
	gba := hardware.NewGBA()

	// a quarter turn is 64 in the high byte of the theta halfword
	bgAffineInput(gba, srcAddr, 0, 0, 0, 0, 0x0100, 0x0100, 64<<8)
	gba.CPU.SetReg(0, srcAddr)
	gba.CPU.SetReg(1, destAddr)
	gba.CPU.SetReg(2, 1)
	gba.Swi(0x0e)

	test.Equate(t, gba.Mem.LoadU16(destAddr, 0), 0)
	test.Equate(t, gba.Mem.LoadU16(destAddr+2, 0), 0xff00)
	test.Equate(t, gba.Mem.LoadU16(destAddr+4, 0), 0x0100)
	test.Equate(t, gba.Mem.LoadU16(destAddr+6, 0), 0)
}

func TestBgAffineMultiple(t *testing.T) {
	gba := hardware.NewGBA()

	// two input blocks produce two output blocks, 20 and 16 bytes apart
	bgAffineInput(gba, srcAddr, 0, 0, 0, 0, 0x0100, 0x0100, 0)
	bgAffineInput(gba, srcAddr+20, 0, 0, 0, 0, 0x0200, 0x0200, 0)
	gba.CPU.SetReg(0, srcAddr)
	gba.CPU.SetReg(1, destAddr)
	gba.CPU.SetReg(2, 2)
	gba.Swi(0x0e)

	test.Equate(t, gba.Mem.LoadU16(destAddr, 0), 0x0100)
	test.Equate(t, gba.Mem.LoadU16(destAddr+16, 0), 0x0200)
	test.Equate(t, gba.Mem.LoadU16(destAddr+22, 0), 0x0200)
}

func TestObjAffine(t *testing.T) {
	gba := hardware.NewGBA()

	// identity at the OAM stride: cells are written every 8 bytes
	gba.Mem.Store16(srcAddr, 0x0100, 0)
	gba.Mem.Store16(srcAddr+2, 0x0100, 0)
	gba.Mem.Store16(srcAddr+4, 0, 0)
	gba.CPU.SetReg(0, srcAddr)
	gba.CPU.SetReg(1, destAddr)
	gba.CPU.SetReg(2, 1)
	gba.CPU.SetReg(3, 8)
	gba.Swi(0x0f)

	test.Equate(t, gba.Mem.LoadU16(destAddr, 0), 0x0100)
	test.Equate(t, gba.Mem.LoadU16(destAddr+8, 0), 0)
	test.Equate(t, gba.Mem.LoadU16(destAddr+16, 0), 0)
	test.Equate(t, gba.Mem.LoadU16(destAddr+24, 0), 0x0100)
}

func TestObjAffinePacked(t *testing.T) {
	gba := hardware.NewGBA()

	// a stride of 2 packs the four cells contiguously. scale by half
	gba.Mem.Store16(srcAddr, 0x0080, 0)
	gba.Mem.Store16(srcAddr+2, 0x0080, 0)
	gba.Mem.Store16(srcAddr+4, 0, 0)
	gba.CPU.SetReg(0, srcAddr)
	gba.CPU.SetReg(1, destAddr)
	gba.CPU.SetReg(2, 1)
	gba.CPU.SetReg(3, 2)
	gba.Swi(0x0f)

	test.Equate(t, gba.Mem.LoadU16(destAddr, 0), 0x0080)
	test.Equate(t, gba.Mem.LoadU16(destAddr+2, 0), 0)
	test.Equate(t, gba.Mem.LoadU16(destAddr+4, 0), 0)
	test.Equate(t, gba.Mem.LoadU16(destAddr+6, 0), 0x0080)
}
