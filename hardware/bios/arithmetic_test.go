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

func TestDiv(t *testing.T) {
	gba := hardware.NewGBA()

	gba.CPU.SetReg(0, 100)
	gba.CPU.SetReg(1, 7)
	gba.Swi(0x06)
	test.Equate(t, gba.CPU.Reg(0), 14)
	test.Equate(t, gba.CPU.Reg(1), 2)
	test.Equate(t, gba.CPU.Reg(3), 14)

	// quotient truncates toward zero and the remainder takes the sign of
	// the numerator
	negHundred := int32(-100)
	gba.CPU.SetReg(0, uint32(negHundred))
	gba.CPU.SetReg(1, 7)
	gba.Swi(0x06)
	test.Equate(t, int32(gba.CPU.Reg(0)), int32(-14))
	test.Equate(t, int32(gba.CPU.Reg(1)), int32(-2))
	test.Equate(t, gba.CPU.Reg(3), 14)

	// the division identity holds: q*d + r == n
	for _, n := range []int32{0, 1, -1, 99, -99, 3000000} {
		for _, d := range []int32{1, -1, 3, -7, 256} {
			gba.CPU.SetReg(0, uint32(n))
			gba.CPU.SetReg(1, uint32(d))
			gba.Swi(0x06)
			q := int32(gba.CPU.Reg(0))
			r := int32(gba.CPU.Reg(1))
			test.Equate(t, q*d+r == n, true)
		}
	}
}

func TestDivArgSwap(t *testing.T) {
	gba := hardware.NewGBA()

	// SWI 0x07 takes the numerator in r1
	gba.CPU.SetReg(0, 7)
	gba.CPU.SetReg(1, 100)
	gba.Swi(0x07)
	test.Equate(t, gba.CPU.Reg(0), 14)
	test.Equate(t, gba.CPU.Reg(1), 2)
	test.Equate(t, gba.CPU.Reg(3), 14)
}

func TestDivByZero(t *testing.T) {
	gba := hardware.NewGBA()

	gba.CPU.SetReg(0, 5)
	gba.CPU.SetReg(1, 0)
	gba.Swi(0x06)
	test.Equate(t, gba.CPU.Reg(0), 1)
	test.Equate(t, gba.CPU.Reg(1), 5)
	test.Equate(t, gba.CPU.Reg(3), 1)

	negFive := int32(-5)
	gba.CPU.SetReg(0, uint32(negFive))
	gba.CPU.SetReg(1, 0)
	gba.Swi(0x06)
	test.Equate(t, gba.CPU.Reg(0), 0xffffffff)
	test.Equate(t, int32(gba.CPU.Reg(1)), int32(-5))
	test.Equate(t, gba.CPU.Reg(3), 1)

	// zero divided by zero gives +1
	gba.CPU.SetReg(0, 0)
	gba.CPU.SetReg(1, 0)
	gba.Swi(0x06)
	test.Equate(t, gba.CPU.Reg(0), 1)
	test.Equate(t, gba.CPU.Reg(1), 0)
}

func TestSqrt(t *testing.T) {
	gba := hardware.NewGBA()

	gba.CPU.SetReg(0, 16)
	gba.Swi(0x08)
	test.Equate(t, gba.CPU.Reg(0), 4)

	gba.CPU.SetReg(0, 99)
	gba.Swi(0x08)
	test.Equate(t, gba.CPU.Reg(0), 9)

	// the argument is unsigned
	gba.CPU.SetReg(0, 0xffffffff)
	gba.Swi(0x08)
	test.Equate(t, gba.CPU.Reg(0), 0xffff)
}

func TestArcTan2(t *testing.T) {
	gba := hardware.NewGBA()

	// along the positive x axis
	gba.CPU.SetReg(0, 0x4000)
	gba.CPU.SetReg(1, 0)
	gba.Swi(0x0a)
	test.Equate(t, gba.CPU.Reg(0), 0)

	// straight up is a quarter turn
	gba.CPU.SetReg(0, 0)
	gba.CPU.SetReg(1, 0x4000)
	gba.Swi(0x0a)
	test.Equate(t, gba.CPU.Reg(0), 0x4000)

	// 45 degrees
	gba.CPU.SetReg(0, 0x4000)
	gba.CPU.SetReg(1, 0x4000)
	gba.Swi(0x0a)
	test.Equate(t, gba.CPU.Reg(0), 0x2000)
}

func TestMidiKey2Freq(t *testing.T) {
	gba := hardware.NewGBA()

	// the wave data frequency lives at offset 4 of the block in r0
	gba.Mem.Store32(srcAddr+4, 440, 0)

	// key 180 with no fraction is the frequency itself
	gba.CPU.SetReg(0, srcAddr)
	gba.CPU.SetReg(1, 180)
	gba.CPU.SetReg(2, 0)
	gba.Swi(0x1f)
	test.Equate(t, gba.CPU.Reg(0), 440)

	// an octave below
	gba.CPU.SetReg(0, srcAddr)
	gba.CPU.SetReg(1, 168)
	gba.CPU.SetReg(2, 0)
	gba.Swi(0x1f)
	test.Equate(t, gba.CPU.Reg(0), 220)
}
