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
	"math"

	"github.com/scubabooga/mgba/hardware/memory/bus"
)

// fixed-point helpers. matrix cells are stored 8.8 and the translation pair
// 24.8. values are truncated, not saturated, on store.
func store88(mem bus.CPUBus, address uint32, value float64) {
	mem.Store16(address, uint16(int32(value*256)), bus.NonSequential)
}

func store248(mem bus.CPUBus, address uint32, value float64) {
	mem.Store32(address, uint32(int32(value*256)), bus.NonSequential)
}

// bgAffineSet services SWI 0x0e. r0 points to r2 input blocks of 20 bytes;
// a 16 byte matrix+translation block is written to r1 for each.
func bgAffineSet(cpu CPU) {
	mem := cpu.Bus()
	i := int32(cpu.Reg(2))
	offset := cpu.Reg(0)
	destination := cpu.Reg(1)

	for ; i > 0; i-- {
		// [ A B ]   [ sx   0 ]   [ cos(theta)  -sin(theta) ]
		// [ C D ] = [  0  sy ] * [ sin(theta)   cos(theta) ]
		//
		// [ rx ]   [ ox ]   [ A B ]   [ cx ]
		// [ ry ] = [ oy ] - [ C D ] * [ cy ]
		ox := float64(int32(mem.Load32(offset, bus.NonSequential))) / 256
		oy := float64(int32(mem.Load32(offset+4, bus.NonSequential))) / 256
		cx := float64(mem.Load16(offset+8, bus.NonSequential))
		cy := float64(mem.Load16(offset+10, bus.NonSequential))
		sx := float64(mem.Load16(offset+12, bus.NonSequential)) / 256
		sy := float64(mem.Load16(offset+14, bus.NonSequential)) / 256
		theta := float64(mem.LoadU16(offset+16, bus.NonSequential)>>8) / 128 * math.Pi
		offset += 20

		// rotation
		a := math.Cos(theta)
		d := a
		b := math.Sin(theta)
		c := b

		// scale
		a *= sx
		b *= -sx
		c *= sy
		d *= sy

		// translate
		rx := ox - (a*cx + b*cy)
		ry := oy - (c*cx + d*cy)

		store88(mem, destination, a)
		store88(mem, destination+2, b)
		store88(mem, destination+4, c)
		store88(mem, destination+6, d)
		store248(mem, destination+8, rx)
		store248(mem, destination+12, ry)
		destination += 16
	}
}

// objAffineSet services SWI 0x0f. r0 points to r2 input blocks of 8 bytes;
// the four matrix cells are written starting at r1, each r3 bytes after the
// last (r3 is 8 when writing into OAM attributes).
func objAffineSet(cpu CPU) {
	mem := cpu.Bus()
	i := int32(cpu.Reg(2))
	offset := cpu.Reg(0)
	destination := cpu.Reg(1)
	diff := cpu.Reg(3)

	for ; i > 0; i-- {
		// [ sx   0 ]   [ cos(theta)  -sin(theta) ]   [ A B ]
		// [  0  sy ] * [ sin(theta)   cos(theta) ] = [ C D ]
		sx := float64(mem.Load16(offset, bus.NonSequential)) / 256
		sy := float64(mem.Load16(offset+2, bus.NonSequential)) / 256
		theta := float64(mem.LoadU16(offset+4, bus.NonSequential)>>8) / 128 * math.Pi
		offset += 8

		// rotation
		a := math.Cos(theta)
		d := a
		b := math.Sin(theta)
		c := b

		// scale
		a *= sx
		b *= -sx
		c *= sy
		d *= sy

		store88(mem, destination, a)
		store88(mem, destination+diff, b)
		store88(mem, destination+diff*2, c)
		store88(mem, destination+diff*3, d)
		destination += diff * 4
	}
}
