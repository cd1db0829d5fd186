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
	"github.com/scubabooga/mgba/logger"
)

// div services SWI 0x06 and 0x07, which differ only in which registers carry
// the numerator and denominator. results: r0 quotient, r1 remainder (taking
// the sign of the numerator), r3 absolute quotient.
func div(cpu CPU, num int32, denom int32) {
	if denom == 0 {
		logger.Logf(logger.Allow, logGameError, "attempting to divide %d by zero", num)
		// the real BIOS hangs when abs(num) > 1. no game gets itself into a
		// state where it hangs, so return the defined results instead
		if num < 0 {
			negOne := int32(-1)
			cpu.SetReg(0, uint32(negOne))
		} else {
			cpu.SetReg(0, 1)
		}
		cpu.SetReg(1, uint32(num))
		cpu.SetReg(3, 1)
		return
	}

	quot := num / denom
	rem := num % denom
	if num == math.MinInt32 && denom == -1 {
		// the quotient does not fit in 32 bits; the truncated result is the
		// numerator itself
		quot = num
		rem = 0
	}

	cpu.SetReg(0, uint32(quot))
	cpu.SetReg(1, uint32(rem))
	if quot < 0 {
		quot = -quot
	}
	cpu.SetReg(3, uint32(quot))
}

// sqrt services SWI 0x08. the argument is unsigned.
func sqrt(value uint32) uint32 {
	return uint32(math.Sqrt(float64(value)))
}

// arcTan2 services SWI 0x0a. x and y are 1.14 fixed-point; the result is the
// angle scaled so that a full turn is 0x10000.
func arcTan2(x uint32, y uint32) uint32 {
	theta := math.Atan2(float64(int32(y))/16384, float64(int32(x))/16384)
	return uint32(int32(theta / (2 * math.Pi) * 0x10000))
}

// midiKey2Freq services SWI 0x1f. r0 points to a wave data block whose word
// at offset 4 is the sample frequency; r1 is the MIDI key and r2 a fractional
// key in 8.8 fixed-point.
func midiKey2Freq(cpu CPU) {
	mem := cpu.Bus()
	key := mem.Load32(cpu.Reg(0)+4, bus.NonSequential)
	semitones := (180 - float64(int32(cpu.Reg(1))) - float64(int32(cpu.Reg(2)))/256) / 12
	cpu.SetReg(0, uint32(int32(float64(key)/math.Pow(2, semitones))))
}
