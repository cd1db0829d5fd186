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

// Package hardware gathers the sub-systems of the console into a single
// assembled machine.
package hardware

import (
	"github.com/scubabooga/mgba/hardware/bios"
	"github.com/scubabooga/mgba/hardware/cpu"
	"github.com/scubabooga/mgba/hardware/memory"
)

// GBA is the assembled console.
type GBA struct {
	CPU *cpu.CPU
	Mem *memory.Memory
}

// NewGBA is the preferred method of initialisation for the GBA type.
func NewGBA() *GBA {
	mem := memory.NewMemory()
	return &GBA{
		CPU: cpu.NewCPU(mem),
		Mem: mem,
	}
}

// AttachBIOS attaches a BIOS ROM image to the console.
func (gba *GBA) AttachBIOS(data []uint8) error {
	return gba.Mem.AttachBIOS(data)
}

// AttachCart attaches a cartridge ROM image to the console.
func (gba *GBA) AttachCart(data []uint8) error {
	return gba.Mem.AttachCart(data)
}

// Swi services a software interrupt as raised by a 16-bit SWI instruction.
func (gba *GBA) Swi(immediate int) {
	bios.Swi16(gba.CPU, immediate)
}
