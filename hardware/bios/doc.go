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

// Package bios provides high level emulation of the GBA BIOS software
// interrupt services. When the CPU interpreter decodes an SWI instruction it
// calls Swi16() (or Swi32() in ARM state) and the package synthesises the
// architectural outcome of the requested service: arguments are read from the
// guest register file, memory is read and written through the bus, and
// results are placed back into the registers.
//
// Every guest memory access goes through the bus accessors so that mirrored
// regions and memory mapped I/O behave as they would for real BIOS code.
//
// Services that cannot be usefully emulated at a high level (the interrupt
// wait family, CpuSet) are bounced back to the CPU as a real SWI exception,
// as is every service when the full-BIOS flag is set.
//
// No state is kept between calls. A handler runs to completion before
// returning control to the interpreter.
package bios
