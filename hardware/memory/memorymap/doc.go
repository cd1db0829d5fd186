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

// Package memorymap describes the GBA address space. The 32-bit address space
// is divided into 16MB slots, identified by the high byte of the address:
//
//	0x00  BIOS ROM (16k)
//	0x02  on-board working RAM (256k)
//	0x03  on-chip working RAM (32k)
//	0x04  memory mapped I/O
//	0x05  palette RAM (1k)
//	0x06  VRAM (96k)
//	0x07  OAM (1k)
//	0x08+ gamepak ROM (three wait-state mirrors)
//	0x0e  gamepak SRAM
//
// Most slots are larger than the physical memory in them; the physical memory
// is mirrored throughout the slot. The MapAddress() function handles the
// translation of any address to an offset inside the physical memory of the
// area.
package memorymap
