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

// Package memory implements the GBA memory system. The Memory type gathers
// the physical memory areas described by the memorymap package and presents
// them through the accessors of the bus package.
//
// All multi-byte accessors are little-endian and are composed from single
// byte accesses, so mirroring is honoured for every byte of a wide access.
// Accessors never fail: reads of unmapped addresses produce the open bus
// value and writes to unmapped or read-only addresses are dropped.
//
// The memory mapped I/O area is recognised by the map but no peripheral
// backs it here; it reads as open bus.
package memory
