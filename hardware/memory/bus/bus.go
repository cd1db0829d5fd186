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

// Package bus defines the memory bus concept. For an explanation see the
// memory package documentation.
package bus

// Access is a hint describing how the bus is being accessed. The hint affects
// wait-state accounting, not the value transferred. Implementations are free
// to ignore it.
type Access int

// The list of valid Access values.
const (
	NonSequential Access = iota
	Sequential
)

// CPUBus defines the operations for the memory system when accessed from the
// CPU. Every address is a full 32-bit bus address; mirroring and mapping to
// the correct memory area is the responsibility of the implementation, so
// callers need not care which part of memory they are touching.
//
// Accessors never fail. An unmapped address reads as the open bus value and
// ignores writes.
type CPUBus interface {
	Load8(address uint32, access Access) int8
	LoadU8(address uint32, access Access) uint8
	Load16(address uint32, access Access) int16
	LoadU16(address uint32, access Access) uint16
	Load32(address uint32, access Access) uint32

	Store8(address uint32, value uint8, access Access)
	Store16(address uint32, value uint16, access Access)
	Store32(address uint32, value uint32, access Access)
}

// DebuggerBus defines the meta-operations for all memory areas. Think of these
// functions as "debugging" functions, that is operations outside of the normal
// operation of the machine.
type DebuggerBus interface {
	Peek(address uint32) uint8
	Poke(address uint32, value uint8)
}
