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
	"github.com/scubabooga/mgba/hardware/memory/bus"
	"github.com/scubabooga/mgba/logger"
)

// The decompression services share a common header format: the low byte of
// the first word is the stream signature (which is assumed correct and never
// verified) and the upper 24 bits are the number of bytes to produce.
//
// The services also share their width handling. With a width of 1, bytes are
// stored singly. With a width of 2 (for destinations such as VRAM which
// ignore byte stores), bytes are coalesced into halfwords: an even
// destination address buffers the byte, an odd destination address merges
// the byte into the high half and commits the pair. The destination pointer
// advances by one for every byte either way.

// storeNarrow performs the width-sensitive store of a single byte. the
// scratch halfword is owned by the calling decoder and is threaded through
// every call.
func storeNarrow(mem bus.CPUBus, dest uint32, value uint8, width int, halfword uint16) uint16 {
	if width == 2 {
		if dest&1 != 0 {
			halfword |= uint16(value) << 8
			mem.Store16(dest^1, halfword, bus.NonSequential)
		} else {
			halfword = uint16(value)
		}
	} else {
		mem.Store8(dest, value, bus.NonSequential)
	}
	return halfword
}

// unLz77 services SWI 0x11 and 0x12.
//
// The stream is a sequence of blocks, each introduced by a flag byte whose
// bits (MSB first) describe the next eight chunks: a clear bit copies one
// literal byte from the source; a set bit is a two byte back-reference into
// the bytes already produced. Back-references are copied bytewise so an
// overlapping copy sees its own output.
func unLz77(cpu CPU, width int) {
	mem := cpu.Bus()
	source := cpu.Reg(0)
	dest := cpu.Reg(1)
	remaining := int(mem.Load32(source, bus.NonSequential) >> 8)
	source += 4

	var blockheader uint8
	blocksRemaining := 0
	var halfword uint16

	for remaining > 0 {
		if blocksRemaining > 0 {
			if blockheader&0x80 != 0 {
				// compressed chunk. the displacement is big-endian across
				// the nibble-packed pair
				block := uint32(mem.LoadU8(source, bus.NonSequential)) |
					uint32(mem.LoadU8(source+1, bus.NonSequential))<<8
				source += 2
				disp := dest - (((block & 0x000f) << 8) | ((block & 0xff00) >> 8)) - 1
				bytes := int((block&0x00f0)>>4) + 3
				for ; bytes > 0 && remaining > 0; bytes-- {
					remaining--
					halfword = storeNarrow(mem, dest, mem.LoadU8(disp, bus.NonSequential), width, halfword)
					disp++
					dest++
				}
			} else {
				// uncompressed chunk
				halfword = storeNarrow(mem, dest, mem.LoadU8(source, bus.NonSequential), width, halfword)
				source++
				dest++
				remaining--
			}
			blockheader <<= 1
			blocksRemaining--
		} else {
			blockheader = mem.LoadU8(source, bus.NonSequential)
			source++
			blocksRemaining = 8
		}
	}

	cpu.SetReg(0, source)
	cpu.SetReg(1, dest)
	cpu.SetReg(3, 0)
}

// Huffman tree nodes are one byte: bits 0-5 are a forward offset in node
// pairs to the child pair; bit 6 marks the right child as a leaf; bit 7 the
// left child. Note that the flags describe the children, not the node
// itself: the leaf value is read from the child slot.
const (
	huffmanOffset = uint8(0x3f)
	huffmanRTerm  = uint8(0x40)
	huffmanLTerm  = uint8(0x80)
)

// huffmanChild returns the address of the child pair of the node at pointer.
func huffmanChild(pointer uint32, node uint8) uint32 {
	return (pointer &^ 1) + uint32(node&huffmanOffset)*2 + 2
}

// unHuffman services SWI 0x13.
//
// The low nibble of the header carries the symbol width in bits. The tree
// follows the header (its size in the byte at header+4) and the bitstream
// follows the tree, read in 32-bit words MSB first. Decoded symbols are
// packed into a word from bit 0 upward and flushed with a 32-bit store.
func unHuffman(cpu CPU) {
	mem := cpu.Bus()
	source := cpu.Reg(0) &^ 3
	dest := cpu.Reg(1)

	header := mem.Load32(source, bus.NonSequential)
	remaining := int(header >> 8)
	bits := int(header & 0xf)
	if bits == 0 || 32%bits != 0 {
		logger.Logf(logger.Allow, logStub, "unimplemented unaligned Huffman")
		return
	}

	padding := (4 - remaining) & 0x3
	remaining &^= 0x3

	treesize := int(mem.LoadU8(source+4, bus.NonSequential))<<1 + 1
	treeBase := source + 5
	source += 5 + uint32(treesize)

	nPointer := treeBase
	node := mem.LoadU8(nPointer, bus.NonSequential)

	var block uint32
	bitsSeen := 0

	for remaining > 0 {
		bitstream := mem.Load32(source, bus.NonSequential)
		source += 4

		for bitsRemaining := 32; bitsRemaining > 0 && remaining > 0; bitsRemaining, bitstream = bitsRemaining-1, bitstream<<1 {
			next := huffmanChild(nPointer, node)

			var readBits uint8
			if bitstream&0x80000000 != 0 {
				// go right
				if node&huffmanRTerm == 0 {
					nPointer = next + 1
					node = mem.LoadU8(nPointer, bus.NonSequential)
					continue
				}
				readBits = mem.LoadU8(next+1, bus.NonSequential)
			} else {
				// go left
				if node&huffmanLTerm == 0 {
					nPointer = next
					node = mem.LoadU8(nPointer, bus.NonSequential)
					continue
				}
				readBits = mem.LoadU8(next, bus.NonSequential)
			}

			block |= (uint32(readBits) & (uint32(1)<<bits - 1)) << bitsSeen
			bitsSeen += bits
			nPointer = treeBase
			node = mem.LoadU8(nPointer, bus.NonSequential)
			if bitsSeen == 32 {
				bitsSeen = 0
				mem.Store32(dest, block, bus.NonSequential)
				dest += 4
				remaining -= 4
				block = 0
			}
		}
	}

	// lengths that are not a multiple of four get one more word stored. the
	// main loop stops at the rounded down length, by which time the
	// accumulator has been cleared, so the word stored is zero and the tail
	// bytes are not decoded
	if padding != 0 {
		mem.Store32(dest, block, bus.NonSequential)
	}

	cpu.SetReg(0, source)
	cpu.SetReg(1, dest)
}

// unRl services SWI 0x14 and 0x15.
//
// Each block begins with a flag byte. With the MSB set the following source
// byte is repeated (flag AND 0x7f) + 3 times; with the MSB clear the next
// flag + 1 source bytes are copied literally. After the declared length is
// produced the destination is padded with zeroes to a word boundary.
func unRl(cpu CPU, width int) {
	mem := cpu.Bus()
	source := cpu.Reg(0) &^ 3
	remaining := int(mem.Load32(source, bus.NonSequential) >> 8)
	padding := (4 - remaining) & 0x3
	source += 4
	dest := cpu.Reg(1)

	var halfword uint16

	for remaining > 0 {
		blockheader := int(mem.LoadU8(source, bus.NonSequential))
		source++
		if blockheader&0x80 != 0 {
			// compressed
			blockheader &= 0x7f
			blockheader += 3
			block := mem.LoadU8(source, bus.NonSequential)
			source++
			for ; blockheader > 0 && remaining > 0; blockheader-- {
				remaining--
				halfword = storeNarrow(mem, dest, block, width, halfword)
				dest++
			}
		} else {
			// uncompressed
			blockheader++
			for ; blockheader > 0 && remaining > 0; blockheader-- {
				remaining--
				halfword = storeNarrow(mem, dest, mem.LoadU8(source, bus.NonSequential), width, halfword)
				source++
				dest++
			}
		}
	}

	if width == 2 {
		if dest&1 != 0 {
			padding--
			dest++
		}
		for ; padding > 0; padding, dest = padding-2, dest+2 {
			mem.Store16(dest, 0, bus.NonSequential)
		}
	} else {
		for ; padding > 0; padding-- {
			mem.Store8(dest, 0, bus.NonSequential)
			dest++
		}
	}

	cpu.SetReg(0, source)
	cpu.SetReg(1, dest)
}

// unFilter services SWI 0x16, 0x17 and 0x18: the three width combinations of
// the differential filter (8 to 8, 8 to 16 and 16 to 16 bits).
//
// Each source value is added to a running total which is then stored at the
// destination width. In the widening case output bytes are coalesced into
// halfwords, committing on every odd source offset.
func unFilter(cpu CPU, inwidth int, outwidth int) {
	mem := cpu.Bus()
	source := cpu.Reg(0) &^ 3
	dest := cpu.Reg(1)
	remaining := int(mem.Load32(source, bus.NonSequential) >> 8)
	source += 4

	var halfword uint16
	var old uint16

	for remaining > 0 {
		var value uint16
		if inwidth == 1 {
			value = uint16(mem.LoadU8(source, bus.NonSequential))
		} else {
			value = mem.LoadU16(source, bus.NonSequential)
		}
		value += old

		if outwidth > inwidth {
			halfword >>= 8
			halfword |= value << 8
			if source&1 != 0 {
				mem.Store16(dest, halfword, bus.NonSequential)
				dest += uint32(outwidth)
				remaining -= outwidth
			}
		} else if outwidth == 1 {
			mem.Store8(dest, uint8(value), bus.NonSequential)
			dest += uint32(outwidth)
			remaining -= outwidth
		} else {
			mem.Store16(dest, value, bus.NonSequential)
			dest += uint32(outwidth)
			remaining -= outwidth
		}

		old = value
		source += uint32(inwidth)
	}

	cpu.SetReg(0, source)
	cpu.SetReg(1, dest)
}
