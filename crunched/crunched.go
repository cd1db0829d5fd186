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

// Package crunched produces streams in the formats understood by the BIOS
// decompression services. The encoders run on host memory, not through the
// emulated bus; they exist for asset preparation and for exercising the
// decoders against round trips.
//
// Every stream begins with a 32-bit header: the signature in the low byte
// and the uncompressed length in the upper 24 bits.
package crunched

// stream signatures
const (
	sigLz77    = 0x10
	sigHuffman = 0x20
	sigRle     = 0x30
	sigDiff8   = 0x81
	sigDiff16  = 0x82
)

// appendHeader appends the little-endian stream header.
func appendHeader(out []uint8, signature uint8, length int) []uint8 {
	header := uint32(signature) | uint32(length)<<8
	return append(out,
		uint8(header), uint8(header>>8), uint8(header>>16), uint8(header>>24))
}
