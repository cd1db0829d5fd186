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

package crunched_test

import (
	"testing"

	"github.com/scubabooga/mgba/crunched"
	"github.com/scubabooga/mgba/curated"
	"github.com/scubabooga/mgba/test"
)

func header(stream []uint8) uint32 {
	return uint32(stream[0]) | uint32(stream[1])<<8 |
		uint32(stream[2])<<16 | uint32(stream[3])<<24
}

func TestHeaders(t *testing.T) {
	lz := crunched.Lz77([]uint8("ABCDEFGH"))
	test.Equate(t, header(lz), 0x00000810)

	rl := crunched.Rle(make([]uint8, 10))
	test.Equate(t, header(rl), 0x00000a30)

	hf, err := crunched.Huffman([]uint8{0x12, 0x34}, 8)
	test.ExpectedSuccess(t, err)
	test.Equate(t, header(hf), 0x00000228)

	df := crunched.Diff8([]uint8{1, 2, 3})
	test.Equate(t, header(df), 0x00000381)
}

func TestLz77Literals(t *testing.T) {
	// no back-reference is possible so the stream is a flag byte of zero
	// followed by the literals
	stream := crunched.Lz77([]uint8("ABCDEFGH"))
	test.Equate(t, stream[4], 0x00)
	test.Equate(t, string(stream[5:13]), "ABCDEFGH")
}

func TestRleBlocks(t *testing.T) {
	stream := crunched.Rle([]uint8("AAAAABCDEE"))

	// a five byte run compresses to a two byte block
	test.Equate(t, stream[4], 0x82)
	test.Equate(t, stream[5], uint8('A'))

	// "BCDEE" has no run of three; five literals
	test.Equate(t, stream[6], 0x04)
	test.Equate(t, string(stream[7:12]), "BCDEE")
}

func TestDiff8(t *testing.T) {
	stream := crunched.Diff8([]uint8{10, 15, 13, 13})
	test.Equate(t, stream[4], 10)
	test.Equate(t, stream[5], 5)
	test.Equate(t, stream[6], 0xfe)
	test.Equate(t, stream[7], 0)
}

func TestDiff16OddLength(t *testing.T) {
	_, err := crunched.Diff16([]uint8{1, 2, 3})
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, crunched.OddFilterLength), true)
}

func TestHuffmanWidth(t *testing.T) {
	_, err := crunched.Huffman([]uint8{1}, 3)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, crunched.BadSymbolWidth), true)

	_, err = crunched.Huffman([]uint8{1}, 16)
	test.ExpectedFailure(t, err)
}

func TestHuffmanBitstreamAlignment(t *testing.T) {
	for _, bits := range []int{1, 2, 4, 8} {
		stream, err := crunched.Huffman([]uint8("the quick brown fox"), bits)
		test.ExpectedSuccess(t, err)

		// the tree size field must place the bitstream on a word boundary
		treesize := int(stream[4])<<1 + 1
		test.Equate(t, (5+treesize)%4, 0)

		// the bitstream itself is whole words
		test.Equate(t, (len(stream)-5-treesize)%4, 0)
	}
}
