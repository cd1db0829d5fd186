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

package crunched

// limits of the RLE block format. a compressed block encodes its length in 7
// bits biased by 3; an uncompressed block in 7 bits biased by 1.
const (
	rleMinRun     = 3
	rleMaxRun     = 0x7f + 3
	rleMaxLiteral = 0x80
)

// Rle compresses data into the stream format of the BIOS run-length service.
func Rle(data []uint8) []uint8 {
	out := make([]uint8, 0, len(data)+len(data)/rleMaxLiteral+8)
	out = appendHeader(out, sigRle, len(data))

	i := 0
	for i < len(data) {
		run := 1
		for i+run < len(data) && data[i+run] == data[i] && run < rleMaxRun {
			run++
		}

		if run >= rleMinRun {
			out = append(out, 0x80|uint8(run-rleMinRun), data[i])
			i += run
			continue
		}

		// gather literals until the next run worth compressing
		start := i
		for i < len(data) && i-start < rleMaxLiteral {
			if i+2 < len(data) && data[i] == data[i+1] && data[i] == data[i+2] {
				break
			}
			i++
		}
		out = append(out, uint8(i-start-1))
		out = append(out, data[start:i]...)
	}

	return out
}
