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

import "github.com/scubabooga/mgba/curated"

// sentinal error messages
const (
	OddFilterLength = "crunched: filter: data length %d is not a multiple of two"
)

// Diff8 encodes data as byte-wide differences for the BIOS UnFilter service.
// The resulting stream reverses through both the 8-to-8 and the 8-to-16 bit
// service variants.
func Diff8(data []uint8) []uint8 {
	out := make([]uint8, 0, len(data)+4)
	out = appendHeader(out, sigDiff8, len(data))

	var old uint8
	for _, v := range data {
		out = append(out, v-old)
		old = v
	}
	return out
}

// Diff16 encodes data as halfword-wide differences for the BIOS UnFilter
// service. The data length must be a multiple of two.
func Diff16(data []uint8) ([]uint8, error) {
	if len(data)%2 != 0 {
		return nil, curated.Errorf(OddFilterLength, len(data))
	}

	out := make([]uint8, 0, len(data)+4)
	out = appendHeader(out, sigDiff16, len(data))

	var old uint16
	for i := 0; i < len(data); i += 2 {
		v := uint16(data[i]) | uint16(data[i+1])<<8
		d := v - old
		out = append(out, uint8(d), uint8(d>>8))
		old = v
	}
	return out, nil
}
