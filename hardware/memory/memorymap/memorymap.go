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

package memorymap

// Area represents the different areas of memory. The value of an Area is the
// high byte of any address inside that area.
type Area uint32

func (a Area) String() string {
	switch a {
	case BIOS:
		return "BIOS"
	case WorkingRAM:
		return "WRAM"
	case WorkingIRAM:
		return "IWRAM"
	case IO:
		return "IO"
	case Palette:
		return "Palette"
	case VRAM:
		return "VRAM"
	case OAM:
		return "OAM"
	case Cart0, Cart0Ex, Cart1, Cart1Ex, Cart2, Cart2Ex:
		return "GamePak"
	case CartSRAM:
		return "SRAM"
	}

	return "undefined"
}

// The different memory areas in the GBA. Each area occupies one 16MB slot in
// the address space, identified by the high byte of the address. The three
// gamepak wait-state pairs are distinct slots mapping the same ROM.
const (
	BIOS        Area = 0x00
	WorkingRAM  Area = 0x02
	WorkingIRAM Area = 0x03
	IO          Area = 0x04
	Palette     Area = 0x05
	VRAM        Area = 0x06
	OAM         Area = 0x07
	Cart0       Area = 0x08
	Cart0Ex     Area = 0x09
	Cart1       Area = 0x0a
	Cart1Ex     Area = 0x0b
	Cart2       Area = 0x0c
	Cart2Ex     Area = 0x0d
	CartSRAM    Area = 0x0e
)

// BaseOffset is the number of bits an address is shifted right in order to
// recover the Area byte.
const BaseOffset = 24

// The origin for each area of memory. An address can be checked against these
// with a simple comparison because the areas are laid out in ascending order.
const (
	OriginBIOS        = uint32(0x00000000)
	OriginWorkingRAM  = uint32(0x02000000)
	OriginWorkingIRAM = uint32(0x03000000)
	OriginIO          = uint32(0x04000000)
	OriginPalette     = uint32(0x05000000)
	OriginVRAM        = uint32(0x06000000)
	OriginOAM         = uint32(0x07000000)
	OriginCart0       = uint32(0x08000000)
	OriginCartSRAM    = uint32(0x0e000000)
)

// The amount of physical memory backing each area. Except for the BIOS and
// gamepak areas, addresses beyond the physical size mirror back into it.
const (
	SizeBIOS        = 0x00004000
	SizeIO          = 0x00000400
	SizeWorkingRAM  = 0x00040000
	SizeWorkingIRAM = 0x00008000
	SizePalette     = 0x00000400
	SizeVRAM        = 0x00018000
	SizeOAM         = 0x00000400
	SizeCart        = 0x02000000
)

// AreaOf returns the Area an address falls within, without any normalisation
// of the address. Note that an address with a high byte that corresponds to
// no physical memory returns an Area for which IsMapped() is false.
func AreaOf(address uint32) Area {
	return Area(address >> BaseOffset)
}

// IsMapped returns false if the area corresponds to no memory at all.
func (a Area) IsMapped() bool {
	switch a {
	case BIOS, WorkingRAM, WorkingIRAM, IO, Palette, VRAM, OAM,
		Cart0, Cart0Ex, Cart1, Cart1Ex, Cart2, Cart2Ex, CartSRAM:
		return true
	}
	return false
}

// MapAddress translates the address argument from mirror space to an offset
// inside the physical memory of the returned Area. Generally, an address
// should be passed through this function before accessing memory.
//
// The bool return value is false for addresses that map to no memory (open
// bus).
func MapAddress(address uint32) (uint32, Area, bool) {
	area := AreaOf(address)

	switch area {
	case BIOS:
		// the BIOS slot is not mirrored. reads beyond the ROM are open bus
		if address >= SizeBIOS {
			return 0, area, false
		}
		return address, area, true

	case WorkingRAM:
		return address & (SizeWorkingRAM - 1), area, true

	case WorkingIRAM:
		return address & (SizeWorkingIRAM - 1), area, true

	case IO:
		return address & (SizeIO - 1), area, true

	case Palette:
		return address & (SizePalette - 1), area, true

	case VRAM:
		// VRAM is 96k mirrored in 128k steps. the upper 32k of each step
		// folds back onto the preceding 32k
		offset := address & 0x0001ffff
		if offset >= SizeVRAM {
			offset -= 0x8000
		}
		return offset, area, true

	case OAM:
		return address & (SizeOAM - 1), area, true

	case Cart0, Cart0Ex, Cart1, Cart1Ex, Cart2, Cart2Ex:
		// the three wait-state pairs mirror the same ROM
		return address & (SizeCart - 1), area, true

	case CartSRAM:
		return address & 0x0000ffff, area, true
	}

	return 0, area, false
}

// IsArea returns true if the address is in the specified area.
func IsArea(address uint32, area Area) bool {
	return AreaOf(address) == area
}
