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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error. The pattern is also the identity
// of the error and can be tested for with the Is() function:
//
//	e := curated.Errorf("memory: %v", err)
//
//	if curated.Is(e, "memory: %v") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain, rather than just at the outermost wrapping.
//
// The IsAny() function answers whether the error was created by Errorf() at
// all. Put another way, it distinguishes 'curated' from 'uncurated' errors.
//
// The Error() function implementation for curated errors normalises the
// message chain: when the first two parts are identical, one of them is
// removed. Only that leading pair is compared. The practical advantage
// of this is that it alleviates the problem of when and how to wrap an error
// as it passes back up the call stack; wrapping the same context twice does
// not produce a stuttering message.
//
// For the purposes of this package, chains are composed of parts separated by
// the sub-string ': ' as suggested on p239 of "The Go Programming Language"
// (Donovan, Kernighan).
//
// Sentinal patterns should be stored as a const string, suitably named and
// commented.
package curated
