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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Whereas with flag.FlagSet you call Parse() with the array of strings as the
// only argument, with modalflag you first call NewArgs() with the array of
// arguments and then Parse() with no arguments:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	_, _ = md.Parse()
//
// Program modes are declared with the AddSubModes() function. Subsequent
// calls to Parse() will process flags in the normal way but will also check
// if the first argument after the flags is one of the declared modes:
//
//	md.AddSubModes("checksum", "crunch", "decrunch")
//	_, _ = md.Parse()
//	switch md.Mode() {
//	case "CHECKSUM":
//		...
//	}
//
// Once a mode has been selected, NewMode() begins a fresh layer of flags and
// (optionally) further sub-modes, processed by the next call to Parse().
// Modes can be chained together as deep as required. For simplicity, all
// sub-mode comparisons are case insensitive.
package modalflag
