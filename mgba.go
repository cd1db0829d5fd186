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

package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/scubabooga/mgba/crunched"
	"github.com/scubabooga/mgba/curated"
	"github.com/scubabooga/mgba/hardware"
	"github.com/scubabooga/mgba/hardware/bios"
	"github.com/scubabooga/mgba/logger"
	"github.com/scubabooga/mgba/modalflag"
)

// sentinal error messages
const (
	tooManyArguments = "%s: too many arguments"
	fileRequired     = "%s: a file argument is required"
	badFormat        = "%s: unrecognised stream format %s"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	badStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("CHECKSUM", "CRUNCH", "DECRUNCH")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Fprintln(os.Stderr, badStyle.Render(err.Error()))
		os.Exit(10)
	}

	switch md.Mode() {
	case "CHECKSUM":
		err = checksum(md)
	case "CRUNCH":
		err = crunch(md)
	case "DECRUNCH":
		err = decrunch(md)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, badStyle.Render(err.Error()))
		os.Exit(10)
	}
}

// checksum identifies a BIOS image file by its word sum.
func checksum(md *modalflag.Modes) error {
	md.NewMode()
	p, err := md.Parse()
	if p != modalflag.ParseContinue || err != nil {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return curated.Errorf(fileRequired, md.Path())
	case 1:
	default:
		return curated.Errorf(tooManyArguments, md.Path())
	}

	data, err := os.ReadFile(md.GetArg(0))
	if err != nil {
		return curated.Errorf("checksum: %v", err)
	}

	gba := hardware.NewGBA()
	if err := gba.AttachBIOS(data); err != nil {
		return err
	}

	// SWI 0x0d computes the checksum of the attached image. r2 must be zero
	// because the checksum handler runs on into BgAffineSet
	gba.CPU.SetReg(2, 0)
	gba.Swi(0x0d)
	sum := gba.CPU.Reg(0)

	fmt.Println(titleStyle.Render(fmt.Sprintf("%08x", sum)))
	switch sum {
	case bios.ChecksumGBA:
		fmt.Println(okStyle.Render("GBA BIOS"))
	case bios.ChecksumDS:
		fmt.Println(okStyle.Render("NDS (GBA mode) BIOS"))
	default:
		fmt.Println(badStyle.Render("unrecognised BIOS image"))
	}

	return nil
}

// immediateOf maps a stream format name to the SWI that reverses it.
func immediateOf(format string) (int, bool) {
	switch format {
	case "lz77":
		return 0x11, true
	case "huffman":
		return 0x13, true
	case "rle":
		return 0x14, true
	case "diff8":
		return 0x16, true
	case "diff16":
		return 0x18, true
	}
	return 0, false
}

// crunch a file into a BIOS stream format.
func crunch(md *modalflag.Modes) error {
	md.NewMode()
	format := md.AddString("format", "lz77", "stream format: lz77, huffman, rle, diff8, diff16")
	bits := md.AddInt("bits", 8, "symbol width (huffman format only)")
	output := md.AddString("o", "", "output file (default: input file with .bin suffix)")

	p, err := md.Parse()
	if p != modalflag.ParseContinue || err != nil {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return curated.Errorf(fileRequired, md.Path())
	case 1:
	default:
		return curated.Errorf(tooManyArguments, md.Path())
	}

	data, err := os.ReadFile(md.GetArg(0))
	if err != nil {
		return curated.Errorf("crunch: %v", err)
	}

	var stream []uint8
	switch *format {
	case "lz77":
		stream = crunched.Lz77(data)
	case "huffman":
		stream, err = crunched.Huffman(data, *bits)
	case "rle":
		stream = crunched.Rle(data)
	case "diff8":
		stream = crunched.Diff8(data)
	case "diff16":
		stream, err = crunched.Diff16(data)
	default:
		return curated.Errorf(badFormat, md.Path(), *format)
	}
	if err != nil {
		return err
	}

	fn := *output
	if fn == "" {
		fn = fmt.Sprintf("%s.bin", md.GetArg(0))
	}
	if err := os.WriteFile(fn, stream, 0644); err != nil {
		return curated.Errorf("crunch: %v", err)
	}

	fmt.Println(okStyle.Render(
		fmt.Sprintf("%s: %d -> %d bytes", fn, len(data), len(stream))))

	return nil
}

// guest addresses used by the decrunch mode
const (
	decrunchSrc  = uint32(0x02000000)
	decrunchDest = uint32(0x02020000)
)

// decrunch a BIOS stream file through the emulated console.
func decrunch(md *modalflag.Modes) error {
	md.NewMode()
	format := md.AddString("format", "lz77", "stream format: lz77, huffman, rle, diff8, diff16")
	output := md.AddString("o", "", "output file (default: input file with .out suffix)")
	echo := md.AddBool("log", false, "echo the emulation log to stderr")

	p, err := md.Parse()
	if p != modalflag.ParseContinue || err != nil {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return curated.Errorf(fileRequired, md.Path())
	case 1:
	default:
		return curated.Errorf(tooManyArguments, md.Path())
	}

	immediate, ok := immediateOf(*format)
	if !ok {
		return curated.Errorf(badFormat, md.Path(), *format)
	}

	stream, err := os.ReadFile(md.GetArg(0))
	if err != nil {
		return curated.Errorf("decrunch: %v", err)
	}
	if len(stream) < 4 || len(stream) > int(decrunchDest-decrunchSrc) {
		return curated.Errorf("decrunch: %s is not a usable stream file", md.GetArg(0))
	}

	length := int(uint32(stream[1]) | uint32(stream[2])<<8 | uint32(stream[3])<<16)
	if length > 0x20000 {
		return curated.Errorf("decrunch: declared length %d does not fit working RAM", length)
	}

	if *echo {
		logger.SetEcho(logger.NewColorizer(os.Stderr))
	}

	// the decode runs through the emulated bus, exactly as it would for a
	// game
	gba := hardware.NewGBA()
	for i, v := range stream {
		gba.Mem.Poke(decrunchSrc+uint32(i), v)
	}
	gba.CPU.SetReg(0, decrunchSrc)
	gba.CPU.SetReg(1, decrunchDest)
	gba.Swi(immediate)

	data := make([]uint8, length)
	for i := range data {
		data[i] = gba.Mem.Peek(decrunchDest + uint32(i))
	}

	fn := *output
	if fn == "" {
		fn = fmt.Sprintf("%s.out", md.GetArg(0))
	}
	if err := os.WriteFile(fn, data, 0644); err != nil {
		return curated.Errorf("decrunch: %v", err)
	}

	fmt.Println(okStyle.Render(
		fmt.Sprintf("%s: %d -> %d bytes", fn, len(stream), len(data))))

	return nil
}
