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

package logger

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Colorizer applies basic coloring rules to logging output. The part of each
// line before the first ": " is emphasised and any entry tagged as an error
// is coloured red.
type Colorizer struct {
	out      io.Writer
	tagStyle lipgloss.Style
	errStyle lipgloss.Style
}

// NewColorizer is the preferred method of initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{
		out:      out,
		tagStyle: lipgloss.NewStyle().Bold(true),
		errStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (n int, err error) {
	n = 0

	for _, l := range strings.Split(strings.TrimSpace(string(p)), "\n") {
		tag, detail, ok := strings.Cut(l, ": ")
		if !ok {
			m, err := io.WriteString(c.out, l+"\n")
			n += m
			if err != nil {
				return n, err
			}
			continue
		}

		s := strings.Builder{}
		s.WriteString(c.tagStyle.Render(tag))
		s.WriteString(": ")
		// tags may themselves contain ": " (eg. "SWI: game error") so the
		// error part of the tag can be at the start of the detail
		if strings.Contains(tag, "error") || strings.Contains(detail, "error: ") {
			s.WriteString(c.errStyle.Render(detail))
		} else {
			s.WriteString(detail)
		}
		s.WriteString("\n")

		m, err := io.WriteString(c.out, s.String())
		n += m
		if err != nil {
			return n, err
		}
	}

	return n, nil
}
