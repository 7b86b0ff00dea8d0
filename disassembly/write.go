// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package disassembly

import (
	"fmt"
	"io"
	"strings"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	ByteCode bool
}

// Write the entire disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	for _, e := range dsm.Entries {
		dsm.WriteEntry(output, attr, e)
	}
	return nil
}

// WriteAddr writes the disassembly entry at the specified address to
// io.Writer.
func (dsm *Disassembly) WriteAddr(output io.Writer, attr WriteAttr, address uint16) error {
	e, ok := dsm.GetEntryByAddress(address)
	if !ok {
		return fmt.Errorf("disassembly: no entry at %#04x", address)
	}
	dsm.WriteEntry(output, attr, e)
	return nil
}

// WriteEntry writes a single disassembly entry to io.Writer.
func (dsm *Disassembly) WriteEntry(output io.Writer, attr WriteAttr, e *Entry) {
	if e == nil {
		return
	}

	if attr.ByteCode {
		output.Write([]byte(fmt.Sprintf("%04x ", e.Opcode)))
	}

	s := fmt.Sprintf("0x%04x %-4s %s", e.Address, e.Operator, e.Operand)
	output.Write([]byte(strings.TrimRight(s, " ")))
	output.Write([]byte("\n"))
}
