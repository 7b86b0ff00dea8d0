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

	"github.com/jetsetilly/gopher8/cartridgeloader"
	"github.com/jetsetilly/gopher8/hardware/memory"
)

// Disassembly represents the disassembly of a CHIP-8 ROM.
type Disassembly struct {
	// every disassembled instruction in address order
	Entries []*Entry

	// indexed by address. addresses outside the ROM area, and odd addresses,
	// are nil
	reference [memory.MemorySize]*Entry
}

// FromCartridge returns the disassembly of the program in the supplied
// cartridge loader. Useful for one-shot disassemblies, like the gopher8
// "disasm" mode.
func FromCartridge(cartload cartridgeloader.Loader) (*Disassembly, error) {
	err := cartload.Load()
	if err != nil {
		return nil, fmt.Errorf("disassembly: %w", err)
	}
	return FromData(cartload.Data), nil
}

// FromData disassembles program data as it would be loaded into machine
// memory. A trailing odd byte cannot form an opcode and is ignored.
func FromData(data []byte) *Disassembly {
	dsm := &Disassembly{
		Entries: make([]*Entry, 0, len(data)/2),
	}

	for i := 0; i+1 < len(data); i += 2 {
		address := uint16(memory.LoadAddress + i)
		opcode := (uint16(data[i]) << 8) | uint16(data[i+1])

		e := newEntry(address, opcode)
		dsm.Entries = append(dsm.Entries, e)
		dsm.reference[address&memory.AddressMask] = e
	}

	return dsm
}

// GetEntryByAddress returns the disassembly entry at the specified address.
func (dsm *Disassembly) GetEntryByAddress(address uint16) (*Entry, bool) {
	e := dsm.reference[address&memory.AddressMask]
	return e, e != nil
}
