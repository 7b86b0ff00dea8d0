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

package memory

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/crunched"
)

// MemorySize is the number of addressable bytes in the CHIP-8 machine.
const MemorySize = 4096

// AddressMask is applied to all addresses before access. The CHIP-8 address
// space is 12 bits wide and out-of-range addresses wrap around rather than
// fault.
const AddressMask = 0x0fff

// LoadAddress is the address at which program data is loaded and where
// execution begins.
const LoadAddress = 0x200

// Memory implements the addressable memory of the CHIP-8 machine.
type Memory struct {
	RAM crunched.Data
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	mem := &Memory{
		RAM: crunched.NewQuick(MemorySize),
	}
	mem.Reset()
	return mem
}

// Snapshot creates a copy of the memory in its current state. The copy is
// crunched.
func (mem *Memory) Snapshot() *Memory {
	n := *mem
	n.RAM = mem.RAM.Snapshot()
	return &n
}

// Reset contents of memory and reinstall the font sprites.
func (mem *Memory) Reset() {
	data := *mem.RAM.Data()
	for i := range data {
		data[i] = 0x00
	}
	copy(data, FontData[:])
}

// LoadProgram copies data into memory starting at LoadAddress. An error is
// returned if the data cannot fit.
func (mem *Memory) LoadProgram(data []uint8) error {
	if len(data) > MemorySize-LoadAddress {
		return fmt.Errorf("memory: program of %d bytes is too large", len(data))
	}
	copy((*mem.RAM.Data())[LoadAddress:], data)
	return nil
}

// Read8 returns the byte at the specified address. The address is masked and
// the read will never fail.
func (mem *Memory) Read8(address uint16) uint8 {
	return (*mem.RAM.Data())[address&AddressMask]
}

// Read16 returns the 16bit value at the specified address. Values are stored
// in memory in big-endian order.
func (mem *Memory) Read16(address uint16) uint16 {
	data := *mem.RAM.Data()
	return uint16(data[address&AddressMask])<<8 | uint16(data[(address+1)&AddressMask])
}

// Write8 writes a byte to the specified address. The address is masked and
// the write will never fail.
func (mem *Memory) Write8(address uint16, value uint8) {
	(*mem.RAM.Data())[address&AddressMask] = value
}

// String returns a hex dump of the entire memory.
func (mem *Memory) String() string {
	s := strings.Builder{}
	data := *mem.RAM.Data()
	for addr := 0; addr < MemorySize; addr += 16 {
		s.WriteString(fmt.Sprintf("%#04x: ", addr))
		for i := 0; i < 16; i++ {
			s.WriteString(fmt.Sprintf(" %02x", data[addr+i]))
		}
		s.WriteString("\n")
	}
	return strings.TrimRight(s.String(), "\n")
}
