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

package instructions

// Mode selects the instruction set variant. The variants disagree about the
// shift instructions in particular: in the original interpreter 8XY6 and 8XYE
// copy Vy into Vx before shifting, later machines shift Vx in place.
//
// Only ModeChip8 is currently defined.
type Mode int

// List of defined modes.
const (
	ModeChip8 Mode = iota
)

func (m Mode) String() string {
	switch m {
	case ModeChip8:
		return "CHIP-8"
	}

	return ""
}
