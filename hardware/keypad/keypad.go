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

// Package keypad implements the sixteen key hexadecimal keypad of the CHIP-8
// machine. How host input is mapped onto the keypad is left to the front-end.
package keypad

import (
	"fmt"
	"strings"
)

// NumKeys is the number of keys on the keypad.
const NumKeys = 16

// layout of the keys as they appear on the physical keypad.
var layout = [NumKeys]uint8{
	0x1, 0x2, 0x3, 0xc,
	0x4, 0x5, 0x6, 0xd,
	0x7, 0x8, 0x9, 0xe,
	0xa, 0x0, 0xb, 0xf,
}

// Keypad implements the keypad of the CHIP-8 machine.
type Keypad struct {
	Keys [NumKeys]bool
}

// NewKeypad is the preferred method of initialisation for the Keypad type.
func NewKeypad() *Keypad {
	return &Keypad{}
}

// Snapshot creates a copy of the keypad in its current state.
func (key *Keypad) Snapshot() *Keypad {
	n := *key
	return &n
}

// Reset releases all keys.
func (key *Keypad) Reset() {
	key.Keys = [NumKeys]bool{}
}

// Set the pressed state of the specified key. An error is returned if the key
// does not exist.
func (key *Keypad) Set(k uint8, down bool) error {
	if k >= NumKeys {
		return fmt.Errorf("keypad: no such key (%#02x)", k)
	}
	key.Keys[k] = down
	return nil
}

// IsPressed returns the pressed state of the specified key. Only the lower
// four bits of the argument are considered, a key value taken from a register
// can never fail.
func (key *Keypad) IsPressed(k uint8) bool {
	return key.Keys[k&0x0f]
}

// FirstPressed returns the lowest numbered key that is currently pressed. The
// second return value is false if no key is pressed.
func (key *Keypad) FirstPressed() (uint8, bool) {
	for k := 0; k < NumKeys; k++ {
		if key.Keys[k] {
			return uint8(k), true
		}
	}
	return 0, false
}

// String returns the keypad rendered in its physical layout. Pressed keys are
// bracketed.
func (key *Keypad) String() string {
	s := strings.Builder{}
	for i, k := range layout {
		if key.Keys[k] {
			s.WriteString(fmt.Sprintf("[%X]", k))
		} else {
			s.WriteString(fmt.Sprintf(" %X ", k))
		}
		if (i+1)%4 == 0 && i < NumKeys-1 {
			s.WriteString("\n")
		}
	}
	return s.String()
}
