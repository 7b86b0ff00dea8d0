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

package keypad_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/test"
)

func TestSet(t *testing.T) {
	key := keypad.NewKeypad()

	test.ExpectSuccess(t, key.Set(0x05, true))
	test.ExpectEquality(t, key.IsPressed(0x05), true)
	test.ExpectEquality(t, key.IsPressed(0x06), false)

	test.ExpectSuccess(t, key.Set(0x05, false))
	test.ExpectEquality(t, key.IsPressed(0x05), false)

	// key values beyond the keypad are an error
	test.ExpectFailure(t, key.Set(0x10, true))
}

func TestFirstPressed(t *testing.T) {
	key := keypad.NewKeypad()

	_, ok := key.FirstPressed()
	test.ExpectEquality(t, ok, false)

	test.ExpectSuccess(t, key.Set(0x0a, true))
	test.ExpectSuccess(t, key.Set(0x03, true))

	// lowest numbered key wins
	k, ok := key.FirstPressed()
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, k, uint8(0x03))
}

func TestReset(t *testing.T) {
	key := keypad.NewKeypad()

	test.ExpectSuccess(t, key.Set(0x00, true))
	test.ExpectSuccess(t, key.Set(0x0f, true))
	key.Reset()

	_, ok := key.FirstPressed()
	test.ExpectEquality(t, ok, false)
}
