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

package cartridgeloader_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8/cartridgeloader"
	"github.com/jetsetilly/gopher8/test"
)

func writeImage(t *testing.T, name string, data []byte) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	err := os.WriteFile(fn, data, 0600)
	test.DemandSuccess(t, err)
	return fn
}

func TestLoad(t *testing.T) {
	fn := writeImage(t, "pong.ch8", []byte{0x12, 0x00})

	cl := cartridgeloader.NewLoader(fn)
	test.ExpectFailure(t, cl.HasLoaded())

	err := cl.Load()
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, cl.HasLoaded())
	test.ExpectEquality(t, len(cl.Data), 2)

	// hash is generated on load
	test.ExpectInequality(t, cl.Hash, "")

	// a second load is a no-op
	err = cl.Load()
	test.ExpectSuccess(t, err)
}

func TestLoad_missingFile(t *testing.T) {
	cl := cartridgeloader.NewLoader(filepath.Join(t.TempDir(), "no_such_file.ch8"))
	err := cl.Load()
	test.ExpectFailure(t, err)
}

func TestLoad_tooLarge(t *testing.T) {
	fn := writeImage(t, "big.ch8", make([]byte, cartridgeloader.MaxImageSize+1))

	cl := cartridgeloader.NewLoader(fn)
	err := cl.Load()
	test.ExpectSuccess(t, errors.Is(err, cartridgeloader.ImageTooLarge))
}

func TestLoad_limit(t *testing.T) {
	// an image of exactly the maximum size is fine
	fn := writeImage(t, "max.ch8", make([]byte, cartridgeloader.MaxImageSize))

	cl := cartridgeloader.NewLoader(fn)
	err := cl.Load()
	test.ExpectSuccess(t, err)
}

func TestLoad_hashCheck(t *testing.T) {
	fn := writeImage(t, "pong.ch8", []byte{0x12, 0x00})

	cl := cartridgeloader.NewLoader(fn)
	cl.Hash = "0000000000000000000000000000000000000000"
	err := cl.Load()
	test.ExpectSuccess(t, errors.Is(err, cartridgeloader.HashMismatch))
}

func TestShortName(t *testing.T) {
	cl := cartridgeloader.NewLoader("/home/user/roms/pong.ch8")
	test.ExpectEquality(t, cl.ShortName(), "pong")
}
