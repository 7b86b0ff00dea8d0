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

package video_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/video"
	"github.com/jetsetilly/gopher8/test"
)

func pixel(vid *video.Video, x int, y int) uint8 {
	return (*vid.Display.Data())[x+y*video.Width]
}

func TestDrawSprite(t *testing.T) {
	vid := video.NewVideo()

	// a single row sprite with all bits set
	collision := vid.DrawSprite(0, 0, []uint8{0xff})
	test.ExpectEquality(t, collision, false)
	for x := 0; x < 8; x++ {
		test.ExpectEquality(t, pixel(vid, x, 0), uint8(video.PixelOn))
	}
	test.ExpectEquality(t, pixel(vid, 8, 0), uint8(video.PixelOff))

	// drawing the same sprite again unsets every pixel and reports the
	// collision
	collision = vid.DrawSprite(0, 0, []uint8{0xff})
	test.ExpectEquality(t, collision, true)
	for x := 0; x < 8; x++ {
		test.ExpectEquality(t, pixel(vid, x, 0), uint8(video.PixelOff))
	}
}

func TestDrawSprite_clipping(t *testing.T) {
	vid := video.NewVideo()

	// starting coordinates are inside the display but the sprite extends
	// beyond the right edge. the overhang is clipped, not wrapped
	collision := vid.DrawSprite(60, 0, []uint8{0xff})
	test.ExpectEquality(t, collision, false)
	for x := 60; x < 64; x++ {
		test.ExpectEquality(t, pixel(vid, x, 0), uint8(video.PixelOn))
	}
	test.ExpectEquality(t, pixel(vid, 0, 0), uint8(video.PixelOff))

	// same idea at the bottom edge
	collision = vid.DrawSprite(0, 30, []uint8{0x80, 0x80, 0x80, 0x80})
	test.ExpectEquality(t, collision, false)
	test.ExpectEquality(t, pixel(vid, 0, 30), uint8(video.PixelOn))
	test.ExpectEquality(t, pixel(vid, 0, 31), uint8(video.PixelOn))
	test.ExpectEquality(t, pixel(vid, 0, 0), uint8(video.PixelOff))
	test.ExpectEquality(t, pixel(vid, 0, 1), uint8(video.PixelOff))
}

func TestDrawSprite_wrapping(t *testing.T) {
	vid := video.NewVideo()

	// starting coordinates beyond the display wrap around
	collision := vid.DrawSprite(64, 32, []uint8{0x80})
	test.ExpectEquality(t, collision, false)
	test.ExpectEquality(t, pixel(vid, 0, 0), uint8(video.PixelOn))
}

func TestClear(t *testing.T) {
	vid := video.NewVideo()

	_ = vid.DrawSprite(10, 10, []uint8{0xff, 0xff})
	vid.Clear()
	for y := 0; y < video.Height; y++ {
		for x := 0; x < video.Width; x++ {
			if pixel(vid, x, y) != video.PixelOff {
				t.Fatalf("pixel at %d,%d not cleared", x, y)
			}
		}
	}
}

func TestSnapshot(t *testing.T) {
	vid := video.NewVideo()
	_ = vid.DrawSprite(0, 0, []uint8{0x80})

	snap := vid.Snapshot()

	vid.Clear()
	test.ExpectEquality(t, pixel(vid, 0, 0), uint8(video.PixelOff))
	test.ExpectEquality(t, pixel(snap, 0, 0), uint8(video.PixelOn))
}
