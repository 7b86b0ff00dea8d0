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

package video

import (
	"strings"

	"github.com/jetsetilly/gopher8/crunched"
)

// Width and Height are the dimensions of the CHIP-8 display in pixels.
const (
	Width  = 64
	Height = 32
)

// Values used in the display memory to indicate pixel state.
const (
	PixelOff = 0x00
	PixelOn  = 0xff
)

// Video implements the display of the CHIP-8 machine.
type Video struct {
	Display crunched.Data
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	vid := &Video{
		Display: crunched.NewQuick(Width * Height),
	}
	return vid
}

// Snapshot creates a copy of the display in its current state. The copy is
// crunched.
func (vid *Video) Snapshot() *Video {
	n := *vid
	n.Display = vid.Display.Snapshot()
	return &n
}

// Reset the display to all pixels off.
func (vid *Video) Reset() {
	vid.Clear()
}

// Clear all pixels. The implementation of the CLS instruction.
func (vid *Video) Clear() {
	data := *vid.Display.Data()
	for i := range data {
		data[i] = PixelOff
	}
}

// DrawSprite XORs the sprite data onto the display at the specified
// coordinates. Starting coordinates wrap around the display but the sprite
// itself is clipped at the edges. Returns true if any pixel was unset as a
// result of the draw.
func (vid *Video) DrawSprite(x uint8, y uint8, sprite []uint8) bool {
	data := *vid.Display.Data()

	px := int(x) % Width
	py := int(y) % Height

	var collision bool

	for dy, b := range sprite {
		if py+dy >= Height {
			break
		}
		for dx := 0; dx < 8; dx++ {
			if px+dx >= Width {
				break
			}
			if b&(0x80>>dx) != 0 {
				idx := (px + dx) + (py+dy)*Width
				cur := data[idx]
				data[idx] ^= PixelOn
				if cur == PixelOn && data[idx] == PixelOff {
					collision = true
				}
			}
		}
	}

	return collision
}

// String returns the display rendered with unicode block characters. Suitable
// for printing to a terminal.
func (vid *Video) String() string {
	data := *vid.Display.Data()

	frame := strings.Repeat("■", Width)

	s := strings.Builder{}
	s.WriteString(frame)
	s.WriteString("\n")
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if data[x+y*Width] != PixelOff {
				s.WriteString("■")
			} else {
				s.WriteString(" ")
			}
		}
		s.WriteString("\n")
	}
	s.WriteString(frame)
	return s.String()
}
