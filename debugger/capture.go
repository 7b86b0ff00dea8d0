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

package debugger

import (
	"fmt"

	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/wavwriter"
)

// startCapture begins a buzzer capture. Only one capture can be in progress
// at a time.
func (dbg *Debugger) startCapture(filename string) error {
	if dbg.buzzer != nil {
		return fmt.Errorf("capture already in progress (use CAPTURE END)")
	}

	var err error
	dbg.buzzer, err = wavwriter.New(filename)
	if err != nil {
		return err
	}

	// the buzzer may already be sounding when the capture starts
	if dbg.ch.Timers.SoundPlaying {
		dbg.buzzer.SetBuzzer(true)
	}

	dbg.printLine(terminal.StyleFeedback, "capturing buzzer to %s", filename)

	return nil
}

// endCapture writes out the buzzer capture in progress, if there is one.
func (dbg *Debugger) endCapture() error {
	if dbg.buzzer == nil {
		return nil
	}

	err := dbg.buzzer.EndMixing()
	dbg.buzzer = nil
	if err != nil {
		return err
	}

	return nil
}
