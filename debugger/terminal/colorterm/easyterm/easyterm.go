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

//go:build !windows
// +build !windows

package easyterm

import (
	"bufio"
	"fmt"
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// EasyTerm is the main type for this package. Use Initialise() to prepare a
// new instance. For example:
//
//	et := easyterm.EasyTerm{}
//	err := et.Initialise(os.Stdin, os.Stdout)
//	if err != nil {
//		...
//	}
//	defer et.CleanUp()
type EasyTerm struct {
	input  *os.File
	output *os.File

	// output is buffered so that redraws of the input line appear in one
	// go. nothing reaches the terminal until Flush() is called
	buffer *bufio.Writer

	// attributes of the terminal at the time of initialisation. the
	// terminal is returned to this state by CleanUp()
	canAttr unix.Termios

	// attributes to use when the terminal is in raw mode
	rawAttr unix.Termios

	// the dimensions of the terminal at the most recent call to
	// UpdateGeometry()
	geometry unix.Winsize
}

// Initialise the terminal. the terminal is not yet in raw mode, call
// RawMode() for that.
func (et *EasyTerm) Initialise(input *os.File, output *os.File) error {
	et.input = input
	et.output = output
	et.buffer = bufio.NewWriter(output)

	if err := termios.Tcgetattr(et.input.Fd(), &et.canAttr); err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}

	// raw mode turns off canonical processing and echoing. reads return as
	// soon as a single byte is available
	et.rawAttr = et.canAttr
	et.rawAttr.Lflag &^= unix.ICANON | unix.ECHO
	et.rawAttr.Cc[unix.VMIN] = 1
	et.rawAttr.Cc[unix.VTIME] = 0

	if err := et.UpdateGeometry(); err != nil {
		return err
	}

	return nil
}

// CleanUp returns the terminal to the state it was in when Initialise() was
// called.
func (et *EasyTerm) CleanUp() {
	_ = et.buffer.Flush()
	_ = termios.Tcsetattr(et.input.Fd(), termios.TCSAFLUSH, &et.canAttr)
}

// RawMode puts the terminal into raw mode.
func (et *EasyTerm) RawMode() error {
	if err := termios.Tcsetattr(et.input.Fd(), termios.TCSAFLUSH, &et.rawAttr); err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}
	return nil
}

// CanonicalMode puts the terminal back into the mode it was in at
// initialisation. probably canonical mode but not necessarily.
func (et *EasyTerm) CanonicalMode() error {
	if err := termios.Tcsetattr(et.input.Fd(), termios.TCSAFLUSH, &et.canAttr); err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}
	return nil
}

// UpdateGeometry gathers the current dimensions of the output terminal.
func (et *EasyTerm) UpdateGeometry() error {
	w, err := unix.IoctlGetWinsize(int(et.output.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}
	et.geometry = *w
	return nil
}

// Geometry returns the width and height (in characters and lines) of the
// terminal, as they were at the most recent call to UpdateGeometry().
func (et *EasyTerm) Geometry() (int, int) {
	return int(et.geometry.Col), int(et.geometry.Row)
}

// TermPrint writes the string to the output buffer. the string will not
// appear on the terminal until Flush() is called.
func (et *EasyTerm) TermPrint(s string) {
	_, _ = et.buffer.WriteString(s)
}

// Flush sends all buffered output to the terminal.
func (et *EasyTerm) Flush() error {
	if err := et.buffer.Flush(); err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}
	return nil
}
