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

package terminal

import (
	"errors"
	"os"

	"github.com/jetsetilly/gopher8/debugger/terminal/commandline"
)

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead waits for input from the user and returns it as a string,
	// without the trailing newline.
	//
	// If possible the TermRead() implementation should regularly check the
	// ReadEvents channels for activity. Not all implementations will be able
	// to do so because of the context in which they operate.
	//
	// Implementations that can't check ReadEvents will surely limit the
	// functionality of the debugger.
	TermRead(prompt Prompt, events *ReadEvents) (string, error)

	// TermReadCheck() returns true if there is input to be read. Not all
	// implementations will be able return anything meaningful in which case a
	// return value of false is fine.
	//
	// Note that TermReadCheck() does not check for events like TermRead().
	TermReadCheck() bool

	// IsRealTerminal() should return true if the implementation is connected
	// to a real terminal capable of user interaction. Instances that read
	// from a prepared source (a script for example) should return false.
	IsRealTerminal() bool
}

// Sentinal errors. Returned by TermRead() if caught whilst waiting for input.
// Not all terminal implementations will return these errors because of the
// context in which they operate and in those instances signals should be
// caught by the Signal channel found in the ReadEvents type.
var (
	UserInterrupt = errors.New("user interrupt")
	UserQuit      = errors.New("user quit")
	UserSignal    = errors.New("user signal")
)

// ReadEvents *must* be monitored during a TermRead().
type ReadEvents struct {
	// signals from the operating system
	Signal        chan os.Signal
	SignalHandler func(sig os.Signal) error

	// PushedFunction allows functions to be pushed into the debugger
	// goroutine from other goroutines
	//
	// errors are not returned by pushed functions so errors should be logged
	PushedFunction chan func()
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal defines the operations required by the debugger's command line interface.
type Terminal interface {
	// Terminal implementation also implement the Input and Output interfaces.
	Input
	Output

	// Initialise the terminal. not all terminal implementations will need to
	// do anything.
	Initialise() error

	// Restore the terminal to it's original state, if possible. for example,
	// we could use this to make sure the terminal is returned to canonical
	// mode. not all terminal implementations will need to do anything.
	CleanUp()

	// Register a tab completion implementation to use with the terminal. Not
	// all implementations need to respond meaningfully to this.
	RegisterTabCompletion(*commandline.TabCompletion)

	// Silence all input and output except error messages. In other words,
	// TermPrintLine() should display error messages even if silenced is true.
	Silence(silenced bool)
}

// Broker implementations can identify a terminal.
type Broker interface {
	GetTerminal() Terminal
}
