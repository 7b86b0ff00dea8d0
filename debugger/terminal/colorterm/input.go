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

package colorterm

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/debugger/terminal/colorterm/easyterm"
	"github.com/jetsetilly/gopher8/debugger/terminal/colorterm/easyterm/ansi"
)

// the maximum number of characters accepted in a single line of input.
const maxInputLen = 255

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(prompt terminal.Prompt, events *terminal.ReadEvents) (string, error) {
	if ct.silenced {
		return "", nil
	}

	if err := ct.RawMode(); err != nil {
		return "", err
	}
	defer func() {
		_ = ct.CanonicalMode()
	}()

	// limit input to the width of the terminal, leaving room for the prompt
	// and the cursor
	inputMax := maxInputLen
	_ = ct.UpdateGeometry()
	if width, _ := ct.Geometry(); width > 0 {
		if l := width - len(prompt.String()) - 1; l > 0 && l < inputMax {
			inputMax = l
		}
	}

	input := make([]rune, 0, maxInputLen)
	cursorPos := 0

	// how far back in the command history we are. an index equal to the
	// length of the history means we're not in the history at all
	historyIdx := len(ct.commandHistory)

	// the live input is stashed when we move into the command history and
	// restored when we move back past the most recent entry
	var liveInput []rune

	ct.printPrompt(prompt, input, cursorPos)

	for {
		var rr readRune

		select {
		case rr = <-ct.reader:
			if rr.err != nil {
				return "", fmt.Errorf("colorterm: %w", rr.err)
			}

		case sig := <-events.Signal:
			return "", events.SignalHandler(sig)

		case f := <-events.PushedFunction:
			// the pushed function may have printed to the terminal so redraw
			// the prompt once it has run
			f()
			ct.printPrompt(prompt, input, cursorPos)
			continue
		}

		switch rr.r {
		case easyterm.KeyInterrupt:
			ct.EasyTerm.TermPrint("\r\n")
			_ = ct.Flush()
			return "", terminal.UserInterrupt

		case easyterm.KeySuspend:
			_ = ct.CanonicalMode()
			easyterm.SuspendProcess()
			_ = ct.RawMode()

			// the window may have been resized while we were suspended
			_ = ct.UpdateGeometry()

		case easyterm.KeyTab:
			if ct.tabCompletion != nil {
				s := ct.tabCompletion.Complete(string(input))
				input = []rune(s)
				cursorPos = len(input)
			}

		case easyterm.KeyCarriageReturn:
			ct.EasyTerm.TermPrint("\r\n")
			_ = ct.Flush()

			if ct.tabCompletion != nil {
				ct.tabCompletion.Reset()
			}

			s := strings.TrimSpace(string(input))
			if len(s) > 0 {
				// don't store the command if it's a repeat of the previous
				// command
				if len(ct.commandHistory) == 0 || ct.commandHistory[len(ct.commandHistory)-1].input != s {
					ct.commandHistory = append(ct.commandHistory, command{input: s})
				}
			}

			return s, nil

		case easyterm.KeyEsc:
			rr = <-ct.reader
			if rr.err != nil {
				return "", fmt.Errorf("colorterm: %w", rr.err)
			}

			switch rr.r {
			case easyterm.EscCursor:
				rr = <-ct.reader
				if rr.err != nil {
					return "", fmt.Errorf("colorterm: %w", rr.err)
				}

				switch rr.r {
				case easyterm.CursorUp:
					if historyIdx > 0 {
						if historyIdx == len(ct.commandHistory) {
							liveInput = input
						}
						historyIdx--
						input = []rune(ct.commandHistory[historyIdx].input)
						cursorPos = len(input)
					}

				case easyterm.CursorDown:
					if historyIdx < len(ct.commandHistory) {
						historyIdx++
						if historyIdx == len(ct.commandHistory) {
							input = liveInput
						} else {
							input = []rune(ct.commandHistory[historyIdx].input)
						}
						cursorPos = len(input)
					}

				case easyterm.CursorForward:
					if cursorPos < len(input) {
						cursorPos++
					}

				case easyterm.CursorBackward:
					if cursorPos > 0 {
						cursorPos--
					}

				case easyterm.EscDelete:
					if cursorPos < len(input) {
						copy(input[cursorPos:], input[cursorPos+1:])
						input = input[:len(input)-1]
					}

					// the delete key sends a trailing tilde which must also
					// be consumed
					<-ct.reader

				case easyterm.EscHome:
					cursorPos = 0

				case easyterm.EscEnd:
					cursorPos = len(input)
				}
			}

		case easyterm.KeyBackspace, 127:
			if cursorPos > 0 {
				copy(input[cursorPos-1:], input[cursorPos:])
				input = input[:len(input)-1]
				cursorPos--
			}

		default:
			if unicode.IsPrint(rr.r) && len(input) < inputMax {
				input = append(input, 0)
				copy(input[cursorPos+1:], input[cursorPos:])
				input[cursorPos] = rr.r
				cursorPos++
			}
		}

		ct.printPrompt(prompt, input, cursorPos)
	}
}

// printPrompt clears the current line and redraws the prompt and the
// current input, leaving the cursor in the correct position.
func (ct *ColorTerminal) printPrompt(prompt terminal.Prompt, input []rune, cursorPos int) {
	ct.EasyTerm.TermPrint("\r")
	ct.EasyTerm.TermPrint(ansi.ClearLine)

	switch prompt.Type {
	case terminal.PromptTypeConfirm:
		ct.EasyTerm.TermPrint(ansi.Pens["blue"])
	default:
		ct.EasyTerm.TermPrint(ansi.PenStyles["bold"])
	}
	ct.EasyTerm.TermPrint(prompt.String())
	ct.EasyTerm.TermPrint(ansi.NormalPen)

	ct.EasyTerm.TermPrint(string(input))
	ct.EasyTerm.TermPrint(ansi.CursorMove(cursorPos - len(input)))

	_ = ct.Flush()
}

// TermReadCheck implements the terminal.Input interface.
func (ct *ColorTerminal) TermReadCheck() bool {
	return len(ct.reader) > 0
}
