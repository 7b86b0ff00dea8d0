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
	"bufio"
	"io"
)

// readRune couples a rune with any error encountered while reading it.
type readRune struct {
	r   rune
	err error
}

// runeReader carries runes from the input stream to the TermRead()
// function. the buffer of one rune means TermReadCheck() can use the
// length of the channel to detect pending input.
type runeReader chan readRune

// initRuneReader starts the goroutine that reads from the input stream for
// the lifetime of the program.
func initRuneReader(input io.Reader) runeReader {
	br := bufio.NewReader(input)
	ch := make(chan readRune, 1)

	go func() {
		for {
			r, _, err := br.ReadRune()
			ch <- readRune{r: r, err: err}
		}
	}()

	return ch
}
