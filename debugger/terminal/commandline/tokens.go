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

package commandline

import (
	"strings"
)

// Tokens represents tokenised input. This can be used to walk through the
// input string (using Get()) for eas(ier) parsing.
type Tokens struct {
	input  string
	tokens []string
	curr   int
}

// TokeniseInput creates and returns a new Tokens instance.
func TokeniseInput(input string) *Tokens {
	tkn := &Tokens{}

	// remove leading/trailing space
	input = strings.TrimSpace(input)

	// divide user input into tokens. removes excess white space
	tkn.tokens = tokeniseInput(input)

	// take a note of the raw input
	tkn.input = input

	return tkn
}

// tokeniseInput is the "raw" tokenising function (without wrapping everything
// up in a Tokens instance). used by the fancier TokeniseInput and anywhere
// else where we need to divide input into tokens (eg.
// TabCompletion.Complete()).
func tokeniseInput(input string) []string {
	return strings.Fields(input)
}

// String representation of the token list.
func (tkn *Tokens) String() string {
	return strings.Join(tkn.tokens, " ")
}

// Reset begins the token traversal process from the beginning.
func (tkn *Tokens) Reset() {
	tkn.curr = 0
}

// End the token traversal process. It can be restarted with the Reset()
// function.
func (tkn *Tokens) End() {
	tkn.curr = len(tkn.tokens)
}

// IsEnd returns true if we're at the end of the token list.
func (tkn *Tokens) IsEnd() bool {
	return tkn.curr >= len(tkn.tokens)
}

// Len returns the number of tokens.
func (tkn *Tokens) Len() int {
	return len(tkn.tokens)
}

// Remainder returns the remaining tokens as a string.
func (tkn *Tokens) Remainder() string {
	return strings.Join(tkn.tokens[tkn.curr:], " ")
}

// Remaining returns the count of tokens that are yet to be consumed.
func (tkn *Tokens) Remaining() int {
	return len(tkn.tokens) - tkn.curr
}

// Get returns the next token in the list, and a success boolean - if the end
// of the token list has been reached, the function returns false instead of
// true.
func (tkn *Tokens) Get() (string, bool) {
	if tkn.curr >= len(tkn.tokens) {
		return "", false
	}
	tkn.curr++
	return tkn.tokens[tkn.curr-1], true
}

// Unget walks backwards in the token list.
func (tkn *Tokens) Unget() {
	if tkn.curr > 0 {
		tkn.curr--
	}
}

// Peek returns the next token in the list (without advancing the list), and a
// success boolean - if the end of the token list has been reached, the
// function returns false instead of true.
func (tkn *Tokens) Peek() (string, bool) {
	if tkn.curr >= len(tkn.tokens) {
		return "", false
	}
	return tkn.tokens[tkn.curr], true
}

// Update replaces the most recently consumed token with a new value. Used
// during validation to normalise tokens (case, hex notation) so that later
// processing of the token list doesn't have to repeat the work.
func (tkn *Tokens) Update(tok string) {
	if tkn.curr > 0 {
		tkn.tokens[tkn.curr-1] = tok
	}
}

// ReplaceEnd changes the last entry of the token list.
func (tkn *Tokens) ReplaceEnd(newEnd string) {
	if len(tkn.tokens) == 0 {
		return
	}
	tkn.tokens[len(tkn.tokens)-1] = newEnd
}
