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
	"strconv"
	"strings"
)

// TabCompletion used to complete the last word in a command line, according
// to the commands the instance was initialised with.
type TabCompletion struct {
	cmds *Commands

	// options gathered during the most recent completion and the option that
	// was last returned
	options []string
	opt     int

	// the input that precedes the word being completed. the original
	// whitespace is not preserved
	context string

	// the string returned by the previous call to Complete(). if the next
	// input is the same as this then we cycle through the options from the
	// previous completion rather than starting afresh
	lastCompletion string
}

// NewTabCompletion is the preferred method of initialisation for the
// TabCompletion type.
func NewTabCompletion(cmds *Commands) *TabCompletion {
	return &TabCompletion{cmds: cmds}
}

// Complete transforms the input such that the last word in the input is
// expanded to the best candidate in the command template. Subsequent calls
// with the unchanged input cycle through the remaining candidates.
func (tc *TabCompletion) Complete(input string) string {
	// if the input hasn't changed since the last completion then cycle
	// through the options we found last time
	if len(tc.options) > 0 && input == tc.lastCompletion {
		tc.opt++
		if tc.opt >= len(tc.options) {
			tc.opt = 0
		}
		return tc.build()
	}

	tc.Reset()

	tokens := tokeniseInput(input)
	if len(tokens) == 0 {
		return input
	}

	// the word being completed and the input that precedes it. a trailing
	// space means that a new word is being started and every candidate at
	// that point is an option
	partial := strings.ToUpper(tokens[len(tokens)-1])
	context := tokens[:len(tokens)-1]
	if strings.HasSuffix(input, " ") {
		partial = ""
		context = tokens
	}

	if len(context) == 0 {
		// no context. the word being completed is the command itself
		for _, n := range tc.cmds.cmds {
			if strings.HasPrefix(n.tag, partial) {
				tc.options = append(tc.options, n.tag)
			}
		}
	} else {
		// find the command and walk its template, consuming the context
		// tokens. the nodes that can legally follow the context are gathered
		// as options
		for _, n := range tc.cmds.cmds {
			if strings.EqualFold(n.tag, context[0]) {
				tc.walk(n.next, context[1:], partial)
				break
			}
		}
	}

	// no options means no change to the input
	if len(tc.options) == 0 {
		return input
	}

	tc.opt = 0
	tc.context = strings.Join(context, " ")

	return tc.build()
}

// Reset is used to indicate that the user is no longer cycling through
// completion options.
func (tc *TabCompletion) Reset() {
	tc.options = tc.options[:0]
	tc.opt = 0
	tc.context = ""
	tc.lastCompletion = ""
}

// build assembles the completed input for the current option. the completed
// word is always followed by a trailing space.
func (tc *TabCompletion) build() string {
	s := strings.Builder{}
	if tc.context != "" {
		s.WriteString(tc.context)
		s.WriteString(" ")
	}
	s.WriteString(tc.options[tc.opt])
	s.WriteString(" ")
	tc.lastCompletion = s.String()
	return tc.lastCompletion
}

// walk consumes context tokens against a sequence of nodes, gathering
// completion options once every token has been consumed.
func (tc *TabCompletion) walk(seq []*node, toks []string, partial string) {
	if len(toks) == 0 {
		tc.gather(seq, partial)
		return
	}

	// tokens remain but there are no more nodes to match them against
	if len(seq) == 0 {
		return
	}

	tc.step(seq[0], seq[1:], toks, partial)

	// optional nodes can be skipped entirely
	if seq[0].typ == nodeOptional {
		tc.walk(seq[1:], toks, partial)
	}
}

// step matches a single token against a node and its branches, continuing the
// walk for every successful match.
func (tc *TabCompletion) step(n *node, cont []*node, toks []string, partial string) {
	if n.tag == "" {
		// a nested group. the group's sequence extends the continuation
		tc.walk(joinNodes(n.next, cont), toks, partial)
	} else if tokenMatch(n, toks[0]) {
		rest := cont
		if n.repeat != nil {
			// the repeat node is an optional group head so the walk is free
			// to loop around the group again or to fall through to the
			// continuation
			rest = append([]*node{n.repeat}, cont...)
		}
		tc.walk(joinNodes(n.next, rest), toks[1:], partial)
	}

	for _, b := range n.branch {
		tc.step(b, cont, toks, partial)
	}
}

// gather collects the tags of the nodes that can legally appear at this point
// in the input, filtered by the partial word being completed.
func (tc *TabCompletion) gather(seq []*node, partial string) {
	if len(seq) == 0 {
		return
	}

	tc.candidates(seq[0], seq[1:], partial)

	if seq[0].typ == nodeOptional {
		tc.gather(seq[1:], partial)
	}
}

// candidates adds a node's tag, and the tags of its branches, to the options
// list. placeholders are never candidates - we can't guess the user's
// argument for them.
func (tc *TabCompletion) candidates(n *node, cont []*node, partial string) {
	if n.tag == "" {
		tc.gather(joinNodes(n.next, cont), partial)
	} else if !n.isPlaceholder() && strings.HasPrefix(n.tag, partial) {
		tc.add(n.tag)
	}

	for _, b := range n.branch {
		tc.candidates(b, cont, partial)
	}
}

// add an option, ignoring duplicates.
func (tc *TabCompletion) add(tag string) {
	for _, o := range tc.options {
		if o == tag {
			return
		}
	}
	tc.options = append(tc.options, tag)
}

// tokenMatch compares a token against a single node's tag. placeholder tags
// match according to their placeholder class.
func tokenMatch(n *node, tok string) bool {
	switch n.tag {
	case "%N":
		_, err := strconv.ParseInt(tok, 0, 32)
		return err == nil
	case "%P":
		_, err := strconv.ParseFloat(tok, 32)
		return err == nil
	case "%S", "%F":
		return true
	}
	return strings.EqualFold(n.tag, tok)
}

// joinNodes concatenates two node sequences into a freshly allocated slice.
func joinNodes(a []*node, b []*node) []*node {
	s := make([]*node, 0, len(a)+len(b))
	s = append(s, a...)
	s = append(s, b...)
	return s
}
