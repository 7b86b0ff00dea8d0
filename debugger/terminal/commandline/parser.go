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
	"fmt"
	"strings"
)

// ParseCommandTemplate turns a string representation of a command template
// into a machine readable representation.
//
// Each entry in the template array is the definition of a single command. The
// first word of the definition is the command itself, represented in the
// returned Commands by the root node of a tree. Subsequent words are the
// arguments to the command.
//
// Arguments can be grouped:
//
//	[ ... ]		required group
//	( ... )		optional group
//	{ ... }		repeat group
//
// The repeat group allows the argument(s) inside the braces to appear in the
// input any number of times, including not at all. Within a group, the pipe
// character separates alternatives:
//
//	DISPLAY (OFF|SCALE [%N])
//
// Groups can be nested. Placeholder directives stand in for classes of
// argument rather than exact words:
//
//	%N		numeric argument
//	%P		floating point argument
//	%S		string argument
//	%F		filename argument
//
// Placeholders can be labelled for the purposes of help text. For example,
// "%<first name>S". The label is not used during validation.
//
// Note that command templates are case insensitive; the parsed representation
// is normalised to upper case.
func ParseCommandTemplate(template []string) (*Commands, error) {
	cmds := &Commands{
		Index: make(map[string]*node),
		cmds:  make([]*node, 0, len(template)),
	}

	for t := range template {
		defn := template[t]

		// tidy up spaces in definition string before breaking each word apart
		defn = strings.Join(strings.Fields(defn), " ")

		// normalise to upper case
		defn = strings.ToUpper(defn)

		// parse the definition for this command
		p, d, err := parseDefinition(defn, "")
		if err != nil {
			return nil, fmt.Errorf("parser: %s: %s (char %d)", defn, err, d)
		}

		// check that parsing was complete
		if d < len(defn)-1 {
			return nil, fmt.Errorf("parser: %s: outstanding characters in definition (char %d)", defn, d)
		}

		// the command must be a real word, not a group or a placeholder
		if p.tag == "" {
			return nil, fmt.Errorf("parser: definition has no command")
		}

		// add to list of commands
		cmds.cmds = append(cmds.cmds, p)

		// create index entry
		if _, ok := cmds.Index[p.tag]; ok {
			return nil, fmt.Errorf("parser: %s: command defined more than once", p.tag)
		}
		cmds.Index[p.tag] = p
	}

	return cmds, nil
}

// parseDefinition parses a single command definition, recursing into itself
// for each group it encounters. the trigger argument indicates how the
// recursion was triggered - the empty string indicates the root group.
//
// returns the head node of the group, the position at which parsing ended
// (relative to the supplied definition string) and any error.
func parseDefinition(defn string, trigger string) (*node, int, error) {
	// working nodes should be initialised with this function
	newWorkingNode := func() (*node, error) {
		switch trigger {
		case "(":
			return &node{typ: nodeOptional}, nil
		case "[":
			return &node{typ: nodeRequired}, nil
		case "{":
			return &node{typ: nodeOptional, repeatStart: true}, nil
		case "|":
			return &node{}, nil
		case "":
			return &node{typ: nodeRoot}, nil
		}
		return nil, fmt.Errorf("unknown group type (%s)", trigger)
	}

	// the head node is the node returned by this invocation of the function.
	// it represents the first alternative in the group. subsequent
	// alternatives hang from the head node's branch array
	hn, err := newWorkingNode()
	if err != nil {
		return nil, 0, err
	}

	// the working node is the alternative currently being built. the first
	// word in the alternative becomes the working node's tag and subsequent
	// words and groups are appended to the next array
	wn := hn

	// the tag being built for the working node
	tag := strings.Builder{}

	// addWord adds a word (or a placeholder) to the working alternative. note
	// that nodes in the next array adopt the type of the alternative they
	// follow
	addWord := func(w string, label string) {
		if wn.tag == "" && wn.next == nil {
			wn.tag = w
			wn.placeholderLabel = label
			return
		}
		wn.next = append(wn.next, &node{tag: w, placeholderLabel: label, typ: wn.typ})
	}

	// addTag sends any tag currently being built to addWord
	addTag := func() {
		if tag.Len() == 0 {
			return
		}
		addWord(tag.String(), "")
		tag.Reset()
	}

	// markRepeats marks the node that ends each alternative in the group as a
	// repeat point. validation and tab completion loop back to the head of
	// the group from these nodes
	markRepeats := func() {
		end := func(n *node) *node {
			if len(n.next) > 0 {
				return n.next[len(n.next)-1]
			}
			return n
		}
		end(hn).repeat = hn
		for _, b := range hn.branch {
			end(b).repeat = hn
		}
	}

	for i := 0; i < len(defn); i++ {
		s := string(defn[i])

		switch s {
		case "(", "[", "{":
			addTag()

			// recurse into the group. note that the group is always appended
			// to the next array, even at the beginning of an alternative - in
			// that instance the working node keeps its empty tag and serves
			// only to group the sequence that follows
			ns, d, err := parseDefinition(defn[i+1:], s)
			if err != nil {
				return nil, i + d + 1, err
			}
			wn.next = append(wn.next, ns)
			i += d + 1

		case ")":
			if trigger != "(" {
				return nil, i, fmt.Errorf("unexpected group closure")
			}
			addTag()
			return hn, i, nil

		case "]":
			if trigger != "[" {
				return nil, i, fmt.Errorf("unexpected group closure")
			}
			addTag()
			return hn, i, nil

		case "}":
			if trigger != "{" {
				return nil, i, fmt.Errorf("unexpected group closure")
			}
			addTag()
			markRepeats()
			return hn, i, nil

		case "|":
			addTag()
			bn := &node{}
			hn.branch = append(hn.branch, bn)
			wn = bn

		case " ":
			addTag()

		case "%":
			// placeholder directives are single characters and must stand
			// apart from surrounding text
			if tag.Len() > 0 {
				return nil, i, fmt.Errorf("placeholder directives must be separated from surrounding text")
			}

			if i == len(defn)-1 {
				return nil, i, fmt.Errorf("orphaned placeholder directives not allowed")
			}

			// optional label between the percent sign and the directive
			var label string

			p := defn[i+1]
			if p == '<' {
				e := strings.IndexRune(defn[i+1:], '>')
				if e == -1 {
					return nil, i, fmt.Errorf("unclosed placeholder label")
				}
				label = defn[i+2 : i+1+e]
				i += e + 1
				if i == len(defn)-1 {
					return nil, i, fmt.Errorf("orphaned placeholder directives not allowed")
				}
				p = defn[i+1]
			}

			switch p {
			case 'N', 'P', 'S', 'F':
				addWord(fmt.Sprintf("%%%c", p), label)
			case '%':
				if label != "" {
					return nil, i, fmt.Errorf("placeholder label not allowed with %%%%")
				}
				addWord("%%", "")
			default:
				return nil, i + 1, fmt.Errorf("unknown placeholder directive (%%%c)", p)
			}

			// the directive must be followed by a delimiter of some sort
			if i+2 < len(defn) {
				switch defn[i+2] {
				case ' ', '|', '(', ')', '[', ']', '{', '}':
					// valid delimiters
				default:
					return nil, i + 2, fmt.Errorf("placeholder directives must be separated from surrounding text")
				}
			}

			i++

		default:
			tag.WriteString(s)
		}
	}

	// reached the end of the definition. this is an error unless we're
	// parsing the root group
	if trigger != "" {
		return nil, len(defn), fmt.Errorf("unclosed group")
	}

	addTag()

	return hn, len(defn) - 1, nil
}
