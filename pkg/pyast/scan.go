package pyast

import "strings"

// logicalLine is one logical statement line: physical lines joined across
// bracket, backslash and triple-quoted-string continuations, with comments
// stripped and string interiors blanked out.
type logicalLine struct {
	start  int // 0-based first physical line
	end    int // 0-based last physical line
	indent int
	text   string
}

// scanState carries string/bracket state across physical lines.
type scanState struct {
	stringDelim string // "", `'`, `"`, `'''` or `"""`
	escaped     bool
	depth       int
}

// scrub returns the code portion of one physical line: comments removed,
// string contents replaced with spaces, delimiters kept.
func (st *scanState) scrub(line string, lineNo int) (string, error) {
	var b strings.Builder
	i := 0
	for i < len(line) {
		c := line[i]
		if st.stringDelim != "" {
			switch {
			case st.escaped:
				st.escaped = false
				b.WriteByte(' ')
				i++
			case c == '\\':
				st.escaped = true
				b.WriteByte(' ')
				i++
			case strings.HasPrefix(line[i:], st.stringDelim):
				b.WriteString(st.stringDelim)
				i += len(st.stringDelim)
				st.stringDelim = ""
			default:
				b.WriteByte(' ')
				i++
			}
			continue
		}
		switch c {
		case '#':
			return b.String(), nil
		case '\'', '"':
			delim := string(c)
			if strings.HasPrefix(line[i:], strings.Repeat(delim, 3)) {
				delim = strings.Repeat(delim, 3)
			}
			st.stringDelim = delim
			b.WriteString(delim)
			i += len(delim)
		case '(', '[', '{':
			st.depth++
			b.WriteByte(c)
			i++
		case ')', ']', '}':
			st.depth--
			if st.depth < 0 {
				return "", &SyntaxError{Line: lineNo + 1, Msg: "unmatched closing bracket"}
			}
			b.WriteByte(c)
			i++
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String(), nil
}

// endOfPhysicalLine settles string state at a newline. A single-quoted
// string may only cross the newline behind a backslash escape.
func (st *scanState) endOfPhysicalLine(lineNo int) error {
	if len(st.stringDelim) == 1 {
		if !st.escaped {
			return &SyntaxError{Line: lineNo + 1, Msg: "EOL while scanning string literal"}
		}
		st.escaped = false
		return nil
	}
	// Inside a triple-quoted string a trailing backslash escapes the newline.
	st.escaped = false
	return nil
}

// indentWidth measures leading whitespace, expanding tabs to a width of 8.
func indentWidth(line string) int {
	w := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case ' ':
			w++
		case '\t':
			w += 8 - w%8
		default:
			return w
		}
	}
	return w
}

// trimContinuation strips an explicit line-continuation backslash from the
// end of a scrubbed code segment, reporting whether one was present.
func trimContinuation(text string) (string, bool) {
	trimmed := strings.TrimRight(text, " \t")
	if strings.HasSuffix(trimmed, "\\") {
		return trimmed[:len(trimmed)-1], true
	}
	return text, false
}

// scanLogicalLines assembles physical lines into logical statements. Blank
// and comment-only lines outside any continuation are dropped; they are not
// statements.
func scanLogicalLines(lines []string) ([]logicalLine, error) {
	var (
		out []logicalLine
		st  scanState
	)
	i := 0
	for i < len(lines) {
		text, err := st.scrub(lines[i], i)
		if err != nil {
			return nil, err
		}
		text, backslash := trimContinuation(text)
		if !backslash {
			if err := st.endOfPhysicalLine(i); err != nil {
				return nil, err
			}
		}
		if strings.TrimSpace(text) == "" && st.stringDelim == "" && st.depth == 0 && !backslash {
			i++
			continue
		}

		ll := logicalLine{start: i, indent: indentWidth(lines[i])}
		parts := []string{strings.TrimSpace(text)}
		for st.stringDelim != "" || st.depth > 0 || backslash {
			i++
			if i >= len(lines) {
				switch {
				case st.stringDelim != "":
					return nil, &SyntaxError{Line: ll.start + 1, Msg: "unterminated string literal"}
				case st.depth > 0:
					return nil, &SyntaxError{Line: ll.start + 1, Msg: "unclosed bracket at end of file"}
				default:
					return nil, &SyntaxError{Line: ll.start + 1, Msg: "line continuation at end of file"}
				}
			}
			text, err = st.scrub(lines[i], i)
			if err != nil {
				return nil, err
			}
			text, backslash = trimContinuation(text)
			if !backslash {
				if err := st.endOfPhysicalLine(i); err != nil {
					return nil, err
				}
			}
			parts = append(parts, strings.TrimSpace(text))
		}
		ll.end = i
		ll.text = strings.TrimSpace(strings.Join(parts, " "))
		out = append(out, ll)
		i++
	}
	return out, nil
}
