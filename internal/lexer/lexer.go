// Package lexer tokenizes OFX tag soup into element events. The input is
// SGML-derived and permissive: closing tags are optional, attribute values
// may be unquoted, and layout is whitespace-insensitive. The lexer imposes
// no structure beyond individual tags; hierarchy is the builder's job.
package lexer

import (
	ofxerrors "github.com/reactsoft/go-ofx/errors"
	"github.com/reactsoft/go-ofx/internal/decode"
)

// Element is one structural event: an element open (possibly self-closing)
// or an element close. Attribute values and text have already been
// entity-decoded.
type Element struct {
	// Name is the tag name with source spelling, without any slashes.
	Name string

	// Attrs holds the attributes of an open event. Nil when the tag
	// carried none. An attribute without '=value' maps to the empty
	// string. The first occurrence of a repeated attribute wins.
	Attrs map[string]string

	// Text is the raw inner text following an open tag, with trailing
	// whitespace trimmed. Always empty for close and self-closing events.
	Text string

	// Close marks a close event (</NAME>).
	Close bool

	// SelfClosing marks an open event of the form <NAME/>. The caller is
	// expected to treat it as an open immediately followed by a synthetic
	// close of the same name.
	SelfClosing bool
}

// Lexer scans a buffer of OFX tag soup. The root tag name acts as the hard
// stop: a close event for it terminates the whole scan and is consumed,
// not delivered.
type Lexer struct {
	input string
	pos   int
	root  string
}

// New returns a Lexer over input. Scanning stops when a close event for
// root is seen, or at end of input.
func New(input, root string) *Lexer {
	return &Lexer{input: input, root: root}
}

// Next returns the next element event. It returns (nil, nil) when the
// document is done: end of input, or the root close tag was consumed.
// Any structural violation aborts the scan with a SyntaxError.
func (l *Lexer) Next() (*Element, error) {
	l.skipWhitespace()
	if l.pos >= len(l.input) {
		return nil, nil
	}
	if l.input[l.pos] != '<' {
		return nil, l.errorf("expected '<'")
	}
	l.pos++
	l.skipWhitespace()
	if l.pos >= len(l.input) {
		return nil, l.errorf("unexpected end of input in tag")
	}

	el := &Element{}
	if l.input[l.pos] == '/' {
		el.Close = true
		l.pos++
		l.skipWhitespace()
		if l.pos >= len(l.input) {
			return nil, l.errorf("unexpected end of input in close tag")
		}
	}

	el.Name = l.readName()
	if el.Name == "" {
		return nil, l.errorf("missing tag name")
	}

	if el.Close {
		l.skipWhitespace()
		if l.pos >= len(l.input) || l.input[l.pos] != '>' {
			return nil, l.errorf("expected '>' in close tag")
		}
		l.pos++
		if el.Name == l.root {
			return nil, nil
		}
		return el, nil
	}

	if err := l.readAttributes(el); err != nil {
		return nil, err
	}
	if l.pos >= len(l.input) {
		return nil, l.errorf("unexpected end of input in tag")
	}
	if l.input[l.pos] == '/' {
		el.SelfClosing = true
		l.pos++
	}
	l.skipWhitespace()
	if l.pos >= len(l.input) || l.input[l.pos] != '>' {
		return nil, l.errorf("expected '>'")
	}
	l.pos++

	if !el.SelfClosing {
		text, ok := l.readText()
		if !ok {
			return nil, l.errorf("unexpected end of input in element text")
		}
		el.Text = decode.Entities(text)
	}
	return el, nil
}

// readAttributes consumes name[=["]value["]] pairs up to the closing '>'
// or a self-closing '/'. Attributes can only follow whitespace after the
// tag name.
func (l *Lexer) readAttributes(el *Element) error {
	if !l.skipWhitespace() {
		return nil
	}
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		if ch == '>' || ch == '/' {
			return nil
		}
		name := l.readName()
		if name == "" {
			return l.errorf("missing attribute name")
		}
		l.skipWhitespace()
		if l.pos >= len(l.input) {
			return l.errorf("unexpected end of input in attributes")
		}
		val := ""
		if l.input[l.pos] == '=' {
			l.pos++
			l.skipWhitespace()
			if l.pos >= len(l.input) {
				return l.errorf("unexpected end of input in attribute value")
			}
			quoted := l.input[l.pos] == '"'
			if quoted {
				l.pos++
			}
			var ok bool
			val, ok = l.readAttrValue(quoted)
			if !ok {
				return l.errorf("malformed attribute value")
			}
			if quoted {
				if l.pos >= len(l.input) || l.input[l.pos] != '"' {
					return l.errorf("unterminated quoted attribute value")
				}
				l.pos++
			}
		}
		l.skipWhitespace()
		if el.Attrs == nil {
			el.Attrs = make(map[string]string)
		}
		if _, dup := el.Attrs[name]; !dup {
			el.Attrs[name] = decode.Entities(val)
		}
	}
	return nil
}

// readName consumes a bare name. Names terminate at whitespace or at any
// of the characters < > / = ".
func (l *Lexer) readName() string {
	start := l.pos
	for l.pos < len(l.input) && !isNameTerminator(l.input[l.pos]) {
		l.pos++
	}
	return l.input[start:l.pos]
}

// readAttrValue consumes an attribute value. Unquoted values terminate at
// the same character class as names and must be non-empty; quoted values
// terminate at the closing quote, which is left unconsumed.
func (l *Lexer) readAttrValue(quoted bool) (string, bool) {
	start := l.pos
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		if quoted {
			if ch == '"' {
				return l.input[start:l.pos], l.pos > start
			}
		} else if isNameTerminator(ch) {
			return l.input[start:l.pos], l.pos > start
		}
		l.pos++
	}
	if !quoted && l.pos > start {
		return l.input[start:l.pos], true
	}
	return "", false
}

// readText consumes raw inner text up to, but not including, the next '<'
// or '>', trimming trailing whitespace. Exhausting the input before a
// delimiter is a structural violation, reported by ok=false.
func (l *Lexer) readText() (string, bool) {
	l.skipWhitespace()
	start := l.pos
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		if ch == '<' || ch == '>' {
			end := l.pos
			for end > start && isSpace(l.input[end-1]) {
				end--
			}
			return l.input[start:end], true
		}
		l.pos++
	}
	return "", false
}

func (l *Lexer) skipWhitespace() bool {
	start := l.pos
	for l.pos < len(l.input) && isSpace(l.input[l.pos]) {
		l.pos++
	}
	return l.pos > start
}

func (l *Lexer) errorf(msg string) error {
	return &ofxerrors.SyntaxError{Offset: l.pos, Msg: msg}
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\v' || ch == '\f'
}

func isNameTerminator(ch byte) bool {
	return isSpace(ch) || ch == '<' || ch == '>' || ch == '/' || ch == '=' || ch == '"'
}
