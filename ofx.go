package ofx

import (
	"strings"

	jsoniter "github.com/json-iterator/go"

	ofxerrors "github.com/reactsoft/go-ofx/errors"
	"github.com/reactsoft/go-ofx/internal/builder"
	"github.com/reactsoft/go-ofx/internal/lexer"
)

var json = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

// Parse converts one OFX document into a JSON-compatible value tree.
// Everything before the first occurrence of the root open marker
// (typically the OFX declaration header) is skipped; its absence means the
// input is not an OFX document at all.
func Parse(data []byte, opts ...Option) (map[string]any, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}

	input := string(data)
	marker := "<" + o.rootTag + ">"
	idx := strings.Index(input, marker)
	if idx < 0 {
		return nil, ofxerrors.ErrNotDocument
	}

	l := lexer.New(input[idx+len(marker):], o.rootTag)
	b := builder.New(o.rootTag, o.schema, reporter(o.diag))

	doc, err := run(l, b)
	if o.diag != nil {
		o.diag.Processed(err)
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// run feeds lexer events to the builder until the lexer reports the
// document's hard stop or a fatal error occurs, then finalizes the stack.
func run(l *lexer.Lexer, b *builder.Builder) (map[string]any, error) {
	for {
		el, err := l.Next()
		if err != nil {
			return nil, err
		}
		if el == nil {
			break
		}
		if el.Close {
			if err := b.Close(el.Name); err != nil {
				return nil, err
			}
			continue
		}
		if err := b.Open(el.Name, el.Text); err != nil {
			return nil, err
		}
		if el.SelfClosing {
			if err := b.Close(el.Name); err != nil {
				return nil, err
			}
		}
	}
	return b.Finish()
}

// reporter adapts the public diagnostics value for the builder. A nil
// Diagnostics suppresses the channel entirely.
func reporter(d Diagnostics) builder.Reporter {
	if d == nil {
		return nil
	}
	return d
}

// Convert parses data and renders the resulting tree as JSON. The
// rendering is deterministic; converting equal inputs yields identical
// bytes.
func Convert(data []byte, opts ...Option) ([]byte, error) {
	tree, err := Parse(data, opts...)
	if err != nil {
		return nil, err
	}
	return json.Marshal(tree)
}
