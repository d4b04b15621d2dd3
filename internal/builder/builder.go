// Package builder reconstructs a strict JSON-compatible tree from the flat
// element-event stream of the lexer, driven by a schema. It maintains a
// stack of open containers and resolves OFX's implicit tag closing: a
// close event is matched backward through the tags seen since the
// container opened, so elements that never received an explicit close are
// reconciled with the tree model deterministically.
package builder

import (
	"strings"

	ofxerrors "github.com/reactsoft/go-ofx/errors"
	"github.com/reactsoft/go-ofx/internal/decode"
	"github.com/reactsoft/go-ofx/schema"
)

// Reporter receives non-fatal notices about elements that are present in
// the input but absent from the schema. A nil Reporter discards them.
type Reporter interface {
	Unrecognized(container, element, text string)
}

// pendingTag is one (tag, raw text) pair recorded under an open container
// since its last resolved close. The list feeds close resolution.
type pendingTag struct {
	tag  string
	text string
}

// frame is one open container. Its storage is chosen by the schema node's
// serialize mode; suppressed frames alias the enclosing frame's storage so
// their children attach directly to it.
type frame struct {
	name    string
	node    *schema.Node
	obj     map[string]any
	arr     *[]any
	pending []pendingTag
}

// Builder consumes element events and incrementally builds the output
// tree. One Builder serves exactly one parsing run.
type Builder struct {
	doc   map[string]any
	stack []*frame
	rep   Reporter
}

// New returns a Builder primed with a root container for rootTag described
// by root. The schema is borrowed and never mutated.
func New(rootTag string, root *schema.Node, rep Reporter) *Builder {
	b := &Builder{
		doc: make(map[string]any),
		rep: rep,
	}
	b.push(rootTag, root)
	return b
}

func (b *Builder) top() *frame {
	return b.stack[len(b.stack)-1]
}

func (b *Builder) push(name string, node *schema.Node) {
	f := &frame{name: name, node: node}
	switch node.Serialize {
	case schema.Object, schema.ObjectInArray, schema.NamedObjectInArray:
		f.obj = make(map[string]any)
	case schema.Array:
		// Non-nil so an empty container still folds as [] rather
		// than null.
		arr := make([]any, 0)
		f.arr = &arr
	default:
		// Suppressed: alias the enclosing storage, or the document
		// itself for the root frame.
		if len(b.stack) > 0 {
			parent := b.top()
			f.obj = parent.obj
			f.arr = parent.arr
		} else {
			f.obj = b.doc
		}
	}
	b.stack = append(b.stack, f)
}

// Open handles an open event for tag name with inner text. The tag is
// matched against the current container's schema: a child pushes a new
// container, a leaf decodes and attaches, and anything else is reported
// as unrecognized. Leaf and unrecognized tags are recorded on the pending
// list either way.
func (b *Builder) Open(name, text string) error {
	top := b.top()
	if child, ok := top.node.Children[name]; ok {
		b.push(name, child)
		return nil
	}
	if kind, ok := top.node.Leaves[name]; ok {
		if err := top.addLeaf(name, kind, text); err != nil {
			return err
		}
	} else {
		if b.rep != nil {
			b.rep.Unrecognized(top.name, name, text)
		}
	}
	top.pending = append(top.pending, pendingTag{tag: name, text: text})
	return nil
}

// Close handles a close event for tag name. The pending list is scanned
// from the most recent entry backward, removing entries until one matches
// name or the list is exhausted. An exhausted list with name equal to the
// container's own tag closes the container; an exhausted list without a
// match is a structural mismatch. A match partway absorbs the close as
// that of an implicitly-open tag and the container stays open.
func (b *Builder) Close(name string) error {
	top := b.top()
	found := false
	for len(top.pending) > 0 && !found {
		if top.pending[len(top.pending)-1].tag == name {
			found = true
		}
		top.pending = top.pending[:len(top.pending)-1]
	}
	if len(top.pending) == 0 && name == top.name {
		b.fold(top)
		b.stack = b.stack[:len(b.stack)-1]
		return nil
	}
	if !found {
		return &ofxerrors.CloseMismatchError{Tag: name, Container: top.name}
	}
	return nil
}

// Finish resolves the root container, which is never explicitly closed
// because the lexer consumes the root close event as its stop condition,
// and validates that no containers remain open. It returns the completed
// tree.
func (b *Builder) Finish() (map[string]any, error) {
	if len(b.stack) == 1 {
		if err := b.Close(b.top().name); err != nil {
			return nil, err
		}
	}
	if len(b.stack) != 0 {
		return nil, &ofxerrors.UnbalancedStackError{Depth: len(b.stack)}
	}
	return b.doc, nil
}

// fold attaches a closed container's accumulated value to its parent per
// the serialize mode. The root frame has no parent and folds nowhere.
func (b *Builder) fold(f *frame) {
	if len(b.stack) < 2 {
		return
	}
	parent := b.stack[len(b.stack)-2]
	switch f.node.Serialize {
	case schema.Object:
		parent.addMember(f.name, f.obj)
	case schema.Array:
		parent.addMember(f.name, *f.arr)
	case schema.ObjectInArray:
		parent.appendElem(f.obj)
	case schema.NamedObjectInArray:
		parent.appendElem(map[string]any{strings.ToLower(f.name): f.obj})
	}
}

// addLeaf decodes text per the leaf's declared kind and attaches the
// result. Number and boolean failures are fatal; a datetime that does not
// parse degrades to its raw text.
func (f *frame) addLeaf(name string, kind schema.Kind, text string) error {
	switch kind {
	case schema.Number:
		v, ok := decode.Number(text)
		if !ok {
			return &ofxerrors.DecodeError{Element: name, Kind: kind, Text: text}
		}
		f.addMember(name, v)
	case schema.Boolean:
		v, ok := decode.Bool(text)
		if !ok {
			return &ofxerrors.DecodeError{Element: name, Kind: kind, Text: text}
		}
		f.addMember(name, v)
	case schema.Datetime:
		if dt, ok := decode.ParseDatetime(text); ok {
			f.addMember(name, dt.String())
		} else {
			f.addMember(name, text)
		}
	default:
		f.addMember(name, text)
	}
	return nil
}

// addMember attaches a named member to the frame's object storage, keyed
// by the tag name lower-cased. Frames backed only by an array have no
// member storage; the value is dropped there while close resolution still
// sees the tag through the pending list.
func (f *frame) addMember(name string, v any) {
	if f.obj == nil {
		return
	}
	f.obj[strings.ToLower(name)] = v
}

// appendElem appends v to the frame's array storage.
func (f *frame) appendElem(v any) {
	if f.arr == nil {
		return
	}
	*f.arr = append(*f.arr, v)
}
