// Package schema defines the declarative model that drives OFX tree
// reconstruction: which tags nest, which tags are typed leaves, and how a
// container's value is attached to its parent once it closes.
//
// A schema is an acyclic forest of Node values built once and shared
// read-only across parsing runs. Nodes may be referenced from several
// parents (OFX reuses aggregates such as CURRENCY and INVTRAN freely), but
// no Node may reach itself through Children.
package schema

// Kind identifies how a leaf tag's text content is decoded.
type Kind int

const (
	String Kind = iota
	Number
	Boolean
	Datetime
)

// String returns the lower-case name of the kind, as used in diagnostics
// and decode error messages.
func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Number:
		return "number"
	case Boolean:
		return "boolean"
	case Datetime:
		return "datetime"
	}
	return "unknown"
}

// Mode controls both the storage backing an open container and how its
// accumulated value is folded into the parent when the container closes.
type Mode int

const (
	// Suppressed containers have no value of their own; children attach
	// directly to the enclosing object (for the document root, the output
	// tree itself). Nothing is folded on close.
	Suppressed Mode = iota

	// Object containers accumulate an object and fold it into the parent
	// as a member named after the container's tag, lower-cased.
	Object

	// ObjectInArray containers accumulate an object and append it to the
	// parent's array on close.
	ObjectInArray

	// NamedObjectInArray containers accumulate an object, wrap it in a
	// single-member object keyed by the container's tag lower-cased, and
	// append the wrapper to the parent's array.
	NamedObjectInArray

	// Array containers accumulate an array and fold it into the parent as
	// a member named after the container's tag, lower-cased.
	Array
)

// Node describes one document element. The zero value is a valid empty
// Suppressed node.
type Node struct {
	// Serialize selects the container's storage and fold policy.
	Serialize Mode

	// Children maps child tag names (case-sensitive, source spelling) to
	// the schema node a matching open event pushes.
	Children map[string]*Node

	// Leaves maps leaf tag names to the kind their text decodes to.
	Leaves map[string]Kind
}
