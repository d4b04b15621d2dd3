package ofx

import (
	"fmt"

	"github.com/reactsoft/go-ofx/schema"
)

// options holds the per-run configuration. There is no ambient state; a
// run is configured entirely through the Option values passed to it.
type options struct {
	rootTag string
	schema  *schema.Node
	diag    Diagnostics
}

func defaultOptions() options {
	return options{
		rootTag: "OFX",
		schema:  schema.OFX(),
	}
}

// Option configures a parsing run.
type Option func(*options) error

// WithSchema replaces the built-in OFX response schema with a caller-owned
// schema forest. The forest is read-only to the parser and may be shared
// across concurrent runs.
func WithSchema(root *schema.Node) Option {
	return func(o *options) error {
		if root == nil {
			return fmt.Errorf("ofx: schema root must not be nil")
		}
		o.schema = root
		return nil
	}
}

// WithRootTag changes the tag name that marks the document root. The
// default is OFX.
func WithRootTag(name string) Option {
	return func(o *options) error {
		if name == "" {
			return fmt.Errorf("ofx: root tag must not be empty")
		}
		o.rootTag = name
		return nil
	}
}

// WithDiagnostics installs a receiver for the run's non-fatal notices.
// Without it the channel is suppressed; the output tree is identical
// either way.
func WithDiagnostics(d Diagnostics) Option {
	return func(o *options) error {
		o.diag = d
		return nil
	}
}
