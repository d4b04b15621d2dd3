package ofx

import (
	"fmt"
	"io"
)

// Unmarshal parses the OFX-encoded data and stores the resulting document
// in the value pointed to by v, using standard json field tags against the
// lower-cased member keys of the tree.
func Unmarshal(data []byte, v any, opts ...Option) error {
	tree, err := Parse(data, opts...)
	if err != nil {
		return err
	}
	buf, err := json.Marshal(tree)
	if err != nil {
		return err
	}
	return json.Unmarshal(buf, v)
}

// Decoder reads and decodes one OFX document from an input stream.
type Decoder struct {
	r    io.Reader
	opts []Option
}

// NewDecoder returns a new decoder that reads from r.
//
// The whole input is materialized before parsing begins; OFX close
// resolution depends on seeing the document as one buffer.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	return &Decoder{r: r, opts: opts}
}

// Decode reads the OFX document from its input and stores it in the value
// pointed to by v. See the documentation for Unmarshal for details about
// the conversion.
func (d *Decoder) Decode(v any) error {
	if d.r == nil {
		return fmt.Errorf("ofx: Decode(nil reader)")
	}
	data, err := io.ReadAll(d.r)
	if err != nil {
		return err
	}
	return Unmarshal(data, v, d.opts...)
}
