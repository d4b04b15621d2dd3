/*
Package ofx converts OFX (Open Financial Exchange) documents into JSON
trees. OFX bodies are SGML-derived tag soup rather than well-formed XML:
closing tags are optional, attribute values may be unquoted, and leaf
elements carry format-specific encodings such as YYYYMMDD datetimes with
bracketed timezone suffixes and Y/N booleans. This package recovers a
strict hierarchical document from that ambiguous token stream using a
declarative schema describing which tags nest and which tags are typed
leaves.

The package offers three entry points depending on the use case:

1. Tree Parsing

Parse returns the document as a JSON-compatible value tree (objects with
string keys, arrays, strings, numbers and booleans). Member keys are the
source tag names lower-cased.

	tree, err := ofx.Parse(data)
	if err != nil {
		// handle error
	}
	balance := tree["invstmtmsgsrsv1"]

2. JSON Conversion

Convert renders the tree directly to JSON bytes. The output is
deterministic: converting the same input twice produces identical bytes.

	out, err := ofx.Convert(data)

3. Struct Decoding

Unmarshal and Decoder map the tree onto caller-defined structs using
standard json field tags.

	type Signon struct {
		Sonrs struct {
			Language string `json:"language"`
		} `json:"sonrs"`
	}
	var v struct {
		Signon Signon `json:"signonmsgsrsv1"`
	}
	err := ofx.Unmarshal(data, &v)

The built-in schema covers OFX response documents (signon, investment
statements, security lists). A custom schema forest can be supplied with
the WithSchema option, and non-fatal notices about unrecognized elements
are available through WithDiagnostics. Unknown tags never abort
processing; they are reported and passed through as raw text pairs for
close resolution.
*/
package ofx
