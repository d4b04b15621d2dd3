package lexer_test

import (
	"testing"

	ofxerrors "github.com/reactsoft/go-ofx/errors"
	"github.com/reactsoft/go-ofx/internal/lexer"
	"github.com/stretchr/testify/require"
)

func TestNext(t *testing.T) {
	input := `
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<MEMO>Fish &amp; Chips
<IMG SRC=logo.png ALT="a &quot;logo&quot;" WIDE/>
</SONRS>
`
	expected := []lexer.Element{
		{Name: "SIGNONMSGSRSV1"},
		{Name: "SONRS"},
		{Name: "STATUS"},
		{Name: "CODE", Text: "0"},
		{Name: "SEVERITY", Text: "INFO"},
		{Name: "STATUS", Close: true},
		{Name: "MEMO", Text: "Fish & Chips"},
		{
			Name: "IMG",
			Attrs: map[string]string{
				"SRC":  "logo.png",
				"ALT":  `a "logo"`,
				"WIDE": "",
			},
			SelfClosing: true,
		},
		{Name: "SONRS", Close: true},
	}

	l := lexer.New(input, "OFX")
	for i, want := range expected {
		el, err := l.Next()
		require.NoError(t, err, "event[%d]", i)
		require.NotNil(t, el, "event[%d]", i)
		require.Equal(t, want, *el, "event[%d]", i)
	}

	el, err := l.Next()
	require.NoError(t, err)
	require.Nil(t, el, "expected end of input")
}

func TestNextStopsAtRootClose(t *testing.T) {
	l := lexer.New("<CODE>0</OFX>trailing garbage < not scanned", "OFX")

	el, err := l.Next()
	require.NoError(t, err)
	require.Equal(t, lexer.Element{Name: "CODE", Text: "0"}, *el)

	// The root close event is consumed, not delivered, and nothing past
	// it is scanned.
	el, err = l.Next()
	require.NoError(t, err)
	require.Nil(t, el)
}

func TestNextWhitespaceTolerance(t *testing.T) {
	l := lexer.New("  < STATUS >  text here  < / STATUS >", "OFX")

	el, err := l.Next()
	require.NoError(t, err)
	require.Equal(t, lexer.Element{Name: "STATUS", Text: "text here"}, *el)

	el, err = l.Next()
	require.NoError(t, err)
	require.Equal(t, lexer.Element{Name: "STATUS", Close: true}, *el)
}

func TestNextUnquotedAttributeTerminators(t *testing.T) {
	l := lexer.New(`<A B=1/><C D=x>t</C>`, "OFX")

	el, err := l.Next()
	require.NoError(t, err)
	require.Equal(t, lexer.Element{Name: "A", Attrs: map[string]string{"B": "1"}, SelfClosing: true}, *el)

	el, err = l.Next()
	require.NoError(t, err)
	require.Equal(t, lexer.Element{Name: "C", Attrs: map[string]string{"D": "x"}, Text: "t"}, *el)
}

func TestNextRepeatedAttributeFirstWins(t *testing.T) {
	l := lexer.New(`<A B=1 B=2>x</A>`, "OFX")

	el, err := l.Next()
	require.NoError(t, err)
	require.Equal(t, map[string]string{"B": "1"}, el.Attrs)
}

func TestNextErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"text before tag", "garbage <A>"},
		{"missing name", "<>"},
		{"missing close name", "</ >"},
		{"eof in tag", "<A"},
		{"eof in close tag", "</A"},
		{"eof after open bracket", "<"},
		{"missing gt in close", "</A x"},
		{"unterminated quoted attribute", `<A B="x>`},
		{"empty quoted attribute", `<A B="">`},
		{"eof in attribute value", "<A B="},
		{"eof in element text", "<A>never closed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := lexer.New(tt.input, "OFX")
			var err error
			for err == nil {
				var el *lexer.Element
				el, err = l.Next()
				if el == nil && err == nil {
					t.Fatalf("scan finished without error for %q", tt.input)
				}
			}
			var syntaxErr *ofxerrors.SyntaxError
			require.ErrorAs(t, err, &syntaxErr, "input %q", tt.input)
		})
	}
}
