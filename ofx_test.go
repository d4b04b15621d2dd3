package ofx_test

import (
	"strings"
	"testing"

	ofx "github.com/reactsoft/go-ofx"
	ofxerrors "github.com/reactsoft/go-ofx/errors"
	"github.com/reactsoft/go-ofx/schema"
	"github.com/stretchr/testify/require"
)

const signonDoc = `OFXHEADER:100
DATA:OFXSGML
VERSION:102

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20210115120000[-5:EST]
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
</OFX>
`

func TestParseSignon(t *testing.T) {
	tree, err := ofx.Parse([]byte(signonDoc))
	require.NoError(t, err)

	require.Equal(t, map[string]any{
		"signonmsgsrsv1": map[string]any{
			"sonrs": map[string]any{
				"status": map[string]any{
					"code":     "0",
					"severity": "INFO",
				},
				"dtserver": "2021-01-15T12:00:00-05",
				"language": "ENG",
			},
		},
	}, tree)
}

func TestParseInvestmentStatement(t *testing.T) {
	doc := `<OFX>
<INVSTMTMSGSRSV1>
<INVSTMTTRNRS>
<TRNUID>1001
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<INVSTMTRS>
<DTASOF>20210331
<CURDEF>USD
<INVPOSLIST>
<POSSTOCK>
<INVPOS>
<SECID>
<UNIQUEID>037833100
<UNIQUEIDTYPE>CUSIP
</SECID>
<HELDINACCT>CASH
<UNITS>10
<UNITPRICE>131.25
<MKTVAL>1312.5
</INVPOS>
<REINVDIV>N
</POSSTOCK>
</INVPOSLIST>
</INVSTMTRS>
</INVSTMTTRNRS>
</INVSTMTMSGSRSV1>
</OFX>`

	tree, err := ofx.Parse([]byte(doc))
	require.NoError(t, err)

	msgs, ok := tree["invstmtmsgsrsv1"].([]any)
	require.True(t, ok, "INVSTMTMSGSRSV1 serializes as an array")
	require.Len(t, msgs, 1)

	trnrs := msgs[0].(map[string]any)["invstmttrnrs"].(map[string]any)
	require.Equal(t, "1001", trnrs["trnuid"])

	rs := trnrs["invstmtrs"].(map[string]any)
	require.Equal(t, "USD", rs["curdef"])
	require.Equal(t, "2021-03-31T00:00:00Z", rs["dtasof"])

	pos := rs["invposlist"].(map[string]any)["posstock"].(map[string]any)
	require.Equal(t, false, pos["reinvdiv"])

	invpos := pos["invpos"].(map[string]any)
	require.Equal(t, 10.0, invpos["units"])
	require.Equal(t, 131.25, invpos["unitprice"])
	require.Equal(t, 1312.5, invpos["mktval"])
	require.Equal(t, map[string]any{
		"uniqueid":     "037833100",
		"uniqueidtype": "CUSIP",
	}, invpos["secid"])
}

func TestParseNotAnOFXDocument(t *testing.T) {
	_, err := ofx.Parse([]byte("OFXHEADER:100\nbut no body"))
	require.ErrorIs(t, err, ofxerrors.ErrNotDocument)
}

func TestParseCloseMismatch(t *testing.T) {
	doc := `<OFX>
<SIGNONMSGSRSV1>
<SONRS>
</SIGNONMSGSRSV1>
</OFX>`

	_, err := ofx.Parse([]byte(doc))
	var mismatch *ofxerrors.CloseMismatchError
	require.ErrorAs(t, err, &mismatch)
	require.Equal(t, "SIGNONMSGSRSV1", mismatch.Tag)
	require.Equal(t, "SONRS", mismatch.Container)
}

func TestParseUnclosedContainer(t *testing.T) {
	// The root close stops the lexer while SONRS and SIGNONMSGSRSV1 are
	// still open.
	doc := `<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<LANGUAGE>ENG
</OFX>`

	_, err := ofx.Parse([]byte(doc))
	var unbalanced *ofxerrors.UnbalancedStackError
	require.ErrorAs(t, err, &unbalanced)
}

func TestParseNumberFailureIsFatal(t *testing.T) {
	doc := `<OFX>
<INVSTMTMSGSRSV1>
<INVSTMTTRNRS>
<INVSTMTRS>
<INVBAL>
<AVAILCASH>lots
</INVBAL>
</INVSTMTRS>
</INVSTMTTRNRS>
</INVSTMTMSGSRSV1>
</OFX>`

	_, err := ofx.Parse([]byte(doc))
	var decodeErr *ofxerrors.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	require.Equal(t, "AVAILCASH", decodeErr.Element)
}

type recordingDiagnostics struct {
	unrecognized []string
	processed    []error
}

func (r *recordingDiagnostics) Unrecognized(container, element, text string) {
	r.unrecognized = append(r.unrecognized, container+"/"+element)
}

func (r *recordingDiagnostics) Processed(err error) {
	r.processed = append(r.processed, err)
}

func TestParseUnknownTagDiagnostics(t *testing.T) {
	doc := `<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
<MYSTERY>??
</STATUS>
</SONRS>
</SIGNONMSGSRSV1>
</OFX>`

	diag := &recordingDiagnostics{}
	tree, err := ofx.Parse([]byte(doc), ofx.WithDiagnostics(diag))
	require.NoError(t, err)
	require.Equal(t, []string{"STATUS/MYSTERY"}, diag.unrecognized)
	require.Equal(t, []error{nil}, diag.processed)

	// The unknown tag is reported but never attached to the tree.
	status := tree["signonmsgsrsv1"].(map[string]any)["sonrs"].(map[string]any)["status"].(map[string]any)
	require.NotContains(t, status, "mystery")

	// Suppressing the channel does not change the output.
	quiet, err := ofx.Parse([]byte(doc))
	require.NoError(t, err)
	require.Equal(t, tree, quiet)
}

func TestConvertEmptyMessageSet(t *testing.T) {
	doc := `<OFX>
<INVSTMTMSGSRSV1>
</INVSTMTMSGSRSV1>
</OFX>`

	out, err := ofx.Convert([]byte(doc))
	require.NoError(t, err)
	require.Equal(t, `{"invstmtmsgsrsv1":[]}`, string(out))
}

func TestConvertDeterministic(t *testing.T) {
	first, err := ofx.Convert([]byte(signonDoc))
	require.NoError(t, err)
	second, err := ofx.Convert([]byte(signonDoc))
	require.NoError(t, err)
	require.Equal(t, string(first), string(second))
	require.True(t, strings.HasPrefix(string(first), "{"))
}

func TestParseCustomSchema(t *testing.T) {
	root := &schema.Node{
		Serialize: schema.Suppressed,
		Children: map[string]*schema.Node{
			"ITEM": {
				Serialize: schema.Object,
				Leaves:    map[string]schema.Kind{"QTY": schema.Number},
			},
		},
	}

	doc := `<DOC><ITEM><QTY>7</ITEM></DOC>`
	tree, err := ofx.Parse([]byte(doc), ofx.WithSchema(root), ofx.WithRootTag("DOC"))
	require.NoError(t, err)
	require.Equal(t, map[string]any{
		"item": map[string]any{"qty": 7.0},
	}, tree)
}

func TestOptionValidation(t *testing.T) {
	_, err := ofx.Parse([]byte("<OFX></OFX>"), ofx.WithSchema(nil))
	require.Error(t, err)

	_, err = ofx.Parse([]byte("<OFX></OFX>"), ofx.WithRootTag(""))
	require.Error(t, err)
}

func TestUnmarshal(t *testing.T) {
	var v struct {
		Signon struct {
			Sonrs struct {
				Language string `json:"language"`
				DTServer string `json:"dtserver"`
				Status   struct {
					Code string `json:"code"`
				} `json:"status"`
			} `json:"sonrs"`
		} `json:"signonmsgsrsv1"`
	}

	require.NoError(t, ofx.Unmarshal([]byte(signonDoc), &v))
	require.Equal(t, "ENG", v.Signon.Sonrs.Language)
	require.Equal(t, "2021-01-15T12:00:00-05", v.Signon.Sonrs.DTServer)
	require.Equal(t, "0", v.Signon.Sonrs.Status.Code)
}

func TestDecoder(t *testing.T) {
	var v map[string]any
	dec := ofx.NewDecoder(strings.NewReader(signonDoc))
	require.NoError(t, dec.Decode(&v))
	require.Contains(t, v, "signonmsgsrsv1")
}

func TestDecoderNilReader(t *testing.T) {
	var v any
	dec := ofx.NewDecoder(nil)
	require.Error(t, dec.Decode(&v))
}
