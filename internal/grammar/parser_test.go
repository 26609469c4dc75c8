package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestParse_AttributeForms(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		src      string
		wantForm Form
		want     cty.Value
	}{
		{name: "quoted", src: `description "A project"`, wantForm: Quoted, want: cty.StringVal("A project")},
		{name: "empty quoted", src: `description ""`, wantForm: Quoted, want: cty.StringVal("")},
		{name: "bare", src: `currency EUR`, wantForm: Bare, want: cty.StringVal("EUR")},
		{name: "number", src: `min_amount 5`, wantForm: Numeric, want: cty.NumberIntVal(5)},
		{name: "amount", src: `amount 10 USD`, wantForm: Amount, want: cty.TupleVal([]cty.Value{cty.NumberIntVal(10), cty.StringVal("USD")})},
		{name: "currency on next line", src: "min_amount 5\ncurrency EUR", wantForm: Numeric, want: cty.NumberIntVal(5)},
		{name: "list", src: `benefits ["a", "b",]`, wantForm: List, want: cty.ListVal([]cty.Value{cty.StringVal("a"), cty.StringVal("b")})},
		{name: "empty list", src: `benefits []`, wantForm: List, want: cty.ListValEmpty(cty.String)},
		{name: "multi-line list", src: "benefits [\n  \"a\"\n]", wantForm: List, want: cty.ListVal([]cty.Value{cty.StringVal("a")})},
		{name: "dollar and percent", src: `description "50% off, $5"`, wantForm: Quoted, want: cty.StringVal("50% off, $5")},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Act ---
			body, diags := Parse([]byte(tc.src), "test.funding")

			// --- Assert ---
			require.False(t, diags.HasErrors(), "unexpected diagnostics: %s", diags.Error())
			require.NotEmpty(t, body.Attributes)
			attr := body.Attributes[0]
			assert.Equal(t, tc.wantForm, attr.Form)
			assert.True(t, tc.want.RawEquals(attr.Value), "got %#v", attr.Value)
		})
	}
}

func TestParse_Blocks(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	src := `
# hash comment
sources {
	custom "Site" // trailing comment
	{
		url "https://example.com/a{b}" /* block
		comment */ active false
		config {
			"k1" "v1"
			"k2" "v2"
		}
	}
}
`

	// --- Act ---
	body, diags := Parse([]byte(src), "test.funding")

	// --- Assert ---
	require.False(t, diags.HasErrors(), "unexpected diagnostics: %s", diags.Error())
	sources := body.FirstBlock("sources", 0)
	require.NotNil(t, sources)
	require.Len(t, sources.Body.Blocks, 1)

	custom := sources.Body.Blocks[0]
	assert.Equal(t, "custom", custom.Type)
	assert.Equal(t, []string{"Site"}, custom.Labels)
	require.Len(t, custom.Body.Attributes, 2)
	assert.Equal(t, "https://example.com/a{b}", custom.Body.Attributes[0].Value.AsString())
	assert.Equal(t, "active", custom.Body.Attributes[1].Name)

	cfg := custom.Body.FirstBlock("config", 0)
	require.NotNil(t, cfg)
	require.Len(t, cfg.Body.Pairs, 2)
	assert.Equal(t, "k2", cfg.Body.Pairs[1].Key)
	assert.Equal(t, "v2", cfg.Body.Pairs[1].Value)
}

func TestParse_NumberBeforeNextItem(t *testing.T) {
	t.Parallel()

	// --- Act ---
	body, diags := Parse([]byte(`max_sponsors 10 benefits ["a"] description "d"`), "test.funding")

	// --- Assert ---
	require.False(t, diags.HasErrors(), "unexpected diagnostics: %s", diags.Error())
	require.Len(t, body.Attributes, 3)
	assert.Equal(t, Numeric, body.Attributes[0].Form, "an identifier that opens the next item is not a currency")
	assert.Equal(t, List, body.Attributes[1].Form)
	assert.Equal(t, Quoted, body.Attributes[2].Form)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		src         string
		wantSummary string
	}{
		{name: "unclosed block", src: `funding "x" {`, wantSummary: "Unclosed block"},
		{name: "stray closing brace", src: `}`, wantSummary: "Unexpected closing brace"},
		{name: "template interpolation", src: `description "${var}"`, wantSummary: "Unsupported template sequence"},
		{name: "exponent number", src: `min_amount 1e3`, wantSummary: "Invalid number"},
		{name: "number in list", src: `benefits [1]`, wantSummary: "Invalid list item"},
		{name: "missing list separator", src: `benefits ["a" "b"]`, wantSummary: "Missing item separator"},
		{name: "pair value on next line", src: "\"k\"\n\"v\"", wantSummary: "Invalid config entry"},
		{name: "missing value", src: `description }`, wantSummary: "Invalid value"},
		{name: "stray number", src: `10`, wantSummary: "Argument or block definition required"},
		{name: "multi-line string", src: "description \"a\nb\"", wantSummary: "Invalid multi-line string"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Act ---
			body, diags := Parse([]byte(tc.src), "bad.funding")

			// --- Assert ---
			require.True(t, diags.HasErrors(), "expected a syntax error")
			assert.Nil(t, body)
			assert.Equal(t, tc.wantSummary, diags[0].Summary)
			require.NotNil(t, diags[0].Subject)
			assert.Equal(t, "bad.funding", diags[0].Subject.Filename)
		})
	}
}
