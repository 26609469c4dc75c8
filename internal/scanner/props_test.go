package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertyExtractors(t *testing.T) {
	t.Parallel()

	text := `
		description "first"
		description "second"
		currency EUR
		min_amount 5.0
		max_amount 500
		active false
		benefits ["Logo", "Shout-out",]
		amount 25.5 GBP
	`

	s, ok := String(text, "description")
	require.True(t, ok)
	assert.Equal(t, "first", s, "the first occurrence wins")

	k, ok := Keyword(text, "currency")
	require.True(t, ok)
	assert.Equal(t, "EUR", k)

	n, ok := Number(text, "min_amount")
	require.True(t, ok)
	assert.Equal(t, "5.0", n)

	n, ok = Number(text, "max_amount")
	require.True(t, ok)
	assert.Equal(t, "500", n)

	b, ok := Bool(text, "active")
	require.True(t, ok)
	assert.False(t, b)

	list, ok := StringList(text, "benefits")
	require.True(t, ok)
	assert.Equal(t, []string{"Logo", "Shout-out"}, list)

	value, currency, ok := Amount(text, "amount")
	require.True(t, ok)
	assert.Equal(t, "25.5", value)
	assert.Equal(t, "GBP", currency)
}

func TestPropertyExtractors_Missing(t *testing.T) {
	t.Parallel()

	text := `max_amount 10`

	_, ok := String(text, "description")
	assert.False(t, ok)
	_, ok = Number(text, "amount")
	assert.False(t, ok, "a name must not match inside a longer identifier")
	_, ok = Bool(text, "active")
	assert.False(t, ok)
	_, ok = StringList(text, "benefits")
	assert.False(t, ok)
	_, _, ok = Amount(text, "target")
	assert.False(t, ok)
}

func TestAmount_CurrencyMustShareTheLine(t *testing.T) {
	t.Parallel()

	_, _, ok := Amount("target 10\nUSD", "target")
	assert.False(t, ok)
}

func TestPairs(t *testing.T) {
	t.Parallel()

	text := `
		type both
		config {
			"b" "2"
			"a" "1"
		}
	`
	assert.Equal(t, [][2]string{{"b", "2"}, {"a", "1"}}, Pairs(text))
	assert.Nil(t, Pairs(`type both`))
}

func TestPropertyExtractors_NamesInsideStrings(t *testing.T) {
	t.Parallel()

	text := `
		description "first target 50 USD, type one_time, active false, currency GBP, amount 1 EUR"
		target 1000 USD
		type recurring
		active true
		currency EUR
		amount 5 USD
		title "say \"hi\" to amount 9 USD"
		benefits ["Logo [large]", "A \"quoted\" perk"]
	`

	value, currency, ok := Amount(text, "target")
	require.True(t, ok)
	assert.Equal(t, []string{"1000", "USD"}, []string{value, currency})

	value, _, ok = Amount(text, "amount")
	require.True(t, ok)
	assert.Equal(t, "5", value)

	k, ok := Keyword(text, "type")
	require.True(t, ok)
	assert.Equal(t, "recurring", k)

	k, ok = Keyword(text, "currency")
	require.True(t, ok)
	assert.Equal(t, "EUR", k)

	b, ok := Bool(text, "active")
	require.True(t, ok)
	assert.True(t, b)

	s, ok := String(text, "title")
	require.True(t, ok)
	assert.Equal(t, `say \"hi\" to amount 9 USD`, s, "values keep escape sequences as written")

	list, ok := StringList(text, "benefits")
	require.True(t, ok)
	assert.Equal(t, []string{"Logo [large]", `A \"quoted\" perk`}, list)
}

func TestPairs_EscapedQuotes(t *testing.T) {
	t.Parallel()

	text := `
		description "config { \"x\" \"y\" }"
		config {
			"note" "a \"b\" c"
		}
	`
	assert.Equal(t, [][2]string{{"note", `a \"b\" c`}}, Pairs(text))
}
