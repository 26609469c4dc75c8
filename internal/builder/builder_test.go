package builder

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/specialistvlad/fundingdsl/internal/config"
	"github.com/specialistvlad/fundingdsl/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func amountVal(v int64, cur string) cty.Value {
	return cty.TupleVal([]cty.Value{cty.NumberIntVal(v), cty.StringVal(cur)})
}

func TestBuild_RootAttributes(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	doc := config.NewDocument("Demo")
	doc.Attributes["description"] = cty.StringVal("A demo")
	doc.Attributes["currency"] = cty.StringVal("EUR")
	doc.Attributes["min_amount"] = cty.NumberFloatVal(0.5)
	doc.Attributes["max_amount"] = cty.NumberFloatVal(99.5)

	// --- Act ---
	cfg, err := New().Build(context.Background(), doc)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "Demo", cfg.ProjectName)
	assert.Equal(t, "A demo", cfg.Description)
	assert.Equal(t, model.EUR, cfg.PreferredCurrency)
	require.NotNil(t, cfg.MinAmount)
	assert.Equal(t, model.NewAmount(0.5, model.EUR), *cfg.MinAmount)
	require.NotNil(t, cfg.MaxAmount)
	assert.Equal(t, model.NewAmount(99.5, model.EUR), *cfg.MaxAmount)
}

func TestBuild_Coercions(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		keyword      string
		fundingType  string
		currency     string
		wantPlatform model.Platform
		wantType     model.FundingType
		wantCurrency model.Currency
	}{
		{name: "known tokens", keyword: "patreon", fundingType: "recurring", currency: "GBP", wantPlatform: model.Patreon, wantType: model.Recurring, wantCurrency: model.GBP},
		{name: "unknown platform", keyword: "venmo", fundingType: "one_time", currency: "CAD", wantPlatform: model.Custom, wantType: model.OneTime, wantCurrency: model.CAD},
		{name: "unknown type and currency", keyword: "ko_fi", fundingType: "monthly", currency: "JPY", wantPlatform: model.KoFi, wantType: model.Both, wantCurrency: model.USD},
		{name: "github alias is not a platform", keyword: "github", fundingType: "both", currency: "AUD", wantPlatform: model.Custom, wantType: model.Both, wantCurrency: model.AUD},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			doc := config.NewDocument("Demo")
			doc.Attributes["currency"] = cty.StringVal(tc.currency)
			src := config.NewEntry(tc.keyword, "someone")
			src.Attributes["type"] = cty.StringVal(tc.fundingType)
			doc.Sources = []*config.Entry{src}

			// --- Act ---
			cfg, err := New().Build(context.Background(), doc)

			// --- Assert ---
			require.NoError(t, err)
			require.Len(t, cfg.Sources, 1)
			assert.Equal(t, tc.wantPlatform, cfg.Sources[0].Platform)
			assert.Equal(t, tc.wantType, cfg.Sources[0].FundingType)
			assert.Equal(t, tc.wantCurrency, cfg.PreferredCurrency)
		})
	}
}

func TestBuild_SourceDefaultsAndConfig(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	doc := config.NewDocument("Demo")
	plain := config.NewEntry("github_sponsors", "octocat")
	custom := config.NewEntry("custom", "Website")
	custom.Attributes["url"] = cty.StringVal("https://example.com")
	custom.Attributes["active"] = cty.False
	custom.Pairs = []config.Pair{{Key: "b", Value: "1"}, {Key: "a", Value: "2"}, {Key: "b", Value: "3"}}
	doc.Sources = []*config.Entry{plain, custom}

	// --- Act ---
	cfg, err := New().Build(context.Background(), doc)

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, cfg.Sources, 2)

	assert.Equal(t, model.Both, cfg.Sources[0].FundingType, "type defaults to both")
	assert.True(t, cfg.Sources[0].IsActive, "active defaults to true")
	assert.Empty(t, cfg.Sources[0].CustomURL)
	assert.Zero(t, cfg.Sources[0].Config.Len())

	assert.False(t, cfg.Sources[1].IsActive)
	assert.Equal(t, "https://example.com", cfg.Sources[1].CustomURL)
	assert.Equal(t, []string{"b", "a"}, cfg.Sources[1].Config.Keys(), "a repeated key keeps its first position")
	b, _ := cfg.Sources[1].Config.Get("b")
	assert.Equal(t, "3", b, "a repeated key takes the last value")
}

func TestBuild_ZeroLimitsAreAbsent(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	doc := config.NewDocument("Demo")
	doc.Attributes["min_amount"] = cty.NumberIntVal(0)
	doc.Attributes["max_amount"] = cty.NumberFloatVal(0.0)

	// --- Act ---
	cfg, err := New().Build(context.Background(), doc)

	// --- Assert ---
	require.NoError(t, err)
	assert.Nil(t, cfg.MinAmount)
	assert.Nil(t, cfg.MaxAmount)
}

func TestBuild_Tiers(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	doc := config.NewDocument("Demo")
	doc.Attributes["currency"] = cty.StringVal("EUR")
	full := config.NewEntry("tier", "Gold")
	full.Attributes["amount"] = amountVal(50, "GBP")
	full.Attributes["description"] = cty.StringVal("Top tier")
	full.Attributes["max_sponsors"] = cty.NumberIntVal(10)
	full.Attributes["benefits"] = cty.ListVal([]cty.Value{cty.StringVal("Logo"), cty.StringVal("Call")})
	bare := config.NewEntry("tier", "Free")
	bare.Attributes["max_sponsors"] = cty.NumberIntVal(0)
	doc.Tiers = []*config.Entry{full, bare}

	// --- Act ---
	cfg, err := New().Build(context.Background(), doc)

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, cfg.Tiers, 2)

	assert.Equal(t, model.Tier{
		Name:        "Gold",
		Amount:      model.NewAmount(50, model.GBP),
		Description: "Top tier",
		Benefits:    []string{"Logo", "Call"},
		MaxSponsors: 10,
		IsActive:    true,
	}, cfg.Tiers[0])

	assert.Equal(t, model.NewAmount(0, model.EUR), cfg.Tiers[1].Amount, "a missing amount is zero in the preferred currency")
	assert.Equal(t, []string{}, cfg.Tiers[1].Benefits)
	assert.Zero(t, cfg.Tiers[1].MaxSponsors)
}

func TestBuild_Goals(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	doc := config.NewDocument("Demo")
	servers := config.NewEntry("goal", "Servers")
	servers.Attributes["target"] = amountVal(200, "USD")
	servers.Attributes["current"] = amountVal(125, "USD")
	servers.Attributes["deadline"] = cty.StringVal("2025-12-31")
	done := config.NewEntry("goal", "Done")
	done.Attributes["target"] = amountVal(100, "USD")
	done.Attributes["current"] = amountVal(150, "USD")
	done.Attributes["deadline"] = cty.StringVal("not-a-date")
	empty := config.NewEntry("goal", "Empty")
	doc.Goals = []*config.Entry{servers, done, empty}

	// --- Act ---
	cfg, err := New().Build(context.Background(), doc)

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, cfg.Goals, 3)

	assert.InDelta(t, 62.5, cfg.Goals[0].ProgressPercentage(), 1e-9)
	require.NotNil(t, cfg.Goals[0].Deadline)
	assert.Equal(t, time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC), *cfg.Goals[0].Deadline)
	assert.False(t, cfg.Goals[0].IsReached)

	assert.Nil(t, cfg.Goals[1].Deadline, "a malformed deadline is dropped")
	assert.True(t, cfg.Goals[1].IsReached)

	assert.Equal(t, model.NewAmount(0, model.USD), cfg.Goals[2].CurrentAmount)
	assert.False(t, cfg.Goals[2].IsReached, "a zero target is never reached")
	assert.Zero(t, cfg.Goals[2].ProgressPercentage())
}

func TestBuild_SourceOrderAndBeneficiaries(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	doc := config.NewDocument("Demo")
	alice := config.NewEntry("beneficiary", "Alice")
	alice.Attributes["email"] = cty.StringVal("alice@example.com")
	alice.Attributes["github"] = cty.StringVal("alice")
	doc.Beneficiaries = []*config.Entry{alice, config.NewEntry("beneficiary", "Bob"), config.NewEntry("beneficiary", "Alice")}

	// --- Act ---
	cfg, err := New().Build(context.Background(), doc)

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, cfg.Beneficiaries, 3, "entries are appended without deduplication")
	assert.Equal(t, model.Beneficiary{Name: "Alice", Email: "alice@example.com", GitHubUsername: "alice"}, cfg.Beneficiaries[0])
	assert.Equal(t, "Bob", cfg.Beneficiaries[1].Name)
	assert.Equal(t, "Alice", cfg.Beneficiaries[2].Name)
}

func TestBuild_NilDocument(t *testing.T) {
	t.Parallel()

	_, err := New().Build(context.Background(), nil)

	require.Error(t, err)
}

func TestBuild_MaxSponsorsRange(t *testing.T) {
	t.Parallel()

	big, _ := cty.ParseNumberVal("99999999999999999999")
	testCases := []struct {
		name  string
		value cty.Value
		want  int
	}{
		{name: "positive", value: cty.NumberIntVal(25), want: 25},
		{name: "zero", value: cty.NumberIntVal(0), want: 0},
		{name: "below one", value: cty.NumberFloatVal(0.5), want: 0},
		{name: "largest int32", value: cty.NumberIntVal(math.MaxInt32), want: math.MaxInt32},
		{name: "beyond int32", value: cty.NumberIntVal(math.MaxInt32 + 1), want: 0},
		{name: "beyond int64", value: big, want: 0},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			doc := config.NewDocument("Demo")
			tier := config.NewEntry("tier", "T")
			tier.Attributes["max_sponsors"] = tc.value
			doc.Tiers = []*config.Entry{tier}

			// --- Act ---
			cfg, err := New().Build(context.Background(), doc)

			// --- Assert ---
			require.NoError(t, err)
			assert.Equal(t, tc.want, cfg.Tiers[0].MaxSponsors)
		})
	}
}
