package export

import (
	"strings"
	"testing"

	"github.com/specialistvlad/fundingdsl/internal/model"
	"github.com/specialistvlad/fundingdsl/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestGitHubExporter_MinimalFixture(t *testing.T) {
	t.Parallel()

	// --- Act ---
	out := render(t, FormatGitHubYML, loadFixture(t, testutil.MinimalFixture))

	// --- Assert ---
	assert.True(t, strings.HasPrefix(out, "# Funding links for octo-package\n"), "got:\n%s", out)
	assert.Contains(t, out, "github: octocat\n")
	assert.Contains(t, out, "tidelift: npm/octo-package\n")
	assert.Contains(t, out, `custom: "https://www.paypal.me/octocat"`)

	var manifest map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &manifest))
	assert.Equal(t, map[string]any{
		"github":   "octocat",
		"patreon":  "octocat",
		"tidelift": "npm/octo-package",
		"custom":   "https://www.paypal.me/octocat",
	}, manifest)

	keys := []string{"github:", "patreon:", "tidelift:", "custom:"}
	last := -1
	for _, k := range keys {
		idx := strings.Index(out, k)
		assert.Greater(t, idx, last, "key %s is out of order", k)
		last = idx
	}
}

func TestGitHubExporter_GroupsAndFilters(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	cfg := model.NewConfiguration("octo-package")
	cfg.AddSource(model.NewSource(model.GitHubSponsors, "octocat"))
	cfg.AddSource(model.NewSource(model.GitHubSponsors, "surftocat"))
	custom := model.NewSource(model.Custom, "PayPal")
	custom.CustomURL = "https://www.paypal.me/octocat"
	cfg.AddSource(custom)
	cfg.AddSource(model.NewSource(model.Custom, "octocat.com"))
	inactive := model.NewSource(model.Patreon, "sleepy")
	inactive.IsActive = false
	cfg.AddSource(inactive)
	cfg.AddSource(model.NewSource(model.PayPal, "no-manifest-key"))

	// --- Act ---
	out := render(t, FormatGitHubYML, cfg)

	// --- Assert ---
	assert.Contains(t, out, "github: [octocat, surftocat]\n")
	assert.Contains(t, out, `custom: ["https://www.paypal.me/octocat", octocat.com]`)
	assert.NotContains(t, out, "patreon")
	assert.NotContains(t, out, "no-manifest-key")

	var manifest map[string][]string
	require.NoError(t, yaml.Unmarshal([]byte(out), &manifest))
	assert.Equal(t, []string{"octocat", "surftocat"}, manifest["github"])
}

func TestGitHubExporter_NoActiveSources(t *testing.T) {
	t.Parallel()

	out := render(t, FormatGitHubYML, model.NewConfiguration("empty"))

	assert.Equal(t, "# Funding links for empty\n", out)
}
