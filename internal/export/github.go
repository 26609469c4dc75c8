package export

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/fundingdsl/internal/ctxlog"
	"github.com/specialistvlad/fundingdsl/internal/model"
	"gopkg.in/yaml.v3"
)

// manifestKeys is the key order GitHub documents for FUNDING.yml. PayPal has
// no key of its own and is left out.
var manifestKeys = []string{
	"github", "patreon", "open_collective", "ko_fi", "tidelift", "polar",
	"buy_me_a_coffee", "thanks_dev", "community_bridge", "liberapay",
	"issuehunt", "custom",
}

// GitHubExporter renders the active sources as a GitHub FUNDING.yml file.
type GitHubExporter struct{}

// Export implements the Exporter interface.
func (e *GitHubExporter) Export(ctx context.Context, w io.Writer, cfg *model.Configuration) error {
	header := fmt.Sprintf("Funding links for %s", cfg.ProjectName)

	values := make(map[string][]string)
	for _, s := range cfg.ActiveSources() {
		key := s.Platform.ManifestKey()
		value := s.Username
		if s.Platform == model.Custom && s.CustomURL != "" {
			value = s.CustomURL
		}
		values[key] = append(values[key], value)
	}

	mapping := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range manifestKeys {
		vs := values[key]
		if len(vs) == 0 {
			continue
		}
		var value *yaml.Node
		if len(vs) == 1 {
			value = scalar(vs[0])
		} else {
			value = &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
			for _, v := range vs {
				value.Content = append(value.Content, scalar(v))
			}
		}
		mapping.Content = append(mapping.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: key}, value)
	}
	ctxlog.FromContext(ctx).Debug("Rendering FUNDING.yml.", "keys", len(mapping.Content)/2)

	if len(mapping.Content) == 0 {
		_, err := fmt.Fprintf(w, "# %s\n", header)
		return err
	}

	mapping.HeadComment = header
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{mapping}}); err != nil {
		return err
	}
	return enc.Close()
}

// scalar returns a string node. URLs are double-quoted the way GitHub's
// documentation writes them.
func scalar(v string) *yaml.Node {
	n := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
	if strings.Contains(v, "http") && strings.Contains(v, ".") {
		n.Style = yaml.DoubleQuotedStyle
	}
	return n
}
