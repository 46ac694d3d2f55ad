package markdown

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"

	"github.com/goliatone/go-sitegraph/pkg/interfaces"
)

// ParseFrontMatter extracts metadata and Markdown body content from the
// provided source bytes. It returns the structured front matter, the Markdown
// body without delimiters, and any error encountered. A document without a
// front matter block yields zero-value metadata and the full source as body.
func ParseFrontMatter(source []byte) (interfaces.FrontMatter, []byte, error) {
	var meta frontMatterEnvelope

	reader := bytes.NewReader(source)
	body, err := frontmatter.Parse(reader, &meta)
	if err != nil {
		return interfaces.FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	return envelopeToFrontMatter(meta), body, nil
}

type frontMatterEnvelope struct {
	Title       string             `yaml:"title"`
	Description string             `yaml:"description"`
	Updated     string             `yaml:"updated"`
	Draft       bool               `yaml:"draft"`
	Taxonomies  taxonomiesEnvelope `yaml:"taxonomies"`
	Extra       map[string]any     `yaml:",inline"`
}

type taxonomiesEnvelope struct {
	Tags []string `yaml:"tags"`
}

func envelopeToFrontMatter(env frontMatterEnvelope) interfaces.FrontMatter {
	return interfaces.FrontMatter{
		Title:       env.Title,
		Description: env.Description,
		Updated:     env.Updated,
		Draft:       env.Draft,
		Taxonomies: interfaces.Taxonomies{
			Tags: append([]string(nil), env.Taxonomies.Tags...),
		},
		Extra: cloneMap(env.Extra),
	}
}

func cloneMap(input map[string]any) map[string]any {
	if input == nil {
		return map[string]any{}
	}

	out := make(map[string]any, len(input))
	for key, value := range input {
		out[key] = value
	}
	return out
}
