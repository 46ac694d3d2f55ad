package markdown

import (
	"fmt"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/goliatone/go-sitegraph/pkg/interfaces"
)

// ExtractLinks lexes the Markdown body into a token tree and walks every
// node, collecting hyperlink destinations. Reference-style links are resolved
// into link nodes by the parser, so a target appearing both inline and as a
// reference counts once. Classification:
//
//	mailto:...  discarded
//	#...        discarded (same-page anchor)
//	/...        internal
//	otherwise   external
//
// Both classes are deduplicated with set semantics. Returns nil when no
// qualifying link remains.
func (p *GoldmarkParser) ExtractLinks(markdown []byte) (*interfaces.LinkSet, error) {
	engine := goldmark.New(goldmark.WithExtensions(extension.Linkify))
	root := engine.Parser().Parse(text.NewReader(markdown))

	internal := map[string]struct{}{}
	external := map[string]struct{}{}

	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		var dest string
		switch node := n.(type) {
		case *ast.Link:
			dest = string(node.Destination)
		case *ast.AutoLink:
			dest = string(node.URL(markdown))
		default:
			return ast.WalkContinue, nil
		}

		switch classifyLink(dest) {
		case linkClassInternal:
			internal[dest] = struct{}{}
		case linkClassExternal:
			external[dest] = struct{}{}
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("markdown links: %w", err)
	}

	if len(internal) == 0 && len(external) == 0 {
		return nil, nil
	}

	return &interfaces.LinkSet{
		Internal: setToSlice(internal),
		External: setToSlice(external),
	}, nil
}

type linkClass int

const (
	linkClassDiscard linkClass = iota
	linkClassInternal
	linkClassExternal
)

func classifyLink(dest string) linkClass {
	dest = strings.TrimSpace(dest)
	switch {
	case dest == "":
		return linkClassDiscard
	case strings.HasPrefix(dest, "mailto:"):
		return linkClassDiscard
	case strings.HasPrefix(dest, "#"):
		return linkClassDiscard
	case strings.HasPrefix(dest, "/"):
		return linkClassInternal
	default:
		return linkClassExternal
	}
}

// setToSlice returns the set's members sorted. Membership is what matters,
// but a deterministic order keeps repeated traversals value-equal.
func setToSlice(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for value := range set {
		out = append(out, value)
	}
	sort.Strings(out)
	return out
}

var _ interfaces.LinkExtractor = (*GoldmarkParser)(nil)
