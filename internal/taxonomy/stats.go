package taxonomy

import (
	"strconv"

	"golang.org/x/text/message"

	"github.com/goliatone/go-sitegraph/internal/contenttree"
	"github.com/goliatone/go-sitegraph/internal/linkgraph"
	"github.com/goliatone/go-sitegraph/pkg/interfaces"
)

// GlobalStats derives the site-wide figures from a walked tree. Everything is
// recomputed from the tree on each call; nothing is cached.
func (a *Aggregator) GlobalStats(tree *contenttree.Tree, blogSection string) *interfaces.Stats {
	items := a.AllPages(tree)

	total := 0
	for _, item := range items {
		total += item.Meta().WordCount
	}

	posts := Posts(tree.Section(blogSection))
	byYear := make(map[string][]*interfaces.Post, 8)
	for _, post := range posts {
		year := strconv.Itoa(post.Date.Year())
		byYear[year] = append(byYear[year], post)
	}

	return &interfaces.Stats{
		BlogByYear: byYear,
		Posts:      len(posts),
		Words:      message.NewPrinter(a.locale).Sprintf("%d", total),
		Tags:       len(a.AllTags(tree)),
		Links:      linkgraph.Aggregate(items),
	}
}
