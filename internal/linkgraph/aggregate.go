// Package linkgraph derives the site-wide link report from per-document
// link sets: external targets grouped by registrable domain, internal
// targets grouped by exact pathname.
package linkgraph

import (
	"net/url"
	"sort"
	"strings"

	"golang.org/x/net/publicsuffix"

	"github.com/goliatone/go-sitegraph/pkg/interfaces"
)

// Aggregate flattens every item's link set into the site-wide report. Both
// lists sort descending by count; ties keep discovery order. Returns nil when
// no item carries links.
func Aggregate(items []interfaces.ContentItem) *interfaces.SiteLinks {
	internalCounts := map[string]int{}
	var internalOrder []string

	domains := map[string]*domainGroup{}
	var domainOrder []string

	for _, item := range items {
		meta := item.Meta()
		if meta == nil || meta.Links.Empty() {
			continue
		}

		for _, pathname := range meta.Links.Internal {
			if _, seen := internalCounts[pathname]; !seen {
				internalOrder = append(internalOrder, pathname)
			}
			internalCounts[pathname]++
		}

		for _, target := range meta.Links.External {
			domain := RegistrableDomain(target)
			if domain == "" {
				continue
			}

			group, ok := domains[domain]
			if !ok {
				group = &domainGroup{targets: map[string]*interfaces.ExternalTarget{}}
				domains[domain] = group
				domainOrder = append(domainOrder, domain)
			}
			group.add(target, meta.Path)
		}
	}

	if len(internalOrder) == 0 && len(domainOrder) == 0 {
		return nil
	}

	links := &interfaces.SiteLinks{
		Internal: make([]interfaces.InternalLink, 0, len(internalOrder)),
		External: make([]interfaces.ExternalDomain, 0, len(domainOrder)),
	}

	for _, pathname := range internalOrder {
		links.Internal = append(links.Internal, interfaces.InternalLink{
			Pathname: pathname,
			Count:    internalCounts[pathname],
		})
	}
	sort.SliceStable(links.Internal, func(i, j int) bool {
		return links.Internal[i].Count > links.Internal[j].Count
	})

	for _, domain := range domainOrder {
		group := domains[domain]
		entries := make([]interfaces.ExternalTarget, 0, len(group.order))
		for _, target := range group.order {
			entries = append(entries, *group.targets[target])
		}
		links.External = append(links.External, interfaces.ExternalDomain{
			Domain: domain,
			Count:  group.count,
			Links:  entries,
		})
	}
	sort.SliceStable(links.External, func(i, j int) bool {
		return links.External[i].Count > links.External[j].Count
	})

	return links
}

// RegistrableDomain reduces a URL to its public-suffix-aware root domain, so
// www.example.co.uk and blog.example.co.uk group under example.co.uk. Hosts
// without an eTLD+1 (localhost, bare IPs) fall back to the raw host; empty
// when the URL has no host at all.
func RegistrableDomain(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return ""
	}

	host := strings.ToLower(parsed.Hostname())
	if host == "" {
		return ""
	}

	domain, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host
	}
	return domain
}

type domainGroup struct {
	count   int
	order   []string
	targets map[string]*interfaces.ExternalTarget
}

func (g *domainGroup) add(target, sourcePath string) {
	g.count++

	entry, ok := g.targets[target]
	if !ok {
		entry = &interfaces.ExternalTarget{TargetURL: target}
		g.targets[target] = entry
		g.order = append(g.order, target)
	}

	for _, existing := range entry.SourceURLs {
		if existing == sourcePath {
			return
		}
	}
	entry.SourceURLs = append(entry.SourceURLs, sourcePath)
}
