// Package atomlink converts the links of an Atom feed into Link header links.
package atomlink

import (
	"fmt"
	"io"

	"github.com/devon-mar/linkheader/linkhdr"
	"github.com/mmcdole/gofeed/atom"
)

// RFC 4287 4.2.7.2
const defaultRel = "alternate"

// Parse parses an Atom document and returns its feed level links keyed by
// relation. Links without a rel are alternate links.
func Parse(r io.Reader) (linkhdr.RelationLinkMap, error) {
	fp := &atom.Parser{}
	feed, err := fp.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("error parsing feed: %w", err)
	}
	return FromLinks(feed.Links)
}

// FromLinks converts Atom links. The last link of each relation wins.
func FromLinks(links []*atom.Link) (linkhdr.RelationLinkMap, error) {
	ret := make(linkhdr.RelationLinkMap, len(links))
	for _, al := range links {
		if al == nil {
			continue
		}
		rel := al.Rel
		if rel == "" {
			rel = defaultRel
		}
		params := map[string]string{"rel": rel}
		for k, v := range map[string]string{
			"type":     al.Type,
			"hreflang": al.Hreflang,
			"title":    al.Title,
			"length":   al.Length,
		} {
			if v != "" {
				params[k] = v
			}
		}

		l, err := linkhdr.NewLink(al.Href, params)
		if err != nil {
			return nil, fmt.Errorf("invalid %s link: %w", rel, err)
		}
		ret[rel] = l
	}
	return ret, nil
}
