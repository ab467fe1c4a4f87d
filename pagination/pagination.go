// Package pagination reads page numbers from Link headers and walks
// paginated collections.
package pagination

import (
	"fmt"
	"strconv"

	"github.com/devon-mar/linkheader/linkhdr"
)

const (
	// DefaultParam is the query parameter used by gitea, GitHub and most
	// other APIs for the page number.
	DefaultParam = "page"

	relFirst = "first"
	relPrev  = "prev"
	relNext  = "next"
	relLast  = "last"
)

// Pages holds the page numbers found in a Link header.
// A zero value means the relation was not present.
type Pages struct {
	First int
	Prev  int
	Next  int
	Last  int
}

// FromHeader returns the page numbers in the first, prev, next and last
// links of linkHdr, read from the query parameter param.
func FromHeader(linkHdr string, param string) (*Pages, error) {
	links, err := linkhdr.ParseWithRelation(linkHdr)
	if err != nil {
		return nil, err
	}
	return FromLinks(links, param)
}

// FromLinks is like FromHeader for an already parsed header.
func FromLinks(links linkhdr.RelationLinkMap, param string) (*Pages, error) {
	p := &Pages{}
	for rel, dst := range map[string]*int{
		relFirst: &p.First,
		relPrev:  &p.Prev,
		relNext:  &p.Next,
		relLast:  &p.Last,
	} {
		l := links.Get(rel)
		if l == nil {
			continue
		}
		v, ok := l.Queries[param]
		if !ok {
			continue
		}
		page, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s page %q: %w", rel, v, err)
		}
		*dst = page
	}
	return p, nil
}

// NextPage returns the page number of the next link or 0 if there isn't one
// or the header could not be parsed.
func NextPage(linkHdr string) int {
	p, err := FromHeader(linkHdr, DefaultParam)
	if err != nil {
		return 0
	}
	return p.Next
}
