// Package linkhdr parses HTTP Link header values (RFC 8288).
//
// A header such as
//
//	<https://api.example.com/items?page=2>; rel="next", <https://api.example.com/items?page=14>; rel="last"
//
// is turned into a map from relation to *Link. Parse keys the map by an
// OptionalRelation so entries without a rel attribute are distinguishable from
// entries with an empty one. ParseWithRelation keys it by the plain relation
// string.
//
// URI references are kept as written: relative references are never resolved
// against a base.
package linkhdr

import (
	"net/url"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const relParam = "rel"

// Link is one entry of a Link header.
type Link struct {
	// URI is the parsed target.
	URI *url.URL
	// RawURI is the text between < and >, unmodified.
	RawURI string
	// Queries holds the decoded query component of the target.
	Queries map[string]string
	// Params holds every attribute that follows the target, rel included.
	Params map[string]string
}

// OptionalRelation is a relation which may be absent.
type OptionalRelation struct {
	Rel string
	// Valid is true if the entry had a rel attribute, even an empty one.
	Valid bool
}

// NoRel is the key of links without a rel attribute.
var NoRel = OptionalRelation{}

// Rel returns a present relation.
func Rel(rel string) OptionalRelation {
	return OptionalRelation{Rel: rel, Valid: true}
}

func (r OptionalRelation) String() string {
	if !r.Valid {
		return "<none>"
	}
	return r.Rel
}

// LinkMap is the result of Parse.
type LinkMap map[OptionalRelation]*Link

// RelationLinkMap is the result of ParseWithRelation.
type RelationLinkMap map[string]*Link

// Parse parses a Link header value. Links without a rel attribute are stored
// under NoRel. When several entries share a key the last one wins.
//
// Either every entry parses or a *ParseError is returned.
func Parse(header string) (LinkMap, error) {
	entries, err := parseEntries(header)
	if err != nil {
		return nil, err
	}
	ret := make(LinkMap, len(entries))
	for _, e := range entries {
		ret[e.rel] = e.link
	}
	return ret, nil
}

// ParseWithRelation is like Parse but keys the map by relation string.
// Links without a rel attribute are stored under "".
func ParseWithRelation(header string) (RelationLinkMap, error) {
	entries, err := parseEntries(header)
	if err != nil {
		return nil, err
	}
	ret := make(RelationLinkMap, len(entries))
	for _, e := range entries {
		ret[e.rel.Rel] = e.link
	}
	return ret, nil
}

// NewLink returns a Link for rawURI with the given attributes.
// rawURI is validated and its query decoded the same way Parse does.
func NewLink(rawURI string, params map[string]string) (*Link, error) {
	l, err := newLink(rawURI)
	if err != nil {
		return nil, &ParseError{Text: rawURI, Err: ErrInvalidURI, Cause: err}
	}
	for k, v := range params {
		l.Params[k] = v
	}
	return l, nil
}

func newLink(rawURI string) (*Link, error) {
	uri, err := parseURI(rawURI)
	if err != nil {
		return nil, err
	}
	queries, err := parseQuery(uri.RawQuery)
	if err != nil {
		return nil, err
	}
	return &Link{
		URI:     uri,
		RawURI:  rawURI,
		Queries: queries,
		Params:  map[string]string{},
	}, nil
}

// Rel returns the value of the rel attribute.
func (l *Link) Rel() OptionalRelation {
	rel, ok := l.Params[relParam]
	if !ok {
		return NoRel
	}
	return Rel(rel)
}

// String formats the link as a Link header entry. Values are written as
// quoted-strings, except for ext-values (names ending in "*").
func (l *Link) String() string {
	var b strings.Builder
	b.WriteString("<" + l.RawURI + ">")

	names := maps.Keys(l.Params)
	slices.SortFunc(names, func(x, y string) bool {
		if (x == relParam) != (y == relParam) {
			return x == relParam
		}
		return x < y
	})
	for _, n := range names {
		b.WriteString("; " + n)
		v := l.Params[n]
		switch {
		case v == "":
		case strings.HasSuffix(n, "*"):
			// RFC 8187 ext-values are never quoted
			b.WriteString("=" + v)
		default:
			b.WriteString("=" + quote(v))
		}
	}
	return b.String()
}

// quote returns v as a quoted-string. Params keep backslash escapes as they
// were written, so escape pairs are copied through and only bare quotes and
// a trailing backslash are escaped.
func quote(v string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(v); i++ {
		c := v[i]
		switch {
		case c == '\\' && i+1 < len(v):
			b.WriteByte(c)
			b.WriteByte(v[i+1])
			i++
		case c == '\\' || c == '"':
			b.WriteByte('\\')
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// Get returns the link for rel, or nil.
func (m LinkMap) Get(rel string) *Link {
	return m[Rel(rel)]
}

// Relations returns the keys of m. NoRel sorts first.
func (m LinkMap) Relations() []OptionalRelation {
	rels := maps.Keys(m)
	slices.SortFunc(rels, func(a, b OptionalRelation) bool {
		if a.Valid != b.Valid {
			return !a.Valid
		}
		return a.Rel < b.Rel
	})
	return rels
}

// String formats m as a Link header value.
func (m LinkMap) String() string {
	rels := m.Relations()
	entries := make([]string, 0, len(rels))
	for _, r := range rels {
		entries = append(entries, m[r].String())
	}
	return strings.Join(entries, ", ")
}

// Get returns the link for rel, or nil.
func (m RelationLinkMap) Get(rel string) *Link {
	return m[rel]
}

// Relations returns the sorted keys of m.
func (m RelationLinkMap) Relations() []string {
	rels := maps.Keys(m)
	slices.Sort(rels)
	return rels
}

// String formats m as a Link header value.
func (m RelationLinkMap) String() string {
	rels := m.Relations()
	entries := make([]string, 0, len(rels))
	for _, r := range rels {
		entries = append(entries, m[r].String())
	}
	return strings.Join(entries, ", ")
}
