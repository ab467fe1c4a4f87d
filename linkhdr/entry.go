package linkhdr

import (
	"fmt"
	"net/url"
	"strings"
)

// optional whitespace, line breaks included for folded headers
const ows = " \t\r\n"

type entry struct {
	rel  OptionalRelation
	link *Link
}

func parseEntries(header string) ([]entry, error) {
	var ret []entry
	if strings.Trim(header, ows) == "" {
		return ret, nil
	}

	for i, s := range split(header, ',', true) {
		if strings.Trim(s, ows) == "" {
			// empty list elements are allowed by the #rule
			continue
		}
		link, err := parseEntry(s)
		if err != nil {
			err.Index = i
			return nil, err
		}
		ret = append(ret, entry{rel: link.Rel(), link: link})
	}
	return ret, nil
}

// parseEntry parses `<uri>; name=value; ...`.
func parseEntry(s string) (*Link, *ParseError) {
	s = strings.TrimLeft(s, ows)
	if !strings.HasPrefix(s, "<") {
		return nil, &ParseError{Text: s, Err: ErrMalformedEntry, Cause: errNoOpeningBracket}
	}
	rawURI, rest, ok := strings.Cut(s[1:], ">")
	if !ok {
		return nil, &ParseError{Text: s, Err: ErrMalformedEntry, Cause: errNoClosingBracket}
	}

	params, err := parseParams(rest)
	if err != nil {
		return nil, &ParseError{Text: s, Err: ErrMalformedEntry, Cause: err}
	}

	link, err := newLink(rawURI)
	if err != nil {
		return nil, &ParseError{Text: rawURI, Err: ErrInvalidURI, Cause: err}
	}
	link.Params = params
	return link, nil
}

func parseParams(s string) (map[string]string, error) {
	params := map[string]string{}
	for _, p := range split(s, ';', false) {
		p = strings.Trim(p, ows)
		if p == "" {
			continue
		}
		name, value, _ := strings.Cut(p, "=")
		name = strings.Trim(name, ows)
		if name == "" {
			return nil, fmt.Errorf("attribute %q has no name", p)
		}
		params[name] = unquote(strings.Trim(value, ows))
	}
	return params, nil
}

// unquote strips one pair of surrounding double quotes.
// Backslash escapes are left as is.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// parseQuery decodes a raw query. The last value of a repeated key wins.
func parseQuery(rawQuery string) (map[string]string, error) {
	queries := map[string]string{}
	for _, q := range strings.Split(rawQuery, "&") {
		if q == "" {
			continue
		}
		k, v, _ := strings.Cut(q, "=")
		key, err := url.QueryUnescape(k)
		if err != nil {
			return nil, fmt.Errorf("error decoding query key %q: %w", k, err)
		}
		val, err := url.QueryUnescape(v)
		if err != nil {
			return nil, fmt.Errorf("error decoding query value %q: %w", v, err)
		}
		queries[key] = val
	}
	return queries, nil
}

// split splits s on sep, ignoring separators inside quoted strings
// and, if brackets is true, inside a <...> that opens an element.
// A < anywhere else is ordinary text.
func split(s string, sep byte, brackets bool) []string {
	var (
		ret      []string
		start    int
		inQuote  bool
		escaped  bool
		inTarget bool
		atStart  = true
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		first := atStart && strings.IndexByte(ows, c) < 0
		if first {
			atStart = false
		}
		switch {
		case inQuote:
			if escaped {
				escaped = false
			} else if c == '\\' {
				escaped = true
			} else if c == '"' {
				inQuote = false
			}
		case inTarget:
			if c == '>' {
				inTarget = false
			}
		case c == '"':
			inQuote = true
		case c == '<' && brackets && first:
			inTarget = true
		case c == sep:
			ret = append(ret, s[start:i])
			start = i + 1
			atStart = true
		}
	}
	return append(ret, s[start:])
}
