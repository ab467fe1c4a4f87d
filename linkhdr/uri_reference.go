//go:build !strict_url

package linkhdr

import "net/url"

// StrictURL reports whether targets must be absolute URLs.
const StrictURL = false

// parseURI parses a URI reference. Relative references, including the empty
// one, are accepted.
func parseURI(raw string) (*url.URL, error) {
	if err := checkURIChars(raw); err != nil {
		return nil, err
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if err := checkURISyntax(raw, u); err != nil {
		return nil, err
	}
	return u, nil
}
