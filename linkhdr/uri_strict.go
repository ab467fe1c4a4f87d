//go:build strict_url

package linkhdr

import (
	"errors"
	"net/url"
)

// StrictURL reports whether targets must be absolute URLs.
const StrictURL = true

var errNotAbsolute = errors.New("not an absolute URL")

// parseURI parses an absolute URL.
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
	if !u.IsAbs() {
		return nil, errNotAbsolute
	}
	return u, nil
}
