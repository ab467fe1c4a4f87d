package linkhdr

import (
	"errors"
	"net/url"
	"regexp"
	"strings"
)

// uriChars matches strings made only of RFC 3986 unreserved and reserved
// characters and percent-encoded octets.
var uriChars = regexp.MustCompile(`^(?:[A-Za-z0-9\-._~:/?#\[\]@!$&'()*+,;=]|%[0-9A-Fa-f]{2})*$`)

var (
	errInvalidChars = errors.New("contains characters not allowed in a URI")
	errFragment     = errors.New("more than one fragment delimiter")
	errBrackets     = errors.New("square brackets outside an IP literal host")
)

func checkURIChars(raw string) error {
	if !uriChars.MatchString(raw) {
		return errInvalidChars
	}
	return nil
}

// checkURISyntax rejects what net/url tolerates but RFC 3986 does not:
// a "#" inside the fragment, and "[" or "]" anywhere but around an IP
// literal host.
func checkURISyntax(raw string, u *url.URL) error {
	if strings.Count(raw, "#") > 1 {
		return errFragment
	}
	hostBrackets := strings.Count(u.Host, "[") + strings.Count(u.Host, "]")
	if strings.Count(raw, "[")+strings.Count(raw, "]") != hostBrackets {
		return errBrackets
	}
	if hostBrackets > 0 && (!strings.HasPrefix(u.Host, "[") || strings.Count(u.Host, "[") != 1 || strings.Count(u.Host, "]") != 1) {
		return errBrackets
	}
	return nil
}
