package pagination

import (
	"fmt"
	"net/url"

	"github.com/devon-mar/linkheader/linkhdr"
)

// Fetcher retrieves u and returns the Link header of the response.
type Fetcher func(u string) (string, error)

// Follow fetches start and every page reached by following next links.
// The URL of each fetched page is sent on the first channel.
// Relative next links are resolved against the page they were found on.
//
// Follow stops when there is no next link, a page would be fetched twice,
// limit pages were sent (0 means no limit) or done is closed.
// Both channels are closed when Follow stops, even if nothing is receiving
// once done is closed.
func Follow(start string, fetch Fetcher, limit int, done chan struct{}) (chan string, chan error) {
	pageChan := make(chan string)
	errChan := make(chan error)

	go func() {
		defer close(pageChan)
		defer close(errChan)
		sendErr := func(err error) {
			select {
			case errChan <- err:
			case <-done:
			}
		}

		current, err := url.Parse(start)
		if err != nil {
			sendErr(fmt.Errorf("invalid start URL %q: %w", start, err))
			return
		}

		seen := map[string]struct{}{}
		var sent int
		for {
			u := current.String()
			seen[u] = struct{}{}

			hdr, err := fetch(u)
			if err != nil {
				sendErr(fmt.Errorf("error fetching %s: %w", u, err))
				return
			}

			select {
			case pageChan <- u:
			case <-done:
				return
			}
			sent++
			if limit > 0 && sent == limit {
				return
			}

			links, err := linkhdr.ParseWithRelation(hdr)
			if err != nil {
				sendErr(fmt.Errorf("error parsing Link header of %s: %w", u, err))
				return
			}
			next := links.Get(relNext)
			if next == nil {
				return
			}
			current = current.ResolveReference(next.URI)
			if _, ok := seen[current.String()]; ok {
				return
			}
		}
	}()
	return pageChan, errChan
}
