package pagination

import (
	"net/http"

	"code.gitea.io/sdk/gitea"
	"github.com/google/go-github/v45/github"
)

const linkHeader = "Link"

// FromGitea returns the pages of a gitea SDK response.
func FromGitea(resp *gitea.Response, param string) (*Pages, error) {
	if resp == nil {
		return &Pages{}, nil
	}
	return fromHTTP(resp.Response, param)
}

// FromGitHub returns the pages of a go-github response.
func FromGitHub(resp *github.Response, param string) (*Pages, error) {
	if resp == nil {
		return &Pages{}, nil
	}
	return fromHTTP(resp.Response, param)
}

func fromHTTP(resp *http.Response, param string) (*Pages, error) {
	if resp == nil {
		return &Pages{}, nil
	}
	return FromHeader(resp.Header.Get(linkHeader), param)
}
