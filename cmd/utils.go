package cmd

import (
	"errors"
	"io"
	"os"
	"strings"
)

const envLinkHeader = "LINK_HEADER"

var newlines = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// Exit, limiting the code to a max of 125 (as recommended by os.Exit).
func exit(code int) {
	if code > 125 {
		code = 125
	}
	os.Exit(code)
}

// readHeader returns the header from args, the LINK_HEADER env var or r,
// in that order.
func readHeader(args []string, r io.Reader) (string, error) {
	if len(args) > 1 {
		return "", errors.New("at most one argument is allowed")
	} else if len(args) == 1 {
		return args[0], nil
	}
	if envHdr := os.Getenv(envLinkHeader); envHdr != "" {
		return envHdr, nil
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	// A header read from a file or pipe may span several lines.
	return strings.TrimSpace(newlines.Replace(string(b))), nil
}
