package source

import (
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
)

type httpOpener struct {
	client *http.Client
}

// NewHTTP returns an Opener for http and https URLs. A nil client uses
// http.DefaultClient.
func NewHTTP(client *http.Client) Opener {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpOpener{client: client}
}

// Open issues a GET request and returns the response body
func (s *httpOpener) Open(ctx context.Context, location string) (io.ReadCloser, error) {

	req, err := http.NewRequest("GET", location, nil)
	if err != nil {
		return nil, fmt.Errorf("Failed to build request: %s", err)
	}
	req = req.WithContext(ctx)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("Request failed: %s", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		resp.Body.Close()
		return nil, NotFound(fmt.Sprintf("Not found: %s", location))
	case resp.StatusCode != http.StatusOK:
		message, _ := ioutil.ReadAll(io.LimitReader(resp.Body, 512))
		resp.Body.Close()
		return nil, fmt.Errorf("Request failed (%d): %s", resp.StatusCode, message)
	}
	return resp.Body, nil
}
