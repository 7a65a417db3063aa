// Package testutil contains common utility functions for unit tests.
package testutil

import (
	"bytes"
	"io"
	"net/http"
	"strings"
)

// FakeClient returns an HTTP client that replies to all requests to the given
// address with the provided body text. Requests for any other address
// receive a 404 response.
func FakeClient(url string, body []byte) *http.Client {
	return &http.Client{
		Transport: mockRoundTrip{
			url:  url,
			body: body,
		},
	}
}

type mockRoundTrip struct {
	url  string
	body []byte
}

func (r mockRoundTrip) RoundTrip(req *http.Request) (*http.Response, error) {
	rsp := http.Response{
		Header:  make(http.Header),
		Request: req,
	}

	if req.URL.String() == r.url {
		rsp.StatusCode = http.StatusOK
		rsp.Status = "200 OK"
		rsp.Header.Set("Content-Type", "text/xml; charset=utf-8")
		rsp.Body = io.NopCloser(bytes.NewReader(r.body))
	} else {
		rsp.StatusCode = http.StatusNotFound
		rsp.Status = "404 Not Found"
		rsp.Body = io.NopCloser(strings.NewReader("404 not found"))
	}
	return &rsp, nil
}
