package signer

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// SignableRequest is the part of an HTTP request covered by the signature.
// Headers must already hold Date and every x-log-* / x-acs-* header to be
// signed; the signer only reads them.
type SignableRequest struct {
	Method  string
	Path    string
	Query   map[string]string
	Headers map[string]string
	// Body is treated as absent when empty.
	Body []byte
}

// FromHTTPRequest extracts a SignableRequest from req.
// Only the first value of each query parameter is kept; multi-valued
// headers are joined with ",". The body, if any, is read and restored so the
// request can still be sent.
func FromHTTPRequest(req *http.Request) (SignableRequest, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	query := make(map[string]string)
	for k, v := range req.URL.Query() {
		if len(v) > 0 {
			query[k] = v[0]
		}
	}

	headers := make(map[string]string, len(req.Header))
	for k, v := range req.Header {
		headers[k] = strings.Join(v, ",")
	}

	body, err := readBody(req)
	if err != nil {
		return SignableRequest{}, err
	}

	return SignableRequest{
		Method:  method,
		Path:    GetURIPath(req.URL),
		Query:   query,
		Headers: headers,
		Body:    body,
	}, nil
}

// readBody returns a copy of the request body, leaving req readable.
func readBody(req *http.Request) ([]byte, error) {
	if req.GetBody != nil {
		rc, err := req.GetBody()
		if err != nil {
			return nil, fmt.Errorf("failed to get request body: %w", err)
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}

	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}

	body, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	req.Body.Close()
	req.Body = io.NopCloser(bytes.NewReader(body))
	return body, nil
}
