package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/forestrie/go-logquery/signer"
	"go.uber.org/zap"
)

// AcceptHeader is the only representation requested from the service.
const AcceptHeader = "application/json"

// Get issues one signed GET to path with query as the URL query string and
// wraps the response. A non-2xx status is not an error: inspect
// QueryResult.StatusCode or QueryResult.RemoteError. Transport failures are
// returned as *NetworkError.
func (c *Client) Get(ctx context.Context, path string, query map[string]string) (*QueryResult[[]byte], error) {
	u := *c.baseURL
	u.Path = strings.TrimSuffix(u.Path, "/") + path
	if len(query) > 0 {
		values := make(url.Values, len(query))
		for k, v := range query {
			values.Set(k, v)
		}
		u.RawQuery = values.Encode()
	}

	headers := map[string]string{
		"Accept":                     AcceptHeader,
		signer.DateHeader:            signer.FormatDate(c.now()),
		signer.APIVersionHeader:      signer.APIVersion,
		signer.SignatureMethodHeader: signer.SignatureMethod,
	}

	auth, err := c.signer.Authorization(signer.SignableRequest{
		Method:  http.MethodGet,
		Path:    path,
		Query:   query,
		Headers: headers,
	})
	if err != nil {
		return nil, fmt.Errorf("sign request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	req.Header.Set(signer.AuthorizationHeader, auth)

	queryType := query["type"]
	if queryType == "" {
		queryType = "raw"
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.observe(queryType, 0, time.Since(start))
		c.logger.Warn("log query request failed",
			zap.String("method", http.MethodGet),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, &NetworkError{Method: http.MethodGet, URL: u.Redacted(), Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.observe(queryType, 0, time.Since(start))
		c.logger.Warn("reading log query response failed",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.Error(err),
		)
		return nil, &NetworkError{Method: http.MethodGet, URL: u.Redacted(), Err: err}
	}

	duration := time.Since(start)
	c.metrics.observe(queryType, resp.StatusCode, duration)

	result := newQueryResult(resp.StatusCode, resp.Header, body, body)
	c.logger.Debug("log query request",
		zap.String("method", http.MethodGet),
		zap.String("path", path),
		zap.String("type", queryType),
		zap.Int("status", resp.StatusCode),
		zap.String("request_id", result.RequestID()),
		zap.Duration("duration", duration),
	)
	return result, nil
}
