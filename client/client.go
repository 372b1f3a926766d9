// Package client queries a remote log service over its signed HTTP read API.
//
// A Client is immutable after New and safe for concurrent use. Every call
// is one signed GET; there is no retry and no pagination loop. Callers page
// with GetLogsOptions.Offset and the Progress/Count metadata of the result.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/forestrie/go-logquery/signer"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

// Query types sent in the "type" parameter.
const (
	TypeHistogram = "histogram"
	TypeLog       = "log"
)

// DefaultQuery matches every log.
const DefaultQuery = "*"

// DefaultLine is the page size used when GetLogsOptions.Line is not set.
const DefaultLine = 100

// Client issues signed read requests against one project.
type Client struct {
	config     Config
	baseURL    *url.URL
	signer     *signer.Signer
	httpClient *http.Client
	logger     *zap.Logger
	metrics    *Metrics
	now        func() time.Time
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the default otelhttp-instrumented client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the logger; the default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMetrics registers request metrics with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *Client) {
		c.metrics = NewMetrics(reg)
	}
}

// WithClock overrides the clock used for the Date header.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		if now != nil {
			c.now = now
		}
	}
}

// New validates cfg and creates a Client. Configuration errors match
// ErrInvalidConfig and are returned before any network activity.
func New(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	baseURL, err := url.Parse(cfg.BaseURL())
	if err != nil || baseURL.Host == "" {
		return nil, fmt.Errorf("%w: endpoint %q is not a valid host", ErrInvalidConfig, cfg.Endpoint)
	}

	s, err := signer.NewSigner(signer.Config{
		AccessKeyID:     cfg.AccessKeyID,
		AccessKeySecret: cfg.AccessKeySecret,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	c := &Client{
		config:  cfg,
		baseURL: baseURL,
		signer:  s,
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   cfg.timeout(),
		},
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the scheme and host requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Project returns the configured project name.
func (c *Client) Project() string {
	return c.config.Project
}

// HistogramOptions narrows a histogram query.
type HistogramOptions struct {
	// Query is the search expression; DefaultQuery when empty.
	Query string
	Topic string
}

// GetLogsOptions narrows and pages a log query.
type GetLogsOptions struct {
	// Query is the search expression; DefaultQuery when empty.
	Query string
	Topic string
	// Line is the page size; DefaultLine when not positive.
	Line     int
	Offset   int
	Reverse  bool
	PowerSQL bool
}

// DefaultGetLogsOptions returns the first page of up to DefaultLine logs in
// ascending time order.
func DefaultGetLogsOptions() GetLogsOptions {
	return GetLogsOptions{
		Query: DefaultQuery,
		Line:  DefaultLine,
	}
}

// GetHistograms returns the number of logs matching the query in each time
// bucket of [from, to), both in unix seconds.
func (c *Client) GetHistograms(ctx context.Context, logstore string, from, to int64, opts HistogramOptions) (*QueryResult[[]HistogramEntity], error) {
	if logstore == "" {
		return nil, fmt.Errorf("%w: logstore must not be empty", ErrInvalidArgument)
	}

	query := baseQuery(opts.Query, opts.Topic, from, to, TypeHistogram)
	raw, err := c.Get(ctx, indexPath(logstore), query)
	if err != nil {
		return nil, err
	}
	return decodeResult[[]HistogramEntity](raw)
}

// GetLogs returns one page of logs matching the query in [from, to), both in
// unix seconds.
func (c *Client) GetLogs(ctx context.Context, logstore string, from, to int64, opts GetLogsOptions) (*QueryResult[[]LogEntity], error) {
	if logstore == "" {
		return nil, fmt.Errorf("%w: logstore must not be empty", ErrInvalidArgument)
	}
	if opts.Offset < 0 {
		return nil, fmt.Errorf("%w: offset must not be negative", ErrInvalidArgument)
	}

	line := opts.Line
	if line <= 0 {
		line = DefaultLine
	}

	query := baseQuery(opts.Query, opts.Topic, from, to, TypeLog)
	query["line"] = strconv.Itoa(line)
	query["offset"] = strconv.Itoa(opts.Offset)
	query["reverse"] = strconv.FormatBool(opts.Reverse)
	query["powerSql"] = strconv.FormatBool(opts.PowerSQL)

	raw, err := c.Get(ctx, indexPath(logstore), query)
	if err != nil {
		return nil, err
	}
	return decodeResult[[]LogEntity](raw)
}

func indexPath(logstore string) string {
	return "/logstores/" + logstore + "/index"
}

func baseQuery(expr, topic string, from, to int64, queryType string) map[string]string {
	if expr == "" {
		expr = DefaultQuery
	}
	return map[string]string{
		"query": expr,
		"topic": topic,
		"from":  strconv.FormatInt(from, 10),
		"to":    strconv.FormatInt(to, 10),
		"type":  queryType,
	}
}

// decodeResult decodes a 2xx body into T. Non-2xx results are passed through
// with a zero Data so the caller can inspect StatusCode and RemoteError.
func decodeResult[T any](raw *QueryResult[[]byte]) (*QueryResult[T], error) {
	res := &QueryResult[T]{
		StatusCode: raw.StatusCode,
		header:     raw.header,
		body:       raw.body,
	}
	if !raw.IsSuccess() {
		return res, nil
	}
	if err := json.Unmarshal(raw.body, &res.Data); err != nil {
		return nil, &DecodeError{
			StatusCode: raw.StatusCode,
			RequestID:  raw.RequestID(),
			Err:        err,
		}
	}
	return res, nil
}
