package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// TraceIDHeader is the request header carrying the operation trace id.
const TraceIDHeader = "X-Trace-ID"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while adding trace-id propagation and retries for idempotent reads.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client

	ids *UUIDGenerator
}

// NewHTTPClient creates and returns a new HTTPClient instance.
//
// Every request leaves with an [TraceIDHeader] header: the trace id stored in
// the request context (see [WithTraceID]) or a freshly generated one.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	c := &HTTPClient{Client: resty.New(), ids: NewUUIDGenerator()}

	c.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if r.Header.Get(TraceIDHeader) != "" {
			return nil
		}
		traceID, ok := GetTraceIDFromContext(r.Context())
		if !ok {
			traceID = c.ids.Generate()
		}
		r.SetHeader(TraceIDHeader, traceID)
		return nil
	})

	return c
}

// WithReadRetries enables up to count retries of GET requests that failed
// before any response arrived. Writes are never retried.
func (c *HTTPClient) WithReadRetries(count int, wait time.Duration) *HTTPClient {
	if count <= 0 {
		return c
	}

	c.SetRetryCount(count).
		SetRetryWaitTime(wait).
		SetRetryMaxWaitTime(4 * wait).
		AddRetryCondition(IsRetryableRead)
	return c
}

// IsRetryableRead reports whether a failed attempt is a GET that never got a
// response.
func IsRetryableRead(resp *resty.Response, err error) bool {
	if err == nil || resp == nil || resp.Request == nil {
		return false
	}
	return resp.Request.Method == http.MethodGet
}
