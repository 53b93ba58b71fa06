package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"
	"github.com/stremovskyy/go-moip/consts"
	"github.com/stremovskyy/go-moip/internal/xmlutil"
	"github.com/stremovskyy/go-moip/log"
	"github.com/stremovskyy/recorder"
)

// Authenticator produces the Authorization header value for a request.
type Authenticator interface {
	Authorization() (string, error)
}

// Config groups the transport knobs set through the root package options.
type Config struct {
	HTTPClient    *http.Client
	Logger        log.Logger
	LogBodies     bool
	RetryAttempts int
	RetryWait     time.Duration
	Recorder      recorder.Recorder
	Breaker       *gobreaker.CircuitBreaker
}

// Client is a small HTTP helper with XML marshal/unmarshal, retries and an optional
// circuit breaker. The public API lives in the root package.
type Client struct {
	httpClient    *http.Client
	logger        log.Logger
	logBodies     bool
	retryAttempts int
	retryWait     time.Duration
	recorder      recorder.Recorder
	breaker       *gobreaker.CircuitBreaker
}

// New creates an internal HTTP client.
func New(cfg Config) *Client {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}
	if cfg.Logger == nil {
		cfg.Logger = log.NopLogger{}
	}
	if cfg.RetryAttempts <= 0 {
		cfg.RetryAttempts = 1
	}
	if cfg.RetryWait <= 0 {
		cfg.RetryWait = 300 * time.Millisecond
	}
	return &Client{
		httpClient:    cfg.HTTPClient,
		logger:        cfg.Logger,
		logBodies:     cfg.LogBodies,
		retryAttempts: cfg.RetryAttempts,
		retryWait:     cfg.RetryWait,
		recorder:      cfg.Recorder,
		breaker:       cfg.Breaker,
	}
}

// Call describes a single logical request.
type Call struct {
	Method string
	URL    string
	Auth   Authenticator
	Body   any
	// PrimaryID ties recorder entries to a business id (the instruction ownId).
	PrimaryID string
	Tags      map[string]string
}

// DoXML sends call and unmarshals the XML response into out (if out != nil).
// It returns the http response and the raw response body.
func (c *Client) DoXML(ctx context.Context, call Call, out any) (*http.Response, []byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	var lastErr error
	wait := c.retryWait
	for attempt := 1; attempt <= c.retryAttempts; attempt++ {
		c.logger.Debugf("[MoIP HTTP] request: method=%s url=%s attempt=%d/%d", call.Method, call.URL, attempt, c.retryAttempts)
		resp, raw, err := c.guarded(ctx, call, out)
		if err == nil {
			if resp != nil {
				c.logger.Debugf("[MoIP HTTP] response: method=%s url=%s status=%d response=%s", call.Method, call.URL, resp.StatusCode, logBody(raw, c.logBodies))
			}
			return resp, raw, nil
		}
		lastErr = err

		// Retry only on transient errors.
		if !isRetryable(err) || attempt == c.retryAttempts {
			if resp != nil {
				c.logger.Errorf("[MoIP HTTP] request failed: method=%s url=%s status=%d err=%v response=%s", call.Method, call.URL, resp.StatusCode, err, logBody(raw, c.logBodies))
			} else {
				c.logger.Errorf("[MoIP HTTP] request failed: method=%s url=%s err=%v", call.Method, call.URL, err)
			}
			return resp, raw, err
		}
		c.logger.Warnf("[MoIP HTTP] request retry: method=%s url=%s attempt=%d wait=%s err=%v", call.Method, call.URL, attempt, wait, err)
		select {
		case <-ctx.Done():
			return resp, raw, ctx.Err()
		case <-time.After(wait):
			wait *= 2
		}
	}
	return nil, nil, lastErr
}

type result struct {
	resp *http.Response
	raw  []byte
}

func (c *Client) guarded(ctx context.Context, call Call, out any) (*http.Response, []byte, error) {
	if c.breaker == nil {
		return c.doOnce(ctx, call, out)
	}
	var res result
	_, err := c.breaker.Execute(func() (interface{}, error) {
		resp, raw, err := c.doOnce(ctx, call, out)
		res = result{resp: resp, raw: raw}
		// Client-side mistakes must not trip the breaker.
		var hs *HTTPStatusError
		if errors.As(err, &hs) && hs.StatusCode < 500 && hs.StatusCode != http.StatusTooManyRequests {
			return nil, &passThrough{err: err}
		}
		return nil, err
	})
	var pt *passThrough
	if errors.As(err, &pt) {
		return res.resp, res.raw, pt.err
	}
	return res.resp, res.raw, err
}

// passThrough carries a client-side error through the breaker without counting it as a failure.
type passThrough struct{ err error }

func (p *passThrough) Error() string { return p.err.Error() }
func (p *passThrough) Unwrap() error { return p.err }

func isBreakerSuccess(err error) bool {
	if err == nil {
		return true
	}
	var pt *passThrough
	return errors.As(err, &pt)
}

// NewBreaker returns a circuit breaker that opens after maxFailures consecutive gateway
// failures and probes again after openTimeout. 4xx answers never count as failures.
func NewBreaker(name string, maxFailures uint32, openTimeout time.Duration) *gobreaker.CircuitBreaker {
	if maxFailures == 0 {
		maxFailures = 5
	}
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		IsSuccessful: isBreakerSuccess,
	})
}

func (c *Client) doOnce(ctx context.Context, call Call, out any) (*http.Response, []byte, error) {
	requestID := nextRequestID()

	bodyBytes, err := prepareBody(call.Body)
	if err != nil {
		c.recordError(ctx, call, requestID, err)
		return nil, nil, err
	}

	var reader io.Reader
	if bodyBytes != nil {
		reader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, call.Method, call.URL, reader)
	if err != nil {
		c.recordError(ctx, call, requestID, err)
		return nil, nil, err
	}

	req.Header.Set(consts.HeaderAccept, consts.ContentTypeXML)
	if bodyBytes != nil {
		req.Header.Set(consts.HeaderContentType, consts.ContentTypeXML)
	}
	if call.Auth != nil {
		h, err := call.Auth.Authorization()
		if err != nil {
			c.recordError(ctx, call, requestID, err)
			return nil, nil, err
		}
		req.Header.Set(consts.HeaderAuthorization, h)
	}

	c.logger.Debugf("[MoIP HTTP] request prepared: request_id=%s method=%s url=%s payload=%s", requestID, call.Method, call.URL, logBody(bodyBytes, c.logBodies))

	c.recordRequest(ctx, call, requestID, bodyBytes)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.recordError(ctx, call, requestID, err)
		return nil, nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.recordError(ctx, call, requestID, err)
		return resp, nil, err
	}
	c.recordResponse(ctx, call, requestID, raw)

	c.logger.Debugf("[MoIP HTTP] response received: request_id=%s method=%s url=%s status=%d response=%s", requestID, call.Method, call.URL, resp.StatusCode, logBody(raw, c.logBodies))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := &HTTPStatusError{StatusCode: resp.StatusCode, Body: raw}
		c.recordError(ctx, call, requestID, statusErr)
		return resp, raw, statusErr
	}

	if out != nil {
		if err := xmlutil.Unmarshal(raw, out); err != nil {
			decErr := fmt.Errorf("decode xml response: %w", err)
			c.recordError(ctx, call, requestID, decErr)
			return resp, raw, decErr
		}
	}

	return resp, raw, nil
}

// HTTPStatusError indicates a non-2xx response.
type HTTPStatusError struct {
	StatusCode int
	Body       []byte
}

func (e *HTTPStatusError) Error() string {
	if e == nil {
		return "http status error"
	}
	if len(e.Body) == 0 {
		return fmt.Sprintf("unexpected status: %d", e.StatusCode)
	}
	// Limit in error string.
	b := e.Body
	if len(b) > 512 {
		b = b[:512]
	}
	return fmt.Sprintf("unexpected status: %d: %s", e.StatusCode, string(b))
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return false
	}
	var hs *HTTPStatusError
	if errors.As(err, &hs) {
		// Retry 5xx and rate limiting.
		return hs.StatusCode == http.StatusTooManyRequests || (hs.StatusCode >= 500 && hs.StatusCode != http.StatusNotImplemented)
	}

	// Retry only transport-level errors.
	var ue *url.Error
	if errors.As(err, &ue) {
		return !errors.Is(ue.Err, context.Canceled) && !errors.Is(ue.Err, context.DeadlineExceeded)
	}
	var ne net.Error
	return errors.As(err, &ne)
}

func prepareBody(body any) ([]byte, error) {
	if body == nil {
		return nil, nil
	}
	switch v := body.(type) {
	case []byte:
		out := make([]byte, len(v))
		copy(out, v)
		return out, nil
	case string:
		return []byte(v), nil
	default:
		b, err := xmlutil.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("marshal xml body: %w", err)
		}
		return b, nil
	}
}

func nextRequestID() string {
	return uuid.NewString()
}

func primaryID(call Call) *string {
	if call.PrimaryID == "" {
		return nil
	}
	id := call.PrimaryID
	return &id
}

func (c *Client) recordRequest(ctx context.Context, call Call, requestID string, body []byte) {
	if c == nil || c.recorder == nil {
		return
	}
	if err := c.recorder.RecordRequest(ctx, primaryID(call), requestID, body, call.Tags); err != nil {
		c.logger.Warnf("[MoIP HTTP] cannot record request: %v", err)
	}
}

func (c *Client) recordResponse(ctx context.Context, call Call, requestID string, body []byte) {
	if c == nil || c.recorder == nil {
		return
	}
	if err := c.recorder.RecordResponse(ctx, primaryID(call), requestID, body, call.Tags); err != nil {
		c.logger.Warnf("[MoIP HTTP] cannot record response: %v", err)
	}
}

func (c *Client) recordError(ctx context.Context, call Call, requestID string, err error) {
	if c == nil || c.recorder == nil || err == nil {
		return
	}
	if recErr := c.recorder.RecordError(ctx, primaryID(call), requestID, err, call.Tags); recErr != nil {
		c.logger.Warnf("[MoIP HTTP] cannot record error: %v", recErr)
	}
}

func logBody(b []byte, verbose bool) string {
	if !verbose {
		return fmt.Sprintf("size=%d bytes", len(b))
	}
	if len(b) == 0 {
		return "<empty>"
	}
	s := strings.TrimSpace(string(b))
	if s == "" {
		return "<empty>"
	}
	if !utf8.ValidString(s) {
		return fmt.Sprintf("<non-utf8 size=%d bytes>", len(b))
	}
	return truncate(s, 4096)
}

func truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max] + "...(truncated)"
}
