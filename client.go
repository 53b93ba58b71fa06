package go_moip

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/stremovskyy/go-moip/consts"
	"github.com/stremovskyy/go-moip/instruction"
	"github.com/stremovskyy/go-moip/internal/auth"
	"github.com/stremovskyy/go-moip/internal/httpclient"
	"github.com/stremovskyy/go-moip/log"
	"github.com/stremovskyy/go-moip/metrics"
	"github.com/stremovskyy/go-moip/payment"
	"github.com/stremovskyy/recorder"
)

// Client is the MoIP SDK client.
//
// It validates payment parameters locally (Build) and sends the resulting
// instructions to the MoIP "Instrução Única" API with HTTP Basic authentication.
type Client struct {
	cfg config

	transport *httpclient.Client

	directPayment *DirectPaymentService
}

func NewClient(opts ...Option) (Moip, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	c := &Client{cfg: cfg}
	c.transport = httpclient.New(httpclient.Config{
		HTTPClient:    cfg.httpClient,
		Logger:        cfg.logger,
		LogBodies:     cfg.logBodies,
		RetryAttempts: cfg.retryAttempts,
		RetryWait:     cfg.retryWait,
		Recorder:      cfg.recorder,
		Breaker:       cfg.breaker,
	})
	c.directPayment = &DirectPaymentService{c: c}
	return c, nil
}

// NewDefaultClient is NewClient with default configuration.
func NewDefaultClient() (Moip, error) {
	return NewClient()
}

// NewClientWithRecorder attaches rec before applying opts.
func NewClientWithRecorder(rec recorder.Recorder, opts ...Option) (Moip, error) {
	opts = append([]Option{WithRecorder(rec)}, opts...)
	return NewClient(opts...)
}

func (c *Client) DirectPayment() *DirectPaymentService { return c.directPayment }

// SetLogLevel updates SDK log level when current logger supports it.
func (c *Client) SetLogLevel(level log.Level) {
	if c == nil || c.cfg.logger == nil {
		return
	}
	if l, ok := c.cfg.logger.(interface{ SetLevel(log.Level) }); ok {
		l.SetLevel(level)
	}
}

// Config returns the effective configuration: client options over the process-wide one.
func (c *Client) Config() Config {
	out := CurrentConfig()
	if c == nil {
		return out
	}
	if c.cfg.endpointURI != "" {
		out.EndpointURI = c.cfg.endpointURI
	}
	if c.cfg.token != "" {
		out.Token = c.cfg.token
		out.Key = c.cfg.key
	}
	return out
}

// Build is the package-level Build using the client's effective configuration.
func (c *Client) Build(params Params) (*payment.Request, error) {
	if c == nil {
		return nil, errors.New("client is nil")
	}
	req, err := build(c.Config(), params)
	if err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			c.cfg.logger.Debugf("[MoIP] build rejected: kind=%s field=%s message=%s", ve.Kind, ve.Field, ve.Message)
		}
		c.cfg.metrics.IncCounter(metrics.EventBuild, map[string]string{"method": methodLabel(params), "result": resultLabel(err)})
		return nil, err
	}
	c.cfg.metrics.IncCounter(metrics.EventBuild, map[string]string{"method": string(req.Method), "result": metrics.ResultOK})
	return req, nil
}

// PaymentPageURL returns the page where the payer completes a non-direct instruction.
func (c *Client) PaymentPageURL(token string) (string, error) {
	if token == "" {
		return "", newValidationError(ErrMissingField, "token", "is required")
	}
	full, err := joinURL(c.Config().EndpointURI, consts.PaymentPagePath)
	if err != nil {
		return "", err
	}
	u, err := url.Parse(full)
	if err != nil {
		return "", err
	}
	u.RawQuery = url.Values{"token": {token}}.Encode()
	return u.String(), nil
}

func joinURL(base string, p string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid base url %q: %w", base, err)
	}
	u.Path = path.Join(u.Path, p)
	return u.String(), nil
}

func wrapAPIError(err error) error {
	if err == nil {
		return nil
	}
	var hs *httpclient.HTTPStatusError
	if errors.As(err, &hs) {
		return &APIError{StatusCode: hs.StatusCode, Body: hs.Body}
	}
	return err
}

// resultLabel is the metrics label of an outcome.
func resultLabel(err error) string {
	if err == nil {
		return metrics.ResultOK
	}
	if k := KindOf(err); k != "" {
		return string(k)
	}
	var ge *GatewayError
	if errors.As(err, &ge) {
		return "gateway_error"
	}
	var ae *APIError
	if errors.As(err, &ae) {
		return fmt.Sprintf("http_%d", ae.StatusCode)
	}
	return "error"
}

func methodLabel(params Params) string {
	for _, k := range []string{"paymentMethod", "forma"} {
		if s, ok := params[k].(string); ok {
			if _, known := instruments[payment.Method(s)]; known {
				return s
			}
			return "unknown"
		}
	}
	return "unknown"
}

// ========================
// Direct payment (Unica)
// ========================

type DirectPaymentService struct{ c *Client }

// Checkout builds params and sends the resulting instruction.
func (s *DirectPaymentService) Checkout(ctx context.Context, params Params, runOpts ...RunOption) (*instruction.Response, error) {
	if s == nil || s.c == nil {
		return nil, errors.New("client is nil")
	}
	req, err := s.c.Build(params)
	if err != nil {
		return nil, err
	}
	return s.Send(ctx, req, runOpts...)
}

// Send posts an already built request. A response with Status=Falha is returned
// together with a *GatewayError.
func (s *DirectPaymentService) Send(ctx context.Context, req *payment.Request, runOpts ...RunOption) (*instruction.Response, error) {
	if s == nil || s.c == nil {
		return nil, errors.New("client is nil")
	}
	if req == nil {
		return nil, newValidationError(ErrMissingField, "request", "is nil")
	}
	cfg := s.c.Config()
	if err := cfg.Check(); err != nil {
		return nil, err
	}

	full, err := joinURL(cfg.EndpointURI, consts.InstructionPath)
	if err != nil {
		return nil, err
	}
	payload := newInstruction(req, s.c.cfg.receiver)
	if skipCall(runOpts, SkippedCall{Method: http.MethodPost, URL: full, OwnID: req.OwnID, Instruction: payload}) {
		return nil, nil
	}

	started := time.Now()
	var out instruction.Response
	_, _, err = s.c.transport.DoXML(ctx, httpclient.Call{
		Method:    http.MethodPost,
		URL:       full,
		Auth:      &auth.Basic{Token: cfg.Token, Key: cfg.Key},
		Body:      payload,
		PrimaryID: req.OwnID,
		Tags:      map[string]string{"method": string(req.Method)},
	}, &out)
	if err == nil {
		err = gatewayError(&out.Result)
	} else {
		err = wrapAPIError(err)
	}

	labels := map[string]string{"method": string(req.Method), "result": resultLabel(err)}
	s.c.cfg.metrics.IncCounter(metrics.EventCheckout, labels)
	s.c.cfg.metrics.ObserveLatency(metrics.EventCheckout, time.Since(started), labels)

	if err != nil {
		var ge *GatewayError
		if errors.As(err, &ge) {
			return &out, err
		}
		return nil, err
	}
	return &out, nil
}

// Query returns the raw XML MoIP keeps for an instruction token.
func (s *DirectPaymentService) Query(ctx context.Context, token string, runOpts ...RunOption) ([]byte, error) {
	if s == nil || s.c == nil {
		return nil, errors.New("client is nil")
	}
	if token == "" {
		return nil, newValidationError(ErrMissingField, "token", "is required")
	}
	cfg := s.c.Config()
	if err := cfg.Check(); err != nil {
		return nil, err
	}

	full, err := joinURL(cfg.EndpointURI, path.Join(consts.QueryPath, token))
	if err != nil {
		return nil, err
	}
	if skipCall(runOpts, SkippedCall{Method: http.MethodGet, URL: full, OwnID: token}) {
		return nil, nil
	}

	started := time.Now()
	_, raw, err := s.c.transport.DoXML(ctx, httpclient.Call{
		Method:    http.MethodGet,
		URL:       full,
		Auth:      &auth.Basic{Token: cfg.Token, Key: cfg.Key},
		PrimaryID: token,
	}, nil)
	err = wrapAPIError(err)
	s.c.cfg.metrics.ObserveLatency(metrics.EventQuery, time.Since(started), map[string]string{"result": resultLabel(err)})
	if err != nil {
		return nil, err
	}
	return raw, nil
}

func gatewayError(r *instruction.Result) error {
	if consts.ResponseStatus(r.Status) != consts.ResponseStatusFailure {
		return nil
	}
	ge := &GatewayError{ID: r.ID}
	for _, e := range r.Errors {
		ge.Messages = append(ge.Messages, GatewayMessage{Code: e.Code, Message: e.Message})
	}
	return ge
}
