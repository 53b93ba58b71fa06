package go_moip

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stremovskyy/go-moip/internal/httpclient"
	"github.com/stremovskyy/go-moip/log"
	"github.com/stremovskyy/go-moip/metrics"
	"github.com/stremovskyy/recorder"
)

type Option func(*config) error

type config struct {
	// Empty endpoint and credentials fall back to the process-wide Config at call time.
	endpointURI string
	token       string
	key         string

	httpClient *http.Client
	logger     log.Logger
	logBodies  bool

	retryAttempts int
	retryWait     time.Duration
	recorder      recorder.Recorder
	metrics       metrics.Recorder
	breaker       *gobreaker.CircuitBreaker

	receiver *Receiver
}

func defaultConfig() config {
	return config{
		httpClient:    &http.Client{Timeout: 30 * time.Second},
		logger:        log.NewDefault(),
		retryAttempts: 1,
		retryWait:     300 * time.Millisecond,
		metrics:       metrics.NoopRecorder{},
	}
}

// WithEndpoint overrides the process-wide endpoint URI for this client.
func WithEndpoint(uri string) Option {
	return func(cfg *config) error {
		uri = strings.TrimSpace(uri)
		if uri == "" {
			return errors.New("endpoint uri is empty")
		}
		cfg.endpointURI = uri
		return nil
	}
}

// WithCredentials overrides the process-wide token and key for this client.
func WithCredentials(token, key string) Option {
	return func(cfg *config) error {
		if token == "" || key == "" {
			return errors.New("token and key must both be set")
		}
		cfg.token = token
		cfg.key = key
		return nil
	}
}

// WithHTTPClient sets a custom *http.Client.
func WithHTTPClient(client *http.Client) Option {
	return func(cfg *config) error {
		if client == nil {
			return errors.New("http client is nil")
		}
		cfg.httpClient = client
		return nil
	}
}

// WithTimeout sets http client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(cfg *config) error {
		if timeout <= 0 {
			return errors.New("timeout must be > 0")
		}
		cfg.httpClient.Timeout = timeout
		return nil
	}
}

func WithLogger(logger log.Logger) Option {
	return func(cfg *config) error {
		if logger == nil {
			cfg.logger = log.NopLogger{}
			return nil
		}
		cfg.logger = logger
		return nil
	}
}

// WithLogHTTPBodies enables request/response body logging.
//
// Disabled by default: instructions carry card numbers and payer documents.
func WithLogHTTPBodies(enabled bool) Option {
	return func(cfg *config) error {
		cfg.logBodies = enabled
		return nil
	}
}

// WithRecorder attaches a traffic recorder. Entries are keyed by the instruction ownId.
func WithRecorder(r recorder.Recorder) Option {
	return func(cfg *config) error {
		cfg.recorder = r
		return nil
	}
}

func WithRetry(attempts int, wait time.Duration) Option {
	return func(cfg *config) error {
		if attempts <= 0 {
			return errors.New("retry attempts must be > 0")
		}
		if wait <= 0 {
			return errors.New("retry wait must be > 0")
		}
		cfg.retryAttempts = attempts
		cfg.retryWait = wait
		return nil
	}
}

// WithMetrics reports build and gateway outcomes to m, e.g. metrics.NewPrometheusRecorder(reg).
func WithMetrics(m metrics.Recorder) Option {
	return func(cfg *config) error {
		if m == nil {
			cfg.metrics = metrics.NoopRecorder{}
			return nil
		}
		cfg.metrics = m
		return nil
	}
}

// WithCircuitBreaker stops calling MoIP after maxFailures consecutive 5xx or network
// failures, and probes again after openTimeout.
func WithCircuitBreaker(maxFailures uint32, openTimeout time.Duration) Option {
	return func(cfg *config) error {
		if maxFailures == 0 {
			return errors.New("breaker max failures must be > 0")
		}
		if openTimeout <= 0 {
			return errors.New("breaker open timeout must be > 0")
		}
		cfg.breaker = httpclient.NewBreaker("moip", maxFailures, openTimeout)
		return nil
	}
}

// WithReceiver sets the primary receiver sent as <Recebedor> on every instruction.
func WithReceiver(r Receiver) Option {
	return func(cfg *config) error {
		r.LoginAlias = strings.TrimSpace(r.LoginAlias)
		if r.LoginAlias == "" {
			return errors.New("receiver login alias is empty")
		}
		cfg.receiver = &r
		return nil
	}
}
