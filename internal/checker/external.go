package checker

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/nao1215/mdlinkcheck/internal/model"
)

const (
	// DefaultTimeout bounds each external probe so that one unreachable
	// host cannot stall the whole scan.
	DefaultTimeout = 5 * time.Second

	// DefaultMaxRedirects is the number of redirects followed before a
	// probe is considered broken.
	DefaultMaxRedirects = 10
)

// ExternalChecker probes external links with HTTP HEAD requests.
//
// Design decision: We use HEAD rather than GET because only existence
// matters; the body is never read. Redirects are followed and the status
// of the final response decides the outcome.
type ExternalChecker struct {
	// client sends the probes. Its Timeout bounds each probe.
	client *http.Client

	// logger records the reason for every failed probe at debug level.
	logger *slog.Logger
}

// ExternalOption configures an ExternalChecker.
type ExternalOption func(*externalSettings)

type externalSettings struct {
	timeout      time.Duration
	maxRedirects int
	transport    http.RoundTripper
	client       *http.Client
	logger       *slog.Logger
}

// WithTimeout sets the per-probe timeout.
func WithTimeout(timeout time.Duration) ExternalOption {
	return func(s *externalSettings) {
		if timeout > 0 {
			s.timeout = timeout
		}
	}
}

// WithMaxRedirects sets how many redirects are followed.
func WithMaxRedirects(n int) ExternalOption {
	return func(s *externalSettings) {
		if n >= 0 {
			s.maxRedirects = n
		}
	}
}

// WithTransport sets the round tripper used for probes, for example one
// created by NewSOCKS5Transport.
func WithTransport(rt http.RoundTripper) ExternalOption {
	return func(s *externalSettings) {
		s.transport = rt
	}
}

// WithHTTPClient replaces the HTTP client entirely. Timeout, redirect and
// transport options are ignored when a client is given.
func WithHTTPClient(client *http.Client) ExternalOption {
	return func(s *externalSettings) {
		s.client = client
	}
}

// WithExternalLogger sets the logger for probe diagnostics.
func WithExternalLogger(logger *slog.Logger) ExternalOption {
	return func(s *externalSettings) {
		s.logger = logger
	}
}

// NewExternalChecker creates an ExternalChecker.
func NewExternalChecker(opts ...ExternalOption) *ExternalChecker {
	s := &externalSettings{
		timeout:      DefaultTimeout,
		maxRedirects: DefaultMaxRedirects,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	client := s.client
	if client == nil {
		maxRedirects := s.maxRedirects
		client = &http.Client{
			Transport: s.transport,
			Timeout:   s.timeout,
			CheckRedirect: func(_ *http.Request, via []*http.Request) error {
				if len(via) > maxRedirects {
					return fmt.Errorf("stopped after %d redirects", maxRedirects)
				}
				return nil
			},
		}
	}

	return &ExternalChecker{
		client: client,
		logger: s.logger,
	}
}

// Check probes rawURL. The link is OK if the final response status is
// below 400. Any failure to get a response is BROKEN.
func (c *ExternalChecker) Check(ctx context.Context, rawURL string) Result {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, rawURL, nil)
	if err != nil {
		return c.broken(rawURL, model.ErrorKindInvalidURL, 0, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return c.broken(rawURL, ClassifyNetError(err), 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return c.broken(rawURL, model.ErrorKindHTTPStatus, resp.StatusCode,
			fmt.Errorf("server returned %s", resp.Status))
	}

	return Result{Status: model.StatusOK, StatusCode: resp.StatusCode}
}

// broken builds a failed result and logs the reason.
func (c *ExternalChecker) broken(rawURL string, kind model.ErrorKind, code int, err error) Result {
	c.logger.Debug("external link probe failed",
		"url", rawURL,
		"kind", string(kind),
		"status_code", code,
		"error", err,
	)
	return Result{
		Status:     model.StatusBroken,
		ErrorKind:  kind,
		StatusCode: code,
		Err:        err,
	}
}

// ClassifyNetError maps an error from an HTTP round trip to an ErrorKind.
// It only refines diagnostics; every kind is reported as BROKEN.
func ClassifyNetError(err error) model.ErrorKind {
	if err == nil {
		return model.ErrorKindNone
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return model.ErrorKindTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return model.ErrorKindTimeout
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return model.ErrorKindDNS
	}

	if isTLSError(err) {
		return model.ErrorKindTLS
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return model.ErrorKindConnection
	}

	return model.ErrorKindOther
}

// isTLSError reports whether err came from the TLS layer.
func isTLSError(err error) bool {
	var (
		certErr     *tls.CertificateVerificationError
		recordErr   tls.RecordHeaderError
		alertErr    tls.AlertError
		unknownAuth x509.UnknownAuthorityError
		hostErr     x509.HostnameError
		invalidErr  x509.CertificateInvalidError
	)
	return errors.As(err, &certErr) ||
		errors.As(err, &recordErr) ||
		errors.As(err, &alertErr) ||
		errors.As(err, &unknownAuth) ||
		errors.As(err, &hostErr) ||
		errors.As(err, &invalidErr)
}
