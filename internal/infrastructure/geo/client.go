// Package geo resolves client IPs to a coarse location through an ipapi-style lookup service.
package geo

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/fasthttp"

	"github.com/riskibarqy/league-portal/internal/domain/visitor"
	"github.com/riskibarqy/league-portal/internal/platform/logging"
	"github.com/riskibarqy/league-portal/internal/platform/resilience"
	"github.com/riskibarqy/league-portal/internal/usecase"
)

const (
	defaultLookupURL = "https://ipapi.co/%s/json/"
	defaultTimeout   = 3 * time.Second
	maxBodyBytes     = 64 << 10
)

var errLookupTransient = crerr.New("geo lookup transient failure")

type ClientConfig struct {
	HTTPClient *fasthttp.Client
	// LookupURL is a format string with one %s for the escaped IP.
	LookupURL      string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client implements visitor.Locator.
type Client struct {
	httpClient *fasthttp.Client
	lookupURL  string
	timeout    time.Duration
	logger     *logging.Logger
	breaker    *resilience.CircuitBreaker
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &fasthttp.Client{
			Name:                "league-portal-geo",
			MaxResponseBodySize: maxBodyBytes,
		}
	}
	lookupURL := strings.TrimSpace(cfg.LookupURL)
	if lookupURL == "" {
		lookupURL = defaultLookupURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		httpClient: httpClient,
		lookupURL:  lookupURL,
		timeout:    timeout,
		logger:     logger,
		breaker:    resilience.NewCircuitBreaker(cfg.CircuitBreaker),
	}
}

type lookupResponse struct {
	Error       bool   `json:"error"`
	Reason      string `json:"reason"`
	Region      string `json:"region"`
	City        string `json:"city"`
	CountryName string `json:"country_name"`
}

// Locate returns whatever fields the provider knows; empty fields are left for the caller to default.
func (c *Client) Locate(ctx context.Context, ip string) (visitor.Location, error) {
	ip = strings.TrimSpace(ip)
	if ip == "" {
		return visitor.Location{}, crerr.New("client ip is required")
	}

	var out lookupResponse
	err := c.breaker.Execute(func() error {
		return c.lookup(ctx, ip, &out)
	}, func(err error) bool {
		return !crerr.Is(err, errLookupTransient)
	})
	if crerr.Is(err, resilience.ErrCircuitOpen) {
		c.logger.DebugContext(ctx, "geo circuit breaker rejected request", "state", c.breaker.State())
		return visitor.Location{}, fmt.Errorf("%w: geo lookup is temporarily unavailable", usecase.ErrDependencyUnavailable)
	}
	if err != nil {
		return visitor.Location{}, err
	}
	if out.Error {
		return visitor.Location{}, crerr.Newf("geo lookup rejected ip: %s", out.Reason)
	}

	return visitor.Location{
		State:   strings.TrimSpace(out.Region),
		City:    strings.TrimSpace(out.City),
		Country: strings.TrimSpace(out.CountryName),
	}, nil
}

func (c *Client) lookup(ctx context.Context, ip string, target *lookupResponse) error {
	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}
	if timeout <= 0 {
		return crerr.Wrap(context.DeadlineExceeded, "geo lookup")
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fmt.Sprintf(c.lookupURL, url.PathEscape(ip)))
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")

	if err := c.httpClient.DoTimeout(req, resp, timeout); err != nil {
		return crerr.Mark(crerr.Wrap(err, "send geo lookup"), errLookupTransient)
	}

	status := resp.StatusCode()
	switch {
	case status == fasthttp.StatusTooManyRequests || status >= 500:
		return crerr.Mark(crerr.Newf("geo lookup status=%d", status), errLookupTransient)
	case status < 200 || status >= 300:
		return crerr.Newf("geo lookup status=%d", status)
	}

	if err := sonic.Unmarshal(resp.Body(), target); err != nil {
		return crerr.Wrap(err, "decode geo lookup")
	}
	return nil
}
