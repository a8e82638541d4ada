package observability

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/league-portal/internal/config"
	"github.com/riskibarqy/league-portal/internal/platform/logging"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap/zapcore"
)

const betterStackQueueSize = 1024

// NewBetterStackCore returns a zap core shipping entries at or above the configured level
// to Better Stack, plus a drain func. It returns a nil core when shipping is disabled.
func NewBetterStackCore(cfg config.Config) (zapcore.Core, func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }
	if !cfg.BetterStackEnabled {
		return nil, noop, nil
	}

	endpoint := normalizeBetterStackEndpoint(cfg.BetterStackEndpoint)
	if endpoint == "" {
		return nil, noop, crerr.New("betterstack endpoint cannot be empty")
	}

	sink := newBetterStackSink(endpoint, strings.TrimSpace(cfg.BetterStackToken), cfg.BetterStackTimeout)
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(logging.EncoderConfig()),
		zapcore.AddSync(sink),
		cfg.BetterStackMinLevel,
	)

	return core, func(ctx context.Context) error {
		if _, ok := ctx.Deadline(); !ok {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
		}
		if err := sink.Close(ctx); err != nil {
			return crerr.Wrap(err, "drain betterstack queue")
		}
		return nil
	}, nil
}

func normalizeBetterStackEndpoint(raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return ""
	}
	if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") {
		return value
	}
	return "https://" + value
}

// betterStackSink queues encoded entries and posts them from a single goroutine.
// A full queue drops entries instead of blocking the caller.
type betterStackSink struct {
	endpoint string
	token    string
	timeout  time.Duration
	client   *fasthttp.Client

	queue     chan []byte
	mu        sync.RWMutex
	closeOnce sync.Once
	closed    atomic.Bool
	wg        sync.WaitGroup
	dropped   atomic.Uint64
}

func newBetterStackSink(endpoint, token string, timeout time.Duration) *betterStackSink {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	s := &betterStackSink{
		endpoint: endpoint,
		token:    token,
		timeout:  timeout,
		client:   &fasthttp.Client{Name: "league-portal-logs"},
		queue:    make(chan []byte, betterStackQueueSize),
	}
	s.wg.Add(1)
	go s.run()
	return s
}

func (s *betterStackSink) Write(p []byte) (int, error) {
	payload := bytes.TrimSpace(p)
	if len(payload) == 0 {
		return len(p), nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed.Load() {
		return len(p), nil
	}

	// zap reuses its buffer once Write returns.
	copied := append([]byte(nil), payload...)
	select {
	case s.queue <- copied:
	default:
		if n := s.dropped.Add(1); n == 1 || n%100 == 0 {
			fmt.Fprintf(os.Stderr, "betterstack queue full; dropped logs=%d\n", n)
		}
	}
	return len(p), nil
}

func (s *betterStackSink) Sync() error { return nil }

func (s *betterStackSink) run() {
	defer s.wg.Done()
	for payload := range s.queue {
		if err := s.send(payload); err != nil {
			fmt.Fprintf(os.Stderr, "betterstack send log failed: %v\n", err)
		}
	}
}

func (s *betterStackSink) send(payload []byte) error {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(s.endpoint)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	req.SetBodyRaw(payload)

	if err := s.client.DoTimeout(req, resp, s.timeout); err != nil {
		return err
	}
	if code := resp.StatusCode(); code >= fasthttp.StatusMultipleChoices {
		return crerr.Newf("non-2xx status=%d", code)
	}
	return nil
}

// Close stops accepting entries and waits for the queue to drain or ctx to end.
func (s *betterStackSink) Close(ctx context.Context) error {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.closed.Store(true)
		close(s.queue)
		s.mu.Unlock()
	})

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
