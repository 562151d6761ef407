package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// HTTPConfig configures an HTTPSource.
type HTTPConfig struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
}

// DefaultHTTPConfig returns an HTTPConfig with sensible defaults.
func DefaultHTTPConfig() HTTPConfig {
	return HTTPConfig{
		Timeout:    10 * time.Second,
		MaxRetries: 0,
	}
}

// HTTPSource fetches both feeds from an upstream service in one request to
// GET {base}/calendar-feeds.
type HTTPSource struct {
	cfg  HTTPConfig
	http *http.Client
}

// NewHTTPSource creates an HTTPSource.
func NewHTTPSource(cfg HTTPConfig) *HTTPSource {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultHTTPConfig().Timeout
	}
	return &HTTPSource{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
	}
}

// errUpstream marks responses that retrying cannot fix.
var errUpstream = errors.New("upstream rejected request")

func (s *HTTPSource) FetchCalendarFeeds(ctx context.Context, q FeedQuery) (*Feeds, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	var lastErr error
	attempts := 1 + s.cfg.MaxRetries
	for i := 0; i < attempts; i++ {
		env, err := s.doRequest(ctx, q)
		if err == nil {
			return Decode(&env.Data, q.TeacherID, q.Location).Feeds(q.Location), nil
		}
		lastErr = err

		if ctx.Err() != nil || errors.Is(err, errUpstream) {
			break
		}
	}
	if ctx.Err() != nil {
		return nil, unavailable("http", ctx.Err())
	}
	return nil, unavailable("http", lastErr)
}

func (s *HTTPSource) requestURL(q FeedQuery) (string, error) {
	base := strings.TrimRight(s.cfg.BaseURL, "/")
	if base == "" {
		return "", fmt.Errorf("feed URL is not configured")
	}
	u, err := url.Parse(base + "/calendar-feeds")
	if err != nil {
		return "", fmt.Errorf("parsing feed URL: %w", err)
	}
	params := url.Values{}
	params.Set("start", q.StartDay())
	params.Set("end", q.EndDay())
	if q.TeacherID != "" {
		params.Set("teacher", q.TeacherID)
	}
	u.RawQuery = params.Encode()
	return u.String(), nil
}

func (s *HTTPSource) doRequest(ctx context.Context, q FeedQuery) (*Envelope, error) {
	target, err := s.requestURL(q)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errUpstream, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	switch {
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("upstream returned status %d", resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, fmt.Errorf("%w: status %d: %s", errUpstream, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", errUpstream, err)
	}
	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = "success=false"
		}
		return nil, fmt.Errorf("%w: %s", errUpstream, msg)
	}
	return &env, nil
}
