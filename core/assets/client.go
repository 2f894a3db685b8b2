package assets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Client defines the host API operations the sorter consumes.
type Client interface {
	// Search runs a query and returns one page of hits.
	Search(ctx context.Context, req SearchRequest) (*SearchResult, error)
	// Update writes metadata fields of a single asset.
	Update(ctx context.Context, id string, metadata map[string]any) error
	// UpdateBulk writes metadata fields of every asset matching query.
	// It returns the number of processed assets.
	UpdateBulk(ctx context.Context, query string, metadata map[string]any) (int, error)
	// Ping verifies the host is reachable and the credentials are accepted.
	Ping(ctx context.Context) error
}

// SearchRequest describes one search page.
type SearchRequest struct {
	Query    string
	Sort     string
	PageSize int
	Start    int
	// Fields limits the returned metadata. Empty means all fields.
	Fields []string
}

// Hit is a single search result.
type Hit struct {
	ID       string         `json:"id"`
	Metadata map[string]any `json:"metadata"`
}

// SearchResult is one page of search results.
type SearchResult struct {
	FirstResult   int   `json:"firstResult"`
	MaxResultHits int   `json:"maxResultHits"`
	TotalHits     int   `json:"totalHits"`
	Hits          []Hit `json:"hits"`
}

// APIError is a non-2xx response from the host.
type APIError struct {
	Status  int    `json:"-"`
	Code    int    `json:"errorcode"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("host api error: status=%d code=%d message=%s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("host api error: status=%d message=%s", e.Status, e.Message)
}

// ErrLoginFailed is returned when the host rejects the configured credentials.
var ErrLoginFailed = errors.New("host login failed")

// HTTPClient implements Client over the host's REST services.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
	pageSize   int

	username string
	password string

	mu     sync.RWMutex
	token  string
	logins singleflight.Group
}

// NewClient creates a host client with retrying transport.
func NewClient(cfg Config, logger *zap.Logger) (*HTTPClient, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.URL), "/")
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid host url %q", cfg.URL)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	wait := time.Duration(cfg.RetryWaitMillis) * time.Millisecond
	if wait <= 0 {
		wait = 200 * time.Millisecond
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 500
	}

	rc := retryablehttp.NewClient()
	rc.RetryMax = cfg.MaxRetries
	if rc.RetryMax < 0 {
		rc.RetryMax = 0
	}
	rc.RetryWaitMin = wait
	rc.RetryWaitMax = 10 * wait
	rc.HTTPClient.Timeout = time.Duration(timeout) * time.Second
	rc.Logger = retryLogger{l: logger.Sugar()}

	return &HTTPClient{
		baseURL:    base,
		httpClient: rc.StandardClient(),
		logger:     logger,
		pageSize:   pageSize,
		username:   cfg.Username,
		password:   cfg.Password,
		token:      strings.TrimSpace(cfg.AuthToken),
	}, nil
}

// Search runs a query and returns one page of hits.
func (c *HTTPClient) Search(ctx context.Context, req SearchRequest) (*SearchResult, error) {
	num := req.PageSize
	if num <= 0 {
		num = c.pageSize
	}
	form := url.Values{}
	form.Set("q", req.Query)
	form.Set("num", strconv.Itoa(num))
	form.Set("start", strconv.Itoa(req.Start))
	if req.Sort != "" {
		form.Set("sort", req.Sort)
	}
	if len(req.Fields) > 0 {
		form.Set("metadataToReturn", strings.Join(req.Fields, ","))
	} else {
		form.Set("metadataToReturn", "all")
	}

	var result SearchResult
	if err := c.post(ctx, "/services/search", form, &result); err != nil {
		return nil, fmt.Errorf("search %q: %w", req.Query, err)
	}
	return &result, nil
}

// Update writes metadata fields of a single asset.
func (c *HTTPClient) Update(ctx context.Context, id string, metadata map[string]any) error {
	payload, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("encode metadata: %w", err)
	}
	form := url.Values{}
	form.Set("id", id)
	form.Set("metadata", string(payload))

	if err := c.post(ctx, "/services/update", form, nil); err != nil {
		return fmt.Errorf("update %s: %w", id, err)
	}
	return nil
}

// UpdateBulk writes metadata fields of every asset matching query.
func (c *HTTPClient) UpdateBulk(ctx context.Context, query string, metadata map[string]any) (int, error) {
	payload, err := json.Marshal(metadata)
	if err != nil {
		return 0, fmt.Errorf("encode metadata: %w", err)
	}
	form := url.Values{}
	form.Set("q", query)
	form.Set("metadata", string(payload))

	var result struct {
		ProcessedCount int `json:"processedCount"`
	}
	if err := c.post(ctx, "/services/updatebulk", form, &result); err != nil {
		return 0, fmt.Errorf("bulk update %q: %w", query, err)
	}
	return result.ProcessedCount, nil
}

// Ping verifies the host is reachable and the credentials are accepted.
func (c *HTTPClient) Ping(ctx context.Context) error {
	form := url.Values{}
	form.Set("q", "")
	form.Set("num", "0")
	form.Set("metadataToReturn", "")
	if err := c.post(ctx, "/services/search", form, nil); err != nil {
		return fmt.Errorf("ping host: %w", err)
	}
	return nil
}

// Login exchanges the configured credentials for a bearer token.
func (c *HTTPClient) Login(ctx context.Context) error {
	if c.username == "" {
		return fmt.Errorf("%w: no credentials configured", ErrLoginFailed)
	}
	form := url.Values{}
	form.Set("username", c.username)
	form.Set("password", c.password)

	var result struct {
		LoginSuccess      bool   `json:"loginSuccess"`
		LoginFaultMessage string `json:"loginFaultMessage"`
		AuthToken         string `json:"authToken"`
	}
	if _, err := c.do(ctx, "/services/apilogin", form, "", &result); err != nil {
		return fmt.Errorf("%w: %v", ErrLoginFailed, err)
	}
	if !result.LoginSuccess || result.AuthToken == "" {
		return fmt.Errorf("%w: %s", ErrLoginFailed, result.LoginFaultMessage)
	}

	c.mu.Lock()
	c.token = result.AuthToken
	c.mu.Unlock()
	c.logger.Debug("Logged in to host", zap.String("user", c.username))
	return nil
}

func (c *HTTPClient) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// refreshToken logs in unless the token already moved past stale.
// Concurrent callers share one login request.
func (c *HTTPClient) refreshToken(ctx context.Context, stale string) error {
	if tok := c.currentToken(); tok != "" && tok != stale {
		return nil
	}
	_, err, _ := c.logins.Do("login", func() (any, error) {
		if tok := c.currentToken(); tok != "" && tok != stale {
			return nil, nil
		}
		return nil, c.Login(ctx)
	})
	return err
}

// post sends an authenticated form request, logging in first when needed and
// once more when the token has expired.
func (c *HTTPClient) post(ctx context.Context, path string, form url.Values, out any) error {
	token := c.currentToken()
	if token == "" && c.username != "" {
		if err := c.refreshToken(ctx, ""); err != nil {
			return err
		}
		token = c.currentToken()
	}

	status, err := c.do(ctx, path, form, token, out)
	if status == http.StatusUnauthorized && c.username != "" {
		if loginErr := c.refreshToken(ctx, token); loginErr != nil {
			return loginErr
		}
		_, err = c.do(ctx, path, form, c.currentToken(), out)
	}
	return err
}

func (c *HTTPClient) do(ctx context.Context, path string, form url.Values, token string, out any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		if json.Unmarshal(body, apiErr) != nil || apiErr.Message == "" {
			apiErr.Message = strings.TrimSpace(string(body))
		}
		apiErr.Status = resp.StatusCode
		return resp.StatusCode, apiErr
	}

	if out != nil && len(body) > 0 {
		if err := json.Unmarshal(body, out); err != nil {
			return resp.StatusCode, fmt.Errorf("decode response: %w", err)
		}
	}
	return resp.StatusCode, nil
}

// retryLogger adapts zap to retryablehttp's LeveledLogger.
type retryLogger struct {
	l *zap.SugaredLogger
}

func (r retryLogger) Error(msg string, keysAndValues ...interface{}) {
	r.l.Errorw(msg, keysAndValues...)
}

func (r retryLogger) Warn(msg string, keysAndValues ...interface{}) {
	r.l.Warnw(msg, keysAndValues...)
}

func (r retryLogger) Info(msg string, keysAndValues ...interface{}) {
	r.l.Debugw(msg, keysAndValues...)
}

func (r retryLogger) Debug(msg string, keysAndValues ...interface{}) {
	r.l.Debugw(msg, keysAndValues...)
}
