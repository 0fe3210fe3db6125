package salonapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"
)

// Client клиент backend API салона.
// Один экземпляр на браузерную сессию: у каждого своя cookie jar и свой токен.
type Client struct {
	baseURL    string
	httpClient *http.Client
	creds      Credentials
	metrics    Metrics
	log        Logger
}

// NewClient создает новый экземпляр клиента API салона.
// timeout = 0 означает отсутствие таймаута на запрос.
func NewClient(baseURL string, timeout time.Duration, metrics Metrics, log Logger) *Client {
	// cookiejar.New с nil-опциями ошибку не возвращает
	jar, _ := cookiejar.New(nil)

	if metrics == nil {
		metrics = noopMetrics{}
	}

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
			Jar:     jar,
		},
		metrics: metrics,
		log:     log,
	}
}

// SetCredentials подключает источник bearer токена и обработчик 401
func (c *Client) SetCredentials(creds Credentials) {
	c.creds = creds
}

// Response типизированный ответ API
type Response[T any] struct {
	Data       T
	Message    string
	Code       string
	StatusCode int
}

// envelope общий формат ответов backend'а
type envelope struct {
	Success *bool           `json:"success,omitempty"`
	Message string          `json:"message"`
	Error   string          `json:"error,omitempty"`
	Code    string          `json:"code,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// requestBody тело запроса вместе с Content-Type
type requestBody struct {
	reader      io.Reader
	contentType string
}

func jsonBody(v interface{}) (*requestBody, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}
	return &requestBody{reader: bytes.NewReader(payload), contentType: "application/json"}, nil
}

// call выполняет один HTTP запрос к API и декодирует поле data в T.
// endpoint - шаблон пути для метрик и логов, path - фактический путь.
func call[T any](ctx context.Context, c *Client, method, endpoint, path string, query url.Values, body *requestBody) (*Response[T], error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = body.reader
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", body.contentType)
	} else {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.creds != nil {
		if token := c.creds.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveAPICall(endpoint, method, 0, time.Since(started))
		c.log.Error("salonapi: %s %s failed: %v", method, endpoint, err)
		return nil, fmt.Errorf("%w: %s %s: %v", ErrTransport, method, endpoint, err)
	}
	defer resp.Body.Close()
	c.metrics.ObserveAPICall(endpoint, method, resp.StatusCode, time.Since(started))

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrTransport, err)
	}

	var env envelope
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil && resp.StatusCode < http.StatusBadRequest {
			return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
		}
	}

	// Обработка статус-кодов
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// Продолжаем обработку
	case resp.StatusCode == http.StatusUnauthorized:
		c.log.Warn("salonapi: %s %s - session rejected by API", method, endpoint)
		if c.creds != nil {
			c.creds.Invalidate()
		}
		return nil, newAPIError(resp.StatusCode, env)
	default:
		c.log.Warn("salonapi: %s %s - status %d: %s", method, endpoint, resp.StatusCode, firstNonEmpty(env.Message, env.Error))
		return nil, newAPIError(resp.StatusCode, env)
	}

	out := &Response[T]{
		Message:    env.Message,
		Code:       env.Code,
		StatusCode: resp.StatusCode,
	}
	if len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, &out.Data); err != nil {
			return nil, fmt.Errorf("%w: failed to decode %s data: %v", ErrInvalidResponse, endpoint, err)
		}
	}

	c.log.Debug("salonapi: %s %s - %d", method, endpoint, resp.StatusCode)
	return out, nil
}

type noopMetrics struct{}

func (noopMetrics) ObserveAPICall(string, string, int, time.Duration) {}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
