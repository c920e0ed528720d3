// Package api содержит HTTP клиент REST API магазина и перехватчики авторизации.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"gamestore/internal/storefront/domain/entities"
	"gamestore/internal/storefront/ports/services"
	"gamestore/pkg/logger"
)

// Константы для логирования.
const (
	LogRequestCompleted = "backend request completed"
	LogRequestFailed    = "backend request failed"

	ErrorInvalidBaseURL    = "invalid api base url"
	ErrorFailedBuildReq    = "failed to build request"
	ErrorFailedEncodeBody  = "failed to encode request body"
	ErrorFailedDecodeBody  = "failed to decode response body"
	ErrorFailedReadBody    = "failed to read response body"
	ErrorFailedBuildForm   = "failed to build multipart form"
	ErrorUnexpectedPayload = "unexpected list payload"
)

const (
	contentTypeJSON = "application/json"
	maxResponseSize = 8 << 20
)

// Client выполняет запросы к REST API магазина. Какие перехватчики участвуют
// в запросе, определяет переданный http.Client.
type Client struct {
	baseURL   string
	http      *http.Client
	userAgent string
	observer  Observer
}

// NewClient создает клиент для baseURL.
func NewClient(baseURL, userAgent string, httpClient *http.Client, observer Observer) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		if err == nil {
			err = fmt.Errorf("%q has no scheme or host", baseURL)
		}
		return nil, fmt.Errorf("%s: %w", ErrorInvalidBaseURL, err)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		http:      httpClient,
		userAgent: userAgent,
		observer:  observerOrNop(observer),
	}, nil
}

// Get выполняет GET с параметрами query и декодирует ответ в out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, "", out)
}

// Post отправляет in как JSON.
func (c *Client) Post(ctx context.Context, path string, in, out any) error {
	return c.sendJSON(ctx, http.MethodPost, path, in, out)
}

// Patch отправляет in как JSON.
func (c *Client) Patch(ctx context.Context, path string, in, out any) error {
	return c.sendJSON(ctx, http.MethodPatch, path, in, out)
}

// Delete выполняет DELETE.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, "", out)
}

// PostMultipart отправляет форму с файлами. Форма целиком собирается в памяти,
// чтобы запрос можно было повторить после обновления токена.
func (c *Client) PostMultipart(ctx context.Context, path string, form *entities.ProductForm, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for name, values := range form.Fields {
		for _, value := range values {
			if err := writer.WriteField(name, value); err != nil {
				return fmt.Errorf("%s: %w", ErrorFailedBuildForm, err)
			}
		}
	}
	for _, file := range form.Files {
		part, err := writer.CreateFormFile(file.Field, file.Filename)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrorFailedBuildForm, err)
		}
		if _, err := io.Copy(part, file.Content); err != nil {
			return fmt.Errorf("%s: %w", ErrorFailedBuildForm, err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("%s: %w", ErrorFailedBuildForm, err)
	}

	return c.do(ctx, http.MethodPost, path, nil, bytes.NewReader(buf.Bytes()), writer.FormDataContentType(), out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrorFailedEncodeBody, err)
		}
		body = bytes.NewReader(data)
	}
	return c.do(ctx, method, path, nil, body, contentTypeJSON, out)
}

func (c *Client) resolve(path string, query url.Values) string {
	target := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	return target
}

func (c *Client) do(
	ctx context.Context,
	method, path string,
	query url.Values,
	body io.Reader,
	contentType string,
	out any,
) error {
	log := logger.Log(ctx).With(zap.String("method", method), zap.String("path", path))

	req, err := http.NewRequestWithContext(ctx, method, c.resolve(path, query), body)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrorFailedBuildReq, err)
	}
	req.Header.Set("Accept", contentTypeJSON)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if requestID, ok := logger.GetRequestID(ctx); ok && requestID != "" {
		req.Header.Set(logger.HeaderRequestID, requestID)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.observer.ObserveRequest(method, 0, time.Since(start))
		log.Warn(ctx, LogRequestFailed, zap.Error(err))
		return classifyTransportError(ctx, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	c.observer.ObserveRequest(method, resp.StatusCode, time.Since(start))
	log.Debug(ctx, LogRequestCompleted,
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)))

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("%w: %s: %w", services.ErrTransport, ErrorFailedReadBody, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &APIError{StatusCode: resp.StatusCode, Body: data}
	}

	return decode(data, out)
}

func decode(data []byte, out any) error {
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if raw, ok := out.(*json.RawMessage); ok {
		*raw = append((*raw)[:0], data...)
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: %w", ErrorFailedDecodeBody, err)
	}
	return nil
}

// classifyTransportError отделяет завершение сессии и отмену вызывающим
// от сетевых сбоев.
func classifyTransportError(ctx context.Context, err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		err = urlErr.Err
	}

	switch {
	case errors.Is(err, services.ErrSessionExpired):
		return err
	case ctx.Err() != nil:
		return fmt.Errorf("request aborted: %w", ctx.Err())
	default:
		return fmt.Errorf("%w: %w", services.ErrTransport, err)
	}
}

// GetList запрашивает список, принимая как постраничный ответ {"results": [...]},
// так и простой массив.
func GetList[T any](ctx context.Context, c *Client, path string, query url.Values) ([]T, error) {
	var raw json.RawMessage
	if err := c.Get(ctx, path, query, &raw); err != nil {
		return nil, err
	}
	return DecodeList[T](raw)
}

// DecodeList декодирует список из постраничного ответа или массива.
func DecodeList[T any](raw []byte) ([]T, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return []T{}, nil
	}

	payload := gjson.ParseBytes(raw)
	if payload.IsObject() {
		results := payload.Get("results")
		if !results.Exists() || !results.IsArray() {
			return nil, fmt.Errorf("%s: object without results", ErrorUnexpectedPayload)
		}
		raw = []byte(results.Raw)
	} else if !payload.IsArray() {
		return nil, fmt.Errorf("%s: %s", ErrorUnexpectedPayload, payload.Type)
	}

	items := make([]T, 0)
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorFailedDecodeBody, err)
	}
	return items, nil
}
