package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/dchistyakov/tipoff/pkg/api"
)

// Client представляет HTTP клиент для взаимодействия с игровым бекендом
type Client struct {
	httpClient *http.Client
	baseURL    string
	clientID   string
}

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetClientID устанавливает идентификатор устройства,
// передаваемый в заголовке X-Client-ID каждого запроса
func (c *Client) SetClientID(id string) {
	c.clientID = id
}

// BaseURL возвращает базовый URL бекенда
func (c *Client) BaseURL() string {
	return c.baseURL
}

// doRequest выполняет HTTP запрос
// Непустой query добавляется к пути как есть, body сериализуется в JSON,
// успешный ответ декодируется в result (если result != nil)
func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, body, result interface{}) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.clientID != "" {
		req.Header.Set("X-Client-ID", c.clientID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код: бекенд кладет описание ошибки в поле "detail"
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := &api.StatusError{Status: resp.StatusCode}
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil {
			statusErr.Detail = errResp.Detail
		}
		return statusErr
	}

	// Пустое тело при успешном статусе — не ошибка, result остается нулевым
	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

func (c *Client) get(ctx context.Context, path string, result interface{}) error {
	return c.doRequest(ctx, http.MethodGet, path, nil, nil, result)
}

func (c *Client) post(ctx context.Context, path string, query url.Values, result interface{}) error {
	return c.doRequest(ctx, http.MethodPost, path, query, nil, result)
}

func (c *Client) put(ctx context.Context, path string, result interface{}) error {
	return c.doRequest(ctx, http.MethodPut, path, nil, nil, result)
}
