package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/stoik/intake/internal/models"
)

// DefaultBaseURL is the hardcoded local fallback used when neither a
// flag/config value nor an environment variable supplies the API origin.
const DefaultBaseURL = "http://localhost:8083/api"

const apiPathSuffix = "/api"

// Client is the HTTP implementation of Backend.
type Client struct {
	client *http.Client
	log    *zap.Logger
}

// NewClient creates a backend client. The base URL is intentionally not
// captured here: it is re-resolved on every call so that configuration
// injected after startup is honored.
func NewClient(log *zap.Logger) *Client {
	return &Client{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log,
	}
}

// BaseURL resolves the backend origin. Precedence: the viper-sourced
// value under "api.url" (flag, config file, or INTAKE_API_URL), then
// DefaultBaseURL. The result always ends with the /api path segment:
// one trailing slash is stripped and /api appended when missing.
func BaseURL() string {
	base := viper.GetString("api.url")
	if base == "" {
		base = DefaultBaseURL
	}
	base = strings.TrimSuffix(base, "/")
	if !strings.HasSuffix(base, apiPathSuffix) {
		base += apiPathSuffix
	}
	return base
}

// envelope is the backend's uniform response body. Data carries the
// result on success; Message is set on errors (and sometimes alongside
// data on writes).
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// do executes one request against the backend: JSON in, envelope out.
// The body is parsed as JSON regardless of status code so that error
// responses can surface the server's message field.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return &APIError{Err: fmt.Errorf("encode request: %w", err)}
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, BaseURL()+path, reader)
	if err != nil {
		return &APIError{Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	if method == http.MethodPost {
		// Rapid duplicate submissions would otherwise create duplicate
		// records; the key lets the backend deduplicate if it chooses to.
		req.Header.Set("X-Idempotency-Key", uuid.NewString())
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return &APIError{Err: err}
	}
	defer resp.Body.Close()

	var env envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := env.Message
		if msg == "" {
			msg = fmt.Sprintf("HTTP error, status %d", resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}
	if decodeErr != nil {
		return &APIError{Err: fmt.Errorf("decode response: %w", decodeErr)}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return &APIError{Err: fmt.Errorf("decode response data: %w", err)}
		}
	}

	c.log.Debug("backend call",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}

// ListPayloads implements Backend.ListPayloads.
func (c *Client) ListPayloads(ctx context.Context) ([]models.Payload, error) {
	var payloads []models.Payload
	if err := c.do(ctx, http.MethodGet, "/payloads", nil, &payloads); err != nil {
		return nil, err
	}
	return payloads, nil
}

// GetPayload implements Backend.GetPayload.
func (c *Client) GetPayload(ctx context.Context, id int) (models.Payload, error) {
	var payload models.Payload
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/payloads/%d", id), nil, &payload); err != nil {
		return models.Payload{}, err
	}
	return payload, nil
}

// GetPayloadWithDocuments implements Backend.GetPayloadWithDocuments.
func (c *Client) GetPayloadWithDocuments(ctx context.Context, id int) (models.Payload, error) {
	var payload models.Payload
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/payloads/%d/documents", id), nil, &payload); err != nil {
		return models.Payload{}, err
	}
	return payload, nil
}

// ListPayloadsWithDocuments implements Backend.ListPayloadsWithDocuments.
func (c *Client) ListPayloadsWithDocuments(ctx context.Context) ([]models.Payload, error) {
	var payloads []models.Payload
	if err := c.do(ctx, http.MethodGet, "/payloads/all/documents", nil, &payloads); err != nil {
		return nil, err
	}
	return payloads, nil
}

// CreatePayload implements Backend.CreatePayload.
func (c *Client) CreatePayload(ctx context.Context, p models.NewPayload) (models.Payload, error) {
	var created models.Payload
	if err := c.do(ctx, http.MethodPost, "/payloads", p, &created); err != nil {
		return models.Payload{}, err
	}
	return created, nil
}

// DocumentsForPayload implements Backend.DocumentsForPayload.
func (c *Client) DocumentsForPayload(ctx context.Context, payloadID int) ([]models.Document, error) {
	var docs []models.Document
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/documents/payload/%d", payloadID), nil, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// CreateDocument implements Backend.CreateDocument.
func (c *Client) CreateDocument(ctx context.Context, d models.NewDocument) (models.Document, error) {
	var created models.Document
	if err := c.do(ctx, http.MethodPost, "/documents", d, &created); err != nil {
		return models.Document{}, err
	}
	return created, nil
}

// DeleteDocument implements Backend.DeleteDocument.
func (c *Client) DeleteDocument(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/documents/%d", id), nil, nil)
}
