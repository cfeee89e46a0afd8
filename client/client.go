// Package client talks to the PPOB REST API. Every response uses the
// envelope {status, message, data} where status 0 means success; any other
// status surfaces as a *StatusError.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// TokenSource supplies the current bearer token. An empty string means no
// session; the Authorization header is then omitted.
type TokenSource interface {
	Token() string
}

type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     *logrus.Logger
}

type Config struct {
	BaseURL    string
	Tokens     TokenSource
	HTTPClient *http.Client
	Logger     *logrus.Logger
}

func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("ppob client: BaseURL is required")
	}
	if cfg.Tokens == nil {
		return nil, fmt.Errorf("ppob client: Tokens is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		http:    httpClient,
		tokens:  cfg.Tokens,
		log:     log,
	}, nil
}

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// do issues one JSON round-trip and decodes the envelope data into out.
// query may be nil; body may be nil for bodyless requests.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request failed: %w", err)
		}
		reader = bytes.NewBuffer(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), reader)
	if err != nil {
		return fmt.Errorf("create request failed: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

// doMultipart uploads a single file under the form field "file".
func (c *Client) doMultipart(ctx context.Context, method, path, filename string, file io.Reader, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("create form file failed: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("copy file failed: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("close form failed: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, nil), &buf)
	if err != nil {
		return fmt.Errorf("create request failed: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.send(req, out)
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (c *Client) send(req *http.Request, out any) error {
	if tok := c.tokens.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response failed: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		c.log.WithFields(logrus.Fields{
			"path":   req.URL.Path,
			"status": resp.StatusCode,
		}).Warn("unparseable api response")
		return fmt.Errorf("unexpected response (HTTP %d): %w", resp.StatusCode, err)
	}

	if env.Status != StatusOK {
		return &StatusError{
			Code:       env.Status,
			Message:    env.Message,
			HTTPStatus: resp.StatusCode,
		}
	}

	if out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode response data failed: %w", err)
		}
	}
	return nil
}
