package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// maxErrorBody caps how much of an upstream error body is read for logging.
const maxErrorBody = 64 << 10

var (
	// ErrUpstream is returned when the generative API can't be reached or
	// answers with a non-2xx status.
	ErrUpstream = errors.New("generative API did not respond correctly")

	// ErrMalformedResponse is returned when the upstream answer lacks the
	// candidates[0].content.parts[0].text path.
	ErrMalformedResponse = errors.New("generative API response has no text")
)

// Client represents a client to communicate with the Gemini generateContent API.
type Client struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewBackendClient creates a new Client for the given API root and model.
// A zero timeout leaves the transport default in place.
func NewBackendClient(baseURL, model string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Endpoint returns the generateContent URL, without the credential.
func (c *Client) Endpoint() string {
	return fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, url.PathEscape(c.model))
}

// GenerateContent sends the system instruction and user message to the model,
// asking for JSON output, and returns the text of the first candidate untouched.
func (c *Client) GenerateContent(ctx context.Context, apiKey, systemInstruction, userMessage string) (string, error) {
	payload, err := json.Marshal(generateRequest{
		SystemInstruction: content{Parts: []part{textPart(systemInstruction)}},
		Contents:          []content{{Parts: []part{textPart(userMessage)}}},
		GenerationConfig:  generationConfig{ResponseMimeType: "application/json"},
	})
	if err != nil {
		return "", fmt.Errorf("encoding upstream request: %w", err)
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")

	resp, err := c.Forward(ctx, apiKey, headers, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		log.WithFields(logrus.Fields{
			"status": resp.StatusCode,
			"body":   string(body),
		}).Error("Generative API returned an error")
		return "", fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	var out generateResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return firstText(out)
}

// Forward posts body to the generateContent endpoint with the credential in
// the query string and returns the raw response.
func (c *Client) Forward(ctx context.Context, apiKey string, headers http.Header, body io.Reader) (*http.Response, error) {
	u := c.Endpoint() + "?" + url.Values{"key": {apiKey}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, body)
	if err != nil {
		return nil, err
	}

	// Copy headers.
	for key, values := range headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, redactKey(err)
	}
	return resp, nil
}

func firstText(out generateResponse) (string, error) {
	if len(out.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates", ErrMalformedResponse)
	}
	c := out.Candidates[0].Content
	if c == nil || len(c.Parts) == 0 {
		return "", fmt.Errorf("%w: no content parts", ErrMalformedResponse)
	}
	if c.Parts[0].Text == nil {
		return "", fmt.Errorf("%w: missing text field", ErrMalformedResponse)
	}
	return *c.Parts[0].Text, nil
}

// redactKey strips the request URL from transport errors so the credential
// never reaches the logs.
func redactKey(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s: %w", urlErr.Op, urlErr.Err)
	}
	return err
}
