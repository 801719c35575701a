// Package llm wraps the Anthropic-style messages API, including tool-use and
// tool-result content blocks, over plain JSON-over-HTTPS.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://api.anthropic.com"
	DefaultModel   = "claude-sonnet-4-5-20250929"
	apiVersion     = "2023-06-01"
)

// Stop reasons carried on a messages response.
const (
	StopEndTurn   = "end_turn"
	StopToolUse   = "tool_use"
	StopMaxTokens = "max_tokens"
)

// Sentinel errors for LLM client failures.
var (
	ErrNoAPIKey     = errors.New("llm api key not configured")
	ErrEmptyContent = errors.New("llm response carried no content")
)

// Messenger is the interface consumed by the narrative generator and the
// chat orchestrator. Tests inject scripted implementations.
type Messenger interface {
	CreateMessage(ctx context.Context, req MessagesRequest) (*MessagesResponse, error)
}

// MessagesRequest is one call to the messages endpoint.
type MessagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	System    string    `json:"system,omitempty"`
	Messages  []Message `json:"messages"`
	Tools     []Tool    `json:"tools,omitempty"`
}

// Message is one conversation turn. Content is always the block-array form
// so tool_use and tool_result turns need no special casing.
type Message struct {
	Role    string         `json:"role"`
	Content []ContentBlock `json:"content"`
}

// ContentBlock is the closed set of block variants, discriminated by Type:
// "text" (Text), "tool_use" (ID, Name, Input) and
// "tool_result" (ToolUseID, Content).
type ContentBlock struct {
	Type      string          `json:"type"`
	Text      string          `json:"text,omitempty"`
	ID        string          `json:"id,omitempty"`
	Name      string          `json:"name,omitempty"`
	Input     json.RawMessage `json:"input,omitempty"`
	ToolUseID string          `json:"tool_use_id,omitempty"`
	Content   string          `json:"content,omitempty"`
}

// Tool declares one callable tool to the model.
type Tool struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"input_schema"`
}

// MessagesResponse is the parsed response body.
type MessagesResponse struct {
	Content    []ContentBlock `json:"content"`
	StopReason string         `json:"stop_reason"`
}

// TextContent concatenates the text blocks of the response.
func (r *MessagesResponse) TextContent() string {
	var b strings.Builder
	for _, block := range r.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	return b.String()
}

// UserText builds a user message with a single text block.
func UserText(text string) Message {
	return Message{Role: "user", Content: []ContentBlock{{Type: "text", Text: text}}}
}

// AssistantMessage wraps response content as the assistant's conversation turn.
func AssistantMessage(content []ContentBlock) Message {
	return Message{Role: "assistant", Content: content}
}

// ToolResults builds the user turn carrying tool results back to the model.
func ToolResults(results []ContentBlock) Message {
	return Message{Role: "user", Content: results}
}

// Client implements Messenger against the HTTP API.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewClient creates a messages client. An empty model selects the default.
func NewClient(apiKey, model, baseURL string, timeout time.Duration) *Client {
	if model == "" {
		model = DefaultModel
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// Model returns the configured model identifier.
func (c *Client) Model() string { return c.model }

func (c *Client) CreateMessage(ctx context.Context, req MessagesRequest) (*MessagesResponse, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}
	if req.Model == "" {
		req.Model = c.model
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/messages", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Api-Key", c.apiKey)
	httpReq.Header.Set("Anthropic-Version", apiVersion)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("llm api status %d: %s", resp.StatusCode, truncate(body, 200))
	}

	var out MessagesResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if len(out.Content) == 0 {
		return nil, ErrEmptyContent
	}
	return &out, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}

// Compile-time check that Client implements Messenger.
var _ Messenger = (*Client)(nil)
