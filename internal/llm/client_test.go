package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// --- CreateMessage tests ---

func TestCreateMessage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/messages" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("X-Api-Key"); got != "sk-test" {
			t.Errorf("unexpected api key header: %s", got)
		}
		if got := r.Header.Get("Anthropic-Version"); got != "2023-06-01" {
			t.Errorf("unexpected version header: %s", got)
		}

		var req MessagesRequest
		raw, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(raw, &req); err != nil {
			t.Fatalf("unmarshaling request: %v", err)
		}
		if req.Model == "" {
			t.Error("model not defaulted on the request")
		}

		io.WriteString(w, `{
			"content": [{"type": "text", "text": "hello"}],
			"stop_reason": "end_turn"
		}`)
	}))
	defer ts.Close()

	c := NewClient("sk-test", "", ts.URL, 5*time.Second)
	resp, err := c.CreateMessage(context.Background(), MessagesRequest{
		MaxTokens: 100,
		Messages:  []Message{UserText("hi")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StopReason != StopEndTurn {
		t.Errorf("stop reason = %q, want end_turn", resp.StopReason)
	}
	if resp.TextContent() != "hello" {
		t.Errorf("text = %q, want hello", resp.TextContent())
	}
}

func TestCreateMessage_NoAPIKey(t *testing.T) {
	c := NewClient("", "", "http://unused", time.Second)
	_, err := c.CreateMessage(context.Background(), MessagesRequest{})
	if !errors.Is(err, ErrNoAPIKey) {
		t.Errorf("error = %v, want ErrNoAPIKey", err)
	}
}

func TestCreateMessage_NonOKStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"type": "overloaded_error"}}`, http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	c := NewClient("sk-test", "", ts.URL, 5*time.Second)
	if _, err := c.CreateMessage(context.Background(), MessagesRequest{}); err == nil {
		t.Fatal("expected an error on 503")
	}
}

func TestCreateMessage_EmptyContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"content": [], "stop_reason": "end_turn"}`)
	}))
	defer ts.Close()

	c := NewClient("sk-test", "", ts.URL, 5*time.Second)
	if _, err := c.CreateMessage(context.Background(), MessagesRequest{}); !errors.Is(err, ErrEmptyContent) {
		t.Errorf("error = %v, want ErrEmptyContent", err)
	}
}

// --- content block helper tests ---

func TestTextContent_SkipsToolBlocks(t *testing.T) {
	resp := &MessagesResponse{Content: []ContentBlock{
		{Type: "text", Text: "part one "},
		{Type: "tool_use", ID: "t1", Name: "search"},
		{Type: "text", Text: "part two"},
	}}
	if got := resp.TextContent(); got != "part one part two" {
		t.Errorf("TextContent = %q", got)
	}
}

func TestMessageHelpers(t *testing.T) {
	u := UserText("question")
	if u.Role != "user" || len(u.Content) != 1 || u.Content[0].Type != "text" {
		t.Errorf("unexpected user message: %+v", u)
	}

	a := AssistantMessage([]ContentBlock{{Type: "tool_use", ID: "t1"}})
	if a.Role != "assistant" {
		t.Errorf("unexpected assistant role: %q", a.Role)
	}

	r := ToolResults([]ContentBlock{{Type: "tool_result", ToolUseID: "t1", Content: "[]"}})
	if r.Role != "user" {
		t.Errorf("tool results must come back as a user turn, got %q", r.Role)
	}
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient("k", "", "", time.Second)
	if c.Model() != DefaultModel {
		t.Errorf("model = %q, want default", c.Model())
	}
}
