// Package chat answers follow-up questions about a completed assessment with
// a bounded agentic loop: the model may call workforce-data tools, at most
// four iterations, strictly sequential.
package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/amoghpatel/careerisk/internal/llm"
	"github.com/amoghpatel/careerisk/internal/workforce"
)

const (
	maxIterations  = 4
	defaultTimeout = 30 * time.Second
	maxChatTokens  = 1500

	// Returned verbatim when the loop exhausts its iteration cap or the
	// model becomes unreachable mid-conversation.
	apology = "I wasn't able to finish answering that question. Please try asking it again, perhaps more specifically."
)

// ErrNoQuestion is surfaced when the request carries an empty question.
var ErrNoQuestion = errors.New("question is required")

// Request is one follow-up question plus the assessment context the UI
// already holds. The context sections arrive as raw JSON and are passed
// through to the prompt untouched.
type Request struct {
	Question      string          `json:"question"`
	Person        json.RawMessage `json:"person,omitempty"`
	Scores        json.RawMessage `json:"scores,omitempty"`
	Company       json.RawMessage `json:"company,omitempty"`
	Salary        json.RawMessage `json:"salary,omitempty"`
	HiringSignals json.RawMessage `json:"hiringSignals,omitempty"`
	Tab           string          `json:"tab,omitempty"`
}

// Service runs the agentic loop.
type Service struct {
	llm       llm.Messenger
	workforce workforce.Searcher
	timeout   time.Duration
	now       func() time.Time
}

func NewService(m llm.Messenger, wf workforce.Searcher) *Service {
	return &Service{llm: m, workforce: wf, timeout: defaultTimeout, now: time.Now}
}

// WithTimeout overrides the per-question deadline.
func (s *Service) WithTimeout(d time.Duration) *Service {
	if d > 0 {
		s.timeout = d
	}
	return s
}

// WithClock overrides the clock. Intended for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Answer resolves one question. The conversation array is append-only so a
// trace replays cleanly.
func (s *Service) Answer(ctx context.Context, req Request) (string, error) {
	if strings.TrimSpace(req.Question) == "" {
		return "", ErrNoQuestion
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	messages := []llm.Message{llm.UserText(buildUserPrompt(req))}
	tools := toolDefinitions()

	for i := 0; i < maxIterations; i++ {
		resp, err := s.llm.CreateMessage(ctx, llm.MessagesRequest{
			MaxTokens: maxChatTokens,
			System:    chatSystemPrompt,
			Messages:  messages,
			Tools:     tools,
		})
		if err != nil {
			slog.Warn("chat llm call failed", "iteration", i, "error", err)
			return apology, nil
		}

		switch resp.StopReason {
		case llm.StopEndTurn:
			return resp.TextContent(), nil
		case llm.StopToolUse:
			messages = append(messages, llm.AssistantMessage(resp.Content))
			messages = append(messages, llm.ToolResults(s.runTools(ctx, resp.Content)))
		default:
			// Anything else (max_tokens and future reasons): return what we have.
			return resp.TextContent(), nil
		}
	}
	return apology, nil
}

// runTools executes every tool-use block in source order so the result ids
// line up with what the model expects.
func (s *Service) runTools(ctx context.Context, blocks []llm.ContentBlock) []llm.ContentBlock {
	var results []llm.ContentBlock
	for _, b := range blocks {
		if b.Type != "tool_use" {
			continue
		}
		results = append(results, llm.ContentBlock{
			Type:      "tool_result",
			ToolUseID: b.ID,
			Content:   s.dispatchTool(ctx, b.Name, b.Input),
		})
	}
	return results
}

const chatSystemPrompt = `You are a workforce-intelligence advisor answering follow-up questions about an employment-risk assessment.
Ground every answer in the assessment context provided and in tool results.
You have tools that query live workforce data for company hiring, location hiring and talent moves.
Never claim there is "no data" for a specific company or location without first calling the matching tool.
Keep answers concise and directional; all figures are sample-based estimates, not precise headcounts.`

// buildUserPrompt concatenates the tab-appropriate context sections ahead of
// the question. Sections the UI did not send are skipped.
func buildUserPrompt(req Request) string {
	var b strings.Builder
	b.WriteString("ASSESSMENT CONTEXT\n")
	if req.Tab != "" {
		fmt.Fprintf(&b, "The user is on the %q tab.\n", req.Tab)
	}

	writeSection := func(name string, raw json.RawMessage) {
		if len(raw) == 0 {
			return
		}
		fmt.Fprintf(&b, "\n%s:\n%s\n", name, raw)
	}

	switch req.Tab {
	case "company":
		writeSection("Company", req.Company)
		writeSection("Person", req.Person)
		writeSection("Scores", req.Scores)
	case "salary":
		writeSection("Salary", req.Salary)
		writeSection("Person", req.Person)
		writeSection("Scores", req.Scores)
	case "hiring":
		writeSection("Hiring signals", req.HiringSignals)
		writeSection("Person", req.Person)
		writeSection("Company", req.Company)
	default:
		writeSection("Person", req.Person)
		writeSection("Scores", req.Scores)
		writeSection("Company", req.Company)
		writeSection("Salary", req.Salary)
		writeSection("Hiring signals", req.HiringSignals)
	}

	fmt.Fprintf(&b, "\nQUESTION\n%s\n", req.Question)
	return b.String()
}
