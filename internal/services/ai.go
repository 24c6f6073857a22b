package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

// TaskSuggester proposes tasks for a project
type TaskSuggester interface {
	SuggestTasks(ctx context.Context, title, description string) ([]GeneratedTask, error)
}

type AIService struct {
	client *openai.Client
	model  string
}

type GeneratedTask struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
}

func NewAIService(apiKey string) *AIService {
	return &AIService{
		client: openai.NewClient(apiKey),
		model:  openai.GPT4o,
	}
}

// NewAIServiceWithConfig builds an AIService from a full client configuration,
// e.g. to point it at a different base URL.
func NewAIServiceWithConfig(cfg openai.ClientConfig, model string) *AIService {
	return &AIService{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// SuggestTasks asks the model for the tasks an intern team should carry out on a project
func (s *AIService) SuggestTasks(ctx context.Context, title, description string) ([]GeneratedTask, error) {
	if s.client == nil {
		return nil, fmt.Errorf("OpenAI client not initialized")
	}

	today := time.Now().Format("2006-01-02")
	prompt := fmt.Sprintf(`You help supervisors plan internship projects. Break the project below into concrete tasks for the interns.

Today: %s

Project title: %s
Project description:
%s

Reply with a JSON array of tasks only, using this shape:
[
  {
    "title": "short task title",
    "description": "what has to be done",
    "priority": "LOW, MEDIUM or HIGH",
    "due_date": "ISO8601 timestamp such as 2025-10-28T23:59:59Z, or null when there is no sensible deadline"
  }
]

Rules:
- Return [] if the project gives nothing to work with
- due_date must be an ISO8601 string or null
- Do not add any text outside the JSON`, today, title, description)

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: s.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.3,
		},
	)

	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from OpenAI")
	}

	content := stripCodeFence(resp.Choices[0].Message.Content)

	var tasks []GeneratedTask
	if err := json.Unmarshal([]byte(content), &tasks); err != nil {
		return nil, fmt.Errorf("failed to parse AI response: %w (response: %s)", err, content)
	}

	return tasks, nil
}

// stripCodeFence removes a surrounding ```json fence that models sometimes add.
func stripCodeFence(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}
