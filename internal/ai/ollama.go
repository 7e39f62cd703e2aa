package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// OllamaProvider is the local-development provider. Roles pass through
// unchanged (ollama understands "system"); structured output uses the
// chat API's format field, which accepts a JSON schema.
type OllamaProvider struct {
	BaseURL string
	Model   string
	Client  *http.Client
}

type ollamaMsg struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaChatReq struct {
	Model    string          `json:"model"`
	Messages []ollamaMsg     `json:"messages"`
	Stream   bool            `json:"stream"`
	Format   json.RawMessage `json:"format,omitempty"`
}

type ollamaChatResp struct {
	Message ollamaMsg `json:"message"`
	Error   string    `json:"error,omitempty"`
}

func NewOllamaProvider(baseURL, model string) *OllamaProvider {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	if model == "" {
		model = "llama3:latest"
	}
	return &OllamaProvider{
		BaseURL: baseURL,
		Model:   model,
		Client:  &http.Client{Timeout: 90 * time.Second},
	}
}

func (p *OllamaProvider) Chat(ctx context.Context, messages []Message) (string, error) {
	msgs := make([]ollamaMsg, 0, len(messages))
	for _, m := range messages {
		msgs = append(msgs, ollamaMsg{Role: m.Role, Content: m.Content})
	}
	return p.chat(ctx, ollamaChatReq{
		Model:    p.Model,
		Stream:   false,
		Messages: msgs,
	})
}

func (p *OllamaProvider) GenerateStructured(ctx context.Context, prompt string, schema map[string]any) (string, error) {
	format, err := json.Marshal(schema)
	if err != nil {
		return "", err
	}
	return p.chat(ctx, ollamaChatReq{
		Model:    p.Model,
		Stream:   false,
		Messages: []ollamaMsg{{Role: "user", Content: prompt}},
		Format:   format,
	})
}

func (p *OllamaProvider) chat(ctx context.Context, reqBody ollamaChatReq) (string, error) {
	if p.Client == nil {
		return "", errors.New("ollama: http client is nil")
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/api/chat", p.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("ollama: status %d", resp.StatusCode)
	}

	var decoded ollamaChatResp
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", err
	}
	if decoded.Error != "" {
		return "", errors.New(decoded.Error)
	}
	return decoded.Message.Content, nil
}
