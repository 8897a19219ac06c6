package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// Generator is the free-text generation collaborator invoked only when no
// rule matches. The pipeline never depends on model internals.
type Generator interface {
	Enabled() bool
	Generate(prompt string, maxTokens int) (string, error)
}

type OpenAIGenerator struct {
	apiKey     string
	apiURL     string
	model      string
	enabled    bool
	httpClient *http.Client
}

type openAIRequest struct {
	Model     string          `json:"model"`
	Messages  []openAIMessage `json:"messages"`
	MaxTokens int             `json:"max_tokens,omitempty"`
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIResponse struct {
	Choices []struct {
		Message openAIMessage `json:"message"`
	} `json:"choices"`
}

const generatorSystemPrompt = "You are a helpful financial assistant focused on debt management, " +
	"national debt statistics, and personal finance. Keep answers short, factual, and friendly. " +
	"If a question is outside finance, politely steer the conversation back."

// NewOpenAIGenerator reads OPENAI_API_KEY from the environment; without a key
// the generator reports itself disabled and the pipeline answers with its
// error templates instead. The client timeout bounds the only slow step of a
// request.
func NewOpenAIGenerator() *OpenAIGenerator {
	apiKey := os.Getenv("OPENAI_API_KEY")
	return &OpenAIGenerator{
		apiKey:  apiKey,
		apiURL:  "https://api.openai.com/v1/chat/completions",
		model:   "gpt-4o-mini",
		enabled: apiKey != "",
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (g *OpenAIGenerator) Enabled() bool {
	return g.enabled
}

func (g *OpenAIGenerator) Generate(prompt string, maxTokens int) (string, error) {
	if !g.enabled {
		return "", fmt.Errorf("generator disabled: no API key configured")
	}
	if maxTokens <= 0 || maxTokens > MaxGeneratedTokens {
		maxTokens = MaxGeneratedTokens
	}

	reqBody := openAIRequest{
		Model: g.model,
		Messages: []openAIMessage{
			{Role: "system", Content: generatorSystemPrompt},
			{Role: "user", Content: prompt},
		},
		MaxTokens: maxTokens,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest("POST", g.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", g.apiKey))

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var parsed openAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("no response from model")
	}
	return parsed.Choices[0].Message.Content, nil
}

// StubGenerator returns a fixed reply; used in tests and local runs.
type StubGenerator struct {
	Reply string
	Err   error
}

func (g *StubGenerator) Enabled() bool {
	return true
}

func (g *StubGenerator) Generate(prompt string, maxTokens int) (string, error) {
	if g.Err != nil {
		return "", g.Err
	}
	return g.Reply, nil
}
