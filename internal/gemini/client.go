// Package gemini wraps the Gemini API behind a small Generator interface so
// handlers can be exercised with fakes.
package gemini

import (
	"context"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Generator is the slice of the Gemini API this service uses: plain text
// generation and multimodal generation with one inline audio blob.
type Generator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	GenerateAudio(ctx context.Context, instruction, mimeType string, data []byte) (string, error)
}

type Client struct {
	client *genai.Client
	model  string
}

var _ Generator = (*Client)(nil)

func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	c, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &Client{client: c, model: model}, nil
}

func (c *Client) Close() error { return c.client.Close() }

func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.GenerativeModel(c.model).GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	return joinText(resp), nil
}

func (c *Client) GenerateAudio(ctx context.Context, instruction, mimeType string, data []byte) (string, error) {
	resp, err := c.client.GenerativeModel(c.model).GenerateContent(ctx,
		genai.Text(instruction),
		genai.Blob{MIMEType: mimeType, Data: data},
	)
	if err != nil {
		return "", err
	}
	return joinText(resp), nil
}

// joinText concatenates every text part across candidates. An empty result
// means the model returned nothing usable; callers substitute a sentinel.
func joinText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				b.WriteString(string(t))
			}
		}
	}
	return b.String()
}
