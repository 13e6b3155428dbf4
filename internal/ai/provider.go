package ai

import (
	"context"
	"errors"
	"fmt"

	"github.com/ChaitanyaJadhav9322/AdaptiveQuizeWeb/internal/config"
	"google.golang.org/genai"
)

const defaultModel = "gemini-2.0-flash"

// Provider is the text-completion seam. It returns the model's raw text,
// which callers must not trust to be clean JSON.
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type geminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider builds a Provider backed by the Gemini API. The genai
// client reads GEMINI_API_KEY from the environment.
func NewGeminiProvider(ctx context.Context) (Provider, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &geminiProvider{client: client, model: defaultModel}, nil
}

func (p *geminiProvider) Complete(ctx context.Context, prompt string) (string, error) {
	log := config.WithContext(ctx)

	result, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), nil)
	if err != nil {
		log.WithError(err).Error("Gemini completion failed")
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	raw := result.Text()
	if raw == "" {
		return "", errors.New("empty response from model")
	}

	log.Debugf("Raw model response:\n%s", raw)
	return raw, nil
}
