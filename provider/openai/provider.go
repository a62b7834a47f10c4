package openai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/oneshot-dev/oneshot/provider"
)

var _ provider.Provider = (*Provider)(nil)

// Provider talks to the OpenAI chat completions API. It exists to prove the
// completion contract is backend-agnostic: any service with a model listing
// and a single-turn generation call slots in behind the same interface.
type Provider struct {
	client *openai.Client
}

// New builds an OpenAI-backed provider for the given API key. Extra request
// options (base URL, org, custom HTTP client) pass through to the SDK.
func New(apiKey string, options ...option.RequestOption) (*Provider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("%w: OPENAI_API_KEY is not set", provider.ErrMissingCredential)
	}

	client := openai.NewClient(append([]option.RequestOption{option.WithAPIKey(apiKey)}, options...)...)
	return &Provider{client: client}, nil
}

func (p *Provider) Name() string { return "openai" }

// ListModels pages through the models endpoint. OpenAI does not publish
// per-model capability tags, so every entry is marked generation-capable and
// selection rests entirely on the preference list.
func (p *Provider) ListModels(ctx context.Context) (*provider.Catalog, error) {
	catalog := provider.NewCatalog()

	it := p.client.Models.ListAutoPaging(ctx)
	for it.Next() {
		model := it.Current()
		catalog.Add(provider.ModelDescriptor{
			ID:           model.ID,
			DisplayName:  model.ID,
			Capabilities: []provider.Capability{provider.CapabilityGenerate},
		})
	}
	if err := it.Err(); err != nil {
		return nil, fmt.Errorf("list models: %w", err)
	}
	return catalog, nil
}

func (p *Provider) Complete(ctx context.Context, req provider.CompletionRequest) (provider.CompletionResult, error) {
	params := openai.ChatCompletionNewParams{
		Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(req.Prompt),
		}),
		Model: openai.F(req.Model),
		N:     openai.Int(1),
	}
	if req.Temperature > 0 {
		params.Temperature = openai.Float(req.Temperature)
	}
	if req.MaxOutputTokens > 0 {
		params.MaxCompletionTokens = openai.Int(req.MaxOutputTokens)
	}

	chat, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return provider.CompletionResult{}, fmt.Errorf("chat completion: %w", err)
	}

	result := provider.CompletionResult{
		Model:      req.Model,
		Candidates: len(chat.Choices),
		Usage: provider.Usage{
			PromptTokens:     chat.Usage.PromptTokens,
			CompletionTokens: chat.Usage.CompletionTokens,
			TotalTokens:      chat.Usage.TotalTokens,
		},
		Timestamp: strfmt.DateTime(time.Now()),
	}
	if len(chat.Choices) > 0 {
		first := chat.Choices[0]
		result.Text = first.Message.Content
		result.FinishReason = finishReason(first.FinishReason)
	} else {
		result.FinishReason = provider.FinishReasonOther
	}
	return result, nil
}

func finishReason(reason openai.ChatCompletionChoicesFinishReason) provider.FinishReason {
	switch reason {
	case openai.ChatCompletionChoicesFinishReasonStop:
		return provider.FinishReasonStop
	case openai.ChatCompletionChoicesFinishReasonLength:
		return provider.FinishReasonLength
	case openai.ChatCompletionChoicesFinishReasonContentFilter:
		return provider.FinishReasonSafety
	default:
		return provider.FinishReasonOther
	}
}
