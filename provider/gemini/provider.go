package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-openapi/strfmt"
	"google.golang.org/genai"

	"github.com/oneshot-dev/oneshot/provider"
)

var _ provider.Provider = (*Provider)(nil)

// Provider talks to the Gemini API. It is the reference backend: catalog
// entries carry the capability tags Gemini reports per model, so selection
// can check generateContent support instead of guessing from model names.
type Provider struct {
	client *genai.Client
}

// New builds a Gemini-backed provider for the given API key. The key is
// validated here, before any client is constructed, so a missing credential
// never reaches the network.
func New(ctx context.Context, apiKey string) (*Provider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("%w: GOOGLE_API_KEY or GEMINI_API_KEY is not set", provider.ErrMissingCredential)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Provider{client: client}, nil
}

func (p *Provider) Name() string { return "gemini" }

func (p *Provider) ListModels(ctx context.Context) (*provider.Catalog, error) {
	catalog := provider.NewCatalog()
	for model, err := range p.client.Models.All(ctx) {
		if err != nil {
			return nil, fmt.Errorf("list models: %w", err)
		}
		catalog.Add(descriptorFor(model))
	}
	return catalog, nil
}

func (p *Provider) Complete(ctx context.Context, req provider.CompletionRequest) (provider.CompletionResult, error) {
	cfg := &genai.GenerateContentConfig{
		CandidateCount: 1,
	}
	if req.Temperature > 0 {
		cfg.Temperature = genai.Ptr(float32(req.Temperature))
	}
	if req.MaxOutputTokens > 0 {
		cfg.MaxOutputTokens = int32(req.MaxOutputTokens)
	}

	resp, err := p.client.Models.GenerateContent(ctx, req.Model, genai.Text(req.Prompt), cfg)
	if err != nil {
		return provider.CompletionResult{}, fmt.Errorf("generate content: %w", err)
	}

	result := provider.CompletionResult{
		Model:      req.Model,
		Text:       responseText(resp),
		Candidates: len(resp.Candidates),
		Timestamp:  strfmt.DateTime(time.Now()),
	}
	if len(resp.Candidates) > 0 {
		first := resp.Candidates[0]
		result.FinishReason = finishReason(first.FinishReason)
		result.SafetyChecks = len(first.SafetyRatings)
	} else {
		result.FinishReason = provider.FinishReasonOther
	}
	if usage := resp.UsageMetadata; usage != nil {
		result.Usage = provider.Usage{
			PromptTokens:     int64(usage.PromptTokenCount),
			CompletionTokens: int64(usage.CandidatesTokenCount),
			TotalTokens:      int64(usage.TotalTokenCount),
		}
	}
	return result, nil
}

// descriptorFor maps a Gemini model record into a typed catalog entry. The
// "models/" resource prefix is stripped so IDs match what GenerateContent
// accepts and what users pass on the command line.
func descriptorFor(model *genai.Model) provider.ModelDescriptor {
	capabilities := make([]provider.Capability, 0, len(model.SupportedActions))
	for _, action := range model.SupportedActions {
		capabilities = append(capabilities, capabilityForAction(action))
	}
	return provider.ModelDescriptor{
		ID:           strings.TrimPrefix(model.Name, "models/"),
		DisplayName:  model.DisplayName,
		Capabilities: capabilities,
	}
}

func capabilityForAction(action string) provider.Capability {
	switch action {
	case "generateContent", "generateAnswer", "generateMessage", "generateText":
		return provider.CapabilityGenerate
	case "embedContent", "batchEmbedContents", "embedText":
		return provider.CapabilityEmbed
	case "countTokens", "countTextTokens", "countMessageTokens":
		return provider.CapabilityCountTokens
	case "createTunedModel", "createTunedTextModel":
		return provider.CapabilityTune
	default:
		return provider.CapabilityUnknown
	}
}

func finishReason(reason genai.FinishReason) provider.FinishReason {
	switch reason {
	case genai.FinishReasonStop:
		return provider.FinishReasonStop
	case genai.FinishReasonMaxTokens:
		return provider.FinishReasonLength
	case genai.FinishReasonSafety,
		genai.FinishReasonRecitation,
		genai.FinishReasonBlocklist,
		genai.FinishReasonProhibitedContent,
		genai.FinishReasonSPII:
		return provider.FinishReasonSafety
	default:
		return provider.FinishReasonOther
	}
}

// responseText concatenates the text parts of the first candidate. An empty
// or fully non-text response yields "".
func responseText(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}
	return sb.String()
}
